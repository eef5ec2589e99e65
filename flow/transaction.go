package flow

import (
	"errors"
	"fmt"
	"sort"

	"github.com/0xPolygon/flowclient/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// DefaultTransactionGasLimit is the computation limit used when none is set
const DefaultTransactionGasLimit = 1000

// DomainTagTransaction is prepended to every transaction message before signing.
// It is "FLOW-V0.0-transaction" right padded with zeros to 32 bytes.
var DomainTagTransaction = paddedDomainTag("FLOW-V0.0-transaction")

var (
	ErrSignerNotFound       = errors.New("signer is not part of the transaction")
	ErrMissingProposalKey   = errors.New("transaction has no proposal key")
	ErrMissingPayer         = errors.New("transaction has no payer")
	ErrMissingReferenceID   = errors.New("transaction has no reference block id")
	ErrPayloadSignedAlready = errors.New("payload cannot change after envelope signatures")
)

// ProposalKey is the account key whose sequence number the transaction consumes
type ProposalKey struct {
	Address        Address
	KeyIndex       uint32
	SequenceNumber uint64
}

// TransactionSignature is a signature over the payload or envelope
type TransactionSignature struct {
	Address     Address
	SignerIndex int
	KeyIndex    uint32
	Signature   []byte
}

// Transaction is a Flow transaction in its canonical form
type Transaction struct {
	Script             []byte
	Arguments          [][]byte
	ReferenceBlockID   Identifier
	GasLimit           uint64
	ProposalKey        ProposalKey
	Payer              Address
	Authorizers        []Address
	PayloadSignatures  []TransactionSignature
	EnvelopeSignatures []TransactionSignature
}

// NewTransaction returns an empty transaction with the default gas limit
func NewTransaction() *Transaction {
	return &Transaction{GasLimit: DefaultTransactionGasLimit}
}

func (t *Transaction) SetScript(script []byte) *Transaction {
	t.Script = script
	return t
}

// AddRawArgument appends an already JSON-Cadence encoded argument
func (t *Transaction) AddRawArgument(arg []byte) *Transaction {
	t.Arguments = append(t.Arguments, arg)
	return t
}

// ArgumentEncoder is implemented by values that encode themselves as JSON-Cadence
type ArgumentEncoder interface {
	Encode() ([]byte, error)
}

// AddArgument encodes arg and appends it
func (t *Transaction) AddArgument(arg ArgumentEncoder) error {
	b, err := arg.Encode()
	if err != nil {
		return fmt.Errorf("encoding transaction argument %d: %w", len(t.Arguments), err)
	}
	t.Arguments = append(t.Arguments, b)
	return nil
}

func (t *Transaction) SetReferenceBlockID(id Identifier) *Transaction {
	t.ReferenceBlockID = id
	return t
}

func (t *Transaction) SetGasLimit(limit uint64) *Transaction {
	t.GasLimit = limit
	return t
}

func (t *Transaction) SetProposalKey(address Address, keyIndex uint32, sequenceNumber uint64) *Transaction {
	t.ProposalKey = ProposalKey{Address: address, KeyIndex: keyIndex, SequenceNumber: sequenceNumber}
	t.refreshSignerIndexes()
	return t
}

func (t *Transaction) SetPayer(address Address) *Transaction {
	t.Payer = address
	t.refreshSignerIndexes()
	return t
}

func (t *Transaction) AddAuthorizer(address Address) *Transaction {
	t.Authorizers = append(t.Authorizers, address)
	t.refreshSignerIndexes()
	return t
}

// Validate checks the fields required before the transaction can be signed
func (t *Transaction) Validate() error {
	if t.ProposalKey.Address.IsEmpty() {
		return ErrMissingProposalKey
	}
	if t.Payer.IsEmpty() {
		return ErrMissingPayer
	}
	if t.ReferenceBlockID.IsEmpty() {
		return ErrMissingReferenceID
	}
	return nil
}

// SignerList returns the unique signing accounts: proposer, authorizers and payer,
// in this order. The position of an address is its signer index.
func (t *Transaction) SignerList() []Address {
	signers := make([]Address, 0, len(t.Authorizers)+2) //nolint:mnd
	seen := make(map[Address]struct{})
	add := func(a Address) {
		if a.IsEmpty() {
			return
		}
		if _, ok := seen[a]; ok {
			return
		}
		seen[a] = struct{}{}
		signers = append(signers, a)
	}
	add(t.ProposalKey.Address)
	for _, a := range t.Authorizers {
		add(a)
	}
	add(t.Payer)
	return signers
}

func (t *Transaction) signerIndex(address Address) (int, error) {
	for i, a := range t.SignerList() {
		if a == address {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrSignerNotFound, address)
}

func (t *Transaction) refreshSignerIndexes() {
	indexes := make(map[Address]int)
	for i, a := range t.SignerList() {
		indexes[a] = i
	}
	for _, sigs := range [][]TransactionSignature{t.PayloadSignatures, t.EnvelopeSignatures} {
		for i := range sigs {
			if idx, ok := indexes[sigs[i].Address]; ok {
				sigs[i].SignerIndex = idx
			}
		}
	}
	sortSignatures(t.PayloadSignatures)
	sortSignatures(t.EnvelopeSignatures)
}

// PayloadMessage returns the RLP encoded payload signed by proposer and authorizers
func (t *Transaction) PayloadMessage() ([]byte, error) {
	return rlp.EncodeToBytes(t.payloadCanonicalForm())
}

// EnvelopeMessage returns the RLP encoded payload plus payload signatures signed by the payer
func (t *Transaction) EnvelopeMessage() ([]byte, error) {
	return rlp.EncodeToBytes(envelopeCanonicalForm{
		Payload:           t.payloadCanonicalForm(),
		PayloadSignatures: signaturesCanonicalForm(t.PayloadSignatures),
	})
}

// Encode returns the RLP encoding of the full signed transaction
func (t *Transaction) Encode() ([]byte, error) {
	return rlp.EncodeToBytes(transactionCanonicalForm{
		Payload:            t.payloadCanonicalForm(),
		PayloadSignatures:  signaturesCanonicalForm(t.PayloadSignatures),
		EnvelopeSignatures: signaturesCanonicalForm(t.EnvelopeSignatures),
	})
}

// ID returns the SHA3-256 hash of the encoded transaction
func (t *Transaction) ID() (Identifier, error) {
	encoded, err := t.Encode()
	if err != nil {
		return EmptyID, err
	}
	return BytesToID(crypto.SHA3Hash(encoded)), nil
}

// SignPayload adds a payload signature for address/keyIndex
func (t *Transaction) SignPayload(address Address, keyIndex uint32, signer crypto.Signer) error {
	if len(t.EnvelopeSignatures) > 0 {
		return ErrPayloadSignedAlready
	}
	if _, err := t.signerIndex(address); err != nil {
		return err
	}
	message, err := t.PayloadMessage()
	if err != nil {
		return err
	}
	sig, err := signer.Sign(withDomainTag(message))
	if err != nil {
		return fmt.Errorf("signing payload for %s key %d: %w", address, keyIndex, err)
	}
	return t.AddPayloadSignature(address, keyIndex, sig)
}

// SignEnvelope adds an envelope signature for address/keyIndex. It covers the
// payload signatures present at the time of the call.
func (t *Transaction) SignEnvelope(address Address, keyIndex uint32, signer crypto.Signer) error {
	if _, err := t.signerIndex(address); err != nil {
		return err
	}
	message, err := t.EnvelopeMessage()
	if err != nil {
		return err
	}
	sig, err := signer.Sign(withDomainTag(message))
	if err != nil {
		return fmt.Errorf("signing envelope for %s key %d: %w", address, keyIndex, err)
	}
	return t.AddEnvelopeSignature(address, keyIndex, sig)
}

// AddPayloadSignature adds an already computed payload signature
func (t *Transaction) AddPayloadSignature(address Address, keyIndex uint32, sig []byte) error {
	if len(t.EnvelopeSignatures) > 0 {
		return ErrPayloadSignedAlready
	}
	s, err := t.newSignature(address, keyIndex, sig)
	if err != nil {
		return err
	}
	t.PayloadSignatures = append(t.PayloadSignatures, s)
	sortSignatures(t.PayloadSignatures)
	return nil
}

// AddEnvelopeSignature adds an already computed envelope signature
func (t *Transaction) AddEnvelopeSignature(address Address, keyIndex uint32, sig []byte) error {
	s, err := t.newSignature(address, keyIndex, sig)
	if err != nil {
		return err
	}
	t.EnvelopeSignatures = append(t.EnvelopeSignatures, s)
	sortSignatures(t.EnvelopeSignatures)
	return nil
}

func (t *Transaction) newSignature(address Address, keyIndex uint32, sig []byte) (TransactionSignature, error) {
	idx, err := t.signerIndex(address)
	if err != nil {
		return TransactionSignature{}, err
	}
	return TransactionSignature{
		Address:     address,
		SignerIndex: idx,
		KeyIndex:    keyIndex,
		Signature:   sig,
	}, nil
}

type payloadCanonicalForm struct {
	Script                    []byte
	Arguments                 [][]byte
	ReferenceBlockID          []byte
	GasLimit                  uint64
	ProposalKeyAddress        []byte
	ProposalKeyIndex          uint32
	ProposalKeySequenceNumber uint64
	Payer                     []byte
	Authorizers               [][]byte
}

type signatureCanonicalForm struct {
	SignerIndex uint
	KeyIndex    uint32
	Signature   []byte
}

type envelopeCanonicalForm struct {
	Payload           payloadCanonicalForm
	PayloadSignatures []signatureCanonicalForm
}

type transactionCanonicalForm struct {
	Payload            payloadCanonicalForm
	PayloadSignatures  []signatureCanonicalForm
	EnvelopeSignatures []signatureCanonicalForm
}

func (t *Transaction) payloadCanonicalForm() payloadCanonicalForm {
	authorizers := make([][]byte, len(t.Authorizers))
	for i, a := range t.Authorizers {
		authorizers[i] = a.Bytes()
	}
	arguments := t.Arguments
	if arguments == nil {
		arguments = [][]byte{}
	}
	return payloadCanonicalForm{
		Script:                    t.Script,
		Arguments:                 arguments,
		ReferenceBlockID:          t.ReferenceBlockID.Bytes(),
		GasLimit:                  t.GasLimit,
		ProposalKeyAddress:        t.ProposalKey.Address.Bytes(),
		ProposalKeyIndex:          t.ProposalKey.KeyIndex,
		ProposalKeySequenceNumber: t.ProposalKey.SequenceNumber,
		Payer:                     t.Payer.Bytes(),
		Authorizers:               authorizers,
	}
}

func signaturesCanonicalForm(sigs []TransactionSignature) []signatureCanonicalForm {
	res := make([]signatureCanonicalForm, len(sigs))
	for i, s := range sigs {
		res[i] = signatureCanonicalForm{
			SignerIndex: uint(s.SignerIndex), //nolint:gosec
			KeyIndex:    s.KeyIndex,
			Signature:   s.Signature,
		}
	}
	return res
}

func sortSignatures(sigs []TransactionSignature) {
	sort.SliceStable(sigs, func(i, j int) bool {
		if sigs[i].SignerIndex != sigs[j].SignerIndex {
			return sigs[i].SignerIndex < sigs[j].SignerIndex
		}
		return sigs[i].KeyIndex < sigs[j].KeyIndex
	})
}

func withDomainTag(message []byte) []byte {
	res := make([]byte, 0, len(DomainTagTransaction)+len(message))
	res = append(res, DomainTagTransaction[:]...)
	return append(res, message...)
}

func paddedDomainTag(tag string) [32]byte {
	var res [32]byte
	copy(res[:], tag)
	return res
}
