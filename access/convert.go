package access

import (
	"errors"
	"fmt"

	"github.com/0xPolygon/flowclient/flow"
	accessproto "github.com/onflow/flow/protobuf/go/flow/access"
	"github.com/onflow/flow/protobuf/go/flow/entities"
)

var ErrEmptyResponse = errors.New("access node returned an empty response")

func accountFromMessage(m *entities.Account) (flow.Account, error) {
	if m == nil {
		return flow.Account{}, fmt.Errorf("%w: account", ErrEmptyResponse)
	}
	keys := make([]flow.AccountKey, 0, len(m.Keys))
	for _, k := range m.Keys {
		keys = append(keys, flow.AccountKey{
			Index:          k.Index,
			PublicKey:      k.PublicKey,
			SigAlgo:        k.SignAlgo,
			HashAlgo:       k.HashAlgo,
			Weight:         k.Weight,
			SequenceNumber: uint64(k.SequenceNumber),
			Revoked:        k.Revoked,
		})
	}
	return flow.Account{
		Address:   flow.BytesToAddress(m.Address),
		Balance:   m.Balance,
		Code:      m.Code,
		Keys:      keys,
		Contracts: m.Contracts,
	}, nil
}

func blockHeaderFromMessage(m *entities.BlockHeader) (flow.BlockHeader, error) {
	if m == nil {
		return flow.BlockHeader{}, fmt.Errorf("%w: block header", ErrEmptyResponse)
	}
	return flow.BlockHeader{
		ID:        flow.BytesToID(m.Id),
		ParentID:  flow.BytesToID(m.ParentId),
		Height:    m.Height,
		Timestamp: m.Timestamp.AsTime(),
	}, nil
}

func blockFromMessage(m *entities.Block) (flow.Block, error) {
	if m == nil {
		return flow.Block{}, fmt.Errorf("%w: block", ErrEmptyResponse)
	}
	guarantees := make([]flow.CollectionGuarantee, 0, len(m.CollectionGuarantees))
	for _, g := range m.CollectionGuarantees {
		guarantees = append(guarantees, flow.CollectionGuarantee{CollectionID: flow.BytesToID(g.CollectionId)})
	}
	seals := make([]flow.BlockSeal, 0, len(m.BlockSeals))
	for _, s := range m.BlockSeals {
		seals = append(seals, flow.BlockSeal{
			BlockID:            flow.BytesToID(s.BlockId),
			ExecutionReceiptID: flow.BytesToID(s.ExecutionReceiptId),
		})
	}
	return flow.Block{
		BlockHeader: flow.BlockHeader{
			ID:        flow.BytesToID(m.Id),
			ParentID:  flow.BytesToID(m.ParentId),
			Height:    m.Height,
			Timestamp: m.Timestamp.AsTime(),
		},
		CollectionGuarantees: guarantees,
		Seals:                seals,
		Signatures:           m.Signatures,
	}, nil
}

func eventFromMessage(m *entities.Event) flow.Event {
	return flow.Event{
		Type:             m.Type,
		TransactionID:    flow.BytesToID(m.TransactionId),
		TransactionIndex: m.TransactionIndex,
		EventIndex:       m.EventIndex,
		Payload:          m.Payload,
	}
}

func eventsFromMessage(ms []*entities.Event) []flow.Event {
	res := make([]flow.Event, 0, len(ms))
	for _, m := range ms {
		res = append(res, eventFromMessage(m))
	}
	return res
}

func blockEventsFromMessage(results []*accessproto.EventsResponse_Result) []flow.BlockEvents {
	res := make([]flow.BlockEvents, 0, len(results))
	for _, r := range results {
		res = append(res, flow.BlockEvents{
			BlockID:        flow.BytesToID(r.BlockId),
			Height:         r.BlockHeight,
			BlockTimestamp: r.BlockTimestamp.AsTime(),
			Events:         eventsFromMessage(r.Events),
		})
	}
	return res
}

func collectionFromMessage(m *entities.Collection) (flow.Collection, error) {
	if m == nil {
		return flow.Collection{}, fmt.Errorf("%w: collection", ErrEmptyResponse)
	}
	ids := make([]flow.Identifier, 0, len(m.TransactionIds))
	for _, id := range m.TransactionIds {
		ids = append(ids, flow.BytesToID(id))
	}
	return flow.Collection{ID: flow.BytesToID(m.Id), TransactionIDs: ids}, nil
}

func transactionResultFromMessage(m *accessproto.TransactionResultResponse) (flow.TransactionResult, error) {
	if m == nil {
		return flow.TransactionResult{}, fmt.Errorf("%w: transaction result", ErrEmptyResponse)
	}
	return flow.TransactionResult{
		Status:       flow.TransactionStatus(m.Status),
		StatusCode:   m.StatusCode,
		ErrorMessage: m.ErrorMessage,
		Events:       eventsFromMessage(m.Events),
		BlockID:      flow.BytesToID(m.BlockId),
		BlockHeight:  m.BlockHeight,
	}, nil
}

func transactionToMessage(tx *flow.Transaction) *entities.Transaction {
	authorizers := make([][]byte, 0, len(tx.Authorizers))
	for _, a := range tx.Authorizers {
		authorizers = append(authorizers, a.Bytes())
	}
	return &entities.Transaction{
		Script:           tx.Script,
		Arguments:        tx.Arguments,
		ReferenceBlockId: tx.ReferenceBlockID.Bytes(),
		GasLimit:         tx.GasLimit,
		ProposalKey: &entities.Transaction_ProposalKey{
			Address:        tx.ProposalKey.Address.Bytes(),
			KeyId:          tx.ProposalKey.KeyIndex,
			SequenceNumber: tx.ProposalKey.SequenceNumber,
		},
		Payer:              tx.Payer.Bytes(),
		Authorizers:        authorizers,
		PayloadSignatures:  signaturesToMessage(tx.PayloadSignatures),
		EnvelopeSignatures: signaturesToMessage(tx.EnvelopeSignatures),
	}
}

func signaturesToMessage(sigs []flow.TransactionSignature) []*entities.Transaction_Signature {
	res := make([]*entities.Transaction_Signature, 0, len(sigs))
	for _, s := range sigs {
		res = append(res, &entities.Transaction_Signature{
			Address:   s.Address.Bytes(),
			KeyId:     s.KeyIndex,
			Signature: s.Signature,
		})
	}
	return res
}

func transactionFromMessage(m *entities.Transaction) (*flow.Transaction, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: transaction", ErrEmptyResponse)
	}
	tx := flow.NewTransaction().
		SetScript(m.Script).
		SetReferenceBlockID(flow.BytesToID(m.ReferenceBlockId)).
		SetGasLimit(m.GasLimit).
		SetPayer(flow.BytesToAddress(m.Payer))
	for _, arg := range m.Arguments {
		tx.AddRawArgument(arg)
	}
	if pk := m.ProposalKey; pk != nil {
		tx.SetProposalKey(flow.BytesToAddress(pk.Address), pk.KeyId, pk.SequenceNumber)
	}
	for _, a := range m.Authorizers {
		tx.AddAuthorizer(flow.BytesToAddress(a))
	}
	for _, s := range m.PayloadSignatures {
		if err := tx.AddPayloadSignature(flow.BytesToAddress(s.Address), s.KeyId, s.Signature); err != nil {
			return nil, fmt.Errorf("payload signature: %w", err)
		}
	}
	for _, s := range m.EnvelopeSignatures {
		if err := tx.AddEnvelopeSignature(flow.BytesToAddress(s.Address), s.KeyId, s.Signature); err != nil {
			return nil, fmt.Errorf("envelope signature: %w", err)
		}
	}
	return tx, nil
}
