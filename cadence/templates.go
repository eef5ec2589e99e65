package cadence

// Templates are the Cadence transactions used by the account operations.
// Every template is signed by a single account acting as proposer, payer and authorizer.
type Templates struct {
	// CreateAccount takes (publicKeys: [String], contracts: {String: String})
	CreateAccount string
	// AddKey takes (publicKey: String)
	AddKey string
	// RemoveKey takes (keyIndex: Int)
	RemoveKey string
	// AddContract and UpdateContract take (name: String, code: String), code hex encoded
	AddContract    string
	UpdateContract string
	// RemoveContract takes (name: String)
	RemoveContract string
	// EncodedKeys is true when the key arguments must be RLP encoded account keys
	// instead of raw hex public keys
	EncodedKeys bool
}

// DefaultTemplates returns the Cadence 1.0 account templates.
// Keys are added as ECDSA_P256 / SHA3_256 with full weight.
func DefaultTemplates() Templates {
	return Templates{
		CreateAccount:  createAccountTemplate,
		AddKey:         addKeyTemplate,
		RemoveKey:      removeKeyTemplate,
		AddContract:    addContractTemplate,
		UpdateContract: updateContractTemplate,
		RemoveContract: removeContractTemplate,
	}
}

// LegacyTemplates returns the pre Cadence 1.0 templates based on AuthAccount
func LegacyTemplates() Templates {
	return Templates{
		CreateAccount:  legacyCreateAccountTemplate,
		AddKey:         legacyAddKeyTemplate,
		RemoveKey:      legacyRemoveKeyTemplate,
		AddContract:    legacyAddContractTemplate,
		UpdateContract: legacyUpdateContractTemplate,
		RemoveContract: legacyRemoveContractTemplate,
		EncodedKeys:    true,
	}
}

const createAccountTemplate = `
transaction(publicKeys: [String], contracts: {String: String}) {
	prepare(signer: auth(BorrowValue) &Account) {
		let acct = Account(payer: signer)

		for key in publicKeys {
			acct.keys.add(
				publicKey: PublicKey(
					publicKey: key.decodeHex(),
					signatureAlgorithm: SignatureAlgorithm.ECDSA_P256
				),
				hashAlgorithm: HashAlgorithm.SHA3_256,
				weight: 1000.0
			)
		}

		for contract in contracts.keys {
			acct.contracts.add(name: contract, code: contracts[contract]!.decodeHex())
		}
	}
}
`

const addKeyTemplate = `
transaction(publicKey: String) {
	prepare(signer: auth(AddKey) &Account) {
		signer.keys.add(
			publicKey: PublicKey(
				publicKey: publicKey.decodeHex(),
				signatureAlgorithm: SignatureAlgorithm.ECDSA_P256
			),
			hashAlgorithm: HashAlgorithm.SHA3_256,
			weight: 1000.0
		)
	}
}
`

const removeKeyTemplate = `
transaction(keyIndex: Int) {
	prepare(signer: auth(RevokeKey) &Account) {
		signer.keys.revoke(keyIndex: keyIndex)
	}
}
`

const addContractTemplate = `
transaction(name: String, code: String) {
	prepare(signer: auth(AddContract) &Account) {
		signer.contracts.add(name: name, code: code.decodeHex())
	}
}
`

const updateContractTemplate = `
transaction(name: String, code: String) {
	prepare(signer: auth(UpdateContract) &Account) {
		signer.contracts.update(name: name, code: code.decodeHex())
	}
}
`

const removeContractTemplate = `
transaction(name: String) {
	prepare(signer: auth(RemoveContract) &Account) {
		signer.contracts.remove(name: name)
	}
}
`

const legacyCreateAccountTemplate = `
transaction(publicKeys: [String], contracts: {String: String}) {
	prepare(signer: AuthAccount) {
		let acct = AuthAccount(payer: signer)

		for key in publicKeys {
			acct.addPublicKey(key.decodeHex())
		}

		for contract in contracts.keys {
			acct.contracts.add(name: contract, code: contracts[contract]!.decodeHex())
		}
	}
}
`

const legacyAddKeyTemplate = `
transaction(publicKey: String) {
	prepare(signer: AuthAccount) {
		signer.addPublicKey(publicKey.decodeHex())
	}
}
`

const legacyRemoveKeyTemplate = `
transaction(keyIndex: Int) {
	prepare(signer: AuthAccount) {
		signer.removePublicKey(keyIndex)
	}
}
`

const legacyAddContractTemplate = `
transaction(name: String, code: String) {
	prepare(signer: AuthAccount) {
		signer.contracts.add(name: name, code: code.decodeHex())
	}
}
`

const legacyUpdateContractTemplate = `
transaction(name: String, code: String) {
	prepare(signer: AuthAccount) {
		signer.contracts.update__experimental(name: name, code: code.decodeHex())
	}
}
`

const legacyRemoveContractTemplate = `
transaction(name: String) {
	prepare(signer: AuthAccount) {
		signer.contracts.remove(name: name)
	}
}
`
