package cadence

import (
	"testing"

	"github.com/0xPolygon/flowclient/flow"
	"github.com/stretchr/testify/require"
)

const accountCreatedPayload = `{"type":"Event","value":{"id":"flow.AccountCreated","fields":[` +
	`{"name":"address","value":{"type":"Address","value":"0x01cf0e2f2f715450"}}]}}`

func TestEventField(t *testing.T) {
	v, err := EventField([]byte(accountCreatedPayload), "address")
	require.NoError(t, err)
	addr, err := v.Address()
	require.NoError(t, err)
	require.Equal(t, flow.MustHexToAddress("01cf0e2f2f715450"), addr)

	_, err = EventField([]byte(accountCreatedPayload), "missing")
	require.ErrorIs(t, err, ErrFieldNotFound)

	_, err = EventField([]byte(`{"type":"String","value":"x"}`), "address")
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDecodeScalars(t *testing.T) {
	v, err := Decode([]byte(`{"type":"UInt64","value":"42"}`))
	require.NoError(t, err)
	n, err := v.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(42), n)
	_, err = v.Address()
	require.ErrorIs(t, err, ErrTypeMismatch)

	v, err = Decode([]byte(`{"type":"Int","value":"-7"}`))
	require.NoError(t, err)
	bi, err := v.BigInt()
	require.NoError(t, err)
	require.Equal(t, int64(-7), bi.Int64())
	_, err = v.Uint64()
	require.ErrorIs(t, err, ErrTypeMismatch)

	v, err = Decode([]byte(`{"type":"UFix64","value":"10.5"}`))
	require.NoError(t, err)
	f, err := v.UFix64()
	require.NoError(t, err)
	require.Equal(t, uint64(1_050_000_000), f)

	v, err = Decode([]byte(`{"type":"Bool","value":true}`))
	require.NoError(t, err)
	b, err := v.Bool()
	require.NoError(t, err)
	require.True(t, b)

	v, err = Decode([]byte(`{"type":"String","value":"hi"}`))
	require.NoError(t, err)
	s, err := v.String()
	require.NoError(t, err)
	require.Equal(t, "hi", s)
}

func TestDecodeContainers(t *testing.T) {
	doc := `{"type":"Optional","value":{"type":"Array","value":[` +
		`{"type":"Dictionary","value":[{"key":{"type":"String","value":"k"},"value":{"type":"UInt8","value":"1"}}]},` +
		`{"type":"Struct","value":{"id":"A.01.Foo.Bar","fields":[{"name":"n","value":{"type":"String","value":"v"}}]}}` +
		`]}}`
	v, err := Decode([]byte(doc))
	require.NoError(t, err)
	require.False(t, v.IsNil())

	arr, ok := v.Unwrap()
	require.True(t, ok)
	require.Equal(t, "Array", arr.Type)
	require.Len(t, arr.Elements(), 2)

	entries := arr.Elements()[0].Entries()
	require.Len(t, entries, 1)
	key, err := entries[0].Key.String()
	require.NoError(t, err)
	require.Equal(t, "k", key)

	st := arr.Elements()[1]
	require.Equal(t, "A.01.Foo.Bar", st.ID)
	require.Len(t, st.Fields(), 1)
	field, err := st.Field("n")
	require.NoError(t, err)
	s, err := field.String()
	require.NoError(t, err)
	require.Equal(t, "v", s)

	nilOpt, err := Decode([]byte(`{"type":"Optional","value":null}`))
	require.NoError(t, err)
	require.True(t, nilOpt.IsNil())
	_, ok = nilOpt.Unwrap()
	require.False(t, ok)
}

func TestDecodeInvalid(t *testing.T) {
	for _, doc := range []string{
		`not json`,
		`{"value":"x"}`,
		`{"type":"Array","value":"x"}`,
		`{"type":"Event","value":{"id":"x","fields":[{"name":"a","value":{"value":1}}]}}`,
	} {
		_, err := Decode([]byte(doc))
		require.Error(t, err, doc)
	}
}

func TestTemplates(t *testing.T) {
	def := DefaultTemplates()
	require.False(t, def.EncodedKeys)
	require.Contains(t, def.CreateAccount, "Account(payer: signer)")
	require.Contains(t, def.UpdateContract, "signer.contracts.update(")

	legacy := LegacyTemplates()
	require.True(t, legacy.EncodedKeys)
	require.Contains(t, legacy.CreateAccount, "AuthAccount(payer: signer)")
	require.Contains(t, legacy.UpdateContract, "update__experimental")

	for _, tpl := range []Templates{def, legacy} {
		for _, s := range []string{tpl.CreateAccount, tpl.AddKey, tpl.RemoveKey, tpl.AddContract, tpl.UpdateContract, tpl.RemoveContract} {
			require.NotEmpty(t, s)
			require.Contains(t, s, "transaction(")
		}
	}
}
