package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	tcs := []struct {
		input       string
		expected    time.Duration
		expectedErr bool
	}{
		{input: "10s", expected: 10 * time.Second},
		{input: "250ms", expected: 250 * time.Millisecond},
		{input: "1h5m", expected: time.Hour + 5*time.Minute},
		{input: "ten", expectedErr: true},
	}
	for _, tc := range tcs {
		t.Run(tc.input, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tc.input))
			if tc.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, d.Duration)
			text, err := d.MarshalText()
			require.NoError(t, err)
			require.Equal(t, tc.expected.String(), string(text))
		})
	}
}

func TestKeystoreFileConfigIsEmpty(t *testing.T) {
	require.True(t, KeystoreFileConfig{}.IsEmpty())
	require.False(t, KeystoreFileConfig{Path: "/tmp/key"}.IsEmpty())
}
