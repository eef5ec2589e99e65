package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsNeeded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		needed   []string
		actual   []string
		expected bool
	}{
		{name: "no components", needed: []string{RPC}, actual: nil, expected: false},
		{name: "match", needed: []string{RPC, EVENT_WATCHER}, actual: []string{EVENT_WATCHER}, expected: true},
		{name: "no match", needed: []string{EVENT_WATCHER}, actual: []string{RPC, METRICS}, expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, IsNeeded(tt.needed, tt.actual))
		})
	}
	require.Len(t, Components(), 3)
}

func TestParseComponents(t *testing.T) {
	components, err := ParseComponents([]string{RPC, EVENT_WATCHER, RPC, " " + EVENT_WATCHER, METRICS})
	require.NoError(t, err)
	require.Equal(t, []string{RPC, EVENT_WATCHER, METRICS}, components)

	components, err = ParseComponents(nil)
	require.NoError(t, err)
	require.Empty(t, components)

	_, err = ParseComponents([]string{RPC, "sequencer"})
	require.ErrorIs(t, err, ErrUnknownComponent)
}
