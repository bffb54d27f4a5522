package questions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	bank, err := Load()

	require.NoError(t, err)
	require.NotEmpty(t, bank.All())

	for _, q := range bank.All() {
		require.NotEmpty(t, q.Title)
		require.NotEmpty(t, q.Answer)
	}
}

func TestRandom_DrawsFromBank(t *testing.T) {
	t.Parallel()

	bank, err := Load()
	require.NoError(t, err)

	known := make(map[string]bool, len(bank.All()))
	for _, q := range bank.All() {
		known[q.Title] = true
	}

	for range 50 {
		q := bank.Random()
		require.True(t, known[q.Title])
	}
}
