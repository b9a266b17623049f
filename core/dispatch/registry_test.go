package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helix-onchain/filecoin/core/method"
)

func nopHandler(context.Context, []byte) ([]byte, error) { return nil, nil }

// fixedHasher returns the same digest for every name, forcing collisions.
type fixedHasher []byte

func (f fixedHasher) Sum([]byte) []byte { return f }

func TestBuilder_named_methods(t *testing.T) {
	tbl, err := NewBuilder().
		Handle("Transfer", nopHandler).
		Handle("Mint", nopHandler).
		Handle("Burn", nopHandler).
		Build()
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())

	for _, n := range tbl.Numbers() {
		require.GreaterOrEqual(t, n, method.FirstAvailable)
	}
}

func TestBuilder_explicit_reserved_allowed(t *testing.T) {
	tbl, err := NewBuilder().
		HandleNumber("Send", method.MethodSend, nopHandler).
		HandleNumber("Constructor", method.MethodConstructor, nopHandler).
		Build()
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())

	_, ok := tbl.Lookup(0)
	require.True(t, ok)
	_, ok = tbl.Lookup(1)
	require.True(t, ok)
}

func TestBuilder_explicit_reserved_misuse(t *testing.T) {
	tbl, err := NewBuilder().
		HandleNumber("Sneaky", 5, nopHandler).
		Build()
	require.Nil(t, tbl)

	var rerr *ReservedNumberError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, method.Number(5), rerr.Attempted)
}

func TestBuilder_explicit_above_reserved_range(t *testing.T) {
	tbl, err := NewBuilder().
		HandleNumber("Pinned", method.FirstAvailable+42, nopHandler).
		Build()
	require.NoError(t, err)

	_, ok := tbl.Lookup(method.FirstAvailable + 42)
	require.True(t, ok)
}

func TestBuilder_duplicate_selector(t *testing.T) {
	// fixed digest: every hashed name resolves to the same selector
	r := method.NewResolverWith(fixedHasher{0xca, 0xfe, 0xba, 0xbe})

	tbl, err := NewBuilderWith(r).
		Handle("Transfer", nopHandler).
		Handle("Mint", nopHandler).
		Build()
	require.Nil(t, tbl)

	var derr *DuplicateSelectorError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, []string{"Transfer", "Mint"}, derr.Names)
	require.Equal(t, method.Number(0xcafebabe), derr.Selector)
}

func TestBuilder_duplicate_explicit_vs_hashed(t *testing.T) {
	r := method.NewResolverWith(fixedHasher{0xca, 0xfe, 0xba, 0xbe})

	tbl, err := NewBuilderWith(r).
		HandleNumber("Pinned", 0xcafebabe, nopHandler).
		Handle("Transfer", nopHandler).
		Build()
	require.Nil(t, tbl)

	var derr *DuplicateSelectorError
	require.ErrorAs(t, err, &derr)
	require.Equal(t, []string{"Pinned", "Transfer"}, derr.Names)
}

func TestBuilder_empty_name(t *testing.T) {
	_, err := NewBuilder().Handle("", nopHandler).Build()
	require.ErrorIs(t, err, method.ErrEmptyMethodName)
}

func TestBuilder_illegal_name(t *testing.T) {
	_, err := NewBuilder().Handle("lowercase", nopHandler).Build()
	require.ErrorIs(t, err, method.ErrIllegalMethodName)
}
