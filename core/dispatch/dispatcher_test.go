package dispatch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helix-onchain/filecoin/core/method"
)

func TestDispatch_hit(t *testing.T) {
	calls := 0
	tbl, err := NewBuilder().
		Handle("Echo", func(ctx context.Context, params []byte) ([]byte, error) {
			calls++
			return params, nil
		}).
		Build()
	require.NoError(t, err)

	selector := tbl.Numbers()[0]
	out, err := Dispatch(t.Context(), tbl, selector, []byte("hello"))
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), out)
	require.Equal(t, 1, calls)
}

func TestDispatch_miss_invokes_nothing(t *testing.T) {
	calls := 0
	tbl, err := NewBuilder().
		Handle("Echo", func(ctx context.Context, params []byte) ([]byte, error) {
			calls++
			return params, nil
		}).
		Build()
	require.NoError(t, err)

	out, err := Dispatch(t.Context(), tbl, 999999, nil)
	require.Nil(t, out)
	require.Zero(t, calls)

	var merr *MethodNotFoundError
	require.ErrorAs(t, err, &merr)
	require.Equal(t, method.Number(999999), merr.Selector)
}

func TestDispatch_handler_failure_passes_through(t *testing.T) {
	failure := fmt.Errorf("insufficient balance")
	tbl, err := NewBuilder().
		Handle("Fail", func(ctx context.Context, params []byte) ([]byte, error) {
			return []byte("partial"), failure
		}).
		Build()
	require.NoError(t, err)

	out, err := Dispatch(t.Context(), tbl, tbl.Numbers()[0], nil)
	require.ErrorIs(t, err, failure)
	require.Equal(t, []byte("partial"), out)
}

func TestDispatcher_instrumented(t *testing.T) {
	tbl, err := NewBuilder().
		Handle("Echo", func(ctx context.Context, params []byte) ([]byte, error) {
			return params, nil
		}).
		Build()
	require.NoError(t, err)

	d := NewDispatcher(tbl, DispatcherOptions{})

	out, err := d.Dispatch(t.Context(), tbl.Numbers()[0], []byte("x"))
	require.NoError(t, err)
	require.Equal(t, []byte("x"), out)

	_, err = d.Dispatch(t.Context(), 7, nil)
	var merr *MethodNotFoundError
	require.ErrorAs(t, err, &merr)
}

func TestDispatch_end_to_end(t *testing.T) {
	invoked := map[string]int{}
	handle := func(name string) Handler {
		return func(ctx context.Context, params []byte) ([]byte, error) {
			invoked[name]++
			return []byte(name), nil
		}
	}

	tbl, err := NewBuilder().
		Constructor(handle("Constructor")).
		Handle("Transfer", handle("Transfer")).
		Handle("Mint", handle("Mint")).
		Handle("Burn", handle("Burn")).
		Build()
	require.NoError(t, err)
	require.Equal(t, 4, tbl.Len())

	// all hashed selectors are distinct and in the open range
	seen := map[method.Number]bool{}
	for _, n := range tbl.Numbers() {
		require.False(t, seen[n])
		seen[n] = true
		if n != method.MethodConstructor {
			require.GreaterOrEqual(t, n, method.FirstAvailable)
		}
	}

	out, err := Dispatch(t.Context(), tbl, method.MethodConstructor, []byte("params"))
	require.NoError(t, err)
	require.Equal(t, []byte("Constructor"), out)
	require.Equal(t, 1, invoked["Constructor"])

	_, err = Dispatch(t.Context(), tbl, 999999, []byte("params"))
	var merr *MethodNotFoundError
	require.ErrorAs(t, err, &merr)
	require.Equal(t, method.Number(999999), merr.Selector)
}
