package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/helix-onchain/filecoin/adapters/nats"
	"github.com/helix-onchain/filecoin/core/actor"
	"github.com/helix-onchain/filecoin/core/dispatch"
	"github.com/helix-onchain/filecoin/core/method"
	"github.com/helix-onchain/filecoin/core/node"
)

type transferParams struct {
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

func newTokenTable(t *testing.T) *dispatch.Table {
	balances := map[string]int64{"alice": 100}

	tbl, err := dispatch.NewBuilder().
		Constructor(func(ctx context.Context, params []byte) ([]byte, error) {
			return nil, nil
		}).
		Handle("Transfer", func(ctx context.Context, params []byte) ([]byte, error) {
			var p transferParams
			if err := json.Unmarshal(params, &p); err != nil {
				return nil, err
			}
			if balances["alice"] < p.Amount {
				return nil, fmt.Errorf("insufficient balance")
			}
			balances["alice"] -= p.Amount
			balances[p.To] += p.Amount
			return json.Marshal(balances[p.To])
		}).
		Handle("BalanceOf", func(ctx context.Context, params []byte) ([]byte, error) {
			return json.Marshal(balances[string(params)])
		}).
		Build()
	require.NoError(t, err)
	return tbl
}

func TestIntegration_NATS(t *testing.T) {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	connect := nats.NewTestContainer(t)

	tp, err := nats.NewTransport(nats.TransportConfig{
		Connect:       nats.ReuseConnection(connect),
		Log:           slog.Default(),
		SubjectPrefix: "test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Close() })

	// server side: node hosting the token actor
	a := actor.New(newTokenTable(t), actor.Options{
		ID:      "token",
		Context: t.Context(),
	})
	t.Cleanup(a.Stop)

	n := node.NewNode(node.NodeOptions{Transport: tp})
	require.NoError(t, n.AddActor(t.Context(), a))

	// client side: messenger resolving names to selectors
	m, err := node.NewMessenger(node.MessengerOptions{Transport: tp})
	require.NoError(t, err)

	t.Run("constructor", func(t *testing.T) {
		_, err := m.CallNumber(t.Context(), "token", method.MethodConstructor, nil)
		require.NoError(t, err)
	})

	t.Run("transfer", func(t *testing.T) {
		params, _ := json.Marshal(transferParams{To: "bob", Amount: 40})
		out, err := m.Call(t.Context(), "token", "Transfer", params)
		require.NoError(t, err)
		require.JSONEq(t, "40", string(out))
	})

	t.Run("balance", func(t *testing.T) {
		out, err := m.Call(t.Context(), "token", "BalanceOf", []byte("alice"))
		require.NoError(t, err)
		require.JSONEq(t, "60", string(out))
	})

	t.Run("handler failure passes through", func(t *testing.T) {
		params, _ := json.Marshal(transferParams{To: "bob", Amount: 10_000})
		_, err := m.Call(t.Context(), "token", "Transfer", params)
		require.ErrorContains(t, err, "insufficient balance")
	})

	t.Run("unknown selector", func(t *testing.T) {
		_, err := m.CallNumber(t.Context(), "token", 999999, nil)
		require.ErrorContains(t, err, "999999")
	})

	t.Run("bare send", func(t *testing.T) {
		require.NoError(t, m.Send(t.Context(), "token"))
	})
}
