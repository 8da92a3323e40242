package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplorer_AddressBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/address/bc1qa":
			fmt.Fprint(w, `{"chain_stats":{"funded_txo_sum":1200,"spent_txo_sum":0},"mempool_stats":{"funded_txo_sum":300,"spent_txo_sum":0}}`)
		case "/api/address/bc1qa/txs":
			fmt.Fprint(w, `[{"txid":"tx-1","vout":[]},{"txid":"tx-2","vout":[]}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	e := NewExplorer(server.URL, server.Client())

	balance, err := e.AddressBalance(context.Background(), "bc1qa")
	require.NoError(t, err)
	assert.Equal(t, int64(1200), balance.Confirmed)
	assert.Equal(t, int64(300), balance.Unconfirmed)
	assert.Equal(t, []string{"tx-1", "tx-2"}, balance.TxIDs)
}

func TestExplorer_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	e := NewExplorer(server.URL, server.Client())

	_, err := e.AddressBalance(context.Background(), "bc1qa")
	assert.Error(t, err)
}

func TestExplorer_Restart(t *testing.T) {
	old := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer old.Close()
	next := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/address/bc1qa":
			fmt.Fprint(w, `{"chain_stats":{"funded_txo_sum":500},"mempool_stats":{}}`)
		case "/api/address/bc1qa/txs":
			fmt.Fprint(w, `[]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer next.Close()

	e := NewExplorer(old.URL, http.DefaultClient)
	e.Restart(next.URL)

	balance, err := e.AddressBalance(context.Background(), "bc1qa")
	require.NoError(t, err)
	assert.Equal(t, int64(500), balance.Confirmed)
}
