package domain

// TxOutput is a single output of an observed transaction, as reported by the
// upstream feed or the explorer API.
type TxOutput struct {
	ScriptpubkeyAddress string `json:"scriptpubkey_address"`
	Value               int64  `json:"value"`
}

// Transaction is an observed on-chain transaction. Only the outputs matter
// for settlement; inputs are ignored.
type Transaction struct {
	TxID string     `json:"txid"`
	Vout []TxOutput `json:"vout"`
}

// AddressTxs is one demultiplexed feed event: the transactions currently
// known for a tracked address, partitioned by confirmation status.
type AddressTxs struct {
	Address   string
	Confirmed []Transaction
	Mempool   []Transaction
}

// SumOutputs totals the outputs of txs paying address. Change and unrelated
// outputs in the same transaction are excluded.
func SumOutputs(address string, txs []Transaction) int64 {
	var total int64
	for _, tx := range txs {
		for _, out := range tx.Vout {
			if out.ScriptpubkeyAddress == address {
				total += out.Value
			}
		}
	}
	return total
}

// TxIDs collects the transaction ids of txs, in order.
func TxIDs(txs ...[]Transaction) []string {
	var ids []string
	for _, set := range txs {
		for _, tx := range set {
			ids = append(ids, tx.TxID)
		}
	}
	return ids
}

// OnchainBalance is the funded totals for an address, as returned by the
// explorer API during startup reconciliation and manual balance checks.
type OnchainBalance struct {
	Confirmed   int64
	Unconfirmed int64
	TxIDs       []string
}
