package metrics

import (
	"math/big"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/oceanlink/oceanlink-settler/models"
)

var (
	PlansProposed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settler_plans_proposed_total",
		Help: "The total number of execution plans proposed by the solver",
	})

	IntentsMatched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settler_intents_matched_total",
		Help: "The total number of intents moved from PENDING to MATCHED",
	})

	IntentsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settler_intents_skipped_total",
		Help: "Pending intents left out of a solver cycle",
	}, []string{"reason"})

	NettedVolume = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settler_netted_volume_total",
		Help: "Token base units moved by proposed transfers",
	}, []string{"chain_id"})

	PlansFinalized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settler_plans_finalized_total",
		Help: "Execution plans finalized by the executor",
	}, []string{"status"})

	ChainSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settler_chain_submissions_total",
		Help: "executeTransfers calls by chain and outcome",
	}, []string{"chain_id", "status"})

	VaultTransactionsIndexed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settler_vault_transactions_indexed_total",
		Help: "Vault events appended to the ledger",
	}, []string{"chain_id", "type"})

	IndexerBlockNumber = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "settler_indexer_block_number",
		Help: "Highest block processed by the indexer",
	}, []string{"chain_id"})

	IndexerWindowErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settler_indexer_window_errors_total",
		Help: "Scan windows that could not be fully processed",
	}, []string{"chain_id"})

	LockContention = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settler_lock_contention_total",
		Help: "Cycles skipped because another instance held the lock",
	}, []string{"service"})

	CycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "settler_cycle_duration_seconds",
		Help:    "Time taken by one solver, executor or indexer cycle",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	}, []string{"service"})
)

// AddVolume records a transfer amount; precision loss above 2^53 is accepted.
func AddVolume(chainID uint64, amount models.Amount) {
	volume, _ := new(big.Float).SetInt(amount.Big()).Float64()
	NettedVolume.WithLabelValues(models.ChainKey(chainID)).Add(volume)
}
