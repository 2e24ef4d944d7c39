package models

import (
	"sort"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionExecutionPlans = "execution_plans"
)

type PlanStatus string

const (
	PlanStatusProposed PlanStatus = "PROPOSED"
	PlanStatusExecuted PlanStatus = "EXECUTED"
	PlanStatusFailed   PlanStatus = "FAILED"
)

// Transfer is a single leg of a plan, applied on one chain's vault.
type Transfer struct {
	ChainID uint64 `bson:"chain_id" json:"chain_id"`
	From    string `bson:"from" json:"from"`
	To      string `bson:"to" json:"to"`
	Amount  Amount `bson:"amount" json:"amount"`
}

type ExecutionPlan struct {
	Id                string               `bson:"_id" json:"id"`
	Transfers         []Transfer           `bson:"transfers" json:"transfers"`
	InvolvedIntentIds []primitive.ObjectID `bson:"involved_intent_ids" json:"involved_intent_ids"`
	Status            PlanStatus           `bson:"status" json:"status"`
	ChainTxHashes     map[string]string    `bson:"chain_tx_hashes,omitempty" json:"chain_tx_hashes,omitempty"`
	FailureReason     string               `bson:"failure_reason,omitempty" json:"failure_reason,omitempty"`
	CreatedAt         time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time            `bson:"updated_at" json:"updated_at"`
}

// TransfersByChain groups the plan's legs by chain, keeping leg order within a chain.
func (p *ExecutionPlan) TransfersByChain() map[uint64][]Transfer {
	groups := make(map[uint64][]Transfer)
	for _, t := range p.Transfers {
		groups[t.ChainID] = append(groups[t.ChainID], t)
	}
	return groups
}

// ChainIDs returns the distinct chains touched by the plan in ascending order.
func (p *ExecutionPlan) ChainIDs() []uint64 {
	seen := make(map[uint64]bool)
	var ids []uint64
	for _, t := range p.Transfers {
		if !seen[t.ChainID] {
			seen[t.ChainID] = true
			ids = append(ids, t.ChainID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func ChainKey(chainID uint64) string {
	return strconv.FormatUint(chainID, 10)
}
