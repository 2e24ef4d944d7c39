// Package ledger is the persistent record of intents, execution plans and
// indexed vault transactions shared by the solver, executor and indexer.
package ledger

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oceanlink/oceanlink-settler/models"
)

var (
	// ErrPersistence marks any failure of the underlying store.
	ErrPersistence = errors.New("persistence error")
	ErrNotFound    = errors.New("not found")
	// ErrConflict is returned when a conditional write finds the record in an
	// unexpected state, e.g. an intent that is no longer PENDING.
	ErrConflict  = errors.New("conflicting state")
	ErrDuplicate = errors.New("duplicate record")
)

type Ledger interface {
	// FindPendingIntents returns every PENDING intent oldest first.
	FindPendingIntents() ([]models.Intent, error)
	FindIntentsByIds(ids []primitive.ObjectID) ([]models.Intent, error)

	// CreatePlan stores a PROPOSED plan and moves every involved intent from
	// PENDING to MATCHED in one atomic step. If any intent is not PENDING
	// nothing is written and ErrConflict is returned.
	CreatePlan(plan models.ExecutionPlan) error
	FindProposedPlans(limit int64) ([]models.ExecutionPlan, error)
	FindPlan(id string) (*models.ExecutionPlan, error)
	// FailPlan moves a PROPOSED plan to FAILED. Involved intents are left as
	// they are.
	FailPlan(id string, reason string, chainTxHashes map[string]string) error
	// CompletePlan moves a PROPOSED plan to EXECUTED and every involved intent
	// to EXECUTED in one atomic step.
	CompletePlan(plan models.ExecutionPlan, chainTxHashes map[string]string) error

	// FindLatestVaultTransaction returns the recorded transaction with the
	// highest block number for the vault, or nil when there is none.
	FindLatestVaultTransaction(chainID uint64, vaultAddress string) (*models.VaultTransaction, error)
	VaultTransactionExists(chainID uint64, txHash string) (bool, error)
	// InsertVaultTransaction returns ErrDuplicate when (tx_hash, chain_id) is
	// already recorded.
	InsertVaultTransaction(tx models.VaultTransaction) error
}

func persistenceError(op string, err error) error {
	if errors.Is(err, ErrPersistence) || errors.Is(err, ErrConflict) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
