// Package executor enacts PROPOSED execution plans on chain and settles them
// as EXECUTED or FAILED.
package executor

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"
	lock "github.com/square/mongo-lock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oceanlink/oceanlink-settler/app"
	"github.com/oceanlink/oceanlink-settler/eth/client"
	"github.com/oceanlink/oceanlink-settler/eth/util"
	"github.com/oceanlink/oceanlink-settler/ledger"
	"github.com/oceanlink/oceanlink-settler/metrics"
	"github.com/oceanlink/oceanlink-settler/models"
)

const (
	ExecutorName = "EXECUTOR"

	LockResource = "locks/executor"
)

var (
	// ErrValidation means the plan went stale between proposal and execution.
	// The plan is failed before any chain is touched.
	ErrValidation = errors.New("plan validation failed")
	// ErrChainExecution means a chain rejected or lost its batch. Chains that
	// already succeeded are not reverted.
	ErrChainExecution = errors.New("chain execution failed")
	// ErrPlanNotProposed is returned for plans that are already terminal. They
	// are left untouched.
	ErrPlanNotProposed = errors.New("plan is not proposed")
)

type PlanExecutorRunner struct {
	ledger    ledger.Ledger
	locker    app.Locker
	clients   map[uint64]client.ChainClient
	vaults    map[uint64]common.Address
	batchSize int64
	now       func() time.Time
}

func (x *PlanExecutorRunner) Run() {
	start := time.Now()
	defer func() {
		metrics.CycleDuration.WithLabelValues(ExecutorName).Observe(time.Since(start).Seconds())
	}()

	lockId, err := x.locker.XLock(LockResource)
	if err != nil {
		if errors.Is(err, lock.ErrAlreadyLocked) {
			metrics.LockContention.WithLabelValues(ExecutorName).Inc()
			log.Info("[EXECUTOR] Another executor holds the lock, skipping cycle")
			return
		}
		log.WithError(err).Error("[EXECUTOR] Error while locking executor")
		return
	}
	defer func() {
		if err := x.locker.Unlock(lockId); err != nil {
			log.WithError(err).Error("[EXECUTOR] Error while unlocking executor")
		}
	}()

	x.SyncPlans()
}

func (x *PlanExecutorRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{}
}

// SyncPlans processes up to one batch of the oldest PROPOSED plans. A failing
// plan does not stop the rest of the batch.
func (x *PlanExecutorRunner) SyncPlans() bool {
	plans, err := x.ledger.FindProposedPlans(x.batchSize)
	if err != nil {
		log.WithError(err).Error("[EXECUTOR] Error fetching proposed plans")
		return false
	}
	log.Info("[EXECUTOR] Found ", len(plans), " proposed plans")

	var success bool = true
	for _, plan := range plans {
		if err := x.ProcessPlan(plan); err != nil {
			log.WithField("plan_id", plan.Id).WithError(err).Error("[EXECUTOR] Plan not executed")
			success = false
		}
	}
	return success
}

// ProcessPlan validates and executes one plan and records the outcome.
func (x *PlanExecutorRunner) ProcessPlan(plan models.ExecutionPlan) error {
	logger := log.WithField("plan_id", plan.Id)

	current, err := x.ValidatePlan(plan)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			x.failPlan(plan.Id, err, nil)
		}
		return err
	}

	hashes, err := x.ExecutePlan(*current)
	if err != nil {
		x.failPlan(plan.Id, err, hashes)
		return err
	}

	if err := x.ledger.CompletePlan(*current, hashes); err != nil {
		// the transfers are on chain; the plan must not run again
		logger.WithError(err).Error("[EXECUTOR] Plan executed on chain but could not be completed")
		x.failPlan(plan.Id, fmt.Errorf("recording execution: %w", err), hashes)
		return err
	}

	metrics.PlansFinalized.WithLabelValues(string(models.PlanStatusExecuted)).Inc()
	logger.WithField("chain_tx_hashes", hashes).Info("[EXECUTOR] Plan executed")
	return nil
}

func (x *PlanExecutorRunner) failPlan(id string, cause error, hashes map[string]string) {
	logger := log.WithField("plan_id", id)
	if err := x.ledger.FailPlan(id, cause.Error(), hashes); err != nil {
		logger.WithError(err).Error("[EXECUTOR] Error marking plan failed")
		return
	}
	metrics.PlansFinalized.WithLabelValues(string(models.PlanStatusFailed)).Inc()
	logger.WithError(cause).Warn("[EXECUTOR] Plan failed")
}

// ValidatePlan re-reads the plan and its intents and returns the fresh plan.
// Nothing cached at proposal time is trusted.
func (x *PlanExecutorRunner) ValidatePlan(plan models.ExecutionPlan) (*models.ExecutionPlan, error) {
	current, err := x.ledger.FindPlan(plan.Id)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrPlanNotProposed, err)
		}
		return nil, err
	}
	if current.Status != models.PlanStatusProposed {
		return nil, fmt.Errorf("%w: plan %s is %s", ErrPlanNotProposed, current.Id, current.Status)
	}
	if len(current.Transfers) == 0 {
		return nil, fmt.Errorf("%w: plan %s has no transfers", ErrValidation, current.Id)
	}

	intents, err := x.ledger.FindIntentsByIds(current.InvolvedIntentIds)
	if err != nil {
		return nil, err
	}
	found := make(map[primitive.ObjectID]models.Intent, len(intents))
	for _, intent := range intents {
		if intent.Id != nil {
			found[*intent.Id] = intent
		}
	}

	now := x.now()
	for _, id := range current.InvolvedIntentIds {
		intent, ok := found[id]
		if !ok {
			return nil, fmt.Errorf("%w: intent %s not found", ErrValidation, id.Hex())
		}
		switch intent.Status {
		case models.IntentStatusExecuted, models.IntentStatusCancelled:
			return nil, fmt.Errorf("%w: intent %s is %s", ErrValidation, id.Hex(), intent.Status)
		}
		if intent.IsExpired(now) {
			return nil, fmt.Errorf("%w: intent %s expired at %d", ErrValidation, id.Hex(), intent.Expiry)
		}
	}
	return current, nil
}

// ExecutePlan submits one executeTransfers call per chain in ascending chain
// order and waits for each receipt before moving on. It stops at the first
// failure and returns the hashes of every transaction it submitted.
func (x *PlanExecutorRunner) ExecutePlan(plan models.ExecutionPlan) (map[string]string, error) {
	hashes := make(map[string]string)
	groups := plan.TransfersByChain()

	for _, chainID := range plan.ChainIDs() {
		logger := log.WithField("plan_id", plan.Id).WithField("chain_id", chainID)

		tx, err := x.executeOnChain(chainID, groups[chainID])
		if tx != nil {
			hashes[models.ChainKey(chainID)] = tx.Hash().Hex()
			logger = logger.WithField("tx_hash", tx.Hash().Hex())
		}
		if err != nil {
			metrics.ChainSubmissions.WithLabelValues(models.ChainKey(chainID), "failed").Inc()
			logger.WithError(err).Error("[EXECUTOR] Chain batch failed")
			return hashes, fmt.Errorf("%w: chain %d: %w", ErrChainExecution, chainID, err)
		}

		metrics.ChainSubmissions.WithLabelValues(models.ChainKey(chainID), "success").Inc()
		logger.WithField("transfers", len(groups[chainID])).Info("[EXECUTOR] Chain batch confirmed")
	}
	return hashes, nil
}

func (x *PlanExecutorRunner) executeOnChain(chainID uint64, transfers []models.Transfer) (*types.Transaction, error) {
	chainClient, ok := x.clients[chainID]
	if !ok || chainClient == nil {
		return nil, errors.New("no client configured")
	}
	vault, ok := x.vaults[chainID]
	if !ok {
		return nil, errors.New("no vault configured")
	}

	data, err := util.PackExecuteTransfers(transfers)
	if err != nil {
		return nil, fmt.Errorf("packing transfers: %w", err)
	}

	tx, err := chainClient.Submit(vault, data)
	if err != nil {
		return nil, fmt.Errorf("submitting transfers: %w", err)
	}

	receipt, err := chainClient.AwaitReceipt(tx)
	if err != nil {
		return tx, fmt.Errorf("waiting for receipt: %w", err)
	}
	if receipt == nil || receipt.Status != types.ReceiptStatusSuccessful {
		return tx, fmt.Errorf("transaction %s reverted", tx.Hash().Hex())
	}
	return tx, nil
}

func NewExecutor(l ledger.Ledger, locker app.Locker, clients map[uint64]client.ChainClient, config models.Config) *PlanExecutorRunner {
	vaults := make(map[uint64]common.Address, len(config.Chains))
	for _, chain := range config.Chains {
		vaults[chain.ChainID] = common.HexToAddress(chain.VaultAddress)
	}

	return &PlanExecutorRunner{
		ledger:    l,
		locker:    locker,
		clients:   clients,
		vaults:    vaults,
		batchSize: config.Executor.BatchSize,
		now:       time.Now,
	}
}
