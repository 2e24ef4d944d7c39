package ledger

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oceanlink/oceanlink-settler/models"
)

// MemoryLedger keeps the whole ledger in process. It honours the same
// atomicity and conditional-update rules as the mongo ledger and is used to
// run the solver, executor and indexer end to end in tests.
type MemoryLedger struct {
	mu       sync.Mutex
	intents  []models.Intent
	plans    []models.ExecutionPlan
	vaultTxs []models.VaultTransaction
	err      error
	now      func() time.Time
}

var _ Ledger = &MemoryLedger{}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{now: time.Now}
}

// WithError makes every subsequent call fail with a persistence error wrapping err.
func (m *MemoryLedger) WithError(err error) *MemoryLedger {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	return m
}

// AddIntent stores an intent, filling the id, status and creation time when unset.
func (m *MemoryLedger) AddIntent(intent models.Intent) models.Intent {
	m.mu.Lock()
	defer m.mu.Unlock()

	if intent.Id == nil {
		id := primitive.NewObjectID()
		intent.Id = &id
	}
	if intent.Status == "" {
		intent.Status = models.IntentStatusPending
	}
	if intent.CreatedAt.IsZero() {
		intent.CreatedAt = m.now()
	}
	m.intents = append(m.intents, cloneIntent(intent))
	return cloneIntent(intent)
}

func (m *MemoryLedger) SetIntentStatus(id primitive.ObjectID, status models.IntentStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.intentIndex(id); i >= 0 {
		m.intents[i].Status = status
	}
}

func (m *MemoryLedger) Intent(id primitive.ObjectID) (models.Intent, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.intentIndex(id); i >= 0 {
		return cloneIntent(m.intents[i]), true
	}
	return models.Intent{}, false
}

func (m *MemoryLedger) Plans() []models.ExecutionPlan {
	m.mu.Lock()
	defer m.mu.Unlock()
	plans := make([]models.ExecutionPlan, 0, len(m.plans))
	for _, p := range m.plans {
		plans = append(plans, clonePlan(p))
	}
	return plans
}

func (m *MemoryLedger) VaultTransactions() []models.VaultTransaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.VaultTransaction{}, m.vaultTxs...)
}

func (m *MemoryLedger) failure(op string) error {
	if m.err != nil {
		return persistenceError(op, m.err)
	}
	return nil
}

func (m *MemoryLedger) intentIndex(id primitive.ObjectID) int {
	for i := range m.intents {
		if m.intents[i].Id != nil && *m.intents[i].Id == id {
			return i
		}
	}
	return -1
}

func (m *MemoryLedger) planIndex(id string) int {
	for i := range m.plans {
		if m.plans[i].Id == id {
			return i
		}
	}
	return -1
}

func (m *MemoryLedger) FindPendingIntents() ([]models.Intent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("find pending intents"); err != nil {
		return nil, err
	}

	intents := []models.Intent{}
	for _, intent := range m.intents {
		if intent.Status == models.IntentStatusPending {
			intents = append(intents, cloneIntent(intent))
		}
	}
	sort.SliceStable(intents, func(i, j int) bool {
		if !intents[i].CreatedAt.Equal(intents[j].CreatedAt) {
			return intents[i].CreatedAt.Before(intents[j].CreatedAt)
		}
		return intents[i].Id.Hex() < intents[j].Id.Hex()
	})
	return intents, nil
}

func (m *MemoryLedger) FindIntentsByIds(ids []primitive.ObjectID) ([]models.Intent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("find intents"); err != nil {
		return nil, err
	}

	intents := []models.Intent{}
	for _, id := range ids {
		if i := m.intentIndex(id); i >= 0 {
			intents = append(intents, cloneIntent(m.intents[i]))
		}
	}
	return intents, nil
}

func (m *MemoryLedger) CreatePlan(plan models.ExecutionPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("create plan"); err != nil {
		return err
	}

	if m.planIndex(plan.Id) >= 0 {
		return fmt.Errorf("%w: plan %s", ErrDuplicate, plan.Id)
	}

	indexes := make([]int, 0, len(plan.InvolvedIntentIds))
	for _, id := range plan.InvolvedIntentIds {
		i := m.intentIndex(id)
		if i < 0 || m.intents[i].Status != models.IntentStatusPending {
			return fmt.Errorf("%w: intent %s is not pending", ErrConflict, id.Hex())
		}
		indexes = append(indexes, i)
	}

	now := m.now()
	for _, i := range indexes {
		m.intents[i].Status = models.IntentStatusMatched
		m.intents[i].UpdatedAt = now
	}

	plan.Status = models.PlanStatusProposed
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = now
	}
	plan.UpdatedAt = now
	m.plans = append(m.plans, clonePlan(plan))
	return nil
}

func (m *MemoryLedger) FindProposedPlans(limit int64) ([]models.ExecutionPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("find proposed plans"); err != nil {
		return nil, err
	}

	plans := []models.ExecutionPlan{}
	for _, plan := range m.plans {
		if plan.Status == models.PlanStatusProposed {
			plans = append(plans, clonePlan(plan))
		}
	}
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].CreatedAt.Before(plans[j].CreatedAt)
	})
	if limit > 0 && int64(len(plans)) > limit {
		plans = plans[:limit]
	}
	return plans, nil
}

func (m *MemoryLedger) FindPlan(id string) (*models.ExecutionPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("find plan"); err != nil {
		return nil, err
	}

	i := m.planIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: plan %s", ErrNotFound, id)
	}
	plan := clonePlan(m.plans[i])
	return &plan, nil
}

func (m *MemoryLedger) FailPlan(id string, reason string, chainTxHashes map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("fail plan"); err != nil {
		return err
	}

	i := m.planIndex(id)
	if i < 0 || m.plans[i].Status != models.PlanStatusProposed {
		return fmt.Errorf("%w: plan %s is not proposed", ErrConflict, id)
	}
	m.plans[i].Status = models.PlanStatusFailed
	m.plans[i].FailureReason = reason
	if len(chainTxHashes) > 0 {
		m.plans[i].ChainTxHashes = cloneHashes(chainTxHashes)
	}
	m.plans[i].UpdatedAt = m.now()
	return nil
}

func (m *MemoryLedger) CompletePlan(plan models.ExecutionPlan, chainTxHashes map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("complete plan"); err != nil {
		return err
	}

	p := m.planIndex(plan.Id)
	if p < 0 || m.plans[p].Status != models.PlanStatusProposed {
		return fmt.Errorf("%w: plan %s is not proposed", ErrConflict, plan.Id)
	}

	now := m.now()
	m.plans[p].Status = models.PlanStatusExecuted
	m.plans[p].ChainTxHashes = cloneHashes(chainTxHashes)
	m.plans[p].UpdatedAt = now
	for _, id := range m.plans[p].InvolvedIntentIds {
		if i := m.intentIndex(id); i >= 0 && m.intents[i].Status == models.IntentStatusMatched {
			m.intents[i].Status = models.IntentStatusExecuted
			m.intents[i].UpdatedAt = now
		}
	}
	return nil
}

func (m *MemoryLedger) FindLatestVaultTransaction(chainID uint64, vaultAddress string) (*models.VaultTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("find latest vault transaction"); err != nil {
		return nil, err
	}

	var latest *models.VaultTransaction
	for i := range m.vaultTxs {
		tx := m.vaultTxs[i]
		if tx.ChainID != chainID || tx.VaultAddress != vaultAddress {
			continue
		}
		if latest == nil || tx.BlockNumber > latest.BlockNumber {
			latest = &tx
		}
	}
	return latest, nil
}

func (m *MemoryLedger) VaultTransactionExists(chainID uint64, txHash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("count vault transactions"); err != nil {
		return false, err
	}
	return m.vaultTxIndex(chainID, txHash) >= 0, nil
}

func (m *MemoryLedger) vaultTxIndex(chainID uint64, txHash string) int {
	for i := range m.vaultTxs {
		if m.vaultTxs[i].ChainID == chainID && m.vaultTxs[i].TransactionHash == txHash {
			return i
		}
	}
	return -1
}

func (m *MemoryLedger) InsertVaultTransaction(tx models.VaultTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("insert vault transaction"); err != nil {
		return err
	}

	if m.vaultTxIndex(tx.ChainID, tx.TransactionHash) >= 0 {
		return fmt.Errorf("%w: %s on chain %d", ErrDuplicate, tx.TransactionHash, tx.ChainID)
	}
	if tx.Id == nil {
		id := primitive.NewObjectID()
		tx.Id = &id
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = m.now()
	}
	m.vaultTxs = append(m.vaultTxs, tx)
	return nil
}

func cloneIntent(intent models.Intent) models.Intent {
	if intent.Id != nil {
		id := *intent.Id
		intent.Id = &id
	}
	return intent
}

func clonePlan(plan models.ExecutionPlan) models.ExecutionPlan {
	plan.Transfers = append([]models.Transfer(nil), plan.Transfers...)
	plan.InvolvedIntentIds = append([]primitive.ObjectID(nil), plan.InvolvedIntentIds...)
	plan.ChainTxHashes = cloneHashes(plan.ChainTxHashes)
	return plan
}

func cloneHashes(hashes map[string]string) map[string]string {
	if hashes == nil {
		return nil
	}
	clone := make(map[string]string, len(hashes))
	for k, v := range hashes {
		clone[k] = v
	}
	return clone
}
