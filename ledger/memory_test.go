package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oceanlink/oceanlink-settler/models"
)

func TestMemoryCreatePlanIsAtomic(t *testing.T) {
	l := NewMemoryLedger()
	a := l.AddIntent(models.Intent{UserAddress: "0xa", SrcChainID: 1, DstChainID: 2, Amount: models.NewAmount(5)})
	b := l.AddIntent(models.Intent{UserAddress: "0xb", SrcChainID: 2, DstChainID: 1, Amount: models.NewAmount(5)})
	l.SetIntentStatus(*b.Id, models.IntentStatusCancelled)

	err := l.CreatePlan(models.ExecutionPlan{
		Id:                "plan-1",
		InvolvedIntentIds: []primitive.ObjectID{*a.Id, *b.Id},
	})
	assert.ErrorIs(t, err, ErrConflict)

	stored, _ := l.Intent(*a.Id)
	assert.Equal(t, models.IntentStatusPending, stored.Status)
	assert.Empty(t, l.Plans())
}

func TestMemoryPlanLifecycle(t *testing.T) {
	l := NewMemoryLedger()
	a := l.AddIntent(models.Intent{UserAddress: "0xa", SrcChainID: 1, DstChainID: 2, Amount: models.NewAmount(5)})
	b := l.AddIntent(models.Intent{UserAddress: "0xb", SrcChainID: 2, DstChainID: 1, Amount: models.NewAmount(5)})

	plan := models.ExecutionPlan{Id: "plan-1", InvolvedIntentIds: []primitive.ObjectID{*a.Id, *b.Id}}
	assert.NoError(t, l.CreatePlan(plan))

	pending, err := l.FindPendingIntents()
	assert.NoError(t, err)
	assert.Empty(t, pending)

	proposed, err := l.FindProposedPlans(10)
	assert.NoError(t, err)
	assert.Len(t, proposed, 1)

	assert.NoError(t, l.CompletePlan(plan, map[string]string{"1": "0x01"}))
	assert.ErrorIs(t, l.FailPlan(plan.Id, "late", nil), ErrConflict)

	stored, err := l.FindPlan(plan.Id)
	assert.NoError(t, err)
	assert.Equal(t, models.PlanStatusExecuted, stored.Status)
	assert.Equal(t, "0x01", stored.ChainTxHashes["1"])

	intents, err := l.FindIntentsByIds(plan.InvolvedIntentIds)
	assert.NoError(t, err)
	for _, intent := range intents {
		assert.Equal(t, models.IntentStatusExecuted, intent.Status)
	}
}

func TestMemoryCompletePlanKeepsCancelledIntent(t *testing.T) {
	l := NewMemoryLedger()
	a := l.AddIntent(models.Intent{UserAddress: "0xa", SrcChainID: 1, DstChainID: 2, Amount: models.NewAmount(5)})
	b := l.AddIntent(models.Intent{UserAddress: "0xb", SrcChainID: 2, DstChainID: 1, Amount: models.NewAmount(5)})

	plan := models.ExecutionPlan{Id: "plan-1", InvolvedIntentIds: []primitive.ObjectID{*a.Id, *b.Id}}
	assert.NoError(t, l.CreatePlan(plan))
	l.SetIntentStatus(*b.Id, models.IntentStatusCancelled)

	assert.NoError(t, l.CompletePlan(plan, map[string]string{"1": "0x01"}))

	stored, _ := l.Intent(*a.Id)
	assert.Equal(t, models.IntentStatusExecuted, stored.Status)
	stored, _ = l.Intent(*b.Id)
	assert.Equal(t, models.IntentStatusCancelled, stored.Status)
}

func TestMemoryPendingOrder(t *testing.T) {
	l := NewMemoryLedger()
	base := time.Unix(1_700_000_000, 0)
	late := l.AddIntent(models.Intent{UserAddress: "0xlate", CreatedAt: base.Add(time.Minute)})
	early := l.AddIntent(models.Intent{UserAddress: "0xearly", CreatedAt: base})

	pending, err := l.FindPendingIntents()
	assert.NoError(t, err)
	assert.Equal(t, []string{early.UserAddress, late.UserAddress}, []string{pending[0].UserAddress, pending[1].UserAddress})
}

func TestMemoryVaultTransactions(t *testing.T) {
	l := NewMemoryLedger()

	latest, err := l.FindLatestVaultTransaction(1, "0xvault")
	assert.NoError(t, err)
	assert.Nil(t, latest)

	assert.NoError(t, l.InsertVaultTransaction(models.VaultTransaction{ChainID: 1, VaultAddress: "0xvault", TransactionHash: "0x1", BlockNumber: 10}))
	assert.NoError(t, l.InsertVaultTransaction(models.VaultTransaction{ChainID: 1, VaultAddress: "0xvault", TransactionHash: "0x2", BlockNumber: 30}))
	assert.NoError(t, l.InsertVaultTransaction(models.VaultTransaction{ChainID: 2, VaultAddress: "0xvault", TransactionHash: "0x1", BlockNumber: 99}))

	err = l.InsertVaultTransaction(models.VaultTransaction{ChainID: 1, VaultAddress: "0xvault", TransactionHash: "0x1", BlockNumber: 10})
	assert.ErrorIs(t, err, ErrDuplicate)

	latest, err = l.FindLatestVaultTransaction(1, "0xvault")
	assert.NoError(t, err)
	assert.Equal(t, uint64(30), latest.BlockNumber)

	exists, err := l.VaultTransactionExists(2, "0x1")
	assert.NoError(t, err)
	assert.True(t, exists)

	assert.Len(t, l.VaultTransactions(), 3)
}

func TestMemoryWithError(t *testing.T) {
	l := NewMemoryLedger().WithError(errors.New("disk full"))

	_, err := l.FindPendingIntents()
	assert.ErrorIs(t, err, ErrPersistence)

	_, err = l.FindPlan("plan-1")
	assert.ErrorIs(t, err, ErrPersistence)
}
