package ledger

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oceanlink/oceanlink-settler/app"
	"github.com/oceanlink/oceanlink-settler/models"
)

type mongoLedger struct {
	db app.Database
}

var _ Ledger = &mongoLedger{}

func NewMongoLedger(db app.Database) Ledger {
	return &mongoLedger{db: db}
}

var creationOrder = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

func (l *mongoLedger) FindPendingIntents() ([]models.Intent, error) {
	intents := []models.Intent{}
	filter := bson.M{"status": models.IntentStatusPending}
	err := l.db.FindManySorted(models.CollectionIntents, filter, creationOrder, 0, &intents)
	if err != nil {
		return nil, persistenceError("find pending intents", err)
	}
	return intents, nil
}

func (l *mongoLedger) FindIntentsByIds(ids []primitive.ObjectID) ([]models.Intent, error) {
	intents := []models.Intent{}
	filter := bson.M{"_id": bson.M{"$in": ids}}
	err := l.db.FindMany(models.CollectionIntents, filter, &intents)
	if err != nil {
		return nil, persistenceError("find intents", err)
	}
	return intents, nil
}

func (l *mongoLedger) CreatePlan(plan models.ExecutionPlan) error {
	now := time.Now()
	plan.Status = models.PlanStatusProposed
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = now
	}
	plan.UpdatedAt = now

	err := l.db.WithTransaction(func(tx app.Database) error {
		if err := tx.InsertOne(models.CollectionExecutionPlans, plan); err != nil {
			return persistenceError("insert plan", err)
		}

		filter := bson.M{
			"_id":    bson.M{"$in": plan.InvolvedIntentIds},
			"status": models.IntentStatusPending,
		}
		update := bson.M{"$set": bson.M{
			"status":     models.IntentStatusMatched,
			"updated_at": now,
		}}
		matched, err := tx.UpdateMany(models.CollectionIntents, filter, update)
		if err != nil {
			return persistenceError("match intents", err)
		}
		if matched != int64(len(plan.InvolvedIntentIds)) {
			return fmt.Errorf("%w: %d of %d intents still pending for plan %s", ErrConflict, matched, len(plan.InvolvedIntentIds), plan.Id)
		}
		return nil
	})
	if err != nil {
		return persistenceError("create plan", err)
	}
	return nil
}

func (l *mongoLedger) FindProposedPlans(limit int64) ([]models.ExecutionPlan, error) {
	plans := []models.ExecutionPlan{}
	filter := bson.M{"status": models.PlanStatusProposed}
	err := l.db.FindManySorted(models.CollectionExecutionPlans, filter, creationOrder, limit, &plans)
	if err != nil {
		return nil, persistenceError("find proposed plans", err)
	}
	return plans, nil
}

func (l *mongoLedger) FindPlan(id string) (*models.ExecutionPlan, error) {
	var plan models.ExecutionPlan
	err := l.db.FindOne(models.CollectionExecutionPlans, bson.M{"_id": id}, &plan)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: plan %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, persistenceError("find plan", err)
	}
	return &plan, nil
}

func (l *mongoLedger) FailPlan(id string, reason string, chainTxHashes map[string]string) error {
	set := bson.M{
		"status":         models.PlanStatusFailed,
		"failure_reason": reason,
		"updated_at":     time.Now(),
	}
	if len(chainTxHashes) > 0 {
		set["chain_tx_hashes"] = chainTxHashes
	}

	filter := bson.M{"_id": id, "status": models.PlanStatusProposed}
	matched, err := l.db.UpdateOne(models.CollectionExecutionPlans, filter, bson.M{"$set": set})
	if err != nil {
		return persistenceError("fail plan", err)
	}
	if matched == 0 {
		return fmt.Errorf("%w: plan %s is not proposed", ErrConflict, id)
	}
	return nil
}

func (l *mongoLedger) CompletePlan(plan models.ExecutionPlan, chainTxHashes map[string]string) error {
	now := time.Now()

	err := l.db.WithTransaction(func(tx app.Database) error {
		filter := bson.M{"_id": plan.Id, "status": models.PlanStatusProposed}
		update := bson.M{"$set": bson.M{
			"status":          models.PlanStatusExecuted,
			"chain_tx_hashes": chainTxHashes,
			"updated_at":      now,
		}}
		matched, err := tx.UpdateOne(models.CollectionExecutionPlans, filter, update)
		if err != nil {
			return persistenceError("complete plan", err)
		}
		if matched == 0 {
			return fmt.Errorf("%w: plan %s is not proposed", ErrConflict, plan.Id)
		}

		filter = bson.M{"_id": bson.M{"$in": plan.InvolvedIntentIds}, "status": models.IntentStatusMatched}
		update = bson.M{"$set": bson.M{
			"status":     models.IntentStatusExecuted,
			"updated_at": now,
		}}
		if _, err := tx.UpdateMany(models.CollectionIntents, filter, update); err != nil {
			return persistenceError("execute intents", err)
		}
		return nil
	})
	if err != nil {
		return persistenceError("complete plan", err)
	}
	return nil
}

func (l *mongoLedger) FindLatestVaultTransaction(chainID uint64, vaultAddress string) (*models.VaultTransaction, error) {
	txs := []models.VaultTransaction{}
	filter := bson.M{"chain_id": chainID, "vault_address": vaultAddress}
	sort := bson.D{{Key: "block_number", Value: -1}}
	err := l.db.FindManySorted(models.CollectionVaultTransactions, filter, sort, 1, &txs)
	if err != nil {
		return nil, persistenceError("find latest vault transaction", err)
	}
	if len(txs) == 0 {
		return nil, nil
	}
	return &txs[0], nil
}

func (l *mongoLedger) VaultTransactionExists(chainID uint64, txHash string) (bool, error) {
	filter := bson.M{"tx_hash": txHash, "chain_id": chainID}
	count, err := l.db.Count(models.CollectionVaultTransactions, filter)
	if err != nil {
		return false, persistenceError("count vault transactions", err)
	}
	return count > 0, nil
}

func (l *mongoLedger) InsertVaultTransaction(tx models.VaultTransaction) error {
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	err := l.db.InsertOne(models.CollectionVaultTransactions, tx)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s on chain %d", ErrDuplicate, tx.TransactionHash, tx.ChainID)
	}
	if err != nil {
		return persistenceError("insert vault transaction", err)
	}
	return nil
}
