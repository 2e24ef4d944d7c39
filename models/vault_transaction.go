package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionVaultTransactions = "vault_transactions"
)

type VaultTransactionType string

const (
	VaultTransactionDeposit  VaultTransactionType = "DEPOSIT"
	VaultTransactionWithdraw VaultTransactionType = "WITHDRAW"
)

type VaultTransaction struct {
	Id              *primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ChainID         uint64               `bson:"chain_id" json:"chain_id"`
	VaultAddress    string               `bson:"vault_address" json:"vault_address"`
	UserAddress     string               `bson:"user_address" json:"user_address"`
	Type            VaultTransactionType `bson:"type" json:"type"`
	Amount          Amount               `bson:"amount" json:"amount"`
	TransactionHash string               `bson:"tx_hash" json:"tx_hash"`
	LogIndex        uint                 `bson:"log_index" json:"log_index"`
	BlockNumber     uint64               `bson:"block_number" json:"block_number"`
	BlockTimestamp  uint64               `bson:"block_timestamp" json:"block_timestamp"`
	CreatedAt       time.Time            `bson:"created_at" json:"created_at"`
}
