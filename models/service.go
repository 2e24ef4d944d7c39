package models

import (
	"time"
)

type RunnerStatus struct {
	ChainID     string `bson:"chain_id" json:"chain_id"`
	BlockNumber string `bson:"block_number" json:"block_number"`
}

type ServiceHealth struct {
	Name         string    `bson:"name" json:"name"`
	LastSyncTime time.Time `bson:"last_sync_time" json:"last_sync_time"`
	NextSyncTime time.Time `bson:"next_sync_time" json:"next_sync_time"`
	ChainID      string    `bson:"chain_id" json:"chain_id"`
	BlockNumber  string    `bson:"block_number" json:"block_number"`
	Healthy      bool      `bson:"healthy" json:"healthy"`
}
