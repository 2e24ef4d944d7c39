// Package indexer records the Deposit and Withdraw events of every configured
// vault as vault transactions, one runner per chain.
package indexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"

	"github.com/oceanlink/oceanlink-settler/eth/client"
	"github.com/oceanlink/oceanlink-settler/eth/util"
	"github.com/oceanlink/oceanlink-settler/ledger"
	"github.com/oceanlink/oceanlink-settler/metrics"
	"github.com/oceanlink/oceanlink-settler/models"
)

const (
	IndexerName = "INDEXER"
)

// ErrIndexing marks a window or event that could not be read from the chain.
// It is logged and the indexer moves on.
var ErrIndexing = errors.New("indexing error")

type VaultMonitorRunner struct {
	chainID        uint64
	chainKey       string
	vault          common.Address
	vaultAddress   string
	maxQueryBlocks uint64
	client         client.ChainClient
	ledger         ledger.Ledger

	// nextBlockNumber is the first block not yet scanned. It only moves forward.
	nextBlockNumber    uint64
	currentBlockNumber uint64
}

func (x *VaultMonitorRunner) Run() {
	start := time.Now()
	defer func() {
		metrics.CycleDuration.WithLabelValues(IndexerName).Observe(time.Since(start).Seconds())
	}()

	if !x.UpdateCurrentBlockNumber() {
		return
	}
	x.SyncTxs()
}

// Status reports the last fully scanned block.
func (x *VaultMonitorRunner) Status() models.RunnerStatus {
	status := models.RunnerStatus{ChainID: x.chainKey}
	if x.nextBlockNumber > 0 {
		status.BlockNumber = strconv.FormatUint(x.nextBlockNumber-1, 10)
	}
	return status
}

func (x *VaultMonitorRunner) logger() *log.Entry {
	return log.WithField("chain_id", x.chainID)
}

func (x *VaultMonitorRunner) UpdateCurrentBlockNumber() bool {
	head, err := x.client.GetHeadBlockNumber()
	if err != nil {
		x.logger().WithError(err).Error("[INDEXER] Error fetching head block number")
		return false
	}
	x.currentBlockNumber = head
	x.logger().Debug("[INDEXER] Current block number: ", head)
	return true
}

func (x *VaultMonitorRunner) advance(next uint64) {
	if next > x.nextBlockNumber {
		x.nextBlockNumber = next
		metrics.IndexerBlockNumber.WithLabelValues(x.chainKey).Set(float64(next - 1))
	}
}

// SyncTxs scans everything between the cursor and the head in windows of at
// most maxQueryBlocks. A window the chain would not serve is skipped; a
// window that could not be stored is retried next run.
func (x *VaultMonitorRunner) SyncTxs() bool {
	if x.currentBlockNumber < x.nextBlockNumber {
		x.logger().Info("[INDEXER] No new blocks to sync")
		return true
	}

	for from := x.nextBlockNumber; from <= x.currentBlockNumber; {
		to := x.currentBlockNumber
		if x.currentBlockNumber-from >= x.maxQueryBlocks {
			to = from + x.maxQueryBlocks - 1
		}

		if err := x.SyncBlocks(from, to); err != nil {
			x.logger().
				WithField("from_block", from).
				WithField("to_block", to).
				WithError(err).Error("[INDEXER] Error storing vault transactions, will retry")
			return false
		}
		x.advance(to + 1)

		if to == x.currentBlockNumber {
			break
		}
		from = to + 1
	}
	return true
}

// SyncBlocks indexes the vault events in [from, to]. Only ledger failures are
// returned.
func (x *VaultMonitorRunner) SyncBlocks(from uint64, to uint64) error {
	logger := x.logger().WithField("from_block", from).WithField("to_block", to)
	logger.Info("[INDEXER] Syncing vault transactions")

	logs, err := x.client.GetLogs(x.vault, util.VaultEventTopics(), from, to)
	if err != nil {
		metrics.IndexerWindowErrors.WithLabelValues(x.chainKey).Inc()
		logger.WithError(fmt.Errorf("%w: %w", ErrIndexing, err)).Error("[INDEXER] Skipping window")
		return nil
	}

	for _, vaultLog := range logs {
		if err := x.HandleVaultLog(vaultLog); err != nil {
			return err
		}
	}
	return nil
}

func (x *VaultMonitorRunner) HandleVaultLog(vaultLog types.Log) error {
	logger := x.logger().
		WithField("tx_hash", vaultLog.TxHash.Hex()).
		WithField("block_number", vaultLog.BlockNumber)

	if vaultLog.Removed {
		logger.Debug("[INDEXER] Ignoring removed log")
		return nil
	}

	event, err := util.ParseVaultLog(vaultLog)
	if err != nil {
		logger.WithError(fmt.Errorf("%w: %w", ErrIndexing, err)).Warn("[INDEXER] Skipping undecodable log")
		return nil
	}

	exists, err := x.ledger.VaultTransactionExists(x.chainID, event.TxHash.Hex())
	if err != nil {
		return err
	}
	if exists {
		logger.Debug("[INDEXER] Vault transaction already indexed")
		return nil
	}

	timestamp, err := x.client.GetBlockTimestamp(event.BlockNumber)
	if err != nil {
		metrics.IndexerWindowErrors.WithLabelValues(x.chainKey).Inc()
		logger.WithError(fmt.Errorf("%w: %w", ErrIndexing, err)).Error("[INDEXER] Skipping event without block timestamp")
		return nil
	}

	tx, err := util.CreateVaultTransaction(x.chainID, event, timestamp)
	if err != nil {
		logger.WithError(fmt.Errorf("%w: %w", ErrIndexing, err)).Warn("[INDEXER] Skipping invalid vault event")
		return nil
	}
	tx.CreatedAt = time.Now()

	if err := x.ledger.InsertVaultTransaction(tx); err != nil {
		if errors.Is(err, ledger.ErrDuplicate) {
			logger.Info("[INDEXER] Found duplicate vault transaction")
			return nil
		}
		return err
	}

	metrics.VaultTransactionsIndexed.WithLabelValues(x.chainKey, string(tx.Type)).Inc()
	logger.WithField("type", tx.Type).
		WithField("user", tx.UserAddress).
		WithField("amount", tx.Amount.String()).
		Info("[INDEXER] Stored vault transaction")
	return nil
}

// InitStartBlockNumber resumes from the block of the newest recorded vault
// transaction. That block is scanned again since it may have been only
// partly stored. With nothing recorded the configured start block is used.
// A later block from the last health report wins over both.
func (x *VaultMonitorRunner) InitStartBlockNumber(startBlockNumber uint64, lastBlockNumber string) {
	next := startBlockNumber

	latest, err := x.ledger.FindLatestVaultTransaction(x.chainID, x.vaultAddress)
	if err != nil {
		x.logger().WithError(err).Error("[INDEXER] Error reading indexer cursor, using start block")
	} else if latest != nil && latest.BlockNumber > next {
		next = latest.BlockNumber
	}

	if lastBlockNumber != "" {
		if last, err := strconv.ParseUint(lastBlockNumber, 10, 64); err == nil && last+1 > next {
			next = last + 1
		} else if err != nil {
			x.logger().WithError(err).Warn("[INDEXER] Ignoring invalid last health block number")
		}
	}

	x.nextBlockNumber = next
	x.logger().Info("[INDEXER] Start block number: ", next)
}

func NewVaultMonitor(config models.ChainConfig, chainClient client.ChainClient, l ledger.Ledger, lastBlockNumber string) *VaultMonitorRunner {
	x := &VaultMonitorRunner{
		chainID:        config.ChainID,
		chainKey:       models.ChainKey(config.ChainID),
		vault:          common.HexToAddress(config.VaultAddress),
		vaultAddress:   strings.ToLower(common.HexToAddress(config.VaultAddress).Hex()),
		maxQueryBlocks: config.MaxQueryBlocks,
		client:         chainClient,
		ledger:         l,
	}
	if x.maxQueryBlocks == 0 {
		x.maxQueryBlocks = 1
	}

	x.InitStartBlockNumber(config.StartBlockNumber, lastBlockNumber)
	return x
}
