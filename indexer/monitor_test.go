package indexer

import (
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/oceanlink/oceanlink-settler/eth/client/mocks"
	"github.com/oceanlink/oceanlink-settler/eth/util"
	"github.com/oceanlink/oceanlink-settler/ledger"
	"github.com/oceanlink/oceanlink-settler/models"
)

func init() {
	log.SetOutput(io.Discard)
}

const testChainID = 84532

var (
	testVault = common.HexToAddress("0x00000000000000000000000000000000000000Fe")
	userCC    = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

func NewTestMonitor(t *testing.T, l ledger.Ledger, next uint64, maxQueryBlocks uint64) (*VaultMonitorRunner, *mocks.MockChainClient) {
	mockClient := mocks.NewMockChainClient(t)
	x := &VaultMonitorRunner{
		chainID:         testChainID,
		chainKey:        models.ChainKey(testChainID),
		vault:           testVault,
		vaultAddress:    "0x00000000000000000000000000000000000000fe",
		maxQueryBlocks:  maxQueryBlocks,
		client:          mockClient,
		ledger:          l,
		nextBlockNumber: next,
	}
	return x, mockClient
}

func depositLog(user common.Address, amount int64, blockNumber uint64, txHash string) types.Log {
	data, _ := util.VaultABI.Events[util.DepositEvent].Inputs.NonIndexed().Pack(big.NewInt(amount))
	return types.Log{
		Address:     testVault,
		Topics:      []common.Hash{util.DepositTopic, common.BytesToHash(user.Bytes())},
		Data:        data,
		BlockNumber: blockNumber,
		TxHash:      common.HexToHash(txHash),
	}
}

func withdrawLog(user common.Address, amount int64, blockNumber uint64, txHash string) types.Log {
	l := depositLog(user, amount, blockNumber, txHash)
	l.Topics[0] = util.WithdrawTopic
	return l
}

func TestMonitorRecordsDeposit(t *testing.T) {
	l := ledger.NewMemoryLedger()
	x, mockClient := NewTestMonitor(t, l, 0, 1000)

	deposit := depositLog(userCC, 500000000, 1000, "0xabc1")
	mockClient.EXPECT().GetHeadBlockNumber().Return(uint64(1200), nil).Twice()
	mockClient.EXPECT().GetLogs(testVault, util.VaultEventTopics(), uint64(0), uint64(999)).Return([]types.Log{}, nil).Once()
	mockClient.EXPECT().GetLogs(testVault, util.VaultEventTopics(), uint64(1000), uint64(1200)).Return([]types.Log{deposit}, nil).Once()
	mockClient.EXPECT().GetBlockTimestamp(uint64(1000)).Return(uint64(1700000000), nil).Once()

	x.Run()

	txs := l.VaultTransactions()
	assert.Len(t, txs, 1)
	tx := txs[0]
	assert.Equal(t, uint64(testChainID), tx.ChainID)
	assert.Equal(t, models.VaultTransactionDeposit, tx.Type)
	assert.Equal(t, "500000000", tx.Amount.String())
	assert.Equal(t, uint64(1000), tx.BlockNumber)
	assert.Equal(t, uint64(1700000000), tx.BlockTimestamp)
	assert.Equal(t, "0x00000000000000000000000000000000000000cc", tx.UserAddress)
	assert.Equal(t, "0x00000000000000000000000000000000000000fe", tx.VaultAddress)
	assert.Equal(t, uint64(1201), x.nextBlockNumber)

	// a second pass over an overlapping range stores nothing new
	x.nextBlockNumber = 900
	mockClient.EXPECT().GetLogs(testVault, util.VaultEventTopics(), uint64(900), uint64(1200)).Return([]types.Log{deposit}, nil).Once()

	x.Run()

	assert.Len(t, l.VaultTransactions(), 1)
}

func TestMonitorRestartResumesFromLedger(t *testing.T) {
	l := ledger.NewMemoryLedger()
	first, mockClient := NewTestMonitor(t, l, 0, 1000)

	deposit := depositLog(userCC, 500000000, 1000, "0xabc1")
	mockClient.EXPECT().GetHeadBlockNumber().Return(uint64(1000), nil).Once()
	mockClient.EXPECT().GetLogs(testVault, mock.Anything, uint64(0), uint64(999)).Return([]types.Log{}, nil).Once()
	mockClient.EXPECT().GetLogs(testVault, mock.Anything, uint64(1000), uint64(1000)).Return([]types.Log{deposit}, nil).Once()
	mockClient.EXPECT().GetBlockTimestamp(uint64(1000)).Return(uint64(1700000000), nil).Once()
	first.Run()

	restarted, restartedClient := NewTestMonitor(t, l, 0, 1000)
	restarted.InitStartBlockNumber(0, "")
	assert.Equal(t, uint64(1000), restarted.nextBlockNumber)

	restartedClient.EXPECT().GetHeadBlockNumber().Return(uint64(1010), nil).Once()
	restartedClient.EXPECT().GetLogs(testVault, mock.Anything, uint64(1000), uint64(1010)).Return([]types.Log{deposit}, nil).Once()
	restarted.Run()

	assert.Len(t, l.VaultTransactions(), 1)
}

func TestMonitorSkipsFailedWindow(t *testing.T) {
	l := ledger.NewMemoryLedger()
	x, mockClient := NewTestMonitor(t, l, 0, 100)

	withdraw := withdrawLog(userCC, 7, 150, "0xabc2")
	mockClient.EXPECT().GetHeadBlockNumber().Return(uint64(199), nil).Once()
	mockClient.EXPECT().GetLogs(testVault, mock.Anything, uint64(0), uint64(99)).Return(nil, errors.New("range too large")).Once()
	mockClient.EXPECT().GetLogs(testVault, mock.Anything, uint64(100), uint64(199)).Return([]types.Log{withdraw}, nil).Once()
	mockClient.EXPECT().GetBlockTimestamp(uint64(150)).Return(uint64(1700000100), nil).Once()

	x.Run()

	txs := l.VaultTransactions()
	assert.Len(t, txs, 1)
	assert.Equal(t, models.VaultTransactionWithdraw, txs[0].Type)
	assert.Equal(t, uint64(200), x.nextBlockNumber)
}

func TestMonitorSkipsEventWithoutTimestamp(t *testing.T) {
	l := ledger.NewMemoryLedger()
	x, mockClient := NewTestMonitor(t, l, 10, 100)

	first := depositLog(userCC, 1, 12, "0xabc1")
	second := depositLog(userCC, 2, 13, "0xabc2")
	mockClient.EXPECT().GetHeadBlockNumber().Return(uint64(20), nil).Once()
	mockClient.EXPECT().GetLogs(testVault, mock.Anything, uint64(10), uint64(20)).Return([]types.Log{first, second}, nil).Once()
	mockClient.EXPECT().GetBlockTimestamp(uint64(12)).Return(0, errors.New("header not found")).Once()
	mockClient.EXPECT().GetBlockTimestamp(uint64(13)).Return(uint64(1700000000), nil).Once()

	x.Run()

	txs := l.VaultTransactions()
	assert.Len(t, txs, 1)
	assert.Equal(t, "2", txs[0].Amount.String())
	assert.Equal(t, uint64(21), x.nextBlockNumber)
}

func TestMonitorIgnoresUndecodableAndRemovedLogs(t *testing.T) {
	l := ledger.NewMemoryLedger()
	x, mockClient := NewTestMonitor(t, l, 10, 100)

	removed := depositLog(userCC, 1, 12, "0xabc1")
	removed.Removed = true
	garbage := depositLog(userCC, 1, 12, "0xabc2")
	garbage.Topics = garbage.Topics[:1]

	mockClient.EXPECT().GetHeadBlockNumber().Return(uint64(20), nil).Once()
	mockClient.EXPECT().GetLogs(testVault, mock.Anything, uint64(10), uint64(20)).Return([]types.Log{removed, garbage}, nil).Once()

	x.Run()

	assert.Empty(t, l.VaultTransactions())
	assert.Equal(t, uint64(21), x.nextBlockNumber)
}

func TestMonitorPersistenceErrorHoldsCursor(t *testing.T) {
	l := ledger.NewMemoryLedger()
	x, mockClient := NewTestMonitor(t, l, 0, 100)

	deposit := depositLog(userCC, 1, 150, "0xabc1")
	mockClient.EXPECT().GetHeadBlockNumber().Return(uint64(250), nil).Once()
	mockClient.EXPECT().GetLogs(testVault, mock.Anything, uint64(0), uint64(99)).Return([]types.Log{}, nil).Once()
	mockClient.EXPECT().GetLogs(testVault, mock.Anything, uint64(100), uint64(199)).
		Run(func(common.Address, [][]common.Hash, uint64, uint64) {
			l.WithError(errors.New("connection reset"))
		}).
		Return([]types.Log{deposit}, nil).Once()

	x.Run()

	assert.Equal(t, uint64(100), x.nextBlockNumber)
	assert.Empty(t, l.VaultTransactions())
}

// duplicateLedger reports nothing as existing but rejects every insert, as
// when another indexer stores the event between the check and the insert.
type duplicateLedger struct {
	*ledger.MemoryLedger
}

func (d *duplicateLedger) InsertVaultTransaction(tx models.VaultTransaction) error {
	return ledger.ErrDuplicate
}

func TestMonitorDuplicateInsertIsAlreadyIndexed(t *testing.T) {
	l := &duplicateLedger{MemoryLedger: ledger.NewMemoryLedger()}
	x, mockClient := NewTestMonitor(t, l, 0, 100)

	deposit := depositLog(userCC, 1, 5, "0xabc1")
	mockClient.EXPECT().GetHeadBlockNumber().Return(uint64(10), nil).Once()
	mockClient.EXPECT().GetLogs(testVault, mock.Anything, uint64(0), uint64(10)).Return([]types.Log{deposit}, nil).Once()
	mockClient.EXPECT().GetBlockTimestamp(uint64(5)).Return(uint64(1700000000), nil).Once()

	assert.True(t, x.UpdateCurrentBlockNumber())
	assert.True(t, x.SyncTxs())

	assert.Equal(t, uint64(11), x.nextBlockNumber)
}

func TestMonitorCursorNeverMovesBack(t *testing.T) {
	l := ledger.NewMemoryLedger()
	x, mockClient := NewTestMonitor(t, l, 500, 100)

	t.Run("Head Behind Cursor", func(t *testing.T) {
		mockClient.EXPECT().GetHeadBlockNumber().Return(uint64(300), nil).Once()

		x.Run()

		assert.Equal(t, uint64(500), x.nextBlockNumber)
	})

	t.Run("Advance Ignores Lower Block", func(t *testing.T) {
		x.advance(400)
		assert.Equal(t, uint64(500), x.nextBlockNumber)

		x.advance(501)
		assert.Equal(t, uint64(501), x.nextBlockNumber)
	})

	t.Run("Head Error", func(t *testing.T) {
		mockClient.EXPECT().GetHeadBlockNumber().Return(0, errors.New("dial tcp")).Once()

		x.Run()

		assert.Equal(t, uint64(501), x.nextBlockNumber)
	})
}

func TestMonitorInitStartBlockNumber(t *testing.T) {
	recorded := func(blockNumber uint64) *ledger.MemoryLedger {
		l := ledger.NewMemoryLedger()
		assert.NoError(t, l.InsertVaultTransaction(models.VaultTransaction{
			ChainID:         testChainID,
			VaultAddress:    "0x00000000000000000000000000000000000000fe",
			TransactionHash: "0xabc1",
			BlockNumber:     blockNumber,
		}))
		return l
	}

	t.Run("Nothing Recorded", func(t *testing.T) {
		x, _ := NewTestMonitor(t, ledger.NewMemoryLedger(), 0, 100)
		x.InitStartBlockNumber(42, "")
		assert.Equal(t, uint64(42), x.nextBlockNumber)
	})

	t.Run("Recorded Block", func(t *testing.T) {
		x, _ := NewTestMonitor(t, recorded(1000), 0, 100)
		x.InitStartBlockNumber(42, "")
		assert.Equal(t, uint64(1000), x.nextBlockNumber)
	})

	t.Run("Other Vault Ignored", func(t *testing.T) {
		x, _ := NewTestMonitor(t, recorded(1000), 0, 100)
		x.vaultAddress = "0x00000000000000000000000000000000000000ab"
		x.InitStartBlockNumber(42, "")
		assert.Equal(t, uint64(42), x.nextBlockNumber)
	})

	t.Run("Later Health Block", func(t *testing.T) {
		x, _ := NewTestMonitor(t, recorded(1000), 0, 100)
		x.InitStartBlockNumber(42, "1500")
		assert.Equal(t, uint64(1501), x.nextBlockNumber)
	})

	t.Run("Earlier Health Block", func(t *testing.T) {
		x, _ := NewTestMonitor(t, recorded(1000), 0, 100)
		x.InitStartBlockNumber(42, "900")
		assert.Equal(t, uint64(1000), x.nextBlockNumber)
	})

	t.Run("Invalid Health Block", func(t *testing.T) {
		x, _ := NewTestMonitor(t, ledger.NewMemoryLedger(), 0, 100)
		x.InitStartBlockNumber(42, "latest")
		assert.Equal(t, uint64(42), x.nextBlockNumber)
	})

	t.Run("Ledger Error", func(t *testing.T) {
		l := ledger.NewMemoryLedger().WithError(errors.New("connection reset"))
		x, _ := NewTestMonitor(t, l, 0, 100)
		x.InitStartBlockNumber(42, "")
		assert.Equal(t, uint64(42), x.nextBlockNumber)
	})
}

func TestMonitorStatus(t *testing.T) {
	x, _ := NewTestMonitor(t, ledger.NewMemoryLedger(), 0, 100)
	assert.Equal(t, models.RunnerStatus{ChainID: "84532"}, x.Status())

	x.nextBlockNumber = 1201
	assert.Equal(t, models.RunnerStatus{ChainID: "84532", BlockNumber: "1200"}, x.Status())
}

func TestNewVaultMonitor(t *testing.T) {
	config := models.ChainConfig{
		ChainID:          testChainID,
		VaultAddress:     "0x00000000000000000000000000000000000000Fe",
		StartBlockNumber: 7,
		MaxQueryBlocks:   500,
	}

	x := NewVaultMonitor(config, mocks.NewMockChainClient(t), ledger.NewMemoryLedger(), "")

	assert.Equal(t, testVault, x.vault)
	assert.Equal(t, "0x00000000000000000000000000000000000000fe", x.vaultAddress)
	assert.Equal(t, uint64(500), x.maxQueryBlocks)
	assert.Equal(t, uint64(7), x.nextBlockNumber)
	assert.Equal(t, "84532", x.chainKey)
}
