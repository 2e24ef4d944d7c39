package util

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"

	"github.com/oceanlink/oceanlink-settler/models"
)

func TestPackExecuteTransfers(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		transfers := []models.Transfer{
			{ChainID: 1, From: "0x00000000000000000000000000000000000000a1", To: "0x00000000000000000000000000000000000000b2", Amount: models.NewAmount(70)},
			{ChainID: 1, From: "0x00000000000000000000000000000000000000c3", To: "0x00000000000000000000000000000000000000a1", Amount: models.NewAmount(30)},
		}

		data, err := PackExecuteTransfers(transfers)
		assert.NoError(t, err)

		method := VaultABI.Methods[ExecuteTransfersMethod]
		assert.Equal(t, method.ID, data[:4])

		values, err := method.Inputs.Unpack(data[4:])
		assert.NoError(t, err)
		assert.Len(t, values, 1)

		decoded := *abi.ConvertType(values[0], new([]VaultTransfer)).(*[]VaultTransfer)
		assert.Len(t, decoded, 2)
		assert.Equal(t, common.HexToAddress("0xb2"), decoded[0].To)
		assert.Equal(t, int64(70), decoded[0].Amount.Int64())
		assert.Equal(t, common.HexToAddress("0xc3"), decoded[1].From)
	})

	t.Run("Invalid Address", func(t *testing.T) {
		_, err := PackExecuteTransfers([]models.Transfer{{ChainID: 1, From: "alice", To: "0x00000000000000000000000000000000000000b2", Amount: models.NewAmount(1)}})
		assert.Error(t, err)
	})
}

func vaultLog(topic common.Hash, user common.Address, amount int64) types.Log {
	data, _ := VaultABI.Events[DepositEvent].Inputs.NonIndexed().Pack(big.NewInt(amount))
	return types.Log{
		Address:     common.HexToAddress("0x00000000000000000000000000000000000000ff"),
		Topics:      []common.Hash{topic, common.BytesToHash(user.Bytes())},
		Data:        data,
		BlockNumber: 120,
		TxHash:      common.HexToHash("0x1234"),
		Index:       3,
	}
}

func TestParseVaultLog(t *testing.T) {
	user := common.HexToAddress("0x00000000000000000000000000000000000000a1")

	t.Run("Deposit", func(t *testing.T) {
		event, err := ParseVaultLog(vaultLog(DepositTopic, user, 500))
		assert.NoError(t, err)
		assert.Equal(t, models.VaultTransactionDeposit, event.Type)
		assert.Equal(t, user, event.User)
		assert.Equal(t, int64(500), event.Amount.Int64())
		assert.Equal(t, uint64(120), event.BlockNumber)
	})

	t.Run("Withdraw", func(t *testing.T) {
		event, err := ParseVaultLog(vaultLog(WithdrawTopic, user, 7))
		assert.NoError(t, err)
		assert.Equal(t, models.VaultTransactionWithdraw, event.Type)
	})

	t.Run("Unknown Topic", func(t *testing.T) {
		_, err := ParseVaultLog(vaultLog(common.HexToHash("0xdead"), user, 7))
		assert.Error(t, err)
	})

	t.Run("Missing User Topic", func(t *testing.T) {
		log := vaultLog(DepositTopic, user, 7)
		log.Topics = log.Topics[:1]
		_, err := ParseVaultLog(log)
		assert.Error(t, err)
	})

	t.Run("Creates Vault Transaction", func(t *testing.T) {
		event, err := ParseVaultLog(vaultLog(DepositTopic, user, 500))
		assert.NoError(t, err)

		tx, err := CreateVaultTransaction(31337, event, 1_700_000_000)
		assert.NoError(t, err)
		assert.Equal(t, uint64(31337), tx.ChainID)
		assert.Equal(t, "0x00000000000000000000000000000000000000ff", tx.VaultAddress)
		assert.Equal(t, "0x00000000000000000000000000000000000000a1", tx.UserAddress)
		assert.Equal(t, "500", tx.Amount.String())
		assert.Equal(t, common.HexToHash("0x1234").Hex(), tx.TransactionHash)
		assert.Equal(t, uint64(1_700_000_000), tx.BlockTimestamp)
	})
}
