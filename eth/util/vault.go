package util

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/oceanlink/oceanlink-settler/models"
)

const VaultABIJSON = `[
	{
		"type": "function",
		"name": "executeTransfers",
		"stateMutability": "nonpayable",
		"inputs": [
			{
				"name": "transfers",
				"type": "tuple[]",
				"internalType": "struct Vault.Transfer[]",
				"components": [
					{"name": "from", "type": "address", "internalType": "address"},
					{"name": "to", "type": "address", "internalType": "address"},
					{"name": "amount", "type": "uint256", "internalType": "uint256"}
				]
			}
		],
		"outputs": []
	},
	{
		"type": "event",
		"name": "Deposit",
		"anonymous": false,
		"inputs": [
			{"name": "user", "type": "address", "indexed": true, "internalType": "address"},
			{"name": "amount", "type": "uint256", "indexed": false, "internalType": "uint256"}
		]
	},
	{
		"type": "event",
		"name": "Withdraw",
		"anonymous": false,
		"inputs": [
			{"name": "user", "type": "address", "indexed": true, "internalType": "address"},
			{"name": "amount", "type": "uint256", "indexed": false, "internalType": "uint256"}
		]
	}
]`

const (
	ExecuteTransfersMethod = "executeTransfers"
	DepositEvent           = "Deposit"
	WithdrawEvent          = "Withdraw"
)

var (
	VaultABI      = mustParseVaultABI()
	DepositTopic  = VaultABI.Events[DepositEvent].ID
	WithdrawTopic = VaultABI.Events[WithdrawEvent].ID
)

func mustParseVaultABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(VaultABIJSON))
	if err != nil {
		panic(fmt.Sprintf("invalid vault abi: %v", err))
	}
	return parsed
}

// VaultTransfer mirrors the Vault.Transfer tuple.
type VaultTransfer struct {
	From   common.Address
	To     common.Address
	Amount *big.Int
}

// PackExecuteTransfers encodes an executeTransfers call for one chain's legs,
// keeping their order.
func PackExecuteTransfers(transfers []models.Transfer) ([]byte, error) {
	args := make([]VaultTransfer, 0, len(transfers))
	for _, t := range transfers {
		if !common.IsHexAddress(t.From) || !common.IsHexAddress(t.To) {
			return nil, fmt.Errorf("invalid transfer address %q -> %q", t.From, t.To)
		}
		args = append(args, VaultTransfer{
			From:   common.HexToAddress(t.From),
			To:     common.HexToAddress(t.To),
			Amount: t.Amount.Big(),
		})
	}
	return VaultABI.Pack(ExecuteTransfersMethod, args)
}

// VaultEventTopics filters logs down to Deposit and Withdraw.
func VaultEventTopics() [][]common.Hash {
	return [][]common.Hash{{DepositTopic, WithdrawTopic}}
}

type VaultEvent struct {
	Type        models.VaultTransactionType
	User        common.Address
	Amount      *big.Int
	Vault       common.Address
	TxHash      common.Hash
	LogIndex    uint
	BlockNumber uint64
}

// ParseVaultLog decodes a Deposit or Withdraw log emitted by a vault.
func ParseVaultLog(log types.Log) (*VaultEvent, error) {
	if len(log.Topics) < 2 {
		return nil, fmt.Errorf("vault log %s has %d topics", log.TxHash.Hex(), len(log.Topics))
	}

	var eventName string
	var txType models.VaultTransactionType
	switch log.Topics[0] {
	case DepositTopic:
		eventName, txType = DepositEvent, models.VaultTransactionDeposit
	case WithdrawTopic:
		eventName, txType = WithdrawEvent, models.VaultTransactionWithdraw
	default:
		return nil, fmt.Errorf("unknown vault event topic %s", log.Topics[0].Hex())
	}

	values, err := VaultABI.Unpack(eventName, log.Data)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", eventName, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unpack %s: expected 1 value, got %d", eventName, len(values))
	}
	amount, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unpack %s: amount is %T", eventName, values[0])
	}

	return &VaultEvent{
		Type:        txType,
		User:        common.BytesToAddress(log.Topics[1].Bytes()),
		Amount:      amount,
		Vault:       log.Address,
		TxHash:      log.TxHash,
		LogIndex:    log.Index,
		BlockNumber: log.BlockNumber,
	}, nil
}

func CreateVaultTransaction(chainID uint64, event *VaultEvent, blockTimestamp uint64) (models.VaultTransaction, error) {
	amount, err := models.AmountFromBig(event.Amount)
	if err != nil {
		return models.VaultTransaction{}, err
	}
	return models.VaultTransaction{
		ChainID:         chainID,
		VaultAddress:    strings.ToLower(event.Vault.Hex()),
		UserAddress:     strings.ToLower(event.User.Hex()),
		Type:            event.Type,
		Amount:          amount,
		TransactionHash: event.TxHash.Hex(),
		LogIndex:        event.LogIndex,
		BlockNumber:     event.BlockNumber,
		BlockTimestamp:  blockTimestamp,
	}, nil
}
