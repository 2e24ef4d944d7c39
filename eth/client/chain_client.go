package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"

	settler "github.com/oceanlink/oceanlink-settler/common"
	"github.com/oceanlink/oceanlink-settler/models"
)

var ErrReadOnly = errors.New("chain client has no signer")

// ChainClient is the settler's view of one EVM chain.
type ChainClient interface {
	ChainID() uint64
	ValidateNetwork() error
	GetHeadBlockNumber() (uint64, error)
	GetBlockTimestamp(blockNumber uint64) (uint64, error)
	GetLogs(contract common.Address, topics [][]common.Hash, fromBlock uint64, toBlock uint64) ([]types.Log, error)
	// Submit sends calldata to contract from the executor account.
	Submit(contract common.Address, data []byte) (*types.Transaction, error)
	// AwaitReceipt blocks until the transaction is mined.
	AwaitReceipt(tx *types.Transaction) (*types.Receipt, error)
}

type chainClient struct {
	name           string
	chainID        uint64
	client         *ethclient.Client
	timeout        time.Duration
	receiptTimeout time.Duration
	opts           *bind.TransactOpts
	blockTimes     *lru.Cache[uint64, uint64]
}

var _ ChainClient = &chainClient{}

func (c *chainClient) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.timeout)
}

func (c *chainClient) ChainID() uint64 {
	return c.chainID
}

func (c *chainClient) ValidateNetwork() error {
	logger := log.WithFields(log.Fields{"chain": c.name, "chain_id": c.chainID})
	logger.Debug("[CHAIN] Validating network")

	ctx, cancel := c.context()
	defer cancel()

	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain id: %w", err)
	}
	if !chainID.IsUint64() || chainID.Uint64() != c.chainID {
		return fmt.Errorf("chain id mismatch: expected %d, got %s", c.chainID, chainID.String())
	}

	blockNumber, err := c.GetHeadBlockNumber()
	if err != nil {
		return fmt.Errorf("failed to get block number: %w", err)
	}

	logger.WithField("block_number", blockNumber).Info("[CHAIN] Validated network")
	return nil
}

func (c *chainClient) GetHeadBlockNumber() (uint64, error) {
	ctx, cancel := c.context()
	defer cancel()

	return c.client.BlockNumber(ctx)
}

// GetBlockTimestamp serves repeated lookups of the same block from an LRU cache.
func (c *chainClient) GetBlockTimestamp(blockNumber uint64) (uint64, error) {
	if timestamp, ok := c.blockTimes.Get(blockNumber); ok {
		return timestamp, nil
	}

	ctx, cancel := c.context()
	defer cancel()

	header, err := c.client.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return 0, err
	}

	c.blockTimes.Add(blockNumber, header.Time)
	return header.Time, nil
}

func (c *chainClient) GetLogs(contract common.Address, topics [][]common.Hash, fromBlock uint64, toBlock uint64) ([]types.Log, error) {
	ctx, cancel := c.context()
	defer cancel()

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		ToBlock:   new(big.Int).SetUint64(toBlock),
		Addresses: []common.Address{contract},
		Topics:    topics,
	}
	return c.client.FilterLogs(ctx, query)
}

func (c *chainClient) Submit(contract common.Address, data []byte) (*types.Transaction, error) {
	if c.opts == nil {
		return nil, ErrReadOnly
	}

	ctx, cancel := c.context()
	defer cancel()

	opts := *c.opts
	opts.Context = ctx

	bound := bind.NewBoundContract(contract, abi.ABI{}, c.client, c.client, c.client)
	return bound.RawTransact(&opts, data)
}

func (c *chainClient) AwaitReceipt(tx *types.Transaction) (*types.Receipt, error) {
	ctx := context.Background()
	if c.receiptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.receiptTimeout)
		defer cancel()
	}

	return bind.WaitMined(ctx, c.client, tx)
}

// NewTransactOpts signs transactions for chainID with signer.
func NewTransactOpts(signer settler.Signer, chainID uint64) *bind.TransactOpts {
	txSigner := types.LatestSignerForChainID(new(big.Int).SetUint64(chainID))
	return &bind.TransactOpts{
		From: signer.EthAddress(),
		Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if address != signer.EthAddress() {
				return nil, bind.ErrNotAuthorized
			}
			signature, err := signer.EthSign(txSigner.Hash(tx).Bytes())
			if err != nil {
				return nil, err
			}
			signature[64] -= 27
			return tx.WithSignature(txSigner, signature)
		},
	}
}

// NewClient dials the chain's RPC endpoint. A nil signer yields a read-only
// client whose Submit always fails.
func NewClient(config models.ChainConfig, signer settler.Signer) (ChainClient, error) {
	rpc, err := ethclient.Dial(config.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", config.Name, err)
	}

	blockTimes, err := lru.New[uint64, uint64](config.BlockCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create block cache: %w", err)
	}

	c := &chainClient{
		name:           config.Name,
		chainID:        config.ChainID,
		client:         rpc,
		timeout:        time.Duration(config.RPCTimeoutMillis) * time.Millisecond,
		receiptTimeout: time.Duration(config.ReceiptTimeoutMillis) * time.Millisecond,
		blockTimes:     blockTimes,
	}
	if signer != nil {
		c.opts = NewTransactOpts(signer, config.ChainID)
	}
	return c, nil
}
