package client

import (
	"io"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	settler "github.com/oceanlink/oceanlink-settler/common"
	"github.com/oceanlink/oceanlink-settler/models"
)

func init() {
	log.SetOutput(io.Discard)
}

func testConfig() models.ChainConfig {
	return models.ChainConfig{
		Name:             "local",
		ChainID:          31337,
		RPCURL:           "http://127.0.0.1:8545",
		RPCTimeoutMillis: 1000,
		VaultAddress:     "0x00000000000000000000000000000000000000ff",
		MaxQueryBlocks:   1000,
		BlockCacheSize:   16,
	}
}

func testSigner(t *testing.T) settler.Signer {
	signer, err := settler.NewPrivateKeySigner("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	assert.NoError(t, err)
	return signer
}

func TestNewTransactOpts(t *testing.T) {
	signer := testSigner(t)
	opts := NewTransactOpts(signer, 31337)

	assert.Equal(t, signer.EthAddress(), opts.From)

	to := common.HexToAddress("0x00000000000000000000000000000000000000ff")
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   big.NewInt(31337),
		Nonce:     7,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		Gas:       100000,
		To:        &to,
		Data:      []byte{0x01, 0x02},
	})

	t.Run("Signs For Executor", func(t *testing.T) {
		signed, err := opts.Signer(signer.EthAddress(), tx)
		assert.NoError(t, err)

		sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(31337)), signed)
		assert.NoError(t, err)
		assert.Equal(t, signer.EthAddress(), sender)
	})

	t.Run("Rejects Other Accounts", func(t *testing.T) {
		_, err := opts.Signer(common.HexToAddress("0x01"), tx)
		assert.ErrorIs(t, err, bind.ErrNotAuthorized)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("Read Only", func(t *testing.T) {
		c, err := NewClient(testConfig(), nil)
		assert.NoError(t, err)
		assert.Equal(t, uint64(31337), c.ChainID())

		_, err = c.Submit(common.HexToAddress("0xff"), []byte{0x01})
		assert.ErrorIs(t, err, ErrReadOnly)
	})

	t.Run("With Signer", func(t *testing.T) {
		c, err := NewClient(testConfig(), testSigner(t))
		assert.NoError(t, err)
		assert.NotNil(t, c.(*chainClient).opts)
	})

	t.Run("Invalid Cache Size", func(t *testing.T) {
		config := testConfig()
		config.BlockCacheSize = 0
		_, err := NewClient(config, nil)
		assert.Error(t, err)
	})
}

func TestGetBlockTimestampCached(t *testing.T) {
	c, err := NewClient(testConfig(), nil)
	assert.NoError(t, err)

	c.(*chainClient).blockTimes.Add(120, 1_700_000_000)

	timestamp, err := c.GetBlockTimestamp(120)
	assert.NoError(t, err)
	assert.Equal(t, uint64(1_700_000_000), timestamp)
}
