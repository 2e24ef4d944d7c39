package util

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"

	"github.com/oceanlink/oceanlink-settler/models"
)

func testIntent(user string) models.Intent {
	return models.Intent{
		UserAddress:  user,
		SrcChainID:   11155111,
		DstChainID:   84532,
		TokenAddress: "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238",
		Amount:       models.MustAmount("1000000"),
		MinAmountOut: models.MustAmount("990000"),
		Expiry:       time.Now().Add(time.Hour).Unix(),
		Nonce:        models.NewAmount(1),
	}
}

func TestIntentSignature(t *testing.T) {
	key, err := crypto.HexToECDSA("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	assert.NoError(t, err)
	user := crypto.PubkeyToAddress(key.PublicKey).Hex()

	t.Run("Valid Signature", func(t *testing.T) {
		intent := testIntent(user)
		intent.Signature, err = SignIntent(intent, key)
		assert.NoError(t, err)

		assert.NoError(t, VerifyIntentSignature(intent))
	})

	t.Run("Lower Case User", func(t *testing.T) {
		intent := testIntent("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266")
		intent.Signature, err = SignIntent(intent, key)
		assert.NoError(t, err)

		assert.NoError(t, VerifyIntentSignature(intent))
	})

	t.Run("Tampered Amount", func(t *testing.T) {
		intent := testIntent(user)
		intent.Signature, err = SignIntent(intent, key)
		assert.NoError(t, err)

		intent.Amount = models.MustAmount("2000000")
		assert.ErrorIs(t, VerifyIntentSignature(intent), ErrInvalidSignature)
	})

	t.Run("Domain Bound To Source Chain", func(t *testing.T) {
		intent := testIntent(user)
		intent.Signature, err = SignIntent(intent, key)
		assert.NoError(t, err)

		intent.SrcChainID = 1
		assert.ErrorIs(t, VerifyIntentSignature(intent), ErrInvalidSignature)
	})

	t.Run("Malformed Signature", func(t *testing.T) {
		intent := testIntent(user)
		intent.Signature = "0x1234"
		assert.ErrorIs(t, VerifyIntentSignature(intent), ErrInvalidSignature)

		intent.Signature = "not hex"
		assert.ErrorIs(t, VerifyIntentSignature(intent), ErrInvalidSignature)
	})
}

func TestIntentDigestDeterministic(t *testing.T) {
	intent := testIntent("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	a, err := IntentDigest(intent)
	assert.NoError(t, err)
	b, err := IntentDigest(intent)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)

	intent.Nonce = models.NewAmount(2)
	c, err := IntentDigest(intent)
	assert.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestIntentDomainChainIdIsUnsigned(t *testing.T) {
	intent := testIntent("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	intent.SrcChainID = math.MaxUint64

	chainID := (*big.Int)(IntentTypedData(intent).Domain.ChainId)
	assert.Equal(t, 1, chainID.Sign())
	assert.Equal(t, 0, chainID.Cmp(new(big.Int).SetUint64(math.MaxUint64)))

	_, err := IntentDigest(intent)
	assert.NoError(t, err)
}
