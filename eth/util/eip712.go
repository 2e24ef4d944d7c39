package util

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/oceanlink/oceanlink-settler/models"
)

const (
	IntentDomainName    = "OceanLink"
	IntentDomainVersion = "1"
	intentPrimaryType   = "Intent"
	zeroAddress         = "0x0000000000000000000000000000000000000000"
)

var ErrInvalidSignature = errors.New("invalid intent signature")

var intentTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	intentPrimaryType: {
		{Name: "user", Type: "address"},
		{Name: "srcChainId", Type: "uint256"},
		{Name: "dstChainId", Type: "uint256"},
		{Name: "token", Type: "address"},
		{Name: "amount", Type: "uint256"},
		{Name: "minAmountOut", Type: "uint256"},
		{Name: "expiry", Type: "uint256"},
		{Name: "nonce", Type: "uint256"},
	},
}

// IntentTypedData builds the typed data a user signs for an intent. The
// domain is bound to the source chain.
func IntentTypedData(intent models.Intent) apitypes.TypedData {
	return apitypes.TypedData{
		Types:       intentTypes,
		PrimaryType: intentPrimaryType,
		Domain: apitypes.TypedDataDomain{
			Name:              IntentDomainName,
			Version:           IntentDomainVersion,
			ChainId:           (*math.HexOrDecimal256)(new(big.Int).SetUint64(intent.SrcChainID)),
			VerifyingContract: zeroAddress,
		},
		Message: apitypes.TypedDataMessage{
			"user":         intent.UserAddress,
			"srcChainId":   strconv.FormatUint(intent.SrcChainID, 10),
			"dstChainId":   strconv.FormatUint(intent.DstChainID, 10),
			"token":        intent.TokenAddress,
			"amount":       intent.Amount.String(),
			"minAmountOut": intent.MinAmountOut.String(),
			"expiry":       strconv.FormatInt(intent.Expiry, 10),
			"nonce":        intent.Nonce.String(),
		},
	}
}

// IntentDigest is keccak256("\x19\x01" || domainSeparator || hashStruct(intent)).
func IntentDigest(intent models.Intent) ([]byte, error) {
	typedData := IntentTypedData(intent)

	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return nil, fmt.Errorf("hash domain: %w", err)
	}

	typedDataHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return nil, fmt.Errorf("hash intent: %w", err)
	}

	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(typedDataHash)))
	return crypto.Keccak256(rawData), nil
}

// RecoverIntentSigner returns the address that produced the intent's signature.
func RecoverIntentSigner(intent models.Intent) (common.Address, error) {
	signature, err := hexutil.Decode(intent.Signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if len(signature) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: length %d", ErrInvalidSignature, len(signature))
	}

	digest, err := IntentDigest(intent)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	sig := make([]byte, len(signature))
	copy(sig, signature)
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pubKey, err := crypto.SigToPub(digest, sig)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return crypto.PubkeyToAddress(*pubKey), nil
}

// VerifyIntentSignature checks that the intent was signed by its user.
func VerifyIntentSignature(intent models.Intent) error {
	if !common.IsHexAddress(intent.UserAddress) {
		return fmt.Errorf("%w: user address %q", ErrInvalidSignature, intent.UserAddress)
	}
	signer, err := RecoverIntentSigner(intent)
	if err != nil {
		return err
	}
	if !strings.EqualFold(signer.Hex(), intent.UserAddress) {
		return fmt.Errorf("%w: signed by %s", ErrInvalidSignature, signer.Hex())
	}
	return nil
}

// SignIntent produces the 0x-prefixed 65 byte signature for an intent.
func SignIntent(intent models.Intent, key *ecdsa.PrivateKey) (string, error) {
	digest, err := IntentDigest(intent)
	if err != nil {
		return "", err
	}
	signature, err := crypto.Sign(digest, key)
	if err != nil {
		return "", err
	}
	signature[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(signature), nil
}
