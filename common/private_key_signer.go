package common

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type PrivateKeySigner struct {
	ethAddress common.Address
	ethPrivKey *ecdsa.PrivateKey
}

var _ Signer = &PrivateKeySigner{}

func NewPrivateKeySigner(privateKey string) (*PrivateKeySigner, error) {
	ethPrivKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &PrivateKeySigner{
		ethPrivKey: ethPrivKey,
		ethAddress: crypto.PubkeyToAddress(ethPrivKey.PublicKey),
	}, nil
}

func (s *PrivateKeySigner) Destroy() {}

func (s *PrivateKeySigner) EthSign(data []byte) ([]byte, error) {
	return signWithKey(data, s.ethPrivKey)
}

func (s *PrivateKeySigner) EthAddress() common.Address {
	return s.ethAddress
}
