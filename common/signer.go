package common

import (
	"github.com/ethereum/go-ethereum/common"
)

// Signer produces Ethereum signatures for the executor account. EthSign
// hashes data with keccak256 unless it is already a 32 byte digest and
// returns a 65 byte [R || S || V] signature with V in {27, 28}.
type Signer interface {
	EthSign(data []byte) ([]byte, error)
	EthAddress() common.Address
	Destroy()
}
