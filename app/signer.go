package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/oceanlink/oceanlink-settler/common"
	"github.com/oceanlink/oceanlink-settler/models"
)

// NewExecutorSigner builds the signer for executeTransfers calls from the
// first configured key source: mnemonic, then private key, then Cloud KMS.
func NewExecutorSigner(config models.SignerConfig) (common.Signer, error) {
	switch {
	case config.Mnemonic != "":
		log.Debug("[SIGNER] Using mnemonic signer")
		return common.NewMnemonicSigner(config.Mnemonic, config.HDPath)
	case config.PrivateKey != "":
		log.Debug("[SIGNER] Using private key signer")
		return common.NewPrivateKeySigner(config.PrivateKey)
	case config.GcpKmsKeyName != "":
		log.Debug("[SIGNER] Using gcp kms signer")
		return common.NewGcpKmsSigner(config.GcpKmsKeyName)
	}
	return nil, fmt.Errorf("mnemonic, private key and gcp kms key name are all empty")
}
