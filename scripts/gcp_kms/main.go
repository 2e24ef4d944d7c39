package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	log "github.com/sirupsen/logrus"

	"github.com/oceanlink/oceanlink-settler/common"
)

// Prints the executor address behind a Cloud KMS key and checks that a
// signature made with it recovers to that address.
func main() {
	keyName := os.Getenv("EXECUTOR_GCP_KMS_KEY_NAME")
	if keyName == "" {
		log.Fatal("EXECUTOR_GCP_KMS_KEY_NAME not set")
	}
	fmt.Println("GCP KMS Key Name: ", keyName)

	signer, err := common.NewGcpKmsSigner(keyName)
	if err != nil {
		log.Fatalf("failed to create GCP KMS signer: %v", err)
	}
	defer signer.Destroy()

	fmt.Println("Executor Address: ", signer.EthAddress().Hex())

	digest := crypto.Keccak256([]byte("oceanlink settler kms check"))
	signature, err := signer.EthSign(digest)
	if err != nil {
		log.Fatalf("failed to sign digest: %v", err)
	}
	fmt.Printf("Signature: %x\n", signature)

	recoverable := append([]byte{}, signature...)
	recoverable[64] -= 27
	pubKey, err := crypto.SigToPub(digest, recoverable)
	if err != nil {
		log.Fatalf("failed to recover signer: %v", err)
	}
	recovered := crypto.PubkeyToAddress(*pubKey)
	if recovered != signer.EthAddress() {
		log.Fatalf("signature recovers to %s, expected %s", recovered.Hex(), signer.EthAddress().Hex())
	}
	fmt.Println("Signature recovers to executor address")
}
