package app

import (
	"context"
	"fmt"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	log "github.com/sirupsen/logrus"

	"github.com/oceanlink/oceanlink-settler/models"
)

func accessSecretVersion(client *secretmanager.Client, projectId string, name string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectId, name),
	}

	result, err := client.AccessSecretVersion(context.Background(), req)
	if err != nil {
		return "", err
	}

	return string(result.Payload.Data), nil
}

// readKeysFromGSM fills the executor key material from Google Secret Manager
// when it is enabled and the key was not provided by file or environment.
func readKeysFromGSM(config *models.Config) {
	gsm := config.GoogleSecretManager
	if !gsm.Enabled {
		log.Debug("[GSM] Google Secret Manager is disabled")
		return
	}

	signer := &config.ExecutorSigner
	if signer.Mnemonic != "" || signer.PrivateKey != "" || signer.GcpKmsKeyName != "" {
		log.Debug("[GSM] Executor key already configured, skipping")
		return
	}

	if gsm.ProjectId == "" {
		log.Fatalf("[GSM] ProjectId is empty")
	}

	ctx := context.Background()
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		log.Fatalf("[GSM] Failed to create secretmanager client: %v", err)
	}
	defer client.Close()

	switch {
	case gsm.ExecutorMnemonicSecretName != "":
		log.Debug("[GSM] Reading executor mnemonic")
		signer.Mnemonic, err = accessSecretVersion(client, gsm.ProjectId, gsm.ExecutorMnemonicSecretName)
		if err != nil {
			log.Fatalf("[GSM] Failed to access executor mnemonic: %v", err)
		}
		log.Info("[GSM] Successfully read executor mnemonic")
	case gsm.ExecutorPrivateKeySecretName != "":
		log.Debug("[GSM] Reading executor private key")
		signer.PrivateKey, err = accessSecretVersion(client, gsm.ProjectId, gsm.ExecutorPrivateKeySecretName)
		if err != nil {
			log.Fatalf("[GSM] Failed to access executor private key: %v", err)
		}
		log.Info("[GSM] Successfully read executor private key")
	default:
		log.Fatalf("[GSM] Executor secret name is empty")
	}
}
