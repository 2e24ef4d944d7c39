package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/oceanlink/oceanlink-settler/models"
)

func readConfigFromENV(config *models.Config, envFile string) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil {
			log.Warn("[ENV] Error loading .env file: ", err.Error())
		}
	}

	// mongodb
	if os.Getenv("MONGODB_URI") != "" {
		config.MongoDB.URI = os.Getenv("MONGODB_URI")
	}
	if os.Getenv("MONGODB_DATABASE") != "" {
		config.MongoDB.Database = os.Getenv("MONGODB_DATABASE")
	}
	readInt64FromENV("MONGODB_TIMEOUT_MS", &config.MongoDB.TimeoutMillis)

	// logging
	if os.Getenv("LOG_LEVEL") != "" {
		config.Logger.Level = os.Getenv("LOG_LEVEL")
	}
	if os.Getenv("LOG_FORMAT") != "" {
		config.Logger.Format = os.Getenv("LOG_FORMAT")
	}

	// metrics
	readBoolFromENV("METRICS_ENABLED", &config.Metrics.Enabled)
	if os.Getenv("METRICS_LISTEN_ADDRESS") != "" {
		config.Metrics.ListenAddress = os.Getenv("METRICS_LISTEN_ADDRESS")
	}

	// health check
	readInt64FromENV("HEALTH_CHECK_INTERVAL_MS", &config.HealthCheck.IntervalMillis)
	readBoolFromENV("HEALTH_CHECK_READ_LAST_HEALTH", &config.HealthCheck.ReadLastHealth)

	// executor signer
	if os.Getenv("EXECUTOR_MNEMONIC") != "" {
		config.ExecutorSigner.Mnemonic = os.Getenv("EXECUTOR_MNEMONIC")
	}
	if os.Getenv("EXECUTOR_HD_PATH") != "" {
		config.ExecutorSigner.HDPath = os.Getenv("EXECUTOR_HD_PATH")
	}
	if os.Getenv("EXECUTOR_PRIVATE_KEY") != "" {
		config.ExecutorSigner.PrivateKey = os.Getenv("EXECUTOR_PRIVATE_KEY")
	}
	if os.Getenv("EXECUTOR_GCP_KMS_KEY_NAME") != "" {
		config.ExecutorSigner.GcpKmsKeyName = os.Getenv("EXECUTOR_GCP_KMS_KEY_NAME")
	}

	// chains
	for i := range config.Chains {
		chain := &config.Chains[i]
		prefix := fmt.Sprintf("CHAIN_%d_", chain.ChainID)
		if os.Getenv(prefix+"RPC_URL") != "" {
			chain.RPCURL = os.Getenv(prefix + "RPC_URL")
		}
		if os.Getenv(prefix+"VAULT_ADDRESS") != "" {
			chain.VaultAddress = os.Getenv(prefix + "VAULT_ADDRESS")
		}
		readUint64FromENV(prefix+"START_BLOCK_NUMBER", &chain.StartBlockNumber)
	}

	// solver
	readBoolFromENV("SOLVER_ENABLED", &config.Solver.Enabled)
	readInt64FromENV("SOLVER_INTERVAL_MS", &config.Solver.IntervalMillis)
	readBoolFromENV("SOLVER_VERIFY_SIGNATURES", &config.Solver.VerifySignatures)

	// executor
	readBoolFromENV("EXECUTOR_ENABLED", &config.Executor.Enabled)
	readInt64FromENV("EXECUTOR_INTERVAL_MS", &config.Executor.IntervalMillis)
	readInt64FromENV("EXECUTOR_BATCH_SIZE", &config.Executor.BatchSize)

	// indexer
	readBoolFromENV("INDEXER_ENABLED", &config.Indexer.Enabled)
	readInt64FromENV("INDEXER_INTERVAL_MS", &config.Indexer.IntervalMillis)

	// google secret manager
	readBoolFromENV("GOOGLE_SECRET_MANAGER_ENABLED", &config.GoogleSecretManager.Enabled)
	if os.Getenv("GOOGLE_PROJECT_ID") != "" {
		config.GoogleSecretManager.ProjectId = os.Getenv("GOOGLE_PROJECT_ID")
	}
	if os.Getenv("GOOGLE_EXECUTOR_MNEMONIC_SECRET_NAME") != "" {
		config.GoogleSecretManager.ExecutorMnemonicSecretName = os.Getenv("GOOGLE_EXECUTOR_MNEMONIC_SECRET_NAME")
	}
	if os.Getenv("GOOGLE_EXECUTOR_PRIVATE_KEY_SECRET_NAME") != "" {
		config.GoogleSecretManager.ExecutorPrivateKeySecretName = os.Getenv("GOOGLE_EXECUTOR_PRIVATE_KEY_SECRET_NAME")
	}
}

func readBoolFromENV(key string, target *bool) {
	if os.Getenv(key) == "" {
		return
	}
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		log.Warn("[ENV] Error parsing ", key, ": ", err.Error())
		return
	}
	*target = value
}

func readInt64FromENV(key string, target *int64) {
	if os.Getenv(key) == "" {
		return
	}
	value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		log.Warn("[ENV] Error parsing ", key, ": ", err.Error())
		return
	}
	*target = value
}

func readUint64FromENV(key string, target *uint64) {
	if os.Getenv(key) == "" {
		return
	}
	value, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		log.Warn("[ENV] Error parsing ", key, ": ", err.Error())
		return
	}
	*target = value
}
