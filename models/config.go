package models

type Config struct {
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	HealthCheck         HealthCheckConfig         `yaml:"health_check" json:"health_check"`
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	Metrics             MetricsConfig             `yaml:"metrics" json:"metrics"`
	MongoDB             MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	ExecutorSigner      SignerConfig              `yaml:"executor_signer" json:"executor_signer"`
	Chains              []ChainConfig             `yaml:"chains" json:"chains"`
	Solver              SolverConfig              `yaml:"solver" json:"solver"`
	Executor            ExecutorConfig            `yaml:"executor" json:"executor"`
	Indexer             ServiceConfig             `yaml:"indexer" json:"indexer"`
}

type GoogleSecretManagerConfig struct {
	Enabled                      bool   `yaml:"enabled" json:"enabled"`
	ProjectId                    string `yaml:"project_id" json:"project_id"`
	ExecutorMnemonicSecretName   string `yaml:"executor_mnemonic_secret_name" json:"executor_mnemonic_secret_name"`
	ExecutorPrivateKeySecretName string `yaml:"executor_private_key_secret_name" json:"executor_private_key_secret_name"`
}

type HealthCheckConfig struct {
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	ReadLastHealth bool  `yaml:"read_last_health" json:"read_last_health"`
}

type LoggerConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

type MetricsConfig struct {
	Enabled       bool   `yaml:"enabled" json:"enabled"`
	ListenAddress string `yaml:"listen_address" json:"listen_address"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

// SignerConfig selects the key that signs executeTransfers calls. Exactly one
// of Mnemonic, PrivateKey or GcpKmsKeyName is used, in that order.
type SignerConfig struct {
	Mnemonic      string `yaml:"mnemonic" json:"mnemonic"`
	HDPath        string `yaml:"hd_path" json:"hd_path"`
	PrivateKey    string `yaml:"private_key" json:"private_key"`
	GcpKmsKeyName string `yaml:"gcp_kms_key_name" json:"gcp_kms_key_name"`
}

type ChainConfig struct {
	Name             string `yaml:"name" json:"name"`
	ChainID          uint64 `yaml:"chain_id" json:"chain_id"`
	RPCURL           string `yaml:"rpc_url" json:"rpcurl"`
	RPCTimeoutMillis int64  `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	// 0 waits for a receipt indefinitely
	ReceiptTimeoutMillis int64  `yaml:"receipt_timeout_ms" json:"receipt_timeout_ms"`
	VaultAddress         string `yaml:"vault_address" json:"vault_address"`
	StartBlockNumber     uint64 `yaml:"start_block_number" json:"start_block_number"`
	MaxQueryBlocks       uint64 `yaml:"max_query_blocks" json:"max_query_blocks"`
	BlockCacheSize       int    `yaml:"block_cache_size" json:"block_cache_size"`
}

type ServiceConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
}

type SolverConfig struct {
	Enabled          bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis   int64 `yaml:"interval_ms" json:"interval_ms"`
	VerifySignatures bool  `yaml:"verify_signatures" json:"verify_signatures"`
}

type ExecutorConfig struct {
	Enabled        bool  `yaml:"enabled" json:"enabled"`
	IntervalMillis int64 `yaml:"interval_ms" json:"interval_ms"`
	BatchSize      int64 `yaml:"batch_size" json:"batch_size"`
}

func (c Config) Chain(chainID uint64) (ChainConfig, bool) {
	for _, chain := range c.Chains {
		if chain.ChainID == chainID {
			return chain, true
		}
	}
	return ChainConfig{}, false
}
