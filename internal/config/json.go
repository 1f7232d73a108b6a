package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/shipguard/internal/flagx"
	"github.com/dmitrijs2005/shipguard/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration. Empty fields leave
// the corresponding Config value untouched.
type JsonConfig struct {
	BuildRoot         string          `json:"build_root"`
	AssetsDir         string          `json:"assets_dir"`
	Engine            string          `json:"engine"`
	ObfuscatorCommand string          `json:"obfuscator_command"`
	MangleProps       string          `json:"mangle_props"`
	LogLevel          string          `json:"log_level"`
	PublishBucket     string          `json:"publish_bucket"`
	PublishPrefix     string          `json:"publish_prefix"`
	S3Region          string          `json:"s3_region"`
	S3BaseEndpoint    string          `json:"s3_base_endpoint"`
	S3AccessKey       string          `json:"s3_access_key"`
	S3SecretKey       string          `json:"s3_secret_key"`
	StorageDriver     string          `json:"storage_driver"`
	StorageDSN        string          `json:"storage_dsn"`
	SessionSecret     string          `json:"session_secret"`
	JWTLeeway         *timex.Duration `json:"jwt_leeway"`
}

// parseJson overlays cfg with the JSON file named by -c/-config or
// $SHIPGUARD_CONFIG. It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIfNotEmpty(&cfg.BuildRoot, jc.BuildRoot)
	setIfNotEmpty(&cfg.AssetsDir, jc.AssetsDir)
	setIfNotEmpty(&cfg.Engine, jc.Engine)
	setIfNotEmpty(&cfg.ObfuscatorCommand, jc.ObfuscatorCommand)
	setIfNotEmpty(&cfg.MangleProps, jc.MangleProps)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotEmpty(&cfg.PublishBucket, jc.PublishBucket)
	setIfNotEmpty(&cfg.PublishPrefix, jc.PublishPrefix)
	setIfNotEmpty(&cfg.S3Region, jc.S3Region)
	setIfNotEmpty(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setIfNotEmpty(&cfg.S3AccessKey, jc.S3AccessKey)
	setIfNotEmpty(&cfg.S3SecretKey, jc.S3SecretKey)
	setIfNotEmpty(&cfg.StorageDriver, jc.StorageDriver)
	setIfNotEmpty(&cfg.StorageDSN, jc.StorageDSN)
	setIfNotEmpty(&cfg.SessionSecret, jc.SessionSecret)
	if jc.JWTLeeway != nil {
		cfg.JWTLeeway = jc.JWTLeeway.Duration
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
