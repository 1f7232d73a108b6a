package config

import (
	"os"
	"strings"
	"time"
)

const envPrefix = "SHIPGUARD_"

// parseEnv overlays cfg with SHIPGUARD_* variables. Unset or blank variables
// are ignored; an unparsable SHIPGUARD_JWT_LEEWAY panics like other config
// errors.
func parseEnv(cfg *Config) {
	vars := map[string]*string{
		"BUILD_ROOT":         &cfg.BuildRoot,
		"ASSETS_DIR":         &cfg.AssetsDir,
		"ENGINE":             &cfg.Engine,
		"OBFUSCATOR_COMMAND": &cfg.ObfuscatorCommand,
		"MANGLE_PROPS":       &cfg.MangleProps,
		"LOG_LEVEL":          &cfg.LogLevel,
		"PUBLISH_BUCKET":     &cfg.PublishBucket,
		"PUBLISH_PREFIX":     &cfg.PublishPrefix,
		"S3_REGION":          &cfg.S3Region,
		"S3_BASE_ENDPOINT":   &cfg.S3BaseEndpoint,
		"S3_ACCESS_KEY":      &cfg.S3AccessKey,
		"S3_SECRET_KEY":      &cfg.S3SecretKey,
		"STORAGE_DRIVER":     &cfg.StorageDriver,
		"STORAGE_DSN":        &cfg.StorageDSN,
		"SESSION_SECRET":     &cfg.SessionSecret,
	}
	for name, dst := range vars {
		setIfNotEmpty(dst, strings.TrimSpace(os.Getenv(envPrefix+name)))
	}

	if v := strings.TrimSpace(os.Getenv(envPrefix + "JWT_LEEWAY")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.JWTLeeway = d
	}

	cfg.GenerateSourcemap = strings.TrimSpace(os.Getenv("GENERATE_SOURCEMAP"))
}
