package config

import (
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/shipguard/internal/common"
	"github.com/dmitrijs2005/shipguard/internal/obfuscate"
	"github.com/dmitrijs2005/shipguard/internal/publish"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for postbuild and sessionctl.
type Config struct {
	BuildRoot         string
	AssetsDir         string
	Engine            string
	ObfuscatorCommand string
	MangleProps       string
	LogLevel          string

	PublishBucket  string
	PublishPrefix  string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string

	StorageDriver string
	StorageDSN    string
	SessionSecret string
	JWTLeeway     time.Duration

	// GenerateSourcemap mirrors GENERATE_SOURCEMAP, which the upstream
	// bundler reads. It is informational only.
	GenerateSourcemap string
}

// LoadDefaults populates c with defaults suitable for a local build.
func (c *Config) LoadDefaults() {
	c.BuildRoot = "build"
	c.AssetsDir = common.DefaultAssetsDir
	c.Engine = obfuscate.EngineEsbuild
	c.ObfuscatorCommand = obfuscate.DefaultCommand
	c.LogLevel = "info"
	c.PublishPrefix = common.DefaultAssetsDir
	c.S3Region = "us-east-1"
	c.StorageDriver = "sqlite"
	c.StorageDSN = "session.db"
	c.JWTLeeway = 30 * time.Second
}

// LoadConfig applies defaults, then JSON, then environment, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	_ = godotenv.Load()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// AssetsPath is the directory the transformer processes.
func (c *Config) AssetsPath() string {
	return filepath.Join(c.BuildRoot, c.AssetsDir)
}

// SourcemapsDisabled reports whether the bundler was told not to emit maps.
func (c *Config) SourcemapsDisabled() bool {
	return c.GenerateSourcemap == "false"
}

func (c *Config) ObfuscatorSettings() obfuscate.Settings {
	return obfuscate.Settings{
		Engine:      c.Engine,
		Command:     c.ObfuscatorCommand,
		MangleProps: c.MangleProps,
	}
}

// PublishEnabled is true when a target bucket is configured.
func (c *Config) PublishEnabled() bool {
	return c.PublishBucket != ""
}

func (c *Config) PublishSettings() publish.Settings {
	return publish.Settings{
		Bucket:       c.PublishBucket,
		Prefix:       c.PublishPrefix,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
	}
}
