package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/shipguard/internal/flagx"
)

var ownFlags = []string{"-r", "-d", "-o", "-x", "-m", "-l", "-b", "-p", "-g", "-e", "-u", "-k", "-t", "-s", "-w"}

// parseFlags overlays cfg with command-line flags; see the package doc for
// the list. os.Args is filtered first so -c/-config do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], ownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BuildRoot, "r", cfg.BuildRoot, "build root")
	fs.StringVar(&cfg.AssetsDir, "d", cfg.AssetsDir, "bundle directory relative to the build root")
	fs.StringVar(&cfg.Engine, "o", cfg.Engine, "obfuscator engine (esbuild|command)")
	fs.StringVar(&cfg.ObfuscatorCommand, "x", cfg.ObfuscatorCommand, "external obfuscator executable")
	fs.StringVar(&cfg.MangleProps, "m", cfg.MangleProps, "property-name regexp to mangle")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.PublishBucket, "b", cfg.PublishBucket, "bucket to publish to")
	fs.StringVar(&cfg.PublishPrefix, "p", cfg.PublishPrefix, "object key prefix")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.S3AccessKey, "u", cfg.S3AccessKey, "S3 access key")
	fs.StringVar(&cfg.S3SecretKey, "k", cfg.S3SecretKey, "S3 secret key")
	fs.StringVar(&cfg.StorageDriver, "t", cfg.StorageDriver, "session storage driver (memory|sqlite|pgx)")
	fs.StringVar(&cfg.StorageDSN, "s", cfg.StorageDSN, "session storage DSN")
	leeway := fs.Int("w", int(cfg.JWTLeeway.Seconds()), "JWT expiry leeway (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -w applies only when given on the command line
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "w" {
			cfg.JWTLeeway = time.Duration(*leeway) * time.Second
		}
	})
}
