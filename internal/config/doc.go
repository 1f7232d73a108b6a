// Package config loads runtime configuration for the shipguard tools.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c / -config or $SHIPGUARD_CONFIG.
//  3. Environment variables (SHIPGUARD_*), after loading ./.env if present.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-r string   build root (default "build")
//	-d string   bundle directory relative to the build root (default "static/js")
//	-o string   obfuscator engine: esbuild | command
//	-x string   external obfuscator executable for the command engine
//	-m string   property-name regexp to mangle (esbuild engine)
//	-l string   log level: debug | info | warn | error
//	-b string   bucket to publish the bundle to (empty disables publishing)
//	-p string   object key prefix
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g. "http://127.0.0.1:9000")
//	-u string   S3 access key
//	-k string   S3 secret key
//	-t string   session storage driver: memory | sqlite | pgx
//	-s string   session storage DSN
//	-w int      JWT expiry leeway (seconds)
//
// The session secret is deliberately not a flag; set it in JSON or through
// $SHIPGUARD_SESSION_SECRET, or let sessionctl prompt for it.
//
// # JSON schema
//
//	{
//	  "build_root": "build",
//	  "assets_dir": "static/js",
//	  "engine": "esbuild",
//	  "obfuscator_command": "javascript-obfuscator",
//	  "mangle_props": "_$",
//	  "log_level": "info",
//	  "publish_bucket": "",
//	  "publish_prefix": "static/js",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "",
//	  "s3_access_key": "",
//	  "s3_secret_key": "",
//	  "storage_driver": "sqlite",
//	  "storage_dsn": "session.db",
//	  "session_secret": "",
//	  "jwt_leeway": "30s"
//	}
package config
