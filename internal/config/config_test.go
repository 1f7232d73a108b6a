package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/shipguard/internal/obfuscate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "build", c.BuildRoot)
	assert.Equal(t, "static/js", c.AssetsDir)
	assert.Equal(t, obfuscate.EngineEsbuild, c.Engine)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "sqlite", c.StorageDriver)
	assert.Equal(t, 30*time.Second, c.JWTLeeway)
	assert.False(t, c.PublishEnabled())
}

func TestAssetsPath(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assert.Equal(t, filepath.Join("build", "static", "js"), c.AssetsPath())

	c.BuildRoot = "/srv/app/dist"
	assert.Equal(t, filepath.Join("/srv/app/dist", "static", "js"), c.AssetsPath())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Chdir(t.TempDir())

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "build", cfg.BuildRoot)
	assert.Equal(t, 30*time.Second, cfg.JWTLeeway)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	t.Chdir(dir)
	path := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"build_root": "from-json",
		"engine":     "command",
		"log_level":  "warn",
	})
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SHIPGUARD_ENGINE=esbuild\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SHIPGUARD_ENGINE") })
	t.Setenv("SHIPGUARD_LOG_LEVEL", "debug")

	os.Args = []string{"testbin", "-c", path, "-l", "error"}

	cfg := LoadConfig()

	assert.Equal(t, "from-json", cfg.BuildRoot, "json overrides defaults")
	assert.Equal(t, "esbuild", cfg.Engine, ".env overrides json")
	assert.Equal(t, "error", cfg.LogLevel, "flag overrides env")
}

func TestSourcemapsDisabled(t *testing.T) {
	c := Config{GenerateSourcemap: "false"}
	assert.True(t, c.SourcemapsDisabled())

	c.GenerateSourcemap = ""
	assert.False(t, c.SourcemapsDisabled())
}

func TestSettingsProjection(t *testing.T) {
	var c Config
	c.LoadDefaults()
	c.MangleProps = "^_"
	c.PublishBucket = "assets"
	c.S3BaseEndpoint = "http://127.0.0.1:9000"

	o := c.ObfuscatorSettings()
	assert.Equal(t, obfuscate.EngineEsbuild, o.Engine)
	assert.Equal(t, "^_", o.MangleProps)

	p := c.PublishSettings()
	assert.True(t, c.PublishEnabled())
	assert.Equal(t, "assets", p.Bucket)
	assert.Equal(t, "static/js", p.Prefix)
	assert.Equal(t, "us-east-1", p.Region)
	assert.Equal(t, "http://127.0.0.1:9000", p.BaseEndpoint)
}

func TestLoadConfig_SubSecondLeewayKept(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Chdir(t.TempDir())

	t.Run("from env", func(t *testing.T) {
		t.Setenv("SHIPGUARD_JWT_LEEWAY", "1500ms")
		os.Args = []string{"postbuild"}

		assert.Equal(t, 1500*time.Millisecond, LoadConfig().JWTLeeway)
	})

	t.Run("from json", func(t *testing.T) {
		path := writeTempJSON(t, "", "", map[string]any{"jwt_leeway": "500ms"})
		os.Args = []string{"postbuild", "-c", path}

		assert.Equal(t, 500*time.Millisecond, LoadConfig().JWTLeeway)
	})

	t.Run("flag still overrides", func(t *testing.T) {
		t.Setenv("SHIPGUARD_JWT_LEEWAY", "1500ms")
		os.Args = []string{"postbuild", "-w", "3"}

		assert.Equal(t, 3*time.Second, LoadConfig().JWTLeeway)
	})
}
