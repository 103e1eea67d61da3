package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults when the file is missing", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: the defaults are used
		require.NoError(t, err)
		assert.Equal(t, &Config{
			LogLevel: "info",
			HTTPHost: "127.0.0.1",
			HTTPPort: "9090",
		}, conf)
		assert.Equal(t, "127.0.0.1:9090", conf.GetHTTPAddr())
	})

	t.Run("Values from the YAML file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nhttp-port: \"8181\"\nconsole:\n  hide-history: true\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading the config
		conf, err := Load(path)

		// Then: file values win over defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "127.0.0.1", conf.HTTPHost)
		assert.Equal(t, "8181", conf.HTTPPort)
		assert.True(t, conf.Console.HideHistory)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		// Given: env variables and no file
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("HTTP_PORT", "7070")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: env values are used
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, "7070", conf.HTTPPort)
	})

	t.Run("Environment overrides the YAML file", func(t *testing.T) {
		// Given: a config file with a port and a different port in env
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("http-port: \"8181\"\n"), 0o600))
		t.Setenv("HTTP_PORT", "7070")

		// When: loading the config
		conf, err := Load(path)

		// Then: the env value wins
		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
		assert.Equal(t, "127.0.0.1:7070", conf.GetHTTPAddr())
	})

	t.Run("Broken YAML", func(t *testing.T) {
		// Given: a malformed config file
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [debug\n"), 0o600))

		// When: loading the config
		_, err := Load(path)

		// Then: an error is returned
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})
}
