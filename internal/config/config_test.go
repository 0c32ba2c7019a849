package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mcpreg/internal/errors"
	"github.com/thoreinstein/mcpreg/internal/paths"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInit(t *testing.T) {
	Init()

	assert.Equal(t, 1, viper.GetInt("version"))
	assert.Equal(t, ":8080", viper.GetString("server.addr"))
	assert.False(t, viper.GetBool("slug.sanitize_author"))
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv(paths.ConfigDirEnv, t.TempDir())
	t.Chdir(t.TempDir())

	Init()
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_WithConfigFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `version: 1
server:
  addr: 127.0.0.1:9090
  read_timeout: 3s
default_client: Cursor
slug:
  sanitize_author: true
`)

	Init()
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "Cursor", cfg.DefaultClient)
	assert.True(t, cfg.Slug.SanitizeAuthor)
	assert.Equal(t, path, FileUsed())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(paths.ConfigDirEnv, t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("MCPREG_SERVER_ADDR", ":7000")

	Init()
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	Init()
	_, err := Load("/non/existent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "invalid version",
			content: "version: 2\n",
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "unknown default client",
			content: "default_client: Emacs\n",
			wantErr: errors.ErrUnknownClient,
		},
		{
			name:    "empty addr",
			content: "server:\n  addr: \"  \"\n",
			wantErr: ErrInvalidAddr,
		},
		{
			name:    "negative timeout",
			content: "server:\n  shutdown_timeout: -1s\n",
			wantErr: ErrNegativeTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)

			Init()
			_, err := Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "validating config")
		})
	}
}

func TestInit_ClearsPreviousState(t *testing.T) {
	fileA := writeConfig(t, t.TempDir(), "version: 1\ndefault_client: VS Code\n")

	Init()
	_, err := Load(fileA)
	require.NoError(t, err)

	dirB := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, dirB)
	t.Chdir(t.TempDir())
	writeConfig(t, dirB, "version: 1\ndefault_client: Cursor\n")

	Init()
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Cursor", cfg.DefaultClient, "still reading %s", viper.ConfigFileUsed())
}

func TestValidate(t *testing.T) {
	assert.Empty(t, Validate(Default()))
	assert.Len(t, Validate(nil), 1)

	cfg := Default()
	cfg.CatalogFile = "bad\x00path"
	errs := Validate(cfg)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrInvalidPath)
	assert.Contains(t, errs[0].Error(), "catalog_file")
}
