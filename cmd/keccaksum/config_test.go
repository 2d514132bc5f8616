package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "keccaksum.toml", `
size = 64
encoding = "windows-1252"
prefix = true
jobs = 3
read_buffer = "1MB"
`)
	cfg := DefaultConfig()
	require.NoError(t, LoadConfig(path, &cfg))
	require.Equal(t, 64, cfg.Size)
	require.Equal(t, "windows-1252", cfg.Encoding)
	require.True(t, cfg.Prefix)
	require.Equal(t, 3, cfg.Jobs)
	require.Equal(t, datasize.MB, cfg.ReadBuffer)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, "keccaksum.toml", "prefix = true\n")
	cfg := DefaultConfig()
	require.NoError(t, LoadConfig(path, &cfg))
	require.True(t, cfg.Prefix)
	require.Equal(t, DefaultConfig().Size, cfg.Size)
	require.Equal(t, 64*datasize.KB, cfg.ReadBuffer)
}

func TestLoadConfigErrors(t *testing.T) {
	cfg := DefaultConfig()
	require.Error(t, LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), &cfg))

	path := writeFile(t, "bad.toml", "sise = 32\n")
	require.Error(t, LoadConfig(path, &cfg))
}

func TestConfigValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"size too small":      func(c *Config) { c.Size = 16 },
		"size zero":           func(c *Config) { c.Size = 0 },
		"size rate <= 0":      func(c *Config) { c.Size = 150 },
		"unknown enc":         func(c *Config) { c.Encoding = "klingon" },
		"no jobs":             func(c *Config) { c.Jobs = 0 },
		"no read buffer":      func(c *Config) { c.ReadBuffer = 0 },
		"read buffer too big": func(c *Config) { c.ReadBuffer = maxReadBuffer + 1 },
		"text and hex":        func(c *Config) { c.Text, c.Hex = true, true },
	} {
		cfg := DefaultConfig()
		mutate(&cfg)
		require.Error(t, cfg.Validate(), name)
	}

	cfg := DefaultConfig()
	cfg.Size = 200
	cfg.ReadBuffer = maxReadBuffer
	require.NoError(t, cfg.Validate())
}
