package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosestok/internal/pkg/mosestok/engine"
	"mosestok/internal/pkg/mosestok/lang"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func TestParse_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "tokenize", cfg.Mode)
	assert.Equal(t, "en", cfg.Language)
	assert.False(t, cfg.NoEscape)
	assert.True(t, cfg.AggressiveDashSplits)
	assert.Empty(t, cfg.Protect)
	assert.True(t, cfg.Penn)
	assert.True(t, cfg.NormQuoteCommas)
	assert.True(t, cfg.NormNumbers)
	assert.True(t, cfg.PreReplaceUnicodePunct)
	assert.False(t, cfg.PostRemoveControlChars)
	assert.False(t, cfg.NFC)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Args)

	got := cfg.Engine()
	assert.Empty(t, got.ProtectedPatterns)
	got.ProtectedPatterns = nil
	want := engine.DefaultConfig()
	want.Mode = "tokenize"
	assert.Equal(t, want, got)
}

func TestParse_Flags(t *testing.T) {
	isolate(t)

	cfg, err := Parse([]string{
		"-m", "normalize",
		"-l", "de",
		"--no-escape",
		"--penn=false",
		"--post-remove-control-chars",
		"--nfc",
		"--protect", `<[^>]+>`,
		"--protect", `https?://\S+`,
		"-o", "out.txt",
		"Hallo", "Welt",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, "normalize", cfg.Mode)
	assert.Equal(t, "de", cfg.Language)
	assert.True(t, cfg.NoEscape)
	assert.False(t, cfg.Penn)
	assert.True(t, cfg.PostRemoveControlChars)
	assert.True(t, cfg.NFC)
	assert.Equal(t, []string{`<[^>]+>`, `https?://\S+`}, cfg.Protect)
	assert.Equal(t, "out.txt", cfg.Output)
	assert.Equal(t, []string{"Hallo", "Welt"}, cfg.Args)

	ec := cfg.Engine()
	assert.False(t, ec.Escape)
	assert.False(t, ec.Penn)
	assert.True(t, ec.NFC)
	assert.Equal(t, cfg.Protect, ec.ProtectedPatterns)
}

func TestParse_ConfigFileAndEnv(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "mosestok.toml")
	content := "mode = \"penn\"\nlang = \"fr\"\nno_escape = true\nlog_level = \"debug\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Run("file", func(t *testing.T) {
		cfg, err := Parse([]string{"-c", path}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "penn", cfg.Mode)
		assert.Equal(t, "fr", cfg.Language)
		assert.True(t, cfg.NoEscape)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("MOSESTOK_LANG", "it")
		cfg, err := Parse([]string{"-c", path}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "it", cfg.Language)
		assert.Equal(t, "penn", cfg.Mode)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		t.Setenv("MOSESTOK_LANG", "it")
		cfg, err := Parse([]string{"-c", path, "-l", "es"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
	})

	t.Run("default search path", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "mosestok.cfg"), []byte("lang = \"sv\"\n"), 0o644))
		cfg, err := Parse(nil, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "sv", cfg.Language)
	})
}

func TestParse_Errors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--bogus"}},
		{name: "unknown language", args: []string{"-l", "xx"}},
		{name: "text and file", args: []string{"-t", "a", "-f", "b.txt"}},
		{name: "text and args", args: []string{"-t", "a", "b"}},
		{name: "missing config file", args: []string{"-c", filepath.Join(t.TempDir(), "nope.toml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(tt.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}

	_, err := Parse([]string{"-l", "xx"}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, lang.ErrUnknownLanguage))
}

func TestParse_Help(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	cfg, err := Parse([]string{"-h"}, &out)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, ErrHelp))
	assert.Contains(t, out.String(), "Usage: mosestok")
	assert.Contains(t, out.String(), "--lang")
}
