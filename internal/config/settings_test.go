package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSettings_Full(t *testing.T) {
	yaml := `
prompt: "monkey> "
color: never
history_file: .history
trace: true
`
	s, err := ParseSettings([]byte(yaml), "/proj/monkey.yaml")
	require.NoError(t, err)
	require.Equal(t, "monkey> ", s.Prompt)
	require.Equal(t, ColorNever, s.Color)
	require.Equal(t, filepath.Join("/proj", ".history"), s.HistoryFile)
	require.True(t, s.Trace)
}

func TestParseSettings_EmptyUsesDefaults(t *testing.T) {
	s, err := ParseSettings(nil, "monkey.yaml")
	require.NoError(t, err)
	require.Equal(t, DefaultPrompt, s.Prompt)
	require.Equal(t, ColorAuto, s.Color)
	require.Empty(t, s.HistoryFile)
	require.False(t, s.Trace)
}

func TestParseSettings_UnknownField(t *testing.T) {
	_, err := ParseSettings([]byte("promt: x\n"), "monkey.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "monkey.yaml")
}

func TestParseSettings_BadColor(t *testing.T) {
	_, err := ParseSettings([]byte("color: sometimes\n"), "monkey.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown mode "sometimes"`)
}

func TestParseSettings_AbsoluteHistoryKept(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "hist")
	s, err := ParseSettings([]byte("history_file: "+abs+"\n"), "/elsewhere/monkey.yaml")
	require.NoError(t, err)
	require.Equal(t, abs, s.HistoryFile)
}

func TestLoadSettings_Missing(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindSettings(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, err := FindSettings(nested)
	require.NoError(t, err)
	require.Empty(t, path)

	want := filepath.Join(root, SettingsFileName)
	require.NoError(t, os.WriteFile(want, []byte("prompt: \"$ \"\n"), 0o644))

	path, err = FindSettings(nested)
	require.NoError(t, err)
	require.Equal(t, want, path)

	s, err := LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, "$ ", s.Prompt)
}

func TestUseColor(t *testing.T) {
	s := DefaultSettings()
	require.True(t, s.UseColor(true))
	require.False(t, s.UseColor(false))

	s.Color = ColorAlways
	require.True(t, s.UseColor(false))

	s.Color = ColorNever
	require.False(t, s.UseColor(true))
}
