package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/orgmine/internal/prefs"
)

// writeConfig points preferences at a temp file and returns the config path
// and the preferences path.
func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	prefsPath := filepath.Join(dir, "prefs.toml")
	cfgPath := filepath.Join(dir, "config.toml")
	content := "api_base_url = \"http://127.0.0.1:1/api\"\nprefs_path = \"" + filepath.ToSlash(prefsPath) + "\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))
	return cfgPath, prefsPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTableCmd_SearchShowcase(t *testing.T) {
	cfg, _ := writeConfig(t)

	out, err := execute(t, "--config", cfg, "table", "showcase", "--search", "jane")
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Smith")
	assert.NotContains(t, out, "John Doe")
	assert.Contains(t, out, "Showing 1 to 1 of 1 entries")
}

func TestTableCmd_SortDescending(t *testing.T) {
	cfg, _ := writeConfig(t)

	out, err := execute(t, "--config", cfg, "table", "showcase", "--sort", "name", "--desc", "--page-size", "10")
	require.NoError(t, err)
	john := strings.Index(out, "John Doe")
	jane := strings.Index(out, "Jane Smith")
	require.True(t, john >= 0 && jane >= 0)
	assert.Less(t, john, jane)
	assert.Contains(t, out, "Rows per page: 10")
}

func TestTableCmd_PageIsClamped(t *testing.T) {
	cfg, _ := writeConfig(t)

	out, err := execute(t, "--config", cfg, "table", "showcase", "--page", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 2 of 2")
	assert.Contains(t, out, "Henry Anderson")
}

func TestTableCmd_Language(t *testing.T) {
	cfg, prefsPath := writeConfig(t)
	require.NoError(t, prefs.Save(prefsPath, prefs.Preferences{Language: prefs.Indonesian, Theme: prefs.ThemeDark}))

	out, err := execute(t, "--config", cfg, "table", "showcase")
	require.NoError(t, err)
	assert.Contains(t, out, "Menampilkan 1 sampai 5 dari 10 entri")

	out, err = execute(t, "--config", cfg, "table", "showcase", "--lang", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1 to 5 of 10 entries")
}

func TestTableCmd_Errors(t *testing.T) {
	cfg, _ := writeConfig(t)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"unknown dataset", []string{"table", "nope"}, "showcase"},
		{"bad page size", []string{"table", "showcase", "--page-size", "7"}, "page size 7"},
		{"bad sort", []string{"table", "showcase", "--sort", "salary"}, "no column"},
		{"bad language", []string{"table", "showcase", "--lang", "fr"}, "unsupported language"},
		{"bad month", []string{"table", "collaboration", "--month", "2024-4"}, "invalid month"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"--config", cfg}, tc.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestPrefsCmd_SetAndShow(t *testing.T) {
	cfg, prefsPath := writeConfig(t)

	_, err := execute(t, "--config", cfg, "prefs", "set", "theme", "dark")
	require.NoError(t, err)
	_, err = execute(t, "--config", cfg, "prefs", "set", "sidebar", "collapsed")
	require.NoError(t, err)

	got := prefs.Load(prefsPath)
	assert.Equal(t, prefs.ThemeDark, got.Theme)
	assert.True(t, got.SidebarCollapsed)
	assert.Equal(t, prefs.English, got.Language)

	out, err := execute(t, "--config", cfg, "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "theme:    dark")
	assert.Contains(t, out, "sidebar:  collapsed")
}

func TestPrefsCmd_RejectsInvalidValues(t *testing.T) {
	cfg, prefsPath := writeConfig(t)

	_, err := execute(t, "--config", cfg, "prefs", "set", "theme", "sepia")
	require.Error(t, err)
	_, err = execute(t, "--config", cfg, "prefs", "set", "font", "mono")
	require.Error(t, err)

	_, statErr := os.Stat(prefsPath)
	assert.True(t, os.IsNotExist(statErr), "nothing is saved after a rejected value")
}

func TestParseSidebar(t *testing.T) {
	for value, want := range map[string]bool{"collapsed": true, "expanded": false, "true": true, "0": false} {
		got, err := parseSidebar(value)
		require.NoError(t, err, value)
		assert.Equal(t, want, got, value)
	}
	_, err := parseSidebar("half")
	assert.Error(t, err)
}
