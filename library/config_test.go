package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Equal(t, DefaultLoanDays, cfg.LoanDays)
	assert.Equal(t, BackendJSON, cfg.Backend)
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	payload := "data_file: shelf.db\nloan_days: 21\nbackend: sqlite\n"
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "shelf.db", cfg.DataFile)
	assert.Equal(t, 21, cfg.LoanDays)
	assert.Equal(t, BackendSQLite, cfg.Backend)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, os.WriteFile(path, []byte("loan_days: 21\n"), 0o644))

	t.Setenv("LIBRARY_DATA_FILE", "env.json")
	t.Setenv("LIBRARY_LOAN_DAYS", "30")
	t.Setenv("LIBRARY_BACKEND", "json")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env.json", cfg.DataFile)
	assert.Equal(t, 30, cfg.LoanDays)
	assert.Equal(t, BackendJSON, cfg.Backend)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Run("non-numeric loan days env", func(t *testing.T) {
		t.Setenv("LIBRARY_LOAN_DAYS", "soon")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("loan days below one", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "library.yaml")
		require.NoError(t, os.WriteFile(path, []byte("loan_days: 0\n"), 0o644))
		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unknown backend", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "library.yaml")
		require.NoError(t, os.WriteFile(path, []byte("backend: postgres\n"), 0o644))
		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unparseable yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "library.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\n\t- nope"), 0o644))
		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestConfigOpenStore(t *testing.T) {
	dir := t.TempDir()

	jsonStore, err := Config{DataFile: filepath.Join(dir, "c.json"), LoanDays: 14, Backend: BackendJSON}.OpenStore()
	require.NoError(t, err)
	_, ok := jsonStore.(*JSONStore)
	assert.True(t, ok)

	sqliteStore, err := Config{DataFile: filepath.Join(dir, "c.db"), LoanDays: 14, Backend: BackendSQLite}.OpenStore()
	require.NoError(t, err)
	s, ok := sqliteStore.(*SQLiteStore)
	require.True(t, ok)
	s.Close()
}
