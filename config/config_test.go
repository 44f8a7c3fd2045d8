package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("TRIPS", nil)
	require.NoError(t, err)
	require.Equal(t, ":5000", cfg.ListenAddr)
	require.Equal(t, "database.db", cfg.DBPath)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "output/suspicious_records.log", cfg.RejectionLog)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TRIPS_DB_PATH", "/tmp/test.db")
	t.Setenv("TRIPS_LOG_LEVEL", "debug")

	cfg, err := Load("TRIPS", nil)
	require.NoError(t, err)
	require.Equal(t, "/tmp/test.db", cfg.DBPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, ":5000", cfg.ListenAddr) // untouched default
}

func TestLoadFlagsWin(t *testing.T) {
	t.Setenv("TRIPS_DB_PATH", "/tmp/env.db")

	cfg, err := Load("TRIPS", []string{"--db-path=/tmp/flag.db", "--listen-addr=:8080"})
	require.NoError(t, err)
	require.Equal(t, "/tmp/flag.db", cfg.DBPath)
	require.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoadBadFlag(t *testing.T) {
	_, err := Load("TRIPS", []string{"--no-such-flag=1"})
	require.Error(t, err)
}
