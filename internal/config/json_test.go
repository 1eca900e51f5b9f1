package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"app": {
			"token_sign_key": "secret",
			"token_issuer": "pantry-keeper",
			"token_duration": "24h",
			"version": "0.3.0"
		},
		"storage": {
			"db": {"dsn": "postgres://localhost/pantry"},
			"local": {"path": "state.db"}
		},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s"},
		"adapter": {"http_address": "http://localhost:8080", "request_timeout": "15s"},
		"workers": {"refresh_interval": "10m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "pantry-keeper", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "0.3.0", cfg.App.Version)
	assert.Equal(t, "postgres://localhost/pantry", cfg.Storage.DB.DSN)
	assert.Equal(t, "state.db", cfg.Storage.Local.Path)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeConfigFile(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_InvalidDurationString(t *testing.T) {
	path := writeConfigFile(t, `{"server": {"request_timeout": "soon"}}`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{"server": `)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestClientConfigValidate(t *testing.T) {
	valid := &ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
		Storage: ClientStorage{Local: ClientLocal{Path: "state.db"}},
		Workers: ClientWorkers{RefreshInterval: time.Minute},
	}
	require.NoError(t, valid.validate())

	noAdapter := *valid
	noAdapter.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noAdapter.validate(), ErrInvalidAdapterConfigs)

	noState := *valid
	noState.Storage.Local.Path = ""
	assert.ErrorIs(t, noState.validate(), ErrInvalidStorageConfigs)

	noWorkers := *valid
	noWorkers.Workers.RefreshInterval = 0
	assert.ErrorIs(t, noWorkers.validate(), ErrInvalidWorkerConfigs)
}

func TestValidateServer(t *testing.T) {
	valid := &StructuredConfig{
		App:     App{TokenSignKey: "k", TokenIssuer: "iss", TokenDuration: time.Hour},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/pantry"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
	require.NoError(t, valid.ValidateServer())

	noDSN := *valid
	noDSN.Storage.DB.DSN = ""
	assert.ErrorIs(t, noDSN.ValidateServer(), ErrInvalidStorageConfigs)

	noAddr := *valid
	noAddr.Server.HTTPAddress = ""
	assert.ErrorIs(t, noAddr.ValidateServer(), ErrInvalidServerConfigs)

	noToken := *valid
	noToken.App.TokenSignKey = ""
	assert.ErrorIs(t, noToken.ValidateServer(), ErrInvalidAppConfigs)
}
