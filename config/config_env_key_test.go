package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"matching": map[string]any{
			"defaultRadiusKm": 10,
		},
		"firebase": map[string]any{
			"projectId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "MATCHING_DEFAULTRADIUSKM", want: "matching.defaultRadiusKm"},
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  env: develop
  serviceName: mastercraft
store:
  driver: memory
matching:
  defaultRadiusKm: 10
  maxRadiusKm: 50
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("MATCHING_MAXRADIUSKM", "25")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "mastercraft", cfg.Env.ServiceName)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	require.NotNil(t, cfg.Matching)
	assert.InDelta(t, 25.0, cfg.Matching.MaxRadiusKm, 1e-9)
	assert.InDelta(t, 10.0, cfg.Matching.DefaultRadiusKm, 1e-9)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultStoreDriver, cfg.Store.Driver)
	require.NotNil(t, cfg.Matching)
	assert.InDelta(t, 10.0, cfg.Matching.DefaultRadiusKm, 1e-9)
	assert.InDelta(t, defaultPreFilterMultiplier, cfg.Matching.PreFilterRadiusMultiplier, 1e-9)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.Store.Driver = "memory"

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Store.Driver = "mongo" },
			wantErr: "unknown store.driver",
		},
		{
			name:    "postgres without section",
			mutate:  func(cfg *Config) { cfg.Store.Driver = "postgres" },
			wantErr: "postgres section is missing",
		},
		{
			name:    "jwt without secret",
			mutate:  func(cfg *Config) { cfg.Auth = &AuthConfig{Provider: "jwt"} },
			wantErr: "auth.jwtSecret",
		},
		{
			name:    "unknown pubsub provider",
			mutate:  func(cfg *Config) { cfg.PubSub = &PubSubConfig{Provider: "kafka"} },
			wantErr: "unknown pubsub.provider",
		},
		{
			name: "memory store with a pubsub consumer",
			mutate: func(cfg *Config) {
				cfg.PubSub = &PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}
			},
			wantErr: "store.driver memory is process-local",
		},
		{
			name: "memory store without pubsub",
			mutate: func(cfg *Config) {
				cfg.PubSub = &PubSubConfig{}
			},
		},
		{
			name: "default radius above max",
			mutate: func(cfg *Config) {
				cfg.Matching.DefaultRadiusKm = 20
				cfg.Matching.MaxRadiusKm = 15
			},
			wantErr: "exceeds matching.maxRadiusKm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
