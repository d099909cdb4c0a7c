package main

import (
	"testing"

	"mastercraft/config"
	"mastercraft/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func testConfig(driver string) *config.Config {
	cfg := &config.Config{
		Store: config.StoreConfig{Driver: driver},
		Auth:  &config.AuthConfig{Provider: constants.AuthProviderJWT, JWTSecret: "secret"},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return cfg
}

func TestAppOptions(t *testing.T) {
	for _, driver := range []string{constants.StoreDriverMemory, constants.StoreDriverPostgres, constants.StoreDriverFirestore} {
		t.Run(driver, func(t *testing.T) {
			opts, err := appOptions(testConfig(driver))
			require.NoError(t, err)

			assert.NoError(t, fx.ValidateApp(opts))
		})
	}
}

func TestAppOptions_UnknownDriver(t *testing.T) {
	_, err := appOptions(testConfig("mongodb"))

	assert.Error(t, err)
}
