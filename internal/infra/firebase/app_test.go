package firebase

import (
	"testing"

	"mastercraft/config"
	"mastercraft/internal/domain/constants"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*config.Config)
		want bool
	}{
		{name: "memory store with jwt auth", cfg: func(*config.Config) {}, want: false},
		{name: "firestore store", cfg: func(c *config.Config) { c.Store.Driver = constants.StoreDriverFirestore }, want: true},
		{name: "firebase auth", cfg: func(c *config.Config) { c.Auth.Provider = constants.AuthProviderFirebase }, want: true},
		{name: "push enabled", cfg: func(c *config.Config) { c.Push = &config.PushConfig{Enabled: true} }, want: true},
		{name: "push disabled", cfg: func(c *config.Config) { c.Push = &config.PushConfig{} }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				Store: config.StoreConfig{Driver: constants.StoreDriverMemory},
				Auth:  &config.AuthConfig{Provider: constants.AuthProviderJWT},
			}
			tt.cfg(cfg)

			assert.Equal(t, tt.want, Required(cfg))
		})
	}
}
