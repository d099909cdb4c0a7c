// Package config loads the service configuration shared by the API and the
// dispatch worker.
package config

import (
	"strings"
	"time"

	"mastercraft/internal/domain/constants"

	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize  = "100KB"
	defaultStoreDriver         = "firestore"
	defaultRadiusKm            = 10.0
	defaultPreFilterMultiplier = 1.3
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store selects the persistence backend shared by the API and the dispatch worker
	Store StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration shared by Firestore, Auth and Cloud Messaging
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Auth configuration for verifying callers of the API
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// PubSub configuration for request event delivery
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Matching configuration for the nearby provider search
	Matching *MatchingConfig `json:"matching" yaml:"matching"`

	// Push configuration for FCM delivery of created notifications
	Push *PushConfig `json:"push" yaml:"push"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StoreConfig defines which document store backs the repositories
type StoreConfig struct {
	// Driver is one of "firestore", "postgres" or "memory". The memory store
	// lives inside one process, so it only suits tests and single-process runs.
	Driver string `json:"driver" yaml:"driver"`

	// Migrate runs the embedded SQL migrations on start (postgres only)
	Migrate bool `json:"migrate" yaml:"migrate"`
}

// FirebaseConfig defines the Firebase project used by the admin SDK
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// AuthConfig defines how bearer tokens on the API are verified
type AuthConfig struct {
	// Provider is "firebase" (ID tokens) or "jwt" (HMAC signed tokens)
	Provider  string `json:"provider" yaml:"provider"`
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`
	Issuer    string `json:"issuer" yaml:"issuer"`
}

// PubSubConfig defines Pub/Sub configuration for request events
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the dispatch worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of push JWTs; defaults to the push URL
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// MatchingConfig defines the nearby provider search defaults
type MatchingConfig struct {
	// Radius used when the caller does not send maxDistance
	DefaultRadiusKm float64 `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`

	// Upper bound for maxDistance; zero disables the bound
	MaxRadiusKm float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`

	// Bounding box pre-filter multiplier applied before the Haversine check
	PreFilterRadiusMultiplier float64 `json:"preFilterRadiusMultiplier" yaml:"preFilterRadiusMultiplier"`
}

// PushConfig defines FCM delivery of created notifications
type PushConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	TopicPrefix string `json:"topicPrefix" yaml:"topicPrefix"`
}

// New loads config/config.yaml, applies environment overrides and defaults,
// and validates the result.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if strings.TrimSpace(cfg.Store.Driver) == "" {
		cfg.Store.Driver = defaultStoreDriver
	}

	if cfg.Matching == nil {
		cfg.Matching = &MatchingConfig{}
	}
	if cfg.Matching.DefaultRadiusKm <= 0 {
		cfg.Matching.DefaultRadiusKm = defaultRadiusKm
	}
	if cfg.Matching.PreFilterRadiusMultiplier < 1 {
		cfg.Matching.PreFilterRadiusMultiplier = defaultPreFilterMultiplier
	}
}

// Validate rejects combinations the services cannot start with.
func (cfg *Config) Validate() error {
	switch cfg.Store.Driver {
	case constants.StoreDriverMemory, constants.StoreDriverFirestore:
	case constants.StoreDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("store.driver is postgres but the postgres section is missing")
		}
	default:
		return errors.Errorf("unknown store.driver %q", cfg.Store.Driver)
	}

	if cfg.Auth != nil && cfg.Auth.Provider == constants.AuthProviderJWT && strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		return errors.New("auth.jwtSecret is required for the jwt provider")
	}

	if cfg.PubSub != nil {
		switch cfg.PubSub.Provider {
		case "":
		case constants.PubSubProviderLocal, constants.PubSubProviderGoogle:
			// Published events are consumed by the dispatch worker, a separate
			// process that cannot see this process's memory store.
			if cfg.Store.Driver == constants.StoreDriverMemory {
				return errors.New("store.driver memory is process-local and cannot be combined with pubsub; use postgres or firestore")
			}
		default:
			return errors.Errorf("unknown pubsub.provider %q", cfg.PubSub.Provider)
		}
	}

	if m := cfg.Matching; m != nil && m.MaxRadiusKm > 0 && m.DefaultRadiusKm > m.MaxRadiusKm {
		return errors.Errorf("matching.defaultRadiusKm %.1f exceeds matching.maxRadiusKm %.1f", m.DefaultRadiusKm, m.MaxRadiusKm)
	}

	return nil
}
