// Package persistence selects the store backing the repositories.
package persistence

import (
	"mastercraft/internal/domain/constants"
	"mastercraft/internal/infra/persistence/firestore"
	"mastercraft/internal/infra/persistence/memory"
	"mastercraft/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Module returns the FX module of the configured store driver.
// The firestore driver expects a *firebase.App in the graph.
func Module(driver string) (fx.Option, error) {
	switch driver {
	case constants.StoreDriverFirestore:
		return firestore.Module, nil
	case constants.StoreDriverPostgres:
		return postgres.Module, nil
	case constants.StoreDriverMemory:
		return memory.Module, nil
	default:
		return nil, errors.Errorf("unknown store driver: %q", driver)
	}
}
