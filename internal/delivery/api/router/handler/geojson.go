package handler

import (
	"mastercraft/internal/domain/dispatch"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// nearbyFeatureCollection renders search results as GeoJSON points, nearest first.
func nearbyFeatureCollection(nearby []dispatch.NearbyProvider) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, n := range nearby {
		loc := n.Provider.CurrentLocation
		feature := geojson.NewFeature(orb.Point{loc.Longitude, loc.Latitude})
		feature.ID = n.Provider.ID
		feature.Properties["name"] = n.Provider.Name
		feature.Properties["services"] = n.Provider.Services
		feature.Properties["currentStatus"] = n.Provider.CurrentStatus
		feature.Properties["completedJobs"] = n.Provider.CompletedJobs
		feature.Properties["distance"] = n.DistanceKm

		fc.Append(feature)
	}

	return fc
}
