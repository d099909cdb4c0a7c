// Package dispatch holds the decision logic of the marketplace: the nearby
// provider filter, request matching and the request lifecycle rules. Every
// function here is pure; persistence and delivery live in the use cases.
package dispatch

import (
	"cmp"
	"math"
	"slices"

	"mastercraft/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	// EarthRadiusKm is the mean Earth radius used for great-circle distances.
	EarthRadiusKm = 6371.0

	// DefaultMaxDistanceKm is the search radius used when the caller gives none.
	DefaultMaxDistanceKm = 10.0
)

// NearbyProvider is a provider within the search radius and its distance from the query point.
type NearbyProvider struct {
	Provider   *entity.Provider
	DistanceKm float64 // Rounded to one decimal place
}

// Haversine returns the great-circle distance between a and b in kilometers.
func Haversine(a, b entity.GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	deltaLat := (b.Latitude - a.Latitude) * math.Pi / 180
	deltaLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// GeoFilter selects providers around a point.
type GeoFilter struct {
	// preFilterMultiplier scales the bounding box used to skip far candidates
	// before the exact distance check. Zero disables the pre-filter.
	preFilterMultiplier float64
}

// NewGeoFilter creates a filter. A multiplier below 1 disables the bounding box pre-filter.
func NewGeoFilter(preFilterMultiplier float64) *GeoFilter {
	if preFilterMultiplier < 1 {
		preFilterMultiplier = 0
	}

	return &GeoFilter{preFilterMultiplier: preFilterMultiplier}
}

// FindNearby returns the candidates offering serviceType (any service when empty)
// whose location lies within maxDistanceKm of point, boundary included, sorted by
// ascending distance. Candidates without a location are skipped.
func (f *GeoFilter) FindNearby(point entity.GeoPoint, candidates []*entity.Provider, serviceType string, maxDistanceKm float64) []NearbyProvider {
	bound, useBound := f.searchBound(point, maxDistanceKm)

	type hit struct {
		provider *entity.Provider
		distance float64
	}
	hits := make([]hit, 0, len(candidates))

	for _, provider := range candidates {
		if provider == nil || provider.CurrentLocation == nil {
			continue
		}
		if serviceType != "" && !provider.OffersService(serviceType) {
			continue
		}

		loc := *provider.CurrentLocation
		if useBound && !bound.Contains(orb.Point{loc.Longitude, loc.Latitude}) {
			continue
		}

		distance := Haversine(point, loc)
		if distance > maxDistanceKm {
			continue
		}

		hits = append(hits, hit{provider: provider, distance: distance})
	}

	slices.SortStableFunc(hits, func(a, b hit) int {
		if c := cmp.Compare(a.distance, b.distance); c != 0 {
			return c
		}

		return cmp.Compare(a.provider.ID, b.provider.ID)
	})

	result := make([]NearbyProvider, 0, len(hits))
	for _, h := range hits {
		result = append(result, NearbyProvider{
			Provider:   h.provider,
			DistanceKm: roundToTenth(h.distance),
		})
	}

	return result
}

// searchBound returns the pre-filter box, or false when the box would wrap the
// antimeridian or could not be computed for the radius.
func (f *GeoFilter) searchBound(point entity.GeoPoint, maxDistanceKm float64) (orb.Bound, bool) {
	if f == nil || f.preFilterMultiplier == 0 || maxDistanceKm <= 0 {
		return orb.Bound{}, false
	}

	// orb measures on a larger sphere; scale so the box keeps the same angular radius.
	radiusMeters := maxDistanceKm * f.preFilterMultiplier * orb.EarthRadius / EarthRadiusKm
	bound := geo.NewBoundAroundPoint(orb.Point{point.Longitude, point.Latitude}, radiusMeters)

	for _, v := range []float64{bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1]} {
		if math.IsNaN(v) {
			return orb.Bound{}, false
		}
	}
	if bound.Min[0] < -180 || bound.Max[0] > 180 {
		return orb.Bound{}, false
	}

	return bound, true
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
