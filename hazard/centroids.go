package hazard

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Centroids georeferences hazard grid columns by latitude and longitude
// in degrees.
type Centroids struct {
	Lat []float64
	Lon []float64
}

// Size returns the number of centroids. Complexity: O(1).
func (c *Centroids) Size() int { return len(c.Lat) }

// Validate checks coordinate slice consistency.
func (c *Centroids) Validate() error {
	if len(c.Lat) != len(c.Lon) {
		return fmt.Errorf("%w: %d latitudes, %d longitudes", ErrCoordLength, len(c.Lat), len(c.Lon))
	}
	return nil
}

// NearestTo returns the index of the centroid closest to (lat, lon) and
// the great-circle distance to it in kilometers. Returns (-1, +Inf) when
// no centroids are defined. Complexity: O(Size).
func (c *Centroids) NearestTo(lat, lon float64) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for i := range c.Lat {
		if d := haversineKm(lat, lon, c.Lat[i], c.Lon[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best, bestDist
}

// haversineKm returns the great-circle distance between two coordinates
// in kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const degToRad = math.Pi / 180
	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad
	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*sinLon*sinLon
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}
