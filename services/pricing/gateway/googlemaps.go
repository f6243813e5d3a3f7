package gateway

import (
	"context"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"github.com/carevan/carevan/internal/pkg/database"
	"github.com/carevan/carevan/internal/pkg/fare"
	"github.com/carevan/carevan/internal/pkg/logger"
	"github.com/carevan/carevan/internal/utils"
)

const (
	countyCacheTTL = 24 * time.Hour

	// geohashPrecision 6 cells are about 1.2 km across, well inside any
	// county, so every coordinate in a cell shares one lookup.
	geohashPrecision = 6
)

// geocoder is the subset of the Google Maps client the gateway uses
type geocoder interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// CountyGateway resolves addresses and coordinates to county names via the
// Google Maps Geocoding API, with a Redis cache in front. Resolution never
// returns an error: any failure resolves to "" and pricing falls open to
// home-county rates.
type CountyGateway struct {
	client geocoder
	cache  *database.RedisClient
}

// NewCountyGateway creates a county gateway backed by the Google Maps API
func NewCountyGateway(apiKey string, cache *database.RedisClient) (*CountyGateway, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &CountyGateway{
		client: client,
		cache:  cache,
	}, nil
}

// ResolveCounty resolves a street address to a county name
func (g *CountyGateway) ResolveCounty(ctx context.Context, address string) string {
	cacheKey := "county:addr:" + strings.ToLower(strings.TrimSpace(address))
	if county, ok := g.cached(ctx, cacheKey); ok {
		return county
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		logger.Warn("Geocoding failed",
			logger.String("address", address),
			logger.Err(err))
		return ""
	}

	county := countyFromResults(results)
	g.store(ctx, cacheKey, county)
	return county
}

// ResolveCountyLatLng resolves a coordinate to a county name
func (g *CountyGateway) ResolveCountyLatLng(ctx context.Context, lat, lng float64) string {
	cacheKey := "county:geo:" + utils.GeoCell(lat, lng, geohashPrecision)
	if county, ok := g.cached(ctx, cacheKey); ok {
		return county
	}

	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil {
		logger.Warn("Reverse geocoding failed",
			logger.Float64("lat", lat),
			logger.Float64("lng", lng),
			logger.Err(err))
		return ""
	}

	county := countyFromResults(results)
	g.store(ctx, cacheKey, county)
	return county
}

func (g *CountyGateway) cached(ctx context.Context, key string) (string, bool) {
	if g.cache == nil {
		return "", false
	}
	county, err := g.cache.Get(ctx, key)
	if err != nil {
		return "", false
	}
	return county, true
}

func (g *CountyGateway) store(ctx context.Context, key, county string) {
	// Empty results are not cached; a transient geocoder outage should not
	// pin misses for a day.
	if g.cache == nil || county == "" {
		return
	}
	if err := g.cache.Set(ctx, key, county, countyCacheTTL); err != nil {
		logger.Debug("Failed to cache county lookup", logger.Err(err))
	}
}

// countyFromResults extracts the county from geocoding results. Google
// reports US counties as administrative_area_level_2 components.
func countyFromResults(results []maps.GeocodingResult) string {
	for _, result := range results {
		for _, component := range result.AddressComponents {
			for _, t := range component.Types {
				if t == "administrative_area_level_2" {
					return fare.NormalizeCounty(component.LongName)
				}
			}
		}
	}
	return ""
}
