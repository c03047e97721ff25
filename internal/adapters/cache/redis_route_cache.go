package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"waste-collection-service/internal/domain"
	"waste-collection-service/internal/platform/obs"
	"waste-collection-service/internal/ports"
)

// RedisRouteCache keeps the latest optimized route per depot so crew-facing
// reads do not trigger a replan or a database round trip.
type RedisRouteCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{Client: client, TTL: ttl}
}

func routeKey(depotID string) string {
	return "route:latest:" + depotID
}

type cachedStop struct {
	StopType             string         `json:"stop_type"`
	ReferenceID          string         `json:"reference_id"`
	Address              string         `json:"address"`
	Lat                  float64        `json:"lat"`
	Lng                  float64        `json:"lng"`
	PriorityHint         int            `json:"priority_hint"`
	SequencePosition     int            `json:"sequence_position"`
	CumulativeDistanceKm float64        `json:"cumulative_distance_km"`
	ArrivalOffsetMinutes float64        `json:"arrival_offset_minutes"`
	Metadata             map[string]any `json:"metadata,omitempty"`
}

type cachedRoute struct {
	TotalStops       int          `json:"total_stops"`
	TotalDistanceKm  float64      `json:"total_distance_km"`
	EstimatedMinutes float64      `json:"estimated_minutes"`
	Stops            []cachedStop `json:"stops"`
}

// Store the route as the latest for its depot.
func (c *RedisRouteCache) PutLatest(ctx context.Context, depotID string, route domain.OptimizedRoute) (err error) {
	defer obs.Time(ctx, "routes.cache.PutLatest")(&err)

	if c.Client == nil {
		return errors.New("route cache: client is nil")
	}
	if depotID == "" {
		return errors.New("put latest route: depot id must not be empty")
	}

	stored := cachedRoute{
		TotalStops:       route.TotalStops,
		TotalDistanceKm:  route.TotalDistanceKm,
		EstimatedMinutes: route.EstimatedMinutes,
		Stops:            make([]cachedStop, 0, len(route.Stops)),
	}
	for _, s := range route.Stops {
		stored.Stops = append(stored.Stops, cachedStop{
			StopType:             string(s.Kind),
			ReferenceID:          s.ReferenceID,
			Address:              s.Address,
			Lat:                  s.Location.Lat,
			Lng:                  s.Location.Lng,
			PriorityHint:         s.PriorityHint,
			SequencePosition:     s.SequencePosition,
			CumulativeDistanceKm: s.CumulativeDistanceKm,
			ArrivalOffsetMinutes: s.ArrivalOffsetMinutes,
			Metadata:             s.Metadata,
		})
	}

	payload, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("put latest route: marshal: %w", err)
	}

	if err := c.Client.Set(ctx, routeKey(depotID), payload, c.TTL).Err(); err != nil {
		return fmt.Errorf("put latest route: redis set %q: %w", routeKey(depotID), err)
	}

	return nil
}

// Fetch the latest cached route for a depot.
// Returns ports.ErrRouteNotCached when the key is absent or expired.
func (c *RedisRouteCache) GetLatest(ctx context.Context, depotID string) (_ domain.OptimizedRoute, err error) {
	defer obs.Time(ctx, "routes.cache.GetLatest")(&err)

	if c.Client == nil {
		return domain.OptimizedRoute{}, errors.New("route cache: client is nil")
	}
	if depotID == "" {
		return domain.OptimizedRoute{}, errors.New("get latest route: depot id must not be empty")
	}

	payload, err := c.Client.Get(ctx, routeKey(depotID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.OptimizedRoute{}, fmt.Errorf("get latest route: depot %q: %w", depotID, ports.ErrRouteNotCached)
	}
	if err != nil {
		return domain.OptimizedRoute{}, fmt.Errorf("get latest route: redis get %q: %w", routeKey(depotID), err)
	}

	var stored cachedRoute
	if err := json.Unmarshal(payload, &stored); err != nil {
		return domain.OptimizedRoute{}, fmt.Errorf("get latest route: unmarshal: %w", err)
	}

	route := domain.OptimizedRoute{
		TotalStops:       stored.TotalStops,
		TotalDistanceKm:  stored.TotalDistanceKm,
		EstimatedMinutes: stored.EstimatedMinutes,
		Stops:            make([]domain.RouteStop, 0, len(stored.Stops)),
	}
	for _, s := range stored.Stops {
		route.Stops = append(route.Stops, domain.RouteStop{
			StopCandidate: domain.StopCandidate{
				Kind:         domain.StopKind(s.StopType),
				ReferenceID:  s.ReferenceID,
				Location:     domain.Coordinate{Lat: s.Lat, Lng: s.Lng},
				Address:      s.Address,
				PriorityHint: s.PriorityHint,
				Metadata:     s.Metadata,
			},
			SequencePosition:     s.SequencePosition,
			CumulativeDistanceKm: s.CumulativeDistanceKm,
			ArrivalOffsetMinutes: s.ArrivalOffsetMinutes,
		})
	}

	return route, nil
}
