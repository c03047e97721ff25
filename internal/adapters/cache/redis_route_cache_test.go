package cache

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"waste-collection-service/internal/domain"
	"waste-collection-service/internal/ports"
)

func testCache(t *testing.T) *RedisRouteCache {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisRouteCache(client, time.Hour)
}

func testRoute() domain.OptimizedRoute {
	return domain.OptimizedRoute{
		TotalStops:       2,
		TotalDistanceKm:  3.64,
		EstimatedMinutes: 17.3,
		Stops: []domain.RouteStop{
			{
				StopCandidate: domain.StopCandidate{
					Kind:         domain.StopKindBinCollection,
					ReferenceID:  "b1",
					Location:     domain.Coordinate{Lat: 6.9271, Lng: 79.8612},
					Address:      "Main St depot",
					PriorityHint: 95,
					Metadata:     map[string]any{"bin_type": "general"},
				},
				SequencePosition:     1,
				CumulativeDistanceKm: 0,
				ArrivalOffsetMinutes: 0,
			},
			{
				StopCandidate: domain.StopCandidate{
					Kind:         domain.StopKindRequestPickup,
					ReferenceID:  "r1",
					Location:     domain.Coordinate{Lat: 6.8945, Lng: 79.8573},
					Address:      "Galle Rd",
					PriorityHint: 50,
					Metadata:     map[string]any{"waste_type": "bulky", "tracking_id": "r1"},
				},
				SequencePosition:     2,
				CumulativeDistanceKm: 3.64,
				ArrivalOffsetMinutes: 12.3,
			},
		},
	}
}

func TestRedisRouteCachePutAndGet(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	if err := c.PutLatest(ctx, "depot-1", testRoute()); err != nil {
		t.Fatalf("put: unexpected error: %v", err)
	}

	got, err := c.GetLatest(ctx, "depot-1")
	if err != nil {
		t.Fatalf("get: unexpected error: %v", err)
	}

	want := testRoute()
	if got.TotalStops != want.TotalStops || got.TotalDistanceKm != want.TotalDistanceKm {
		t.Fatalf("totals changed through cache: got %+v", got)
	}
	if len(got.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(got.Stops))
	}
	for i := range want.Stops {
		if got.Stops[i].ReferenceID != want.Stops[i].ReferenceID ||
			got.Stops[i].Kind != want.Stops[i].Kind ||
			got.Stops[i].SequencePosition != want.Stops[i].SequencePosition ||
			got.Stops[i].Location != want.Stops[i].Location {
			t.Errorf("stop %d changed through cache: got %+v want %+v", i, got.Stops[i], want.Stops[i])
		}
	}
	if !reflect.DeepEqual(got.Stops[1].Metadata, want.Stops[1].Metadata) {
		t.Errorf("metadata changed through cache: got %v want %v", got.Stops[1].Metadata, want.Stops[1].Metadata)
	}
}

func TestRedisRouteCacheMiss(t *testing.T) {
	c := testCache(t)

	_, err := c.GetLatest(context.Background(), "depot-unknown")
	if !errors.Is(err, ports.ErrRouteNotCached) {
		t.Fatalf("expected ErrRouteNotCached, got %v", err)
	}
}

func TestRedisRouteCacheOverwrite(t *testing.T) {
	c := testCache(t)
	ctx := context.Background()

	if err := c.PutLatest(ctx, "depot-1", testRoute()); err != nil {
		t.Fatalf("put: unexpected error: %v", err)
	}

	replacement := domain.OptimizedRoute{TotalStops: 0, Stops: []domain.RouteStop{}}
	if err := c.PutLatest(ctx, "depot-1", replacement); err != nil {
		t.Fatalf("put replacement: unexpected error: %v", err)
	}

	got, err := c.GetLatest(ctx, "depot-1")
	if err != nil {
		t.Fatalf("get: unexpected error: %v", err)
	}
	if got.TotalStops != 0 || len(got.Stops) != 0 {
		t.Fatalf("expected replacement route, got %+v", got)
	}
}

func TestRedisRouteCacheRejectsEmptyDepot(t *testing.T) {
	c := testCache(t)

	if err := c.PutLatest(context.Background(), "", testRoute()); err == nil {
		t.Fatal("expected error for empty depot id")
	}
	if _, err := c.GetLatest(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty depot id")
	}
}
