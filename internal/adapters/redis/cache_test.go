package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "flex_reviews/internal/adapters/redis"
	"flex_reviews/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var missed domain.StatsReport
	ok, err := c.Get(ctx, "stats:v1", &missed)
	if err != nil || ok {
		t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
	}

	in := domain.StatsReport{
		Portfolio:  domain.PortfolioStats{AverageRating: 8.8, TotalCount: 5, ApprovedCount: 3},
		ByChannel:  []domain.ChannelCount{{Channel: "Airbnb", Count: 3}},
		ByProperty: []domain.PropertyStats{{Name: "Camden Court", Count: 2}},
	}
	if err := c.Set(ctx, "stats:v1", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out domain.StatsReport
	ok, err = c.Get(ctx, "stats:v1", &out)
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}
	if out.Portfolio.AverageRating != 8.8 || len(out.ByChannel) != 1 || out.ByChannel[0].Count != 3 {
		t.Fatalf("unexpected value: %+v", out)
	}

	if err := c.Del(ctx, "stats:v1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, _ = c.Get(ctx, "stats:v1", &out)
	if ok {
		t.Fatal("expected miss after delete")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "k", "v", 30); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(31 * time.Second) // past the TTL

	var out string
	ok, _ := c.Get(ctx, "k", &out)
	if ok {
		t.Fatal("expected expiry after TTL")
	}
}
