package hostaway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"flex_reviews/internal/adapters/hostaway"
)

func TestClient_AccountReviews_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status": "success",
				"result": []map[string]any{
					{"id": 7453.0, "rating": 9.5, "listingName": "Shoreditch Heights", "channel": "Airbnb"},
				},
			})
		}
	}))
	defer ts.Close()

	cl, err := hostaway.New(ts.URL, "acc-1", "test-key", 50, 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got, err := cl.AccountReviews(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != 7453 || got[0].Rating != 9.5 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_AccountReviews_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := hostaway.New(ts.URL, "acc-1", "test-key", 50, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err = cl.AccountReviews(ctx); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestClient_SendsBearerAuth(t *testing.T) {
	var auth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "success", "result": []map[string]any{}})
	}))
	defer ts.Close()

	cl, _ := hostaway.New(ts.URL, "acc-1", "secret", 50, 100)
	if _, err := cl.ListingReviews(context.Background(), 42); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if auth != "Bearer secret" {
		t.Fatalf("auth header: got %q", auth)
	}
}

func TestClient_RequiresKey(t *testing.T) {
	if _, err := hostaway.New("https://api.example.com", "acc", "", 50, 5); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
