package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"flex_reviews/internal/adapters/observability"
	"flex_reviews/internal/analytics"
	"flex_reviews/internal/app"
	"flex_reviews/internal/domain"
	"flex_reviews/internal/store"
)

type Handlers struct {
	Q *app.QueryService
	S *store.Store
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", h.health)
	s.mux.Get("/api/reviews", h.listReviews)
	s.mux.Get("/api/reviews/hostaway", h.collection)
	s.mux.Get("/api/reviews/statistics", h.statistics)
	s.mux.Get("/api/reviews/public", h.publicView)
	s.mux.Get("/api/reviews/selectors", h.selectors)
	s.mux.Post("/api/reviews/{id}/approve", h.approve)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON sends v with an ETag, short-circuiting to 304 when the
// client already holds this version.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handlers) collection(w http.ResponseWriter, r *http.Request) {
	reviews, source := h.Q.Collection()
	writeJSON(w, r, map[string]any{
		"status":  "success",
		"source":  source,
		"count":   len(reviews),
		"reviews": reviews,
	})
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := domain.FilterConfig{
		Property: q.Get("property"),
		Channel:  q.Get("channel"),
		Band:     domain.BandAll,
	}
	switch band := q.Get("rating"); band {
	case "", "all":
	case "high", "medium", "low":
		f.Band = domain.RatingBand(band)
	default:
		writeProblem(w, http.StatusBadRequest, "Invalid rating band", "rating must be one of all|high|medium|low")
		return
	}

	key := domain.SortByDate
	switch sortBy := q.Get("sort"); sortBy {
	case "", "date":
	case "rating":
		key = domain.SortByRating
	default:
		writeProblem(w, http.StatusBadRequest, "Invalid sort", "sort must be one of date|rating")
		return
	}

	reviews := h.Q.Filtered(f, key)
	writeJSON(w, r, map[string]any{
		"status":  "success",
		"count":   len(reviews),
		"reviews": reviews,
	})
}

func (h *Handlers) statistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]any{
		"status":     "success",
		"statistics": h.Q.Statistics(r.Context()),
	})
}

// publicReview decorates an approved review with its 0-5 star rendering.
type publicReview struct {
	domain.Review
	Stars int `json:"stars"`
}

func (h *Handlers) publicView(w http.ResponseWriter, r *http.Request) {
	approved := h.Q.Public()
	items := make([]publicReview, 0, len(approved))
	for _, rv := range approved {
		items = append(items, publicReview{Review: rv, Stars: analytics.Stars(rv.Rating)})
	}
	writeJSON(w, r, map[string]any{
		"status":  "success",
		"count":   len(items),
		"reviews": items,
	})
}

func (h *Handlers) selectors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.Q.Selectors())
}

type approveRequest struct {
	Approved *bool `json:"approved"`
}

// approve flips a review's public visibility. Body {"approved":bool}
// sets the flag; an empty body toggles. Unknown ids respond 200 with
// found=false, matching the engine's silent no-op contract.
func (h *Handlers) approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}

	var req approveRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req) // empty/absent body means toggle
	}

	var rv domain.Review
	var found bool
	if req.Approved != nil {
		rv, found = h.S.SetApproval(id, *req.Approved)
	} else {
		rv, found = h.S.ToggleApproval(id)
	}

	switch {
	case !found:
		observability.ObserveToggle("unknown_id")
	case rv.IsApproved:
		observability.ObserveToggle("approved")
	default:
		observability.ObserveToggle("unapproved")
	}
	if found {
		h.Q.InvalidateStats(r.Context())
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":   "success",
		"id":       id,
		"found":    found,
		"approved": rv.IsApproved,
	})
}
