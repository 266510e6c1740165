// Package gateway implements the HTTP surface of the mentor-search service.
//
// All user-scoped routes expect an x-user-id header forwarded by the edge
// proxy.
//
// Routes:
//
//	GET    /mentors            → one page of mentor results (cached)
//	GET    /filters            → load the caller's saved filter preferences
//	PUT    /filters            → save filter preferences
//	DELETE /filters            → clear filter preferences
//	POST   /searches           → create a saved search
//	GET    /searches           → list the caller's saved searches
//	GET    /searches/{id}      → fetch one saved search
//	DELETE /searches/{id}      → delete a saved search
package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/alerts"
	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/mentorsearch"
	"github.com/chenjeraimunyaradzi05-art/Ngurra-sub015/internal/model"
)

// Handler holds shared dependencies.
type Handler struct {
	search  *mentorsearch.Client
	cache   *PageCache
	filters *FilterStore
	store   *alerts.Store
}

// NewHandler returns a configured Handler.
func NewHandler(search *mentorsearch.Client, cache *PageCache, filters *FilterStore, store *alerts.Store) *Handler {
	return &Handler{search: search, cache: cache, filters: filters, store: store}
}

// RegisterRoutes mounts all gateway routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/mentors", h.handleMentors)
	mux.HandleFunc("/filters", h.handleFilters)
	mux.HandleFunc("/searches", h.handleSearches)
	mux.HandleFunc("/searches/", h.handleSearchByID)
}

// ─── Mentor search ───────────────────────────────────────────────────────────

func (h *Handler) handleMentors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filters, err := ParseFilters(r.URL.Query())
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	cursor := r.URL.Query().Get("cursor")

	// Canonical encoding doubles as the cache key, so equivalent requests
	// with reordered parameters share an entry.
	key := filters.Values(cursor).Encode()

	if cached, err := h.cache.Get(r.Context(), key); err != nil {
		slog.Warn("page cache read failed", "err", err)
	} else if cached != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(cached)
		return
	}

	page, err := h.search.FetchPage(r.Context(), filters, cursor)
	if err != nil {
		log.Printf("[gateway] upstream mentor search failed: %v", err)
		jsonError(w, "mentor search is temporarily unavailable", http.StatusBadGateway)
		return
	}

	body, err := json.Marshal(page)
	if err != nil {
		jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := h.cache.Set(r.Context(), key, body); err != nil {
		slog.Warn("page cache write failed", "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// ─── Filter preferences ──────────────────────────────────────────────────────

func (h *Handler) handleFilters(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("x-user-id")
	if userID == "" {
		jsonError(w, "missing x-user-id header", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		f, err := h.filters.Load(r.Context(), userID)
		if err != nil {
			log.Printf("[gateway] filter load error for user %s: %v", userID, err)
			jsonError(w, "could not load filters", http.StatusInternalServerError)
			return
		}
		jsonOK(w, f)

	case http.MethodPut:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			jsonError(w, "could not read body", http.StatusBadRequest)
			return
		}
		f, err := mentorsearch.DecodeFilters(body)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := h.filters.Save(r.Context(), userID, f); err != nil {
			log.Printf("[gateway] filter save error for user %s: %v", userID, err)
			jsonError(w, "could not save filters", http.StatusInternalServerError)
			return
		}
		jsonOK(w, f)

	case http.MethodDelete:
		if err := h.filters.Clear(r.Context(), userID); err != nil {
			log.Printf("[gateway] filter clear error for user %s: %v", userID, err)
			jsonError(w, "could not clear filters", http.StatusInternalServerError)
			return
		}
		jsonOK(w, map[string]string{"status": "cleared"})

	default:
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// ─── Saved searches ──────────────────────────────────────────────────────────

func (h *Handler) handleSearches(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("x-user-id")
	if userID == "" {
		jsonError(w, "missing x-user-id header", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		searches, err := h.store.ListByUser(r.Context(), userID)
		if err != nil {
			log.Printf("[gateway] list saved searches error: %v", err)
			jsonError(w, "database error", http.StatusInternalServerError)
			return
		}
		jsonOK(w, searches)

	case http.MethodPost:
		var body struct {
			Name    string               `json:"name"`
			Filters mentorsearch.Filters `json:"filters"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
			jsonError(w, "body must contain name and filters", http.StatusBadRequest)
			return
		}
		if err := body.Filters.Validate(); err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		encoded, err := mentorsearch.EncodeFilters(body.Filters)
		if err != nil {
			jsonError(w, "internal error", http.StatusInternalServerError)
			return
		}

		s := model.SavedSearch{
			ID:       uuid.NewString(),
			UserID:   userID,
			Name:     body.Name,
			Filters:  encoded,
			IsActive: true,
		}
		created, err := h.store.Create(r.Context(), s)
		if err != nil {
			log.Printf("[gateway] create saved search error: %v", err)
			jsonError(w, "database error", http.StatusInternalServerError)
			return
		}
		jsonOK(w, created)

	default:
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleSearchByID handles GET and DELETE on /searches/{id}.
func (h *Handler) handleSearchByID(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("x-user-id")
	if userID == "" {
		jsonError(w, "missing x-user-id header", http.StatusUnauthorized)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		jsonError(w, "invalid path", http.StatusNotFound)
		return
	}
	searchID := parts[1]

	switch r.Method {
	case http.MethodGet:
		ss, err := h.store.Get(r.Context(), userID, searchID)
		if err != nil {
			if errors.Is(err, alerts.ErrNotFound) {
				jsonError(w, "saved search not found", http.StatusNotFound)
				return
			}
			log.Printf("[gateway] get saved search error: %v", err)
			jsonError(w, "database error", http.StatusInternalServerError)
			return
		}
		jsonOK(w, ss)

	case http.MethodDelete:
		if err := h.store.Delete(r.Context(), userID, searchID); err != nil {
			if errors.Is(err, alerts.ErrNotFound) {
				jsonError(w, "saved search not found", http.StatusNotFound)
				return
			}
			log.Printf("[gateway] delete saved search error: %v", err)
			jsonError(w, "database error", http.StatusInternalServerError)
			return
		}
		jsonOK(w, map[string]string{"status": "deleted"})

	default:
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
