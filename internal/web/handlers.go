package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/asredigitalgroup-rgb/disti-board/internal/core"
)

// maxBodySize caps mutation request bodies. Product updates are a handful
// of fields; anything larger is a client bug.
const maxBodySize = 64 * 1024

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respond(w, r, map[string]string{"status": "ok"})
}

// handleWhoAmI returns the resolved acting user.
func (s *Server) handleWhoAmI(w http.ResponseWriter, r *http.Request) {
	respond(w, r, s.service.ResolveUser(r.Context()))
}

// handleCategories returns the ordered category list.
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	respond(w, r, s.service.ListCategories(r.Context()))
}

// handleListProducts lists products for a tab.
//
// Query parameters: tab (required), search, favorites (loose boolean),
// sort (field name), dir ("desc" reverses).
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := core.ListOptions{
		Search:        q.Get("search"),
		OnlyFavorites: core.ParseBool(q.Get("favorites")),
	}
	if field := strings.TrimSpace(q.Get("sort")); field != "" {
		opts.Sort = &core.SortSpec{Field: field, Direction: q.Get("dir")}
	}

	list, err := s.service.ListProducts(r.Context(), q.Get("tab"), opts)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, list)
}

// handleUpdateProduct applies a role-gated partial product update.
func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var payload core.UpdatePayload
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, r, err)
		return
	}

	result, err := s.service.UpdateProduct(r.Context(), payload)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, result)
}

// favoriteRequest is the body of POST /api/favorites. Favorite is any
// because clients send native booleans as well as loose tokens ("1",
// "yes"), all of which go through the boolean normalizer.
type favoriteRequest struct {
	Sku      string `json:"sku"`
	Favorite any    `json:"favorite"`
}

// handleSetFavorite toggles the acting user's favorite flag for a product.
func (s *Server) handleSetFavorite(w http.ResponseWriter, r *http.Request) {
	var req favoriteRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	result, err := s.service.SetFavorite(r.Context(), req.Sku, req.Favorite)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, r, result)
}

// decodeBody decodes a JSON request body, reporting malformed input as a
// validation failure.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		return &core.ValidationError{Msg: fmt.Sprintf("invalid request body: %v", err)}
	}
	return nil
}
