package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/findly-app/findly/internal/backup"
	"github.com/findly-app/findly/internal/geocode"
	"github.com/findly-app/findly/internal/search"
	"github.com/findly-app/findly/internal/store"
)

// Config holds the router's collaborators.
type Config struct {
	Store     *store.Store
	Search    *search.Engine
	Geocoder  *geocode.Client
	JWTSecret string

	// BaseURL is the externally reachable address used in shared links.
	// Empty means derive it from the request.
	BaseURL string
}

// NewRouter creates the API router with all endpoints registered. Reads are
// public; mutating routes require the owner token.
func NewRouter(cfg Config) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Store: cfg.Store, JWTSecret: cfg.JWTSecret}
	itemsHandler := &ItemsHandler{Store: cfg.Store, Search: cfg.Search, BaseURL: cfg.BaseURL}
	favoritesHandler := &FavoritesHandler{Store: cfg.Store}
	profileHandler := &ProfileHandler{Store: cfg.Store}
	locationHandler := &LocationHandler{Store: cfg.Store, Geocoder: cfg.Geocoder}
	draftsHandler := &DraftsHandler{Store: cfg.Store}
	backupHandler := &BackupHandler{Manager: backup.New(cfg.Store)}

	authMW := AuthMiddleware(cfg.JWTSecret)

	// Auth.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Items: read public, write owner-only.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("PUT /api/items/{id}/photo", authMW(http.HandlerFunc(itemsHandler.UploadPhoto)))
	mux.HandleFunc("GET /api/items/{id}/photo", itemsHandler.GetPhoto)
	mux.HandleFunc("GET /api/items/{id}/qr", itemsHandler.QRCode)
	mux.HandleFunc("GET /api/stats", itemsHandler.Stats)

	// Favorites.
	mux.HandleFunc("GET /api/favorites", favoritesHandler.List)
	mux.Handle("PUT /api/favorites/{id}", authMW(http.HandlerFunc(favoritesHandler.Add)))
	mux.Handle("DELETE /api/favorites/{id}", authMW(http.HandlerFunc(favoritesHandler.Remove)))

	// Recent searches.
	mux.HandleFunc("GET /api/searches/recent", profileHandler.RecentSearches)
	mux.Handle("DELETE /api/searches/recent", authMW(http.HandlerFunc(profileHandler.ClearRecentSearches)))

	// Profile and preferences.
	mux.HandleFunc("GET /api/profile", profileHandler.Get)
	mux.Handle("PUT /api/profile", authMW(http.HandlerFunc(profileHandler.Update)))
	mux.HandleFunc("GET /api/preferences", profileHandler.Preferences)
	mux.Handle("PUT /api/preferences/{name}", authMW(http.HandlerFunc(profileHandler.SetPreference)))

	// Location and geocoding.
	mux.HandleFunc("GET /api/location", locationHandler.Get)
	mux.Handle("PUT /api/location", authMW(http.HandlerFunc(locationHandler.Save)))
	mux.HandleFunc("GET /api/geocode", locationHandler.Geocode)

	// Drafts.
	mux.HandleFunc("GET /api/drafts/{form}", draftsHandler.Get)
	mux.Handle("PUT /api/drafts/{form}", authMW(http.HandlerFunc(draftsHandler.Save)))
	mux.Handle("DELETE /api/drafts/{form}", authMW(http.HandlerFunc(draftsHandler.Delete)))

	// Backup.
	mux.HandleFunc("GET /api/export", backupHandler.Export)
	mux.Handle("POST /api/import", authMW(http.HandlerFunc(backupHandler.Import)))

	// Deep links: /?item=<id> is the shareable listing URL encoded in QR
	// codes; it redirects to the listing resource.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("item")
		if raw == "" {
			jsonResponse(w, http.StatusOK, map[string]string{"service": "findly"})
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid item id")
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/api/items/%d", id), http.StatusFound)
	})

	return mux
}
