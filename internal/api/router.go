package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/erazemk/seznam/internal/visitor"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string, scratch visitor.Mode) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	scratchHandler := &ScratchHandler{DB: db, Mode: scratch}
	listsHandler := &ListsHandler{DB: db, Mode: scratch, Now: time.Now}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: accounts.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Scratch list (anonymous).
	mux.HandleFunc("GET /api/scratch", scratchHandler.List)
	mux.HandleFunc("POST /api/scratch", scratchHandler.Add)
	mux.HandleFunc("POST /api/scratch/delete", scratchHandler.Delete)
	mux.HandleFunc("DELETE /api/scratch", scratchHandler.Clear)

	// Saved lists (owner only).
	mux.Handle("GET /api/lists", authMW(http.HandlerFunc(listsHandler.List)))
	mux.Handle("POST /api/lists", authMW(http.HandlerFunc(listsHandler.Promote)))
	mux.Handle("GET /api/lists/{id}", authMW(http.HandlerFunc(listsHandler.Get)))
	mux.Handle("DELETE /api/lists/{id}", authMW(http.HandlerFunc(listsHandler.Delete)))
	mux.Handle("POST /api/lists/{id}/items", authMW(http.HandlerFunc(listsHandler.AddItem)))
	mux.Handle("POST /api/lists/{id}/items/delete", authMW(http.HandlerFunc(listsHandler.DeleteItems)))

	return mux
}
