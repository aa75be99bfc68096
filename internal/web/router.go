package web

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/seznam/internal/visitor"
	webembed "github.com/erazemk/seznam/web"
)

const loginNotice = "Please log in to see your lists."

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB, jwtSecret string, scratch visitor.Mode) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Templates: templates,
		JWTSecret: jwtSecret,
		Scratch:   scratch,
	}
	return s.Routes(), nil
}

// Routes registers every page route on a new mux behind the session
// middleware.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Scratch list, open to everyone.
	mux.HandleFunc("GET /{$}", s.IndexPage)
	mux.HandleFunc("POST /{$}", s.AddSubmit)
	mux.HandleFunc("GET /list", s.ListPage)
	mux.HandleFunc("POST /list", s.AddSubmit)
	mux.HandleFunc("POST /delete", s.DeleteSubmit)
	mux.HandleFunc("/new-list", s.NewList)

	// Accounts.
	mux.HandleFunc("GET /register", s.RegisterPage)
	mux.HandleFunc("POST /register", s.RegisterSubmit)
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("GET /logout", s.Logout)

	// Saved lists.
	mux.Handle("/save", requireAccount("You must be logged in to save your list", s.SaveSubmit))
	mux.Handle("/show-lists", requireAccount(loginNotice, s.MyListsPage))
	mux.Handle("GET /edit_list/{id}", requireAccount(loginNotice, s.EditListPage))
	mux.Handle("POST /edit_list/{id}", requireAccount(loginNotice, s.EditListSubmit))
	mux.Handle("/delete_user_list/{id}", requireAccount(loginNotice, s.DeleteListSubmit))

	return SessionMiddleware(s.JWTSecret, s.DB)(mux)
}
