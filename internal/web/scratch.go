package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/seznam/internal/guard"
	"github.com/erazemk/seznam/internal/model"
	"github.com/erazemk/seznam/internal/store"
)

// IndexPage handles GET /.
func (s *Server) IndexPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "index.html", &struct {
		PageData
	}{
		PageData: s.pageData(w, r, "To-do"),
	})
}

// ListPage handles GET /list.
func (s *Server) ListPage(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListScratchItems(r.Context(), s.DB, s.scope(w, r))
	if err != nil {
		slog.Error("failed to list scratch items", "error", err)
	}

	s.Templates.Render(w, "list.html", &struct {
		PageData
		Items []model.ScratchItem
	}{
		PageData: s.pageData(w, r, "Your list"),
		Items:    items,
	})
}

// AddSubmit handles POST / and POST /list.
func (s *Server) AddSubmit(w http.ResponseWriter, r *http.Request) {
	item, err := guard.AddScratch(r.Context(), s.DB, s.scope(w, r), r.FormValue("task"), r.FormValue("due_date"))
	if err != nil {
		setFlash(w, notice("add scratch item", err))
		http.Redirect(w, r, r.URL.Path, http.StatusSeeOther)
		return
	}

	slog.Info("scratch item added", "item", item.ID)
	http.Redirect(w, r, "/list", http.StatusSeeOther)
}

// DeleteSubmit handles POST /delete. Anonymous callers delete checked items
// from the scratch list; signed-in callers delete from their own lists.
func (s *Server) DeleteSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	texts := r.PostForm["checked"]

	var listID int64
	if v := r.PostForm.Get("list_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			http.Error(w, "invalid list id", http.StatusBadRequest)
			return
		}
		listID = id
	}

	id := currentIdentity(r)
	target := "/list"
	switch {
	case id != nil && listID != 0:
		target = "/edit_list/" + strconv.FormatInt(listID, 10)
	case id != nil:
		target = "/show-lists"
	}

	n, err := guard.DeleteSelected(r.Context(), s.DB, id, s.scope(w, r), listID, texts)
	if err != nil {
		setFlash(w, notice("delete items", err))
		if id != nil {
			target = "/show-lists"
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	if id != nil {
		slog.Info("list items deleted", "account", id.Email, "list", listID, "items", n)
	} else {
		slog.Info("scratch items deleted", "items", n)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// NewList handles GET/POST /new-list by clearing the scratch list.
func (s *Server) NewList(w http.ResponseWriter, r *http.Request) {
	n, err := store.ClearScratch(r.Context(), s.DB, s.scope(w, r))
	if err != nil {
		setFlash(w, notice("clear scratch list", err))
	} else {
		slog.Info("scratch list cleared", "items", n)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
