package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/seznam/internal/guard"
	"github.com/erazemk/seznam/internal/model"
)

// SaveSubmit handles GET/POST /save: the scratch list becomes a saved list
// owned by the caller.
func (s *Server) SaveSubmit(w http.ResponseWriter, r *http.Request) {
	id := currentIdentity(r)
	list, err := guard.Promote(r.Context(), s.DB, id, s.scope(w, r), s.now())
	if err != nil {
		setFlash(w, notice("save list", err))
		http.Redirect(w, r, "/list", http.StatusSeeOther)
		return
	}

	slog.Info("list saved", "account", id.Email, "list", list.ID, "items", len(list.Items))
	http.Redirect(w, r, "/show-lists", http.StatusSeeOther)
}

// MyListsPage handles GET/POST /show-lists.
func (s *Server) MyListsPage(w http.ResponseWriter, r *http.Request) {
	lists, err := guard.Lists(r.Context(), s.DB, currentIdentity(r))
	if err != nil {
		slog.Error("failed to list lists", "error", err)
	}

	s.Templates.Render(w, "my_lists.html", &struct {
		PageData
		Lists []model.List
	}{
		PageData: s.pageData(w, r, "My lists"),
		Lists:    lists,
	})
}

// EditListPage handles GET /edit_list/{id}.
func (s *Server) EditListPage(w http.ResponseWriter, r *http.Request) {
	listID, ok := listIDParam(w, r)
	if !ok {
		return
	}

	list, err := guard.OwnedList(r.Context(), s.DB, currentIdentity(r), listID)
	if err != nil {
		s.listError(w, r, "show list", err)
		return
	}

	s.Templates.Render(w, "edit_list.html", &struct {
		PageData
		List *model.List
	}{
		PageData: s.pageData(w, r, list.Date),
		List:     list,
	})
}

// EditListSubmit handles POST /edit_list/{id} by adding an item.
func (s *Server) EditListSubmit(w http.ResponseWriter, r *http.Request) {
	listID, ok := listIDParam(w, r)
	if !ok {
		return
	}

	id := currentIdentity(r)
	item, err := guard.AddItem(r.Context(), s.DB, id, listID, r.FormValue("task"), r.FormValue("due_date"))
	if errors.Is(err, model.ErrValidation) {
		setFlash(w, notice("add list item", err))
	} else if err != nil {
		s.listError(w, r, "add list item", err)
		return
	} else {
		slog.Info("list item added", "account", id.Email, "list", listID, "item", item.ID)
	}
	http.Redirect(w, r, fmt.Sprintf("/edit_list/%d", listID), http.StatusSeeOther)
}

// DeleteListSubmit handles GET/POST /delete_user_list/{id}.
func (s *Server) DeleteListSubmit(w http.ResponseWriter, r *http.Request) {
	listID, ok := listIDParam(w, r)
	if !ok {
		return
	}

	id := currentIdentity(r)
	if err := guard.DeleteList(r.Context(), s.DB, id, listID); err != nil {
		s.listError(w, r, "delete list", err)
		return
	}

	slog.Info("list deleted", "account", id.Email, "list", listID)
	http.Redirect(w, r, "/show-lists", http.StatusSeeOther)
}

// listError reports a failed list operation on the caller's lists page.
func (s *Server) listError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, model.ErrForbidden) {
		slog.Warn("list access denied", "account", currentIdentity(r).Email, "path", r.URL.Path)
	}
	setFlash(w, notice(op, err))
	http.Redirect(w, r, "/show-lists", http.StatusSeeOther)
}

func listIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
