package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/erazemk/seznam/internal/guard"
	"github.com/erazemk/seznam/internal/model"
	"github.com/erazemk/seznam/internal/visitor"
)

// ListsHandler handles saved list endpoints. Every call acts for the
// bearer of the token.
type ListsHandler struct {
	DB   *sql.DB
	Mode visitor.Mode
	Now  func() time.Time
}

// List handles GET /api/lists.
func (h *ListsHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := guard.Lists(r.Context(), h.DB, identity(r))
	if err != nil {
		writeError(w, "list lists", err)
		return
	}
	if lists == nil {
		lists = []model.List{}
	}
	jsonResponse(w, http.StatusOK, lists)
}

// Promote handles POST /api/lists: the scratch list becomes a saved list.
func (h *ListsHandler) Promote(w http.ResponseWriter, r *http.Request) {
	id := identity(r)
	list, err := guard.Promote(r.Context(), h.DB, id, visitor.Scope(w, r, h.Mode), h.Now())
	if err != nil {
		writeError(w, "save list", err)
		return
	}

	slog.Info("list saved", "account", id.Email, "list", list.ID, "items", len(list.Items))
	jsonResponse(w, http.StatusCreated, list)
}

// Get handles GET /api/lists/{id}.
func (h *ListsHandler) Get(w http.ResponseWriter, r *http.Request) {
	listID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	list, err := guard.OwnedList(r.Context(), h.DB, identity(r), listID)
	if err != nil {
		writeError(w, "get list", err)
		return
	}
	jsonResponse(w, http.StatusOK, list)
}

// Delete handles DELETE /api/lists/{id}.
func (h *ListsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	listID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	id := identity(r)
	if err := guard.DeleteList(r.Context(), h.DB, id, listID); err != nil {
		writeError(w, "delete list", err)
		return
	}

	slog.Info("list deleted", "account", id.Email, "list", listID)
	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /api/lists/{id}/items.
func (h *ListsHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	listID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := identity(r)
	item, err := guard.AddItem(r.Context(), h.DB, id, listID, req.Text, req.DueDate)
	if err != nil {
		writeError(w, "add list item", err)
		return
	}

	slog.Info("list item added", "account", id.Email, "list", listID, "item", item.ID)
	jsonResponse(w, http.StatusCreated, item)
}

// DeleteItems handles POST /api/lists/{id}/items/delete.
func (h *ListsHandler) DeleteItems(w http.ResponseWriter, r *http.Request) {
	listID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req deleteItemsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := identity(r)
	n, err := guard.DeleteItems(r.Context(), h.DB, id, listID, req.Texts)
	if err != nil {
		writeError(w, "delete list items", err)
		return
	}

	slog.Info("list items deleted", "account", id.Email, "list", listID, "items", n)
	jsonResponse(w, http.StatusOK, deletedResponse{Deleted: n})
}
