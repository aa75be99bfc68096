package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/seznam/internal/guard"
	"github.com/erazemk/seznam/internal/model"
	"github.com/erazemk/seznam/internal/store"
	"github.com/erazemk/seznam/internal/visitor"
)

// ScratchHandler handles the anonymous scratch list endpoints.
type ScratchHandler struct {
	DB   *sql.DB
	Mode visitor.Mode
}

type itemRequest struct {
	Text    string `json:"text"`
	DueDate string `json:"due_date"`
}

type deleteItemsRequest struct {
	Texts []string `json:"texts"`
}

type deletedResponse struct {
	Deleted int `json:"deleted"`
}

// List handles GET /api/scratch.
func (h *ScratchHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListScratchItems(r.Context(), h.DB, visitor.Scope(w, r, h.Mode))
	if err != nil {
		writeError(w, "list scratch items", err)
		return
	}
	if items == nil {
		items = []model.ScratchItem{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Add handles POST /api/scratch.
func (h *ScratchHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := guard.AddScratch(r.Context(), h.DB, visitor.Scope(w, r, h.Mode), req.Text, req.DueDate)
	if err != nil {
		writeError(w, "add scratch item", err)
		return
	}

	slog.Info("scratch item added", "item", item.ID)
	jsonResponse(w, http.StatusCreated, item)
}

// Delete handles POST /api/scratch/delete.
func (h *ScratchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteItemsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	n, err := store.DeleteScratchItemsByText(r.Context(), h.DB, visitor.Scope(w, r, h.Mode), req.Texts)
	if err != nil {
		writeError(w, "delete scratch items", err)
		return
	}

	slog.Info("scratch items deleted", "items", n)
	jsonResponse(w, http.StatusOK, deletedResponse{Deleted: n})
}

// Clear handles DELETE /api/scratch.
func (h *ScratchHandler) Clear(w http.ResponseWriter, r *http.Request) {
	n, err := store.ClearScratch(r.Context(), h.DB, visitor.Scope(w, r, h.Mode))
	if err != nil {
		writeError(w, "clear scratch list", err)
		return
	}

	slog.Info("scratch list cleared", "items", n)
	jsonResponse(w, http.StatusOK, deletedResponse{Deleted: n})
}
