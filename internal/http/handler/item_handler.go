package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sandeepkv93/go-service-template/internal/http/response"
)

// ItemHandler serves the always-on echo endpoints. No persistence behind it;
// it exists so the template has unauthenticated routes to exercise.
type ItemHandler struct{}

func NewItemHandler() *ItemHandler { return &ItemHandler{} }

type itemResponse struct {
	ItemID uint    `json:"item_id"`
	Q      *string `json:"q"`
}

func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	itemID, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid item id", nil)
		return
	}
	var q *string
	if raw := r.URL.Query().Get("q"); raw != "" {
		q = &raw
	}
	response.JSON(w, r, http.StatusOK, itemResponse{ItemID: itemID, Q: q})
}
