package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshare-backend/internal/domains/book/model"
	"bookshare-backend/internal/infrastructure/catalog"
	"bookshare-backend/internal/shared/response"
)

// Handler exposes catalog metadata of a single book
type Handler struct {
	catalog catalog.Source
}

func NewHandler(source catalog.Source) *Handler {
	return &Handler{catalog: source}
}

// GetBookDetail godoc
// GET /api/books/:id
func (h *Handler) GetBookDetail(c *gin.Context) {
	// Step 1: id phải là số, tối đa 14 chữ số
	rawID := strings.TrimSpace(c.Param("id"))
	if !validID(rawID) {
		response.Plain(c, http.StatusBadRequest, "Invalid book ID")
		return
	}

	// Step 2: lookup qua cached catalog client
	book, err := h.catalog.GetBook(c.Request.Context(), rawID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			response.Plain(c, http.StatusNotFound, "Book not found")
			return
		}
		log.Error().Err(err).Str("book_id", model.NormalizeID(rawID)).Msg("Book lookup failed")
		response.Plain(c, http.StatusBadGateway, "Failed to fetch book")
		return
	}

	c.JSON(http.StatusOK, book)
}

func validID(id string) bool {
	if id == "" || len(id) > model.IDWidth {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
