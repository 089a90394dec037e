package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"bookshare-backend/internal/infrastructure/catalog"
	"bookshare-backend/internal/shared"
)

// WarmBookHandler resolve metadata của một book qua cached client
// để lần chạy recommendation tiếp theo hit Redis
type WarmBookHandler struct {
	catalog catalog.Source
}

func NewWarmBookHandler(source catalog.Source) *WarmBookHandler {
	return &WarmBookHandler{
		catalog: source,
	}
}

// ProcessTask xử lý background job catalog:warm_book
func (h *WarmBookHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.WarmBookPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal WarmBook payload")
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.BookID == "" {
		return fmt.Errorf("empty book_id: %w", asynq.SkipRetry)
	}

	_, err := h.catalog.GetBook(ctx, payload.BookID)
	switch {
	case err == nil:
		log.Debug().Str("book_id", payload.BookID).Msg("Book metadata warmed")
		return nil
	case errors.Is(err, catalog.ErrNotFound):
		// Không có trong catalog, retry cũng vô ích
		log.Info().Str("book_id", payload.BookID).Msg("Book not in catalog, skipping warm-up")
		return nil
	default:
		log.Warn().Err(err).Str("book_id", payload.BookID).Msg("Failed to warm book metadata")
		return fmt.Errorf("warm book %s: %w", payload.BookID, err)
	}
}
