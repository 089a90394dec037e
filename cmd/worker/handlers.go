package main

import (
	"github.com/hibiken/asynq"

	bookJob "bookshare-backend/internal/domains/book/job"
	"bookshare-backend/internal/shared"
	"bookshare-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	warmBook *bookJob.WarmBookHandler
}

// initializeHandlers lấy job handlers từ container
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		warmBook: c.WarmBookHandler,
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Catalog tasks
	mux.HandleFunc(shared.TypeWarmBookMetadata, h.warmBook.ProcessTask)
}
