package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"bookshare-backend/internal/shared"
)

// Client enqueues background tasks into Redis via asynq
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, password string, db int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: password,
			DB:       db,
		}),
	}
}

// EnqueueWarmBook schedules a catalog lookup for bookID so the metadata lands in
// the cache before the next recommendation run. Duplicate enqueues within the
// uniqueness window are collapsed by asynq.
func (c *Client) EnqueueWarmBook(ctx context.Context, bookID string) error {
	payload, err := json.Marshal(shared.WarmBookPayload{BookID: bookID})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeWarmBookMetadata, payload)

	info, err := c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueCatalog),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
		asynq.Unique(10*time.Minute),
	)
	if errors.Is(err, asynq.ErrDuplicateTask) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", shared.TypeWarmBookMetadata, err)
	}

	log.Debug().
		Str("task_id", info.ID).
		Str("book_id", bookID).
		Msg("Enqueued catalog warm-up")

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
