package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	runtimeworker "github.com/quailyquaily/unreverse/internal/channelruntime/worker"
	"github.com/quailyquaily/unreverse/internal/relay"
	telegramapi "github.com/quailyquaily/unreverse/internal/telegram"
)

// Poller fetches updates. *telegramapi.Client satisfies it.
type Poller interface {
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]telegramapi.Update, int64, error)
}

// Handler processes one inbound message. *relay.Router satisfies it.
type Handler interface {
	Handle(ctx context.Context, in relay.Inbound) error
}

// Run long-polls for updates and hands each message to handler, serially per
// chat. Poll errors are logged and retried after a pause. Run returns nil once
// ctx is done.
func Run(ctx context.Context, poller Poller, handler Handler, opts RunOptions) error {
	if poller == nil {
		return fmt.Errorf("poller is required")
	}
	if handler == nil {
		return fmt.Errorf("handler is required")
	}
	opts = normalizeRunOptions(opts)
	logger := opts.Logger

	workersCtx, stopWorkers := context.WithCancel(ctx)
	pool, err := runtimeworker.NewPool[int64, relay.Inbound](workersCtx, runtimeworker.PoolOptions[relay.Inbound]{
		MaxConcurrency: opts.MaxConcurrency,
		QueueDepth:     opts.QueueDepth,
		Handle: func(ctx context.Context, in relay.Inbound) {
			if err := handler.Handle(ctx, in); err != nil && ctx.Err() == nil {
				logger.Warn("telegram_handle_error", "chat_id", in.ChatID, "message_id", in.MessageID, "error", err.Error())
			}
		},
	})
	if err != nil {
		stopWorkers()
		return err
	}
	defer func() {
		stopWorkers()
		pool.Wait()
	}()

	logger.Info("telegram_start",
		"poll_timeout", opts.PollTimeout.String(),
		"max_concurrency", opts.MaxConcurrency,
	)

	var offset int64
	for {
		updates, nextOffset, err := poller.GetUpdates(ctx, offset, opts.PollTimeout)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				logger.Info("telegram_stop", "reason", "context_canceled")
				return nil
			}
			if telegramapi.IsPollTimeout(err) {
				logger.Debug("telegram_get_updates_timeout", "error", err.Error())
			} else {
				logger.Warn("telegram_get_updates_error", "error", err.Error())
			}
			if !sleepCtx(ctx, opts.ErrorPause) {
				logger.Info("telegram_stop", "reason", "context_canceled")
				return nil
			}
			continue
		}
		offset = nextOffset

		for _, u := range updates {
			in, ok := relay.FromTelegram(u.UpdateID, u.Message)
			if !ok {
				logger.Debug("telegram_update_skipped", "update_id", u.UpdateID)
				continue
			}
			if err := pool.Enqueue(ctx, in.ChatID, in); err != nil {
				if ctx.Err() != nil {
					logger.Info("telegram_stop", "reason", "context_canceled")
					return nil
				}
				logger.Warn("telegram_enqueue_error", "chat_id", in.ChatID, "error", err.Error())
			}
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
