package telegram

import (
	"log/slog"
	"time"
)

type RunOptions struct {
	PollTimeout    time.Duration
	MaxConcurrency int
	// QueueDepth is the per-chat backlog before polling blocks.
	QueueDepth int
	// ErrorPause is the wait after a failed poll.
	ErrorPause time.Duration
	Logger     *slog.Logger
}

func normalizeRunOptions(opts RunOptions) RunOptions {
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = 30 * time.Second
	}
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = 3
	}
	if opts.QueueDepth <= 0 {
		opts.QueueDepth = 16
	}
	if opts.ErrorPause <= 0 {
		opts.ErrorPause = time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}
