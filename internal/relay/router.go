package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/quailyquaily/unreverse/internal/metrics"
	"github.com/quailyquaily/unreverse/internal/retryutil"
	"github.com/quailyquaily/unreverse/internal/telegram"
)

// Sender delivers replies. *telegram.Client satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, req telegram.SendMessageRequest) error
	SendPhoto(ctx context.Context, req telegram.SendMediaRequest) error
	SendVideo(ctx context.Context, req telegram.SendMediaRequest) error
	SendVoice(ctx context.Context, req telegram.SendMediaRequest) error
	SendAnimation(ctx context.Context, req telegram.SendMediaRequest) error
}

// Transformer rewrites a message payload. *restore.Restorer satisfies it.
type Transformer interface {
	Text(s string) string
}

type Config struct {
	AllowedSenderIDs []string
	// QuoteReplies makes every reply quote the inbound message.
	QuoteReplies bool
	Logger       *slog.Logger
	Metrics      *metrics.Relay
	// Retry applies to each outbound send. Retryable and RetryAfter default
	// to the telegram classifiers.
	Retry retryutil.Policy
}

// Router turns one inbound message into at most one reply.
type Router struct {
	sender    Sender
	transform Transformer
	allow     Allowlist
	quote     bool
	logger    *slog.Logger
	metrics   *metrics.Relay
	retry     retryutil.Policy
}

func NewRouter(sender Sender, transform Transformer, cfg Config) (*Router, error) {
	if sender == nil {
		return nil, fmt.Errorf("sender is required")
	}
	if transform == nil {
		return nil, fmt.Errorf("transformer is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	policy := cfg.Retry
	if policy.Retryable == nil {
		policy.Retryable = telegram.IsRetryable
	}
	if policy.RetryAfter == nil {
		policy.RetryAfter = telegram.RetryAfter
	}
	return &Router{
		sender:    sender,
		transform: transform,
		allow:     NewAllowlist(cfg.AllowedSenderIDs),
		quote:     cfg.QuoteReplies,
		logger:    logger,
		metrics:   cfg.Metrics,
		retry:     policy,
	}, nil
}

// Handle processes in. Messages that are ignored or dropped return nil; an
// error means the reply could not be delivered.
func (r *Router) Handle(ctx context.Context, in Inbound) error {
	logger := r.logger.With("job_id", newJobID(), "chat_id", in.ChatID, "message_id", in.MessageID)

	if handled, err := r.handleCommand(ctx, logger, in); handled {
		return err
	}
	if in.SenderID == "" {
		logger.Debug("relay_no_sender")
		return nil
	}
	if !r.allow.Allows(in.ChatIsPrivate, in.SenderID) {
		r.metrics.ObserveUnauthorized()
		logger.Info("relay_unauthorized", "sender_id", in.SenderID)
		return nil
	}
	payload := in.Payload()
	if strings.TrimSpace(payload) == "" {
		logger.Debug("relay_empty_payload", "kind", in.Media.Kind.String())
		return nil
	}
	reply := r.replierFor(in.Media)
	if reply == nil {
		logger.Debug("relay_unsupported_media")
		return nil
	}

	kind := in.Media.Kind.String()
	r.metrics.ObserveMessage(kind)
	out := r.transform.Text(payload)
	if in.Media.Kind == MediaText && strings.TrimSpace(out) == "" {
		logger.Debug("relay_empty_reply", "kind", kind)
		return nil
	}

	err := retryutil.Do(ctx, logger, "relay_send", r.retry, func(ctx context.Context) error {
		return reply(ctx, in, out)
	})
	r.metrics.ObserveReply(kind, err)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		logger.Warn("relay_send_error", "kind", kind, "error", err.Error())
		return err
	}
	logger.Info("relay_reply_sent", "kind", kind, "in_len", len(payload), "out_len", len(out))
	return nil
}

func (r *Router) handleCommand(ctx context.Context, logger *slog.Logger, in Inbound) (bool, error) {
	text := strings.TrimSpace(in.Text)
	if !strings.HasPrefix(text, "/") {
		return false, nil
	}
	cmdWord, _ := splitCommand(text)
	cmd := normalizeSlashCommand(cmdWord)
	reply, ok := commandReply(cmd)
	if !ok {
		logger.Debug("relay_unknown_command", "command", cmd)
		return true, nil
	}
	err := retryutil.Do(ctx, logger, "relay_send", r.retry, func(ctx context.Context) error {
		return r.sender.SendMessage(ctx, telegram.SendMessageRequest{
			ChatID:           in.ChatID,
			Text:             reply,
			ReplyToMessageID: r.replyTo(in),
		})
	})
	r.metrics.ObserveReply("command", err)
	if err != nil {
		logger.Warn("relay_command_reply_error", "command", cmd, "error", err.Error())
		return true, err
	}
	logger.Info("relay_command", "command", cmd)
	return true, nil
}

type replier func(ctx context.Context, in Inbound, text string) error

// replierFor returns the send function for m's kind, or nil when the kind
// cannot be replied to.
func (r *Router) replierFor(m Media) replier {
	switch m.Kind {
	case MediaText:
		return func(ctx context.Context, in Inbound, text string) error {
			return r.sender.SendMessage(ctx, telegram.SendMessageRequest{
				ChatID:           in.ChatID,
				Text:             text,
				ReplyToMessageID: r.replyTo(in),
			})
		}
	case MediaPhoto:
		return r.mediaReplier(r.sender.SendPhoto)
	case MediaVideo:
		return r.mediaReplier(r.sender.SendVideo)
	case MediaVoice:
		return r.mediaReplier(r.sender.SendVoice)
	case MediaAnimation:
		return r.mediaReplier(r.sender.SendAnimation)
	default:
		return nil
	}
}

func (r *Router) mediaReplier(send func(context.Context, telegram.SendMediaRequest) error) replier {
	return func(ctx context.Context, in Inbound, text string) error {
		caption := text
		if strings.TrimSpace(caption) == "" {
			caption = ""
		}
		return send(ctx, telegram.SendMediaRequest{
			ChatID:           in.ChatID,
			FileID:           in.Media.FileID,
			Caption:          caption,
			ReplyToMessageID: r.replyTo(in),
		})
	}
}

func (r *Router) replyTo(in Inbound) int64 {
	if !r.quote {
		return 0
	}
	return in.MessageID
}

func newJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
