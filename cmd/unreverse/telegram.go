package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	telegramruntime "github.com/quailyquaily/unreverse/internal/channelruntime/telegram"
	"github.com/quailyquaily/unreverse/internal/configutil"
	"github.com/quailyquaily/unreverse/internal/healthcheck"
	"github.com/quailyquaily/unreverse/internal/logutil"
	"github.com/quailyquaily/unreverse/internal/metrics"
	"github.com/quailyquaily/unreverse/internal/relay"
	"github.com/quailyquaily/unreverse/internal/retryutil"
	"github.com/quailyquaily/unreverse/internal/telegram"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newTelegramCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "telegram",
		Short: "Run a Telegram bot that replies with restored text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := strings.TrimSpace(configutil.FlagOrViperString(cmd, "telegram-bot-token", "telegram.bot_token"))
			if token == "" {
				return fmt.Errorf("missing telegram.bot_token (set via --telegram-bot-token, UNREVERSE_TELEGRAM_BOT_TOKEN or TOKEN_BOT)")
			}
			baseURL := configutil.FlagOrViperString(cmd, "telegram-base-url", "telegram.base_url")
			pollTimeout := configutil.FlagOrViperDuration(cmd, "telegram-poll-timeout", "telegram.poll_timeout")
			if pollTimeout <= 0 {
				pollTimeout = 30 * time.Second
			}
			sendRetries := configutil.FlagOrViperInt(cmd, "telegram-send-retries", "telegram.send_retries")
			if sendRetries < 0 {
				sendRetries = 0
			}

			logger, closer, err := logutil.LoggerFromViper()
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()
			slog.SetDefault(logger)

			relayMetrics := metrics.NewRelay()
			restorer, err := restorerFromConfig(cmd, logger, func(string, error) {
				relayMetrics.ObserveTokenFallback()
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client := telegram.NewClient(&http.Client{Timeout: pollTimeout + 15*time.Second}, baseURL, token)
			meCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
			me, err := client.GetMe(meCtx)
			cancel()
			if err != nil {
				return fmt.Errorf("telegram getMe: %w", err)
			}
			logger.Info("telegram_bot_identity", "bot_id", me.ID, "username", me.Username)

			router, err := relay.NewRouter(client, restorer, relay.Config{
				AllowedSenderIDs: configutil.FlagOrViperStringArray(cmd, "allowed-sender-id", "relay.allowed_sender_ids"),
				QuoteReplies:     configutil.FlagOrViperBool(cmd, "telegram-quote-replies", "telegram.quote_replies"),
				Logger:           logger,
				Metrics:          relayMetrics,
				Retry:            retryutil.Policy{MaxRetries: uint64(sendRetries)},
			})
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return telegramruntime.Run(gctx, client, router, telegramruntime.RunOptions{
					PollTimeout:    pollTimeout,
					MaxConcurrency: configutil.FlagOrViperInt(cmd, "telegram-max-concurrency", "telegram.max_concurrency"),
					Logger:         logger,
				})
			})
			if healthListen := healthcheck.NormalizeListen(configutil.FlagOrViperString(cmd, "health-listen", "health.listen")); healthListen != "" {
				health := healthcheck.NewServer(logger, healthListen, "telegram", relayMetrics.Handler())
				g.Go(func() error {
					if err := health.Run(gctx); err != nil {
						return fmt.Errorf("health server %s: %w", healthListen, err)
					}
					return nil
				})
			}
			return g.Wait()
		},
	}

	cmd.Flags().String("telegram-bot-token", "", "Telegram bot token.")
	cmd.Flags().String("telegram-base-url", telegram.DefaultBaseURL, "Telegram Bot API base URL.")
	cmd.Flags().Duration("telegram-poll-timeout", 30*time.Second, "Long polling timeout for getUpdates.")
	cmd.Flags().Int("telegram-max-concurrency", 3, "Max number of chats processed concurrently.")
	cmd.Flags().Bool("telegram-quote-replies", false, "Quote the inbound message in every reply.")
	cmd.Flags().Int("telegram-send-retries", 3, "Retries for a reply that failed with 429, 5xx or a network error.")
	cmd.Flags().StringArray("allowed-sender-id", nil, "Sender id allowed outside private chats (repeatable).")
	cmd.Flags().String("health-listen", "", "Address for /health and /metrics (empty disables).")

	return cmd
}
