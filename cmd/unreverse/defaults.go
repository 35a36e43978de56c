package main

import (
	"time"

	"github.com/quailyquaily/unreverse/internal/telegram"
	"github.com/spf13/viper"
)

func initViperDefaults() {
	// Telegram
	viper.SetDefault("telegram.base_url", telegram.DefaultBaseURL)
	viper.SetDefault("telegram.poll_timeout", 30*time.Second)
	viper.SetDefault("telegram.max_concurrency", 3)
	viper.SetDefault("telegram.quote_replies", false)
	viper.SetDefault("telegram.send_retries", 3)

	// Relay
	viper.SetDefault("relay.allowed_sender_ids", []string{})

	// Health
	viper.SetDefault("health.listen", "")

	// Logging
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.add_source", false)
	viper.SetDefault("logging.file", "")
	viper.SetDefault("trace", false)
}
