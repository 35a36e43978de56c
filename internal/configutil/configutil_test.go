package configutil

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("token", "", "")
	cmd.Flags().Bool("quote", false, "")
	cmd.Flags().Int("workers", 0, "")
	cmd.Flags().Duration("timeout", 0, "")
	cmd.Flags().StringArray("allow", nil, "")
	return cmd
}

func TestFlagOrViperPrefersChangedFlag(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("telegram.bot_token", "from-viper")
	viper.Set("telegram.max_concurrency", 9)

	cmd := newTestCmd()
	if got := FlagOrViperString(cmd, "token", "telegram.bot_token"); got != "from-viper" {
		t.Fatalf("unset flag should fall back to viper, got %q", got)
	}
	if err := cmd.Flags().Set("token", "from-flag"); err != nil {
		t.Fatal(err)
	}
	if got := FlagOrViperString(cmd, "token", "telegram.bot_token"); got != "from-flag" {
		t.Fatalf("changed flag should win, got %q", got)
	}
	if got := FlagOrViperInt(cmd, "workers", "telegram.max_concurrency"); got != 9 {
		t.Fatalf("FlagOrViperInt() = %d, want 9", got)
	}
	_ = cmd.Flags().Set("quote", "true")
	if !FlagOrViperBool(cmd, "quote", "telegram.quote_replies") {
		t.Fatal("FlagOrViperBool() should read the changed flag")
	}
	_ = cmd.Flags().Set("timeout", "45s")
	if got := FlagOrViperDuration(cmd, "timeout", "telegram.poll_timeout"); got != 45*time.Second {
		t.Fatalf("FlagOrViperDuration() = %v", got)
	}
}

func TestFlagOrViperStringArraySplitsCommas(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("relay.allowed_sender_ids", "111, 222,,")

	cmd := newTestCmd()
	got := FlagOrViperStringArray(cmd, "allow", "relay.allowed_sender_ids")
	if len(got) != 2 || got[0] != "111" || got[1] != "222" {
		t.Fatalf("FlagOrViperStringArray() = %#v", got)
	}

	_ = cmd.Flags().Set("allow", "333")
	got = FlagOrViperStringArray(cmd, "allow", "relay.allowed_sender_ids")
	if len(got) != 1 || got[0] != "333" {
		t.Fatalf("changed flag should win, got %#v", got)
	}
}
