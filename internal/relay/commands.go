package relay

import "strings"

const (
	startReply = "Hello! Send your text and you'll get your text back in reverse!"
	boopReply  = "This is definitely my bot ! @TechSherpa here!"
)

// commandReply returns the fixed reply for a known command. ok is false for
// unknown commands.
func commandReply(cmd string) (reply string, ok bool) {
	switch cmd {
	case "/start":
		return startReply, true
	case "/boop":
		return boopReply, true
	default:
		return "", false
	}
}

func splitCommand(text string) (cmd string, rest string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ""
	}
	i := strings.IndexAny(text, " \n\t")
	if i == -1 {
		return text, ""
	}
	return text[:i], strings.TrimSpace(text[i:])
}

func normalizeSlashCommand(cmd string) string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" || !strings.HasPrefix(cmd, "/") {
		return ""
	}
	// Allow "/cmd@BotName" variants by stripping "@...".
	if at := strings.IndexByte(cmd, '@'); at >= 0 {
		cmd = cmd[:at]
	}
	return strings.ToLower(cmd)
}
