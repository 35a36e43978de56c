package relay

import (
	"strconv"
	"strings"

	"github.com/quailyquaily/unreverse/internal/telegram"
)

// Inbound is one message as the router sees it.
type Inbound struct {
	UpdateID      int64
	MessageID     int64
	ChatID        int64
	ChatIsPrivate bool
	// SenderID is empty when the message has no sender, as with channel posts.
	SenderID string
	Text     string
	Caption  string
	Media    Media
}

// FromTelegram converts a Bot API message. It reports false for a nil message
// or one without a chat.
func FromTelegram(updateID int64, msg *telegram.Message) (Inbound, bool) {
	if msg == nil || msg.Chat == nil {
		return Inbound{}, false
	}
	in := Inbound{
		UpdateID:      updateID,
		MessageID:     msg.MessageID,
		ChatID:        msg.Chat.ID,
		ChatIsPrivate: strings.EqualFold(strings.TrimSpace(msg.Chat.Type), "private"),
		Text:          msg.Text,
		Caption:       msg.Caption,
	}
	if msg.From != nil {
		in.SenderID = strconv.FormatInt(msg.From.ID, 10)
	}
	in.Media = mediaOf(msg)
	return in, true
}

// mediaOf picks the reply envelope: text first, then photo (largest size),
// video, voice and animation.
func mediaOf(msg *telegram.Message) Media {
	if strings.TrimSpace(msg.Text) != "" {
		return Media{Kind: MediaText}
	}
	if n := len(msg.Photo); n > 0 {
		return Media{Kind: MediaPhoto, FileID: msg.Photo[n-1].FileID}
	}
	if msg.Video != nil {
		return Media{Kind: MediaVideo, FileID: msg.Video.FileID}
	}
	if msg.Voice != nil {
		return Media{Kind: MediaVoice, FileID: msg.Voice.FileID}
	}
	if msg.Animation != nil {
		return Media{Kind: MediaAnimation, FileID: msg.Animation.FileID}
	}
	return Media{Kind: MediaUnsupported}
}

// Payload returns the text to transform, preferring the body over the caption.
func (in Inbound) Payload() string {
	if strings.TrimSpace(in.Text) != "" {
		return in.Text
	}
	return in.Caption
}
