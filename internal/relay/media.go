package relay

import "fmt"

// MediaKind is the envelope an inbound message arrived in. A reply always
// goes out in the same envelope.
type MediaKind int

const (
	MediaUnsupported MediaKind = iota
	MediaText
	MediaPhoto
	MediaVideo
	MediaVoice
	MediaAnimation
)

func (k MediaKind) String() string {
	switch k {
	case MediaUnsupported:
		return "unsupported"
	case MediaText:
		return "text"
	case MediaPhoto:
		return "photo"
	case MediaVideo:
		return "video"
	case MediaVoice:
		return "voice"
	case MediaAnimation:
		return "animation"
	default:
		return fmt.Sprintf("media(%d)", int(k))
	}
}

// Media is the attachment a captioned message carries. FileID is empty for
// text messages.
type Media struct {
	Kind   MediaKind
	FileID string
}
