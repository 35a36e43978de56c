package relay

import "strings"

// Authorized allows a message iff it came from a private chat or its sender
// equals allowedID. The comparison is exact.
func Authorized(chatIsPrivate bool, senderID, allowedID string) bool {
	return chatIsPrivate || senderID == allowedID
}

// Allowlist is the set of sender ids allowed outside private chats.
type Allowlist []string

func NewAllowlist(ids []string) Allowlist {
	out := make(Allowlist, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		out = append(out, id)
	}
	return out
}

// Allows reports whether Authorized holds for any listed id. With an empty
// list only private chats are allowed.
func (a Allowlist) Allows(chatIsPrivate bool, senderID string) bool {
	if chatIsPrivate {
		return true
	}
	for _, id := range a {
		if Authorized(chatIsPrivate, senderID, id) {
			return true
		}
	}
	return false
}
