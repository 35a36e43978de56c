package outputfmt

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	urlInTextRE  = regexp.MustCompile(`https?://[^\s"'<>]+`)
	botSegmentRE = regexp.MustCompile(`^/bot[^/]+`)
)

const redacted = "[redacted]"

// ErrorText renders err with credentials in embedded URLs redacted.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	return RedactText(err.Error())
}

// RedactText rewrites every absolute URL in raw so that a Bot API token in the
// path and sensitive query values are replaced. Hosts are kept.
func RedactText(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	return urlInTextRE.ReplaceAllStringFunc(raw, RedactURL)
}

// RedactURL redacts a single URL. Unparseable input is returned as is.
func RedactURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return raw
	}
	path := u.EscapedPath()
	if botSegmentRE.MatchString(path) {
		path = botSegmentRE.ReplaceAllString(path, "/bot"+redacted)
	}
	out := u.Scheme + "://" + u.Host + path
	if q := redactSensitiveQuery(u.Query()); q != "" {
		out += "?" + q
	}
	return out
}

func redactSensitiveQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	for k := range q {
		if isSensitiveQueryKey(k) {
			q.Set(k, redacted)
		}
	}
	return q.Encode()
}

func isSensitiveQueryKey(key string) bool {
	n := strings.ToLower(strings.TrimSpace(key))
	n = strings.ReplaceAll(strings.ReplaceAll(n, "-", ""), "_", "")
	if n == "" {
		return false
	}
	if n == "key" {
		return true
	}
	for _, marker := range []string{"apikey", "authorization", "token", "secret", "password"} {
		if strings.Contains(n, marker) {
			return true
		}
	}
	return false
}
