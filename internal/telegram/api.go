package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/quailyquaily/unreverse/internal/outputfmt"
)

const DefaultBaseURL = "https://api.telegram.org"

// Client is a minimal Bot API client.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

func NewClient(httpClient *http.Client, baseURL, token string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   strings.TrimSpace(token),
	}
}

func (c *Client) GetMe(ctx context.Context) (*User, error) {
	var out getMeResponse
	if err := c.call(ctx, "getMe", nil, &out); err != nil {
		return nil, err
	}
	return &out.Result, nil
}

// GetUpdates long-polls for updates after offset and returns the offset to
// use for the next call.
func (c *Client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, int64, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	secs := int(timeout.Seconds())
	if secs < 1 {
		secs = 1
	}
	body := map[string]any{
		"timeout":         secs,
		"allowed_updates": []string{"message"},
	}
	if offset > 0 {
		body["offset"] = offset
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout+5*time.Second)
	defer cancel()
	var out getUpdatesResponse
	if err := c.call(reqCtx, "getUpdates", body, &out); err != nil {
		return nil, offset, err
	}

	next := offset
	for _, u := range out.Result {
		if u.UpdateID >= next {
			next = u.UpdateID + 1
		}
	}
	return out.Result, next, nil
}

func (c *Client) SendMessage(ctx context.Context, req SendMessageRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("telegram sendMessage: empty text")
	}
	return c.call(ctx, "sendMessage", req, nil)
}

func (c *Client) SendPhoto(ctx context.Context, req SendMediaRequest) error {
	return c.sendMedia(ctx, "sendPhoto", "photo", req)
}

func (c *Client) SendVideo(ctx context.Context, req SendMediaRequest) error {
	return c.sendMedia(ctx, "sendVideo", "video", req)
}

func (c *Client) SendVoice(ctx context.Context, req SendMediaRequest) error {
	return c.sendMedia(ctx, "sendVoice", "voice", req)
}

func (c *Client) SendAnimation(ctx context.Context, req SendMediaRequest) error {
	return c.sendMedia(ctx, "sendAnimation", "animation", req)
}

func (c *Client) sendMedia(ctx context.Context, method, field string, req SendMediaRequest) error {
	fileID := strings.TrimSpace(req.FileID)
	if fileID == "" {
		return fmt.Errorf("telegram %s: missing file_id", method)
	}
	body := map[string]any{
		"chat_id": req.ChatID,
		field:     fileID,
	}
	if req.Caption != "" {
		body["caption"] = req.Caption
	}
	if req.ReplyToMessageID > 0 {
		body["reply_to_message_id"] = req.ReplyToMessageID
	}
	return c.call(ctx, method, body, nil)
}

// call posts body as JSON to method and decodes the response into out, which
// must embed okResponse when non-nil.
func (c *Client) call(ctx context.Context, method string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("telegram %s: encode request: %w", method, err)
		}
		reader = bytes.NewReader(b)
	}
	endpoint := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		// The request URL carries the bot token.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = outputfmt.RedactURL(urlErr.URL)
		}
		return err
	}
	raw, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return fmt.Errorf("telegram %s: read response: %w", method, err)
	}

	var status okResponse
	_ = json.Unmarshal(raw, &status)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !status.OK {
		reqErr := &RequestError{
			Method:      method,
			StatusCode:  resp.StatusCode,
			ErrorCode:   status.ErrorCode,
			Description: status.Description,
			Body:        strings.TrimSpace(string(raw)),
		}
		if status.Parameters != nil && status.Parameters.RetryAfter > 0 {
			reqErr.RetryAfter = time.Duration(status.Parameters.RetryAfter) * time.Second
		}
		return reqErr
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("telegram %s: decode response: %w", method, err)
		}
	}
	return nil
}
