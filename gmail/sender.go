// Package gmail sends confirmed email actions through the Gmail REST
// API using a stored OAuth token.
package gmail

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"sync"

	"github.com/mrEkso/n8n-voice2action-telegram/confirm"
	"github.com/mrEkso/n8n-voice2action-telegram/internal/googleauth"
)

const sendURL = "https://gmail.googleapis.com/gmail/v1/users/me/messages/send"

type Sender struct {
	dataDir string
	log     *slog.Logger

	mu     sync.Mutex
	client *http.Client
}

func NewSender(dataDir string, log *slog.Logger) *Sender {
	if log == nil {
		log = slog.Default()
	}
	return &Sender{dataDir: strings.TrimSpace(dataDir), log: log}
}

func (s *Sender) Send(ctx context.Context, p confirm.EmailPayload) (string, error) {
	if s == nil {
		return "", fmt.Errorf("nil gmail sender")
	}
	to := strings.TrimSpace(p.To)
	if to == "" {
		return "", fmt.Errorf("recipient address is required")
	}

	client, err := s.httpClient(ctx)
	if err != nil {
		return "", err
	}

	raw := base64.RawURLEncoding.EncodeToString(buildMessage(to, p.Subject, p.Body))
	body, _ := json.Marshal(map[string]string{"raw": raw})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gmail send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("gmail send failed: %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}

	var sent struct {
		ID string `json:"id"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&sent)

	s.log.Info("email sent", "to", to, "message_id", sent.ID)
	return fmt.Sprintf("Письмо отправлено на %s", to), nil
}

// httpClient lazily builds the authenticated client so a missing token
// only fails at first send, not at startup.
func (s *Sender) httpClient(ctx context.Context) (*http.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return s.client, nil
	}
	client, err := googleauth.Client(ctx, s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("gmail is not configured: %w", err)
	}
	s.client = client
	return client, nil
}

// buildMessage assembles a minimal RFC 822 message. The subject is
// MIME-encoded so non-ASCII survives transport.
func buildMessage(to, subject, body string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.Bytes()
}
