package gmail

import (
	"context"
	"strings"
	"testing"

	"github.com/mrEkso/n8n-voice2action-telegram/confirm"
)

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("a@b.co", "Report", "hello\nworld"))

	if !strings.HasPrefix(msg, "To: a@b.co\r\n") {
		t.Errorf("message = %q", msg)
	}
	if !strings.Contains(msg, "Subject: Report\r\n") {
		t.Errorf("message = %q", msg)
	}
	header, body, found := strings.Cut(msg, "\r\n\r\n")
	if !found {
		t.Fatal("no header/body separator")
	}
	if !strings.Contains(header, "Content-Type: text/plain; charset=utf-8") {
		t.Errorf("header = %q", header)
	}
	if body != "hello\nworld" {
		t.Errorf("body = %q", body)
	}
}

func TestBuildMessage_EncodesNonASCIISubject(t *testing.T) {
	msg := string(buildMessage("a@b.co", "Отчёт", "текст"))
	if strings.Contains(msg, "Subject: Отчёт") {
		t.Error("subject was not MIME-encoded")
	}
	if !strings.Contains(msg, "Subject: =?utf-8?") {
		t.Errorf("message = %q", msg)
	}
}

func TestSend_RequiresRecipient(t *testing.T) {
	s := NewSender(t.TempDir(), nil)
	_, err := s.Send(context.Background(), confirm.EmailPayload{Subject: "s", Body: "b"})
	if err == nil || !strings.Contains(err.Error(), "recipient") {
		t.Fatalf("err = %v", err)
	}
}
