package intent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mrEkso/n8n-voice2action-telegram/llm"
)

type fakeClient struct {
	text string
	err  error

	lastRequest llm.Request
	calls       int
}

func (f *fakeClient) Generate(_ context.Context, req llm.Request) (llm.Result, error) {
	f.calls++
	f.lastRequest = req
	if f.err != nil {
		return llm.Result{}, f.err
	}
	return llm.Result{Text: f.text}, nil
}

func TestResolveText_PrimaryPath(t *testing.T) {
	client := &fakeClient{text: "INTENT: email\nRECIPIENT: a@b.co\nSUBJECT: Hi\nBODY: hello"}
	r := NewResolver(client, "test-model", time.UTC, nil)

	res, err := r.ResolveText(context.Background(), "send email to a@b.co")
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent != KindEmail || res.Recipient != "a@b.co" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if client.calls != 1 {
		t.Errorf("expected one backend call, got %d", client.calls)
	}
	// The prompt embeds the user input.
	if len(client.lastRequest.Parts) != 1 || !strings.Contains(client.lastRequest.Parts[0].Text, "send email to a@b.co") {
		t.Error("prompt does not embed the input text")
	}
}

func TestResolveText_BackendErrorFallsBack(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	r := NewResolver(client, "test-model", time.UTC, nil)

	res, err := r.ResolveText(context.Background(), "Отправь письмо на x@y.de")
	if err != nil {
		t.Fatalf("backend failure must degrade, not error: %v", err)
	}
	if res.Intent != KindEmail || res.Recipient != "x@y.de" {
		t.Fatalf("expected fallback email classification, got %+v", res)
	}
}

func TestResolveText_NoBackendFallsBack(t *testing.T) {
	r := NewResolver(nil, "", time.UTC, nil)
	res, err := r.ResolveText(context.Background(), "календарь: ужин завтра")
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent != KindCalendar {
		t.Fatalf("expected fallback calendar classification, got %q", res.Intent)
	}
}

func TestResolveAudio_NoBackendIsConfigError(t *testing.T) {
	r := NewResolver(nil, "", time.UTC, nil)
	_, err := r.ResolveAudio(context.Background(), []byte{1, 2, 3}, "audio/ogg")
	if !errors.Is(err, ErrNoExtractionBackend) {
		t.Fatalf("expected ErrNoExtractionBackend, got %v", err)
	}
}

func TestResolveAudio_BackendErrorPropagates(t *testing.T) {
	client := &fakeClient{err: errors.New("upload rejected")}
	r := NewResolver(client, "test-model", time.UTC, nil)

	_, err := r.ResolveAudio(context.Background(), []byte{1, 2, 3}, "audio/ogg")
	if err == nil {
		t.Fatal("expected audio extraction error to surface")
	}
}

func TestResolveAudio_SendsAudioPart(t *testing.T) {
	client := &fakeClient{text: "INTENT: general\nRESPONSE: ок"}
	r := NewResolver(client, "test-model", time.UTC, nil)

	res, err := r.ResolveAudio(context.Background(), []byte{0x4f, 0x67}, "audio/ogg")
	if err != nil {
		t.Fatal(err)
	}
	if res.Intent != KindGeneral {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(client.lastRequest.Parts) != 2 {
		t.Fatalf("expected audio + prompt parts, got %d", len(client.lastRequest.Parts))
	}
	if client.lastRequest.Parts[0].MIME != "audio/ogg" {
		t.Errorf("expected audio part first, got %+v", client.lastRequest.Parts[0])
	}
}

func TestResolveAudio_EmptyInput(t *testing.T) {
	client := &fakeClient{text: "whatever"}
	r := NewResolver(client, "test-model", time.UTC, nil)
	if _, err := r.ResolveAudio(context.Background(), nil, "audio/ogg"); err == nil {
		t.Fatal("expected error for empty audio")
	}
}
