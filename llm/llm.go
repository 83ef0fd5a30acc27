// Package llm defines the client contract for the natural-language
// extraction backend. The backend answers with a semi-structured text
// block; parsing it belongs to the caller.
package llm

import (
	"context"
	"time"
)

// Part is one piece of a multimodal request: either Text, or raw Data
// with its MIME type (voice notes are sent as audio/ogg).
type Part struct {
	Text string
	Data []byte
	MIME string
}

func TextPart(text string) Part {
	return Part{Text: text}
}

func BlobPart(data []byte, mime string) Part {
	return Part{Data: data, MIME: mime}
}

type Request struct {
	Model      string
	Parts      []Part
	Parameters map[string]any
}

type Result struct {
	Text     string
	Duration time.Duration
}

type Client interface {
	Generate(ctx context.Context, req Request) (Result, error)
}
