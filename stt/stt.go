// Package stt converts recorded audio into text. An empty transcript is
// a valid "nothing understood" result, distinct from an error.
package stt

import "context"

type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
