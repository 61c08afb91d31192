// Package transcribe turns recorded session audio into text via AssemblyAI.
package transcribe

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AssemblyAI/assemblyai-go-sdk"
)

// DefaultLanguage matches the target audience of the app.
const DefaultLanguage = "de"

// Transcriber wraps the AssemblyAI client
type Transcriber struct {
	client   *assemblyai.Client
	language string
}

// New creates a transcriber. Language defaults to German when empty.
func New(apiKey, language string) *Transcriber {
	if language == "" {
		language = DefaultLanguage
	}
	return &Transcriber{
		client:   assemblyai.NewClient(apiKey),
		language: language,
	}
}

// NewFromEnv reads ASSEMBLYAI_API_KEY. Returns an error when the key is
// missing so callers can tell the user what to configure.
func NewFromEnv(language string) (*Transcriber, error) {
	key := os.Getenv("ASSEMBLYAI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("ASSEMBLYAI_API_KEY not set")
	}
	return New(key, language), nil
}

// TranscribeFile uploads and transcribes a local audio file.
func (t *Transcriber) TranscribeFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()
	return t.TranscribeReader(ctx, f)
}

// TranscribeReader uploads and transcribes audio from a reader.
func (t *Transcriber) TranscribeReader(ctx context.Context, r io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	params := &assemblyai.TranscriptOptionalParams{
		LanguageCode: assemblyai.TranscriptLanguageCode(t.language),
	}
	transcript, err := t.client.Transcripts.TranscribeFromReader(ctx, r, params)
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	if transcript.Status == assemblyai.TranscriptStatusError {
		msg := "unknown error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return "", fmt.Errorf("transcription failed: %s", msg)
	}
	if transcript.Text == nil {
		return "", nil
	}
	return *transcript.Text, nil
}

// TranscribeURL transcribes audio already hosted at a URL.
func (t *Transcriber) TranscribeURL(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	params := &assemblyai.TranscriptOptionalParams{
		LanguageCode: assemblyai.TranscriptLanguageCode(t.language),
	}
	transcript, err := t.client.Transcripts.TranscribeFromURL(ctx, url, params)
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	if transcript.Text == nil {
		return "", nil
	}
	return *transcript.Text, nil
}
