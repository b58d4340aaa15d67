package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/echominds/echominds/internal/ports"
)

const (
	maxTextLength = 5000
	chunkSize     = 1000
)

type Service struct {
	translator ports.Translator
}

func NewService(translator ports.Translator) *Service {
	return &Service{translator: translator}
}

// Translate validates the text and translates it into targetLang.
// When the detected source language equals the target, the text comes
// back unchanged without a remote call.
func (s *Service) Translate(ctx context.Context, text, sourceLang, targetLang string) (ports.Translation, error) {
	if err := ValidateText(text); err != nil {
		return ports.Translation{}, err
	}
	if !IsSupported(targetLang) {
		return ports.Translation{}, fmt.Errorf("unsupported target language: %q", targetLang)
	}

	if sourceLang == "" {
		detected, err := s.translator.DetectLanguage(ctx, text)
		if err != nil {
			return ports.Translation{}, err
		}
		sourceLang = detected
	}

	if sourceLang == targetLang {
		return ports.Translation{Text: text, SourceLang: sourceLang, TargetLang: targetLang}, nil
	}

	if len(text) <= chunkSize {
		return s.translator.Translate(ctx, text, sourceLang, targetLang)
	}

	// Long text goes out chunk by chunk; the API rejects oversized bodies.
	chunks := SplitText(text, chunkSize)
	parts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		tr, err := s.translator.Translate(ctx, chunk, sourceLang, targetLang)
		if err != nil {
			return ports.Translation{}, err
		}
		parts = append(parts, tr.Text)
	}

	return ports.Translation{
		Text:       strings.Join(parts, " "),
		SourceLang: sourceLang,
		TargetLang: targetLang,
	}, nil
}

func (s *Service) DetectLanguage(ctx context.Context, text string) (string, error) {
	return s.translator.DetectLanguage(ctx, text)
}

func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is empty")
	}
	if len(text) > maxTextLength {
		return fmt.Errorf("text too long (%d chars), maximum %d", len(text), maxTextLength)
	}
	return nil
}

// SplitText breaks text into chunks of at most maxChunk bytes along
// sentence boundaries. A single sentence longer than maxChunk becomes
// its own chunk.
func SplitText(text string, maxChunk int) []string {
	normalized := strings.NewReplacer("!", ".", "?", ".").Replace(text)
	sentences := strings.Split(normalized, ".")

	var chunks []string
	var current strings.Builder

	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if current.Len() > 0 && current.Len()+len(sentence)+2 > maxChunk {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(sentence)
		current.WriteString(". ")
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	return chunks
}
