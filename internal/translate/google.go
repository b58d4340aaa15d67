package translate

import (
	"context"
	"fmt"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"

	"github.com/echominds/echominds/internal/ports"
)

// GoogleClient adapts the Cloud Translation API to the Translator port.
// Credentials come from GOOGLE_APPLICATION_CREDENTIALS.
type GoogleClient struct {
	client *translate.Client
}

func NewGoogleClient(ctx context.Context) (*GoogleClient, error) {
	client, err := translate.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("init translate client: %w", err)
	}
	return &GoogleClient{client: client}, nil
}

func (g *GoogleClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (ports.Translation, error) {
	target, err := language.Parse(targetLang)
	if err != nil {
		return ports.Translation{}, fmt.Errorf("parse target language %q: %w", targetLang, err)
	}

	opts := &translate.Options{Format: translate.Text}
	if sourceLang != "" {
		source, err := language.Parse(sourceLang)
		if err != nil {
			return ports.Translation{}, fmt.Errorf("parse source language %q: %w", sourceLang, err)
		}
		opts.Source = source
	}

	res, err := g.client.Translate(ctx, []string{text}, target, opts)
	if err != nil {
		return ports.Translation{}, fmt.Errorf("translate: %w", err)
	}
	if len(res) == 0 {
		return ports.Translation{}, fmt.Errorf("empty translation result")
	}

	detected := sourceLang
	if detected == "" {
		detected = res[0].Source.String()
	}

	return ports.Translation{
		Text:       res[0].Text,
		SourceLang: detected,
		TargetLang: targetLang,
	}, nil
}

func (g *GoogleClient) DetectLanguage(ctx context.Context, text string) (string, error) {
	detections, err := g.client.DetectLanguage(ctx, []string{text})
	if err != nil {
		return "", fmt.Errorf("detect language: %w", err)
	}
	if len(detections) == 0 || len(detections[0]) == 0 {
		return "", fmt.Errorf("no language detected")
	}
	return detections[0][0].Language.String(), nil
}

func (g *GoogleClient) Close() error {
	return g.client.Close()
}
