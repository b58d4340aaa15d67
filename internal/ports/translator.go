package ports

import "context"

// Translation carries the result together with the language the service
// detected for the source text.
type Translation struct {
	Text       string
	SourceLang string
	TargetLang string
}

type Translator interface {
	// Translate translates text into targetLang. sourceLang may be empty,
	// in which case the service detects it.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (Translation, error)

	// DetectLanguage returns the most likely language code for text.
	DetectLanguage(ctx context.Context, text string) (string, error)
}
