package translate

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echominds/echominds/internal/ports"
)

type fakeTranslator struct {
	detected string
	calls    []string
	fail     bool
}

func (f *fakeTranslator) Translate(_ context.Context, text, sourceLang, targetLang string) (ports.Translation, error) {
	if f.fail {
		return ports.Translation{}, fmt.Errorf("quota exceeded")
	}
	f.calls = append(f.calls, text)
	return ports.Translation{
		Text:       "[" + targetLang + "] " + text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	}, nil
}

func (f *fakeTranslator) DetectLanguage(_ context.Context, _ string) (string, error) {
	if f.detected == "" {
		return "", fmt.Errorf("no language detected")
	}
	return f.detected, nil
}

func TestTranslate_DetectsSourceLanguage(t *testing.T) {
	fake := &fakeTranslator{detected: "tr"}
	svc := NewService(fake)

	tr, err := svc.Translate(context.Background(), "merhaba", "", "en")
	require.NoError(t, err)

	assert.Equal(t, "tr", tr.SourceLang)
	assert.Equal(t, "[en] merhaba", tr.Text)
}

func TestTranslate_SameLanguageSkipsRemoteCall(t *testing.T) {
	fake := &fakeTranslator{detected: "en"}
	svc := NewService(fake)

	tr, err := svc.Translate(context.Background(), "hello", "", "en")
	require.NoError(t, err)

	assert.Equal(t, "hello", tr.Text)
	assert.Empty(t, fake.calls)
}

func TestTranslate_RejectsEmptyText(t *testing.T) {
	svc := NewService(&fakeTranslator{detected: "en"})

	_, err := svc.Translate(context.Background(), "   ", "", "de")
	assert.ErrorContains(t, err, "empty")
}

func TestTranslate_RejectsUnsupportedTarget(t *testing.T) {
	svc := NewService(&fakeTranslator{detected: "en"})

	_, err := svc.Translate(context.Background(), "hello", "en", "xx")
	assert.ErrorContains(t, err, "unsupported target language")
}

func TestTranslate_SurfacesRemoteError(t *testing.T) {
	svc := NewService(&fakeTranslator{fail: true})

	_, err := svc.Translate(context.Background(), "hello", "en", "de")
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestTranslate_LongTextGoesOutInChunks(t *testing.T) {
	fake := &fakeTranslator{detected: "en"}
	svc := NewService(fake)

	sentence := strings.Repeat("word ", 60) + "end."
	long := strings.Repeat(sentence, 12)
	require.Greater(t, len(long), chunkSize)
	require.LessOrEqual(t, len(long), maxTextLength)

	tr, err := svc.Translate(context.Background(), long, "en", "de")
	require.NoError(t, err)

	assert.Greater(t, len(fake.calls), 1)
	for _, call := range fake.calls {
		assert.LessOrEqual(t, len(call), chunkSize)
	}
	assert.Contains(t, tr.Text, "[de]")
}

func TestSplitText(t *testing.T) {
	chunks := SplitText("One. Two! Three? Four.", 12)
	assert.Equal(t, []string{"One. Two.", "Three.", "Four."}, chunks)
}

func TestSplitText_OversizedSentenceBecomesOwnChunk(t *testing.T) {
	long := strings.Repeat("a", 50)
	chunks := SplitText(long+". Short one.", 20)

	require.Len(t, chunks, 2)
	assert.Equal(t, long+".", chunks[0])
	assert.Equal(t, "Short one.", chunks[1])
}
