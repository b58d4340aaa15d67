package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.elevenlabs.io", cfg.ElevenLabsBaseURL)
	assert.Equal(t, "elevenlabs", cfg.STTProvider)
	assert.Equal(t, 44100, cfg.SampleRate)
	assert.Equal(t, 1, cfg.Channels)
	assert.Equal(t, 3, cfg.MinRecordingSeconds)
	assert.Equal(t, 600, cfg.MaxRecordingSeconds)
	assert.Equal(t, 0.5, cfg.DefaultStability)
	assert.Equal(t, 0.75, cfg.DefaultSimilarity)
	assert.Equal(t, "en", cfg.DefaultTargetLang)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "key")
	t.Setenv("PORT", "9000")
	t.Setenv("SAMPLE_RATE", "16000")
	t.Setenv("STT_PROVIDER", "whisper")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("DEFAULT_VOICE_STABILITY", "0.3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 16000, cfg.SampleRate)
	assert.Equal(t, "whisper", cfg.STTProvider)
	assert.Equal(t, 0.3, cfg.DefaultStability)
	assert.Empty(t, cfg.Validate())
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := &Config{
		STTProvider:         "nope",
		SampleRate:          4000,
		Channels:            3,
		MinRecordingSeconds: 0,
		MaxRecordingSeconds: -1,
	}

	errs := cfg.Validate()
	require.Len(t, errs, 6)
	assert.ErrorContains(t, errs[0], "ELEVENLABS_API_KEY")
	assert.ErrorContains(t, errs[1], "STT_PROVIDER")
}

func TestValidate_WhisperNeedsOpenAIKey(t *testing.T) {
	cfg := &Config{
		ElevenLabsAPIKey:    "key",
		STTProvider:         "whisper",
		SampleRate:          44100,
		Channels:            1,
		MinRecordingSeconds: 3,
		MaxRecordingSeconds: 30,
	}

	errs := cfg.Validate()
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "OPENAI_API_KEY")
}
