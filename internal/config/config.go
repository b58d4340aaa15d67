package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const elevenLabsBaseURL = "https://api.elevenlabs.io"

type Config struct {
	Port string

	ElevenLabsAPIKey  string
	ElevenLabsBaseURL string
	OpenAIAPIKey      string
	STTProvider       string // "elevenlabs" or "whisper"

	DatabaseURL string

	TelegramToken string
	AdminChatID   int64

	APIAuthKey string

	TempDir string

	SampleRate int
	Channels   int

	MinRecordingSeconds int
	MaxRecordingSeconds int

	DefaultStability  float64
	DefaultSimilarity float64
	DefaultTargetLang string

	RequestTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getenv("PORT", "8080"),
		ElevenLabsAPIKey:    os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsBaseURL:   getenv("ELEVENLABS_BASE_URL", elevenLabsBaseURL),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		STTProvider:         getenv("STT_PROVIDER", "elevenlabs"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		TelegramToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		AdminChatID:         getInt64("ADMIN_CHAT_ID", 0),
		APIAuthKey:          os.Getenv("API_AUTH_KEY"),
		TempDir:             getenv("TEMP_DIR", os.TempDir()),
		SampleRate:          getInt("SAMPLE_RATE", 44100),
		Channels:            getInt("CHANNELS", 1),
		MinRecordingSeconds: getInt("MIN_RECORDING_DURATION", 3),
		MaxRecordingSeconds: getInt("MAX_RECORDING_DURATION", 600),
		DefaultStability:    getFloat("DEFAULT_VOICE_STABILITY", 0.5),
		DefaultSimilarity:   getFloat("DEFAULT_VOICE_SIMILARITY", 0.75),
		DefaultTargetLang:   getenv("DEFAULT_TARGET_LANG", "en"),
		RequestTimeout:      time.Duration(getInt("REQUEST_TIMEOUT", 30)) * time.Second,
	}

	return cfg, nil
}

// Validate collects every config problem instead of stopping at the first,
// so startup can print the whole list at once.
func (c *Config) Validate() []error {
	var errs []error

	if c.ElevenLabsAPIKey == "" {
		errs = append(errs, fmt.Errorf("ELEVENLABS_API_KEY is not set"))
	}
	if c.STTProvider != "elevenlabs" && c.STTProvider != "whisper" {
		errs = append(errs, fmt.Errorf("invalid STT_PROVIDER: %q", c.STTProvider))
	}
	if c.STTProvider == "whisper" && c.OpenAIAPIKey == "" {
		errs = append(errs, fmt.Errorf("STT_PROVIDER=whisper requires OPENAI_API_KEY"))
	}
	if c.SampleRate < 8000 || c.SampleRate > 48000 {
		errs = append(errs, fmt.Errorf("invalid SAMPLE_RATE: %d", c.SampleRate))
	}
	if c.Channels != 1 && c.Channels != 2 {
		errs = append(errs, fmt.Errorf("invalid CHANNELS: %d", c.Channels))
	}
	if c.MinRecordingSeconds < 1 {
		errs = append(errs, fmt.Errorf("MIN_RECORDING_DURATION too small: %d", c.MinRecordingSeconds))
	}
	if c.MaxRecordingSeconds < c.MinRecordingSeconds {
		errs = append(errs, fmt.Errorf("MAX_RECORDING_DURATION must be >= MIN_RECORDING_DURATION"))
	}

	return errs
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getInt64(key string, def int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

func getFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
