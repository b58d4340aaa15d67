package ports

import (
	"context"
	"time"
)

// ClonedVoice is a voice registered at the speech service, plus the
// local bookkeeping we keep for it.
type ClonedVoice struct {
	VoiceID   string    `json:"voice_id"`
	Name      string    `json:"name"`
	SampleKey string    `json:"sample_key"`
	CreatedAt time.Time `json:"created_at"`
}

type VoiceRepo interface {
	Create(ctx context.Context, v ClonedVoice) error
	GetByID(ctx context.Context, voiceID string) (ClonedVoice, error)
	List(ctx context.Context) ([]ClonedVoice, error)
	Delete(ctx context.Context, voiceID string) error
}

type VoiceService interface {
	Clone(ctx context.Context, name, samplePath string) (ClonedVoice, error)
	List(ctx context.Context) ([]ClonedVoice, error)
	Get(ctx context.Context, voiceID string) (ClonedVoice, error)
	Delete(ctx context.Context, voiceID string) error
}
