package ports

import (
	"context"
	"time"
)

// SpeechJob is one completed translate-speech run.
type SpeechJob struct {
	ID          string    `json:"id"`
	VoiceID     string    `json:"voice_id"`
	SourceLang  string    `json:"source_lang"`
	TargetLang  string    `json:"target_lang"`
	Transcript  string    `json:"transcript"`
	Translation string    `json:"translation"`
	OutputKey   string    `json:"output_key"`
	CreatedAt   time.Time `json:"created_at"`
}

type JobRepo interface {
	Create(ctx context.Context, job SpeechJob) error
	List(ctx context.Context, limit int) ([]SpeechJob, error)
	DeleteAll(ctx context.Context) error
}

// PipelineRequest is the input for one translate-speech run.
type PipelineRequest struct {
	AudioPath  string
	VoiceID    string
	TargetLang string
	SourceLang string // empty = detect
	Settings   VoiceSettings
}

type PipelineService interface {
	Process(ctx context.Context, req PipelineRequest) (SpeechJob, error)
	History(ctx context.Context, limit int) ([]SpeechJob, error)
	ClearHistory(ctx context.Context) error
}
