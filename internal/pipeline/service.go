package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/echominds/echominds/internal/ports"
)

// translator is the slice of the translate service the pipeline needs.
type translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (ports.Translation, error)
}

// Service runs the translate-speech flow: recognize, translate,
// synthesize in the cloned voice, store the result.
type Service struct {
	stt        ports.STTClient
	translator translator
	tts        ports.TTSClient
	voices     ports.VoiceRepo
	storage    ports.ObjectStorage
	jobs       ports.JobRepo
	notifier   ports.Notifier
	tempDir    string
}

func NewService(
	stt ports.STTClient,
	tr translator,
	tts ports.TTSClient,
	voices ports.VoiceRepo,
	storage ports.ObjectStorage,
	jobs ports.JobRepo,
	notifier ports.Notifier,
	tempDir string,
) *Service {
	return &Service{
		stt:        stt,
		translator: tr,
		tts:        tts,
		voices:     voices,
		storage:    storage,
		jobs:       jobs,
		notifier:   notifier,
		tempDir:    tempDir,
	}
}

// Process is strictly sequential: each step feeds the next, and the
// first failure aborts the run. The remote error text is preserved so
// the surface can show it to the user.
func (s *Service) Process(ctx context.Context, req ports.PipelineRequest) (ports.SpeechJob, error) {
	voice, err := s.voices.GetByID(ctx, req.VoiceID)
	if err != nil {
		return ports.SpeechJob{}, err
	}

	transcript, err := s.stt.Transcribe(ctx, req.AudioPath)
	if err != nil {
		return ports.SpeechJob{}, s.fail(ctx, err, "speech-to-text")
	}
	if transcript == "" {
		return ports.SpeechJob{}, fmt.Errorf("nothing recognized in the recording")
	}

	translation, err := s.translator.Translate(ctx, transcript, req.SourceLang, req.TargetLang)
	if err != nil {
		return ports.SpeechJob{}, s.fail(ctx, err, "translation")
	}

	outPath := filepath.Join(s.tempDir, outputFileName(req.TargetLang))
	if err := s.tts.Synthesize(ctx, voice.VoiceID, translation.Text, req.Settings, outPath); err != nil {
		return ports.SpeechJob{}, s.fail(ctx, err, "speech synthesis")
	}
	defer os.Remove(outPath)

	key, err := s.storeOutput(ctx, outPath)
	if err != nil {
		return ports.SpeechJob{}, s.fail(ctx, err, "store output")
	}

	job := ports.SpeechJob{
		ID:          uuid.NewString(),
		VoiceID:     voice.VoiceID,
		SourceLang:  translation.SourceLang,
		TargetLang:  translation.TargetLang,
		Transcript:  transcript,
		Translation: translation.Text,
		OutputKey:   key,
		CreatedAt:   time.Now(),
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		// The audio is already produced; losing the history row should
		// not fail the whole run.
		s.notifier.Notify(ctx, err, "save speech job")
	}

	return job, nil
}

func (s *Service) History(ctx context.Context, limit int) ([]ports.SpeechJob, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.jobs.List(ctx, limit)
}

// ClearHistory wipes the job log. Stored output files stay in S3.
func (s *Service) ClearHistory(ctx context.Context) error {
	return s.jobs.DeleteAll(ctx)
}

func (s *Service) fail(ctx context.Context, err error, step string) error {
	wrapped := fmt.Errorf("%s: %w", step, err)
	s.notifier.Notify(ctx, wrapped, "pipeline step failed")
	return wrapped
}

func (s *Service) storeOutput(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	key := "outputs/" + filepath.Base(path)
	if _, err := s.storage.PutObject(ctx, key, f, info.Size(), "audio/mpeg"); err != nil {
		return "", err
	}
	return key, nil
}

func outputFileName(targetLang string) string {
	return fmt.Sprintf("echominds_output_%s_%s.mp3", targetLang, time.Now().Format("20060102_150405"))
}
