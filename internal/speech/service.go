package speech

import (
	"context"

	"github.com/echominds/echominds/internal/ports"
)

// Service is the single entry point for everything the external speech
// service does for us: recognition, synthesis and voice management.
type Service struct {
	stt    ports.STTClient
	tts    ports.TTSClient
	cloner ports.CloneClient
	limits SampleLimits
}

func NewService(stt ports.STTClient, tts ports.TTSClient, cloner ports.CloneClient, limits SampleLimits) *Service {
	return &Service{
		stt:    stt,
		tts:    tts,
		cloner: cloner,
		limits: limits,
	}
}

func (s *Service) Transcribe(ctx context.Context, filePath string) (string, error) {
	if err := ValidateSample(filePath, SampleLimits{MinSeconds: 0.5}); err != nil {
		return "", err
	}
	return s.stt.Transcribe(ctx, filePath)
}

func (s *Service) Synthesize(ctx context.Context, voiceID, text string, settings ports.VoiceSettings, outPath string) error {
	return s.tts.Synthesize(ctx, voiceID, text, settings, outPath)
}

func (s *Service) Clone(ctx context.Context, name, description, samplePath string) (string, error) {
	if err := ValidateSample(samplePath, s.limits); err != nil {
		return "", err
	}
	return s.cloner.Clone(ctx, name, description, samplePath)
}

func (s *Service) ListVoices(ctx context.Context) ([]ports.RemoteVoice, error) {
	return s.cloner.ListVoices(ctx)
}

func (s *Service) DeleteVoice(ctx context.Context, voiceID string) error {
	return s.cloner.DeleteVoice(ctx, voiceID)
}
