package voices

import (
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/echominds/echominds/internal/ports"
)

type Service struct {
	cloner  ports.CloneClient
	storage ports.ObjectStorage
	repo    ports.VoiceRepo
}

func NewService(cloner ports.CloneClient, storage ports.ObjectStorage, repo ports.VoiceRepo) *Service {
	return &Service{
		cloner:  cloner,
		storage: storage,
		repo:    repo,
	}
}

// Clone registers a new voice: the sample is archived in S3 first, then
// sent to the cloning endpoint, and the returned id is persisted.
func (s *Service) Clone(ctx context.Context, name, samplePath string) (ports.ClonedVoice, error) {
	if name == "" {
		return ports.ClonedVoice{}, fmt.Errorf("voice name required")
	}

	key, err := s.archiveSample(ctx, samplePath)
	if err != nil {
		return ports.ClonedVoice{}, fmt.Errorf("archive sample: %w", err)
	}

	voiceID, err := s.cloner.Clone(ctx, name, "cloned via echominds", samplePath)
	if err != nil {
		s.discardSample(ctx, key)
		return ports.ClonedVoice{}, err
	}

	voice := ports.ClonedVoice{
		VoiceID:   voiceID,
		Name:      name,
		SampleKey: key,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, voice); err != nil {
		s.discardSample(ctx, key)
		return ports.ClonedVoice{}, fmt.Errorf("save voice %s: %w", voiceID, err)
	}

	return voice, nil
}

// List returns the registry, dropping voices that no longer exist at
// the remote service. When the remote list is unavailable the registry
// is returned as-is.
func (s *Service) List(ctx context.Context) ([]ports.ClonedVoice, error) {
	local, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	remote, err := s.cloner.ListVoices(ctx)
	if err != nil {
		return local, nil
	}

	exists := make(map[string]bool, len(remote))
	for _, v := range remote {
		exists[v.VoiceID] = true
	}

	kept := local[:0]
	for _, v := range local {
		if exists[v.VoiceID] {
			kept = append(kept, v)
		}
	}
	return kept, nil
}

func (s *Service) Get(ctx context.Context, voiceID string) (ports.ClonedVoice, error) {
	return s.repo.GetByID(ctx, voiceID)
}

// Delete removes the voice remotely, then the registry row and the
// archived sample. Remote deletion failing aborts, local cleanup
// failures are returned but the voice is already gone upstream.
func (s *Service) Delete(ctx context.Context, voiceID string) error {
	voice, err := s.repo.GetByID(ctx, voiceID)
	if err != nil {
		return err
	}

	if err := s.cloner.DeleteVoice(ctx, voiceID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, voiceID); err != nil {
		return fmt.Errorf("delete voice row: %w", err)
	}
	if voice.SampleKey != "" {
		if err := s.storage.RemoveObject(ctx, voice.SampleKey); err != nil {
			return fmt.Errorf("remove sample: %w", err)
		}
	}

	return nil
}

// discardSample drops a sample archived for a clone that never
// completed, so failed clones leave no orphaned objects behind.
func (s *Service) discardSample(ctx context.Context, key string) {
	if err := s.storage.RemoveObject(ctx, key); err != nil {
		log.Printf("[voices] discard sample %s: %v", key, err)
	}
}

func (s *Service) archiveSample(ctx context.Context, samplePath string) (string, error) {
	f, err := os.Open(samplePath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}

	ext := filepath.Ext(samplePath)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("samples/%s%s", uuid.NewString(), ext)
	if _, err := s.storage.PutObject(ctx, key, f, info.Size(), contentType); err != nil {
		return "", err
	}

	return key, nil
}
