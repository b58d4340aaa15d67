package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echominds/echominds/internal/ports"
)

type fakeSTT struct {
	text string
	err  error
}

func (f *fakeSTT) Transcribe(_ context.Context, _ string) (string, error) {
	return f.text, f.err
}

type fakeTranslate struct {
	err error
}

func (f *fakeTranslate) Translate(_ context.Context, text, sourceLang, targetLang string) (ports.Translation, error) {
	if f.err != nil {
		return ports.Translation{}, f.err
	}
	if sourceLang == "" {
		sourceLang = "en"
	}
	return ports.Translation{
		Text:       "translated: " + text,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	}, nil
}

type fakeTTS struct {
	err error
}

func (f *fakeTTS) Synthesize(_ context.Context, _, _ string, _ ports.VoiceSettings, outPath string) error {
	if f.err != nil {
		return f.err
	}
	return os.WriteFile(outPath, []byte("mp3"), 0644)
}

type fakeVoiceRepo struct {
	voice ports.ClonedVoice
	err   error
}

func (f *fakeVoiceRepo) Create(_ context.Context, _ ports.ClonedVoice) error { return nil }
func (f *fakeVoiceRepo) GetByID(_ context.Context, _ string) (ports.ClonedVoice, error) {
	return f.voice, f.err
}
func (f *fakeVoiceRepo) List(_ context.Context) ([]ports.ClonedVoice, error) { return nil, nil }
func (f *fakeVoiceRepo) Delete(_ context.Context, _ string) error            { return nil }

type fakeStorage struct {
	putKeys []string
	err     error
}

func (f *fakeStorage) PutObject(_ context.Context, key string, _ io.Reader, _ int64, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.putKeys = append(f.putKeys, key)
	return "https://cdn.example/" + key, nil
}

func (f *fakeStorage) GetObject(_ context.Context, _ string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("mp3")), nil
}

func (f *fakeStorage) RemoveObject(_ context.Context, _ string) error { return nil }

type fakeJobRepo struct {
	created []ports.SpeechJob
	err     error
	cleared bool
}

func (f *fakeJobRepo) Create(_ context.Context, job ports.SpeechJob) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, job)
	return nil
}

func (f *fakeJobRepo) List(_ context.Context, limit int) ([]ports.SpeechJob, error) {
	jobs := make([]ports.SpeechJob, limit)
	return jobs, nil
}

func (f *fakeJobRepo) DeleteAll(_ context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.cleared = true
	return nil
}

type fakeNotifier struct {
	notices []string
}

func (f *fakeNotifier) Notify(_ context.Context, err error, details string) {
	f.notices = append(f.notices, details+": "+err.Error())
}

type pipelineFixture struct {
	stt      *fakeSTT
	tts      *fakeTTS
	voices   *fakeVoiceRepo
	storage  *fakeStorage
	jobs     *fakeJobRepo
	notifier *fakeNotifier
	svc      *Service
}

func newFixture(t *testing.T) *pipelineFixture {
	t.Helper()
	f := &pipelineFixture{
		stt:      &fakeSTT{text: "hello there"},
		tts:      &fakeTTS{},
		voices:   &fakeVoiceRepo{voice: ports.ClonedVoice{VoiceID: "v1", Name: "alpha"}},
		storage:  &fakeStorage{},
		jobs:     &fakeJobRepo{},
		notifier: &fakeNotifier{},
	}
	f.svc = NewService(f.stt, &fakeTranslate{}, f.tts, f.voices, f.storage, f.jobs, f.notifier, t.TempDir())
	return f
}

func request() ports.PipelineRequest {
	return ports.PipelineRequest{
		AudioPath:  "in.wav",
		VoiceID:    "v1",
		TargetLang: "es",
		Settings:   ports.VoiceSettings{Stability: 0.5, Similarity: 0.75},
	}
}

func TestProcess_HappyPath(t *testing.T) {
	f := newFixture(t)

	job, err := f.svc.Process(context.Background(), request())
	require.NoError(t, err)

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "v1", job.VoiceID)
	assert.Equal(t, "hello there", job.Transcript)
	assert.Equal(t, "translated: hello there", job.Translation)
	assert.Equal(t, "en", job.SourceLang)
	assert.Equal(t, "es", job.TargetLang)
	assert.True(t, strings.HasPrefix(job.OutputKey, "outputs/"))

	require.Len(t, f.jobs.created, 1)
	assert.Equal(t, job.ID, f.jobs.created[0].ID)
	require.Len(t, f.storage.putKeys, 1)
	assert.Equal(t, job.OutputKey, f.storage.putKeys[0])
	assert.Empty(t, f.notifier.notices)
}

func TestProcess_UnknownVoice(t *testing.T) {
	f := newFixture(t)
	f.voices.err = fmt.Errorf("voice %q not registered", "v1")

	_, err := f.svc.Process(context.Background(), request())
	assert.ErrorContains(t, err, "not registered")
	assert.Empty(t, f.jobs.created)
}

func TestProcess_STTFailureNotifies(t *testing.T) {
	f := newFixture(t)
	f.stt.err = fmt.Errorf("stt failed: audio too short")

	_, err := f.svc.Process(context.Background(), request())
	assert.ErrorContains(t, err, "speech-to-text")
	assert.ErrorContains(t, err, "audio too short")
	require.Len(t, f.notifier.notices, 1)
	assert.Contains(t, f.notifier.notices[0], "pipeline step failed")
}

func TestProcess_EmptyTranscript(t *testing.T) {
	f := newFixture(t)
	f.stt.text = ""

	_, err := f.svc.Process(context.Background(), request())
	assert.ErrorContains(t, err, "nothing recognized")
}

func TestProcess_TranslateFailureNotifies(t *testing.T) {
	f := newFixture(t)
	f.svc = NewService(f.stt, &fakeTranslate{err: fmt.Errorf("quota exceeded")}, f.tts, f.voices, f.storage, f.jobs, f.notifier, t.TempDir())

	_, err := f.svc.Process(context.Background(), request())
	assert.ErrorContains(t, err, "translation")
	require.Len(t, f.notifier.notices, 1)
}

func TestProcess_TTSFailureNotifies(t *testing.T) {
	f := newFixture(t)
	f.tts.err = fmt.Errorf("tts failed: voice not found")

	_, err := f.svc.Process(context.Background(), request())
	assert.ErrorContains(t, err, "speech synthesis")
	require.Len(t, f.notifier.notices, 1)
	assert.Empty(t, f.storage.putKeys)
}

func TestProcess_StorageFailureNotifies(t *testing.T) {
	f := newFixture(t)
	f.storage.err = fmt.Errorf("bucket unavailable")

	_, err := f.svc.Process(context.Background(), request())
	assert.ErrorContains(t, err, "store output")
	assert.Empty(t, f.jobs.created)
}

func TestProcess_JobSaveFailureDoesNotFailRun(t *testing.T) {
	f := newFixture(t)
	f.jobs.err = fmt.Errorf("db down")

	job, err := f.svc.Process(context.Background(), request())
	require.NoError(t, err)
	assert.NotEmpty(t, job.OutputKey)

	require.Len(t, f.notifier.notices, 1)
	assert.Contains(t, f.notifier.notices[0], "save speech job")
}

func TestClearHistory(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.svc.ClearHistory(context.Background()))
	assert.True(t, f.jobs.cleared)

	f.jobs.err = fmt.Errorf("db down")
	assert.ErrorContains(t, f.svc.ClearHistory(context.Background()), "db down")
}

func TestHistory_ClampsLimit(t *testing.T) {
	f := newFixture(t)

	jobs, err := f.svc.History(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 50)

	jobs, err = f.svc.History(context.Background(), 1000)
	require.NoError(t, err)
	assert.Len(t, jobs, 50)

	jobs, err = f.svc.History(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, jobs, 10)
}
