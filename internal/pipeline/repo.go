package pipeline

import (
	"context"
	"database/sql"
	"time"

	"github.com/echominds/echominds/internal/ports"
)

type jobRepo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) ports.JobRepo {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job ports.SpeechJob) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO speech_jobs (id, voice_id, source_lang, target_lang, transcript, translation, output_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, job.ID, job.VoiceID, job.SourceLang, job.TargetLang, job.Transcript, job.Translation, job.OutputKey, time.Now())
	return err
}

func (r *jobRepo) List(ctx context.Context, limit int) ([]ports.SpeechJob, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, voice_id, source_lang, target_lang, transcript, translation, output_key, created_at
		FROM speech_jobs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []ports.SpeechJob
	for rows.Next() {
		var j ports.SpeechJob
		if err := rows.Scan(
			&j.ID,
			&j.VoiceID,
			&j.SourceLang,
			&j.TargetLang,
			&j.Transcript,
			&j.Translation,
			&j.OutputKey,
			&j.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM speech_jobs`)
	return err
}
