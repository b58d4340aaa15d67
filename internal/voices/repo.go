package voices

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/echominds/echominds/internal/ports"
)

type voiceRepo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) ports.VoiceRepo {
	return &voiceRepo{db: db}
}

func (r *voiceRepo) Create(ctx context.Context, v ports.ClonedVoice) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cloned_voices (voice_id, name, sample_key, created_at)
		VALUES ($1, $2, $3, $4)
	`, v.VoiceID, v.Name, v.SampleKey, time.Now())
	return err
}

func (r *voiceRepo) GetByID(ctx context.Context, voiceID string) (ports.ClonedVoice, error) {
	var v ports.ClonedVoice
	err := r.db.QueryRowContext(ctx, `
		SELECT voice_id, name, sample_key, created_at
		FROM cloned_voices
		WHERE voice_id = $1
	`, voiceID).Scan(&v.VoiceID, &v.Name, &v.SampleKey, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return v, fmt.Errorf("voice %q not registered", voiceID)
	}
	return v, err
}

func (r *voiceRepo) List(ctx context.Context) ([]ports.ClonedVoice, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT voice_id, name, sample_key, created_at
		FROM cloned_voices
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var voices []ports.ClonedVoice
	for rows.Next() {
		var v ports.ClonedVoice
		if err := rows.Scan(&v.VoiceID, &v.Name, &v.SampleKey, &v.CreatedAt); err != nil {
			return nil, err
		}
		voices = append(voices, v)
	}
	return voices, rows.Err()
}

func (r *voiceRepo) Delete(ctx context.Context, voiceID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cloned_voices WHERE voice_id = $1
	`, voiceID)
	return err
}
