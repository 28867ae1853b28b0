package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"learning_iq/internal/common"
	"learning_iq/internal/domain/model"
)

type EngagementRepository interface {
	GetReminder(ctx context.Context, userID int64) (*model.Reminder, error)
	UpsertReminder(ctx context.Context, reminder *model.Reminder) error
	InsertRating(ctx context.Context, userID int64, stars int) error
	ListDownloads(ctx context.Context, userID int64, limit int) ([]model.Download, error)
}

type pgEngagementRepository struct {
	db *sql.DB
}

func NewPgEngagementRepository(db *sql.DB) EngagementRepository {
	return &pgEngagementRepository{db: db}
}

func (r *pgEngagementRepository) GetReminder(ctx context.Context, userID int64) (*model.Reminder, error) {
	query := `SELECT daily_study_time, notify_browser, notify_email FROM reminders WHERE user_id = $1`
	reminder := &model.Reminder{UserID: userID}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&reminder.DailyStudyTime, &reminder.NotifyBrowser, &reminder.NotifyEmail,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgEngagementRepository.GetReminder: %w", err)
	}
	return reminder, nil
}

func (r *pgEngagementRepository) UpsertReminder(ctx context.Context, reminder *model.Reminder) error {
	query := `
		INSERT INTO reminders (user_id, daily_study_time, notify_browser, notify_email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			daily_study_time = EXCLUDED.daily_study_time,
			notify_browser = EXCLUDED.notify_browser,
			notify_email = EXCLUDED.notify_email`
	_, err := r.db.ExecContext(ctx, query,
		reminder.UserID, reminder.DailyStudyTime, reminder.NotifyBrowser, reminder.NotifyEmail)
	if err != nil {
		return fmt.Errorf("pgEngagementRepository.UpsertReminder: %w", err)
	}
	return nil
}

func (r *pgEngagementRepository) InsertRating(ctx context.Context, userID int64, stars int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO ratings (user_id, stars) VALUES ($1, $2)`, userID, stars)
	if err != nil {
		return fmt.Errorf("pgEngagementRepository.InsertRating: %w", err)
	}
	return nil
}

func (r *pgEngagementRepository) ListDownloads(ctx context.Context, userID int64, limit int) ([]model.Download, error) {
	query := `
		SELECT resource_name, topic_id, created_at
		FROM downloads
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("pgEngagementRepository.ListDownloads: %w", err)
	}
	defer rows.Close()

	downloads := []model.Download{}
	for rows.Next() {
		var d model.Download
		if err := rows.Scan(&d.ResourceName, &d.TopicID, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgEngagementRepository.ListDownloads: %w", err)
		}
		downloads = append(downloads, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgEngagementRepository.ListDownloads: %w", err)
	}
	return downloads, nil
}
