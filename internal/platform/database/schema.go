package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema statements run on every startup; each is idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		college TEXT,
		stream TEXT,
		streak INTEGER NOT NULL DEFAULT 0,
		xp INTEGER NOT NULL DEFAULT 0,
		enrolled_courses JSONB NOT NULL DEFAULT '[]',
		mastery_map JSONB NOT NULL DEFAULT '{}',
		password_hash TEXT,
		theme TEXT NOT NULL DEFAULT 'light',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS subjects (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL DEFAULT '',
		description TEXT,
		estimated_weeks INTEGER NOT NULL DEFAULT 4
	)`,
	`CREATE TABLE IF NOT EXISTS topics (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT NOT NULL DEFAULT '',
		subject_id BIGINT NOT NULL REFERENCES subjects(id),
		difficulty TEXT NOT NULL DEFAULT 'medium',
		prerequisites JSONB NOT NULL DEFAULT '[]',
		estimated_time_mins INTEGER NOT NULL DEFAULT 45,
		week_number INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS quizzes (
		id BIGSERIAL PRIMARY KEY,
		topic_id BIGINT NOT NULL REFERENCES topics(id),
		questions JSONB NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS quiz_attempts (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		topic_id BIGINT NOT NULL REFERENCES topics(id),
		score DOUBLE PRECISION NOT NULL,
		time_seconds INTEGER,
		confidence INTEGER,
		reattempt_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_quiz_attempts_user_created
		ON quiz_attempts (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS reminders (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL UNIQUE REFERENCES users(id),
		daily_study_time TEXT,
		notify_browser BOOLEAN NOT NULL DEFAULT TRUE,
		notify_email BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS ratings (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		stars INTEGER NOT NULL CHECK (stars >= 1 AND stars <= 5),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS downloads (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		resource_name TEXT NOT NULL,
		topic_id BIGINT REFERENCES topics(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("database.EnsureSchema: %w", err)
		}
	}
	return nil
}
