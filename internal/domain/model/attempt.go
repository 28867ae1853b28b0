package model

import "time"

// QuizAttempt is an append-only event; rows are never mutated after insert
// and the full history backs the test-scores and gaps views.
type QuizAttempt struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	TopicID        int64     `json:"topic_id"`
	Score          float64   `json:"score"`
	TimeSeconds    *int      `json:"time_seconds,omitempty"`
	Confidence     *int      `json:"confidence,omitempty"`
	ReattemptCount int       `json:"reattempt_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// TestScore is one row of the recent-scores view: an attempt joined with its
// topic name.
type TestScore struct {
	TopicID   int64     `json:"topic_id"`
	TopicName string    `json:"topic_name"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
