package model

import "time"

// Reminder holds at most one row per user; writes upsert.
type Reminder struct {
	UserID         int64   `json:"-"`
	DailyStudyTime *string `json:"daily_study_time"`
	NotifyBrowser  bool    `json:"notify_browser"`
	NotifyEmail    bool    `json:"notify_email"`
}

type Rating struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"created_at"`
}

// Download is one access-log row; read-only in the API.
type Download struct {
	ResourceName string    `json:"resource_name"`
	TopicID      *int64    `json:"topic_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	XP     int    `json:"xp"`
	Streak int    `json:"streak"`
}
