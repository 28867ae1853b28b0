package model

import (
	"time"
)

type User struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	College         string             `json:"college"`
	Stream          string             `json:"stream"`
	Streak          int                `json:"streak"`
	XP              int                `json:"xp"`
	EnrolledCourses []string           `json:"enrolled_courses"`
	MasteryMap      map[string]float64 `json:"mastery_map"`
	PasswordHash    string             `json:"-"` // Not exposed
	Theme           string             `json:"theme"`
	CreatedAt       time.Time          `json:"created_at"`
}

// UserSummary is the compact shape returned from the auth endpoints.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// ProfileUpdate carries the PUT /api/user fields; nil means "leave unchanged".
type ProfileUpdate struct {
	Name    *string `json:"name,omitempty"`
	College *string `json:"college,omitempty"`
	Stream  *string `json:"stream,omitempty"`
	Theme   *string `json:"theme,omitempty"`
}

func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.College == nil && p.Stream == nil && p.Theme == nil
}
