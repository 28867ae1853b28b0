package model

type TopicDifficulty string

const (
	DifficultyEasy   TopicDifficulty = "easy"
	DifficultyMedium TopicDifficulty = "medium"
	DifficultyHard   TopicDifficulty = "hard"
)

// Subject is immutable reference data seeded at startup.
type Subject struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Description    string `json:"description"`
	EstimatedWeeks int    `json:"estimated_weeks"`
}

// Topic belongs to exactly one Subject; week_number places it in the
// subject's schedule.
type Topic struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Slug              string          `json:"slug"`
	SubjectID         int64           `json:"subject_id"`
	Difficulty        TopicDifficulty `json:"difficulty"`
	Prerequisites     []int64         `json:"prerequisites"`
	EstimatedTimeMins int             `json:"estimated_time_mins"`
	WeekNumber        int             `json:"week_number"`
}

type Question struct {
	Q       string   `json:"q"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// TopicWithQuiz is the GET /api/topics shape: topic joined with its subject
// name plus the attached question list (empty when the topic has no quiz).
type TopicWithQuiz struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Slug              string     `json:"slug"`
	SubjectID         int64      `json:"subject_id"`
	SubjectName       string     `json:"subject_name"`
	EstimatedTimeMins int        `json:"estimated_time_mins"`
	WeekNumber        int        `json:"week_number"`
	Quiz              []Question `json:"quiz"`
}
