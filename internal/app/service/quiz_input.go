package service

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// QuizSubmission is the POST /api/quiz body. Clients are loose with types
// here: scores may be an array or an object wrapping one, ids may be numbers
// or digit strings. Raw fields are normalized before the engine runs.
type QuizSubmission struct {
	UserID      json.RawMessage `json:"user_id"`
	Scores      json.RawMessage `json:"scores"`
	Confidence  *float64        `json:"confidence"`
	TopicID     json.RawMessage `json:"topic_id"`
	TimeSeconds *int            `json:"time_seconds"`
}

// normalizeScores accepts a JSON array of numbers or an object carrying the
// array under a "quiz" or "scores" key. Anything else yields nil and the
// engine's default kicks in.
func normalizeScores(raw json.RawMessage) []float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var scores []float64
	if err := json.Unmarshal(raw, &scores); err == nil {
		return scores
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil
	}
	for _, key := range []string{"quiz", "scores"} {
		if inner, ok := wrapper[key]; ok {
			if err := json.Unmarshal(inner, &scores); err == nil {
				return scores
			}
		}
	}
	return nil
}

// parseFlexibleID reads an id that may arrive as a JSON number or a quoted
// digit string. ok is false when absent or unparseable.
func parseFlexibleID(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		if id, err := num.Int64(); err == nil && id > 0 {
			return id, true
		}
		return 0, false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil && id > 0 {
			return id, true
		}
	}
	return 0, false
}
