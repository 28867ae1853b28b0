package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"learning_iq/internal/common"
	"learning_iq/internal/domain/model"
)

func newProgressFixture(users ...*model.User) (*ProgressService, *fakeUserRepo, *fakeAttemptRepo) {
	userRepo := newFakeUserRepo(users...)
	attemptRepo := newFakeAttemptRepo(userRepo)
	return NewProgressService(userRepo, attemptRepo, 1), userRepo, attemptRepo
}

func TestRecordAttempt_UserNotFound(t *testing.T) {
	svc, _, attemptRepo := newProgressFixture()

	_, err := svc.RecordAttempt(context.Background(), 99, 1, 80, nil, nil)
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(attemptRepo.attempts) != 0 {
		t.Errorf("attempts stored = %d, want 0", len(attemptRepo.attempts))
	}
}

func TestRecordAttempt_LastWriteWinsAndAppends(t *testing.T) {
	user := &model.User{ID: 1, Name: "Avinash", Email: "avinash@example.com", MasteryMap: map[string]float64{"2": 72}}
	svc, userRepo, attemptRepo := newProgressFixture(user)

	score, err := svc.RecordAttempt(context.Background(), 1, 3, 48, nil, nil)
	if err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	if score != 48 {
		t.Errorf("returned score = %v, want 48", score)
	}

	if _, err := svc.RecordAttempt(context.Background(), 1, 3, 91, nil, nil); err != nil {
		t.Fatalf("second attempt: %v", err)
	}

	stored := userRepo.users[1].MasteryMap
	if stored["3"] != 91 {
		t.Errorf("mastery_map[3] = %v, want 91 (last write wins)", stored["3"])
	}
	if stored["2"] != 72 {
		t.Errorf("mastery_map[2] = %v, want untouched 72", stored["2"])
	}
	if len(attemptRepo.attempts) != 2 {
		t.Errorf("attempts stored = %d, want 2", len(attemptRepo.attempts))
	}
}

func TestSubmitQuiz_PersistsRoundedMastery(t *testing.T) {
	user := &model.User{ID: 1, Name: "Avinash", Email: "avinash@example.com", MasteryMap: map[string]float64{}}
	svc, userRepo, attemptRepo := newProgressFixture(user)

	confidence := 75.0
	result, err := svc.SubmitQuiz(context.Background(), QuizSubmission{
		UserID:     json.RawMessage(`1`),
		Scores:     json.RawMessage(`[80, 90, 70]`),
		Confidence: &confidence,
		TopicID:    json.RawMessage(`3`),
	})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	if result.Accuracy != 80.0 {
		t.Errorf("Accuracy = %v, want 80.0", result.Accuracy)
	}
	if result.Mastery != 78.5 {
		t.Errorf("Mastery = %v, want 78.5", result.Mastery)
	}
	if result.MasteryPercent != result.Mastery {
		t.Errorf("MasteryPercent = %v, want %v", result.MasteryPercent, result.Mastery)
	}
	if userRepo.users[1].MasteryMap["3"] != 78.5 {
		t.Errorf("persisted mastery = %v, want 78.5", userRepo.users[1].MasteryMap["3"])
	}
	if len(attemptRepo.attempts) != 1 || attemptRepo.attempts[0].Score != 78.5 {
		t.Errorf("attempt rows = %+v, want one row with score 78.5", attemptRepo.attempts)
	}
}

func TestSubmitQuiz_UnknownUserStillComputes(t *testing.T) {
	svc, _, attemptRepo := newProgressFixture()

	result, err := svc.SubmitQuiz(context.Background(), QuizSubmission{
		UserID:  json.RawMessage(`42`),
		Scores:  json.RawMessage(`[60, 60]`),
		TopicID: json.RawMessage(`1`),
	})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if result.Accuracy != 60.0 {
		t.Errorf("Accuracy = %v, want 60.0", result.Accuracy)
	}
	if len(attemptRepo.attempts) != 0 {
		t.Errorf("attempts stored = %d, want 0 for unknown user", len(attemptRepo.attempts))
	}
}

func TestSubmitQuiz_DefaultsWhenFieldsAbsent(t *testing.T) {
	svc, _, attemptRepo := newProgressFixture()

	result, err := svc.SubmitQuiz(context.Background(), QuizSubmission{})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if result.UserID != 1 {
		t.Errorf("UserID = %d, want default 1", result.UserID)
	}
	if result.Accuracy != 50.0 {
		t.Errorf("Accuracy = %v, want default 50.0", result.Accuracy)
	}
	if result.Confidence != 70 {
		t.Errorf("Confidence = %v, want default 70", result.Confidence)
	}
	if result.Mastery != 56.0 {
		t.Errorf("Mastery = %v, want 56.0", result.Mastery)
	}
	if len(attemptRepo.attempts) != 0 {
		t.Errorf("attempts stored = %d, want 0 without topic_id", len(attemptRepo.attempts))
	}
}

func TestSubmitQuiz_AcceptsWrappedScoresAndStringIDs(t *testing.T) {
	user := &model.User{ID: 2, Name: "Priya", Email: "priya@example.com", MasteryMap: map[string]float64{}}
	svc, userRepo, _ := newProgressFixture(user)

	result, err := svc.SubmitQuiz(context.Background(), QuizSubmission{
		UserID:  json.RawMessage(`"2"`),
		Scores:  json.RawMessage(`{"quiz": [100, 100]}`),
		TopicID: json.RawMessage(`"5"`),
	})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}
	if result.UserID != 2 {
		t.Errorf("UserID = %d, want 2", result.UserID)
	}
	if result.Accuracy != 100.0 {
		t.Errorf("Accuracy = %v, want 100.0", result.Accuracy)
	}
	if _, ok := userRepo.users[2].MasteryMap["5"]; !ok {
		t.Error("expected mastery_map entry for topic 5")
	}
}
