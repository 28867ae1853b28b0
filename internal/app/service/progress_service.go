package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"learning_iq/internal/app/mastery"
	"learning_iq/internal/common"
	"learning_iq/internal/domain/model"
	"learning_iq/internal/domain/repository"
	"learning_iq/internal/platform/logger"
)

type ProgressService struct {
	userRepo      repository.UserRepository
	attemptRepo   repository.AttemptRepository
	defaultUserID int64
}

func NewProgressService(
	userRepo repository.UserRepository,
	attemptRepo repository.AttemptRepository,
	defaultUserID int64,
) *ProgressService {
	return &ProgressService{
		userRepo:      userRepo,
		attemptRepo:   attemptRepo,
		defaultUserID: defaultUserID,
	}
}

// RecordAttempt sets mastery_map[topicID] = score (last-write-wins, no
// averaging across attempts) and appends an attempt row. Returns the stored
// score unchanged.
func (s *ProgressService) RecordAttempt(ctx context.Context, userID, topicID int64, score float64, timeSeconds, confidence *int) (float64, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, common.Errorf("user not found: %w", common.ErrNotFound)
		}
		return 0, err
	}

	masteryMap := user.MasteryMap
	if masteryMap == nil {
		masteryMap = map[string]float64{}
	}
	masteryMap[strconv.FormatInt(topicID, 10)] = score

	attempt := &model.QuizAttempt{
		UserID:      userID,
		TopicID:     topicID,
		Score:       score,
		TimeSeconds: timeSeconds,
		Confidence:  confidence,
	}
	if err := s.attemptRepo.RecordAttempt(ctx, masteryMap, attempt); err != nil {
		return 0, err
	}
	return score, nil
}

// QuizResult is the POST /api/quiz response body.
type QuizResult struct {
	Success        bool     `json:"success"`
	UserID         int64    `json:"user_id"`
	Accuracy       float64  `json:"accuracy"`
	Confidence     float64  `json:"confidence"`
	Mastery        float64  `json:"mastery"`
	MasteryPercent float64  `json:"mastery_percent"`
	Message        string   `json:"message"`
	Status         string   `json:"status"`
	Roadmap        []string `json:"roadmap"`
}

// SubmitQuiz runs the mastery engine over a submission and, when both user
// and topic ids resolve, persists the rounded mastery as the attempt score.
// A submission for an unknown user still returns the computed result; only
// the persistence step is skipped.
func (s *ProgressService) SubmitQuiz(ctx context.Context, req QuizSubmission) (*QuizResult, error) {
	userID, ok := parseFlexibleID(req.UserID)
	if !ok {
		userID = s.defaultUserID
	}

	confidence := mastery.DefaultConfidence
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	result := mastery.Evaluate(normalizeScores(req.Scores), confidence)

	if topicID, hasTopic := parseFlexibleID(req.TopicID); hasTopic {
		conf := int(confidence)
		_, err := s.RecordAttempt(ctx, userID, topicID, result.Mastery, req.TimeSeconds, &conf)
		switch {
		case errors.Is(err, common.ErrNotFound):
			logger.Warn("quiz submission for unknown user, skipping persistence", "user_id", userID)
		case err != nil:
			return nil, err
		}
	}

	return &QuizResult{
		Success:        true,
		UserID:         userID,
		Accuracy:       result.Accuracy,
		Confidence:     confidence,
		Mastery:        result.Mastery,
		MasteryPercent: result.Mastery,
		Message:        fmt.Sprintf("Mastery: %v%% — %s", result.Mastery, result.Status),
		Status:         result.Status,
		Roadmap:        result.Roadmap,
	}, nil
}

func (s *ProgressService) TestScores(ctx context.Context, userID int64) ([]model.TestScore, error) {
	return s.attemptRepo.ListRecentScores(ctx, userID, 10)
}
