package handler

import (
	"context"

	"learning_iq/internal/common"
	"learning_iq/internal/domain/model"
)

// Minimal repository stubs for handler tests; services are wired for real so
// the tests cover the full request path below the router.

type stubUserRepo struct {
	users map[int64]*model.User
}

func (r *stubUserRepo) Create(_ context.Context, user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return user, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, _ int64, _ model.ProfileUpdate) error {
	return nil
}

func (r *stubUserRepo) ListTopByXP(_ context.Context, _ int) ([]model.LeaderboardEntry, error) {
	return []model.LeaderboardEntry{}, nil
}

type stubCatalogRepo struct {
	topics []model.Topic
}

func (r *stubCatalogRepo) ListSubjects(_ context.Context) ([]model.Subject, error) {
	return []model.Subject{}, nil
}

func (r *stubCatalogRepo) ListTopicsBySubject(_ context.Context, _ int64) ([]model.Topic, error) {
	return r.topics, nil
}

func (r *stubCatalogRepo) ListTopics(_ context.Context) ([]model.Topic, error) {
	return r.topics, nil
}

func (r *stubCatalogRepo) FindTopicByID(_ context.Context, id int64) (*model.Topic, error) {
	for i := range r.topics {
		if r.topics[i].ID == id {
			return &r.topics[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *stubCatalogRepo) ListTopicsWithQuizzes(_ context.Context) ([]model.TopicWithQuiz, error) {
	return []model.TopicWithQuiz{}, nil
}

// stubAttemptRepo fails every write with err when set.
type stubAttemptRepo struct {
	err      error
	userRepo *stubUserRepo
}

func (r *stubAttemptRepo) RecordAttempt(_ context.Context, masteryMap map[string]float64, attempt *model.QuizAttempt) error {
	if r.err != nil {
		return r.err
	}
	if user, ok := r.userRepo.users[attempt.UserID]; ok {
		user.MasteryMap = masteryMap
	}
	return nil
}

func (r *stubAttemptRepo) ListRecentScores(_ context.Context, _ int64, _ int) ([]model.TestScore, error) {
	return []model.TestScore{}, nil
}
