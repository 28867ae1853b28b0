package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"learning_iq/internal/common"
	"learning_iq/internal/domain/model"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[int64]*model.User{}, nextID: 1}
	for _, u := range users {
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return common.ErrConflict
		}
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id int64, upd model.ProfileUpdate) error {
	user, ok := r.users[id]
	if !ok {
		return nil
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.College != nil {
		user.College = *upd.College
	}
	if upd.Stream != nil {
		user.Stream = *upd.Stream
	}
	if upd.Theme != nil {
		user.Theme = *upd.Theme
	}
	return nil
}

func (r *fakeUserRepo) ListTopByXP(_ context.Context, limit int) ([]model.LeaderboardEntry, error) {
	users := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].XP != users[j].XP {
			return users[i].XP > users[j].XP
		}
		return users[i].ID < users[j].ID
	})
	if len(users) > limit {
		users = users[:limit]
	}
	entries := make([]model.LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = model.LeaderboardEntry{UserID: u.ID, Name: u.Name, XP: u.XP, Streak: u.Streak}
	}
	return entries, nil
}

type fakeAttemptRepo struct {
	userRepo *fakeUserRepo
	attempts []model.QuizAttempt
}

func newFakeAttemptRepo(userRepo *fakeUserRepo) *fakeAttemptRepo {
	return &fakeAttemptRepo{userRepo: userRepo}
}

func (r *fakeAttemptRepo) RecordAttempt(_ context.Context, masteryMap map[string]float64, attempt *model.QuizAttempt) error {
	if user, ok := r.userRepo.users[attempt.UserID]; ok {
		user.MasteryMap = masteryMap
	}
	attempt.ID = int64(len(r.attempts) + 1)
	attempt.CreatedAt = time.Now()
	r.attempts = append(r.attempts, *attempt)
	return nil
}

func (r *fakeAttemptRepo) ListRecentScores(_ context.Context, userID int64, limit int) ([]model.TestScore, error) {
	scores := []model.TestScore{}
	for i := len(r.attempts) - 1; i >= 0 && len(scores) < limit; i-- {
		a := r.attempts[i]
		if a.UserID == userID {
			scores = append(scores, model.TestScore{TopicID: a.TopicID, Score: a.Score, CreatedAt: a.CreatedAt})
		}
	}
	return scores, nil
}

type fakeCatalogRepo struct {
	subjects []model.Subject
	topics   []model.Topic
	quizzes  map[int64][]model.Question
}

func (r *fakeCatalogRepo) ListSubjects(_ context.Context) ([]model.Subject, error) {
	return r.subjects, nil
}

func (r *fakeCatalogRepo) ListTopicsBySubject(_ context.Context, subjectID int64) ([]model.Topic, error) {
	topics := []model.Topic{}
	for _, t := range r.topics {
		if t.SubjectID == subjectID {
			topics = append(topics, t)
		}
	}
	return topics, nil
}

func (r *fakeCatalogRepo) ListTopics(_ context.Context) ([]model.Topic, error) {
	return r.topics, nil
}

func (r *fakeCatalogRepo) FindTopicByID(_ context.Context, id int64) (*model.Topic, error) {
	for i := range r.topics {
		if r.topics[i].ID == id {
			return &r.topics[i], nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeCatalogRepo) ListTopicsWithQuizzes(_ context.Context) ([]model.TopicWithQuiz, error) {
	out := []model.TopicWithQuiz{}
	for _, t := range r.topics {
		quiz := r.quizzes[t.ID]
		if quiz == nil {
			quiz = []model.Question{}
		}
		out = append(out, model.TopicWithQuiz{
			ID: t.ID, Name: t.Name, Slug: t.Slug, SubjectID: t.SubjectID,
			EstimatedTimeMins: t.EstimatedTimeMins, WeekNumber: t.WeekNumber, Quiz: quiz,
		})
	}
	return out, nil
}

type fakeEngagementRepo struct {
	reminders map[int64]*model.Reminder
	ratings   []model.Rating
	downloads map[int64][]model.Download
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{
		reminders: map[int64]*model.Reminder{},
		downloads: map[int64][]model.Download{},
	}
}

func (r *fakeEngagementRepo) GetReminder(_ context.Context, userID int64) (*model.Reminder, error) {
	reminder, ok := r.reminders[userID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return reminder, nil
}

func (r *fakeEngagementRepo) UpsertReminder(_ context.Context, reminder *model.Reminder) error {
	r.reminders[reminder.UserID] = reminder
	return nil
}

func (r *fakeEngagementRepo) InsertRating(_ context.Context, userID int64, stars int) error {
	r.ratings = append(r.ratings, model.Rating{
		ID: int64(len(r.ratings) + 1), UserID: userID, Stars: stars, CreatedAt: time.Now(),
	})
	return nil
}

func (r *fakeEngagementRepo) ListDownloads(_ context.Context, userID int64, limit int) ([]model.Download, error) {
	rows := r.downloads[userID]
	out := []model.Download{}
	for i := len(rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, rows[i])
	}
	return out, nil
}
