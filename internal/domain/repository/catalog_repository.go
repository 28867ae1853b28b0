package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"learning_iq/internal/common"
	"learning_iq/internal/domain/model"
)

type CatalogRepository interface {
	ListSubjects(ctx context.Context) ([]model.Subject, error)
	ListTopicsBySubject(ctx context.Context, subjectID int64) ([]model.Topic, error)
	ListTopics(ctx context.Context) ([]model.Topic, error)
	FindTopicByID(ctx context.Context, id int64) (*model.Topic, error)
	ListTopicsWithQuizzes(ctx context.Context) ([]model.TopicWithQuiz, error)
}

type pgCatalogRepository struct {
	db *sql.DB
}

func NewPgCatalogRepository(db *sql.DB) CatalogRepository {
	return &pgCatalogRepository{db: db}
}

func (r *pgCatalogRepository) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	query := `SELECT id, name, slug, COALESCE(description, ''), estimated_weeks FROM subjects ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgCatalogRepository.ListSubjects: %w", err)
	}
	defer rows.Close()

	subjects := []model.Subject{}
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.EstimatedWeeks); err != nil {
			return nil, fmt.Errorf("pgCatalogRepository.ListSubjects: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCatalogRepository.ListSubjects: %w", err)
	}
	return subjects, nil
}

const topicColumns = `id, name, slug, subject_id, difficulty, prerequisites, estimated_time_mins, week_number`

func (r *pgCatalogRepository) ListTopicsBySubject(ctx context.Context, subjectID int64) ([]model.Topic, error) {
	query := `SELECT ` + topicColumns + ` FROM topics WHERE subject_id = $1 ORDER BY week_number, id`
	rows, err := r.db.QueryContext(ctx, query, subjectID)
	if err != nil {
		return nil, fmt.Errorf("pgCatalogRepository.ListTopicsBySubject: %w", err)
	}
	defer rows.Close()
	return scanTopics(rows, "ListTopicsBySubject")
}

func (r *pgCatalogRepository) ListTopics(ctx context.Context) ([]model.Topic, error) {
	query := `SELECT ` + topicColumns + ` FROM topics ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgCatalogRepository.ListTopics: %w", err)
	}
	defer rows.Close()
	return scanTopics(rows, "ListTopics")
}

func scanTopics(rows *sql.Rows, op string) ([]model.Topic, error) {
	topics := []model.Topic{}
	for rows.Next() {
		var t model.Topic
		var prereqs []byte
		err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.SubjectID, &t.Difficulty,
			&prereqs, &t.EstimatedTimeMins, &t.WeekNumber)
		if err != nil {
			return nil, fmt.Errorf("pgCatalogRepository.%s: %w", op, err)
		}
		if err := json.Unmarshal(prereqs, &t.Prerequisites); err != nil {
			return nil, fmt.Errorf("pgCatalogRepository.%s: decode prerequisites: %w", op, err)
		}
		if t.Prerequisites == nil {
			t.Prerequisites = []int64{}
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCatalogRepository.%s: %w", op, err)
	}
	return topics, nil
}

func (r *pgCatalogRepository) FindTopicByID(ctx context.Context, id int64) (*model.Topic, error) {
	query := `SELECT ` + topicColumns + ` FROM topics WHERE id = $1`
	t := &model.Topic{}
	var prereqs []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Slug, &t.SubjectID, &t.Difficulty,
		&prereqs, &t.EstimatedTimeMins, &t.WeekNumber,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgCatalogRepository.FindTopicByID: %w", err)
	}
	if err := json.Unmarshal(prereqs, &t.Prerequisites); err != nil {
		return nil, fmt.Errorf("pgCatalogRepository.FindTopicByID: decode prerequisites: %w", err)
	}
	if t.Prerequisites == nil {
		t.Prerequisites = []int64{}
	}
	return t, nil
}

// ListTopicsWithQuizzes joins every topic with its subject name and attaches
// the quiz question list, empty when no quiz row exists.
func (r *pgCatalogRepository) ListTopicsWithQuizzes(ctx context.Context) ([]model.TopicWithQuiz, error) {
	query := `
		SELECT t.id, t.name, t.slug, t.subject_id, s.name, t.estimated_time_mins, t.week_number
		FROM topics t JOIN subjects s ON t.subject_id = s.id
		ORDER BY s.id, t.week_number`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgCatalogRepository.ListTopicsWithQuizzes: %w", err)
	}
	defer rows.Close()

	topics := []model.TopicWithQuiz{}
	for rows.Next() {
		var t model.TopicWithQuiz
		err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.SubjectID, &t.SubjectName,
			&t.EstimatedTimeMins, &t.WeekNumber)
		if err != nil {
			return nil, fmt.Errorf("pgCatalogRepository.ListTopicsWithQuizzes: %w", err)
		}
		t.Quiz = []model.Question{}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCatalogRepository.ListTopicsWithQuizzes: %w", err)
	}

	quizRows, err := r.db.QueryContext(ctx, `SELECT topic_id, questions FROM quizzes`)
	if err != nil {
		return nil, fmt.Errorf("pgCatalogRepository.ListTopicsWithQuizzes: %w", err)
	}
	defer quizRows.Close()

	quizByTopic := map[int64][]model.Question{}
	for quizRows.Next() {
		var topicID int64
		var questions []byte
		if err := quizRows.Scan(&topicID, &questions); err != nil {
			return nil, fmt.Errorf("pgCatalogRepository.ListTopicsWithQuizzes: %w", err)
		}
		var decoded []model.Question
		if err := json.Unmarshal(questions, &decoded); err != nil {
			return nil, fmt.Errorf("pgCatalogRepository.ListTopicsWithQuizzes: decode questions: %w", err)
		}
		quizByTopic[topicID] = decoded
	}
	if err := quizRows.Err(); err != nil {
		return nil, fmt.Errorf("pgCatalogRepository.ListTopicsWithQuizzes: %w", err)
	}

	for i := range topics {
		if quiz, ok := quizByTopic[topics[i].ID]; ok {
			topics[i].Quiz = quiz
		}
	}
	return topics, nil
}
