package service

import (
	"context"

	"learning_iq/internal/domain/model"
	"learning_iq/internal/domain/repository"
)

type CatalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) Subjects(ctx context.Context) ([]model.Subject, error) {
	return s.catalogRepo.ListSubjects(ctx)
}

func (s *CatalogService) TopicsBySubject(ctx context.Context, subjectID int64) ([]model.Topic, error) {
	return s.catalogRepo.ListTopicsBySubject(ctx, subjectID)
}

func (s *CatalogService) TopicsWithQuizzes(ctx context.Context) ([]model.TopicWithQuiz, error) {
	return s.catalogRepo.ListTopicsWithQuizzes(ctx)
}
