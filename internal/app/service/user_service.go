package service

import (
	"context"

	"learning_iq/internal/common"
	"learning_iq/internal/domain/model"
	"learning_iq/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// UpdateProfile applies a partial update. callerID is the authenticated
// identity when one was presented; it must match the target.
func (s *UserService) UpdateProfile(ctx context.Context, callerID *int64, targetID int64, upd model.ProfileUpdate) error {
	if callerID != nil && *callerID != targetID {
		return common.ErrForbidden
	}
	if upd.IsEmpty() {
		return nil
	}
	return s.userRepo.UpdateProfile(ctx, targetID, upd)
}
