package service

import (
	"context"
	"strings"

	"forumflow/internal/auth"
	"forumflow/internal/models"
	"forumflow/internal/repository"
)

type UserService interface {
	SyncUser(ctx context.Context, identity auth.Identity) error
	GetUser(ctx context.Context, uid string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	MakeAdmin(ctx context.Context, uid string) error
	SetMembership(ctx context.Context, uid, membership string) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// SyncUser upserts the verified identity into the user directory. The
// user record is a precondition for all downstream authorization, so
// callers fail the request when this errors.
func (s *userService) SyncUser(ctx context.Context, identity auth.Identity) error {
	name := identity.Name
	if name == "" {
		// Fall back to the local part of the email.
		if at := strings.Index(identity.Email, "@"); at > 0 {
			name = identity.Email[:at]
		} else {
			name = identity.Email
		}
	}

	return s.userRepo.Upsert(ctx, identity.UID, identity.Email, name)
}

func (s *userService) GetUser(ctx context.Context, uid string) (*models.User, error) {
	return s.userRepo.GetByUID(ctx, uid)
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) MakeAdmin(ctx context.Context, uid string) error {
	return s.userRepo.SetRole(ctx, uid, models.RoleAdmin)
}

func (s *userService) SetMembership(ctx context.Context, uid, membership string) error {
	return s.userRepo.SetMembership(ctx, uid, membership)
}
