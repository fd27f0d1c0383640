package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mentorly/mentorly_backend/internal/repo"
	entuser "github.com/mentorly/mentorly_backend/internal/repo/user"
)

type UpdateProfileRequest struct {
	FirstName *string
	LastName  *string
	Timezone  *string // IANA name
}

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*repo.User, error)
}

type userService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &userService{db: db}
}

// GetByID retrieves a user by ID, excluding soft-deleted users.
func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(
			entuser.ID(id),
			entuser.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}

// UpdateProfile changes name and timezone. A timezone change shifts how
// the user sees every schedule; stored rows stay in the storage zone and
// are only rendered differently.
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*repo.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := s.db.User.UpdateOne(u)
	if req.FirstName != nil {
		if len(*req.FirstName) == 0 || len(*req.FirstName) > 100 {
			return nil, ErrInvalidName
		}
		upd = upd.SetFirstName(*req.FirstName)
	}
	if req.LastName != nil {
		if len(*req.LastName) == 0 || len(*req.LastName) > 100 {
			return nil, ErrInvalidName
		}
		upd = upd.SetLastName(*req.LastName)
	}
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, ErrInvalidTimezone
		}
		upd = upd.SetTimezone(*req.Timezone)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}
