package offering

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mentorly/mentorly_backend/internal/availability"
	"github.com/mentorly/mentorly_backend/internal/repo"
	entsvc "github.com/mentorly/mentorly_backend/internal/repo/mentorservice"
	entsess "github.com/mentorly/mentorly_backend/internal/repo/sessionrequest"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Kind           string
	Description    *string
	SessionMinutes int
}

type UpdateRequest struct {
	Description    *string
	SessionMinutes *int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, mentorID uuid.UUID) ([]*repo.MentorService, error)
	GetByID(ctx context.Context, serviceID uuid.UUID) (*repo.MentorService, error)
	Create(ctx context.Context, mentorID uuid.UUID, req CreateRequest) (*repo.MentorService, error)
	Update(ctx context.Context, mentorID, serviceID uuid.UUID, req UpdateRequest) (*repo.MentorService, error)
	Delete(ctx context.Context, mentorID, serviceID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type offeringService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &offeringService{db: db}
}

func (s *offeringService) List(ctx context.Context, mentorID uuid.UUID) ([]*repo.MentorService, error) {
	services, err := s.db.MentorService.Query().
		Where(entsvc.MentorID(mentorID), entsvc.DeletedAtIsNil()).
		Order(entsvc.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (s *offeringService) GetByID(ctx context.Context, serviceID uuid.UUID) (*repo.MentorService, error) {
	svc, err := s.db.MentorService.Query().
		Where(entsvc.ID(serviceID), entsvc.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return svc, nil
}

func (s *offeringService) Create(ctx context.Context, mentorID uuid.UUID, req CreateRequest) (*repo.MentorService, error) {
	if req.SessionMinutes < availability.MinWindowMinutes || req.SessionMinutes > availability.MaxWindowMinutes {
		return nil, ErrInvalidDuration
	}
	if err := entsvc.KindValidator(entsvc.Kind(req.Kind)); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, req.Kind)
	}

	c := s.db.MentorService.Create().
		SetMentorID(mentorID).
		SetKind(entsvc.Kind(req.Kind)).
		SetSessionMinutes(req.SessionMinutes)

	if req.Description != nil {
		c = c.SetDescription(*req.Description)
	}

	svc, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

func (s *offeringService) Update(ctx context.Context, mentorID, serviceID uuid.UUID, req UpdateRequest) (*repo.MentorService, error) {
	svc, err := s.owned(ctx, mentorID, serviceID)
	if err != nil {
		return nil, err
	}

	upd := s.db.MentorService.UpdateOne(svc)
	if req.Description != nil {
		upd = upd.SetDescription(*req.Description)
	}
	if req.SessionMinutes != nil {
		if *req.SessionMinutes < availability.MinWindowMinutes || *req.SessionMinutes > availability.MaxWindowMinutes {
			return nil, ErrInvalidDuration
		}
		upd = upd.SetSessionMinutes(*req.SessionMinutes)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes a service. Deletion is refused while any pending
// request exists, so mentees never lose a request they are waiting on.
func (s *offeringService) Delete(ctx context.Context, mentorID, serviceID uuid.UUID) error {
	svc, err := s.owned(ctx, mentorID, serviceID)
	if err != nil {
		return err
	}

	pending, err := s.db.SessionRequest.Query().
		Where(
			entsess.ServiceID(svc.ID),
			entsess.StatusEQ(entsess.StatusPending),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check pending requests: %w", err)
	}
	if pending {
		return ErrHasPendingRequests
	}

	return s.db.MentorService.UpdateOne(svc).
		SetDeletedAt(time.Now()).
		Exec(ctx)
}

func (s *offeringService) owned(ctx context.Context, mentorID, serviceID uuid.UUID) (*repo.MentorService, error) {
	svc, err := s.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc.MentorID != mentorID {
		return nil, ErrNotServiceOwner
	}
	return svc, nil
}
