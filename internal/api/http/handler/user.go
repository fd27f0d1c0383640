package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mentorly/mentorly_backend/internal/service/user"
	pasetotoken "github.com/mentorly/mentorly_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrInvalidName):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrInvalidTimezone):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/users/me
func (h *UserHandler) GetMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), claims.UserID)
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, u)
}

// PATCH /api/v1/users/me
func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Timezone  *string `json:"timezone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.svc.UpdateProfile(c.Context(), claims.UserID, user.UpdateProfileRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Timezone:  body.Timezone,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, result)
}
