package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// AuthenticateQueryHandler verifies login credentials against the stored
// password hash. An unknown email and a wrong password both fail with
// errs.ErrInvalidCredentials so the response never reveals which half was
// wrong.
type AuthenticateQueryHandler struct {
	db       *gorm.DB
	verifier PasswordVerifier
}

// NewAuthenticateQueryHandler creates a handler for credential checks.
func NewAuthenticateQueryHandler(db *gorm.DB, verifier PasswordVerifier) AuthenticateQueryHandler {
	return AuthenticateQueryHandler{db: db, verifier: verifier}
}

// Handle executes the credential check and returns the authenticated user.
func (h AuthenticateQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateQuery,
) (AuthenticateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateQueryResponse{}, err
	}

	var (
		resp         AuthenticateQueryResponse
		id           uuid.UUID
		passwordHash string
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			email,
			password_hash,
			role,
			estimated_delivery_time,
			is_available
		FROM users
		WHERE email = ?
	`, query.Email()).
		Row().
		Scan(
			&id,
			&resp.Username,
			&resp.Email,
			&passwordHash,
			&resp.Role,
			&resp.EstimatedDeliveryTime,
			&resp.IsAvailable,
		)
	if errors.Is(err, sql.ErrNoRows) {
		return AuthenticateQueryResponse{}, errs.ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticateQueryResponse{}, err
	}

	if err = h.verifier.Verify(passwordHash, query.Password()); err != nil {
		return AuthenticateQueryResponse{}, errs.ErrInvalidCredentials
	}

	resp.ID = id.String()
	return resp, nil
}
