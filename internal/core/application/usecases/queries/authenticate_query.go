package queries

import (
	"errors"
	"strings"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/guard"
)

var ErrAuthenticateQueryIsNotConstructed = errors.New(
	"AuthenticateQuery must be created via NewAuthenticateQuery constructor",
)

// AuthenticateQuery checks a login credential pair. It is a query rather
// than a command: authentication reads state, it never changes it.
type AuthenticateQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateQuery creates a query to verify a credential pair.
func NewAuthenticateQuery(email, password string) (AuthenticateQuery, error) {
	query := AuthenticateQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setEmail(email),
		query.setPassword(password),
	); err != nil {
		return AuthenticateQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateQueryIsNotConstructed)
}

// Email returns the login email, lowercased.
func (q AuthenticateQuery) Email() string {
	return q.email
}

// Password returns the plaintext secret. Never logged, never persisted.
func (q AuthenticateQuery) Password() string {
	return q.password
}

func (q *AuthenticateQuery) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	q.email = strings.ToLower(email)
	return nil
}

func (q *AuthenticateQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	q.password = password
	return nil
}

// AuthenticateQueryResponse identifies the authenticated user. The caller
// issues the session token from these fields.
type AuthenticateQueryResponse struct {
	ID                    string `json:"id"`
	Username              string `json:"username"`
	Email                 string `json:"email"`
	Role                  string `json:"role"`
	EstimatedDeliveryTime int    `json:"estimatedDeliveryTime,omitempty"`
	IsAvailable           bool   `json:"isAvailable"`
}

// PasswordVerifier compares a plaintext secret against a stored one-way hash.
type PasswordVerifier interface {
	Verify(hash, password string) error
}
