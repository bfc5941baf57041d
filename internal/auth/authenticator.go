package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/zaryabali001/roommate/internal/models"
)

var (
	ErrMissingEmail  = errors.New("email is required")
	ErrNoSessionUser = errors.New("login did not attach a user")
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping in real credential checks later
// without changing the service layer code.
type Authenticator interface {
	// Authenticate logs the credentials in and returns the session user.
	Authenticate(ctx context.Context, creds models.Credentials) (models.User, error)

	// ValidateCredential checks the credentials are well formed before any login attempt.
	ValidateCredential(creds models.Credentials) error
}

// Sessions is the part of the store the stub authenticator drives.
type Sessions interface {
	Login(ctx context.Context, creds models.Credentials)
	CurrentUser() (models.User, bool)
}

// StubAuthenticator accepts any well-formed credentials and attaches the
// store's designated user. Passwords are never checked.
type StubAuthenticator struct {
	sessions Sessions
}

// NewStubAuthenticator creates an authenticator logging in through sessions.
func NewStubAuthenticator(sessions Sessions) *StubAuthenticator {
	return &StubAuthenticator{sessions: sessions}
}

// ValidateCredential only requires an email to be present.
func (a *StubAuthenticator) ValidateCredential(creds models.Credentials) error {
	if strings.TrimSpace(creds.Email) == "" {
		return ErrMissingEmail
	}
	return nil
}

// Authenticate logs in and returns whichever user the store attached.
func (a *StubAuthenticator) Authenticate(ctx context.Context, creds models.Credentials) (models.User, error) {
	if err := a.ValidateCredential(creds); err != nil {
		return models.User{}, err
	}
	a.sessions.Login(ctx, creds)
	user, ok := a.sessions.CurrentUser()
	if !ok {
		return models.User{}, ErrNoSessionUser
	}
	return user, nil
}
