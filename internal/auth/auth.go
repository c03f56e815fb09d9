// Package auth implements the simulated login gate and the session tokens
// handed out after it.
package auth

import (
	"context"
	"errors"
	"strings"

	"mvp90terminal/internal/catalog"
	"mvp90terminal/internal/intel"
)

// ErrMissingCredentials is returned when the username or password is blank.
var ErrMissingCredentials = errors.New("auth: missing username or password")

// MissingCredentialsMessage is the login form prompt for ErrMissingCredentials.
const MissingCredentialsMessage = "Please enter both username and password."

// DemoUsername identifies sessions opened through the demo login.
const DemoUsername = "demo"

// Identity is a successful login.
type Identity struct {
	Username string     `json:"username"`
	Role     intel.Role `json:"role"`
}

// Verifier checks a credential pair.
type Verifier interface {
	Verify(ctx context.Context, username, password string) error
}

// AnyCredentials accepts every non-blank pair after the configured latency.
type AnyCredentials struct {
	Latency catalog.Latency
}

// Verify implements Verifier.
func (a AnyCredentials) Verify(ctx context.Context, username, password string) error {
	if err := a.Latency.Wait(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return ErrMissingCredentials
	}
	return nil
}

// Authenticator turns credentials and a selected role into an identity.
type Authenticator struct {
	Verifier Verifier
}

// Login verifies the pair and grants role. An empty role selects Viewer.
// There is no lockout and no retry counting.
func (a Authenticator) Login(ctx context.Context, username, password, role string) (Identity, error) {
	r, err := intel.ParseRole(role)
	if err != nil {
		return Identity{}, err
	}
	v := a.Verifier
	if v == nil {
		v = AnyCredentials{}
	}
	if err := v.Verify(ctx, username, password); err != nil {
		return Identity{}, err
	}
	return Identity{Username: strings.TrimSpace(username), Role: r}, nil
}

// DemoLogin grants Admin immediately.
func DemoLogin() Identity {
	return Identity{Username: DemoUsername, Role: intel.RoleAdmin}
}
