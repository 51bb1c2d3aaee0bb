package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidCredentials is returned by Login when the backend rejects the
// email/password pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the token and profile returned by a successful login.
type LoginResult struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

// Login authenticates and persists the session on success. On failure the
// stored session is left untouched.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var result LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &result)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return LoginResult{}, fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.Message)
		}
		return LoginResult{}, err
	}

	admin := result.Admin
	if err := c.session.save(result.Token, &admin); err != nil {
		return LoginResult{}, fmt.Errorf("persist session: %w", err)
	}
	return result, nil
}

// Logout clears the persisted token and profile; safe to call when already
// logged out.
func (c *Client) Logout() {
	c.session.clear()
}

// CurrentProfile fetches the authenticated admin's profile from the backend.
func (c *Client) CurrentProfile(ctx context.Context) (Admin, error) {
	var admin Admin
	err := c.do(ctx, http.MethodGet, "/admin/auth/current_profile", nil, nil, &admin)
	return admin, err
}
