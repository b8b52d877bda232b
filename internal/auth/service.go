// Package auth implements the login exchange on top of the api client and
// the session store: it is the only code that creates or destroys a
// session.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/portalesuite/portale-client/internal/api"
	"github.com/portalesuite/portale-client/internal/common"
	"github.com/portalesuite/portale-client/internal/session"
)

// Service exposes the authentication operations the CLI needs.
type Service interface {
	// Login exchanges credentials for a session and persists it.
	Login(ctx context.Context, email, password string) (*session.User, error)

	// Logout destroys the local session.
	Logout(ctx context.Context)

	// CurrentUser returns the stored profile snapshot, nil when logged out.
	CurrentUser(ctx context.Context) *session.User
}

type service struct {
	api   *api.Client
	store session.Store
}

// NewService binds the auth flow to an api client and a session store.
func NewService(apiClient *api.Client, store session.Store) Service {
	return &service{api: apiClient, store: store}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	User      session.User `json:"user"`
}

// Login POSTs the credentials without auth, decodes the issued token and
// profile from the success envelope, and hands the whole session to the
// store. The raw password never gets persisted.
func (s *service) Login(ctx context.Context, email, password string) (*session.User, error) {
	res := s.api.Do(ctx, "/auth/login", api.RequestOptions{
		Method: http.MethodPost,
		Body:   loginRequest{Email: email, Password: password},
		NoAuth: true,
	})

	if !res.OK {
		switch {
		case res.Status == 0:
			return nil, fmt.Errorf("%w: %s", common.ErrUnavailable, res.Message)
		case res.Status == http.StatusUnauthorized || res.Status == http.StatusForbidden:
			return nil, fmt.Errorf("%w: %s", common.ErrUnauthorized, res.Message)
		default:
			return nil, errors.New(res.Message)
		}
	}

	payload, err := api.Decode[loginResponse](res)
	if err != nil {
		return nil, err
	}
	if payload.Token == "" {
		return nil, common.ErrBadPayload
	}

	sess := session.Session{
		Credential: session.Credential{Token: payload.Token, Scheme: payload.TokenType},
		User:       payload.User,
	}
	s.store.Save(ctx, sess)

	return &payload.User, nil
}

// Logout drops the local session. The backend token stays valid until it
// expires server-side; revocation is not part of the current contract.
func (s *service) Logout(ctx context.Context) {
	s.store.Logout(ctx)
}

func (s *service) CurrentUser(ctx context.Context) *session.User {
	return s.store.User(ctx)
}
