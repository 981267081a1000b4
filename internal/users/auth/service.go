// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/taibuivan/persona/internal/platform/apperr"
	"github.com/taibuivan/persona/internal/platform/sec"
)

// Service implements the login, refresh and logout use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to credential checks or
// token rotation must be reviewed with the token service tests.
type Service struct {
	directory *Directory
	tokens    *TokenService
	denylist  TokenDenylist
}

// NewService constructs a new [Service]. A nil denylist means revocation is off.
func NewService(directory *Directory, tokens *TokenService, denylist TokenDenylist) *Service {
	if denylist == nil {
		denylist = NopDenylist{}
	}
	return &Service{directory: directory, tokens: tokens, denylist: denylist}
}

/*
Login verifies credentials and issues a token pair.

Returns:
  - *Session: The user plus its access and refresh tokens
  - error: apperr.NotFound("User") or apperr.BadRequest for bad credentials
*/
func (service *Service) Login(context context.Context, email, password string) (*Session, error) {
	user, err := service.directory.VerifyCredentials(context, email, password)
	if err != nil {
		return nil, err
	}

	return service.issuePair(user)
}

/*
Refresh exchanges a valid refresh token for a new token pair.

The subject is re-read from the directory, so the response reflects the
user's current state and a deleted user can no longer refresh. With a
denylist configured, the consumed token is revoked (rotation).

Returns:
  - *Session: Fresh token pair for the current user state
  - error: a sec token error, ErrSubjectNotFound, ErrTokenRevoked, or an
    internal failure
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (*Session, error) {
	claims, err := service.verifyRefresh(context, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := service.directory.FindByID(context, claims.UserID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user %d", ErrSubjectNotFound, claims.UserID)
		}
		return nil, err
	}

	session, err := service.issuePair(user)
	if err != nil {
		return nil, err
	}

	if err := service.revoke(context, claims); err != nil {
		return nil, err
	}

	return session, nil
}

/*
Logout revokes the presented refresh token.

Without a denylist the token is still validated, but it remains usable until
it expires; clients are expected to discard it.
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {
	claims, err := service.verifyRefresh(context, refreshToken)
	if err != nil {
		return err
	}

	return service.revoke(context, claims)
}

// IsTokenFailure reports whether err must be answered with a uniform 401.
func IsTokenFailure(err error) bool {
	for _, target := range []error{
		sec.ErrMissingHeader,
		sec.ErrMalformedToken,
		sec.ErrInvalidSignature,
		sec.ErrExpired,
		ErrSubjectNotFound,
		ErrTokenRevoked,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// # Helpers

func (service *Service) verifyRefresh(context context.Context, refreshToken string) (*sec.Claims, error) {
	claims, err := service.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if !service.denylist.Enabled() || claims.ID == "" {
		return claims, nil
	}

	revoked, err := service.denylist.IsRevoked(context, claims.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

func (service *Service) revoke(context context.Context, claims *sec.Claims) error {
	if !service.denylist.Enabled() || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	if err := service.denylist.Revoke(context, claims.ID, claims.ExpiresAt.Time); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (service *Service) issuePair(user *User) (*Session, error) {
	token, err := service.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := service.tokens.IssueRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &Session{User: user, Token: token, RefreshToken: refreshToken}, nil
}
