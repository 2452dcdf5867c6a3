package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"skillsphere/internal/repositories"
	mem "skillsphere/pkg/memcache"
	"skillsphere/pkg/metrics"
	"skillsphere/pkg/utils"
)

type PrincipalSource string

const (
	SourceUser  PrincipalSource = "user"
	SourceAdmin PrincipalSource = "admin"
)

// Principal is the resolved identity of a request. It does not grant access
// to anything by itself.
type Principal struct {
	ID          uint
	DisplayName string
	IsAdmin     bool
	Source      PrincipalSource
}

// Subject is the token subject for p.
func (p *Principal) Subject() string {
	return strconv.FormatUint(uint64(p.ID), 10)
}

// TokenIssuer is the part of utils.TokenService the services depend on.
type TokenIssuer interface {
	Issue(principalID string) (string, error)
	Verify(token string) (string, error)
	ExpiresAt(token string) (time.Time, error)
}

type IdentityServiceInterface interface {
	// Resolve returns nil, nil when the header does not identify anyone.
	Resolve(ctx context.Context, authorizationHeader string) (*Principal, error)
	Revoke(ctx context.Context, authorizationHeader string) error
}

type IdentityService struct {
	accounts repositories.AccountRepository
	tokens   TokenIssuer
	revoked  mem.RevokedTokenStore
	log      *zap.Logger
}

func NewIdentityService(accounts repositories.AccountRepository, tokens TokenIssuer,
	revoked mem.RevokedTokenStore, log *zap.Logger) IdentityServiceInterface {
	return &IdentityService{
		accounts: accounts,
		tokens:   tokens,
		revoked:  revoked,
		log:      log.Named("identity"),
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

func (s *IdentityService) Resolve(ctx context.Context, authorizationHeader string) (*Principal, error) {
	token, ok := BearerToken(authorizationHeader)
	if !ok {
		if authorizationHeader != "" {
			metrics.IdentityRejections.WithLabelValues("scheme").Inc()
		}
		return nil, nil
	}

	if s.revoked.IsRevoked(token) {
		metrics.IdentityRejections.WithLabelValues("revoked").Inc()
		return nil, nil
	}

	subject, err := s.tokens.Verify(token)
	if err != nil {
		metrics.IdentityRejections.WithLabelValues("verify").Inc()
		s.log.Debug("token rejected", zap.Error(err))
		return nil, nil
	}

	id, err := strconv.ParseUint(subject, 10, 0)
	if err != nil || id == 0 {
		metrics.IdentityRejections.WithLabelValues("subject").Inc()
		return nil, nil
	}

	user, err := s.accounts.FindUserById(ctx, uint(id))
	if err != nil {
		return nil, storeError(s.log, "find user", err)
	}
	admin, err := s.accounts.FindAdminById(ctx, uint(id))
	if err != nil {
		return nil, storeError(s.log, "find admin", err)
	}

	switch {
	case user != nil && admin != nil:
		// The subject carries no source, so a shared id cannot be attributed.
		metrics.IdentityRejections.WithLabelValues("ambiguous_subject").Inc()
		s.log.Error("user and admin share an id", zap.Uint("id", uint(id)))
		return nil, nil
	case user != nil:
		return &Principal{ID: user.ID, DisplayName: user.Username, IsAdmin: user.IsAdmin, Source: SourceUser}, nil
	case admin != nil:
		return &Principal{ID: admin.ID, DisplayName: admin.Username, IsAdmin: true, Source: SourceAdmin}, nil
	}

	metrics.IdentityRejections.WithLabelValues("unknown_subject").Inc()
	return nil, nil
}

// Revoke blocks the bearer token until its own expiry.
func (s *IdentityService) Revoke(_ context.Context, authorizationHeader string) error {
	token, ok := BearerToken(authorizationHeader)
	if !ok {
		return utils.ErrUnauthenticated
	}

	until, err := s.tokens.ExpiresAt(token)
	if err != nil {
		return err
	}

	s.revoked.Revoke(token, until)
	return nil
}
