package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"skillsphere/internal/models/db_models"
	"skillsphere/internal/repositories"
	"skillsphere/pkg/utils"
)

type AuthResult struct {
	Token     string
	Principal *Principal
}

type AccountServiceInterface interface {
	Register(ctx context.Context, username, password string) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Me(ctx context.Context, caller *Principal) (*Principal, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      TokenIssuer
	log         *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens TokenIssuer, log *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		log:         log.Named("accounts"),
	}
}

func (a *AccountService) Register(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, utils.NewValidationError("username and password are required")
	}

	existing, err := a.accountRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, storeError(a.log, "find user by username", err)
	}
	if existing != nil {
		return nil, utils.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		a.log.Error("hash password", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Username:     username,
		PasswordHash: hashedPassword,
	}
	if err := a.accountRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, utils.ErrUsernameTaken
		}
		return nil, storeError(a.log, "create user", err)
	}

	return a.issue(&Principal{ID: user.ID, DisplayName: user.Username, IsAdmin: user.IsAdmin, Source: SourceUser})
}

// Login checks users first, then admins. Every mismatch yields the same
// ErrInvalidCredentials.
func (a *AccountService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	startTime := time.Now()
	defer func() {
		a.log.Debug("login finished", zap.Duration("took", time.Since(startTime)))
	}()

	if username == "" || password == "" {
		return nil, utils.NewValidationError("username and password are required")
	}

	user, err := a.accountRepo.FindUserByUsername(ctx, username)
	if err != nil {
		return nil, storeError(a.log, "find user by username", err)
	}
	if user != nil {
		if !utils.MatchesPassword(password, user.PasswordHash) {
			return nil, utils.ErrInvalidCredentials
		}
		return a.issue(&Principal{ID: user.ID, DisplayName: user.Username, IsAdmin: user.IsAdmin, Source: SourceUser})
	}

	admin, err := a.accountRepo.FindAdminByUsername(ctx, username)
	if err != nil {
		return nil, storeError(a.log, "find admin by username", err)
	}
	if admin == nil || !utils.MatchesPassword(password, admin.PasswordHash) {
		return nil, utils.ErrInvalidCredentials
	}
	return a.issue(&Principal{ID: admin.ID, DisplayName: admin.Username, IsAdmin: true, Source: SourceAdmin})
}

func (a *AccountService) Me(_ context.Context, caller *Principal) (*Principal, error) {
	if caller == nil {
		return nil, utils.ErrUnauthenticated
	}
	return caller, nil
}

func (a *AccountService) issue(p *Principal) (*AuthResult, error) {
	token, err := a.tokens.Issue(p.Subject())
	if err != nil {
		a.log.Error("issue token", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return &AuthResult{Token: token, Principal: p}, nil
}
