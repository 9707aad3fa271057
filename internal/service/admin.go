package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tireshop/internal/entity"
	"tireshop/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// AdminService is the admin session workflow: credential verification and
// token minting, plus the one-time startup seeding of the administrator
// account.
type AdminService struct {
	adminRepo AdminRepository
	tokens    TokenIssuer
	logger    logger.Logger
}

func NewAdminService(
	adminRepo AdminRepository,
	tokens TokenIssuer,
	log logger.Logger,
) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		tokens:    tokens,
		logger:    log,
	}
}

// Login verifies the credentials and issues a bearer token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (as *AdminService) Login(
	ctx context.Context,
	username, password string,
) (string, int64, error) {
	const op = "service.admin.Login"
	log := as.logger.Ctx(ctx)

	admin, err := as.adminRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			return "", 0, entity.ErrInvalidCredentials
		}
		return "", 0, fmt.Errorf("%s: get admin: %w", op, err)
	}

	if err = bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash),
		[]byte(password),
	); err != nil {
		log.LogAttrs(ctx, logger.WarnLevel, "failed login attempt",
			logger.String("username", admin.Username),
		)
		return "", 0, entity.ErrInvalidCredentials
	}

	token, err := as.tokens.Issue(admin.Username, "ADMIN")
	if err != nil {
		return "", 0, fmt.Errorf("%s: issue token: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "admin logged in",
		logger.String("username", admin.Username),
	)

	return token, int64(as.tokens.TTL().Seconds()), nil
}

// Seed creates the administrator account on startup when both credentials
// are provided and no account with that username exists. A concurrent
// insert losing the unique-constraint race is treated as already seeded.
func (as *AdminService) Seed(ctx context.Context, username, password string) error {
	const op = "service.admin.Seed"
	log := as.logger.Ctx(ctx)

	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		log.LogAttrs(ctx, logger.InfoLevel, "admin seeding skipped, no credentials configured")
		return nil
	}

	_, err := as.adminRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, entity.ErrDataNotFound) {
		return fmt.Errorf("%s: lookup: %w", op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%s: hash password: %w", op, err)
	}

	if _, err = as.adminRepo.Create(ctx, username, string(hash)); err != nil {
		if errors.Is(err, entity.ErrConflictingData) {
			return nil
		}
		return fmt.Errorf("%s: create admin: %w", op, err)
	}

	log.LogAttrs(ctx, logger.InfoLevel, "administrator account seeded",
		logger.String("username", username),
	)

	return nil
}
