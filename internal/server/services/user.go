// Package services contains server-side business logic. This file implements
// UserService, which orchestrates registration and login over encrypted
// credential payloads and issues session tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Werffios/AntilleanController/internal/common"
	"github.com/Werffios/AntilleanController/internal/cryptox"
	"github.com/Werffios/AntilleanController/internal/dbx"
	"github.com/Werffios/AntilleanController/internal/server/auth"
	"github.com/Werffios/AntilleanController/internal/server/config"
	"github.com/Werffios/AntilleanController/internal/server/hashing"
	"github.com/Werffios/AntilleanController/internal/server/models"
	"github.com/Werffios/AntilleanController/internal/server/repositories/repomanager"
)

// AuthResult bundles a freshly minted access token with the sanitized
// principal it was issued for.
type AuthResult struct {
	User        *models.User
	AccessToken string
}

// UserService provides authentication-related operations:
//   - Register: decrypt credentials, create the user, mint a token
//   - Login: decrypt credentials, verify the password, mint a token
//   - GetUserByID: resolve the principal behind a verified token
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	codec                 *cryptox.Codec
	hasher                hashing.PasswordHasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories, the credential
// codec, the password hasher, and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, codec *cryptox.Codec, hasher hashing.PasswordHasher, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		codec:                 codec,
		hasher:                hasher,
		jwtSecret:             []byte(cfg.JWTSecret),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user from encrypted credential fields and returns
// the sanitized user with an access token. A registered email (compared
// case-insensitively) yields common.ErrDuplicateEmail; a bad envelope
// propagates per the codec's configured mode.
func (s *UserService) Register(ctx context.Context, name, emailEnvelope, passwordEnvelope string) (*AuthResult, error) {

	email, password, err := s.decryptCredentials(emailEnvelope, passwordEnvelope)
	if err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var created *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByEmail(ctx, email)
		if err == nil {
			return common.ErrDuplicateEmail
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		created, err = repo.Create(ctx, &models.User{
			Name:         name,
			Email:        email,
			PasswordHash: digest,
		})
		return err
	})
	if err != nil {
		// ErrDuplicateEmail passes through, both from the pre-check and
		// from the unique index when two registrations race.
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, common.ErrorInternal
	}

	token, err := s.generateAccessToken(created.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{User: created.Sanitized(), AccessToken: token}, nil
}

// Login verifies encrypted credentials and returns the sanitized user with a
// fresh access token. Unknown email and wrong password are indistinguishable
// to the caller: both are common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, emailEnvelope, passwordEnvelope string) (*AuthResult, error) {

	email, password, err := s.decryptCredentials(emailEnvelope, passwordEnvelope)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(user.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{User: user.Sanitized(), AccessToken: token}, nil
}

// GetUserByID resolves the principal for an authenticated request.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// --- helpers below ---

func (s *UserService) decryptCredentials(emailEnvelope, passwordEnvelope string) (email, password string, err error) {
	email, err = s.codec.Decrypt(emailEnvelope)
	if err != nil {
		return "", "", err
	}
	password, err = s.codec.Decrypt(passwordEnvelope)
	if err != nil {
		return "", "", err
	}
	return normalizeEmail(email), password, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) generateAccessToken(userID int64) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.tokenValidityDuration)
}
