// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/vc-tracker/internal/config"
	"github.com/MKhiriev/vc-tracker/internal/crypto"
	"github.com/MKhiriev/vc-tracker/internal/logger"
	"github.com/MKhiriev/vc-tracker/internal/store"
	"github.com/MKhiriev/vc-tracker/internal/utils"
	"github.com/MKhiriev/vc-tracker/internal/validators"
	"github.com/MKhiriev/vc-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserStore for persistence and a PasswordHasher for
// password digests.
type authService struct {
	// userStore is the users document.
	userStore store.UserStore

	// hasher produces and verifies password digests.
	hasher crypto.PasswordHasher

	// validator checks credentials on registration.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserStore
// and PasswordHasher and populated with token parameters from cfg.
func NewAuthService(userStore store.UserStore, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userStore:     userStore,
		hasher:        hasher,
		validator:     validators.NewCredentialsValidator(),
		tokenSignKey:  cfg.SecretKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided (wrapping the validators error) for a blank
//     username or a password outside the accepted length.
//   - ErrDuplicateUser if the username is taken. The document is left
//     untouched.
//   - a wrapped store.ErrStorage if the document cannot be read or written.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Str("username", credentials.Username).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	users, err := a.userStore.Load(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("error loading users: %w", err)
	}

	if _, exists := users[credentials.Username]; exists {
		log.Debug().Str("username", credentials.Username).Msg("username already taken")
		return models.User{}, ErrDuplicateUser
	}

	digest, err := a.hasher.Hash(credentials.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user := models.User{
		Username:     credentials.Username,
		PasswordHash: digest,
		CreatedAt:    a.now().UTC().Truncate(time.Second),
		VCRecords:    []models.VCRecord{},
	}
	users[user.Username] = user

	if err = a.userStore.Save(ctx, users); err != nil {
		return models.User{}, fmt.Errorf("error saving users: %w", err)
	}

	log.Info().Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Login authenticates an existing user and returns its username.
//
// An unknown username, an empty password and a wrong password all yield
// ErrInvalidCredentials so that callers cannot tell which one failed.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	log := logger.FromContext(ctx)

	users, err := a.userStore.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("error loading users: %w", err)
	}

	user, exists := users[credentials.Username]
	if !exists || !a.hasher.Verify(credentials.Password, user.PasswordHash) {
		log.Debug().Str("username", credentials.Username).Msg("login rejected")
		return "", ErrInvalidCredentials
	}

	return user.Username, nil
}

// CreateToken issues a signed JWT for username.
//
// The token is signed with the configured secret key, carries the configured
// issuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, username string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
