// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/vc-tracker/internal/config"
	"github.com/MKhiriev/vc-tracker/internal/crypto"
	"github.com/MKhiriev/vc-tracker/internal/logger"
	"github.com/MKhiriev/vc-tracker/internal/mock"
	"github.com/MKhiriev/vc-tracker/internal/store"
	"github.com/MKhiriev/vc-tracker/internal/validators"
	"github.com/MKhiriev/vc-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	SecretKey:     "test-secret",
	TokenIssuer:   "vc-tracker-test",
	TokenDuration: time.Hour,
	BcryptCost:    bcrypt.MinCost,
}

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

// newTestAuthSvc creates an authService backed by gomock store and hasher.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserStore, *mock.MockPasswordHasher) {
	t.Helper()
	mockStore := mock.NewMockUserStore(ctrl)
	mockHasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(mockStore, mockHasher, testAppConfig, logger.Nop()).(*authService)
	svc.now = func() time.Time { return fixedNow }

	return svc, mockStore, mockHasher
}

// newFileAuthSvc creates an authService over a real users document in a
// temp dir and real bcrypt hashing.
func newFileAuthSvc(t *testing.T) (AuthService, store.UserStore) {
	t.Helper()
	userStore := store.NewFileUserStore(filepath.Join(t.TempDir(), "users.json"), logger.Nop())
	hasher := crypto.NewBcryptHasher(bcrypt.MinCost)
	return NewAuthService(userStore, hasher, testAppConfig, logger.Nop()), userStore
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockStore, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// Arrange
	gomock.InOrder(
		mockStore.EXPECT().Load(ctx).Return(models.Users{}, nil),
		mockHasher.EXPECT().Hash("secret1").Return("digest", nil),
		mockStore.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, users models.Users) error {
				require.Contains(t, users, "alice")
				assert.Equal(t, "digest", users["alice"].PasswordHash)
				assert.NotNil(t, users["alice"].VCRecords)
				assert.Empty(t, users["alice"].VCRecords)
				return nil
			},
		),
	)

	// Act
	user, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "secret1"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "digest", user.PasswordHash)
	assert.Equal(t, fixedNow, user.CreatedAt)
}

func TestAuthService_RegisterUser_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockStore, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// Arrange: no Hash and no Save are expected
	mockStore.EXPECT().Load(ctx).Return(models.Users{
		"alice": {Username: "alice", PasswordHash: "old"},
	}, nil)

	// Act
	_, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "another1"})

	// Assert
	require.ErrorIs(t, err, ErrDuplicateUser)
}

func TestAuthService_RegisterUser_InvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		credentials models.Credentials
		wantErr     error
	}{
		{"blank username", models.Credentials{Username: " ", Password: "secret1"}, validators.ErrInvalidUsername},
		{"short password", models.Credentials{Username: "alice", Password: "12345"}, validators.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAuthSvc(t, ctrl)

			_, err := svc.RegisterUser(context.Background(), tt.credentials)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_RegisterUser_StorageErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("load fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockStore, _ := newTestAuthSvc(t, ctrl)
		mockStore.EXPECT().Load(ctx).Return(nil, store.ErrStorage)

		_, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "secret1"})
		assert.ErrorIs(t, err, store.ErrStorage)
	})

	t.Run("save fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockStore, mockHasher := newTestAuthSvc(t, ctrl)
		mockStore.EXPECT().Load(ctx).Return(models.Users{}, nil)
		mockHasher.EXPECT().Hash(gomock.Any()).Return("digest", nil)
		mockStore.EXPECT().Save(ctx, gomock.Any()).Return(store.ErrStorage)

		_, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "secret1"})
		assert.ErrorIs(t, err, store.ErrStorage)
	})
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	users := models.Users{"alice": {Username: "alice", PasswordHash: "digest"}}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockStore, mockHasher := newTestAuthSvc(t, ctrl)
		mockStore.EXPECT().Load(ctx).Return(users, nil)
		mockHasher.EXPECT().Verify("secret1", "digest").Return(true)

		username, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, "alice", username)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockStore, mockHasher := newTestAuthSvc(t, ctrl)
		mockStore.EXPECT().Load(ctx).Return(users, nil)
		mockHasher.EXPECT().Verify("wrong", "digest").Return(false)

		_, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "wrong"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockStore, _ := newTestAuthSvc(t, ctrl)
		mockStore.EXPECT().Load(ctx).Return(users, nil)

		_, err := svc.Login(ctx, models.Credentials{Username: "mallory", Password: "secret1"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, mockStore, _ := newTestAuthSvc(t, ctrl)
		mockStore.EXPECT().Load(ctx).Return(nil, store.ErrStorage)

		_, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"})

		assert.ErrorIs(t, err, store.ErrStorage)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Username)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	other := NewAuthService(nil, nil, config.App{
		SecretKey:     "another-secret",
		TokenIssuer:   testAppConfig.TokenIssuer,
		TokenDuration: time.Hour,
	}, logger.Nop())
	foreign, err := other.CreateToken(ctx, "alice")
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", foreign.SignedString} {
		_, err := svc.ParseToken(ctx, raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	}
}

func TestAuthService_CreateToken_EmptyUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.CreateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ── With a real document ─────────────────────────────────────────────────────

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc, userStore := newFileAuthSvc(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	username, err := svc.Login(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	users, err := userStore.Load(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", users["alice"].PasswordHash)
}

func TestAuthService_RegisterTwice_KeepsOneEntry(t *testing.T) {
	svc, userStore := newFileAuthSvc(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "first-pw"})
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "second-pw"})
	require.ErrorIs(t, err, ErrDuplicateUser)

	users, err := userStore.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	// the original password still works
	_, err = svc.Login(ctx, models.Credentials{Username: "alice", Password: "first-pw"})
	assert.NoError(t, err)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newFileAuthSvc(t)
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, models.Credentials{Username: "alice", Password: "secret2"})
	_, unknownUser := svc.Login(ctx, models.Credentials{Username: "bob", Password: "secret1"})

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}
