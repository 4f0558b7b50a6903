package services

import (
	"context"
	"testing"
	"time"

	"github.com/ndthanh/studentms/internal/app/models"
	"github.com/ndthanh/studentms/internal/app/models/dto"
	"github.com/ndthanh/studentms/internal/pkg/apperrors"
	"github.com/ndthanh/studentms/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserStore is an in-memory UserStore.
type fakeUserStore struct {
	users            map[string]*models.User
	updatedPasswords map[int64]string
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	store := &fakeUserStore{
		users:            make(map[string]*models.User),
		updatedPasswords: make(map[int64]string),
	}
	for _, u := range users {
		store.users[u.Username] = u
	}
	return store
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) ChangePassword(_ context.Context, userID int64, verify func(currentHash string) error, newHash string) error {
	var user *models.User
	for _, u := range f.users {
		if u.ID == userID {
			user = u
			break
		}
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	// mirror the repository: verify against the stored hash, then replace it,
	// all within one call
	if err := verify(user.Password); err != nil {
		return err
	}
	user.Password = newHash
	f.updatedPasswords[userID] = newHash
	return nil
}

func testAuthService(t *testing.T, users ...*models.User) (AuthService, *fakeUserStore) {
	t.Helper()
	store := newFakeUserStore(users...)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: 30 * time.Minute,
		TokenIssuer:    "studentms-test",
	})
	return NewAuthService(store, jwtService, zerolog.Nop()), store
}

func activeUser(t *testing.T, id int64, username, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		ID:       id,
		Username: username,
		Password: hash,
		Role:     models.RoleStudent,
		IsActive: true,
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _ := testAuthService(t, activeUser(t, 1, "jdoe", "correct-pwd"))

	token, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "jdoe",
		Password: "correct-pwd",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := testAuthService(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := testAuthService(t, activeUser(t, 1, "jdoe", "correct-pwd"))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "jdoe",
		Password: "wrong-pwd",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	user := activeUser(t, 1, "jdoe", "correct-pwd")
	user.IsActive = false
	svc, _ := testAuthService(t, user)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "jdoe",
		Password: "correct-pwd",
	})
	assert.ErrorIs(t, err, apperrors.ErrInactiveAccount)
}

func TestLogin_InactiveUserWrongPassword(t *testing.T) {
	user := activeUser(t, 1, "jdoe", "correct-pwd")
	user.IsActive = false
	svc, _ := testAuthService(t, user)

	// bad credentials win over the inactive state
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "jdoe",
		Password: "wrong-pwd",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestChangePassword_Success(t *testing.T) {
	svc, store := testAuthService(t, activeUser(t, 1, "jdoe", "old-password"))

	err := svc.ChangePassword(context.Background(), 1, &dto.ChangePasswordRequest{
		CurrentPassword: "old-password",
		NewPassword:     "new-password",
	})
	require.NoError(t, err)

	newHash, ok := store.updatedPasswords[1]
	require.True(t, ok)
	assert.True(t, auth.CheckPassword(newHash, "new-password"))
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	svc, store := testAuthService(t, activeUser(t, 1, "jdoe", "old-password"))

	err := svc.ChangePassword(context.Background(), 1, &dto.ChangePasswordRequest{
		CurrentPassword: "not-the-password",
		NewPassword:     "new-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrIncorrectPassword)
	assert.Empty(t, store.updatedPasswords)
}

func TestChangePassword_VerifiesAgainstStoredHash(t *testing.T) {
	user := activeUser(t, 1, "jdoe", "first-password")
	svc, store := testAuthService(t, user)

	// first change succeeds and replaces the stored hash
	require.NoError(t, svc.ChangePassword(context.Background(), 1, &dto.ChangePasswordRequest{
		CurrentPassword: "first-password",
		NewPassword:     "second-password",
	}))

	// the original password no longer verifies; the check runs against the
	// hash current at the time of the change, not a copy read earlier
	err := svc.ChangePassword(context.Background(), 1, &dto.ChangePasswordRequest{
		CurrentPassword: "first-password",
		NewPassword:     "third-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrIncorrectPassword)
	assert.True(t, auth.CheckPassword(store.updatedPasswords[1], "second-password"))
}

func TestChangePassword_UnknownUser(t *testing.T) {
	svc, _ := testAuthService(t)

	err := svc.ChangePassword(context.Background(), 99, &dto.ChangePasswordRequest{
		CurrentPassword: "whatever-pwd",
		NewPassword:     "new-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetProfile(t *testing.T) {
	svc, _ := testAuthService(t, activeUser(t, 1, "jdoe", "pwd-12345"))

	user, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", user.Username)

	_, err = svc.GetProfile(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
