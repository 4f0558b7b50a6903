package auth

import (
	"testing"
	"time"

	"github.com/ndthanh/studentms/internal/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "studentms-test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Username: "jdoe",
		Role:     models.RoleStudent,
		IsActive: true,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(30 * time.Minute)

	token, expiresIn, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int((30 * time.Minute).Seconds()), expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jdoe", claims.Username)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "studentms-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testJWTService(-1 * time.Minute)

	token, _, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := testJWTService(30 * time.Minute)
	verifier := NewJWTService(JWTConfig{
		SecretKey:      "another-secret",
		AccessTokenExp: 30 * time.Minute,
		TokenIssuer:    "studentms-test",
	})

	token, _, err := issuer.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := testJWTService(30 * time.Minute)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_InvalidRole(t *testing.T) {
	svc := testJWTService(30 * time.Minute)

	user := testUser()
	user.Role = models.Role("SUPERUSER")
	token, _, err := svc.GenerateToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing prefix", header: "abc.def.ghi", wantErr: true},
		{name: "wrong scheme", header: "Basic abc.def.ghi", wantErr: true},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
