package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schedulocity/internal/app/models"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hod123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "hod123"))
	assert.False(t, CheckPassword(hash, "HOD123"))
	assert.False(t, CheckPassword("not-a-hash", "hod123"))
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "secret", AccessTokenExp: time.Minute, TokenIssuer: "schedulocity"})
	user := &models.User{ID: 31, Username: "alice.johnson", Role: models.RoleHOD}

	token, expiresIn, err := svc.GenerateAccessToken(user, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 60, expiresIn)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(31), claims.UserID)
	assert.Equal(t, "hod", claims.Role)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "schedulocity", claims.Issuer)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "secret", AccessTokenExp: time.Minute})
	other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Minute})
	user := &models.User{ID: 1, Username: "john.doe", Role: models.RoleFaculty}

	foreign, _, err := other.GenerateAccessToken(user, "s")
	require.NoError(t, err)
	noSession, _, err := svc.GenerateAccessToken(user, "")
	require.NoError(t, err)

	expiredSvc := NewJWTService(JWTConfig{SecretKey: "secret", AccessTokenExp: time.Minute})
	expiredSvc.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, _, err := expiredSvc.GenerateAccessToken(user, "s")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty", token: "", wantErr: ErrInvalidToken},
		{name: "garbage", token: "abc.def.ghi", wantErr: ErrInvalidToken},
		{name: "wrong secret", token: foreign, wantErr: ErrInvalidToken},
		{name: "no session", token: noSession, wantErr: ErrInvalidToken},
		{name: "expired", token: expired, wantErr: ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateAndExtractClaims(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tok, err := ExtractBearerToken("Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	tok, err = ExtractBearerToken("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
