package http_test

import (
	"testing"
	"time"

	httpadapter "shipdesk/internal/adapters/in/http"
	"shipdesk/internal/core/domain/model/principal"
	"shipdesk/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func sign(t *testing.T, secret string, claims httpadapter.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func claimsFor(user principal.User) httpadapter.Claims {
	return httpadapter.Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestNewTokenVerifier_EmptySecret(t *testing.T) {
	_, err := httpadapter.NewTokenVerifier("")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestTokenVerifier_Verify(t *testing.T) {
	verifier, err := httpadapter.NewTokenVerifier(testSecret)
	require.NoError(t, err)

	expired := claimsFor(customer)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	unknownRole := claimsFor(customer)
	unknownRole.Role = "ROOT"

	tests := []struct {
		name    string
		token   string
		want    principal.User
		wantErr bool
	}{
		{name: "valid", token: sign(t, testSecret, claimsFor(customer)), want: customer},
		{name: "wrong secret", token: sign(t, "other", claimsFor(customer)), wantErr: true},
		{name: "expired", token: sign(t, testSecret, expired), wantErr: true},
		{name: "unknown role", token: sign(t, testSecret, unknownRole), wantErr: true},
		{name: "garbage", token: "not-a-jwt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := verifier.Verify(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenVerifier_RejectsUnsignedToken(t *testing.T) {
	verifier, err := httpadapter.NewTokenVerifier(testSecret)
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claimsFor(customer)).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestClaims_Principal_FallsBackToSubject(t *testing.T) {
	claims := httpadapter.Claims{
		Role:             "admin",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "ada@example.com"},
	}

	user, err := claims.Principal()

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.True(t, user.IsAdmin())
}
