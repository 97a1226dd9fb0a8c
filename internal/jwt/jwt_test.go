package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/jwt"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &model.User{
		Email: "editor@academy.test",
		Name:  "Editor",
		Role:  model.RoleEditor,
	}

	access, refresh, err := jwt.GenerateTokens(user)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := jwt.ValidateToken(access)
	require.NoError(t, err)
	require.Equal(t, model.RoleEditor, claims["role"])
	require.Equal(t, "editor@academy.test", claims["email"])

	// the refresh token carries no role claim
	refreshClaims, err := jwt.ValidateToken(refresh)
	require.NoError(t, err)
	require.NotContains(t, refreshClaims, "role")
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	access, _, err := jwt.GenerateTokens(&model.User{Role: model.RoleViewer})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = jwt.ValidateToken(access)
	require.Error(t, err)
}
