package jwt_test

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddik-sports/ddik-api/pkg/jwt"
)

const testSecret = "segredo-de-teste-com-32-bytes!!!"

func TestGenerateAndParse(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "gerente", "ddik-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "gerente", role)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "cliente", "ddik-api", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestParse_SecretErrado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "admin", "ddik-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("outro-segredo", token)
	assert.Error(t, err)
}

func TestParse_TokenAdulterado(t *testing.T) {
	token, err := jwt.Generate(testSecret, "user-1", "cliente", "ddik-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, token+"x")
	assert.Error(t, err)
}

func TestGenerate_SecretVazio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "admin", "ddik-api", 60)
	assert.Error(t, err)
}
