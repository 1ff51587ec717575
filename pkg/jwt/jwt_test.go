package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/blackwoods-compta/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 42, "admin", "Admin", "compta-test", 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID, "cada token lleva un jti")
	assert.NotNil(t, claims.ExpiresAt, "los tokens siempre expiran")
}

func TestGenerate_TokensDistintos(t *testing.T) {
	a, err := pkgjwt.Generate(testSecret, 1, "a", "Admin", "", 60)
	require.NoError(t, err)
	b, err := pkgjwt.Generate(testSecret, 1, "a", "Admin", "", 60)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "a", "Admin", "", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestGenerate_SinSecreto(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "a", "Admin", "", 60)
	assert.Error(t, err)
}
