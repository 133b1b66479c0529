package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetpharm/vetpharm-pro/pkg/jwt"
)

const secret = "clave-de-prueba"

// Ida y vuelta: los claims propios sobreviven la firma y el parseo.
func TestGenerateParse(t *testing.T) {
	token, err := jwt.Generate(secret, "u-1", "ana@vetpharm.com", "Ana Morales", "Vet", "vetpharm-pro", 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ana@vetpharm.com", claims.Email)
	assert.Equal(t, "Ana Morales", claims.Name)
	assert.Equal(t, "Vet", claims.Role)
	assert.Equal(t, "vetpharm-pro", claims.Issuer)
	assert.Equal(t, "u-1", claims.Subject)
}

// Firma con otro secreto o token expirado: Parse falla.
func TestParse_Invalidos(t *testing.T) {
	token, err := jwt.Generate(secret, "u-1", "a@b.com", "A", "Admin", "vetpharm-pro", 15)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err)

	expirado, err := jwt.Generate(secret, "u-1", "a@b.com", "A", "Admin", "vetpharm-pro", -5)
	require.NoError(t, err)
	_, err = jwt.Parse(secret, expirado)
	assert.Error(t, err)

	_, err = jwt.Parse(secret, "no-es-un-jwt")
	assert.Error(t, err)
}

// Secret vacío se rechaza en ambas direcciones.
func TestSecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u", "e", "n", "Admin", "iss", 15)
	assert.Error(t, err)

	_, err = jwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}
