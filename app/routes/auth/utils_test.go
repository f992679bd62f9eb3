package auth

import (
	"testing"
	"time"

	"colegio-api/app/config"
	"colegio-api/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(expiry time.Duration) {
	config.AppConfig = &config.Config{
		JWT: config.JWTConfig{
			Secret: []byte("test-secret"),
			Expiry: expiry,
		},
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Contraseña123")
	require.NoError(t, err)
	assert.NotEqual(t, "Contraseña123", hash)

	assert.True(t, CheckPasswordHash("Contraseña123", hash))
	assert.False(t, CheckPasswordHash("contraseña123", hash))
	assert.False(t, CheckPasswordHash("", hash))

	// hashing is salted, two hashes of the same password differ
	hash2, err := HashPassword("Contraseña123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestJWTRoundTrip(t *testing.T) {
	setupTestConfig(4 * time.Hour)

	user := &models.User{
		ID:     "3f2f1a40-8f2e-4f7c-9a3b-1c2d3e4f5a6b",
		Nombre: "Ana García",
		Email:  "ana@colegio.edu",
		Rol:    models.RolProfesor,
	}

	token, err := GenerateJWT(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RolProfesor, claims.Rol)
	assert.Equal(t, "Ana García", claims.Nombre)
	assert.Equal(t, "colegio-api", claims.Issuer)
}

func TestValidateJWTRejects(t *testing.T) {
	setupTestConfig(4 * time.Hour)

	user := &models.User{ID: "x", Nombre: "X", Rol: models.RolAlumno}

	t.Run("garbage token", func(t *testing.T) {
		_, err := ValidateJWT("not.a.token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateJWT(user)
		require.NoError(t, err)

		config.AppConfig.JWT.Secret = []byte("otro-secret")
		_, err = ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		setupTestConfig(-time.Minute)
		token, err := GenerateJWT(user)
		require.NoError(t, err)

		_, err = ValidateJWT(token)
		assert.Error(t, err)
	})
}
