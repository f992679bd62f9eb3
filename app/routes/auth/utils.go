package auth

import (
	"time"

	"colegio-api/app/config"
	"colegio-api/app/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// JWTClaims carries the identity the middleware attaches to each
// request: id, rol and display name.
type JWTClaims struct {
	UserID string     `json:"user_id"`
	Rol    models.Rol `json:"rol"`
	Nombre string     `json:"nombre"`
	jwt.RegisteredClaims
}

func GenerateJWT(user *models.User) (string, error) {
	cfg := config.AppConfig.JWT
	claims := JWTClaims{
		UserID: user.ID,
		Rol:    user.Rol,
		Nombre: user.Nombre,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.Expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "colegio-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(cfg.Secret)
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return config.AppConfig.JWT.Secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
