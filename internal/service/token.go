package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL es la vida de la sesión: 30 días, después toca loguearse de nuevo.
// No hay refresh ni rotación.
const TokenTTL = 30 * 24 * time.Hour

// GenerateToken firma un JWT HS256 con el id del usuario como claim.
func GenerateToken(secret string, userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"iat":    now.Unix(),
		"exp":    now.Add(TokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// VerifyToken valida firma y expiración y devuelve el userId del claim.
// Cualquier problema (algoritmo raro, firma mala, expirado, claim ausente)
// termina en ErrUnauthenticated.
func VerifyToken(secret, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: token verification failed", ErrUnauthenticated)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("%w: invalid token claims", ErrUnauthenticated)
	}
	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: invalid userId in token", ErrUnauthenticated)
	}
	return userID, nil
}
