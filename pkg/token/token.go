package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios del portal.
// El token solo transporta la referencia a la sesión persistida: el servidor
// valida además la fila en el repositorio, de modo que un logout invalida el
// token aunque su exp siga vigente.
type Claims struct {
	jwt.RegisteredClaims
	SessionID  string `json:"session_id"`
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
}

// Generate genera un token HS256 firmado que referencia la sesión.
// expiresAt debe coincidir con el ExpiresAt de la sesión persistida.
func Generate(secret, sessionID, customerID, email, issuer string, expiresAt time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   customerID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		SessionID:  sessionID,
		CustomerID: customerID,
		Email:      email,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse valida el token y devuelve sessionID, customerID y email.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (sessionID, customerID, email string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("token: secret vacío")
	}
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	return claims.SessionID, claims.CustomerID, claims.Email, nil
}
