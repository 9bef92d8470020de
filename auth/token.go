package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionTTL = 24 * time.Hour

// IssueToken signs a session JWT carrying the session id and role.
func IssueToken(sessionID, role string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"role":       role,
		"exp":        time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
