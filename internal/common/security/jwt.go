package security

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"learning_iq/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// GenerateToken issues the bearer token carried by clients. The payload
// mirrors the original scheme: user id, name, email and expiry.
func GenerateToken(userID int64, name, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"name":    name,
		"email":   email,
		"exp":     time.Now().Add(config.AppConfig.JWTExp).Unix(),
		"iat":     time.Now().Unix(),
		"jti":     uuid.NewString(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// GetUserIDFromClaims extracts the user id claim. Numeric claims come back
// from the decoder as float64 or json.Number depending on the path taken.
func GetUserIDFromClaims(claims jwt.MapClaims) (int64, error) {
	switch v := claims["user_id"].(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case json.Number:
		return v.Int64()
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, errors.New("user_id claim is missing or not numeric")
	}
}

func GetEmailFromClaims(claims jwt.MapClaims) (string, error) {
	email, ok := claims["email"].(string)
	if !ok {
		return "", errors.New("email claim is missing or not a string")
	}
	return email, nil
}
