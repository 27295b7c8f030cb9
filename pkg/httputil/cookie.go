package httputil

import (
	"errors"
	"net/http"
	"strings"
)

const AuthCookieName = "auth_token"

// GetTokenFromCookie extracts the JWT token from the auth cookie
func GetTokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(AuthCookieName)
	if err != nil {
		return "", errors.New("auth cookie not found")
	}

	if cookie.Value == "" {
		return "", errors.New("auth cookie is empty")
	}

	return cookie.Value, nil
}

// GetTokenFromRequest prefers the cookie and falls back to the Authorization
// header ("Bearer <token>" or the raw token).
func GetTokenFromRequest(r *http.Request) (string, error) {
	token, err := GetTokenFromCookie(r)
	if err == nil && token != "" {
		return token, nil
	}

	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	if authHeader != "" {
		if strings.HasPrefix(authHeader, "Bearer ") {
			return strings.TrimSpace(authHeader[len("Bearer "):]), nil
		}
		return authHeader, nil
	}

	return "", errors.New("no auth token found in cookie or header")
}
