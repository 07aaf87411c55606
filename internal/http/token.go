package http

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/vscentrum/accountpagectl/internal/query"
)

var ErrMissingToken = fmt.Errorf("%w: no bearer token given", query.ErrMissingRequiredArgument)

// TokenFile is where a token is looked up when neither the flag nor the
// configuration carries one.
func TokenFile() (string, error) {
	prefix, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	return filepath.Join(prefix, "accountpage", "token"), nil
}

// ReadTokenFile returns an empty token, not an error, when the file does
// not exist.
func ReadTokenFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token file %s: %w", path, err)
	}

	return SanitizeToken(string(content)), nil
}

func SanitizeToken(token string) string {
	return strings.Trim(token, " \r\n\t")
}

// TokenSource resolves the bearer token: flag, then configuration, then the
// token file, then the prompt. File and Prompt are optional.
type TokenSource struct {
	Flag   string
	Config string
	File   string
	Prompt func() (string, error)
}

func (s TokenSource) Resolve() (string, error) {
	for _, candidate := range []string{s.Flag, s.Config} {
		if token := SanitizeToken(candidate); token != "" {
			return token, nil
		}
	}

	if s.File != "" {
		token, err := ReadTokenFile(s.File)
		if err != nil {
			return "", err
		}
		if token != "" {
			return token, nil
		}
	}

	if s.Prompt != nil {
		token, err := s.Prompt()
		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		if token = SanitizeToken(token); token != "" {
			return token, nil
		}
	}

	return "", ErrMissingToken
}

// TokenExpiry reads the exp claim of a JWT without verifying it. ok is
// false for opaque tokens and tokens without exp.
func TokenExpiry(token string) (expiry time.Time, ok bool) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	switch exp := claims["exp"].(type) {
	case float64:
		return time.Unix(int64(exp), 0), true
	case int64:
		return time.Unix(exp, 0), true
	default:
		return time.Time{}, false
	}
}
