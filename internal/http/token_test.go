package http

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vscentrum/accountpagectl/internal/query"
)

func TestTokenSource_Resolve(t *testing.T) {
	dir := t.TempDir()
	tokenFile := filepath.Join(dir, "token")
	require.NoError(t, os.WriteFile(tokenFile, []byte("from-file\n"), 0600))

	prompt := func() (string, error) { return " from-prompt ", nil }
	failingPrompt := func() (string, error) { return "", errors.New("interrupt") }

	tests := []struct {
		name    string
		source  TokenSource
		want    string
		wantErr error
	}{
		{
			name:   "flag wins",
			source: TokenSource{Flag: "from-flag", Config: "from-config", File: tokenFile, Prompt: prompt},
			want:   "from-flag",
		},
		{
			name:   "config before file",
			source: TokenSource{Config: "from-config\n", File: tokenFile, Prompt: prompt},
			want:   "from-config",
		},
		{
			name:   "file before prompt",
			source: TokenSource{Flag: "  ", File: tokenFile, Prompt: prompt},
			want:   "from-file",
		},
		{
			name:   "missing file falls through to prompt",
			source: TokenSource{File: filepath.Join(dir, "nope"), Prompt: prompt},
			want:   "from-prompt",
		},
		{
			name:    "nothing",
			source:  TokenSource{File: filepath.Join(dir, "nope")},
			wantErr: ErrMissingToken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.source.Resolve()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := TokenSource{}.Resolve()
	assert.ErrorIs(t, err, query.ErrMissingRequiredArgument)

	_, err = TokenSource{Prompt: failingPrompt}.Resolve()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingToken)
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "vsc40075",
		"exp": exp.Unix(),
	}).SignedString([]byte("not-the-real-key"))
	require.NoError(t, err)

	got, ok := TokenExpiry(signed)
	assert.True(t, ok)
	assert.True(t, exp.Equal(got))

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, ok = TokenExpiry(noExp)
	assert.False(t, ok)

	_, ok = TokenExpiry("opaque-token")
	assert.False(t, ok)
}

func TestTokenFile(t *testing.T) {
	path, err := TokenFile()
	if err != nil {
		t.Skip("no user config dir")
	}
	assert.Equal(t, "token", filepath.Base(path))
	assert.Equal(t, "accountpage", filepath.Base(filepath.Dir(path)))
}
