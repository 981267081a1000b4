package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/persona/internal/platform/ctxutil"
	"github.com/taibuivan/persona/internal/platform/middleware"
	"github.com/taibuivan/persona/internal/platform/sec"
)

// codecVerifier decodes with a fixed access secret and counts invocations.
type codecVerifier struct {
	codec  *sec.TokenCodec
	secret sec.Secret
	calls  int
}

func (verifier *codecVerifier) VerifyAccessToken(token string) (*sec.Claims, error) {
	verifier.calls++
	return verifier.codec.Decode(token, verifier.secret)
}

func newVerifier(t *testing.T) *codecVerifier {
	t.Helper()
	secret, err := sec.NewSecret(sec.KindAccess, "access-secret")
	require.NoError(t, err)
	return &codecVerifier{codec: sec.NewTokenCodec(), secret: secret}
}

// guarded returns a handler that echoes the principal it sees.
func guarded(verifier middleware.AccessTokenVerifier, seen *ctxutil.Principal) http.Handler {
	return middleware.Authenticate(verifier)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		*seen, _ = ctxutil.GetPrincipal(request.Context())
		writer.WriteHeader(http.StatusNoContent)
	}))
}

const unauthorizedBody = `{"message":"Unauthorized","data":null}`

func TestAuthenticate_RejectsWithoutCallingVerifier(t *testing.T) {
	headers := []struct {
		name  string
		value string
	}{
		{"absent", ""},
		{"wrong_scheme", "Basic abc"},
		{"no_token", "Bearer"},
		{"empty_token", "Bearer "},
		{"three_parts", "Bearer a b"},
	}

	for _, tt := range headers {
		t.Run(tt.name, func(t *testing.T) {
			verifier := newVerifier(t)
			var principal ctxutil.Principal

			request := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			if tt.value != "" {
				request.Header.Set("Authorization", tt.value)
			}
			recorder := httptest.NewRecorder()

			guarded(verifier, &principal).ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.JSONEq(t, unauthorizedBody, recorder.Body.String())
			assert.Zero(t, verifier.calls)
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	verifier := newVerifier(t)
	var principal ctxutil.Principal

	request := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	request.Header.Set("Authorization", "Bearer invalid.token.value")
	recorder := httptest.NewRecorder()

	guarded(verifier, &principal).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, unauthorizedBody, recorder.Body.String())
	assert.Equal(t, 1, verifier.calls)
}

func TestAuthenticate_ExpiredAndForeignTokensLookTheSame(t *testing.T) {
	verifier := newVerifier(t)
	refresh, err := sec.NewSecret(sec.KindRefresh, "refresh-secret")
	require.NoError(t, err)

	expired, err := verifier.codec.Encode(sec.Claims{UserID: 7}, verifier.secret, -time.Minute)
	require.NoError(t, err)
	foreign, err := verifier.codec.Encode(sec.Claims{UserID: 7}, refresh, time.Minute)
	require.NoError(t, err)

	for _, token := range []string{expired, foreign} {
		var principal ctxutil.Principal
		request := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()

		guarded(verifier, &principal).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.JSONEq(t, unauthorizedBody, recorder.Body.String())
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	verifier := newVerifier(t)
	token, err := verifier.codec.Encode(sec.Claims{UserID: 7}, verifier.secret, time.Minute)
	require.NoError(t, err)

	var principal ctxutil.Principal
	request := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	request.Header.Set("Authorization", "bearer "+token)
	recorder := httptest.NewRecorder()

	guarded(verifier, &principal).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, int64(7), principal.UserID)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "missing_header", middleware.Outcome(sec.ErrMissingHeader))
	assert.Equal(t, "expired", middleware.Outcome(sec.ErrExpired))
	assert.Equal(t, "invalid_signature", middleware.Outcome(sec.ErrInvalidSignature))
	assert.Equal(t, "malformed", middleware.Outcome(sec.ErrMalformedToken))
}
