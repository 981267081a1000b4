package personal_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/persona/internal/core/personal"
	"github.com/taibuivan/persona/internal/platform/ctxutil"
)

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]int  `json:"meta"`
}

// asUser mimics the access guard for a fixed principal.
func asUser(userID int64, next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := ctxutil.WithPrincipal(request.Context(), ctxutil.Principal{UserID: userID})
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func serve(t *testing.T, handler http.Handler, method, target, body string) (int, envelope) {
	t.Helper()

	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	var decoded envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded), recorder.Body.String())
	return recorder.Code, decoded
}

func TestHandler_CRUD(t *testing.T) {
	service, _ := newService()
	router := asUser(4, personal.NewHandler(service).Routes())

	status, body := serve(t, router, http.MethodPost, "/", `{"name":"Home"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, personal.MessageCreated, body.Message)

	var created personal.Personal
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.Equal(t, int64(4), created.UserID)
	assert.Contains(t, string(body.Data), `"userId":4`)

	status, body = serve(t, router, http.MethodPut, "/1", `{"name":"Office"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, personal.MessageUpdated, body.Message)

	status, body = serve(t, router, http.MethodGet, "/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, personal.MessageFound, body.Message)
	assert.Contains(t, string(body.Data), `"name":"Office"`)

	status, body = serve(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, body.Meta["total"])

	status, body = serve(t, router, http.MethodDelete, "/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, personal.MessageDeleted, body.Message)

	status, body = serve(t, router, http.MethodGet, "/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Personal not found", body.Message)
}

func TestHandler_ListOwn(t *testing.T) {
	service, _ := newService()
	handler := personal.NewHandler(service).Routes()

	serve(t, asUser(1, handler), http.MethodPost, "/", `{"name":"Mine"}`)
	serve(t, asUser(2, handler), http.MethodPost, "/", `{"name":"Theirs"}`)

	status, body := serve(t, asUser(1, handler), http.MethodGet, "/user", "")
	require.Equal(t, http.StatusOK, status)

	var owned []personal.Personal
	require.NoError(t, json.Unmarshal(body.Data, &owned))
	require.Len(t, owned, 1)
	assert.Equal(t, "Mine", owned[0].Name)
}

func TestHandler_Failures(t *testing.T) {
	service, _ := newService()
	router := personal.NewHandler(service).Routes()

	status, body := serve(t, asUser(1, router), http.MethodPost, "/", `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Name is required", body.Message)

	status, _ = serve(t, asUser(1, router), http.MethodGet, "/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)

	// Mounted without the guard there is no principal to own the profile
	status, body = serve(t, router, http.MethodPost, "/", `{"name":"Home"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", body.Message)
}
