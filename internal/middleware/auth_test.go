package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"job-board/internal/domain"
	"job-board/internal/service"
	"job-board/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *token.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := token.NewService(token.StaticSecret("middleware-test"))
	require.NoError(t, err)
	g := NewGuards(tokens)

	ok := func(c *gin.Context) {
		id, found := IdentityFrom(c)
		if !found {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	}

	r := gin.New()
	r.GET("/any", g.RequireAuthenticated(), ok)
	r.GET("/user", g.RequireUser(), ok)
	r.GET("/company", g.RequireCompany(), ok)
	r.GET("/users/:username", g.RequireMatchingUser("username"), ok)
	r.GET("/companies/:handle", g.RequireMatchingCompany("handle"), ok)
	return r, tokens
}

func issue(t *testing.T, s *token.Service, id domain.Identity) string {
	t.Helper()
	tok, err := s.Issue(id)
	require.NoError(t, err)
	return tok
}

func do(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestGuards(t *testing.T) {
	r, tokens := newTestRouter(t)
	alice := issue(t, tokens, domain.UserIdentity("alice"))
	acme := issue(t, tokens, domain.CompanyIdentity("acme"))

	foreign, err := token.NewService(token.StaticSecret("other-secret"))
	require.NoError(t, err)
	forged := issue(t, foreign, domain.UserIdentity("alice"))

	tests := []struct {
		name   string
		path   string
		auth   string
		status int
		body   string
	}{
		{"any without token", "/any", "", http.StatusUnauthorized, ""},
		{"any with forged token", "/any", forged, http.StatusUnauthorized, ""},
		{"any with garbage", "/any", "garbage", http.StatusUnauthorized, ""},
		{"any as user", "/any", alice, http.StatusOK, "user:alice"},
		{"any as company with bearer", "/any", "Bearer " + acme, http.StatusOK, "company:acme"},
		{"user route as user", "/user", alice, http.StatusOK, "user:alice"},
		{"user route as company", "/user", acme, http.StatusForbidden, ""},
		{"user route anonymous", "/user", "", http.StatusUnauthorized, ""},
		{"company route as company", "/company", acme, http.StatusOK, "company:acme"},
		{"company route as user", "/company", alice, http.StatusForbidden, ""},
		{"matching user", "/users/alice", alice, http.StatusOK, "user:alice"},
		{"other user", "/users/bob", alice, http.StatusForbidden, ""},
		{"company on user param", "/users/acme", acme, http.StatusForbidden, ""},
		{"matching user anonymous", "/users/alice", "", http.StatusUnauthorized, ""},
		{"matching company", "/companies/acme", acme, http.StatusOK, "company:acme"},
		{"other company", "/companies/globex", acme, http.StatusForbidden, ""},
		{"user on company param", "/companies/alice", alice, http.StatusForbidden, ""},
		{"matching company forged", "/companies/acme", forged, http.StatusUnauthorized, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, tc.path, tc.auth)
			assert.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestExtractToken(t *testing.T) {
	assert.Equal(t, "", extractToken(""))
	assert.Equal(t, "abc", extractToken("abc"))
	assert.Equal(t, "abc", extractToken("Bearer abc"))
	assert.Equal(t, "abc", extractToken("bearer   abc"))
	assert.Equal(t, "Basic abc def", extractToken("Basic abc def"))
}

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		service.ErrUnauthenticated:   http.StatusUnauthorized,
		service.ErrInvalidPassword:   http.StatusUnauthorized,
		service.ErrInvalidIdentifier: http.StatusUnauthorized,
		service.ErrForbidden:         http.StatusForbidden,
		service.ErrNotFound:          http.StatusNotFound,
		service.ErrConflict:          http.StatusConflict,
		service.ErrBadRequest:        http.StatusBadRequest,
		service.ErrEmptyUpdate:       http.StatusBadRequest,
		service.ErrStoreFailure:      http.StatusInternalServerError,
	}
	for err, want := range cases {
		status, msg := StatusFor(err)
		assert.Equal(t, want, status, err.Error())
		assert.NotEmpty(t, msg)
	}

	status, msg := StatusFor(errors.New("driver exploded"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.NotContains(t, msg, "exploded")
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c)) })

	w := do(r, "/", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
}
