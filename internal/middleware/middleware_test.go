package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const testSecret = "test-secret-key-that-is-long-enough"

func signToken(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newClaims(subject, ownerID, issuer string, expires time.Time) Claims {
	return Claims{
		OwnerID: ownerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
}

// scopeRouter echoes the owner and user the middleware put in the context.
func scopeRouter(issuer string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/scope", AuthMiddleware(testSecret, issuer), func(c *gin.Context) {
		owner, _ := GetOwnerIDFromContext(c)
		user, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, owner+"/"+user)
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/scope", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	later := time.Now().Add(time.Hour)

	tests := []struct {
		name     string
		issuer   string
		token    func(t *testing.T) string
		wantCode int
		wantBody string
	}{
		{
			name:     "owner claim scopes the request",
			token:    func(t *testing.T) string { return signToken(t, newClaims("u1", "store-9", "", later), testSecret) },
			wantCode: http.StatusOK,
			wantBody: "store-9/u1",
		},
		{
			name:     "user acts on own store without owner claim",
			token:    func(t *testing.T) string { return signToken(t, newClaims("u1", "", "", later), testSecret) },
			wantCode: http.StatusOK,
			wantBody: "u1/u1",
		},
		{
			name:     "missing header",
			token:    func(t *testing.T) string { return "" },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong secret",
			token:    func(t *testing.T) string { return signToken(t, newClaims("u1", "", "", later), "another-secret") },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "expired",
			token:    func(t *testing.T) string { return signToken(t, newClaims("u1", "", "", time.Now().Add(-time.Minute)), testSecret) },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "no subject",
			token:    func(t *testing.T) string { return signToken(t, newClaims("", "store-9", "", later), testSecret) },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "issuer mismatch",
			issuer:   "identity",
			token:    func(t *testing.T) string { return signToken(t, newClaims("u1", "", "someone-else", later), testSecret) },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "issuer match",
			issuer:   "identity",
			token:    func(t *testing.T) string { return signToken(t, newClaims("u1", "", "identity", later), testSecret) },
			wantCode: http.StatusOK,
			wantBody: "u1/u1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(scopeRouter(tt.issuer), tt.token(t))
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rate, err := limiter.NewRateFromFormatted("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/ping", RateLimit(limiter.New(memory.NewStore(), rate)), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		last = httptest.NewRecorder()
		r.ServeHTTP(last, req)
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
}

func TestStructuredLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(GetLoggerFromCtx(t.Context())))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}

func TestBearerToken(t *testing.T) {
	tok, err := bearerToken("bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	for _, h := range []string{"", "Bearer", "Basic abc", "Bearer a b", "Bearer "} {
		_, err := bearerToken(h)
		assert.Error(t, err, "header %q", h)
	}
}

func TestHTTPMetrics_CountsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/books/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, id := range []string{"b1", "b2"} {
		req, _ := http.NewRequest(http.MethodGet, "/books/"+id, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	req, _ := http.NewRequest(http.MethodGet, "/nowhere", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requests.WithLabelValues("/books/:id", "GET", "204")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "GET", "404")))
}
