package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authhttp "github.com/aussiebroadwan/authkit/internal/auth/http"
	"github.com/aussiebroadwan/authkit/internal/auth/service"
	"github.com/aussiebroadwan/authkit/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/authkit/pkg/authsdk"
	"github.com/aussiebroadwan/authkit/pkg/cryptox"
	"github.com/aussiebroadwan/authkit/pkg/httpx"
	"github.com/aussiebroadwan/authkit/pkg/jwtx"
	"github.com/aussiebroadwan/authkit/pkg/slogx"
	"github.com/stretchr/testify/require"
)

var secret = []byte("0123456789abcdef0123456789abcdef")

type testServer struct {
	*httptest.Server
	client *authsdk.Client
	store  *sqlite.Store
	codec  *jwtx.HS256Codec
}

func newTestServer(t *testing.T, opts ...func(*authhttp.Router)) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec, err := jwtx.NewHS256Codec(secret)
	require.NoError(t, err)

	r := authhttp.NewRouter(codec, "test", st, slogx.Discard(), "http://localhost:3005")
	r.AuthService = &service.AuthService{
		Store:    st,
		Hasher:   cryptox.NewArgon2Hasher("pepper"),
		Tokens:   codec,
		TokenTTL: time.Hour,
	}
	r.CredentialLimit = &httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
	for _, opt := range opts {
		opt(r)
	}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client := authsdk.NewClient(srv.URL)
	client.SkipValidation = true

	return &testServer{Server: srv, client: client, store: st, codec: codec}
}

// post sends a raw body and decodes the error envelope.
func (s *testServer) post(t *testing.T, path, body string) (int, httpx.ErrorResponse) {
	t.Helper()

	resp, err := http.Post(s.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out httpx.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestRegisterLoginProfile(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	user, err := s.client.Register(ctx, authsdk.RegisterRequest{
		Name: "Ann", Email: "ann@x.com", Password: "password123",
	})
	require.NoError(t, err)
	require.Positive(t, user.ID)
	require.Equal(t, "Ann", user.Name)
	require.Equal(t, "ann@x.com", user.Email)

	login, err := s.client.Login(ctx, authsdk.LoginRequest{Email: "ann@x.com", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)

	claims, err := s.codec.Verify(login.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.ID)
	require.Equal(t, "ann@x.com", claims.Email)
	require.Equal(t, "Ann", claims.Name)
	require.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt))

	profile, err := s.client.Profile(ctx, login.Token)
	require.NoError(t, err)
	require.Equal(t, *user, *profile)
}

func TestRegister_ResponseOmitsPassword(t *testing.T) {
	s := newTestServer(t)

	resp, err := http.Post(s.URL+"/auth/register", "application/json",
		strings.NewReader(`{"name":"Ann","email":"ann@x.com","password":"password123"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.ElementsMatch(t, []string{"id", "name", "email"}, keys(body))
}

func TestRegister_Duplicate(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.client.Register(ctx, authsdk.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "password123"})
	require.NoError(t, err)

	_, err = s.client.Register(ctx, authsdk.RegisterRequest{Name: "Bob", Email: "ann@x.com", Password: "other-pass"})
	require.True(t, authsdk.IsStatus(err, http.StatusConflict))

	code, body := s.post(t, "/auth/register", `{"name":"Bob","email":"ann@x.com","password":"other-pass"}`)
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, "User with email 'ann@x.com' already exists", body.Message)
	require.Equal(t, "Conflict", body.Error)
	require.Equal(t, http.StatusConflict, body.StatusCode)

	// The original account still logs in with its own password.
	_, err = s.client.Login(ctx, authsdk.LoginRequest{Email: "ann@x.com", Password: "password123"})
	require.NoError(t, err)
}

func TestRegister_Validation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
		want []any
	}{
		{
			name: "empty object",
			body: `{}`,
			want: []any{"Name should not be empty", "Email should not be empty", "Password should not be empty"},
		},
		{
			name: "empty body",
			body: ``,
			want: []any{"Name should not be empty", "Email should not be empty", "Password should not be empty"},
		},
		{
			name: "bad email and short password",
			body: `{"name":"Ann","email":"not-an-email","password":"short"}`,
			want: []any{"Please provide a valid email address", "Password must be at least 8 characters long"},
		},
		{
			name: "unknown property",
			body: `{"name":"Ann","email":"ann@x.com","password":"password123","admin":true}`,
			want: []any{"property admin should not exist"},
		},
		{
			name: "wrong type",
			body: `{"name":42,"email":"ann@x.com","password":"password123"}`,
			want: []any{"Name must be a string"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := s.post(t, "/auth/register", tt.body)
			require.Equal(t, http.StatusBadRequest, code)
			require.Equal(t, "Bad Request", body.Error)
			require.Equal(t, tt.want, body.Message)
		})
	}
}

func TestRegister_MalformedJSON(t *testing.T) {
	s := newTestServer(t)

	code, body := s.post(t, "/auth/register", `{"name":`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "malformed JSON body", body.Message)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.client.Register(ctx, authsdk.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "password123"})
	require.NoError(t, err)

	for _, body := range []string{
		`{"email":"ann@x.com","password":"wrong-password"}`,
		`{"email":"nobody@x.com","password":"password123"}`,
		`{"email":"ANN@x.com","password":"password123"}`,
	} {
		code, resp := s.post(t, "/auth/login", body)
		require.Equal(t, http.StatusUnauthorized, code, body)
		require.Equal(t, "Invalid login!", resp.Message)
		require.Equal(t, "Unauthorized", resp.Error)
	}
}

func TestLogin_Validation(t *testing.T) {
	s := newTestServer(t)

	code, body := s.post(t, "/auth/login", `{"email":"nope"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, []any{"Please provide a valid email address.", "Password should not be empty."}, body.Message)
}

func TestProfile_Guard(t *testing.T) {
	s := newTestServer(t)

	expired, err := jwtx.NewHS256Codec(secret, jwtx.WithClock(func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	}))
	require.NoError(t, err)
	stale, err := expired.Issue(jwtx.Payload{ID: 1, Email: "ann@x.com", Name: "Ann"}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{"no header", "", httpx.MsgMissingCredentials},
		{"wrong scheme", "Basic abc", httpx.MsgMalformedCredentials},
		{"garbage token", "Bearer not.a.jwt", httpx.MsgInvalidToken},
		{"expired token", "Bearer " + stale, httpx.MsgInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, s.URL+"/auth/profile", nil)
			require.NoError(t, err)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")

			var body httpx.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestCredentialRateLimit(t *testing.T) {
	s := newTestServer(t, func(r *authhttp.Router) {
		r.CredentialLimit = &httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
	})

	body := `{"email":"ann@x.com","password":"wrong-password"}`
	for range 2 {
		code, _ := s.post(t, "/auth/login", body)
		require.Equal(t, http.StatusUnauthorized, code)
	}

	code, resp := s.post(t, "/auth/login", body)
	require.Equal(t, http.StatusTooManyRequests, code)
	require.Equal(t, "Too Many Requests", resp.Error)

	// A different email from the same client has its own bucket.
	code, _ = s.post(t, "/auth/login", `{"email":"bob@x.com","password":"wrong-password"}`)
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	health, err := s.client.Health(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)

	require.NoError(t, s.store.Close())

	health, err = s.client.Health(ctx)
	require.True(t, authsdk.IsStatus(err, http.StatusServiceUnavailable))
	require.Equal(t, "error", health.Status)
	require.Equal(t, "Database connection failed", health.Message)
	require.NotEmpty(t, health.Details)
}

func TestLivez(t *testing.T) {
	s := newTestServer(t)

	livez, err := s.client.Livez(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", livez.Status)
	require.Equal(t, "test", livez.Version)
}

func TestMetricsRoute(t *testing.T) {
	s := newTestServer(t, func(r *authhttp.Router) {
		r.Metrics = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# metrics\n"))
		})
	})

	resp, err := http.Get(s.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, s.URL+"/auth/login", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3005")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "http://localhost:3005", resp.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestRequestIDEchoed(t *testing.T) {
	s := newTestServer(t)

	resp, err := http.Get(s.URL + "/livez")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NotEmpty(t, resp.Header.Get(slogx.RequestIDHeader))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
