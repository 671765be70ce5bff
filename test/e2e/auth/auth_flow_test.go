//go:build e2e

package auth_test

import (
	"net/http"
	"sync"
	"testing"

	"github.com/aussiebroadwan/authkit/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestRegisterLoginProfile walks the full account lifecycle against a real container.
func TestRegisterLoginProfile(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewClient(baseURL)

	user, token := registerAndLogin(t, client, "flow@example.com")
	require.Positive(t, user.ID)

	profile, err := client.Profile(t.Context(), token)
	require.NoError(t, err)
	require.Equal(t, *user, *profile)

	t.Logf("User %d registered, logged in and resolved from token", user.ID)
}

// TestDuplicateRegistration verifies an email can only be registered once.
func TestDuplicateRegistration(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewClient(baseURL)
	registerAndLogin(t, client, "dupe@example.com")

	_, err := client.Register(t.Context(), authsdk.RegisterRequest{
		Name: "Someone Else", Email: "dupe@example.com", Password: "another-pass",
	})
	assertStatus(t, err, http.StatusConflict, "second registration")
}

// TestConcurrentRegistration verifies that racing registrations for one email
// produce exactly one account.
func TestConcurrentRegistration(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewClient(baseURL)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Register(t.Context(), authsdk.RegisterRequest{
				Name: testName, Email: "race@example.com", Password: testPassword,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case authsdk.IsStatus(err, http.StatusConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, created)
	require.Equal(t, workers-1, conflicts)
}

// TestLoginFailures verifies unknown users and wrong passwords are indistinguishable.
func TestLoginFailures(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewClient(baseURL)
	registerAndLogin(t, client, "login@example.com")

	_, wrongPass := client.Login(t.Context(), authsdk.LoginRequest{Email: "login@example.com", Password: "not-the-password"})
	assertStatus(t, wrongPass, http.StatusUnauthorized, "wrong password")

	_, unknown := client.Login(t.Context(), authsdk.LoginRequest{Email: "ghost@example.com", Password: testPassword})
	assertStatus(t, unknown, http.StatusUnauthorized, "unknown user")

	require.Equal(t, wrongPass.Error(), unknown.Error())
}

// TestProfileRequiresToken verifies the guard rejects missing and forged tokens.
func TestProfileRequiresToken(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewClient(baseURL)

	_, err := client.Profile(t.Context(), "")
	assertStatus(t, err, http.StatusUnauthorized, "no token")

	_, err = client.Profile(t.Context(), "eyJhbGciOiJIUzI1NiJ9.eyJpZCI6MX0.forged")
	assertStatus(t, err, http.StatusUnauthorized, "forged token")
}

// TestServerSideValidation verifies the server rejects invalid bodies even
// when the client skips its own checks.
func TestServerSideValidation(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewClient(baseURL)
	client.SkipValidation = true

	_, err := client.Register(t.Context(), authsdk.RegisterRequest{Name: "x", Email: "not-an-email", Password: "short"})
	assertStatus(t, err, http.StatusBadRequest, "invalid register body")

	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, []string{
		"Please provide a valid email address",
		"Password must be at least 8 characters long",
	}, apiErr.Messages)
}
