package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/chesswager-cli/internal/version"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)
}

func TestBalanceRequiresLogin(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)

	_, _, err := executeCLI(t, home, "balance", "--json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please log in")
}

func TestLoginPersistsSessionForLaterCommands(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)

	stdout, _, err := executeCLI(t, home, "login", "--email", "magnus@example.com", "--password", "hunter2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed in as magnus")
	assert.Equal(t, map[string]any{"email": "magnus@example.com", "password": "hunter2"}, backend.lastBody("/auth/login"))

	stdout, _, err = executeCLI(t, home, "whoami", "--json")
	require.NoError(t, err)
	var who whoamiOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &who))
	assert.Equal(t, "u-1", who.UserID)
	assert.Equal(t, "magnus", who.Username)
	assert.Equal(t, "DrNykterstein", who.Lichess)
}

func TestLoginReadsPasswordFromStdin(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)

	_, _, err := executeCLIWithInput(t, home, "s3cret\n", "login", "--email", "magnus@example.com")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", backend.lastBody("/auth/login")["password"])
}

func TestLoginReportsExpiredServerCredential(t *testing.T) {
	backend := newFakeBackend(t, "user")
	backend.tokenExpiry = -time.Minute
	home := t.TempDir()
	backend.use(t)

	_, _, err := executeCLI(t, home, "login", "--email", "magnus@example.com", "--password", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please log in again")
}

func TestLogoutForgetsSession(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)
	login(t, home)

	stdout, _, err := executeCLI(t, home, "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed out")

	_, _, err = executeCLI(t, home, "whoami")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please log in")
}

func TestBalanceJSONOutput(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)
	login(t, home)

	stdout, _, err := executeCLI(t, home, "balance", "--json", "--currency", "sc")
	require.NoError(t, err)

	var out balanceOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.InDelta(t, 200, out.Tokens, 0.0001)
	assert.InDelta(t, 12.5, out.Sweepstakes, 0.0001)
	assert.Equal(t, "sweepstakes", out.Selected)
	assert.Equal(t, "Bearer "+backend.currentToken(), backend.lastAuthorization("/balances"))
}

func TestBalanceWithWallet(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)
	login(t, home)

	stdout, _, err := executeCLI(t, home, "balance", "--json", "--wallet")
	require.NoError(t, err)

	var out balanceOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.NotNil(t, out.Wallet)
	assert.InDelta(t, 1500, *out.Wallet, 0.0001)
	assert.Equal(t, "Bearer "+backend.currentToken(), backend.lastAuthorization("/tokens/balance/user"))

	stdout, _, err = executeCLI(t, home, "balance", "--wallet")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wallet:")
	assert.Contains(t, stdout, "1500")
}

func TestNotificationsListAndReadAll(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)
	login(t, home)

	stdout, _, err := executeCLI(t, home, "notifications", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "unread: 1")
	assert.Contains(t, stdout, "Your bet was accepted")

	stdout, _, err = executeCLI(t, home, "notifications", "read-all")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Marked all notifications as read")
	assert.Equal(t, 1, backend.hits("/notifications/read-all"))
}

func TestNotificationsReadOne(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)
	login(t, home)

	stdout, _, err := executeCLI(t, home, "notifications", "read", "n-1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Marked n-1 as read (0 unread)")
	assert.Equal(t, 1, backend.hits("/notifications/n-1/read"))
}

func TestBetsPlaceSendsPayload(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)
	login(t, home)

	stdout, _, err := executeCLI(t, home, "bets", "place", "--amount", "50", "--time-control", "3+2", "--color", "white")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Placed bet b-new")

	body := backend.lastBody("/bets/place")
	assert.InDelta(t, 50, body["amount"], 0.0001)
	assert.Equal(t, "tokens", body["currency"])
	assert.Equal(t, "3+2", body["timeControl"])
	assert.Equal(t, "white", body["colorPreference"])
}

func TestBetsPlaceRejectsInsufficientBalance(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)
	login(t, home)

	_, _, err := executeCLI(t, home, "bets", "place", "--amount", "500")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient balance")
	assert.Zero(t, backend.hits("/bets/place"))
}

func TestBetsAvailableDeduplicatesSeekers(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)
	login(t, home)

	stdout, _, err := executeCLI(t, home, "bets", "available", "--json")
	require.NoError(t, err)

	var bets []betOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &bets))
	require.Len(t, bets, 2)
	assert.Equal(t, "s-1", bets[0].ID)
	assert.Equal(t, "s-2", bets[1].ID)
}

func TestAdminCommandsRequireAdminRole(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)
	login(t, home)

	_, _, err := executeCLI(t, home, "admin", "dashboard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
	assert.Zero(t, backend.hits("/admin/dashboard"))
}

func TestAdminDashboardAndMint(t *testing.T) {
	backend := newFakeBackend(t, "admin")
	home := t.TempDir()
	backend.use(t)
	login(t, home)

	stdout, _, err := executeCLI(t, home, "admin", "dashboard")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Admin dashboard")
	assert.Contains(t, stdout, "42")

	stdout, _, err = executeCLI(t, home, "admin", "mint", "--address", "0xabc", "--amount", "100")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Minted 100 tokens to 0xabc")
	assert.Equal(t, map[string]any{"address": "0xabc", "amount": float64(100)}, backend.lastBody("/tokens/mint"))
}

func TestDashboardRendersOverview(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)
	login(t, home)

	stdout, _, err := executeCLI(t, home, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, stdout, "magnus")
	assert.Contains(t, stdout, "connected as DrNykterstein")
	assert.Contains(t, stdout, "unread: 1")
	assert.Contains(t, stdout, "Open bets")
	assert.Contains(t, stdout, "h-1")
	assert.NotContains(t, stdout, "h-2")
}

func TestLichessStatusFetchesOnce(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)
	login(t, home)
	before := backend.hits("/lichess/user")

	stdout, _, err := executeCLI(t, home, "lichess", "status", "--json")
	require.NoError(t, err)

	var out lichessOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.True(t, out.Connected)
	assert.Equal(t, "DrNykterstein", out.Username)
	assert.Equal(t, 1, backend.hits("/lichess/user")-before)
}

func TestLichessDisconnect(t *testing.T) {
	backend := newFakeBackend(t, "user")
	home := t.TempDir()
	backend.use(t)
	login(t, home)

	stdout, _, err := executeCLI(t, home, "lichess", "disconnect")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Lichess account disconnected")
	assert.Equal(t, 1, backend.hits("/lichess/disconnect"))
}

func TestConfigSetThenShow(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CW_SESSION_BACKEND", "file")

	_, _, err := executeCLI(t, home, "config", "set", "wager.default_currency", "sweepstakes")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, `wager.default_currency = "sweepstakes"`)
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "config", "set", "nope", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func login(t *testing.T, home string) {
	t.Helper()
	_, _, err := executeCLI(t, home, "login", "--email", "magnus@example.com", "--password", "hunter2")
	require.NoError(t, err)
}

type recordedRequest struct {
	path          string
	authorization string
	body          map[string]any
}

type fakeBackend struct {
	server      *httptest.Server
	role        string
	tokenExpiry time.Duration
	token       string

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeBackend(t *testing.T, role string) *fakeBackend {
	t.Helper()

	b := &fakeBackend{role: role, tokenExpiry: time.Hour}
	router := mux.NewRouter()
	router.Use(b.record)

	router.HandleFunc("/auth/login", b.issueToken(t)).Methods(http.MethodPost)
	router.HandleFunc("/auth/register", b.issueToken(t)).Methods(http.MethodPost)
	router.HandleFunc("/auth/profile", reply(`{"id":"u-1","username":"magnus","email":"magnus@example.com","role":"user","lichessUsername":"DrNykterstein"}`)).Methods(http.MethodGet)
	router.HandleFunc("/balances", reply(`{"tokenBalance":200,"sweepstakesBalance":12.5}`)).Methods(http.MethodGet)
	router.HandleFunc("/tokens/balance/user", reply(`{"balance":1500}`)).Methods(http.MethodGet)
	router.HandleFunc("/notifications", reply(`{"notifications":[{"id":"n-1","message":"Your bet was accepted","read":false,"createdAt":"2026-02-14T10:55:00Z"},{"id":"n-2","message":"Welcome","read":true}],"total":1}`)).Methods(http.MethodGet)
	router.HandleFunc("/notifications/read-all", reply(``)).Methods(http.MethodPut)
	router.HandleFunc("/notifications/{id}/read", reply(``)).Methods(http.MethodPut)
	router.HandleFunc("/lichess/user", reply(`{"connected":true}`)).Methods(http.MethodGet)
	router.HandleFunc("/lichess/disconnect", reply(`{}`)).Methods(http.MethodPost)
	router.HandleFunc("/bets/place", reply(`{"bet":{"id":"b-new","amount":50,"currency":"tokens","status":"pending","timeControl":"3+2"}}`)).Methods(http.MethodPost)
	router.HandleFunc("/bets/history", reply(`[{"id":"h-1","amount":25,"currency":"tokens","status":"pending"},{"id":"h-2","amount":10,"currency":"tokens","status":"completed","winner":"magnus"}]`)).Methods(http.MethodGet)
	router.HandleFunc("/bets/seekers", reply(`{"bets":[{"id":"s-1","amount":5,"currency":"tokens","status":"pending"},{"id":"s-1","amount":5,"currency":"tokens","status":"pending"},{"id":"","amount":1,"currency":"tokens","status":"pending"},{"id":"s-2","amount":8,"currency":"sweepstakes","status":"pending"}]}`)).Methods(http.MethodGet)
	router.HandleFunc("/admin/dashboard", reply(`{"totalUsers":42,"totalBets":7,"activeBets":3,"totalVolume":1234.5}`)).Methods(http.MethodGet)
	router.HandleFunc("/tokens/mint", reply(`{"success":true}`)).Methods(http.MethodPost)

	b.server = httptest.NewServer(router)
	t.Cleanup(b.server.Close)
	return b
}

// use points the CLI at this backend with a file-backed session store.
func (b *fakeBackend) use(t *testing.T) {
	t.Helper()
	t.Setenv("CW_API_BASE_URL", b.server.URL)
	t.Setenv("CW_SESSION_BACKEND", "file")
	t.Setenv("CW_LOG_LEVEL", "disabled")
}

func (b *fakeBackend) issueToken(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		now := time.Now()
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"id":       "u-1",
			"username": "magnus",
			"email":    "magnus@example.com",
			"role":     b.role,
			"iat":      now.Unix(),
			"exp":      now.Add(b.tokenExpiry).Unix(),
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		b.mu.Lock()
		b.token = token
		b.mu.Unlock()
		_, _ = fmt.Fprintf(w, `{"token":%q}`, token)
	}
}

func (b *fakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := recordedRequest{path: r.URL.Path, authorization: r.Header.Get("Authorization")}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req.body)
		}

		b.mu.Lock()
		b.requests = append(b.requests, req)
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (b *fakeBackend) hits(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, req := range b.requests {
		if req.path == path {
			n++
		}
	}
	return n
}

func (b *fakeBackend) last(path string) recordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := len(b.requests) - 1; i >= 0; i-- {
		if b.requests[i].path == path {
			return b.requests[i]
		}
	}
	return recordedRequest{}
}

func (b *fakeBackend) currentToken() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.token
}

func (b *fakeBackend) lastBody(path string) map[string]any {
	return b.last(path).body
}

func (b *fakeBackend) lastAuthorization(path string) string {
	return b.last(path).authorization
}

func reply(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, body)
	}
}
