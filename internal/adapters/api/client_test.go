package api

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, token string, register func(r *mux.Router)) *Client {
	t.Helper()

	router := mux.NewRouter()
	register(router.PathPrefix("/api").Subrouter())
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return NewClient(server.URL+"/api/", server.Client(), func() string { return token })
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestJoinURLTrimsDuplicateSlashes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http://host/api/bets/place", joinURL("http://host/api/", "//bets//place"))
	assert.Equal(t, "http://host/api/notifications", joinURL("http://host/api", "notifications"))
}

func TestClientSendsJSONHeadersAndBearerCredential(t *testing.T) {
	t.Parallel()

	var seen http.Header
	client := newTestClient(t, "tok-1", func(r *mux.Router) {
		r.HandleFunc("/balances", func(w http.ResponseWriter, req *http.Request) {
			seen = req.Header.Clone()
			writeJSON(w, http.StatusOK, map[string]any{"tokenBalance": 200, "sweepstakesBalance": 12.5})
		}).Methods(http.MethodGet)
	})

	snapshot, err := client.Balances(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.BalanceSnapshot{Tokens: 200, Sweepstakes: 12.5}, snapshot)

	assert.Equal(t, "application/json", seen.Get("Content-Type"))
	assert.Equal(t, "application/json", seen.Get("Accept"))
	assert.Equal(t, "Bearer tok-1", seen.Get("Authorization"))
	_, err = uuid.Parse(seen.Get("X-Request-Id"))
	assert.NoError(t, err)
}

func TestClientOmitsAuthorizationWhenAnonymous(t *testing.T) {
	t.Parallel()

	var authorization []string
	client := newTestClient(t, "", func(r *mux.Router) {
		r.HandleFunc("/auth/login", func(w http.ResponseWriter, req *http.Request) {
			authorization = req.Header.Values("Authorization")
			var body map[string]string
			_ = json.NewDecoder(req.Body).Decode(&body)
			assert.Equal(t, "a@b.c", body["email"])
			writeJSON(w, http.StatusCreated, map[string]string{"token": "fresh"})
		}).Methods(http.MethodPost)
	})

	token, err := client.Login(context.Background(), domain.LoginCredentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
	assert.Empty(t, authorization)
}

func TestClientNormalizesServerErrorMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "tok", func(r *mux.Router) {
		r.HandleFunc("/bets/place", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "insufficient funds"})
		}).Methods(http.MethodPost)
		r.HandleFunc("/bets/accept/{id}", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "already matched"})
		}).Methods(http.MethodPost)
		r.HandleFunc("/bets/cancel/{id}", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"message": []string{"id must be a uuid", "reason required"}})
		}).Methods(http.MethodPost)
	})

	_, err := client.PlaceBet(context.Background(), domain.PlaceBet{Amount: 50, Currency: domain.CurrencyTokens})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "place bet", apiErr.Op)
	assert.Equal(t, "insufficient funds", apiErr.Error())

	_, err = client.AcceptBet(context.Background(), "b1")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "already matched", apiErr.Message)

	_, err = client.CancelBet(context.Background(), "b1")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "id must be a uuid; reason required", apiErr.Message)
}

func TestClientFallsBackToOperationMessage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "tok", func(r *mux.Router) {
		r.HandleFunc("/notifications", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("<html>oops</html>"))
		}).Methods(http.MethodGet)
		r.HandleFunc("/lichess/user", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{})
		}).Methods(http.MethodGet)
	})

	_, err := client.ListNotifications(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "fetch notifications failed", apiErr.Message)

	_, err = client.LichessStatus(context.Background())
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Unauthorized())
	assert.Equal(t, "fetch lichess status failed", apiErr.Message)
}

func TestClientReturnsTransportErrorsUnwrapped(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	client := NewClient("http://"+addr, nil, nil)
	_, err = client.Balances(context.Background())
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
	assert.False(t, errors.Is(err, ErrInvalidResponse))
	assert.NotContains(t, err.Error(), "fetch balances")
}

func TestClientRejectsResponsesFailingValidation(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "tok", func(r *mux.Router) {
		r.HandleFunc("/balances", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"tokenBalance": 10})
		}).Methods(http.MethodGet)
		r.HandleFunc("/notifications", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"notifications": []map[string]any{{"message": "no id"}}, "total": 1})
		}).Methods(http.MethodGet)
		r.HandleFunc("/auth/register", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{})
		}).Methods(http.MethodPost)
		r.HandleFunc("/lichess/disconnect", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}).Methods(http.MethodPost)
	})

	_, err := client.Balances(context.Background())
	require.ErrorIs(t, err, ErrInvalidResponse)
	assert.ErrorContains(t, err, "sweepstakesBalance")

	_, err = client.ListNotifications(context.Background())
	require.ErrorIs(t, err, ErrInvalidResponse)
	assert.ErrorContains(t, err, "notifications[0]")

	_, err = client.Register(context.Background(), domain.Registration{Username: "u", Email: "e", Password: "p"})
	require.ErrorIs(t, err, ErrInvalidResponse)

	err = client.DisconnectLichess(context.Background())
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClientDecodesNotificationBatchWithNumericIDs(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "tok", func(r *mux.Router) {
		r.HandleFunc("/notifications", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"notifications": []map[string]any{
					{"id": 7, "message": "bet accepted", "read": false, "createdAt": "2026-01-02T03:04:05Z"},
					{"id": "n-6", "message": "welcome", "read": true},
				},
				"total": 3,
			})
		}).Methods(http.MethodGet)
	})

	batch, err := client.ListNotifications(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, batch.Total)
	require.Len(t, batch.Notifications, 2)
	assert.Equal(t, domain.NotificationID("7"), batch.Notifications[0].ID)
	assert.Equal(t, 2026, batch.Notifications[0].CreatedAt.Year())
	assert.True(t, batch.Notifications[1].Read)
}

func TestClientMarksNotificationsWithPut(t *testing.T) {
	t.Parallel()

	var paths []string
	client := newTestClient(t, "tok", func(r *mux.Router) {
		r.HandleFunc("/notifications/read-all", func(w http.ResponseWriter, req *http.Request) {
			paths = append(paths, req.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}).Methods(http.MethodPut)
		r.HandleFunc("/notifications/{id}/read", func(w http.ResponseWriter, req *http.Request) {
			paths = append(paths, "id="+mux.Vars(req)["id"])
			writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		}).Methods(http.MethodPut)
	})

	require.NoError(t, client.MarkNotificationRead(context.Background(), "n-1"))
	require.NoError(t, client.MarkAllNotificationsRead(context.Background()))
	assert.Equal(t, []string{"id=n-1", "/api/notifications/read-all"}, paths)
}

func TestClientDecodesBetListsInBothShapes(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "tok", func(r *mux.Router) {
		r.HandleFunc("/bets/seekers", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, []map[string]any{
				{"id": "b1", "amount": 10, "currency": "tokens", "status": "PENDING"},
				{"amount": 5, "currency": "sweepstakes"},
			})
		}).Methods(http.MethodGet)
		r.HandleFunc("/bets/history", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"bets": []map[string]any{{"id": 3, "amount": 1, "currency": "sc", "winner": "me"}}})
		}).Methods(http.MethodGet)
	})

	seekers, err := client.Seekers(context.Background())
	require.NoError(t, err)
	require.Len(t, seekers, 2)
	assert.Equal(t, domain.BetStatusPending, seekers[0].Status)
	assert.Empty(t, seekers[1].ID)

	history, err := client.BetHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.BetID("3"), history[0].ID)
	assert.Equal(t, domain.CurrencySweepstakes, history[0].Currency)
}

func TestClientPlaceBetSendsPayloadAndDecodesWrappedBet(t *testing.T) {
	t.Parallel()

	var body placeBetRequest
	client := newTestClient(t, "tok", func(r *mux.Router) {
		r.HandleFunc("/bets/place", func(w http.ResponseWriter, req *http.Request) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			writeJSON(w, http.StatusCreated, map[string]any{"bet": map[string]any{"id": "b9", "amount": 50, "currency": "tokens", "status": "pending"}})
		}).Methods(http.MethodPost)
	})

	bet, err := client.PlaceBet(context.Background(), domain.PlaceBet{
		Amount:          50,
		Currency:        domain.CurrencyTokens,
		TimeControl:     "5+0",
		ColorPreference: domain.ColorWhite,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BetID("b9"), bet.ID)
	assert.Equal(t, placeBetRequest{Amount: 50, Currency: "tokens", TimeControl: "5+0", ColorPreference: "white"}, body)
}

func TestClientProfileAndAdminEndpoints(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "tok", func(r *mux.Router) {
		r.HandleFunc("/auth/profile", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"id": 42, "username": "magnus", "role": "ADMIN", "lichessUsername": "DrNykterstein"})
		}).Methods(http.MethodGet)
		r.HandleFunc("/admin/dashboard", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"totalUsers": 10, "totalBets": 4, "activeBets": 1, "totalVolume": 99.5})
		}).Methods(http.MethodGet)
		r.HandleFunc("/tokens/balance/{address}", func(w http.ResponseWriter, req *http.Request) {
			if mux.Vars(req)["address"] == "user" {
				writeJSON(w, http.StatusOK, map[string]any{"balance": 1})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"balance": 77})
		}).Methods(http.MethodGet)
		r.HandleFunc("/tokens/mint", func(w http.ResponseWriter, req *http.Request) {
			var body map[string]any
			_ = json.NewDecoder(req.Body).Decode(&body)
			assert.Equal(t, "0xabc", body["address"])
			writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		}).Methods(http.MethodPost)
	})

	profile, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{ID: "42", Username: "magnus", Role: domain.RoleAdmin, LichessUsername: "DrNykterstein"}, profile)

	dashboard, err := client.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), dashboard.TotalUsers)
	assert.InDelta(t, 99.5, dashboard.TotalVolume, 0.001)

	balance, err := client.BalanceOf(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.InDelta(t, 77, balance, 0.001)

	own, err := client.TokenBalance(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 1, own, 0.001)

	require.NoError(t, client.Mint(context.Background(), domain.Mint{Address: "0xabc", Amount: 5}))
}

func TestLichessConnectURLCarriesTokenAndRedirect(t *testing.T) {
	t.Parallel()

	client := NewClient("https://api.example.com/api//", nil, func() string { return "tok" })
	link := client.LichessConnectURL("http://127.0.0.1:5555/callback", "state-1")

	assert.True(t, strings.HasPrefix(link, "https://api.example.com/api/lichess/auth?"))
	assert.Contains(t, link, "token=tok")
	assert.Contains(t, link, "state=state-1")
	assert.Contains(t, link, "redirect_uri=http%3A%2F%2F127.0.0.1%3A5555%2Fcallback")
}

func TestDecodeNotificationRejectsMissingID(t *testing.T) {
	t.Parallel()

	_, err := DecodeNotification(json.RawMessage(`{"message":"hi"}`))
	require.ErrorIs(t, err, ErrInvalidResponse)

	_, err = DecodeNotification(json.RawMessage(`not json`))
	require.ErrorIs(t, err, ErrInvalidResponse)

	notification, err := DecodeNotification(json.RawMessage(`{"id":1,"message":"hi"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.NotificationID("1"), notification.ID)
}
