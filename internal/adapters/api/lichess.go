package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

func (c *Client) LichessStatus(ctx context.Context) (bool, error) {
	var response lichessStatusResponse
	if err := c.do(ctx, "fetch lichess status", http.MethodGet, "/lichess/user", nil, &response); err != nil {
		return false, err
	}
	return *response.Connected, nil
}

func (c *Client) DisconnectLichess(ctx context.Context) error {
	return c.do(ctx, "disconnect lichess", http.MethodPost, "/lichess/disconnect", nil, nil)
}

// LichessConnectURL is the page the browser navigates to; it is never fetched by the client.
func (c *Client) LichessConnectURL(redirectURI, state string) string {
	query := url.Values{}
	// A browser navigation cannot carry an Authorization header, so the credential
	// rides in the query and can land in browser history and server access logs.
	if credential := strings.TrimSpace(c.token()); credential != "" {
		query.Set("token", credential)
	}
	if redirectURI != "" {
		query.Set("redirect_uri", redirectURI)
	}
	if state != "" {
		query.Set("state", state)
	}

	endpoint := joinURL(c.baseURL, "/lichess/auth")
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}
	return endpoint
}
