package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bnema/chesswager-cli/internal/domain"
)

func (c *Client) ListNotifications(ctx context.Context) (domain.NotificationBatch, error) {
	var response notificationBatchResponse
	if err := c.do(ctx, "fetch notifications", http.MethodGet, "/notifications", nil, &response); err != nil {
		return domain.NotificationBatch{}, err
	}
	return response.toDomain(), nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id domain.NotificationID) error {
	path := "/notifications/" + url.PathEscape(string(id)) + "/read"
	return c.do(ctx, "mark notification read", http.MethodPut, path, nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, "mark all notifications read", http.MethodPut, "/notifications/read-all", nil, nil)
}
