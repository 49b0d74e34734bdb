package platform

import (
	"context"
	"net/http"
)

// SubscribeNewsletter forwards a newsletter signup to the platform.
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	_, err := c.do(ctx, http.MethodPost, "/newsletter/subscribe", "", nil, body, nil)
	return err
}
