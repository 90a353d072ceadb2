package client

import (
	"context"
	"net/http"

	"github.com/andrewpaige1/studyset-web/models"
)

// Me returns the profile of the credential's owner. The guest credential
// never reaches the backend.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	if c.token == models.GuestToken {
		return models.Guest, nil
	}

	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/users/me/", nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
