package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"packsight/internal/models"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token. The backend expects the
// OAuth2 password form encoding. The client does not store the token; the
// session layer owns that.
func (c *Client) Login(ctx context.Context, username, password string) (TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	var tr TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", &tr)
	return tr, err
}

// CurrentUser fetches the profile for the client's token. A 401 here means
// "not logged in" as far as callers are concerned.
func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	var u models.User
	err := c.getJSON(ctx, "/api/v1/auth/me", &u)
	return u, err
}
