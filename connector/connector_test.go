package connector

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"gopkg.in/h2non/gock.v1"
)

func TestService_Token(t *testing.T) {
	defer gock.Off()

	gock.New("https://identity.vwgroup.io").
		Post("/oidc/v1/token").
		MatchType("url").
		BodyString("grant_type=password").
		Reply(http.StatusOK).
		JSON(map[string]any{
			"access_token": "access-1234",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})

	s := New(Config{Email: "user@example.com", Password: "password"})
	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "access-1234", token)
	assert.True(t, gock.IsDone())
}

func TestService_Token_NoCaching(t *testing.T) {
	defer gock.Off()

	gock.New("https://identity.vwgroup.io").
		Post("/oidc/v1/token").
		Reply(http.StatusOK).
		JSON(map[string]any{"access_token": "first", "token_type": "Bearer"})
	gock.New("https://identity.vwgroup.io").
		Post("/oidc/v1/token").
		Reply(http.StatusOK).
		JSON(map[string]any{"access_token": "second", "token_type": "Bearer"})

	s := New(Config{Email: "user@example.com", Password: "password"})

	first, err := s.Token()
	require.NoError(t, err)
	second, err := s.Token()
	require.NoError(t, err)

	assert.Equal(t, "first", first)
	assert.Equal(t, "second", second)
}

func TestService_Token_CustomIdentity(t *testing.T) {
	defer gock.Off()

	gock.New("https://login.example.com").
		Post("/token").
		BodyString("client_id=my-client").
		Reply(http.StatusOK).
		JSON(map[string]any{"access_token": "custom", "token_type": "Bearer"})

	s := New(Config{
		Email:    "user@example.com",
		Password: "password",
		TokenURL: "https://login.example.com/token",
		ClientID: "my-client",
	})
	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "custom", token)
}

func TestService_Token_InvalidCredentials(t *testing.T) {
	defer gock.Off()

	gock.New("https://identity.vwgroup.io").
		Post("/oidc/v1/token").
		Reply(http.StatusUnauthorized).
		JSON(map[string]any{
			"error":             "invalid_grant",
			"error_description": "bad credentials",
		})

	s := New(Config{Email: "user@example.com", Password: "wrong"})
	token, err := s.Token()
	assert.Empty(t, token)
	require.Error(t, err)

	var retrieveErr *oauth2.RetrieveError
	require.True(t, errors.As(err, &retrieveErr))
	assert.Equal(t, http.StatusUnauthorized, retrieveErr.Response.StatusCode)
}

func TestNew_Defaults(t *testing.T) {
	s := New(Config{Email: "user@example.com", Password: "password"})
	assert.Equal(t, IdentityVWG, s.identity)
	assert.Equal(t, DefaultTokenURL, s.oauth.Endpoint.TokenURL)
	assert.Equal(t, "VWG", s.oauth.ClientID)
}
