// Package connector obtains access tokens for the vehicle API from the
// identity service.
package connector

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// Identity is the client identity presented to the identity service.
type Identity string

const (
	IdentityVWG Identity = "VWG"

	DefaultTokenURL string = "https://identity.vwgroup.io/oidc/v1/token"
	LoginTimeout           = 30 * time.Second
)

type Config struct {
	Email    string
	Password string

	// TokenURL and ClientID default to DefaultTokenURL and the identity name.
	TokenURL string
	ClientID string
	Identity Identity
}

type Service struct {
	email      string
	password   string
	identity   Identity
	oauth      oauth2.Config
	httpClient *http.Client
}

var log = logrus.StandardLogger()

func New(cfg Config) *Service {
	if cfg.Identity == "" {
		cfg.Identity = IdentityVWG
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if cfg.ClientID == "" {
		cfg.ClientID = string(cfg.Identity)
	}

	return &Service{
		email:    cfg.Email,
		password: cfg.Password,
		identity: cfg.Identity,
		oauth: oauth2.Config{
			ClientID: cfg.ClientID,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
			Scopes: []string{"openid", "profile", "mbb"},
		},
		httpClient: &http.Client{Timeout: LoginTimeout},
	}
}

// Token logs in with the configured credentials and returns a fresh access
// token. Nothing is cached: every call performs a new login.
func (s *Service) Token() (string, error) {
	log.Debugf("requesting %s token for %s", s.identity, s.email)

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, s.httpClient)
	token, err := s.oauth.PasswordCredentialsToken(ctx, s.email, s.password)
	if err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}
	return token.AccessToken, nil
}
