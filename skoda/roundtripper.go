package skoda

import (
	"fmt"
	"net/http"
)

type bearerRoundTripper struct {
	inner  http.RoundTripper
	tokens TokenProvider
}

func (b bearerRoundTripper) RoundTrip(request *http.Request) (*http.Response, error) {
	inner := b.inner
	if inner == nil {
		inner = http.DefaultTransport
	}

	// One token per request: the provider decides whether that means a new login
	token, err := b.tokens.Token()
	if err != nil {
		if request.Body != nil {
			_ = request.Body.Close()
		}
		return nil, fmt.Errorf("unable to get token: %w", err)
	}

	// A RoundTripper must not modify the caller's request
	authorized := request.Clone(request.Context())
	authorized.Header.Set("Authorization", "Bearer "+token)
	authorized.Header.Set("User-Agent", UserAgent)

	log.Debugf("%s %s", authorized.Method, authorized.URL.Redacted())
	return inner.RoundTrip(authorized)
}

var _ http.RoundTripper = &bearerRoundTripper{}
