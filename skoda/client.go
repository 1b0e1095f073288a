package skoda

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/denysvitali/skoda-remote/connector"
)

const (
	DefaultServer  string = "http://localhost:8080"
	RequestTimeout        = 30 * time.Second
	UserAgent      string = "skoda-go"
)

// TokenProvider supplies the bearer token attached to each outgoing request.
type TokenProvider interface {
	Token() (string, error)
}

type Client struct {
	httpClient *http.Client
	server     string
}

var log = logrus.StandardLogger()

func New(config *Config) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.Email == "" || config.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	log.Debugf("skoda New")

	tokens := connector.New(connector.Config{
		Email:    config.Email,
		Password: config.Password,
		TokenURL: config.Identity.TokenURL,
		ClientID: config.Identity.ClientID,
	})
	return NewWithTokenProvider(config.Server, tokens), nil
}

// NewWithTokenProvider creates a client talking to server. An empty server
// selects DefaultServer.
func NewWithTokenProvider(server string, tokens TokenProvider) *Client {
	if server == "" {
		server = DefaultServer
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: RequestTimeout,
			Transport: bearerRoundTripper{
				tokens: tokens,
			},
		},
		server: strings.TrimSuffix(server, "/"),
	}
}

func (c *Client) Server() string {
	return c.server
}

func (c *Client) vehicleURL(vin string, elem ...string) string {
	parts := []string{c.server, "v1", "vehicles", url.PathEscape(vin)}
	for _, e := range elem {
		parts = append(parts, url.PathEscape(e))
	}
	return strings.Join(parts, "/")
}

func (c *Client) get(uri string, res any) error {
	req, err := http.NewRequest(http.MethodGet, uri, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, res)
}

func (c *Client) post(uri string, body any, res any) error {
	jsonBody, err := toJSON(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, uri, jsonBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req, res)
}

func (c *Client) doJSON(req *http.Request, res any) error {
	req.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return getError(response)
	}

	return json.NewDecoder(response.Body).Decode(res)
}

func getError(res *http.Response) error {
	err := &statusError{status: res.Status}

	body, readErr := io.ReadAll(res.Body)
	if readErr != nil || len(body) == 0 {
		return err
	}

	var errorResponse ErrorResponse
	if json.Unmarshal(body, &errorResponse) == nil {
		err.message = errorResponse.Message
	}
	return err
}

func toJSON[T any](request T) (io.Reader, error) {
	buffer := bytes.NewBuffer(nil)
	err := json.NewEncoder(buffer).Encode(request)
	return buffer, err
}
