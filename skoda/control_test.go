package skoda

import (
	"net/http"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockLocation() {
	gock.New(testServer).
		Get("/v1/vehicles/" + testVIN + "/location").
		Reply(http.StatusOK).
		File("../resources/location.json")
}

func TestClient_Flash(t *testing.T) {
	c, tokens := newTestClient(t)

	mockLocation()
	gock.New(testServer).
		Post("/v1/vehicles/" + testVIN + "/flash").
		MatchHeader("Authorization", "Bearer foo").
		JSON(map[string]int{
			"duration":  10,
			"latitude":  50412345,
			"longitude": 14903210,
		}).
		Reply(http.StatusOK).
		JSON(map[string]string{"status": "REQUEST_IN_PROGRESS"})

	status, err := c.Flash(testVIN, 10)
	require.NoError(t, err)
	assert.Equal(t, "REQUEST_IN_PROGRESS", status)
	assert.Equal(t, 2, tokens.calls)
	assert.True(t, gock.IsDone())
	assert.False(t, gock.HasUnmatchedRequest())
}

func TestClient_Honk(t *testing.T) {
	c, tokens := newTestClient(t)

	mockLocation()
	gock.New(testServer).
		Post("/v1/vehicles/" + testVIN + "/honk").
		JSON(map[string]int{
			"duration":  30,
			"latitude":  50412345,
			"longitude": 14903210,
		}).
		Reply(http.StatusOK).
		JSON(map[string]string{"status": "REQUEST_IN_PROGRESS"})

	status, err := c.Honk(testVIN, 30)
	require.NoError(t, err)
	assert.Equal(t, "REQUEST_IN_PROGRESS", status)
	assert.Equal(t, 2, tokens.calls)
	assert.True(t, gock.IsDone())
	assert.False(t, gock.HasUnmatchedRequest())
}

func TestClient_DurationExceeded(t *testing.T) {
	ops := []struct {
		name    string
		summary string
		call    func(c *Client, duration int) (string, error)
	}{
		{
			name:    "flash",
			summary: "Failed to flash lights",
			call:    func(c *Client, d int) (string, error) { return c.Flash(testVIN, d) },
		},
		{
			name:    "honk",
			summary: "Failed to honk horn",
			call:    func(c *Client, d int) (string, error) { return c.Honk(testVIN, d) },
		},
		{
			name:    "ventilator",
			summary: "Failed to start ventilator",
			call:    func(c *Client, d int) (string, error) { return c.StartVentilator(testVIN, "1234", d) },
		},
	}

	for _, op := range ops {
		for _, duration := range []int{31, 60, 1800} {
			t.Run(op.name, func(t *testing.T) {
				c, tokens := newTestClient(t)

				res, err := op.call(c, duration)
				assert.Empty(t, res)
				cmdErr := requireCommandError(t, err, op.summary)
				assert.Equal(t, "duration limit exceeded, max 30 minutes", cmdErr.Message)
				assert.Equal(t, KindValidation, cmdErr.Kind)
				assert.ErrorIs(t, err, ErrValidation)
				assert.ErrorIs(t, err, ErrDurationExceeded)
				assert.NotErrorIs(t, err, ErrRemote)

				// Rejected before the location lookup or any other request
				assert.Equal(t, 0, tokens.calls)
				assert.False(t, gock.HasUnmatchedRequest())
			})
		}
	}
}

func TestClient_Flash_NonPositiveDurationForwarded(t *testing.T) {
	for _, duration := range []int{0, -5} {
		c, _ := newTestClient(t)

		mockLocation()
		gock.New(testServer).
			Post("/v1/vehicles/" + testVIN + "/flash").
			JSON(map[string]int{
				"duration":  duration,
				"latitude":  50412345,
				"longitude": 14903210,
			}).
			Reply(http.StatusOK).
			JSON(map[string]string{"status": "REQUEST_IN_PROGRESS"})

		_, err := c.Flash(testVIN, duration)
		require.NoError(t, err)
		assert.True(t, gock.IsDone())
		gock.Off()
	}
}

func TestClient_Flash_LocationFailure(t *testing.T) {
	c, _ := newTestClient(t)

	gock.New(testServer).
		Get("/v1/vehicles/" + testVIN + "/location").
		Reply(http.StatusServiceUnavailable)

	_, err := c.Flash(testVIN, 5)
	requireCommandError(t, err, "Failed to get car location")
	assert.ErrorIs(t, err, ErrRemote)
	assert.False(t, gock.HasUnmatchedRequest())
}

func TestClient_Honk_LocationFailure(t *testing.T) {
	c, _ := newTestClient(t)

	gock.New(testServer).
		Get("/v1/vehicles/" + testVIN + "/location").
		Reply(http.StatusNotFound).
		JSON(map[string]string{"message": "vehicle not found"})

	_, err := c.Honk(testVIN, 5)
	cmdErr := requireCommandError(t, err, "Failed to get car location")
	assert.Equal(t, "unexpected status 404 Not Found: vehicle not found", cmdErr.Message)
	assert.ErrorIs(t, err, ErrRemote)
	assert.False(t, gock.HasUnmatchedRequest())
}

func TestClient_Honk_Failure(t *testing.T) {
	c, _ := newTestClient(t)

	mockLocation()
	gock.New(testServer).
		Post("/v1/vehicles/" + testVIN + "/honk").
		Reply(http.StatusBadRequest).
		JSON(map[string]string{"message": "vehicle too far away"})

	_, err := c.Honk(testVIN, 5)
	cmdErr := requireCommandError(t, err, "Failed to honk horn")
	assert.Equal(t, "unexpected status 400 Bad Request: vehicle too far away", cmdErr.Message)
}

func TestClient_GetRequestStatus(t *testing.T) {
	c, _ := newTestClient(t)

	gock.New(testServer).
		Get("/v1/vehicles/" + testVIN + "/requests/2d1f7c").
		MatchHeader("Authorization", "Bearer foo").
		Reply(http.StatusOK).
		JSON(map[string]string{"status": "REQUEST_SUCCESSFUL"})

	status, err := c.GetRequestStatus(testVIN, "2d1f7c")
	require.NoError(t, err)
	assert.Equal(t, "REQUEST_SUCCESSFUL", status)
}

func TestClient_GetRequestStatus_Failure(t *testing.T) {
	c, _ := newTestClient(t)

	gock.New(testServer).
		Get("/v1/vehicles/" + testVIN + "/requests/unknown").
		Reply(http.StatusNotFound)

	_, err := c.GetRequestStatus(testVIN, "unknown")
	requireCommandError(t, err, "Failed to get request")
}
