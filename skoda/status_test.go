package skoda

import (
	"net/http"
	"testing"
	"time"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetStatus(t *testing.T) {
	c, _ := newTestClient(t)

	gock.New(testServer).
		Get("/v1/vehicles/" + testVIN + "/status").
		MatchHeader("Authorization", "Bearer foo").
		Reply(http.StatusOK).
		File("../resources/status.json")

	status, err := c.GetStatus(testVIN)
	require.NoError(t, err)
	assert.Equal(t, testVIN, status.VIN)

	require.Len(t, status.Groups, 2)
	assert.Equal(t, "0x0101010001", status.Groups[0].ID)
	assert.Equal(t, "0x030103FFFF", status.Groups[1].ID)

	fields := status.Groups[1].Fields
	require.Len(t, fields, 2)
	assert.Equal(t, "0x0301030005", fields[0].ID)
	assert.Equal(t, VehicleField{
		ID:              "0x0301030006",
		CarSentUTC:      time.Date(2024, 5, 12, 6, 0, 10, 0, time.UTC),
		CarSent:         time.Date(2024, 5, 12, 8, 0, 10, 0, time.UTC),
		CarCaptured:     time.Date(2024, 5, 12, 8, 0, 0, 0, time.UTC),
		ReceivedUTC:     time.Date(2024, 5, 12, 6, 0, 12, 500*int(time.Millisecond), time.UTC),
		MileageCaptured: 48211,
		MileageSent:     48212,
		Value:           "342",
		Unit:            "km",
		TextID:          "primary_range",
		PictureID:       "range.png",
	}, fields[1])

	km, err := status.Kilometer()
	require.NoError(t, err)
	assert.Equal(t, 342, km)
}

func TestClient_GetStatus_MalformedTimestamp(t *testing.T) {
	c, _ := newTestClient(t)

	gock.New(testServer).
		Get("/v1/vehicles/" + testVIN + "/status").
		Reply(http.StatusOK).
		File("../resources/status-bad-timestamp.json")

	status, err := c.GetStatus(testVIN)
	assert.Nil(t, status)
	cmdErr := requireCommandError(t, err, "Failed to get status")
	assert.Contains(t, cmdErr.Message, "tsCarCaptured")
}

func TestClient_GetStatus_Failure(t *testing.T) {
	c, _ := newTestClient(t)

	gock.New(testServer).
		Get("/v1/vehicles/" + testVIN + "/status").
		Reply(http.StatusBadGateway)

	_, err := c.GetStatus(testVIN)
	requireCommandError(t, err, "Failed to get status")
	assert.ErrorIs(t, err, ErrRemote)
}
