package skoda

// MaxDuration is the longest flash, honk or ventilator run accepted, in seconds.
const MaxDuration = 30

type controlRequest struct {
	Duration  int `json:"duration"`
	Latitude  int `json:"latitude"`
	Longitude int `json:"longitude"`
}

type statusResponse struct {
	Status string `json:"status"`
}

// validateDuration only enforces the upper bound; zero and negative values
// are forwarded to the API as given.
func validateDuration(summary string, duration int) error {
	if duration > MaxDuration {
		return validationError(summary, ErrDurationExceeded)
	}
	return nil
}

func newControlRequest(duration int, location *VehicleLocation) controlRequest {
	return controlRequest{
		Duration:  duration,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}

// Flash flashes the lights of vin for duration seconds and returns the
// request status reported by the API.
func (c *Client) Flash(vin string, duration int) (string, error) {
	return c.control(vin, "flash", "Failed to flash lights", duration)
}

// Honk sounds the horn of vin for duration seconds.
func (c *Client) Honk(vin string, duration int) (string, error) {
	return c.control(vin, "honk", "Failed to honk horn", duration)
}

// control validates the duration, resolves the vehicle position and then
// issues the action carrying that position.
func (c *Client) control(vin string, action string, summary string, duration int) (string, error) {
	log.Debugf("%s %s for %ds", action, vin, duration)

	if err := validateDuration(summary, duration); err != nil {
		return "", err
	}

	location, err := c.GetLocation(vin)
	if err != nil {
		return "", err
	}

	var response statusResponse
	if err := c.post(c.vehicleURL(vin, action), newControlRequest(duration, location), &response); err != nil {
		return "", remoteError(summary, err)
	}
	log.Debugf("%s response: %+v", action, response)
	return response.Status, nil
}

// GetRequestStatus returns the status of a previously issued asynchronous
// action.
func (c *Client) GetRequestStatus(vin string, id string) (string, error) {
	log.Debugf("GetRequestStatus %s %s", vin, id)

	var response statusResponse
	if err := c.get(c.vehicleURL(vin, "requests", id), &response); err != nil {
		return "", remoteError("Failed to get request", err)
	}
	return response.Status, nil
}
