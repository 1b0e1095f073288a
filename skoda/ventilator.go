package skoda

type ventilatorRequest struct {
	Pin      string `json:"pin"`
	Duration int    `json:"duration"`
}

type ventilatorResponse struct {
	ID string `json:"id"`
}

// StartVentilator starts the ventilation of vin for duration seconds and
// returns the id of the ventilator request.
func (c *Client) StartVentilator(vin string, pin string, duration int) (string, error) {
	const summary = "Failed to start ventilator"
	if err := validateDuration(summary, duration); err != nil {
		return "", err
	}
	return c.ventilatorOp(vin, "start", summary, ventilatorRequest{Pin: pin, Duration: duration})
}

func (c *Client) StopVentilator(vin string, pin string) (string, error) {
	return c.ventilatorOp(vin, "stop", "Failed to stop ventilator", ventilatorRequest{Pin: pin, Duration: 0})
}

func (c *Client) ventilatorOp(vin string, op string, summary string, request ventilatorRequest) (string, error) {
	log.Debugf("ventilator %s on %s (duration %d)", op, vin, request.Duration)

	var response ventilatorResponse
	if err := c.post(c.vehicleURL(vin, "ventilator", op), request, &response); err != nil {
		return "", remoteError(summary, err)
	}
	return response.ID, nil
}
