package skoda

import "time"

// VehicleField is a single telemetry data point.
type VehicleField struct {
	ID              string
	CarSentUTC      time.Time
	CarSent         time.Time
	CarCaptured     time.Time
	ReceivedUTC     time.Time
	MileageCaptured int
	MileageSent     int
	Value           string
	Unit            string
	TextID          string
	PictureID       string
}

type VehicleDataGroup struct {
	ID     string
	Fields []VehicleField
}

type VehicleStatus struct {
	VIN    string
	Groups []VehicleDataGroup
}

type fieldResponse struct {
	ID               string `json:"id"`
	TsCarSentUtc     string `json:"tsCarSentUtc"`
	TsCarSent        string `json:"tsCarSent"`
	TsCarCaptured    string `json:"tsCarCaptured"`
	TsTssReceivedUtc string `json:"tsTssReceivedUtc"`
	MilCarCaptured   int    `json:"milCarCaptured"`
	MilCarSent       int    `json:"milCarSent"`
	Value            string `json:"value"`
	Unit             string `json:"unit"`
	TextID           string `json:"textId"`
	PicID            string `json:"picId"`
}

type dataResponse struct {
	ID     string          `json:"id"`
	Fields []fieldResponse `json:"fields"`
}

type vehicleStatusResponse struct {
	VIN  string         `json:"vin"`
	Data []dataResponse `json:"data"`
}

// GetStatus returns the full telemetry bundle of vin.
func (c *Client) GetStatus(vin string) (*VehicleStatus, error) {
	const summary = "Failed to get status"
	log.Debugf("GetStatus %s", vin)

	var response vehicleStatusResponse
	if err := c.get(c.vehicleURL(vin, "status"), &response); err != nil {
		return nil, remoteError(summary, err)
	}

	status, err := response.toVehicleStatus()
	if err != nil {
		return nil, remoteError(summary, err)
	}
	return status, nil
}

func (r vehicleStatusResponse) toVehicleStatus() (*VehicleStatus, error) {
	status := VehicleStatus{
		VIN:    r.VIN,
		Groups: make([]VehicleDataGroup, 0, len(r.Data)),
	}
	for _, d := range r.Data {
		group, err := d.toDataGroup()
		if err != nil {
			return nil, err
		}
		status.Groups = append(status.Groups, group)
	}
	return &status, nil
}

func (d dataResponse) toDataGroup() (VehicleDataGroup, error) {
	group := VehicleDataGroup{
		ID:     d.ID,
		Fields: make([]VehicleField, 0, len(d.Fields)),
	}
	for _, f := range d.Fields {
		field, err := f.toField()
		if err != nil {
			return VehicleDataGroup{}, err
		}
		group.Fields = append(group.Fields, field)
	}
	return group, nil
}

func (f fieldResponse) toField() (VehicleField, error) {
	var ts timestamps
	field := VehicleField{
		ID:              f.ID,
		CarSentUTC:      ts.parse("tsCarSentUtc", f.TsCarSentUtc),
		CarSent:         ts.parse("tsCarSent", f.TsCarSent),
		CarCaptured:     ts.parse("tsCarCaptured", f.TsCarCaptured),
		ReceivedUTC:     ts.parse("tsTssReceivedUtc", f.TsTssReceivedUtc),
		MileageCaptured: f.MilCarCaptured,
		MileageSent:     f.MilCarSent,
		Value:           f.Value,
		Unit:            f.Unit,
		TextID:          f.TextID,
		PictureID:       f.PicID,
	}
	if ts.err != nil {
		return VehicleField{}, ts.err
	}
	return field, nil
}
