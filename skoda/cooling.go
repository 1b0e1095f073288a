package skoda

import "time"

type ClimatisationReport struct {
	State             string
	Duration          int
	RemainingDuration int
	StatusCode        int
}

// CoolingTimer is a recurring climatisation program stored in the vehicle.
type CoolingTimer struct {
	ID         int
	HeaterMode string
	Programmed bool
	Weekday    int
	Hour       int
	Minute     int
}

type CoolingInfo struct {
	InstrumentClusterTime time.Time
	CapturedAt            time.Time
	ParkingClock          time.Time
	OutdoorTempValid      string
	OutdoorTemp           int
	TemperatureTime       time.Time
	ClimatisationDuration int
	StartMode             string
	HeaterMode            string
	Report                ClimatisationReport
	Timers                []CoolingTimer
}

type reportResponse struct {
	ClimatisationState    string `json:"climatisationState"`
	ClimatisationDuration int    `json:"climatisationDuration"`
	RemainingClimateTime  int    `json:"remainingClimateTime"`
	ClimateStatusCode     int    `json:"climateStatusCode"`
}

type timerResponse struct {
	ID                    int    `json:"id"`
	HeaterMode            string `json:"heaterMode"`
	TimerProgrammedStatus bool   `json:"timerProgrammedStatus"`
	Weekday               int    `json:"weekday"`
	Hour                  int    `json:"hour"`
	Minute                int    `json:"minute"`
}

type coolingResponse struct {
	InstrumentClusterTime   string          `json:"instrumentClusterTime"`
	CarCapturedUTCTimestamp string          `json:"carCapturedUTCTimestamp"`
	VehicleParkingClock     string          `json:"vehicleParkingClock"`
	OutdoorTempValid        string          `json:"outdoorTempValid"`
	OutdoorTemp             int             `json:"outdoorTemp"`
	TemperatureTime         string          `json:"temperatureTime"`
	ClimatisationDuration   int             `json:"climatisationDuration"`
	StartMode               string          `json:"startMode"`
	HeaterMode              string          `json:"heaterMode"`
	Report                  reportResponse  `json:"report"`
	Timers                  []timerResponse `json:"timers"`
}

// GetCooling returns the climatisation state and programmed timers of vin.
func (c *Client) GetCooling(vin string) (*CoolingInfo, error) {
	const summary = "Failed to get cooling information"
	log.Debugf("GetCooling %s", vin)

	var response coolingResponse
	if err := c.get(c.vehicleURL(vin, "cooling"), &response); err != nil {
		return nil, remoteError(summary, err)
	}

	info, err := response.toCoolingInfo()
	if err != nil {
		return nil, remoteError(summary, err)
	}
	return info, nil
}

func (r coolingResponse) toCoolingInfo() (*CoolingInfo, error) {
	var ts timestamps
	info := CoolingInfo{
		InstrumentClusterTime: ts.parse("instrumentClusterTime", r.InstrumentClusterTime),
		CapturedAt:            ts.parse("carCapturedUTCTimestamp", r.CarCapturedUTCTimestamp),
		ParkingClock:          ts.parse("vehicleParkingClock", r.VehicleParkingClock),
		OutdoorTempValid:      r.OutdoorTempValid,
		OutdoorTemp:           r.OutdoorTemp,
		TemperatureTime:       ts.parse("temperatureTime", r.TemperatureTime),
		ClimatisationDuration: r.ClimatisationDuration,
		StartMode:             r.StartMode,
		HeaterMode:            r.HeaterMode,
		Report: ClimatisationReport{
			State:             r.Report.ClimatisationState,
			Duration:          r.Report.ClimatisationDuration,
			RemainingDuration: r.Report.RemainingClimateTime,
			StatusCode:        r.Report.ClimateStatusCode,
		},
		Timers: make([]CoolingTimer, 0, len(r.Timers)),
	}
	if ts.err != nil {
		return nil, ts.err
	}

	for _, t := range r.Timers {
		info.Timers = append(info.Timers, CoolingTimer{
			ID:         t.ID,
			HeaterMode: t.HeaterMode,
			Programmed: t.TimerProgrammedStatus,
			Weekday:    t.Weekday,
			Hour:       t.Hour,
			Minute:     t.Minute,
		})
	}
	return &info, nil
}
