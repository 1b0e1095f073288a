package skoda

import (
	geo "github.com/kellydunn/golang-geo"
)

// microdegrees per degree in the API's integer coordinates
const coordinateScale = 1e6

// VehicleLocation holds the coordinates exactly as the API reports them.
type VehicleLocation struct {
	Latitude  int
	Longitude int
}

// Point converts the integer microdegree coordinates to a geo point.
func (l VehicleLocation) Point() *geo.Point {
	return geo.NewPoint(float64(l.Latitude)/coordinateScale, float64(l.Longitude)/coordinateScale)
}

// DistanceTo returns the great-circle distance in meters between the vehicle
// and the given point in decimal degrees.
func (l VehicleLocation) DistanceTo(latitude, longitude float64) float64 {
	return l.Point().GreatCircleDistance(geo.NewPoint(latitude, longitude)) * 1000
}

type locationResponse struct {
	Latitude  int `json:"latitude"`
	Longitude int `json:"longitude"`
}

func (c *Client) GetLocation(vin string) (*VehicleLocation, error) {
	log.Debugf("GetLocation %s", vin)

	var response locationResponse
	if err := c.get(c.vehicleURL(vin, "location"), &response); err != nil {
		return nil, remoteError("Failed to get car location", err)
	}
	return &VehicleLocation{
		Latitude:  response.Latitude,
		Longitude: response.Longitude,
	}, nil
}
