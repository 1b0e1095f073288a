package location

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/denysvitali/skoda-remote/cmd/root"
)

var LocationCmd = &cobra.Command{
	Use:   "location",
	Short: "Show the parking position of the vehicle",
	Long: `Show the last reported position of the vehicle.
If a home position is configured, the distance to it is shown as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("client not initialized")
		}

		vin, err := root.GetVIN()
		if err != nil {
			return err
		}

		location, err := client.GetLocation(vin)
		if err != nil {
			return err
		}

		p := location.Point()
		fmt.Printf("Position: %.6f, %.6f\n", p.Lat(), p.Lng())
		fmt.Printf("Map:      https://www.openstreetmap.org/?mlat=%.6f&mlon=%.6f\n", p.Lat(), p.Lng())

		if root.HasHome() {
			home := root.GetConfig().Home
			distance := location.DistanceTo(home.Latitude, home.Longitude)
			value, unit := humanize.ComputeSI(distance)
			fmt.Printf("Home:     %s %sm away\n", humanize.FtoaWithDigits(value, 2), unit)
		}
		return nil
	},
}

func init() {
	root.RootCmd.AddCommand(LocationCmd)
}
