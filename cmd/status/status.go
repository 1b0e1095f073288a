package status

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/denysvitali/skoda-remote/cmd/root"
	"github.com/denysvitali/skoda-remote/skoda"
)

var showFields bool

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show vehicle status and remaining range",
	Long: `Show the remaining range of the vehicle.
With --fields, every data group and field reported by the vehicle is listed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("client not initialized")
		}

		vin, err := root.GetVIN()
		if err != nil {
			return err
		}

		status, err := client.GetStatus(vin)
		if err != nil {
			return err
		}

		fmt.Printf("VIN: %s\n", status.VIN)
		km, err := status.Kilometer()
		switch {
		case err == nil:
			fmt.Printf("Range: %s km\n", humanize.Comma(int64(km)))
		case errors.Is(err, skoda.ErrGroupNotFound), errors.Is(err, skoda.ErrFieldNotFound):
			fmt.Println("Range: not reported")
			root.GetLogger().Debugf("range lookup: %v", err)
		default:
			return fmt.Errorf("failed to read range: %w", err)
		}

		if showFields {
			printDataGroups(status.Groups)
		}
		return nil
	},
}

func init() {
	StatusCmd.Flags().BoolVar(&showFields, "fields", false, "List all data groups and fields")

	root.RootCmd.AddCommand(StatusCmd)
}

func printDataGroups(groups []skoda.VehicleDataGroup) {
	var rows [][]string
	for _, g := range groups {
		for _, f := range g.Fields {
			rows = append(rows, []string{
				g.ID,
				f.ID,
				f.TextID,
				f.Value,
				f.Unit,
				humanize.Time(f.CarCaptured),
			})
		}
	}
	fmt.Println(root.NewTable([]string{"GROUP", "FIELD", "TEXT", "VALUE", "UNIT", "CAPTURED"}, rows, 3))
}
