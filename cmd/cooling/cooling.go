package cooling

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/denysvitali/skoda-remote/cmd/root"
	"github.com/denysvitali/skoda-remote/skoda"
)

var CoolingCmd = &cobra.Command{
	Use:   "cooling",
	Short: "Show climatisation state and timers",
	Long:  `Show the current climatisation report and the programmed cooling timers of the vehicle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("client not initialized")
		}

		vin, err := root.GetVIN()
		if err != nil {
			return err
		}

		info, err := client.GetCooling(vin)
		if err != nil {
			return err
		}

		printCoolingInfo(info)
		return nil
	},
}

func init() {
	root.RootCmd.AddCommand(CoolingCmd)
}

func printCoolingInfo(info *skoda.CoolingInfo) {
	fmt.Printf("Climatisation: %s (status %d)\n", info.Report.State, info.Report.StatusCode)
	fmt.Printf("Duration:      %d (%d remaining)\n", info.Report.Duration, info.Report.RemainingDuration)
	fmt.Printf("Start mode:    %s\n", info.StartMode)
	fmt.Printf("Heater mode:   %s\n", info.HeaterMode)
	fmt.Printf("Outdoor temp:  %d (%s, %s)\n", info.OutdoorTemp, info.OutdoorTempValid, info.TemperatureTime.Format("2006-01-02 15:04"))
	fmt.Printf("Captured:      %s\n", humanize.Time(info.CapturedAt))

	if len(info.Timers) == 0 {
		fmt.Println("No timers programmed.")
		return
	}

	var rows [][]string
	for _, t := range info.Timers {
		programmed := "❌"
		if t.Programmed {
			programmed = "✅"
		}
		rows = append(rows, []string{
			strconv.Itoa(t.ID),
			t.HeaterMode,
			strconv.Itoa(t.Weekday),
			fmt.Sprintf("%02d:%02d", t.Hour, t.Minute),
			programmed,
		})
	}

	fmt.Println(root.NewTable([]string{"ID", "MODE", "WEEKDAY", "TIME", "PROGRAMMED"}, rows, 2))
}
