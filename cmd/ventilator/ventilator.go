package ventilator

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/denysvitali/skoda-remote/cmd/root"
)

var (
	pin      string
	duration int
)

var VentilatorCmd = &cobra.Command{
	Use:   "ventilator",
	Short: "Start or stop the ventilator",
	Long: `Start or stop the ventilator of the vehicle.
Both actions require the vehicle PIN, taken from --pin or the configuration.`,
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ventilator",
	Example: `  # Run the ventilator for 30 seconds
  skoda-remote ventilator start --duration 30 --pin 1234`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vin, vehiclePin, err := resolve()
		if err != nil {
			return err
		}

		id, err := root.GetClient().StartVentilator(vin, vehiclePin, duration)
		if err != nil {
			return err
		}

		fmt.Printf("🌀 Ventilator started (request %s)\n", id)
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the ventilator",
	RunE: func(cmd *cobra.Command, args []string) error {
		vin, vehiclePin, err := resolve()
		if err != nil {
			return err
		}

		id, err := root.GetClient().StopVentilator(vin, vehiclePin)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Ventilator stopped (request %s)\n", id)
		return nil
	},
}

func init() {
	VentilatorCmd.PersistentFlags().StringVar(&pin, "pin", "", "Vehicle PIN (default is the configured pin)")
	startCmd.Flags().IntVarP(&duration, "duration", "d", 30, "Duration in seconds (max 30)")

	VentilatorCmd.AddCommand(startCmd)
	VentilatorCmd.AddCommand(stopCmd)

	root.RootCmd.AddCommand(VentilatorCmd)
}

func resolve() (string, string, error) {
	if root.GetClient() == nil {
		return "", "", fmt.Errorf("client not initialized")
	}

	vin, err := root.GetVIN()
	if err != nil {
		return "", "", err
	}

	vehiclePin := pin
	if vehiclePin == "" {
		vehiclePin = root.GetConfig().Pin
	}
	if vehiclePin == "" {
		return "", "", fmt.Errorf("PIN is required (use --pin or set pin in config)")
	}
	return vin, vehiclePin, nil
}
