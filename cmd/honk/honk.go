package honk

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/denysvitali/skoda-remote/cmd/root"
)

var duration int

var HonkCmd = &cobra.Command{
	Use:   "honk",
	Short: "Honk the horn of the vehicle",
	Long: `Honk the horn of the vehicle for the given number of seconds.
The current vehicle position is looked up first and sent along with the request.`,
	Example: `  # Honk for 5 seconds
  skoda-remote honk --duration 5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("client not initialized")
		}

		vin, err := root.GetVIN()
		if err != nil {
			return err
		}

		root.GetLogger().Debugf("Honking %s for %ds", vin, duration)
		status, err := client.Honk(vin, duration)
		if err != nil {
			return err
		}

		fmt.Printf("📯 Honk requested: %s\n", status)
		return nil
	},
}

func init() {
	HonkCmd.Flags().IntVarP(&duration, "duration", "d", 5, "Duration in seconds (max 30)")

	root.RootCmd.AddCommand(HonkCmd)
}
