package flash

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/denysvitali/skoda-remote/cmd/root"
)

var duration int

var FlashCmd = &cobra.Command{
	Use:   "flash",
	Short: "Flash the lights of the vehicle",
	Long: `Flash the lights of the vehicle for the given number of seconds.
The current vehicle position is looked up first and sent along with the request.`,
	Example: `  # Flash the lights of the configured vehicle for 10 seconds
  skoda-remote flash

  # Flash the lights of a specific vehicle for 20 seconds
  skoda-remote flash --vin TMBJJ7NE1L0000001 --duration 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("client not initialized")
		}

		vin, err := root.GetVIN()
		if err != nil {
			return err
		}

		status, err := client.Flash(vin, duration)
		if err != nil {
			return err
		}

		fmt.Printf("💡 Flash requested: %s\n", status)
		return nil
	},
}

func init() {
	FlashCmd.Flags().IntVarP(&duration, "duration", "d", 10, "Duration in seconds (max 30)")

	root.RootCmd.AddCommand(FlashCmd)
}
