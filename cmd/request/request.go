package request

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/denysvitali/skoda-remote/cmd/root"
)

var RequestCmd = &cobra.Command{
	Use:   "request <id>",
	Short: "Show the status of an asynchronous request",
	Long:  `Show the status of a previously issued action, such as a flash or honk request.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := root.GetClient()
		if client == nil {
			return fmt.Errorf("client not initialized")
		}

		vin, err := root.GetVIN()
		if err != nil {
			return err
		}

		status, err := client.GetRequestStatus(vin, args[0])
		if err != nil {
			return err
		}

		fmt.Println(status)
		return nil
	},
}

func init() {
	root.RootCmd.AddCommand(RequestCmd)
}
