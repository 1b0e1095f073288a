package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/denysvitali/skoda-remote/cmd/root"
	"github.com/denysvitali/skoda-remote/skoda"
)

var ConfigureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Write account and vehicle settings to the config file",
	Long: `Write account and vehicle settings to the config file.
Only the given flags are changed, everything else in the file is kept.
Values coming from SKODA_* environment variables are never written.`,
	Example: `  # Store credentials and the default vehicle
  skoda-remote configure --email me@example.com --password secret --default-vin TMBJJ7NE1L0000001`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := root.GetConfigPath()
		if err := saveChanged(configPath, cmd.Flags()); err != nil {
			return err
		}
		fmt.Printf("Configuration written to %s\n", configPath)
		return nil
	},
}

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("configure", pflag.ContinueOnError)
	flags.String("email", "", "Account email")
	flags.String("password", "", "Account password")
	flags.String("server", "", "Vehicle API base URL")
	flags.String("default-vin", "", "Default vehicle identification number")
	flags.String("pin", "", "Vehicle PIN")
	return flags
}

// saveChanged applies the flags set on the command line to the config file
// at configPath, creating it if needed.
func saveChanged(configPath string, flags *pflag.FlagSet) error {
	cfg, err := skoda.GetConfigFromFile(configPath)
	if os.IsNotExist(err) {
		cfg = &skoda.Config{}
	} else if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	targets := map[string]*string{
		"email":       &cfg.Email,
		"password":    &cfg.Password,
		"server":      &cfg.Server,
		"default-vin": &cfg.VIN,
		"pin":         &cfg.Pin,
	}
	for name, target := range targets {
		if !flags.Changed(name) {
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*target = value
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := skoda.SaveConfig(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

func init() {
	ConfigureCmd.Flags().AddFlagSet(newFlagSet())

	root.RootCmd.AddCommand(ConfigureCmd)
}
