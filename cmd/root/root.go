package root

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/denysvitali/skoda-remote/skoda"
)

var (
	cfgFile  string
	logLevel string
	vinFlag  string
	cfg      *skoda.Config
	client   *skoda.Client
	log      = logrus.StandardLogger()
)

var RootCmd = &cobra.Command{
	Use:   "skoda-remote",
	Short: "Skoda Remote CLI - Control your connected Skoda",
	Long: `Skoda Remote CLI talks to the vehicle API on behalf of your Skoda account.
You can read cooling, status and location data, flash the lights, honk, and start or stop the ventilator.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Set log level
		if err := setLogLevel(); err != nil {
			return err
		}

		// Skip initialization for commands that don't need the client
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		if err := initConfig(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		// Initialize the API client for commands that need it
		needsClient := []string{"cooling", "flash", "honk", "request", "status", "location", "ventilator", "watch"}
		for _, cmdName := range needsClient {
			if cmd.Name() == cmdName || (cmd.HasParent() && cmd.Parent().Name() == cmdName) {
				if err := initClient(); err != nil {
					return fmt.Errorf("unable to initialize client: %w", err)
				}
				break
			}
		}

		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/skoda-remote/config.yaml)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().StringVar(&vinFlag, "vin", "", "vehicle identification number (default is the configured vin)")

	// Bind flags to viper
	viper.BindPFlag("config", RootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", RootCmd.PersistentFlags().Lookup("log-level"))

	// Set environment variable prefix
	viper.SetEnvPrefix("SKODA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func initConfig() error {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("unable to load .env: %v", err)
	}

	// Determine config file path
	configPath := ""

	if cfgFile != "" {
		// Use config file from the flag
		configPath = cfgFile
		viper.SetConfigFile(cfgFile)
	} else {
		configPath = filepath.Join(xdg.ConfigHome, "skoda-remote", "config.yaml")

		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "skoda-remote"))
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		log.Debug("No config file found, using defaults and environment variables")
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
		configPath = viper.ConfigFileUsed()
	}

	var err error
	cfg, err = skoda.GetConfigFromFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Config file not found, creating empty config")
			cfg = &skoda.Config{}
		} else {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	// Override with viper values if set (including environment variables)
	if viper.IsSet("email") {
		cfg.Email = viper.GetString("email")
	}
	if viper.IsSet("password") {
		cfg.Password = viper.GetString("password")
	}
	if viper.IsSet("server") {
		cfg.Server = viper.GetString("server")
	}
	if viper.IsSet("vin") {
		cfg.VIN = viper.GetString("vin")
	}
	if viper.IsSet("pin") {
		cfg.Pin = viper.GetString("pin")
	}
	if viper.IsSet("identity.token_url") {
		cfg.Identity.TokenURL = viper.GetString("identity.token_url")
	}
	if viper.IsSet("identity.client_id") {
		cfg.Identity.ClientID = viper.GetString("identity.client_id")
	}
	if viper.IsSet("home.latitude") {
		cfg.Home.Latitude = viper.GetFloat64("home.latitude")
	}
	if viper.IsSet("home.longitude") {
		cfg.Home.Longitude = viper.GetFloat64("home.longitude")
	}

	return nil
}

func initClient() error {
	if cfg == nil {
		return fmt.Errorf("configuration not loaded")
	}

	var err error
	client, err = skoda.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	log.Debugf("using server %s", client.Server())
	return nil
}

func setLogLevel() error {
	lvl, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", logLevel)
	}
	log.SetLevel(lvl)
	return nil
}

func GetClient() *skoda.Client {
	return client
}

func GetConfig() *skoda.Config {
	return cfg
}

func GetLogger() *logrus.Logger {
	return log
}

// GetVIN returns the --vin flag, falling back to the configured vehicle.
func GetVIN() (string, error) {
	if vinFlag != "" {
		return vinFlag, nil
	}
	if cfg != nil && cfg.VIN != "" {
		return cfg.VIN, nil
	}
	return "", fmt.Errorf("VIN is required (use --vin or set vin in config)")
}

// HasHome reports whether a home position is configured.
func HasHome() bool {
	return cfg != nil && (cfg.Home.Latitude != 0 || cfg.Home.Longitude != 0)
}

// GetConfigPath returns the config file in use, or the default location.
func GetConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}
	return filepath.Join(xdg.ConfigHome, "skoda-remote", "config.yaml")
}
