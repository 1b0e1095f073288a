package skoda

import (
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

type IdentityConfig struct {
	TokenURL string `yaml:"token_url,omitempty"`
	ClientID string `yaml:"client_id,omitempty"`
}

type HomeConfig struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

type Config struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Server   string `yaml:"server,omitempty"`

	VIN string `yaml:"vin,omitempty"`
	Pin string `yaml:"pin,omitempty"`

	Identity IdentityConfig `yaml:"identity,omitempty"`
	Home     HomeConfig     `yaml:"home,omitempty"`
}

var defaultConfigFilePath = xdg.ConfigHome + "/skoda-remote/config.yaml"

func DefaultConfigFilePath() string {
	return defaultConfigFilePath
}

func GetConfigFromFile(inputConfigFile string) (*Config, error) {
	if inputConfigFile == "" {
		inputConfigFile = defaultConfigFilePath
	}
	f, err := os.Open(inputConfigFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	err = yaml.NewDecoder(f).Decode(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig writes cfg to configFile, replacing any previous content. The
// file holds the account password, so it is created user-readable only.
func SaveConfig(cfg *Config, configFile string) error {
	f, err := os.OpenFile(configFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return yaml.NewEncoder(f).Encode(cfg)
}
