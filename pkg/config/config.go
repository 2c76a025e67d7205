package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`
	HouseCanary struct {
		BaseURL        string `yaml:"base_url"`
		APIKey         string `yaml:"api_key"`
		APISecret      string `yaml:"api_secret"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"housecanary"`
}

// LoadConfig reads the optional YAML config file at path, then applies
// environment variable overrides. Secrets are expected to come from the
// environment; the YAML file carries non-secret settings only.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %v", err)
			}
		}
	}

	// Override with environment variables if set
	if port := os.Getenv("PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value: %v", err)
		}
		cfg.Server.Port = portNum
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if username := os.Getenv("API_USERNAME"); username != "" {
		cfg.Auth.Username = username
	}
	if password := os.Getenv("API_PASSWORD"); password != "" {
		cfg.Auth.Password = password
	}
	if baseURL := os.Getenv("HOUSE_CANARY_API_BASE_URL"); baseURL != "" {
		cfg.HouseCanary.BaseURL = baseURL
	}
	if key := os.Getenv("HOUSE_CANARY_API_KEY"); key != "" {
		cfg.HouseCanary.APIKey = key
	}
	if secret := os.Getenv("HOUSE_CANARY_API_SECRET"); secret != "" {
		cfg.HouseCanary.APISecret = secret
	}
	if timeout := os.Getenv("HOUSE_CANARY_TIMEOUT_SECONDS"); timeout != "" {
		timeoutNum, err := strconv.Atoi(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid HOUSE_CANARY_TIMEOUT_SECONDS value: %v", err)
		}
		cfg.HouseCanary.TimeoutSeconds = timeoutNum
	}

	// Set default values
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "INFO"
	}
	if cfg.HouseCanary.BaseURL == "" {
		cfg.HouseCanary.BaseURL = "https://api.housecanary.com"
	}
	if cfg.HouseCanary.TimeoutSeconds <= 0 {
		cfg.HouseCanary.TimeoutSeconds = 30
	}

	// All four secrets are required; refuse to start without them. The
	// values themselves are never included in the error.
	var missing []string
	if cfg.HouseCanary.APIKey == "" {
		missing = append(missing, "HOUSE_CANARY_API_KEY")
	}
	if cfg.HouseCanary.APISecret == "" {
		missing = append(missing, "HOUSE_CANARY_API_SECRET")
	}
	if cfg.Auth.Username == "" {
		missing = append(missing, "API_USERNAME")
	}
	if cfg.Auth.Password == "" {
		missing = append(missing, "API_PASSWORD")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535")
	}

	return &cfg, nil
}
