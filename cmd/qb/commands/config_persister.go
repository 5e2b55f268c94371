package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// fileConfig is the shape of ~/.qb/config.yml.
type fileConfig struct {
	Realm          string     `yaml:"realm,omitempty"`
	Sandbox        bool       `yaml:"sandbox,omitempty"`
	ClientID       string     `yaml:"client_id,omitempty"`
	ClientSecret   string     `yaml:"client_secret,omitempty"`
	RefreshToken   string     `yaml:"refresh_token,omitempty"`
	Token          string     `yaml:"token,omitempty"`
	TokenExpiresAt *time.Time `yaml:"token_expires_at,omitempty"`
	MinorVersion   int        `yaml:"minorversion,omitempty"`
}

func configFilePath() (string, error) {
	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".qb", "config.yml"), nil
}

func loadFileConfig() (*fileConfig, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &fileConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

func saveFileConfig(config *fileConfig) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// The file carries credentials.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ConfigPersister writes rotated token pairs back to the config file so
// the next invocation can still refresh.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateTokens updates the stored access and refresh tokens.
func (p *ConfigPersister) UpdateTokens(accessToken string, expiresAt time.Time, refreshToken string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config, err := loadFileConfig()
	if err != nil {
		return err
	}

	config.Token = accessToken

	if !expiresAt.IsZero() {
		config.TokenExpiresAt = &expiresAt
	}

	if refreshToken != "" {
		config.RefreshToken = refreshToken
	}

	return saveFileConfig(config)
}
