//go:build integration
// +build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
	"github.com/fivetwenty-io/quickbooks-client/pkg/qbclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	RealmID      string
	ClientID     string
	ClientSecret string
	RefreshToken string
	AccessToken  string
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		RealmID:      os.Getenv("QB_REALM"),
		ClientID:     os.Getenv("QB_CLIENT_ID"),
		ClientSecret: os.Getenv("QB_CLIENT_SECRET"),
		RefreshToken: os.Getenv("QB_REFRESH_TOKEN"),
		AccessToken:  os.Getenv("QB_TOKEN"),
	}
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.RealmID == "" {
		t.Skip("QB_REALM not set, skipping integration test")
	}

	if config.AccessToken == "" && config.RefreshToken == "" {
		t.Skip("QB_TOKEN or QB_REFRESH_TOKEN not set, skipping integration test")
	}
}

// NewSandboxClient builds a client against the sandbox environment
func (config *TestConfig) NewSandboxClient(t *testing.T) qb.Client {
	t.Helper()

	client, err := qbclient.New(&qb.Config{
		RealmID:      config.RealmID,
		Sandbox:      true,
		AccessToken:  config.AccessToken,
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RefreshToken: config.RefreshToken,
	})
	if err != nil {
		t.Fatalf("failed to create sandbox client: %v", err)
	}

	return client
}

// GenerateTestName creates a unique name with a timestamp suffix
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
