// Package commands implements the qb CLI subcommands.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
	"github.com/fivetwenty-io/quickbooks-client/pkg/qbclient"
)

// Output formats.
const (
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"
)

// Common static errors used throughout the commands package.
var (
	ErrRealmRequired       = errors.New("realm id is required (flag --realm, env QB_REALM, or login)")
	ErrCredentialsRequired = errors.New("no credentials configured; run 'qb login' or set QB_TOKEN")
	ErrNameRequired        = errors.New("a display name is required")
	ErrReportNameRequired  = errors.New("a report name is required")
	ErrQueryRequired       = errors.New("a query statement is required")
)

// clientConfig assembles a qb.Config from viper, which merges the
// config file, environment, and flags.
func clientConfig() (*qb.Config, error) {
	realmID := viper.GetString("realm")
	if realmID == "" {
		return nil, ErrRealmRequired
	}

	config := &qb.Config{
		RealmID:      realmID,
		Sandbox:      viper.GetBool("sandbox"),
		AccessToken:  viper.GetString("token"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
		RefreshToken: viper.GetString("refresh_token"),
		MinorVersion: viper.GetInt("minorversion"),
		APIEndpoint:  viper.GetString("api_endpoint"),
	}

	if config.AccessToken == "" && config.RefreshToken == "" {
		return nil, ErrCredentialsRequired
	}

	// Rotated refresh tokens go back into the config file so the next
	// invocation still works.
	if config.ClientID != "" && config.ClientSecret != "" && config.RefreshToken != "" {
		config.TokenPersister = NewConfigPersister()
	}

	if viper.GetBool("verbose") {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("creating logger: %w", err)
		}

		config.Logger = qb.NewZapLogger(logger)
		config.Debug = true
	}

	return config, nil
}

// newClient builds the API client for a command invocation.
func newClient() (qb.Client, error) {
	config, err := clientConfig()
	if err != nil {
		return nil, err
	}

	client, err := qbclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// renderOutput writes value as json or yaml per the output flag, or
// calls renderTable for the default format.
func renderOutput(value interface{}, renderTable func() error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}

		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)
		defer func() { _ = encoder.Close() }()

		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}

		return nil
	default:
		return renderTable()
	}
}
