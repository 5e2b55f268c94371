package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	var keepRemote bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget stored credentials",
		Long: `Remove stored credentials from the config file. Unless --local is
given, the refresh token is also revoked with the platform, which
disconnects the company from the OAuth application.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !keepRemote {
				client, err := newClient()
				if err != nil {
					return err
				}

				if err := client.RevokeToken(cmd.Context()); err != nil {
					return fmt.Errorf("revoking token: %w", err)
				}
			}

			config, err := loadFileConfig()
			if err != nil {
				return err
			}

			config.Token = ""
			config.RefreshToken = ""
			config.TokenExpiresAt = nil
			config.ClientSecret = ""

			if err := saveFileConfig(config); err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}

	cmd.Flags().BoolVar(&keepRemote, "local", false, "only clear the local config, do not revoke")

	return cmd
}
