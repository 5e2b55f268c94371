package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
	"github.com/fivetwenty-io/quickbooks-client/pkg/qbclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		realmID      string
		clientID     string
		clientSecret string
		refreshToken string
		accessToken  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store credentials for a company",
		Long: `Store credentials for a QuickBooks company realm in the config file.

Either an OAuth2 client id, secret, and refresh token (obtained from the
developer portal's OAuth playground or your own authorization flow), or
a plain access token. Credentials are verified against the company info
endpoint before saving.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			if realmID == "" {
				realmID = viper.GetString("realm")
			}

			if realmID == "" {
				fmt.Print("Realm (company) id: ")
				realmID, _ = reader.ReadString('\n')
				realmID = strings.TrimSpace(realmID)
			}

			if realmID == "" {
				return ErrRealmRequired
			}

			if accessToken == "" && clientID == "" {
				fmt.Print("Client id (leave blank to use an access token): ")
				clientID, _ = reader.ReadString('\n')
				clientID = strings.TrimSpace(clientID)
			}

			if clientID != "" {
				if clientSecret == "" {
					fmt.Print("Client secret: ")

					secret, err := term.ReadPassword(syscall.Stdin)

					fmt.Println()

					if err != nil {
						return fmt.Errorf("reading client secret: %w", err)
					}

					clientSecret = string(secret)
				}

				if refreshToken == "" {
					fmt.Print("Refresh token: ")

					token, err := term.ReadPassword(syscall.Stdin)

					fmt.Println()

					if err != nil {
						return fmt.Errorf("reading refresh token: %w", err)
					}

					refreshToken = string(token)
				}
			} else if accessToken == "" {
				fmt.Print("Access token: ")

				token, err := term.ReadPassword(syscall.Stdin)

				fmt.Println()

				if err != nil {
					return fmt.Errorf("reading access token: %w", err)
				}

				accessToken = string(token)
			}

			sandbox := viper.GetBool("sandbox")

			// Verify before saving.
			client, err := qbclient.New(&qb.Config{
				RealmID:      realmID,
				Sandbox:      sandbox,
				ClientID:     clientID,
				ClientSecret: clientSecret,
				RefreshToken: refreshToken,
				AccessToken:  accessToken,
			})
			if err != nil {
				return err
			}

			info, err := client.GetCompanyInfo(cmd.Context())
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			config, err := loadFileConfig()
			if err != nil {
				return err
			}

			config.Realm = realmID
			config.Sandbox = sandbox
			config.ClientID = clientID
			config.ClientSecret = clientSecret
			config.RefreshToken = refreshToken
			config.Token = accessToken

			if err := saveFileConfig(config); err != nil {
				return err
			}

			fmt.Printf("Logged in to %s (realm %s)\n", info.CompanyName, realmID)

			return nil
		},
	}

	cmd.Flags().StringVar(&realmID, "realm-id", "", "company realm id")
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth2 client id")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth2 client secret")
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "OAuth2 refresh token")
	cmd.Flags().StringVar(&accessToken, "access-token", "", "plain access token")

	return cmd
}
