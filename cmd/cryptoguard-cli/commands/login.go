package commands

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

const keyringUser = "cryptoguard"

func keyringService(vexURL string) string {
	host := vexURL
	if u, err := url.Parse(vexURL); err == nil && u.Host != "" {
		host = u.Host
	}
	return "cryptoguard/" + strings.TrimSuffix(host, "/")
}

func storeTokenInKeyring(vexURL, token string) error {
	return keyring.Set(keyringService(vexURL), keyringUser, token)
}

func getTokenFromKeyring(vexURL string) (string, error) {
	token, err := keyring.Get(keyringService(vexURL), keyringUser)
	if err != nil {
		return "", err
	}
	return token, nil
}

// vexToken returns the token flag or, if unset, the token stored for the feed host.
func vexToken(cmd *cobra.Command, vexURL string) string {
	token, _ := cmd.Flags().GetString("vexToken")
	if token != "" || vexURL == "" {
		return token
	}
	token, err := getTokenFromKeyring(vexURL)
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			slog.Debug("could not read token from keyring", "err", err)
		}
		return ""
	}
	return token
}

func NewLoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "login <vexURL>",
		Short:             "Store the token of a vex feed in the system keyring",
		DisableAutoGenTag: true,
		Long: `Store the token of a vex feed in the system keyring.

Later vex and export runs against the same host pick the token up automatically if --vexToken is not set.`,
		Example: `  cryptoguard-cli login https://cryptoguard.example.com --token <token>`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, _ := cmd.Flags().GetString("token")
			if token == "" {
				return fmt.Errorf("token must not be empty")
			}
			if err := storeTokenInKeyring(args[0], token); err != nil {
				return errors.Wrap(err, "could not store token in keyring")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored token for %s\n", keyringService(args[0])) // nolint:errcheck
			return nil
		},
	}
	cmd.Flags().String("token", "", "token of the vex feed")
	return cmd
}
