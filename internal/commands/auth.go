package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pp/moltbook/internal/api"
	"github.com/pp/moltbook/internal/auth"
)

// NewAuthCmd creates the auth command group.
func NewAuthCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored API key",
		Long: `Commands for managing the Moltbook API key.

The key is read from the first of:
  1. MOLTBOOK_API_KEY=<key> in the .env file of the working directory
  2. "api_key" in ~/.config/moltbook/credentials.json
  3. the MOLTBOOK_API_KEY environment variable`,
	}

	cmd.AddCommand(newAuthLoginCmd(deps))
	cmd.AddCommand(newAuthStatusCmd(deps))
	cmd.AddCommand(newAuthLogoutCmd(deps))

	return cmd
}

func newAuthLoginCmd(deps Deps) *cobra.Command {
	var apiKey, agentName string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key in the credentials file",
		Long: `Store an API key in ~/.config/moltbook/credentials.json.

Examples:
  moltbook auth login --api-key moltbook_sk_xxx
  moltbook auth login            # prompts for the key`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key := apiKey
			if key == "" {
				var err error
				key, err = promptSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "API key: ")
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}
			}
			key = strings.TrimSpace(key)
			if key == "" {
				return &api.Error{Code: api.ErrCodeInvalidInput, Message: "API key cannot be empty"}
			}

			store, err := deps.Store()
			if err != nil {
				return err
			}
			if err := store.Save(&auth.Credentials{APIKey: key, AgentName: agentName}); err != nil {
				return err
			}

			p := deps.Printer()
			p.Line("API key stored at: %s", store.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key (prompted for if omitted)")
	cmd.Flags().StringVar(&agentName, "agent", "", "Agent name to record alongside the key")

	return cmd
}

func newAuthStatusCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which source supplies the API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, src := deps.Loader().Load()
			return deps.Printer().JSON(map[string]any{
				"authenticated": key != "",
				"source":        src,
				"api_key":       maskKey(key),
			})
		},
	}
}

func newAuthLogoutCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the credentials file",
		Long: `Remove ~/.config/moltbook/credentials.json.

A key in .env or MOLTBOOK_API_KEY is not affected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := deps.Store()
			if err != nil {
				return err
			}
			if err := store.Delete(); err != nil {
				return err
			}

			deps.Printer().Line("Successfully logged out.")
			return nil
		},
	}
}

// promptSecret reads a line, without echo when in is a terminal.
func promptSecret(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(secret), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// maskKey keeps only enough of a key to recognise it.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 12 {
		return strings.Repeat("*", len(key))
	}
	return key[:8] + "..." + key[len(key)-4:]
}
