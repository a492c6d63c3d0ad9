package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ledgerline-labs/sheetfeed/internal/adapters/driven/auth"
)

var (
	authClientID     string
	authClientSecret string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Sign in to Google for private feed access",
	Long: `Runs the OAuth authorization-code flow for the spreadsheets feed
scope. Opens nothing by itself: visit the printed URL, approve access and
paste the authorization code back.`,
	Args: cobra.NoArgs,
	RunE: runAuth,
}

func init() {
	authCmd.Flags().StringVar(&authClientID, "client-id", "", "OAuth client id (defaults to configured client_id)")
	authCmd.Flags().StringVar(&authClientSecret, "client-secret", "", "OAuth client secret (defaults to configured client_secret)")
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, _ []string) error {
	clientID := authClientID
	if clientID == "" {
		clientID = store.GetString(cfgClientID)
	}
	clientSecret := authClientSecret
	if clientSecret == "" {
		clientSecret = store.GetString(cfgClientSecret)
	}
	if clientID == "" {
		return fmt.Errorf("no OAuth client id; pass --client-id or set client_id in %s", store.Path())
	}

	provider := auth.NewOAuthProvider(clientID, clientSecret, "http://localhost")
	state := uuid.NewString()

	cmd.Println("Visit the following URL in your browser and approve access:")
	cmd.Println()
	cmd.Println("  " + provider.AuthURL(state))
	cmd.Println()
	cmd.Print("Enter the authorization code: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	code, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("empty authorization code")
	}

	ctx := context.Background()
	if err := provider.Exchange(ctx, code); err != nil {
		return err
	}

	token, err := provider.GetToken(ctx)
	if err != nil {
		return err
	}

	store.Set(cfgClientID, clientID)
	if clientSecret != "" {
		store.Set(cfgClientSecret, clientSecret)
	}
	store.Set(cfgToken, token)
	if err := store.Save(); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	cmd.Println("Signed in; token saved.")
	return nil
}
