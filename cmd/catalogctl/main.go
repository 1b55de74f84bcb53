package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tendant/simple-catalog/pkg/catalog/client"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCommand builds the catalogctl command tree.
func NewRootCommand() *cobra.Command {
	var serverURL string

	rootCmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Command line client for the catalog service",
		Long: `catalogctl talks to a running catalog server over HTTP.

Note that "get" records a view on the server, exactly like any other
single-item read.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultURL := os.Getenv("CATALOG_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", defaultURL, "catalog server base URL (env CATALOG_URL)")

	newClient := func() *client.Client {
		return client.New(serverURL)
	}

	rootCmd.AddCommand(NewListCommand(newClient))
	rootCmd.AddCommand(NewGetCommand(newClient))
	rootCmd.AddCommand(NewAuthorCommand(newClient))
	rootCmd.AddCommand(NewCreateCommand(newClient))
	rootCmd.AddCommand(NewUpdateCommand(newClient))
	rootCmd.AddCommand(NewDeleteCommand(newClient))
	rootCmd.AddCommand(NewLikeCommand(newClient))
	rootCmd.AddCommand(NewCategoriesCommand(newClient))
	rootCmd.AddCommand(NewTagsCommand(newClient))

	return rootCmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
