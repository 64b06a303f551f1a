// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/links"
	"github.com/pdiddy/content-engine/internal/pages"
)

var linksCmd = &cobra.Command{
	Use:   "links [title]",
	Short: "Suggest internal links for an article title",
	Args:  cobra.ExactArgs(1),
	RunE:  runLinks,
}

func runLinks(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	pgCfg := pagesConfig()

	store, err := pages.NewStore(pgCfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sitePages, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	suggestions := links.Suggest(args[0], sitePages, pgCfg.MaxSuggestions)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(suggestions)
	}
	for _, s := range suggestions {
		fmt.Printf("%-40s  %-30s  %s\n", s.AnchorText, s.TargetSlug, s.Context)
	}
	fmt.Fprintf(os.Stderr, "%d suggestions\n", len(suggestions))
	return nil
}

func init() {
	linksCmd.Flags().Bool("json", false, "output suggestions as JSON")

	rootCmd.AddCommand(linksCmd)
}
