// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/pages"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Manage the site page inventory used for link suggestions",
}

var pagesImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import pages from a YAML file into the inventory",
	Long: `Import reads a YAML list of {slug, title} entries and upserts them
into the inventory database. Existing slugs are updated in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runPagesImport,
}

func runPagesImport(cmd *cobra.Command, args []string) error {
	store, err := pages.NewStore(pagesConfig().DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	count, err := store.Import(cmd.Context(), args[0], os.Stderr)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Imported %d pages\n", count)
	return nil
}

var pagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the page inventory",
	RunE:  runPagesList,
}

func runPagesList(cmd *cobra.Command, args []string) error {
	store, err := pages.NewStore(pagesConfig().DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sitePages, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	for _, p := range sitePages {
		fmt.Printf("%-40s  %s\n", p.Slug, p.Title)
	}
	fmt.Fprintf(os.Stderr, "%d pages\n", len(sitePages))
	return nil
}

func init() {
	pagesCmd.AddCommand(pagesImportCmd)
	pagesCmd.AddCommand(pagesListCmd)
	rootCmd.AddCommand(pagesCmd)
}
