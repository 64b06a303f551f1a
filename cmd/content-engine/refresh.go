// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/pipeline"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh [keyword]",
	Short: "Regenerate an existing article, preserving its embedded media",
	Long: `Refresh reads an existing article from --in, extracts its image tags
and video embeds verbatim, regenerates the article through the full
pipeline, and redistributes the preserved media into the new prose at
evenly spaced paragraph boundaries.`,
	Args: cobra.ExactArgs(1),
	RunE: runRefresh,
}

func runRefresh(cmd *cobra.Command, args []string) error {
	keyword := args[0]
	inPath, _ := cmd.Flags().GetString("in")
	outPath, _ := cmd.Flags().GetString("out")

	existing, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading existing article: %w", err)
	}

	deps, sitePages, err := buildPipelineDeps(cmd.Context())
	if err != nil {
		return err
	}
	serp := fetchSERP(cmd.Context(), deps, keyword)

	result, err := pipeline.Refresh(cmd.Context(), deps, keyword, string(existing), serp, sitePages, os.Stderr)
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = inPath
	}
	if err := os.WriteFile(outPath, []byte(result.Content), 0o644); err != nil {
		return fmt.Errorf("writing refreshed article: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Refreshed %s (%d media fragments preserved, %d references)\n",
		outPath, result.PreservedImages, len(result.References))
	return nil
}

func init() {
	refreshCmd.Flags().String("in", "", "existing article HTML file (required)")
	refreshCmd.Flags().String("out", "", "output file (default: overwrite --in)")
	refreshCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(refreshCmd)
}
