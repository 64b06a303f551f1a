// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/references"
)

var referencesCmd = &cobra.Command{
	Use:   "references [keyword]",
	Short: "Discover and validate authoritative references for a keyword",
	Long: `References runs the discovery waterfall: progressively broader SERP
queries, domain filtering, deduplication, and concurrent liveness probes,
stopping once the target count is reached. With no SERP API key configured
the command prints an empty result.`,
	Args: cobra.ExactArgs(1),
	RunE: runReferences,
}

func runReferences(cmd *cobra.Command, args []string) error {
	keyword := args[0]
	asJSON, _ := cmd.Flags().GetBool("json")
	outPath, _ := cmd.Flags().GetString("out")
	deadline, _ := cmd.Flags().GetDuration("deadline")

	cfg := referenceConfig()

	ctx := context.Background()
	if deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, deadline)
		defer cancel()
	}

	client := &http.Client{Timeout: cfg.Timeout}
	retriever := &references.SerperClient{
		Client:    client,
		APIKey:    cfg.SerperAPIKey,
		UserAgent: cfg.UserAgent,
		Num:       cfg.ResultsPerQuery,
	}
	checker := references.NewValidator(client, cfg.ProbesPerSecond, cfg.ValidateTimeout)

	refs := references.Discover(ctx, keyword, retriever, checker, cfg, os.Stderr)

	if outPath != "" {
		if err := references.WriteReferenceFile(outPath, keyword, refs); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved references to %s\n", outPath)
	}

	if asJSON {
		return references.FormatJSON(refs, os.Stdout)
	}
	references.FormatTable(refs, os.Stdout)
	return nil
}

func init() {
	referencesCmd.Flags().Bool("json", false, "output references as JSON")
	referencesCmd.Flags().String("out", "", "save the run to a YAML reference file")
	referencesCmd.Flags().Duration("deadline", 0, "overall deadline for the waterfall (0 = none)")

	rootCmd.AddCommand(referencesCmd)
}
