// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/genai"
	"github.com/pdiddy/content-engine/internal/pages"
	"github.com/pdiddy/content-engine/internal/pipeline"
	"github.com/pdiddy/content-engine/internal/references"
	"github.com/pdiddy/content-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [keyword]",
	Short: "Generate an enriched article for a keyword",
	Long: `Generate runs the full pipeline: semantic keyword enhancement,
competitor gap analysis, article generation, reference discovery, and
internal link suggestions. The article HTML is written to --out; the
enrichment artifacts go to stdout as JSON with --json.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	keyword := args[0]
	outPath, _ := cmd.Flags().GetString("out")
	asJSON, _ := cmd.Flags().GetBool("json")

	deps, sitePages, err := buildPipelineDeps(cmd.Context())
	if err != nil {
		return err
	}
	serp := fetchSERP(cmd.Context(), deps, keyword)

	result, err := pipeline.Generate(cmd.Context(), deps, keyword, serp, sitePages, os.Stderr)
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(result.Content), 0o644); err != nil {
			return fmt.Errorf("writing article: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote article to %s\n", outPath)
	} else {
		fmt.Println(result.Content)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			SemanticKeywords []string               `json:"semantic_keywords"`
			GapAnalysis      types.GapAnalysis      `json:"gap_analysis"`
			References       []types.Reference      `json:"references"`
			Links            []types.LinkSuggestion `json:"links"`
		}{result.SemanticKeywords, result.GapAnalysis, result.References, result.Links})
	}
	return nil
}

// buildPipelineDeps wires the real collaborators: the generation backend
// for the configured model, the Serper retriever, the liveness validator,
// and the page inventory.
func buildPipelineDeps(ctx context.Context) (pipeline.Deps, []types.Page, error) {
	refCfg := referenceConfig()
	aiCfg := aiConfig()
	pgCfg := pagesConfig()

	backend, err := genai.NewBackend(aiCfg, http.DefaultClient)
	if err != nil {
		return pipeline.Deps{}, nil, err
	}

	client := &http.Client{Timeout: refCfg.Timeout}
	retriever := &references.SerperClient{
		Client:    client,
		APIKey:    refCfg.SerperAPIKey,
		UserAgent: refCfg.UserAgent,
		Num:       refCfg.ResultsPerQuery,
	}
	checker := references.NewValidator(client, refCfg.ProbesPerSecond, refCfg.ValidateTimeout)

	deps := pipeline.Deps{
		Backend:   backend,
		Retriever: retriever,
		Checker:   checker,
		Config: types.PipelineConfig{
			References: refCfg,
			AI:         aiCfg,
			Pages:      pgCfg,
		},
	}

	var sitePages []types.Page
	if store, err := pages.NewStore(pgCfg.DBPath); err == nil {
		sitePages, _ = store.List(ctx)
		store.Close()
	}

	return deps, sitePages, nil
}

// fetchSERP retrieves competitor rows for the gap analysis. A missing
// key or failed query degrades to no competitor context.
func fetchSERP(ctx context.Context, deps pipeline.Deps, keyword string) []types.Candidate {
	if deps.Config.References.SerperAPIKey == "" {
		return nil
	}
	serp, err := deps.Retriever.Retrieve(ctx, keyword)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: SERP fetch failed: %v\n", err)
		return nil
	}
	return serp
}

func init() {
	generateCmd.Flags().String("out", "", "write the article HTML to a file")
	generateCmd.Flags().Bool("json", false, "print enrichment artifacts as JSON")

	rootCmd.AddCommand(generateCmd)
}
