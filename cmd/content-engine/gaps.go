// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/gaps"
	"github.com/pdiddy/content-engine/internal/genai"
	"github.com/pdiddy/content-engine/internal/references"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps [keyword]",
	Short: "Analyze top competitors for exploitable content gaps",
	Long: `Gaps fetches the top SERP rows for a keyword and asks the generation
backend which topics competitors miss, where their data is outdated, and
which keywords they rank for that we do not cover.`,
	Args: cobra.ExactArgs(1),
	RunE: runGaps,
}

func runGaps(cmd *cobra.Command, args []string) error {
	keyword := args[0]

	refCfg := referenceConfig()
	aiCfg := aiConfig()

	backend, err := genai.NewBackend(aiCfg, http.DefaultClient)
	if err != nil {
		return err
	}

	retriever := &references.SerperClient{
		Client:    &http.Client{Timeout: refCfg.Timeout},
		APIKey:    refCfg.SerperAPIKey,
		UserAgent: refCfg.UserAgent,
		Num:       refCfg.ResultsPerQuery,
	}

	serp, err := retriever.Retrieve(cmd.Context(), keyword)
	if err != nil {
		return err
	}

	ga := gaps.Analyze(cmd.Context(), backend, keyword, serp, aiCfg, os.Stderr)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(ga)
}

func init() {
	rootCmd.AddCommand(gapsCmd)
}
