// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-engine/internal/genai"
	"github.com/pdiddy/content-engine/internal/keywords"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [keyword]",
	Short: "Generate a semantic keyword map for a primary keyword",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeywords,
}

func runKeywords(cmd *cobra.Command, args []string) error {
	location, _ := cmd.Flags().GetString("location")
	asJSON, _ := cmd.Flags().GetBool("json")

	aiCfg := aiConfig()
	backend, err := genai.NewBackend(aiCfg, http.DefaultClient)
	if err != nil {
		return err
	}

	kws := keywords.Enhance(cmd.Context(), backend, args[0], location, aiCfg, os.Stderr)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(kws)
	}
	for _, kw := range kws {
		fmt.Println(kw)
	}
	fmt.Fprintf(os.Stderr, "%d keywords\n", len(kws))
	return nil
}

func init() {
	keywordsCmd.Flags().String("location", "", "optional location to localize keywords")
	keywordsCmd.Flags().Bool("json", false, "output keywords as JSON")

	rootCmd.AddCommand(keywordsCmd)
}
