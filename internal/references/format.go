// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package references

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/content-engine/pkg/types"
)

// FormatTable writes references as a human-readable table to w.
func FormatTable(refs []types.Reference, w io.Writer) {
	if len(refs) == 0 {
		fmt.Fprintln(w, "No references found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-60s  %-24s  %-4s  %s\n",
		"Rank", "Title", "Source", "Year", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 104))

	for i, r := range refs {
		title := r.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		source := r.Source
		if len(source) > 24 {
			source = source[:21] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-60s  %-24s  %-4d  %s (%d)\n",
			i+1, title, source, r.Year, r.Status, r.StatusCode)
	}

	fmt.Fprintf(w, "\n%d references\n", len(refs))
}

// FormatJSON writes references as indented JSON to w.
func FormatJSON(refs []types.Reference, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(refs)
}
