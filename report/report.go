package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/JA3G3R/jscheck/types"
)

// Print writes issues to w in the requested format. The text format
// reproduces the checker's classic output and caps the listing at
// maxShow issues; table and json always render everything.
func Print(w io.Writer, issues []types.Issue, format string, maxShow int) {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.Encode(issues)
	case "table":
		tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "RULE\tFILE:LINE\tDETAILS")
		for _, is := range issues {
			fmt.Fprintf(tw, "%s\t%s:%d\t%s\n", is.Rule, is.File, is.Line, is.Details)
		}
		tw.Flush()
	default:
		printText(w, issues, maxShow)
	}
}

func printText(w io.Writer, issues []types.Issue, maxShow int) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No major issues found!")
		return
	}
	fmt.Fprintf(w, "Found %d issues:\n", len(issues))
	for i, is := range issues {
		if i >= maxShow {
			break
		}
		if is.Line > 0 {
			fmt.Fprintf(w, "  Line %d: %s\n", is.Line, is.Details)
		} else {
			fmt.Fprintf(w, "  %s\n", is.Details)
		}
	}
	if len(issues) > maxShow {
		fmt.Fprintf(w, "  ... and %d more issues\n", len(issues)-maxShow)
	}
}
