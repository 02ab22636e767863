package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	format  string
)

// errIssuesFound distinguishes "the scan worked and found problems"
// (exit 1) from real failures like an unreadable input file (exit 2).
var errIssuesFound = errors.New("issues found")

var rootCmd = &cobra.Command{
	Use:   "jscheck",
	Short: "JScheck is a lightweight style checker for script files",
	Long:  `JScheck performs a single-pass textual scan of a script file and reports style issues: stray console.log calls, loose equality, trailing whitespace, and unbalanced braces.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errIssuesFound) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "HCL config file (default .jscheck.hcl if present)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "o", "text", "Output format: text, table, or json")
}
