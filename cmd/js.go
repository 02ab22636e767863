package cmd

import (
	"github.com/JA3G3R/jscheck/config"
	"github.com/JA3G3R/jscheck/report"
	"github.com/JA3G3R/jscheck/scanners"
	"github.com/spf13/cobra"
)

var jsCmd = &cobra.Command{
	Use:   "js [file]",
	Short: "Scan a JavaScript file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		explicit := path != ""
		if !explicit {
			path = config.DefaultFile
		}
		cfg, err := config.Load(path, explicit)
		if err != nil {
			return err
		}

		target := cfg.Target
		if len(args) > 0 {
			target = args[0]
		}

		issues, err := scanners.ScanJavaScript(target, cfg)
		if err != nil {
			return err
		}

		report.Print(cmd.OutOrStdout(), issues, format, cfg.MaxReport)
		if len(issues) > 0 {
			return errIssuesFound
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(jsCmd)
}
