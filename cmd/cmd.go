package cmd

import (
	"os"

	"github.com/dreamerjackson/htstask/cmd/generate"
	"github.com/dreamerjackson/htstask/cmd/missing"
	"github.com/dreamerjackson/htstask/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version.",
	Long:  "print version.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version.Printer(cmd.OutOrStdout())
	},
}

func Execute() {
	var rootCmd = &cobra.Command{
		Use:          "htstask",
		Short:        "generate HTS chapter document download tasks.",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(generate.GenerateCmd, missing.MissingCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
