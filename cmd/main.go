package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sales-digest",
		Short:        "Build the daily sales digest and push it to LINE",
		SilenceUsage: true,
		RunE:         run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the sales-digest version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	cfgFile    string
	reportDate string
	dryRun     bool
	version    string
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.Flags().StringVar(&reportDate, "date", "", "report date YYYY-MM-DD, the digest covers the day before (default today)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the message instead of pushing it to LINE")
	rootCmd.AddCommand(versionCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("sales digest failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
