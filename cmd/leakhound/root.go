package leakhound

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON            bool
	flagSARIF           bool
	flagThreads         int
	flagFailOn          string
	flagNoColor         bool
	flagMinConfidence   float64
	flagNoCache         bool
	flagDefaultExcludes bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the leakhound CLI.
var rootCmd = &cobra.Command{
	Use:           "leakhound",
	Short:         "Find and verify leaked service credentials",
	Long:          "Leakhound scans file trees for embedded service credentials, filters placeholders, scores each hit, optionally confirms it is live against the issuing service and alerts a Telegram channel.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the leakhound CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	rootCmd.PersistentFlags().IntVar(&flagThreads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "medium", "fail on low|medium|high|critical")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().Float64Var(&flagMinConfidence, "min-confidence", 0.0, "only show findings with confidence >= value (0-99)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable incremental scan cache")
	rootCmd.PersistentFlags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list (node_modules, dist, images, etc.)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(version)
		},
	})
}
