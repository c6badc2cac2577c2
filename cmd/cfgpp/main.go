package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cfgpp/internal/prof"
	"cfgpp/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cfgpp",
	Short: "CFG++ configuration parser and validator",
	Long:  `cfgpp parses CFG++ configuration files, validates them against schemas and converts them to other formats`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if path, _ := cmd.Root().PersistentFlags().GetString("cpuprofile"); path != "" {
			return prof.StartCPU(path)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Root().PersistentFlags()
		if path, _ := flags.GetString("cpuprofile"); path != "" {
			prof.StopCPU()
		}
		if path, _ := flags.GetString("memprofile"); path != "" {
			return prof.WriteMem(path)
		}
		return nil
	},
}

// main registers subcommands and persistent flags, then executes the root
// command. Command errors exit with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().StringSlice("include-path", nil, "directories searched by include directives")
	rootCmd.PersistentFlags().Bool("no-env", false, "disable environment variable expansion")
	rootCmd.PersistentFlags().Bool("no-includes", false, "disable include directives")
	rootCmd.PersistentFlags().Int("max-include-depth", 0, "maximum include nesting (0 uses the default)")
	rootCmd.PersistentFlags().String("trace", "off", "trace pipeline phases (off|phase|detail)")
	rootCmd.PersistentFlags().String("trace-out", "-", "trace output path (- for stderr, .ndjson switches format)")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write a CPU profile to this path")
	rootCmd.PersistentFlags().String("memprofile", "", "write a heap profile to this path")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves the --color tri-state against the given stream.
func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
