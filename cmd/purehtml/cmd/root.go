package cmd

import (
	"fmt"
	"os"

	"github.com/purehtml/purehtml/log"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	logLevel   string
	logFormat  string
	policyPath string
	evalExpr   string
)

var rootCmd = &cobra.Command{
	Use:   "purehtml",
	Short: "Policy-driven HTML and CSS sanitizer toolkit",
	Long: `purehtml sanitizes untrusted HTML fragments and CSS declaration blocks.

Only tags, attributes, CSS property values, character entities, and URL
schemes allowed by the active policy survive; everything else is dropped.
The subcommands expose the sanitizer layers individually for inspection:
tokenize CSS, decode entities, list allowed properties, or run the full
fragment sanitizer.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		lvl, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
		f, err := log.ParseFormat(logFormat)
		if err != nil {
			return err
		}
		log.SetFormat(f)
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text, json")
	rootCmd.PersistentFlags().StringVar(&policyPath, "policy", "", "YAML policy file overriding the built-in defaults")
}

// readInput resolves the input for a subcommand: the -e flag if set,
// otherwise the contents of the file argument.
func readInput(args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e flag for inline input")
}
