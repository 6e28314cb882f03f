package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/purehtml/purehtml/html"
)

var htmlCmd = &cobra.Command{
	Use:   "html [file]",
	Short: "Sanitize an HTML fragment",
	Long: `Sanitize an HTML fragment against the active policy and print the
surviving markup.

Examples:
  # Sanitize an inline fragment
  purehtml html -e '<p onclick="evil()">hi<script>evil()</script></p>'

  # Sanitize a file with a custom policy
  purehtml html --policy policy.yaml page.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHTML,
}

func init() {
	rootCmd.AddCommand(htmlCmd)
	htmlCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "sanitize inline text instead of reading from file")
}

func runHTML(_ *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	policy, err := loadPolicy()
	if err != nil {
		return err
	}
	fmt.Println(html.Sanitize(input, policy))
	return nil
}
