package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/purehtml/purehtml/css"
)

var cssCmd = &cobra.Command{
	Use:   "css [file]",
	Short: "Sanitize a CSS declaration block",
	Long: `Sanitize a CSS declaration block against the active policy and print
the surviving declarations.

Examples:
  # Sanitize an inline declaration block
  purehtml css -e "color: red; background: url(javascript:alert(1))"

  # Sanitize a file with a custom policy
  purehtml css --policy policy.yaml style.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCSS,
}

func init() {
	rootCmd.AddCommand(cssCmd)
	cssCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "sanitize inline text instead of reading from file")
}

func runCSS(_ *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	policy, err := loadPolicy()
	if err != nil {
		return err
	}
	fmt.Println(css.SanitizeDeclarations(input, policy.Styles, policy.URLs))
	return nil
}
