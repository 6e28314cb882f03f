package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var propsCmd = &cobra.Command{
	Use:   "props",
	Short: "List the CSS properties the active policy allows",
	Long: `Print the property names the effective CSS schema admits, one per line.

Examples:
  purehtml props
  purehtml props --policy policy.yaml`,
	Args: cobra.NoArgs,
	RunE: runProps,
}

func init() {
	rootCmd.AddCommand(propsCmd)
}

func runProps(_ *cobra.Command, _ []string) error {
	policy, err := loadPolicy()
	if err != nil {
		return err
	}
	for _, name := range policy.Styles.AllowedProperties() {
		fmt.Println(name)
	}
	return nil
}
