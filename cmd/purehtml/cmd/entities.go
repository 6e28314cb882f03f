package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/purehtml/purehtml/entity"
)

var entitiesCmd = &cobra.Command{
	Use:   "entities [file]",
	Short: "Decode HTML character references",
	Long: `Decode the HTML character references in the input and print the result.

Examples:
  purehtml entities -e "a &lt; b &amp;&amp; c &#x1D49C;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEntities,
}

func init() {
	rootCmd.AddCommand(entitiesCmd)
	entitiesCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "decode inline text instead of reading from file")
}

func runEntities(_ *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	fmt.Println(entity.DecodeString(input))
	return nil
}
