package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/purehtml/purehtml/css"
)

var showType bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a CSS declaration block",
	Long: `Tokenize (lex) a CSS declaration block and print the resulting tokens.

This command is useful for debugging the tokenizer and understanding how a
style attribute value is tokenized before sanitization.

Examples:
  # Tokenize an inline declaration block
  purehtml tokens -e "color: rgb(255, 0, 0)"

  # Show token type names
  purehtml tokens --show-type style.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline text instead of reading from file")
	tokensCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

// Token classes are colored the way they are judged: values green, structure
// cyan, droppable noise yellow, malformed tokens red.
var (
	valueColor     = color.New(color.FgGreen)
	structureColor = color.New(color.FgCyan)
	noiseColor     = color.New(color.FgYellow)
	badColor       = color.New(color.FgRed)
)

func runTokens(_ *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	for _, tok := range css.Tokenize(input) {
		printToken(tok)
	}
	return nil
}

func printToken(tok css.Token) {
	c := tokenColor(tok.Type)
	if showType {
		fmt.Printf("[%s] ", c.Sprintf("%-17s", tok.Type))
	}
	fmt.Println(c.Sprintf("%q", tok.Value))
}

func tokenColor(t css.TokenType) *color.Color {
	switch t {
	case css.IdentToken, css.StringToken, css.URLToken, css.NumberToken,
		css.DimensionToken, css.PercentageToken, css.HashUnrestrictedToken,
		css.UnicodeRangeToken:
		return valueColor
	case css.FunctionToken, css.ColonToken, css.SemicolonToken,
		css.CommaToken, css.LeftParenToken, css.RightParenToken,
		css.LeftCurlyToken, css.RightCurlyToken, css.LeftSquareToken,
		css.RightSquareToken:
		return structureColor
	case css.BadStringToken, css.BadURLToken, css.BadDimensionToken:
		return badColor
	default:
		return noiseColor
	}
}
