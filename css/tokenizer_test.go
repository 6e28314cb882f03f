package css

import "testing"

func TestTokenizerIdent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "color", "color"},
		{"lowercased", "COLOR", "color"},
		{"vendor prefix", "-moz-border-radius", "-moz-border-radius"},
		{"escaped letter", `c\6f lor`, "color"},
		{"escaped upper letter folds", `c\4F lor`, "color"},
		{"self escape", `\-foo`, "-foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != 1 {
				t.Fatalf("Expected 1 token, got %d: %v", len(tokens), tokens)
			}
			if tokens[0].Type != IdentToken {
				t.Errorf("Expected IdentToken, got %v", tokens[0].Type)
			}
			if tokens[0].Value != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tokens[0].Value)
			}
		})
	}
}

func TestTokenizerString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		typ      TokenType
		expected string
	}{
		{"double quotes", `"hello"`, StringToken, "hello"},
		{"single quotes", `'world'`, StringToken, "world"},
		{"with spaces", `"hello world"`, StringToken, "hello world"},
		{"escaped quote", `"he said \"hi\""`, StringToken, `he said "hi"`},
		{"hex escape", `"\48\49"`, StringToken, "HI"},
		{"invalid hex escape", `"\0"`, StringToken, "�"},
		{"line continuation", "\"a\\\nb\"", StringToken, "ab"},
		{"newline breaks string", "\"abc\ndef\"", BadStringToken, "abc"},
		{"unterminated at end of input", `"abc`, StringToken, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) == 0 {
				t.Fatal("Expected at least 1 token")
			}
			if tokens[0].Type != tt.typ {
				t.Errorf("Expected %v, got %v", tt.typ, tokens[0].Type)
			}
			if tokens[0].Value != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tokens[0].Value)
			}
		})
	}
}

func TestTokenizerNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		typ      TokenType
		expected string
	}{
		{"integer", "42", NumberToken, "42"},
		{"decimal", "3.14", NumberToken, "3.14"},
		{"leading plus stripped", "+5", NumberToken, "5"},
		{"leading dot", ".5", NumberToken, "0.5"},
		{"negative leading dot", "-.5", NumberToken, "-0.5"},
		{"exponent", "1e3", NumberToken, "1e3"},
		{"upper exponent folds", "1E3", NumberToken, "1e3"},
		{"px unit", "10px", DimensionToken, "10px"},
		{"em unit", "1.5em", DimensionToken, "1.5em"},
		{"upper unit folds", "10PX", DimensionToken, "10px"},
		{"percentage", "50%", PercentageToken, "50%"},
		{"negative percentage", "-10%", PercentageToken, "-10%"},
		{"double decimal point", "1.2.3", BadDimensionToken, "1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != 1 {
				t.Fatalf("Expected 1 token, got %d: %v", len(tokens), tokens)
			}
			if tokens[0].Type != tt.typ {
				t.Errorf("Expected %v, got %v", tt.typ, tokens[0].Type)
			}
			if tokens[0].Value != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tokens[0].Value)
			}
		})
	}
}

func TestTokenizerHash(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		typ      TokenType
		expected string
	}{
		{"three digit color", "#fff", HashUnrestrictedToken, "#fff"},
		{"six digit color", "#FFFFFF", HashUnrestrictedToken, "#FFFFFF"},
		{"mixed hex", "#1a2b3c", HashUnrestrictedToken, "#1a2b3c"},
		{"identifier hash", "#header", HashIDToken, "#header"},
		{"hyphenated hash", "#my-id", HashIDToken, "#my-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != 1 {
				t.Fatalf("Expected 1 token, got %d: %v", len(tokens), tokens)
			}
			if tokens[0].Type != tt.typ {
				t.Errorf("Expected %v, got %v", tt.typ, tokens[0].Type)
			}
			if tokens[0].Value != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tokens[0].Value)
			}
		})
	}
}

func TestTokenizerURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		typ      TokenType
		expected string
	}{
		{"bare", "url(http://example.com/a.png)", URLToken, "http://example.com/a.png"},
		{"quoted", `url("http://example.com/a.png")`, URLToken, "http://example.com/a.png"},
		{"single quoted with spaces", `url( 'a.png' )`, URLToken, "a.png"},
		{"upper function name", "URL(a.png)", URLToken, "a.png"},
		{"lowercases argument", "url(HTTP://EXAMPLE.COM/A)", URLToken, "http://example.com/a"},
		{"empty", "url()", URLToken, ""},
		{"inner parenthesis", "url(javascript:alert(1))", BadURLToken, ""},
		{"inner quote", "url(a\"b)", BadURLToken, ""},
		{"unterminated", "url(abc", BadURLToken, ""},
		{"space inside bare argument", "url(a b)", BadURLToken, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) == 0 {
				t.Fatal("Expected at least 1 token")
			}
			if tokens[0].Type != tt.typ {
				t.Errorf("Expected %v, got %v", tt.typ, tokens[0].Type)
			}
			if tokens[0].Value != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tokens[0].Value)
			}
		})
	}
}

func TestTokenizerFunction(t *testing.T) {
	tokens := Tokenize("rgb(255, 0, 0)")
	expected := []Token{
		{FunctionToken, "rgb("},
		{NumberToken, "255"},
		{CommaToken, ","},
		{WhitespaceToken, " "},
		{NumberToken, "0"},
		{CommaToken, ","},
		{WhitespaceToken, " "},
		{NumberToken, "0"},
		{RightParenToken, ")"},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, want := range expected {
		if tokens[i] != want {
			t.Errorf("Token %d: expected %v, got %v", i, want, tokens[i])
		}
	}

	// An identifier separated from '(' by whitespace is not a function.
	tokens = Tokenize("rgb (1)")
	if tokens[0].Type != IdentToken || tokens[0].Value != "rgb" {
		t.Errorf("Expected IdentToken rgb, got %v", tokens[0])
	}
}

func TestTokenizerUnicodeRange(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"U+0400-04FF", "u+0400-04ff"},
		{"u+2??", "u+2??"},
		{"U+1D49C", "u+1d49c"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != 1 {
				t.Fatalf("Expected 1 token, got %d: %v", len(tokens), tokens)
			}
			if tokens[0].Type != UnicodeRangeToken {
				t.Errorf("Expected UnicodeRangeToken, got %v", tokens[0].Type)
			}
			if tokens[0].Value != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tokens[0].Value)
			}
		})
	}
}

func TestTokenizerPunctuation(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{":", ColonToken},
		{";", SemicolonToken},
		{",", CommaToken},
		{"{", LeftCurlyToken},
		{"}", RightCurlyToken},
		{"(", LeftParenToken},
		{")", RightParenToken},
		{"[", LeftSquareToken},
		{"]", RightSquareToken},
		{"~=", MatchToken},
		{"^=", MatchToken},
		{"$=", MatchToken},
		{"*=", MatchToken},
		{"|=", MatchToken},
		{"||", ColumnToken},
		{"/", DelimToken},
		{"@media", AtKeywordToken},
		{".foo", DotIdentToken},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != 1 {
				t.Fatalf("Expected 1 token, got %d: %v", len(tokens), tokens)
			}
			if tokens[0].Type != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tokens[0].Type)
			}
		})
	}
}

func TestTokenizerComment(t *testing.T) {
	tokens := Tokenize("/* comment */ color /* another */ red")
	expected := []Token{
		{WhitespaceToken, " "},
		{IdentToken, "color"},
		{WhitespaceToken, " "},
		{IdentToken, "red"},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, want := range expected {
		if tokens[i] != want {
			t.Errorf("Token %d: expected %v, got %v", i, want, tokens[i])
		}
	}
}

func TestTokenizerDeclaration(t *testing.T) {
	input := "color: red; width:10px"
	tokens := Tokenize(input)

	expected := []Token{
		{IdentToken, "color"},
		{ColonToken, ":"},
		{WhitespaceToken, " "},
		{IdentToken, "red"},
		{SemicolonToken, ";"},
		{WhitespaceToken, " "},
		{IdentToken, "width"},
		{ColonToken, ":"},
		{DimensionToken, "10px"},
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, want := range expected {
		if tokens[i] != want {
			t.Errorf("Token %d: expected %v, got %v", i, want, tokens[i])
		}
	}
}

func TestSpliceToEnd(t *testing.T) {
	it := NewTokenIterator("rgb(1, 2) x")
	if !it.HasNext() || it.Type() != FunctionToken {
		t.Fatalf("Expected FunctionToken, got %v", it.Type())
	}
	it.Advance()

	sub := it.SpliceToEnd()
	var inner []string
	for sub.HasNextAfterSpace() {
		inner = append(inner, sub.Next().Value)
	}
	want := []string{"1", ",", "2"}
	if len(inner) != len(want) {
		t.Fatalf("Expected %v, got %v", want, inner)
	}
	for i := range want {
		if inner[i] != want[i] {
			t.Errorf("Inner token %d: expected %q, got %q", i, want[i], inner[i])
		}
	}

	// The outer iterator resumes past the closing parenthesis.
	if !it.HasNextAfterSpace() {
		t.Fatal("Expected outer iterator to resume")
	}
	if got := it.Next().Value; got != "x" {
		t.Errorf("Expected outer token x, got %q", got)
	}
}

func TestSpliceToEndNested(t *testing.T) {
	it := NewTokenIterator("calc(1 + (2 * 3)) y")
	it.Advance() // calc(

	sub := it.SpliceToEnd()
	depth := 0
	for sub.HasNext() {
		switch sub.Next().Type {
		case LeftParenToken:
			depth++
		case RightParenToken:
			depth--
		}
	}
	if depth != 0 {
		t.Errorf("Expected balanced brackets inside splice, depth %d", depth)
	}

	if !it.HasNextAfterSpace() {
		t.Fatal("Expected outer iterator to resume")
	}
	if got := it.Next().Value; got != "y" {
		t.Errorf("Expected outer token y, got %q", got)
	}
}

func TestSpliceToEndUnbalanced(t *testing.T) {
	it := NewTokenIterator("rgb(1, 2")
	it.Advance() // rgb(

	sub := it.SpliceToEnd()
	count := 0
	for sub.HasNext() {
		sub.Advance()
		count++
	}
	if count == 0 {
		t.Error("Expected splice to cover remaining tokens")
	}
	if it.HasNext() {
		t.Error("Expected outer iterator to be exhausted")
	}
}
