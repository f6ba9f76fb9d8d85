package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Protocol-Lattice/gqlparse/token"
)

func TestLexer_Keywords(t *testing.T) {
	input := "extend schema query mutation subscription type input enum union interface scalar directive fragment on implements repeatable"
	want := []token.Token{
		token.Keyword(token.EXTEND),
		token.Keyword(token.SCHEMA),
		token.Keyword(token.QUERY),
		token.Keyword(token.MUTATION),
		token.Keyword(token.SUBSCRIPTION),
		token.Keyword(token.TYPE),
		token.Keyword(token.INPUT),
		token.Keyword(token.ENUM),
		token.Keyword(token.UNION),
		token.Keyword(token.INTERFACE),
		token.Keyword(token.SCALAR),
		token.Keyword(token.DIRECTIVE),
		token.Keyword(token.FRAGMENT),
		token.Keyword(token.ON),
		token.Keyword(token.IMPLEMENTS),
		token.Keyword(token.REPEATABLE),
	}
	assert.Equal(t, want, Tokenize(input))
}

func TestLexer_Primitives(t *testing.T) {
	input := `true false null 123 123.456 "StringValue" """Description"""`
	want := []token.Token{
		token.Bool(true),
		token.Bool(false),
		token.Null(),
		token.Int(123),
		token.Float(123.456),
		token.String("StringValue"),
		token.Description("Description"),
	}
	assert.Equal(t, want, Tokenize(input))
}

func TestLexer_Symbols(t *testing.T) {
	input := "( ) { } [ ] | = & $ @ . ... : !"
	want := []token.Token{
		token.Sym(token.LPAREN),
		token.Sym(token.RPAREN),
		token.Sym(token.LBRACE),
		token.Sym(token.RBRACE),
		token.Sym(token.LBRACKET),
		token.Sym(token.RBRACKET),
		token.Sym(token.PIPE),
		token.Sym(token.ASSIGN),
		token.Sym(token.AMP),
		token.Sym(token.DOLLAR),
		token.Sym(token.AT),
		token.Sym(token.DOT),
		token.Sym(token.SPREAD),
		token.Sym(token.COLON),
		token.Sym(token.BANG),
	}
	assert.Equal(t, want, Tokenize(input))
}

func TestLexer_SpreadWithoutSpaces(t *testing.T) {
	want := []token.Token{
		token.Sym(token.SPREAD),
		token.Sym(token.DOT),
		token.Ident("a"),
	}
	assert.Equal(t, want, Tokenize("....a"))
}

func TestLexer_NamesAreNotSplitOnKeywords(t *testing.T) {
	want := []token.Token{
		token.Ident("typeName"),
		token.Ident("onFoo"),
		token.Ident("a_private"),
		token.Ident("nullable"),
		token.Ident("Query"),
	}
	assert.Equal(t, want, Tokenize("typeName onFoo a_private nullable Query"))
}

func TestLexer_NamesStartWithLetter(t *testing.T) {
	assert.Equal(t, []token.Token{token.Illegal('_'), token.Ident("a")}, Tokenize("_a"))
	assert.Equal(t, []token.Token{token.Illegal('_'), token.Illegal('_'), token.Illegal('_')}, Tokenize("___"))
	assert.Equal(t, []token.Token{token.Illegal('_'), token.Illegal('_'), token.Ident("typename")}, Tokenize("__typename"))
	assert.Equal(t, []token.Token{token.Ident("a__b_1")}, Tokenize("a__b_1"))
}

func TestLexer_SkipsIgnoredCharacters(t *testing.T) {
	input := "\uFEFF  query,\t# a comment\r\n{ a, b }# trailing"
	want := []token.Token{
		token.Keyword(token.QUERY),
		token.Sym(token.LBRACE),
		token.Ident("a"),
		token.Ident("b"),
		token.Sym(token.RBRACE),
	}
	assert.Equal(t, want, Tokenize(input))
}

func TestLexer_EmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize(" \n, # only a comment"))

	l := New("   ")
	assert.False(t, l.HasNext())
	_, ok := l.NextToken()
	assert.False(t, ok)
}

func TestLexer_HasNextDoesNotConsume(t *testing.T) {
	l := New("  a")
	require.True(t, l.HasNext())
	require.True(t, l.HasNext())
	tok, ok := l.NextToken()
	require.True(t, ok)
	assert.Equal(t, token.Ident("a"), tok)
	assert.False(t, l.HasNext())
}

func TestLexer_IllegalCharacter(t *testing.T) {
	want := []token.Token{
		token.Illegal('\x01'),
		token.Ident("a"),
		token.Illegal('%'),
		token.Illegal('é'),
	}
	assert.Equal(t, want, Tokenize("\x01a%é"))
}

func TestLexer_UnterminatedLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{
			name:  "string at end of input",
			input: `"abc`,
			want:  []token.Token{token.Illegal('"')},
		},
		{
			name:  "string across lines",
			input: "\"abc\ndef\"",
			want:  []token.Token{token.Illegal('\n'), token.Ident("def"), token.Illegal('"')},
		},
		{
			name:  "description at end of input",
			input: `"""abc`,
			want:  []token.Token{token.Illegal('"')},
		},
		{
			name:  "float without fraction",
			input: "1.",
			want:  []token.Token{token.Illegal('.')},
		},
		{
			name:  "float followed by name",
			input: "1.a",
			want:  []token.Token{token.Illegal('a')},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestLexer_Numbers(t *testing.T) {
	assert.Equal(t, []token.Token{token.Int(0), token.Int(2147483647)}, Tokenize("0 2147483647"))
	assert.Equal(t, []token.Token{token.Float(0.5), token.Float(10.25)}, Tokenize("0.5 10.25"))
}

func TestLexer_IntegerOverflow(t *testing.T) {
	assert.Equal(t, []token.Token{token.Illegal('8')}, Tokenize("2147483648"))
	assert.Equal(t, []token.Token{token.Illegal(' '), token.Ident("a")}, Tokenize("99999999999 a"))
}

func TestLexer_ControlCharactersAreIllegal(t *testing.T) {
	want := []token.Token{token.Illegal('\x00'), token.Illegal('\x01'), token.Illegal('\x02')}
	assert.Equal(t, want, Tokenize("\x00\x01\x02"))
}

func TestLexer_ProgressesOnEveryInput(t *testing.T) {
	for _, input := range []string{"\x00\x01\x02", `""""`, `"`, "...", "\"\r", "1.2.3"} {
		tokens := Tokenize(input)
		assert.LessOrEqual(t, len(tokens), len([]rune(input)), input)
	}
}

func TestLexer_EmptyString(t *testing.T) {
	assert.Equal(t, []token.Token{token.String(""), token.Description("")}, Tokenize(`"" """"""`))
}
