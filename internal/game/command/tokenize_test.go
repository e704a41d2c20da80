package command

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []Token
	}{
		{
			name: "words",
			line: "Attack  Rex\tBob Sword",
			want: []Token{{Text: "Attack"}, {Text: "Rex"}, {Text: "Bob"}, {Text: "Sword"}},
		},
		{
			name: "list trims and drops empty items",
			line: "Create item spell Merlin Bolt 3 [Rex,  Bob , ,Ann]",
			want: []Token{
				{Text: "Create"}, {Text: "item"}, {Text: "spell"}, {Text: "Merlin"}, {Text: "Bolt"}, {Text: "3"},
				{Kind: TokenList, Items: []string{"Rex", "Bob", "Ann"}},
			},
		},
		{
			name: "list glued to word",
			line: "Bolt[Rex]",
			want: []Token{{Text: "Bolt"}, {Kind: TokenList, Items: []string{"Rex"}}},
		},
		{
			name: "empty list",
			line: "x []",
			want: []Token{{Text: "x"}, {Kind: TokenList, Items: []string{}}},
		},
		{
			name: "blank",
			line: "   ",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.line)
			if err != nil {
				t.Fatalf("tokenize: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("tokens = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"Create item spell Merlin Bolt 3 [Rex, Bob", ErrUnterminatedList},
		{"x [a, [b]]", ErrNestedList},
		{"x a]", ErrStrayListClose},
	}
	for _, tt := range tests {
		if _, err := Tokenize(tt.line); !errors.Is(err, tt.want) {
			t.Fatalf("Tokenize(%q) err = %v, want %v", tt.line, err, tt.want)
		}
	}
}

func TestTokenizeRoundTripsWords(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z0-9,.!'-]{1,8}`), 0, 12).Draw(t, "words")
		sep := rapid.SampledFrom([]string{" ", "  ", "\t", " \t "}).Draw(t, "sep")

		tokens, err := Tokenize(strings.Join(words, sep))
		if err != nil {
			t.Fatalf("tokenize: %v", err)
		}
		if len(tokens) != len(words) {
			t.Fatalf("got %d tokens, want %d", len(tokens), len(words))
		}
		for i, tok := range tokens {
			if tok.Kind != TokenWord || tok.Text != words[i] {
				t.Fatalf("token %d = %#v, want word %q", i, tok, words[i])
			}
		}
	})
}

func TestTokenizeRoundTripsLists(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z0-9]{1,8}`), 1, 6).Draw(t, "items")

		tokens, err := Tokenize("Create " + FormatList(items))
		if err != nil {
			t.Fatalf("tokenize: %v", err)
		}
		if len(tokens) != 2 || tokens[1].Kind != TokenList {
			t.Fatalf("tokens = %#v", tokens)
		}
		if !reflect.DeepEqual(tokens[1].Items, items) {
			t.Fatalf("items = %v, want %v", tokens[1].Items, items)
		}
	})
}
