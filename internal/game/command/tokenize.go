package command

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrUnterminatedList indicates a '[' without a closing ']'.
	ErrUnterminatedList = errors.New("list is not terminated")
	// ErrNestedList indicates a '[' inside an open list.
	ErrNestedList = errors.New("lists cannot be nested")
	// ErrStrayListClose indicates a ']' outside any list.
	ErrStrayListClose = errors.New("list close without open")
)

// TokenKind distinguishes plain words from bracketed lists.
type TokenKind int

const (
	TokenWord TokenKind = iota
	TokenList
)

// Token is one lexical unit of a command line.
type Token struct {
	Kind TokenKind
	// Text holds the word for TokenWord.
	Text string
	// Items holds the trimmed, non-empty entries for TokenList.
	Items []string
}

// Tokenize splits line into whitespace-separated words and bracketed,
// comma-separated lists.
func Tokenize(line string) ([]Token, error) {
	var (
		tokens []Token
		word   strings.Builder
		list   strings.Builder
		inList bool
	)
	flushWord := func() {
		if word.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenWord, Text: word.String()})
			word.Reset()
		}
	}

	for _, r := range line {
		switch {
		case inList && r == '[':
			return nil, ErrNestedList
		case inList && r == ']':
			tokens = append(tokens, Token{Kind: TokenList, Items: splitList(list.String())})
			list.Reset()
			inList = false
		case inList:
			list.WriteRune(r)
		case r == '[':
			flushWord()
			inList = true
		case r == ']':
			return nil, ErrStrayListClose
		case unicode.IsSpace(r):
			flushWord()
		default:
			word.WriteRune(r)
		}
	}
	if inList {
		return nil, ErrUnterminatedList
	}
	flushWord()
	return tokens, nil
}

// FormatList renders items in the bracketed list form Tokenize accepts.
func FormatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}

func splitList(body string) []string {
	parts := strings.Split(body, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
