package command

import (
	"math"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/rpgsim/internal/platform/errors"
)

// Command verbs in their text form.
const (
	VerbCreate   = "Create"
	VerbAttack   = "Attack"
	VerbCast     = "Cast"
	VerbDrink    = "Drink"
	VerbDialogue = "Dialogue"
	VerbShow     = "Show"
)

const (
	// MaxLineBytes bounds a single command line.
	MaxLineBytes = 1 << 20
	// MaxMagnitude bounds hit points and item values so hp arithmetic
	// cannot overflow.
	MaxMagnitude = math.MaxInt32
)

// Parse turns one command line into a command envelope. Failures are
// *apperrors.Error values coded COMMAND_EMPTY, COMMAND_UNKNOWN_VERB or
// COMMAND_MALFORMED.
func Parse(line string) (Command, error) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) > MaxLineBytes {
		return Command{}, malformed("command line is too long")
	}
	tokens, err := Tokenize(line)
	if err != nil {
		return Command{}, apperrors.WrapWithMetadata(apperrors.CodeCommandMalformed,
			"tokenize command", map[string]string{"Reason": err.Error()}, err)
	}
	if len(tokens) == 0 {
		return Command{}, apperrors.New(apperrors.CodeCommandEmpty, "command line is empty")
	}
	if tokens[0].Kind != TokenWord {
		return Command{}, malformed("command must start with a verb")
	}

	var cmd Command
	switch verb := tokens[0].Text; verb {
	case VerbCreate:
		cmd, err = parseCreate(tokens[1:])
	case VerbAttack, VerbCast, VerbDrink:
		cmd, err = parseAction(verb, tokens[1:])
	case VerbDialogue:
		cmd, err = parseDialogue(tokens[1:])
	case VerbShow:
		cmd, err = parseShow(tokens[1:])
	default:
		return Command{}, apperrors.WithMetadata(apperrors.CodeCommandUnknownVerb,
			"unknown command verb", map[string]string{"Verb": verb})
	}
	if err != nil {
		return Command{}, err
	}
	cmd.Line = line
	return cmd, nil
}

func parseCreate(tokens []Token) (Command, error) {
	if len(tokens) == 0 || tokens[0].Kind != TokenWord {
		return Command{}, malformed("create needs 'character' or 'item'")
	}
	switch tokens[0].Text {
	case "character":
		args, err := words(tokens[1:])
		if err != nil {
			return Command{}, err
		}
		if len(args) != 3 {
			return Command{}, malformed("create character takes class, name and hit points")
		}
		hp, err := integer("hit points", args[2])
		if err != nil {
			return Command{}, err
		}
		return NewCreateCharacter(args[0], args[1], hp), nil

	case "item":
		rest := tokens[1:]
		var targets []string
		if n := len(rest); n > 0 && rest[n-1].Kind == TokenList {
			targets = rest[n-1].Items
			rest = rest[:n-1]
		}
		args, err := words(rest)
		if err != nil {
			return Command{}, err
		}
		if len(args) != 4 {
			return Command{}, malformed("create item takes kind, owner, name and value")
		}
		value, err := integer("value", args[3])
		if err != nil {
			return Command{}, err
		}
		return NewCreateItem(args[0], args[1], args[2], value, targets), nil

	default:
		return Command{}, malformed("create needs 'character' or 'item'")
	}
}

// parseAction handles the three verbs shaped "<verb> <a> <b> <item name...>".
func parseAction(verb string, tokens []Token) (Command, error) {
	args, err := words(tokens)
	if err != nil {
		return Command{}, err
	}
	if len(args) < 3 {
		return Command{}, malformed(strings.ToLower(verb) + " takes two characters and an item name")
	}
	name := strings.Join(args[2:], " ")
	switch verb {
	case VerbAttack:
		return NewAttack(args[0], args[1], name), nil
	case VerbCast:
		return NewCast(args[0], args[1], name), nil
	default:
		return NewDrink(args[0], args[1], name), nil
	}
}

func parseDialogue(tokens []Token) (Command, error) {
	args, err := words(tokens)
	if err != nil {
		return Command{}, err
	}
	if len(args) < 2 {
		return Command{}, malformed("dialogue takes a speaker and a word count")
	}
	count, err := integer("word count", args[1])
	if err != nil {
		return Command{}, err
	}
	if count < 1 {
		return Command{}, malformed("dialogue word count must be positive")
	}
	spoken := args[2:]
	if len(spoken) < count {
		return Command{}, malformed("dialogue has fewer words than its count")
	}
	if len(spoken) > count {
		last := strings.Join(spoken[count-1:], " ")
		spoken = append(spoken[:count-1:count-1], last)
	}
	return NewDialogue(args[0], spoken), nil
}

func parseShow(tokens []Token) (Command, error) {
	args, err := words(tokens)
	if err != nil {
		return Command{}, err
	}
	if len(args) == 0 {
		return Command{}, malformed("show needs 'characters' or 'items'")
	}
	switch args[0] {
	case "characters":
		if len(args) != 1 {
			return Command{}, malformed("show characters takes no arguments")
		}
		return NewShowCharacters(), nil
	case "items":
		if len(args) < 3 {
			return Command{}, malformed("show items takes a kind and a character name")
		}
		return NewShowItems(args[1], strings.Join(args[2:], " ")), nil
	default:
		return Command{}, malformed("show needs 'characters' or 'items'")
	}
}

func words(tokens []Token) ([]string, error) {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != TokenWord {
			return nil, malformed("list is not allowed here")
		}
		out = append(out, tok.Text)
	}
	return out, nil
}

func integer(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.WrapWithMetadata(apperrors.CodeCommandMalformed,
			"parse "+field, map[string]string{"Reason": field + " must be an integer"}, err)
	}
	if n < -MaxMagnitude || n > MaxMagnitude {
		return 0, malformed(field + " is out of range")
	}
	return n, nil
}

func malformed(reason string) error {
	return apperrors.WithMetadata(apperrors.CodeCommandMalformed, reason, map[string]string{"Reason": reason})
}
