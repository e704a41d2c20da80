package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/louisbranch/rpgsim/internal/game/command"
	"github.com/louisbranch/rpgsim/internal/game/script"
	apperrors "github.com/louisbranch/rpgsim/internal/platform/errors"
)

// DefaultMaxCommands bounds the declared command count.
const DefaultMaxCommands = 2000

// Format names an input format.
type Format string

const (
	FormatText Format = "text"
	FormatLua  Format = "lua"
)

// Input is a parsed command source ready to run.
type Input struct {
	Source   string
	Format   Format
	Declared int
	// Header is set when the declared count is invalid. The marker is
	// written once and the commands that were read still run.
	Header *command.Rejection
	// Missing counts declared lines absent from the source.
	Missing int

	lines    []string
	commands []command.Command
}

// Len returns the number of commands the input will run.
func (in Input) Len() int {
	if in.Format == FormatLua {
		return len(in.commands)
	}
	return len(in.lines)
}

// ReadText reads a command count line followed by up to that many command
// lines. A non-numeric count runs nothing. A count outside [1, maxCommands]
// is flagged but its lines are still consumed.
func ReadText(r io.Reader, source string, maxCommands int) (Input, error) {
	if r == nil {
		return Input{}, errors.New("reader is required")
	}
	if maxCommands <= 0 {
		maxCommands = DefaultMaxCommands
	}
	in := Input{Source: source, Format: FormatText}

	reader := bufio.NewReader(r)
	header, _, err := readLine(reader)
	if err != nil {
		return Input{}, fmt.Errorf("read command count: %w", err)
	}
	header = strings.TrimSpace(header)

	declared, err := strconv.Atoi(header)
	if err != nil {
		in.Header = &command.Rejection{
			Code:     apperrors.CodeCommandCountInvalid,
			Message:  "command count is not a number",
			Metadata: map[string]string{"Value": header},
		}
		return in, nil
	}
	in.Declared = declared
	in.Header = checkCount(declared, maxCommands)

	for len(in.lines) < declared {
		line, ok, err := readLine(reader)
		if err != nil {
			return Input{}, fmt.Errorf("read commands: %w", err)
		}
		if !ok {
			break
		}
		in.lines = append(in.lines, line)
	}
	if declared > len(in.lines) {
		in.Missing = declared - len(in.lines)
	}
	return in, nil
}

// FromScript wraps the commands built by a Lua script. The declared count is
// the number of commands built.
func FromScript(s *script.Script, source string, maxCommands int) (Input, error) {
	if s == nil {
		return Input{}, errors.New("script is required")
	}
	if maxCommands <= 0 {
		maxCommands = DefaultMaxCommands
	}
	return Input{
		Source:   source,
		Format:   FormatLua,
		Declared: len(s.Commands),
		Header:   checkCount(len(s.Commands), maxCommands),
		commands: append([]command.Command(nil), s.Commands...),
	}, nil
}

// readLine returns the next line without its line ending. Lines longer than
// command.MaxLineBytes are cut one byte past the limit, so parsing rejects
// them while the rest of the input still runs.
func readLine(r *bufio.Reader) (string, bool, error) {
	var (
		buf  []byte
		read bool
	)
	for {
		chunk, err := r.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
			if room := command.MaxLineBytes + 1 - len(buf); room > 0 {
				buf = append(buf, chunk[:min(room, len(chunk))]...)
			}
		}
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			return strings.TrimRight(string(buf), "\r\n"), read, nil
		case err != nil:
			return "", false, err
		}
		return strings.TrimRight(string(buf), "\r\n"), true, nil
	}
}

func checkCount(declared, maxCommands int) *command.Rejection {
	if declared >= 1 && declared <= maxCommands {
		return nil
	}
	return &command.Rejection{
		Code:    apperrors.CodeCommandCountRange,
		Message: "command count out of range",
		Metadata: map[string]string{
			"Value": strconv.Itoa(declared),
			"Min":   "1",
			"Max":   strconv.Itoa(maxCommands),
		},
	}
}
