package driver

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/louisbranch/rpgsim/internal/game/command"
	"github.com/louisbranch/rpgsim/internal/game/engine"
	"github.com/louisbranch/rpgsim/internal/game/journal"
	"github.com/louisbranch/rpgsim/internal/game/journal/mocks"
	"github.com/louisbranch/rpgsim/internal/game/script"
	"github.com/louisbranch/rpgsim/internal/platform/id"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

const duelInput = `6
Create character fighter Rex 10
Create character wizard Bob 5
Create item weapon Rex Sword 5
Attack Rex Bob Sword
Attack Rex Bob Sword
Show characters
`

const duelOutput = `A new fighter came to town, Rex.
A new wizard came to town, Bob.
Rex just obtained a new weapon called Sword.
Rex attacks Bob with their Sword!
Bob has died...
Error caught
Rex:fighter:10 
`

func testConfig() Config {
	return Config{
		NewRunID:    id.Sequence("run"),
		GameOptions: []engine.Option{engine.WithIDGenerator(id.Sequence("char"))},
	}
}

func runText(t *testing.T, cfg Config, input string) (string, Summary) {
	t.Helper()
	in, err := ReadText(strings.NewReader(input), "input.txt", 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var out bytes.Buffer
	summary, err := NewRunner(cfg).Run(context.Background(), in, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String(), summary
}

func TestRunWritesOutput(t *testing.T) {
	out, summary := runText(t, testConfig(), duelInput)
	if out != duelOutput {
		t.Fatalf("output = %q, want %q", out, duelOutput)
	}
	if summary.RunID != "run-1" || summary.Processed != 6 || summary.Accepted != 5 || summary.Rejected != 1 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestRunCountOutOfRangeStillProcesses(t *testing.T) {
	cfg := testConfig()
	in, err := ReadText(strings.NewReader("3\nShow characters\nDialogue Narrator 1 hi\nShow characters\n"), "input.txt", 2)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var out bytes.Buffer
	if _, err := NewRunner(cfg).Run(context.Background(), in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "Error caught\n\nNarrator: hi \n\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestRunRejectsOversizedLineAndContinues(t *testing.T) {
	long := "Show characters " + strings.Repeat("x", command.MaxLineBytes)
	out, summary := runText(t, testConfig(), "2\n"+long+"\nShow characters\n")
	if out != "Error caught\n\n" {
		t.Fatalf("output = %q", out)
	}
	if summary.Processed != 2 || summary.Rejected != 1 {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestRunInvalidCountProcessesNothing(t *testing.T) {
	out, summary := runText(t, testConfig(), "many\nShow characters\n")
	if out != "Error caught\n" {
		t.Fatalf("output = %q", out)
	}
	if summary.Processed != 0 {
		t.Fatalf("processed = %d", summary.Processed)
	}
}

func TestRunLogsShortInputAndRejections(t *testing.T) {
	var logs bytes.Buffer
	cfg := testConfig()
	cfg.Verbose = true
	cfg.Logger = log.New(&logs, "", 0)

	_, summary := runText(t, cfg, "3\nAttack Rex Bob Sword\n")
	if summary.Missing != 2 {
		t.Fatalf("missing = %d", summary.Missing)
	}
	got := logs.String()
	for _, want := range []string{
		"input ended after 1 of 3 declared commands",
		"CHARACTER_NOT_FOUND",
		"Character Rex is not in town",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("logs = %q, want %q", got, want)
		}
	}
}

func TestRunLogsInConfiguredLocale(t *testing.T) {
	var logs bytes.Buffer
	cfg := testConfig()
	cfg.Verbose = true
	cfg.Locale = "pt-BR"
	cfg.Logger = log.New(&logs, "", 0)

	runText(t, cfg, "1\nCreate character rogue Bob 3\n")
	if !strings.Contains(logs.String(), "CHARACTER_INVALID_CLASS") || strings.Contains(logs.String(), "Unknown character class") {
		t.Fatalf("logs = %q", logs.String())
	}
}

func TestRunQuietByDefault(t *testing.T) {
	var logs bytes.Buffer
	cfg := testConfig()
	cfg.Logger = log.New(&logs, "", 0)

	runText(t, cfg, "1\nAttack Rex Bob Sword\n")
	if logs.Len() != 0 {
		t.Fatalf("logs = %q, want none", logs.String())
	}
}

func TestRunJournalsEveryCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockRecorder(ctrl)

	var records []journal.CommandRecord
	gomock.InOrder(
		recorder.EXPECT().BeginRun(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, run journal.Run) error {
			if run.ID != "run-1" || run.Declared != 6 || run.Format != "text" || run.Source != "input.txt" {
				t.Fatalf("run = %+v", run)
			}
			return nil
		}),
		recorder.EXPECT().RecordCommand(gomock.Any(), gomock.Any()).Times(6).DoAndReturn(func(_ context.Context, record journal.CommandRecord) error {
			records = append(records, record)
			return nil
		}),
		recorder.EXPECT().FinishRun(gomock.Any(), "run-1", gomock.Any()).Return(nil),
	)

	cfg := testConfig()
	cfg.Recorder = recorder
	runText(t, cfg, duelInput)

	if len(records) != 6 {
		t.Fatalf("records = %d", len(records))
	}
	for i, record := range records {
		if record.Seq != i+1 || record.RunID != "run-1" {
			t.Fatalf("record %d = %+v", i, record)
		}
	}
	attack := records[3]
	if !attack.Accepted || attack.Type != "character.attack" || len(attack.Events) != 2 {
		t.Fatalf("attack record = %+v", attack)
	}
	if len(attack.Output) != 2 || attack.Output[1] != "Bob has died..." {
		t.Fatalf("attack output = %q", attack.Output)
	}
	missed := records[4]
	if missed.Accepted || missed.RejectionCode != "CHARACTER_NOT_FOUND" || len(missed.Events) != 0 {
		t.Fatalf("missed record = %+v", missed)
	}
}

func TestRunAbortsOnJournalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockRecorder(ctrl)
	recorder.EXPECT().BeginRun(gomock.Any(), gomock.Any()).Return(nil)
	recorder.EXPECT().RecordCommand(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	cfg := testConfig()
	cfg.Recorder = recorder
	in, err := ReadText(strings.NewReader(duelInput), "input.txt", 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var out bytes.Buffer
	_, err = NewRunner(cfg).Run(context.Background(), in, &out)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("err = %v, want journal error", err)
	}
	if out.String() != "A new fighter came to town, Rex.\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockRecorder(ctrl)
	recorder.EXPECT().BeginRun(gomock.Any(), gomock.Any()).Return(nil)

	cfg := testConfig()
	cfg.Recorder = recorder
	in, err := ReadText(strings.NewReader(duelInput), "input.txt", 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	summary, err := NewRunner(cfg).Run(ctx, in, &out)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if summary.Processed != 0 || out.Len() != 0 {
		t.Fatalf("summary = %+v, output = %q", summary, out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("read-only") }

func TestRunReportsWriteFailure(t *testing.T) {
	in, err := ReadText(strings.NewReader(duelInput), "input.txt", 0)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	_, err = NewRunner(testConfig()).Run(context.Background(), in, failingWriter{})
	if err == nil || !strings.Contains(err.Error(), "write output") {
		t.Fatalf("err = %v, want write error", err)
	}
}

func TestRunLuaMatchesText(t *testing.T) {
	s, err := script.LoadString("duel", `
local game = Game.new("duel")
game:character("fighter", "Rex", 10)
game:character("wizard", "Bob", 5)
game:item("weapon", "Rex", "Sword", 5)
game:attack("Rex", "Bob", "Sword")
game:attack("Rex", "Bob", "Sword")
game:show_characters()
return game
`)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	in, err := FromScript(s, "duel.lua", 0)
	if err != nil {
		t.Fatalf("from script: %v", err)
	}
	var out bytes.Buffer
	if _, err := NewRunner(testConfig()).Run(context.Background(), in, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != duelOutput {
		t.Fatalf("output = %q, want %q", out.String(), duelOutput)
	}
}

func TestRunTracesEachCommand(t *testing.T) {
	spans := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	cfg := testConfig()
	cfg.Tracer = provider.Tracer("test")
	runText(t, cfg, duelInput)

	ended := spans.Ended()
	var commands, runs int
	rejected := 0
	category := ""
	for _, span := range ended {
		switch span.Name() {
		case "rpgsim.run":
			runs++
		case "rpgsim.command":
			commands++
			for _, attr := range span.Attributes() {
				if attr.Key == attribute.Key("rpgsim.command.accepted") && !attr.Value.AsBool() {
					rejected++
				}
				if attr.Key == attribute.Key("rpgsim.command.rejection_category") {
					category = attr.Value.AsString()
				}
			}
		}
	}
	if runs != 1 || commands != 6 || rejected != 1 {
		t.Fatalf("runs = %d, commands = %d, rejected = %d", runs, commands, rejected)
	}
	if category != "not_found" {
		t.Fatalf("rejection category = %q, want not_found", category)
	}
}
