package engine

import (
	"testing"

	"github.com/louisbranch/rpgsim/internal/game/item"
)

func mustKind(t *testing.T, label string) item.Kind {
	t.Helper()
	kind, ok := item.ParseKind(label)
	if !ok {
		t.Fatalf("unknown kind %q", label)
	}
	return kind
}
