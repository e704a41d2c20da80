package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeContainerFull, "arsenal is full")
	wrapped := fmt.Errorf("create item: %w", err)

	if !errors.Is(wrapped, &Error{Code: CodeContainerFull}) {
		t.Fatal("expected errors.Is to match by code")
	}
	if errors.Is(wrapped, &Error{Code: CodeItemNotOwned}) {
		t.Fatal("expected different code not to match")
	}
}

func TestWrapWithMetadata(t *testing.T) {
	cause := errors.New("strconv: bad digit")
	err := WrapWithMetadata(CodeCommandMalformed, "parse hp", map[string]string{"Reason": "hp must be an integer"}, cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if err.Error() != "parse hp: strconv: bad digit" {
		t.Fatalf("error = %q", err.Error())
	}
	if got := GetMetadata(err)["Reason"]; got != "hp must be an integer" {
		t.Fatalf("metadata reason = %q", got)
	}
}

func TestGetCodeAndMetadata(t *testing.T) {
	err := fmt.Errorf("decide: %w", WithMetadata(CodeCharacterNotFound, "missing", map[string]string{"Name": "Rex"}))

	if got := GetCode(err); got != CodeCharacterNotFound {
		t.Fatalf("code = %q, want %q", got, CodeCharacterNotFound)
	}
	if got := GetMetadata(err)["Name"]; got != "Rex" {
		t.Fatalf("metadata name = %q, want Rex", got)
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Fatalf("plain error code = %q, want %q", got, CodeUnknown)
	}
	if GetMetadata(errors.New("plain")) != nil {
		t.Fatal("expected nil metadata for plain error")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want Category
	}{
		{CodeCommandMalformed, CategoryInput},
		{CodeCharacterInvalidClass, CategoryInput},
		{CodeCharacterNotFound, CategoryNotFound},
		{CodeItemNotOwned, CategoryNotFound},
		{CodeContainerFull, CategoryState},
		{CodeCharacterAlreadyExists, CategoryState},
		{CodeSpellTargetDenied, CategoryForbidden},
		{CodeItemSlotUnsupported, CategoryForbidden},
		{CodeUnknown, CategoryInternal},
	}
	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Fatalf("%s category = %q, want %q", tt.code, got, tt.want)
		}
	}
}
