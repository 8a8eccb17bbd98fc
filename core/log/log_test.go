package log

import (
	"errors"
	"testing"
)

func TestStr(t *testing.T) {
	kv := Str("key", "value")

	if slice, ok := kv.([]any); !ok {
		t.Fatal("Str should return []any")
	} else if len(slice) != 2 {
		t.Fatalf("Str should return slice with 2 elements, got %d", len(slice))
	} else if slice[0] != "key" || slice[1] != "value" {
		t.Fatalf("Str should return [\"key\", \"value\"], got %v", slice)
	}
}

func TestInt(t *testing.T) {
	kv := Int("line", 42)

	if slice, ok := kv.([]any); !ok {
		t.Fatal("Int should return []any")
	} else if len(slice) != 2 || slice[0] != "line" || slice[1] != 42 {
		t.Fatalf("Int should return [\"line\", 42], got %v", slice)
	}
}

func TestStrs(t *testing.T) {
	kv := Strs("fields", []string{"He4", "he4"})

	slice, ok := kv.([]any)
	if !ok || len(slice) != 2 {
		t.Fatalf("Strs should return a 2-element []any, got %v", kv)
	}
	if fields, ok := slice[1].([]string); !ok || len(fields) != 2 {
		t.Fatalf("Strs should carry the slice value, got %v", slice[1])
	}
}

func TestOrNop(t *testing.T) {
	l := OrNop(nil)
	if _, ok := l.(Nop); !ok {
		t.Fatalf("OrNop(nil) should return Nop, got %T", l)
	}

	// Must not panic.
	l.With("k", "v").Info("msg")
	l.Error(errors.New("boom"), "msg")

	var custom Logger = Nop{}
	if OrNop(custom) != custom {
		t.Error("OrNop should return a non-nil logger unchanged")
	}
}
