package expander

import "testing"

func TestEmitters_Total(t *testing.T) {
	if len(emitters) != len(Keywords()) {
		t.Errorf("emitter table has %d keywords, want %d", len(emitters), len(Keywords()))
	}

	for _, kw := range Keywords() {
		row, ok := emitters[kw]
		if !ok {
			t.Errorf("keyword %s has no emitters", kw)
			continue
		}
		for target := Target(0); target < numTargets; target++ {
			if row[target] == nil {
				t.Errorf("keyword %s has no emitter for %s", kw, target)
			}
		}
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"he4":  "He4",
		"NI56": "Ni56",
		"p":    "P",
		"":     "",
	}
	for in, want := range tests {
		if got := capitalize(in); got != want {
			t.Errorf("capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
