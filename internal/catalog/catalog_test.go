package catalog

import "testing"

func TestLookup_AllProgressValuesPresent(t *testing.T) {
	for p := 1; p <= Terminal; p++ {
		q, ok := Lookup(p)
		if !ok {
			t.Fatalf("Lookup(%d) missing", p)
		}
		if q.Progress != p {
			t.Errorf("Lookup(%d).Progress = %d", p, q.Progress)
		}
		if q.Prompt == "" {
			t.Errorf("Lookup(%d) has empty prompt", p)
		}
		if q.Response != "" {
			t.Errorf("Lookup(%d) template carries a response", p)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Lookup(0); ok {
		t.Error("Lookup(0) unexpectedly found")
	}
	if _, ok := Lookup(9); ok {
		t.Error("Lookup(9) unexpectedly found")
	}
}

func TestLookup_TaxonomyQuestionsShipEmpty(t *testing.T) {
	// Specialty, subspecialty, name, and nurse-specialization questions
	// have no authored options; they are filled per request or free-text.
	for _, p := range []int{3, 5, 6, 7} {
		q, _ := Lookup(p)
		if len(q.Options) != 0 {
			t.Errorf("question %d has %d authored options, want 0", p, len(q.Options))
		}
	}
}

func TestLookup_ReturnsIndependentCopies(t *testing.T) {
	first, _ := Lookup(Terminal)
	first.Options[0].Key = "mutated"
	first.Options = append(first.Options, Option{Title: "extra"})

	second, _ := Lookup(Terminal)
	if second.Options[0].Key == "mutated" {
		t.Error("mutating a lookup result leaked into the catalog")
	}
	if len(second.Options) != 6 {
		t.Errorf("terminal question has %d options, want 6", len(second.Options))
	}
}

func TestClone_DeepCopiesSubOptions(t *testing.T) {
	q := Question{
		Progress: 5,
		Options: []Option{
			{Title: "Cardiology", SubOptions: []Option{{Title: "Electrophysiology"}}},
		},
	}
	c := q.Clone()
	c.Options[0].SubOptions[0].Title = "changed"

	if q.Options[0].SubOptions[0].Title != "Electrophysiology" {
		t.Error("Clone shares sub-option backing array with original")
	}
}

func TestTerminalQuestionAuthoredKeys(t *testing.T) {
	q, _ := Lookup(Terminal)

	keys := map[string]string{}
	for _, opt := range q.Options {
		keys[opt.Title] = opt.Key
	}
	if keys["Basic Sciences"] != "Basic Sciences" {
		t.Errorf("Basic Sciences key = %q", keys["Basic Sciences"])
	}
	if keys["General Trivia"] != "" {
		t.Errorf("General Trivia template key = %q, want empty", keys["General Trivia"])
	}
}
