package flow

import (
	"reflect"
	"testing"

	"github.com/medscroll/onboarding/internal/catalog"
	"github.com/medscroll/onboarding/internal/taxonomy"
)

var testSpecialties = []taxonomy.Specialty{
	{Title: "Cardiology", Subspecialties: []string{"Interventional Cardiology", "Electrophysiology"}},
	{Title: "Surgery", Subspecialties: []string{"Neurosurgery"}},
	{Title: "General Practice"},
}

func resolve(transcript []Turn, hasName bool, routingKey string) catalog.Question {
	return Resolve(Input{
		Transcript:  transcript,
		Profile:     ProfileSnapshot{HasDisplayName: hasName},
		Specialties: testSpecialties,
		RoutingKey:  routingKey,
	})
}

func TestResolve_Transitions(t *testing.T) {
	tests := []struct {
		name         string
		transcript   []Turn
		hasName      bool
		wantProgress int
	}{
		{"empty transcript starts at 1", nil, false, 1},
		{"progress 1 advances to 2", []Turn{{Progress: 1, Response: "Clinical Skills"}}, false, 2},
		{"progress 2 without name asks name", []Turn{{Progress: 1}, {Progress: 2, Response: "Google"}}, false, 3},
		{"progress 2 with known name skips name", []Turn{{Progress: 1}, {Progress: 2, Response: "Google"}}, true, 4},
		{"progress 3 advances to role", []Turn{{Progress: 3, Response: "Alex"}}, false, 4},
		{"doctor branches to specialty", []Turn{{Progress: 4, Response: "Doctor"}}, false, 5},
		{"nurse skips to specialization", []Turn{{Progress: 4, Response: "Nurse"}}, false, 7},
		{"student jumps to terminal", []Turn{{Progress: 4, Response: "Student"}}, false, 8},
		{"others jumps to terminal", []Turn{{Progress: 4, Response: "Others"}}, false, 8},
		{"specialty answered by doctor narrows", []Turn{{Progress: 4, Response: "Doctor"}, {Progress: 5, Response: "Cardiology"}}, false, 6},
		{"specialty without doctor history defaults", []Turn{{Progress: 4, Response: "Student"}, {Progress: 5, Response: "Cardiology"}}, false, 8},
		{"subspecialty answered goes terminal", []Turn{{Progress: 6, Response: "Electrophysiology"}}, false, 8},
		{"nurse specialization answered goes terminal", []Turn{{Progress: 7, Response: "critical care"}}, false, 8},
		{"terminal repeats", []Turn{{Progress: 8, Response: "General Trivia"}}, false, 8},
		{"unknown progress defaults to terminal", []Turn{{Progress: 42, Response: "?"}}, false, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve(tt.transcript, tt.hasName, "")
			if got.Progress != tt.wantProgress {
				t.Errorf("Resolve() progress = %d, want %d", got.Progress, tt.wantProgress)
			}
			if got.Response != "" {
				t.Errorf("Resolve() response = %q, want empty", got.Response)
			}
		})
	}
}

func TestResolve_DoctorGetsSpecialtyOptions(t *testing.T) {
	got := resolve([]Turn{{Progress: 4, Response: "Doctor"}}, false, "")

	want := taxonomy.Options(testSpecialties)
	if !reflect.DeepEqual(got.Options, want) {
		t.Errorf("options = %+v, want %+v", got.Options, want)
	}
}

func TestResolve_SubspecialtyMatch(t *testing.T) {
	tests := []struct {
		name      string
		specialty string
		want      []string
	}{
		{"exact title", "Cardiology", []string{"Interventional Cardiology", "Electrophysiology"}},
		{"case-insensitive title", "cARDIOLOGY", []string{"Interventional Cardiology", "Electrophysiology"}},
		{"specialty without subspecialties", "General Practice", nil},
		{"unknown specialty", "Astrology", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve([]Turn{
				{Progress: 4, Response: "Doctor"},
				{Progress: 5, Response: tt.specialty},
			}, false, "")

			if got.Progress != 6 {
				t.Fatalf("progress = %d, want 6", got.Progress)
			}
			want := taxonomy.SubOptions(tt.want)
			if !reflect.DeepEqual(got.Options, want) {
				t.Errorf("options = %+v, want %+v", got.Options, want)
			}
		})
	}
}

func TestResolve_RoutingKeyInjection(t *testing.T) {
	got := resolve([]Turn{{Progress: 6, Response: "Electrophysiology"}}, false, "quiz-123")

	var trivia *catalog.Option
	for i := range got.Options {
		if got.Options[i].Title == TriviaOptionTitle {
			trivia = &got.Options[i]
		}
	}
	if trivia == nil {
		t.Fatal("terminal question lost its General Trivia option")
	}
	if trivia.Key != "quiz-123" {
		t.Errorf("General Trivia key = %q, want %q", trivia.Key, "quiz-123")
	}

	// Only the trivia option gets the key; authored keys stay put.
	for _, opt := range got.Options {
		if opt.Title == "Basic Sciences" && opt.Key != "Basic Sciences" {
			t.Errorf("Basic Sciences key = %q, want authored value", opt.Key)
		}
		if opt.Title != TriviaOptionTitle && opt.Title != "Basic Sciences" && opt.Key != "" {
			t.Errorf("option %q unexpectedly keyed %q", opt.Title, opt.Key)
		}
	}
}

func TestResolve_EmptyRoutingKeyLeavesTemplate(t *testing.T) {
	got := resolve([]Turn{{Progress: 7, Response: "rehab"}}, false, "")

	for _, opt := range got.Options {
		if opt.Title == TriviaOptionTitle && opt.Key != "" {
			t.Errorf("General Trivia key = %q, want empty", opt.Key)
		}
	}
}

func TestResolve_NoCatalogContamination(t *testing.T) {
	// Injecting a routing key must never write through to the shared
	// catalog template.
	resolve([]Turn{{Progress: 6, Response: "x"}}, false, "quiz-abc")

	fresh, ok := catalog.Lookup(catalog.Terminal)
	if !ok {
		t.Fatal("terminal question missing from catalog")
	}
	for _, opt := range fresh.Options {
		if opt.Title == TriviaOptionTitle && opt.Key != "" {
			t.Errorf("catalog template contaminated: key = %q", opt.Key)
		}
	}

	// Same for taxonomy-driven options on question 5.
	resolve([]Turn{{Progress: 4, Response: "Doctor"}}, false, "")
	fresh, _ = catalog.Lookup(5)
	if len(fresh.Options) != 0 {
		t.Errorf("catalog question 5 gained %d options", len(fresh.Options))
	}
}

func TestResolve_Deterministic(t *testing.T) {
	transcript := []Turn{
		{Progress: 4, Response: "Doctor"},
		{Progress: 5, Response: "Surgery"},
	}
	first := resolve(transcript, false, "key-1")
	second := resolve(transcript, false, "key-1")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same input resolved differently:\nfirst  = %+v\nsecond = %+v", first, second)
	}
}
