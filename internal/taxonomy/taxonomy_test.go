package taxonomy

import (
	"context"
	"reflect"
	"testing"
)

func TestStatic_Subspecialties(t *testing.T) {
	p := NewStatic([]Specialty{
		{Title: "Cardiology", Subspecialties: []string{"Electrophysiology"}},
		{Title: "General Practice"},
	})
	ctx := context.Background()

	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{"exact match", "Cardiology", []string{"Electrophysiology"}},
		{"case-insensitive match", "cardiology", []string{"Electrophysiology"}},
		{"no subspecialties", "General Practice", nil},
		{"miss", "Dermatology", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Subspecialties(ctx, tt.title)
			if err != nil {
				t.Fatalf("Subspecialties: %v", err)
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Subspecialties(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestStatic_SeedDefault(t *testing.T) {
	p := NewStatic(nil)
	specs, err := p.Specialties(context.Background())
	if err != nil {
		t.Fatalf("Specialties: %v", err)
	}
	if len(specs) == 0 {
		t.Fatal("seed taxonomy is empty")
	}
	seen := map[string]bool{}
	for _, s := range specs {
		if s.Title == "" {
			t.Error("seed specialty with empty title")
		}
		if seen[s.Title] {
			t.Errorf("duplicate seed specialty %q", s.Title)
		}
		seen[s.Title] = true
	}
}

func TestStatic_ReturnsCopies(t *testing.T) {
	p := NewStatic([]Specialty{{Title: "Cardiology", Subspecialties: []string{"EP"}}})
	ctx := context.Background()

	specs, _ := p.Specialties(ctx)
	specs[0].Title = "mutated"

	again, _ := p.Specialties(ctx)
	if again[0].Title != "Cardiology" {
		t.Error("mutating Specialties result leaked into provider state")
	}
}

func TestOptions_Conversion(t *testing.T) {
	got := Options([]Specialty{
		{Title: "Surgery", Subspecialties: []string{"Neurosurgery"}},
	})
	if len(got) != 1 {
		t.Fatalf("got %d options", len(got))
	}
	if got[0].Title != "Surgery" || got[0].Route != "Surgery" || got[0].Key != "" {
		t.Errorf("option = %+v", got[0])
	}
	if len(got[0].SubOptions) != 1 || got[0].SubOptions[0].Title != "Neurosurgery" {
		t.Errorf("sub-options = %+v", got[0].SubOptions)
	}
}
