package taxonomy

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTaxonomyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxonomy.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write taxonomy file: %v", err)
	}
	return path
}

func TestLoadFile_Valid(t *testing.T) {
	path := writeTaxonomyFile(t, `[
		{"title": "Cardiology", "subspecialties": ["Electrophysiology"]},
		{"title": "General Practice"}
	]`)

	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	specs, err := p.Specialties(context.Background())
	if err != nil {
		t.Fatalf("Specialties: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("got %d specialties, want 2", len(specs))
	}
	if specs[0].Title != "Cardiology" || len(specs[0].Subspecialties) != 1 {
		t.Errorf("specs[0] = %+v", specs[0])
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not JSON", `{{{`},
		{"empty array", `[]`},
		{"missing title", `[{"subspecialties": ["EP"]}]`},
		{"empty title", `[{"title": ""}]`},
		{"unexpected field", `[{"title": "Cardiology", "color": "red"}]`},
		{"wrong subspecialty type", `[{"title": "Cardiology", "subspecialties": [1]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTaxonomyFile(t, tt.content)
			if _, err := LoadFile(path); err == nil {
				t.Error("LoadFile accepted invalid taxonomy")
			}
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("LoadFile accepted missing file")
	}
}
