package profile

import "testing"

func TestProject_FieldPerProgress(t *testing.T) {
	tests := []struct {
		progress int
		field    func(Delta) *string
		name     string
	}{
		{2, func(d Delta) *string { return d.HeardAboutUs }, "heardAboutUs"},
		{3, func(d Delta) *string { return d.DisplayName }, "displayName"},
		{4, func(d Delta) *string { return d.Role }, "role"},
		{5, func(d Delta) *string { return d.Specialty }, "specialty"},
		{6, func(d Delta) *string { return d.Subspecialty }, "subspecialty"},
		{7, func(d Delta) *string { return d.Subspecialty }, "subspecialty"},
		{8, func(d Delta) *string { return d.Interest }, "interest"},
	}

	for _, tt := range tests {
		d := Project(tt.progress, "answer")
		got := tt.field(d)
		if got == nil || *got != "answer" {
			t.Errorf("Project(%d) did not set %s", tt.progress, tt.name)
		}
		if !d.Personalized {
			t.Errorf("Project(%d) did not set personalized", tt.progress)
		}
		if n := fieldCount(d); n != 1 {
			t.Errorf("Project(%d) set %d fields, want 1", tt.progress, n)
		}
	}
}

func TestProject_NonProjectingProgress(t *testing.T) {
	for _, p := range []int{0, 1, 9, 42, -1} {
		d := Project(p, "answer")
		if n := fieldCount(d); n != 0 {
			t.Errorf("Project(%d) set %d fields, want 0", p, n)
		}
		if !d.Personalized {
			t.Errorf("Project(%d) did not set personalized", p)
		}
	}
}

func TestDelta_IsZero(t *testing.T) {
	if !(Delta{}).IsZero() {
		t.Error("empty delta should be zero")
	}
	if (Delta{Personalized: true}).IsZero() {
		t.Error("personalized delta should not be zero")
	}
	v := "x"
	if (Delta{Role: &v}).IsZero() {
		t.Error("role delta should not be zero")
	}
}

func fieldCount(d Delta) int {
	n := 0
	for _, p := range []*string{d.HeardAboutUs, d.DisplayName, d.Role, d.Specialty, d.Subspecialty, d.Interest} {
		if p != nil {
			n++
		}
	}
	return n
}
