// Package taxonomy supplies the role → specialty → subspecialty option
// tree consumed by the onboarding flow.
package taxonomy

import (
	"context"
	"strings"

	"github.com/medscroll/onboarding/internal/catalog"
)

// Specialty is one top-level specialty with its subspecialty titles.
type Specialty struct {
	Title          string   `json:"title"`
	Subspecialties []string `json:"subspecialties"`
}

// Provider supplies the specialty tree. Implementations may hit a
// database or a remote service; the flow only sees the result.
type Provider interface {
	// Specialties returns every specialty with its subspecialties,
	// in presentation order.
	Specialties(ctx context.Context) ([]Specialty, error)

	// Subspecialties returns the subspecialty titles for the specialty
	// whose title matches (case-insensitive exact). A miss returns an
	// empty slice, not an error.
	Subspecialties(ctx context.Context, specialtyTitle string) ([]string, error)
}

// Options converts specialties to the option shape questions carry:
// title doubles as route, subspecialties become sub-options.
func Options(specs []Specialty) []catalog.Option {
	out := make([]catalog.Option, 0, len(specs))
	for _, s := range specs {
		out = append(out, catalog.Option{
			Title:      s.Title,
			Route:      s.Title,
			SubOptions: SubOptions(s.Subspecialties),
		})
	}
	return out
}

// SubOptions converts subspecialty titles to options.
func SubOptions(titles []string) []catalog.Option {
	out := make([]catalog.Option, 0, len(titles))
	for _, t := range titles {
		out = append(out, catalog.Option{Title: t, Route: t})
	}
	return out
}

// Static is a Provider over an in-memory specialty list.
type Static struct {
	specs []Specialty
}

// NewStatic creates a Provider over the given list. Pass nil to use the
// built-in seed.
func NewStatic(specs []Specialty) *Static {
	if specs == nil {
		specs = seedSpecialties
	}
	return &Static{specs: specs}
}

func (s *Static) Specialties(_ context.Context) ([]Specialty, error) {
	out := make([]Specialty, len(s.specs))
	copy(out, s.specs)
	return out, nil
}

func (s *Static) Subspecialties(_ context.Context, specialtyTitle string) ([]string, error) {
	for _, sp := range s.specs {
		if strings.EqualFold(sp.Title, specialtyTitle) {
			out := make([]string, len(sp.Subspecialties))
			copy(out, sp.Subspecialties)
			return out, nil
		}
	}
	return nil, nil
}
