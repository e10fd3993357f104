package projects_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/Most2022/smartpdf/internal/projects"
)

func TestParseSubject(t *testing.T) {
	valid := []string{"Physics", "Chemistry", "Math", "PCM", "Custom"}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			subject, err := projects.ParseSubject(s)
			if err != nil {
				t.Fatalf("ParseSubject(%q) error: %v", s, err)
			}
			if string(subject) != s {
				t.Errorf("ParseSubject(%q) = %q", s, subject)
			}
		})
	}
}

func TestParseSubject_Invalid(t *testing.T) {
	for _, s := range []string{"", "physics", "Biology"} {
		t.Run("invalid "+s, func(t *testing.T) {
			if _, err := projects.ParseSubject(s); !errors.Is(err, projects.ErrInvalidSubject) {
				t.Errorf("ParseSubject(%q) error = %v, want ErrInvalidSubject", s, err)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("name", "mechanics")
	values.Set("subject", "Physics")

	f := projects.FiltersFromQuery(values)

	if f.Name == nil || *f.Name != "mechanics" {
		t.Errorf("FiltersFromQuery() name = %v, want mechanics", f.Name)
	}
	if f.Subject == nil || *f.Subject != projects.SubjectPhysics {
		t.Errorf("FiltersFromQuery() subject = %v, want Physics", f.Subject)
	}
}

func TestFiltersFromQuery_IgnoresInvalidSubject(t *testing.T) {
	values := url.Values{}
	values.Set("subject", "Biology")

	f := projects.FiltersFromQuery(values)

	if f.Subject != nil {
		t.Errorf("FiltersFromQuery() subject = %v, want nil", f.Subject)
	}
}
