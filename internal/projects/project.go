// Package projects manages notebook projects: named collections of pages
// assembled from uploaded source documents. A project owns its pages,
// file records, and their blobs; deleting a project cascades to all of
// them.
package projects

import (
	"fmt"
	"time"

	"github.com/Most2022/smartpdf/internal/pages"
	"github.com/google/uuid"
)

// Subject categorizes a project for filtering and prompt context.
type Subject string

const (
	SubjectPhysics   Subject = "Physics"
	SubjectChemistry Subject = "Chemistry"
	SubjectMath      Subject = "Math"
	SubjectPCM       Subject = "PCM"
	SubjectCustom    Subject = "Custom"
)

// ParseSubject validates a subject string.
func ParseSubject(s string) (Subject, error) {
	switch Subject(s) {
	case SubjectPhysics, SubjectChemistry, SubjectMath, SubjectPCM, SubjectCustom:
		return Subject(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSubject, s)
	}
}

// Project represents a notebook. PageCount is derived from the pages
// table; Pages is populated only by Find.
type Project struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Subject   Subject      `json:"subject"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	PageCount int          `json:"page_count"`
	Pages     []pages.Page `json:"pages,omitempty"`
}

// CreateCommand contains the data required to create a project.
type CreateCommand struct {
	Name    string  `json:"name"`
	Subject Subject `json:"subject"`
}

// UpdateCommand contains the mutable project fields. Nil fields are left
// unchanged.
type UpdateCommand struct {
	Name    *string  `json:"name,omitempty"`
	Subject *Subject `json:"subject,omitempty"`
}
