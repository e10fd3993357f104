// Package export assembles merged PDF artifacts from a project's ordered
// page sequence, either the full collection or the starred subset.
package export

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Scope selects which pages of a project an export includes.
type Scope string

const (
	ScopeAll         Scope = "all"
	ScopeStarredOnly Scope = "starred"
)

// ParseScope validates a scope string. An empty value defaults to ScopeAll.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeAll, "":
		return ScopeAll, nil
	case ScopeStarredOnly:
		return ScopeStarredOnly, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidScope, s)
	}
}

// Artifact is a finished export: a merged PDF and its download filename.
type Artifact struct {
	Filename string
	Data     []byte
}

// Source provides page extraction from one loaded PDF. Page indexes are
// 0-based, matching the page records that reference the document.
type Source interface {
	ExtractPage(index int) ([]byte, error)
}

// Assembler loads source documents and merges extracted pages into a
// single PDF, preserving the order given.
type Assembler interface {
	Load(data []byte) (Source, error)
	Merge(pages [][]byte) ([]byte, error)
}

// SourceStore resolves the raw bytes of a source document by id. The
// files system satisfies it.
type SourceStore interface {
	Data(ctx context.Context, id uuid.UUID) ([]byte, error)
}
