package export

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Most2022/smartpdf/internal/pages"
	"github.com/Most2022/smartpdf/internal/projects"
	"github.com/google/uuid"
)

// System defines the export operation.
type System interface {
	// Export merges the project's pages in scope into a single PDF.
	Export(ctx context.Context, projectID uuid.UUID, scope Scope) (*Artifact, error)
}

type engine struct {
	projects  projects.System
	sources   SourceStore
	assembler Assembler
	logger    *slog.Logger
}

// New creates the export engine.
func New(projects projects.System, sources SourceStore, assembler Assembler, logger *slog.Logger) System {
	return &engine{
		projects:  projects,
		sources:   sources,
		assembler: assembler,
		logger:    logger.With("system", "export"),
	}
}

func (e *engine) Export(ctx context.Context, projectID uuid.UUID, scope Scope) (*Artifact, error) {
	project, err := e.projects.Find(ctx, projectID)
	if err != nil {
		return nil, err
	}

	selection := selectPages(project.Pages, scope)
	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}

	// Sources load lazily, once per distinct file id; pages from the same
	// document reuse the cached source. A nil cache entry marks a source
	// that failed to load so it is not retried.
	cache := make(map[uuid.UUID]Source)
	var extracted [][]byte

	for _, page := range selection {
		source, ok := cache[page.FileID]
		if !ok {
			source = e.loadSource(ctx, page.FileID)
			cache[page.FileID] = source
		}
		if source == nil {
			e.logger.Warn("skipping page with missing source",
				"page_id", page.ID, "file_id", page.FileID, "position", page.Position)
			continue
		}

		data, err := source.ExtractPage(page.PageIndex)
		if err != nil {
			e.logger.Warn("skipping unextractable page",
				"page_id", page.ID, "file_id", page.FileID, "page_index", page.PageIndex, "error", err)
			continue
		}
		extracted = append(extracted, data)
	}

	if len(extracted) == 0 {
		return nil, ErrEmptySelection
	}

	merged, err := e.assembler.Merge(extracted)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMergeFailed, err)
	}

	artifact := &Artifact{
		Filename: buildFilename(project.Name, scope),
		Data:     merged,
	}

	e.logger.Info("export assembled",
		"project_id", projectID,
		"scope", scope,
		"pages", len(extracted),
		"size_bytes", len(merged),
	)
	return artifact, nil
}

func (e *engine) loadSource(ctx context.Context, fileID uuid.UUID) Source {
	data, err := e.sources.Data(ctx, fileID)
	if err != nil {
		e.logger.Warn("source load failed", "file_id", fileID, "error", err)
		return nil
	}

	source, err := e.assembler.Load(data)
	if err != nil {
		e.logger.Warn("source parse failed", "file_id", fileID, "error", err)
		return nil
	}
	return source
}

func selectPages(sequence []pages.Page, scope Scope) []pages.Page {
	if scope == ScopeAll {
		return sequence
	}

	var starred []pages.Page
	for _, p := range sequence {
		if p.IsStarred {
			starred = append(starred, p)
		}
	}
	return starred
}

func buildFilename(name string, scope Scope) string {
	if scope == ScopeStarredOnly {
		return fmt.Sprintf("%s_Starred_Collection.pdf", name)
	}
	return fmt.Sprintf("%s_Full_Merged.pdf", name)
}
