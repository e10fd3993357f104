package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Most2022/smartpdf/internal/pages"
	"github.com/Most2022/smartpdf/internal/projects"
	"github.com/google/uuid"
)

const advisorInstruction = "You are a world-class academic advisor and study assistant. " +
	"Provide concise, encouraging, and structured feedback."

const explainPrompt = "Explain the core academic concept shown in this page. " +
	"If there are formulas or diagrams, break them down simply for a student."

// System defines the AI analysis operations.
type System interface {
	// AnalyzeNotebook summarizes a project and suggests learning
	// objectives based on its name, subject, and page count.
	AnalyzeNotebook(ctx context.Context, projectID uuid.UUID) (string, error)

	// ExplainPage explains the concept shown on a page from its
	// thumbnail image.
	ExplainPage(ctx context.Context, pageID uuid.UUID) (string, error)
}

type system struct {
	client   Client
	projects projects.System
	pages    pages.System
	logger   *slog.Logger
}

// New creates the analysis system. A nil client marks the feature as
// unconfigured; operations return ErrUnavailable.
func New(client Client, projects projects.System, pages pages.System, logger *slog.Logger) System {
	return &system{
		client:   client,
		projects: projects,
		pages:    pages,
		logger:   logger.With("system", "analysis"),
	}
}

func (s *system) AnalyzeNotebook(ctx context.Context, projectID uuid.UUID) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}

	project, err := s.projects.Find(ctx, projectID)
	if err != nil {
		return "", err
	}

	prompt := buildNotebookPrompt(project.Name, string(project.Subject), project.PageCount)

	result, err := s.client.Generate(ctx, advisorInstruction, prompt)
	if err != nil {
		s.logger.Error("notebook analysis failed", "project_id", projectID, "error", err)
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	s.logger.Info("notebook analyzed", "project_id", projectID)
	return result, nil
}

func (s *system) ExplainPage(ctx context.Context, pageID uuid.UUID) (string, error) {
	if s.client == nil {
		return "", ErrUnavailable
	}

	data, contentType, err := s.pages.Thumbnail(ctx, pageID)
	if err != nil {
		return "", err
	}

	result, err := s.client.GenerateVision(ctx, explainPrompt, data, contentType)
	if err != nil {
		s.logger.Error("page explanation failed", "page_id", pageID, "error", err)
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	s.logger.Info("page explained", "page_id", pageID)
	return result, nil
}

func buildNotebookPrompt(name, subject string, pageCount int) string {
	return fmt.Sprintf(`Analyze this PDF Notebook titled %q (Subject: %s). It contains %d pages.
Please provide:
1. A high-level summary of what this notebook likely covers.
2. A list of 3 key learning objectives.
3. Suggest one missing topic that would be helpful to add for a student.`,
		name, subject, pageCount)
}
