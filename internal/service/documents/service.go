package documents

import (
	"context"
	"fmt"
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/agence/internal/domain/models"
	"github.com/mamadbah2/agence/pkg/clients/renderer"
)

const defaultFormat = "docx"

// MandateReader loads persisted mandates.
type MandateReader interface {
	Get(ctx context.Context, id string) (models.Mandate, error)
}

// Generator produces field maps and rendered documents.
type Generator interface {
	Generate(ctx context.Context, m models.Mandate, req models.DocumentRequest) (models.FieldMap, error)
	GenerateForMandate(ctx context.Context, id string, req models.DocumentRequest) (models.FieldMap, error)
	Render(ctx context.Context, m models.Mandate, req models.DocumentRequest) (*renderer.Document, error)
	RenderForMandate(ctx context.Context, id string, req models.DocumentRequest) (*renderer.Document, error)
}

// Service implements Generator. The renderer may be nil, in which case only field maps
// are produced.
type Service struct {
	assembler    *Assembler
	store        MandateReader
	renderer     renderer.Client
	templatesDir string
	logger       *zap.Logger
}

// NewService wires the document service.
func NewService(assembler *Assembler, store MandateReader, rendererClient renderer.Client, templatesDir string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		assembler:    assembler,
		store:        store,
		renderer:     rendererClient,
		templatesDir: templatesDir,
		logger:       logger,
	}
}

// Generate assembles the field map of one document.
func (s *Service) Generate(_ context.Context, m models.Mandate, req models.DocumentRequest) (models.FieldMap, error) {
	fields, err := s.assembler.Assemble(m, req)
	if err != nil {
		if IsValidation(err) {
			s.logger.Warn("document validation failed", zap.String("kind", string(req.Kind)), zap.String("mandate", m.Number), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("document assembled",
		zap.String("kind", string(req.Kind)),
		zap.String("mandate", m.Number),
		zap.Int("fields", len(fields)))
	return fields, nil
}

// GenerateForMandate loads a stored mandate then assembles the document.
func (s *Service) GenerateForMandate(ctx context.Context, id string, req models.DocumentRequest) (models.FieldMap, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, m, req)
}

// Render assembles the field map, then hands it with the template path to the renderer.
// Validation always happens before the template is resolved.
func (s *Service) Render(ctx context.Context, m models.Mandate, req models.DocumentRequest) (*renderer.Document, error) {
	fields, err := s.Generate(ctx, m, req)
	if err != nil {
		return nil, err
	}
	if s.renderer == nil {
		return nil, ErrRendererDisabled
	}

	format := req.Format
	if format == "" {
		format = defaultFormat
	}

	doc, err := s.renderer.Render(ctx, renderer.Request{
		Template: TemplatePath(s.templatesDir, req.Kind),
		Format:   format,
		Fields:   fields,
	})
	if err != nil {
		return nil, fmt.Errorf("render %s for mandate %s: %w", req.Kind, m.Number, err)
	}
	return doc, nil
}

// RenderForMandate loads a stored mandate then renders the document.
func (s *Service) RenderForMandate(ctx context.Context, id string, req models.DocumentRequest) (*renderer.Document, error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Render(ctx, m, req)
}

func (s *Service) load(ctx context.Context, id string) (models.Mandate, error) {
	if s.store == nil {
		return models.Mandate{}, fmt.Errorf("mandate store is not configured")
	}
	m, err := s.store.Get(ctx, id)
	if err != nil {
		return models.Mandate{}, fmt.Errorf("load mandate %s: %w", id, err)
	}
	return m, nil
}

// TemplatePath returns the template of a document kind, e.g. templates/mandate.docx.
func TemplatePath(dir string, kind models.DocumentKind) string {
	return path.Join(strings.TrimSuffix(dir, "/"), string(kind)+".docx")
}
