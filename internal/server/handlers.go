package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/generator"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/templates"
)

// Request body limits
const (
	maxBodyBytes      = 1 << 20
	maxBatchBodyBytes = 8 << 20
)

// GenerateRequest represents the request body for /generate
type GenerateRequest struct {
	TemplateID string         `json:"template_id,omitempty"`
	Data       map[string]any `json:"data" validate:"required"`
	Options    map[string]any `json:"options,omitempty"`
	Format     string         `json:"format,omitempty"`
}

// BatchRequest represents the request body for /generate/batch
type BatchRequest struct {
	Items []GenerateRequest `json:"items" validate:"required,min=1,max=50,dive"`
}

// BatchEvent is streamed once per batch item
type BatchEvent struct {
	Index      int    `json:"index"`
	DocumentID string `json:"document_id,omitempty"`
	TemplateID string `json:"template_id,omitempty"`
	Pages      int    `json:"pages,omitempty"`
	Degraded   bool   `json:"degraded,omitempty"`
	Error      string `json:"error,omitempty"`
	Status     int    `json:"status,omitempty"`
}

// CustomizeRequest represents the request body for /templates/{id}/customize
type CustomizeRequest struct {
	Overrides map[string]any `json:"overrides" validate:"required"`
}

// CustomizeResponse names the template created by a customization
type CustomizeResponse struct {
	ID     string `json:"id"`
	BaseID string `json:"base_id"`
}

// TemplateListResponse represents the response for /templates
type TemplateListResponse struct {
	Default   string             `json:"default"`
	Templates []*templates.Entry `json:"templates"`
}

// DocumentListResponse represents the response for /documents
type DocumentListResponse struct {
	Documents []db.Document `json:"documents"`
}

// handleListTemplates lists registered templates, customized ones included
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	reg := s.generator.Registry()
	s.jsonResponse(w, http.StatusOK, TemplateListResponse{
		Default:   reg.DefaultID(),
		Templates: reg.List(),
	})
}

// handleGetTemplate returns one template's metadata
func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	entry, err := s.generator.Registry().Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, entry)
}

// handleCustomizeTemplate derives a new template from {id}
func (s *Server) handleCustomizeTemplate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req CustomizeRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	baseID := r.PathValue("id")
	id, err := s.generator.Registry().Customize(baseID, req.Overrides)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("customized template", "base", baseID, "id", id)
	s.jsonResponse(w, http.StatusCreated, CustomizeResponse{ID: id, BaseID: baseID})
}

// handlePreview renders {id} with the built-in sample resume
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	res, err := s.generator.Preview(r.Context(), r.PathValue("id"), nil)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	pdfResponse(w, res.TemplateID, res.Pages, res.Degraded, res.Buffer)
}

// handleGenerate renders one document, stores it and returns the PDF
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req GenerateRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, doc, err := s.generateAndStore(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("X-Document-ID", doc.ID.String())
	pdfResponse(w, res.TemplateID, res.Pages, res.Degraded, res.Buffer)
}

// handleGenerateBatch renders every item in order and streams one event per item via SSE
func (s *Server) handleGenerateBatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBatchBodyBytes)

	var req BatchRequest
	if err := s.decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)
	failed := 0
	for i, item := range req.Items {
		if ctx.Err() != nil {
			logger.Warn("batch cancelled", "done", i, "total", len(req.Items))
			return
		}

		event := "document"
		ev := BatchEvent{Index: i}
		res, doc, err := s.generateAndStore(ctx, item)
		if err != nil {
			failed++
			event = "failed"
			ev.Error = err.Error()
			ev.Status = HTTPStatus(err)
		} else {
			ev.DocumentID = doc.ID.String()
			ev.TemplateID = res.TemplateID
			ev.Pages = res.Pages
			ev.Degraded = res.Degraded
		}

		if err := sse.WriteEvent(event, ev); err != nil {
			logger.Error("error writing SSE event", "err", err)
			return
		}
	}

	if err := sse.WriteComplete(len(req.Items), failed); err != nil {
		logger.Error("error writing SSE event", "err", err)
	}
}

// handleListDocuments lists stored documents, newest first
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, r, &ErrValidation{Field: "limit", Message: "must be a non-negative integer"})
			return
		}
		limit = n
	}

	docs, err := s.store.ListDocuments(r.Context(), limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if docs == nil {
		docs = []db.Document{}
	}
	s.jsonResponse(w, http.StatusOK, DocumentListResponse{Documents: docs})
}

// handleGetDocument returns a stored PDF
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.writeError(w, r, &ErrInvalidID{Value: idStr})
		return
	}

	doc, err := s.store.GetDocument(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("X-Document-ID", doc.ID.String())
	pdfResponse(w, doc.TemplateID, doc.Pages, doc.Degraded, doc.Content)
}

// generateAndStore runs the generator and persists the output
func (s *Server) generateAndStore(ctx context.Context, req GenerateRequest) (*generator.Result, *db.Document, error) {
	res, err := s.generator.Generate(ctx, generator.Request{
		TemplateID: req.TemplateID,
		Data:       req.Data,
		Options:    req.Options,
		Format:     req.Format,
	})
	if err != nil {
		return nil, nil, err
	}

	doc, err := s.store.SaveDocument(ctx, db.DocumentInput{
		TemplateID: res.TemplateID,
		Pages:      res.Pages,
		Degraded:   res.Degraded,
		Content:    res.Buffer,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to store document: %w", err)
	}
	return res, doc, nil
}

// decode parses a JSON body into dst and validates it
func (s *Server) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := s.validate.Struct(dst); err != nil {
		return requestError(err)
	}
	return nil
}

// pdfResponse writes a PDF body with its document headers
func pdfResponse(w http.ResponseWriter, templateID string, pages int, degraded bool, content []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.Header().Set("Content-Disposition", `inline; filename="resume.pdf"`)
	w.Header().Set("X-Template-ID", templateID)
	w.Header().Set("X-Page-Count", strconv.Itoa(pages))
	if degraded {
		w.Header().Set("X-Resume-Degraded", "true")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
