package diagnostics

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"diagnostic-backend/internal/diagnostics/answers"
	"diagnostic-backend/internal/diagnostics/knowledge"
	"diagnostic-backend/internal/diagnostics/urgency"
	"diagnostic-backend/internal/shared/server/respond"
	"diagnostic-backend/internal/shared/util"
)

// Handler wires HTTP handlers to the diagnostics service.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the public catalog and diagnostic routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sectors", h.listSectors)
	rg.GET("/sectors/:sector/questions", h.listQuestions)
	rg.GET("/solutions", h.listSolutions)
	rg.POST("/diagnostics/preview", h.preview)
	rg.POST("/diagnostics", h.submit)
	rg.GET("/diagnostics/:id", h.getDiagnostic)
	rg.GET("/diagnostics/:id/report.pdf", h.report)
}

// RegisterAdminRoutes attaches the admin panel routes; rg is expected to be guarded.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/diagnostics", h.adminList)
	rg.GET("/diagnostics/:id", h.adminGet)
}

type requestBody struct {
	Sector       string          `json:"sector"`
	BusinessType string          `json:"businessType"`
	Answers      json.RawMessage `json:"answers"`
	ContactEmail string          `json:"contactEmail"`
}

func (h *Handler) listSectors(c *gin.Context) {
	respond.OK(c, gin.H{"sectors": h.Svc.Engine.Knowledge().Sectors()})
}

func (h *Handler) listQuestions(c *gin.Context) {
	sector, err := knowledge.ParseSector(c.Param("sector"))
	if err == nil {
		var qs []knowledge.Question
		if qs, err = h.Svc.Engine.Knowledge().QuestionsForSector(sector); err == nil {
			respond.OK(c, gin.H{"sector": sector, "label": sector.Label(), "questions": qs})
			return
		}
	}
	h.writeError(c, err, "failed to list questions")
}

func (h *Handler) listSolutions(c *gin.Context) {
	respond.OK(c, gin.H{"solutions": h.Svc.Engine.Knowledge().Solutions()})
}

func (h *Handler) preview(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}
	res, err := h.Svc.Preview(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "failed to run diagnostic")
		return
	}
	c.Set("sector", string(res.Sector))
	respond.OK(c, gin.H{"result": res})
}

func (h *Handler) submit(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}
	rec, err := h.Svc.Submit(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "failed to run diagnostic")
		return
	}
	c.Set("diagnosticId", rec.ID)
	c.Set("sector", string(rec.Sector))
	respond.Created(c, gin.H{"id": rec.ID, "result": rec.Result})
}

func (h *Handler) getDiagnostic(c *gin.Context) {
	id := c.Param("id")
	c.Set("diagnosticId", id)
	rec, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "failed to fetch diagnostic")
		return
	}
	respond.OK(c, gin.H{
		"id":          rec.ID,
		"sector":      rec.Sector,
		"urgency":     rec.Urgency,
		"companyName": rec.CompanyName,
		"createdAt":   rec.CreatedAt.Format(time.RFC3339),
		"result":      rec.Result,
	})
}

func (h *Handler) report(c *gin.Context) {
	id := c.Param("id")
	c.Set("diagnosticId", id)
	rec, data, err := h.Svc.Report(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "failed to render report")
		return
	}
	respond.PDF(c, reportFileName(rec), data)
}

func (h *Handler) adminList(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	filter := ListFilter{Limit: limit, Offset: offset}
	if v := c.Query("urgency"); v != "" {
		level, ok := urgency.ParseLevel(v)
		if !ok {
			respond.Error(c, http.StatusBadRequest, "validation_error", "urgency must be high, medium or low", respond.Field("urgency", "invalid"))
			return
		}
		filter.Urgency = level
	}

	records, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list diagnostics", nil)
		return
	}

	items := make([]gin.H, 0, len(records))
	for _, rec := range records {
		items = append(items, gin.H{
			"id":              rec.ID,
			"sector":          rec.Sector,
			"businessType":    rec.Result.BusinessType,
			"urgency":         rec.Urgency,
			"companyName":     rec.CompanyName,
			"contactName":     rec.ContactName,
			"contactEmail":    rec.ContactEmail,
			"primarySolution": rec.Result.Recommendation.Primary.ID,
			"monthlySavings":  rec.Result.Summary.TotalPotentialSavings.MoneyCost,
			"createdAt":       rec.CreatedAt.Format(time.RFC3339),
		})
	}
	respond.OK(c, gin.H{"items": items, "limit": limit, "offset": offset})
}

func (h *Handler) adminGet(c *gin.Context) {
	id := c.Param("id")
	c.Set("diagnosticId", id)
	rec, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "failed to fetch diagnostic")
		return
	}
	respond.OK(c, gin.H{
		"id":           rec.ID,
		"sector":       rec.Sector,
		"urgency":      rec.Urgency,
		"companyName":  rec.CompanyName,
		"contactName":  rec.ContactName,
		"contactEmail": rec.ContactEmail,
		"answers":      rec.Answers,
		"createdAt":    rec.CreatedAt.Format(time.RFC3339),
		"result":       rec.Result,
	})
}

func (h *Handler) bindRequest(c *gin.Context) (Request, bool) {
	var body requestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be a JSON object", nil)
		return Request{}, false
	}
	raw, err := answers.DecodeObject(body.Answers)
	if err != nil {
		h.writeError(c, err, "")
		return Request{}, false
	}
	sector := body.Sector
	if sector == "" {
		sector = body.BusinessType
	}
	return Request{Sector: sector, Answers: raw, ContactEmail: body.ContactEmail}, true
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, knowledge.ErrInvalidSector):
		respond.Error(c, http.StatusBadRequest, "invalid_sector", err.Error(), respond.Field("sector", "unknown"))
	case errors.Is(err, answers.ErrMalformedAnswers):
		respond.Error(c, http.StatusBadRequest, "validation_error", "answers must be a JSON object", respond.Field("answers", "malformed"))
	case errors.Is(err, ErrInvalidContact):
		respond.Error(c, http.StatusBadRequest, "validation_error", "contactEmail is not a valid address", respond.Field("contactEmail", "invalid"))
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "diagnostic not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

func reportFileName(rec Record) string {
	if slug := util.Slug(rec.CompanyName); slug != "" {
		return slug + "-diagnostic-" + rec.ID + ".pdf"
	}
	return "diagnostic-" + rec.ID + ".pdf"
}
