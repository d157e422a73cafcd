// Package handlers provides the admin HTTP handlers for local site contacts.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/discourse/discourse-local-site-contacts/internal/application/localcontact"
	domain "github.com/discourse/discourse-local-site-contacts/internal/domain/localcontact"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/errors"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/logger"
	"github.com/discourse/discourse-local-site-contacts/internal/shared/utils"
)

const maxConfigBodyBytes = 64 << 10

type contactPreviewer interface {
	Preview(ctx context.Context, locale string, fromSystem bool) *app.PreviewResult
}

type configValidator interface {
	Validate(ctx context.Context, rawConfig string) *app.ValidationReport
}

type contactsSource interface {
	GetLocalContacts(ctx context.Context) string
}

// ResolveQuery is the query string of GET /resolve
type ResolveQuery struct {
	Locale     string `form:"locale" binding:"required,max=35"`
	FromSystem bool   `form:"from_system"`
}

// LocalContactHandler serves the admin preview and validation endpoints
type LocalContactHandler struct {
	previewer contactPreviewer
	validator configValidator
	settings  contactsSource
	logger    logger.Interface
}

// NewLocalContactHandler creates a new LocalContactHandler
func NewLocalContactHandler(previewer contactPreviewer, validator configValidator, settings contactsSource, logger logger.Interface) *LocalContactHandler {
	return &LocalContactHandler{
		previewer: previewer,
		validator: validator,
		settings:  settings,
		logger:    logger,
	}
}

// GetSchema returns the JSON schema of the contacts setting
// GET /admin/local-site-contacts/schema
func (h *LocalContactHandler) GetSchema(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "", domain.Schema())
}

// Resolve reports which account would send a system message to a
// recipient reading the given locale.
// GET /admin/local-site-contacts/resolve?locale=fr&from_system=false
func (h *LocalContactHandler) Resolve(c *gin.Context) {
	var query ResolveQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.logger.Warnw("invalid resolve query", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("locale query parameter is required", err.Error()))
		return
	}

	result := h.previewer.Preview(c.Request.Context(), query.Locale, query.FromSystem)
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ValidateStored validates the stored contacts setting
// GET /admin/local-site-contacts/validate
func (h *LocalContactHandler) ValidateStored(c *gin.Context) {
	ctx := c.Request.Context()
	report := h.validator.Validate(ctx, h.settings.GetLocalContacts(ctx))
	utils.SuccessResponse(c, http.StatusOK, "", report)
}

// ValidateCandidate validates a contacts configuration sent as the request
// body without storing it.
// POST /admin/local-site-contacts/validate
func (h *LocalContactHandler) ValidateCandidate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxConfigBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		h.logger.Warnw("failed to read validate request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("unable to read request body", err.Error()))
		return
	}

	report := h.validator.Validate(c.Request.Context(), string(body))
	utils.SuccessResponse(c, http.StatusOK, "", report)
}
