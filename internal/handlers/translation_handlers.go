package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TranslationHandler manages translation request endpoints
type TranslationHandler struct {
	common *CommonServices
}

// NewTranslationHandler creates a new translation handler with the required dependencies
func NewTranslationHandler(common *CommonServices) *TranslationHandler {
	return &TranslationHandler{common: common}
}

// TranslateTextRequest represents the request body for a text translation
type TranslateTextRequest struct {
	CompanyName    string `json:"company_name" binding:"required"`
	Text           string `json:"text" binding:"required"`
	SourceLanguage string `json:"source_language" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
}

// TranslateFileRequest represents the request body for a file translation
type TranslateFileRequest struct {
	CompanyName    string `json:"company_name" binding:"required"`
	FileName       string `json:"file_name" binding:"required"`
	SourceLanguage string `json:"source_language" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
}

// TranslateText godoc
// @Summary Translate text
// @Description Translates a text snippet and records the request against the company
// @Tags translations
// @Accept json
// @Produce json
// @Param translation body TranslateTextRequest true "Translation request"
// @Success 200 {object} store.TranslationRequest
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /translations/text [post]
func (h *TranslationHandler) TranslateText(c *gin.Context) {
	var req TranslateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.common.translations.TranslateText(c.Request.Context(),
		req.CompanyName, req.Text, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// TranslateFile godoc
// @Summary Translate a file
// @Description Records a file translation request; extraction is handled downstream
// @Tags translations
// @Accept json
// @Produce json
// @Param translation body TranslateFileRequest true "File translation request"
// @Success 200 {object} store.TranslationRequest
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /translations/file [post]
func (h *TranslationHandler) TranslateFile(c *gin.Context) {
	var req TranslateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.common.translations.TranslateFile(c.Request.Context(),
		req.CompanyName, req.FileName, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// ListTranslationRequests godoc
// @Summary List translation requests
// @Description Lists recorded translation requests, optionally filtered by company
// @Tags translations
// @Accept json
// @Produce json
// @Param company_name query string false "Company name filter"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /translations [get]
func (h *TranslationHandler) ListTranslationRequests(c *gin.Context) {
	reqs, err := h.common.store.ListTranslationRequests(c.Request.Context(), c.Query("company_name"))
	if err != nil {
		handleStoreError(c, err, "Translation requests not found")
		return
	}

	sendList(c, reqs)
}

// ListLanguages godoc
// @Summary List supported languages
// @Description Returns the supported-language catalog
// @Tags translations
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /languages [get]
func (h *TranslationHandler) ListLanguages(c *gin.Context) {
	sendList(c, h.common.translations.ListLanguages())
}
