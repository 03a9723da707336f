package assist

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/codesage/server/internal/auth"
	"codeberg.org/codesage/server/internal/errors"
	"codeberg.org/codesage/server/internal/gateway"
	"codeberg.org/codesage/server/internal/logger"
)

// assumed when the request doesn't name a language
const defaultLanguage = "python"

// rejects code that is empty once trimmed and fills in the default
// language; returns false after writing the 400 response
func normalizeSubmission(c *gin.Context, code string, language *string) bool {
	if strings.TrimSpace(code) == "" {
		errors.BadRequest(c, "code must not be empty", nil)
		return false
	}

	if strings.TrimSpace(*language) == "" {
		*language = defaultLanguage
	}

	return true
}

// ReviewHandler godoc
// @Summary Review code
// @Description Runs an AI code review and returns the report with a quality score and issue counts
// @Tags assist
// @Accept json
// @Produce json
// @Success 200 {object} assist.ReviewResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/v1/assist/review [post]
func ReviewHandler(svc Assistant, recorder HistoryRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReviewRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if !normalizeSubmission(c, req.Code, &req.Language) {
			return
		}

		result, err := svc.Review(c.Request.Context(), req.Code, req.Language, req.FocusAreas)
		if err != nil {
			respondUpstreamError(c, err)
			return
		}

		recordHistory(c, recorder, "review", result.Language, req.Code, result.Review)

		c.JSON(http.StatusOK, result)
	}
}

// RewriteHandler godoc
// @Summary Rewrite code
// @Description Produces an improved version of the submitted code
// @Tags assist
// @Accept json
// @Produce json
// @Success 200 {object} assist.RewriteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/v1/assist/rewrite [post]
func RewriteHandler(svc Assistant, recorder HistoryRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RewriteRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if !normalizeSubmission(c, req.Code, &req.Language) {
			return
		}

		result, err := svc.Rewrite(c.Request.Context(), req.Code, req.Language, req.Instructions)
		if err != nil {
			respondUpstreamError(c, err)
			return
		}

		recordHistory(c, recorder, "rewrite", result.Language, req.Code, result.RewrittenCode)

		c.JSON(http.StatusOK, result)
	}
}

// VisualizeHandler godoc
// @Summary Visualize code flow
// @Description Returns an execution flow graph for the submitted code
// @Tags assist
// @Accept json
// @Produce json
// @Success 200 {object} assist.VisualizeResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/v1/assist/visualize [post]
func VisualizeHandler(svc Assistant, recorder HistoryRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VisualizeRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if !normalizeSubmission(c, req.Code, &req.Language) {
			return
		}

		result, err := svc.Visualize(c.Request.Context(), req.Code, req.Language)
		if err != nil {
			respondUpstreamError(c, err)
			return
		}

		recordHistory(c, recorder, "visualize", result.Language, req.Code, string(result.Graph))

		c.JSON(http.StatusOK, result)
	}
}

// ExplainHandler godoc
// @Summary Explain code
// @Description Returns a beginner-friendly explanation of the submitted code
// @Tags assist
// @Accept json
// @Produce json
// @Success 200 {object} assist.ExplainResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /api/v1/assist/explain [post]
func ExplainHandler(svc Assistant, recorder HistoryRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ExplainRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if !normalizeSubmission(c, req.Code, &req.Language) {
			return
		}

		result, err := svc.Explain(c.Request.Context(), req.Code, req.Language)
		if err != nil {
			respondUpstreamError(c, err)
			return
		}

		recordHistory(c, recorder, "explain", result.Language, req.Code, result.Explanation)

		c.JSON(http.StatusOK, result)
	}
}

// ModelHandler godoc
// @Summary Get the active model
// @Tags assist
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/assist/model [get]
func ModelHandler(svc Assistant) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"model": svc.Model()})
	}
}

// maps delivery failures onto HTTP responses
func respondUpstreamError(c *gin.Context, err error) {
	if stderrors.Is(err, gateway.ErrNotConfigured) {
		errors.UpstreamUnavailable(c, "AI service is not configured", err)
		return
	}

	var upstreamErr *gateway.UpstreamError
	if stderrors.As(err, &upstreamErr) {
		errors.UpstreamUnavailable(c, "AI service unavailable", err)
		return
	}

	errors.InternalError(c, "request failed", err)
}

// saves the operation to history for authenticated users; failures only log
func recordHistory(c *gin.Context, recorder HistoryRecorder, action, language, code, preview string) {
	if recorder == nil {
		return
	}

	userID, exists := auth.GetUserID(c)
	if !exists {
		return
	}

	_, err := recorder.Save(c.Request.Context(), userID, action, language, code, preview)
	if err != nil {
		logger.ErrorErr(err, "failed to record history",
			"user_id", userID,
			"action", action,
		)
	}
}
