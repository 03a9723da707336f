package history

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"codeberg.org/codesage/server/codesage/history"
	"codeberg.org/codesage/server/internal/auth"
	"codeberg.org/codesage/server/internal/errors"
)

// ListHandler godoc
// @Summary List analysis history
// @Description Returns the authenticated user's history entries, newest first
// @Tags history
// @Produce json
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/history [get]
// @Security BearerAuth
func ListHandler(historyRepo *history.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "not authenticated")
			return
		}

		limit := 0
		if raw, ok := c.GetQuery("limit"); ok {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				errors.BadRequest(c, "limit must be an integer", err)
				return
			}

			limit = parsed
		}

		entries, err := historyRepo.List(c.Request.Context(), userID, limit)
		if err != nil {
			errors.InternalError(c, "failed to list history", err)
			return
		}

		c.JSON(http.StatusOK, ListResponse{Entries: entries})
	}
}

// DeleteHandler godoc
// @Summary Delete a history entry
// @Tags history
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/history/{id} [delete]
// @Security BearerAuth
func DeleteHandler(historyRepo *history.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "not authenticated")
			return
		}

		entryID := c.Param("id")

		if err := historyRepo.Delete(c.Request.Context(), entryID, userID); err != nil {
			errors.NotFound(c, "history entry")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "history entry deleted"})
	}
}

// ClearHandler godoc
// @Summary Clear analysis history
// @Description Deletes all of the authenticated user's history entries
// @Tags history
// @Produce json
// @Success 200 {object} ClearResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/history [delete]
// @Security BearerAuth
func ClearHandler(historyRepo *history.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "not authenticated")
			return
		}

		deleted, err := historyRepo.Clear(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to clear history", err)
			return
		}

		c.JSON(http.StatusOK, ClearResponse{Deleted: deleted})
	}
}
