package snippets

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/codesage/server/codesage/snippets"
	"codeberg.org/codesage/server/internal/auth"
	"codeberg.org/codesage/server/internal/errors"
)

// CreateSnippetHandler creates a new snippet for the authenticated user
func CreateSnippetHandler(snippetRepo *snippets.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "not authenticated")
			return
		}

		var req snippets.CreateSnippetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		snippet, err := snippetRepo.Create(c.Request.Context(), userID, req)
		if err != nil {
			errors.InternalError(c, "failed to create snippet", err)
			return
		}

		c.JSON(http.StatusCreated, snippet)
	}
}

// ListSnippetsHandler lists the authenticated user's snippets,
// optionally filtered by the folder query parameter
func ListSnippetsHandler(snippetRepo *snippets.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "not authenticated")
			return
		}

		folder := c.Query("folder")

		snippetList, err := snippetRepo.List(c.Request.Context(), userID, folder)
		if err != nil {
			errors.InternalError(c, "failed to list snippets", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"snippets": snippetList})
	}
}

// ListFoldersHandler lists the authenticated user's snippet folders
func ListFoldersHandler(snippetRepo *snippets.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "not authenticated")
			return
		}

		folders, err := snippetRepo.ListFolders(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to list folders", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"folders": folders})
	}
}

// GetSnippetHandler gets a single snippet by ID
func GetSnippetHandler(snippetRepo *snippets.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "not authenticated")
			return
		}

		snippetID := c.Param("id")

		snippet, err := snippetRepo.Get(c.Request.Context(), snippetID, userID)
		if err != nil {
			errors.NotFound(c, "snippet")
			return
		}

		c.JSON(http.StatusOK, snippet)
	}
}

// UpdateSnippetHandler updates a snippet
func UpdateSnippetHandler(snippetRepo *snippets.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "not authenticated")
			return
		}

		snippetID := c.Param("id")

		var req snippets.UpdateSnippetRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		snippet, err := snippetRepo.Update(c.Request.Context(), snippetID, userID, req)
		if err != nil {
			errors.NotFound(c, "snippet")
			return
		}

		c.JSON(http.StatusOK, snippet)
	}
}

// DeleteSnippetHandler deletes a snippet
func DeleteSnippetHandler(snippetRepo *snippets.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "not authenticated")
			return
		}

		snippetID := c.Param("id")

		if err := snippetRepo.Delete(c.Request.Context(), snippetID, userID); err != nil {
			errors.NotFound(c, "snippet")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "snippet deleted"})
	}
}
