package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/codesage/server/internal/auth"
	"codeberg.org/codesage/server/internal/errors"
	"codeberg.org/codesage/server/internal/logger"
)

// RegisterHandler godoc
// @Summary Create a new account
// @Description Registers an account with email and password and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /api/v1/auth/register [post]
func RegisterHandler(userRepo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			errors.BadRequest(c, "invalid password", err)
			return
		}

		user, err := userRepo.Create(c.Request.Context(), req.Email, req.Name, hash)
		if err != nil {
			if errors.IsUniqueViolation(err) {
				errors.Conflict(c, "an account with this email already exists")
				return
			}

			errors.InternalError(c, "failed to create account", err)

			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Email)
		if err != nil {
			errors.InternalError(c, "failed to issue token", err)
			return
		}

		logger.Info("account created", "user_id", user.ID)

		c.JSON(http.StatusCreated, TokenResponse{
			Token: token,
			User:  user,
		})
	}
}

// LoginHandler godoc
// @Summary Log in
// @Description Verifies credentials and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/auth/login [post]
func LoginHandler(userRepo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := userRepo.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			// same response for unknown email and wrong password
			errors.Unauthorized(c, "invalid email or password")
			return
		}

		if !auth.CheckPassword(req.Password, user.PasswordHash) {
			errors.Unauthorized(c, "invalid email or password")
			return
		}

		token, err := auth.GenerateJWT(user.ID, user.Email)
		if err != nil {
			errors.InternalError(c, "failed to issue token", err)
			return
		}

		c.JSON(http.StatusOK, TokenResponse{
			Token: token,
			User:  user,
		})
	}
}

// MeHandler godoc
// @Summary Get the current user
// @Description Returns the account behind the presented token
// @Tags auth
// @Produce json
// @Success 200 {object} users.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [get]
// @Security BearerAuth
func MeHandler(userRepo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "not authenticated")
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.IsNotFound(err) {
				errors.NotFound(c, "user")
				return
			}

			errors.InternalError(c, "failed to load user", err)

			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// UpdateMeHandler godoc
// @Summary Update the current user's profile
// @Description Changes the display name of the account behind the presented token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} users.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/v1/auth/me [put]
// @Security BearerAuth
func UpdateMeHandler(userRepo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "not authenticated")
			return
		}

		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		user, err := userRepo.UpdateProfile(c.Request.Context(), userID, req.Name)
		if err != nil {
			if errors.IsNotFound(err) {
				errors.NotFound(c, "user")
				return
			}

			errors.InternalError(c, "failed to update profile", err)

			return
		}

		c.JSON(http.StatusOK, user)
	}
}
