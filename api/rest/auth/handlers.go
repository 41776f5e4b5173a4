package auth

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"codeberg.org/metawork/server/internal/auth"
	apierrors "codeberg.org/metawork/server/internal/errors"
	"codeberg.org/metawork/server/internal/logger"
	"codeberg.org/metawork/server/metawork/users"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
)

const minPasswordLength = 6

// RegisterHandler godoc
// @Summary Register a new account
// @Description Create a local account with email and password. Returns the user and a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} AuthResponse
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/auth/register [post]
func RegisterHandler(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "invalid request body", err)
			return
		}

		name := strings.TrimSpace(req.Name)
		email := normalizeEmail(req.Email)

		// all validation happens before the store is touched
		if name == "" || email == "" || req.Password == "" {
			apierrors.ValidationError(c, "name, email and password are required")
			return
		}

		if len(req.Password) < minPasswordLength {
			apierrors.ValidationError(c, "password must be at least 6 characters")
			return
		}

		user, err := store.Create(c.Request.Context(), name, email, req.Password)
		if err != nil {
			if errors.Is(err, users.ErrDuplicateEmail) {
				apierrors.DuplicateEmail(c)
				return
			}

			apierrors.InternalError(c, "failed to create account", err)
			return
		}

		token, err := auth.GenerateJWT(user.ID)
		if err != nil {
			apierrors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusCreated, AuthResponse{
			Token: token,
			User:  user,
		})
	}
}

// LoginHandler godoc
// @Summary Log in with email and password
// @Description Verify credentials and return the user and a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 400 {object} apierrors.ErrorResponse
// @Failure 500 {object} apierrors.ErrorResponse
// @Router /api/auth/login [post]
func LoginHandler(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "invalid request body", err)
			return
		}

		email := normalizeEmail(req.Email)

		if email == "" || req.Password == "" {
			apierrors.ValidationError(c, "email and password are required")
			return
		}

		user, err := store.FindByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				// same response as a wrong password so the endpoint cannot
				// be used to probe which emails are registered
				apierrors.InvalidCredentials(c)
				return
			}

			apierrors.InternalError(c, "failed to look up account", err)
			return
		}

		if user.PasswordHash == "" {
			apierrors.WrongAuthMethod(c)
			return
		}

		if !user.VerifyPassword(req.Password) {
			apierrors.InvalidCredentials(c)
			return
		}

		token, err := auth.GenerateJWT(user.ID)
		if err != nil {
			apierrors.InternalError(c, "failed to generate token", err)
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Token: token,
			User:  user,
		})
	}
}

// BeginGoogleHandler godoc
// @Summary Start Google OAuth
// @Description Redirect the user agent to Google's consent screen.
// @Tags auth
// @Success 302 {string} string "Redirect to Google"
// @Router /api/auth/google [get]
func BeginGoogleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// set provider in query for gothic
		q := c.Request.URL.Query()
		q.Add("provider", "google")
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// CallbackHandler godoc
// @Summary Google OAuth callback
// @Description Complete the OAuth flow, upsert the user by Google ID and
// @Description redirect to the client with the token in the query string.
// @Tags auth
// @Success 302 {string} string "Redirect to client success or error route"
// @Router /api/auth/google/callback [get]
func CallbackHandler(store UserStore, clientURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Request.URL.Query()
		q.Add("provider", "google")
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			logger.ErrorErr(err, "google oauth callback failed")
			c.Redirect(http.StatusFound, clientURL+"/auth/error")
			return
		}

		user, err := store.FindOrCreateByGoogleID(
			c.Request.Context(),
			gothUser.UserID,
			normalizeEmail(gothUser.Email),
			gothUser.Name,
			gothUser.AvatarURL,
		)

		if err != nil {
			logger.ErrorErr(err, "failed to upsert oauth user")
			c.Redirect(http.StatusFound, clientURL+"/auth/error")
			return
		}

		token, err := auth.GenerateJWT(user.ID)
		if err != nil {
			logger.ErrorErr(err, "failed to generate token for oauth user")
			c.Redirect(http.StatusFound, clientURL+"/auth/error")
			return
		}

		// the token travels in the redirect URL, matching the client's
		// /auth/success route. See DESIGN.md for the trade-off.
		c.Redirect(http.StatusFound, clientURL+"/auth/success?token="+url.QueryEscape(token))
	}
}

// GetCurrentUserHandler godoc
// @Summary Get current user
// @Description Resolve the bearer token to the authenticated user's profile.
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} apierrors.ErrorResponse
// @Router /api/auth/me [get]
// @Security BearerAuth
func GetCurrentUserHandler(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)

		if !exists {
			apierrors.Unauthorized(c, "")
			return
		}

		user, err := store.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				// a valid token for a vanished account is still unauthorized
				apierrors.Unauthorized(c, "")
				return
			}

			apierrors.InternalError(c, "failed to load user", err)
			return
		}

		c.JSON(http.StatusOK, UserResponse{User: user})
	}
}

// LogoutHandler godoc
// @Summary Logout
// @Description Acknowledge logout. Tokens are stateless, so the client
// @Description discards its copy; the server only clears the OAuth cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/auth/logout [post]
func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gothic.Logout(c.Writer, c.Request); err != nil {
			logger.ErrorErr(err, "failed to clear gothic session")
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "logged out successfully"})
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
