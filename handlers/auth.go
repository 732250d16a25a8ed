package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"financas-api/models"
	"financas-api/utils"
)

const refreshTokenTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	DB *sql.DB
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var exists bool
	err := h.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", req.Username).Scan(&exists)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to check username")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"message": "Username already registered"})
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	user := models.User{Username: req.Username, CreatedAt: time.Now()}
	err = h.DB.QueryRow(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, req.Username, passwordHash).Scan(&user.ID)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to create user")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	h.respondWithTokens(c, http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	err := h.DB.QueryRow(`
		SELECT id, username, password_hash, created_at FROM users WHERE username = $1
	`, req.Username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows || (err == nil && !utils.CheckPasswordHash(req.Password, user.PasswordHash)) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to fetch user")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	h.respondWithTokens(c, http.StatusOK, user)
}

// Refresh rotates a refresh token and mints a new access token.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	err := h.DB.QueryRow(`
		SELECT u.id, u.username, u.created_at
		FROM sessions s
		INNER JOIN users u ON s.user_id = u.id
		WHERE s.refresh_token = $1 AND s.expires_at > NOW()
	`, req.RefreshToken).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired refresh token"})
		return
	}
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to look up session")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if _, err := h.DB.Exec(`DELETE FROM sessions WHERE refresh_token = $1`, req.RefreshToken); err != nil {
		utils.Logger.WithError(err).Error("Failed to rotate session")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	h.respondWithTokens(c, http.StatusOK, user)
}

func (h *AuthHandler) respondWithTokens(c *gin.Context, status int, user models.User) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to generate access token")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if _, err := h.DB.Exec(`
		INSERT INTO sessions (user_id, refresh_token, expires_at)
		VALUES ($1, $2, $3)
	`, user.ID, refreshToken, time.Now().Add(refreshTokenTTL)); err != nil {
		utils.Logger.WithError(err).Error("Failed to create session")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(status, models.AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
