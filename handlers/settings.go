package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"financas-api/models"
	"financas-api/utils"
)

type SettingsHandler struct {
	DB *sql.DB
}

// GetSetting returns the blob stored under a key, 404 when absent.
func (h *SettingsHandler) GetSetting(c *gin.Context) {
	key := c.Param("key")

	var setting models.Setting
	var value []byte
	err := h.DB.QueryRowContext(c.Request.Context(), `
		SELECT id, key, value FROM settings WHERE key = $1
	`, key).Scan(&setting.ID, &setting.Key, &value)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to fetch setting")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	setting.Value = json.RawMessage(value)

	c.JSON(http.StatusOK, setting)
}

// UpsertSetting stores an arbitrary JSON payload under a key. Callers own the
// shape of the value; nothing is validated beyond it being JSON.
func (h *SettingsHandler) UpsertSetting(c *gin.Context) {
	key := c.Param("key")

	var req models.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	setting := models.Setting{Key: key, Value: req.Value}
	err := h.DB.QueryRowContext(c.Request.Context(), `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		RETURNING id
	`, key, []byte(req.Value)).Scan(&setting.ID)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to upsert setting")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, setting)
}
