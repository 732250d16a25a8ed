package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"financas-api/models"
	"financas-api/utils"
)

type SavingsGoalHandler struct {
	DB *sql.DB
}

func (h *SavingsGoalHandler) GetSavingsGoals(c *gin.Context) {
	rows, err := h.DB.QueryContext(c.Request.Context(), `SELECT id, month, goal, saved FROM savings_goals ORDER BY month`)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to fetch savings goals")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer rows.Close()

	goals := []models.SavingsGoal{}
	for rows.Next() {
		var goal models.SavingsGoal
		if err := rows.Scan(&goal.ID, &goal.Month, &goal.Goal, &goal.Saved); err != nil {
			utils.Logger.WithError(err).Error("Failed to scan savings goal")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		goals = append(goals, goal)
	}

	c.JSON(http.StatusOK, goals)
}

func (h *SavingsGoalHandler) CreateSavingsGoal(c *gin.Context) {
	var req models.CreateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !models.IsValidMonth(req.Month) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid month label"})
		return
	}

	goal := models.SavingsGoal{Month: req.Month, Goal: req.Goal, Saved: req.Saved}
	err := h.DB.QueryRowContext(c.Request.Context(), `
		INSERT INTO savings_goals (month, goal, saved)
		VALUES ($1, $2, $3)
		RETURNING id
	`, goal.Month, goal.Goal, goal.Saved).Scan(&goal.ID)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to create savings goal")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, goal)
}

func (h *SavingsGoalHandler) UpdateSavingsGoal(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Month != nil && !models.IsValidMonth(*req.Month) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid month label"})
		return
	}

	var goal models.SavingsGoal
	err := h.DB.QueryRowContext(c.Request.Context(), `
		SELECT id, month, goal, saved FROM savings_goals WHERE id = $1
	`, id).Scan(&goal.ID, &goal.Month, &goal.Goal, &goal.Saved)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"message": "Savings goal not found"})
		return
	}
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to fetch savings goal")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if req.Month != nil {
		goal.Month = *req.Month
	}
	if req.Goal != nil {
		goal.Goal = *req.Goal
	}
	if req.Saved != nil {
		goal.Saved = *req.Saved
	}

	_, err = h.DB.ExecContext(c.Request.Context(), `
		UPDATE savings_goals SET month = $1, goal = $2, saved = $3 WHERE id = $4
	`, goal.Month, goal.Goal, goal.Saved, goal.ID)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to update savings goal")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, goal)
}
