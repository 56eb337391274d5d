package controllers

import (
	"log"
	"net/http"

	"supplier-backend/services"
	"supplier-backend/utils"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	Svc *services.HistoryService
}

func NewHistoryController(svc *services.HistoryService) *HistoryController {
	return &HistoryController{Svc: svc}
}

// GET /api/admin/history
func (ctrl *HistoryController) List(c *gin.Context) {
	entries, err := ctrl.Svc.List()
	if err != nil {
		log.Printf("history list failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DELETE /api/admin/history/:id
func (ctrl *HistoryController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.Svc.Delete(id); err != nil {
		respondServiceError(c, err, "history delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
