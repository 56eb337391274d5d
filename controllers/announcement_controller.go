package controllers

import (
	"errors"
	"log"
	"net/http"

	"supplier-backend/services"
	"supplier-backend/utils"

	"github.com/gin-gonic/gin"
)

type AnnouncementController struct {
	Svc *services.AnnouncementService
}

func NewAnnouncementController(svc *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{Svc: svc}
}

// GET /api/announcements (public, active only)
func (ctrl *AnnouncementController) ListActive(c *gin.Context) {
	announcements, err := ctrl.Svc.ListActive()
	if err != nil {
		log.Printf("announcement list failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusOK, announcements)
}

// GET /api/admin/announcements
func (ctrl *AnnouncementController) List(c *gin.Context) {
	announcements, err := ctrl.Svc.List()
	if err != nil {
		log.Printf("announcement list failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusOK, announcements)
}

// POST /api/admin/announcements
func (ctrl *AnnouncementController) Create(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	announcement, err := ctrl.Svc.Create(req.Message)
	if err != nil {
		var invalid *services.ValidationError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, invalid.Message)
			return
		}
		log.Printf("announcement create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// PATCH /api/admin/announcements/:id
func (ctrl *AnnouncementController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	delete(fields, "id")
	delete(fields, "created_at")

	if err := ctrl.Svc.Update(id, fields); err != nil {
		respondServiceError(c, err, "announcement update")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /api/admin/announcements/:id
func (ctrl *AnnouncementController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.Svc.Delete(id); err != nil {
		respondServiceError(c, err, "announcement delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
