package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"supplier-backend/services"
	"supplier-backend/utils"

	"github.com/gin-gonic/gin"
)

type SupplierController struct {
	Svc *services.SupplierService
}

func NewSupplierController(svc *services.SupplierService) *SupplierController {
	return &SupplierController{Svc: svc}
}

// ----------------------------------------------------
// 1. Public search (GET /api/search?q=)
// ----------------------------------------------------

func (ctrl *SupplierController) Search(c *gin.Context) {
	results, err := ctrl.Svc.Search(c.Query("q"))
	if err != nil {
		log.Printf("supplier search failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusOK, results)
}

// ----------------------------------------------------
// 2. List suppliers (GET /api/admin/suppliers)
// ----------------------------------------------------

func (ctrl *SupplierController) List(c *gin.Context) {
	suppliers, err := ctrl.Svc.List()
	if err != nil {
		log.Printf("supplier list failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

// ----------------------------------------------------
// 3. Create supplier (POST /api/admin/suppliers)
// ----------------------------------------------------

func (ctrl *SupplierController) Create(c *gin.Context) {
	var req struct {
		Name        string  `json:"name"`
		Product     string  `json:"product"`
		Note        string  `json:"note"`
		EstDelivery *string `json:"est_delivery"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	supplier, err := ctrl.Svc.Create(req.Name, req.Product, req.Note, req.EstDelivery)
	if err != nil {
		var invalid *services.ValidationError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, invalid.Message)
			return
		}
		log.Printf("supplier create failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "database error")
		return
	}

	c.JSON(http.StatusCreated, supplier)
}

// ----------------------------------------------------
// 4. Update supplier (PATCH /api/admin/suppliers/:id)
// ----------------------------------------------------

func (ctrl *SupplierController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	// never writable, whatever the client sends
	delete(fields, "id")
	delete(fields, "added_at")

	if err := ctrl.Svc.Update(id, fields); err != nil {
		respondServiceError(c, err, "supplier update")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ----------------------------------------------------
// 5. Mark delivered (DELETE /api/admin/suppliers/:id)
// ----------------------------------------------------

func (ctrl *SupplierController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.Svc.Delete(id); err != nil {
		respondServiceError(c, err, "supplier delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// parseID reads the :id route param. A non-numeric id can't exist, so it is
// reported the same way as a missing one.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "not found")
		return 0, false
	}
	return uint(id), true
}

func respondServiceError(c *gin.Context, err error, op string) {
	if errors.Is(err, services.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "not found")
		return
	}
	var invalid *services.ValidationError
	if errors.As(err, &invalid) {
		utils.JSONError(c, http.StatusBadRequest, invalid.Message)
		return
	}
	log.Printf("%s failed: %v", op, err)
	utils.JSONError(c, http.StatusInternalServerError, "database error")
}
