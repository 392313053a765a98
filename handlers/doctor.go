package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type DoctorHandler struct {
	DoctorSvc doctor.DoctorService
	Logger    *zap.Logger
}

func NewDoctorHandler(svc doctor.DoctorService, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{DoctorSvc: svc, Logger: logger}
}

// GetDoctors handles GET /doctor.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.DoctorSvc.GetAllDoctors(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to fetch doctors")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// AddDoctor handles POST /doctor.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var input models.Doctor
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid doctor", "details": err.Error()})
		return
	}
	input.ID = primitive.NilObjectID

	res, err := h.DoctorSvc.AddDoctor(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err, "failed to add doctor")
		return
	}
	if !res.Success {
		c.JSON(http.StatusOK, gin.H{"success": false, "doctor": res.Existing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": res.Result})
}

// DeleteDoctor handles DELETE /doctor/:email.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	result, err := h.DoctorSvc.DeleteDoctor(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err, "failed to delete doctor")
		return
	}
	c.JSON(http.StatusOK, result)
}
