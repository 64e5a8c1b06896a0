package Controllers

import (
	"errors"
	"net/http"
	"strconv"

	"MediTrack/Logger"
	"MediTrack/Middleware"
	"MediTrack/Models"

	"github.com/gin-gonic/gin"
)

type PatientInput struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	DateOfBirth    string `json:"date_of_birth" binding:"required"`
	Gender         string `json:"gender" binding:"required"`
	Address        string `json:"address" binding:"required"`
	PhoneNumber    string `json:"phone_number" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	MedicalHistory string `json:"medical_history"`
}

func (input PatientInput) toModel() Models.Patient {
	return Models.Patient{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		DateOfBirth:    input.DateOfBirth,
		Gender:         input.Gender,
		Address:        input.Address,
		PhoneNumber:    input.PhoneNumber,
		Email:          input.Email,
		MedicalHistory: input.MedicalHistory,
	}
}

func patientID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid patient id"})
		return 0, false
	}
	return uint(id), true
}

func CreatePatient(c *gin.Context) {
	var input PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	patient := input.toModel()
	if err := Models.CreatePatient(&patient); err != nil {
		switch {
		case errors.Is(err, Models.ErrDuplicateEmail), errors.Is(err, Models.ErrConstraint):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			Logger.Error("create patient failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// GetPatient serves a single record to admins and to accounts assigned to
// that patient; everyone else gets 403 without learning whether the record
// exists.
func GetPatient(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}

	user, ok := Middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}

	if user.Role != Models.RoleAdmin {
		assigned, err := Models.IsAssigned(user.ID, id)
		if err != nil {
			Logger.Error("assignment lookup failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if !assigned {
			c.JSON(http.StatusForbidden, gin.H{"error": "not assigned to this patient"})
			return
		}
	}

	patient, err := Models.GetPatient(id)
	if err != nil {
		if errors.Is(err, Models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		Logger.Error("get patient failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, patient)
}

func FetchPatients(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "skip must be a non-negative integer"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "limit must be a non-negative integer"})
		return
	}

	patients, err := Models.FetchPatients(skip, limit)
	if err != nil {
		Logger.Error("fetch patients failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, patients)
}

func UpdatePatient(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}

	var input PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	patient, err := Models.UpdatePatient(id, input.toModel())
	if err != nil {
		switch {
		case errors.Is(err, Models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		case errors.Is(err, Models.ErrDuplicateEmail), errors.Is(err, Models.ErrConstraint):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			Logger.Error("update patient failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, patient)
}

func DeletePatient(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}

	if err := Models.DeletePatient(id); err != nil {
		if errors.Is(err, Models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		Logger.Error("delete patient failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

type AssignmentInput struct {
	UserID uint `json:"user_id" binding:"required"`
}

func AssignPatient(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}

	var input AssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := Models.AssignUser(id, input.UserID); err != nil {
		if errors.Is(err, Models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient or user not found"})
			return
		}
		Logger.Error("assign patient failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "assigned"})
}

func UnassignPatient(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}

	var input AssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := Models.UnassignUser(id, input.UserID); err != nil {
		if errors.Is(err, Models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient or user not found"})
			return
		}
		Logger.Error("unassign patient failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unassigned"})
}
