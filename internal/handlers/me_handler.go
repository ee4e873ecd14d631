package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/middleware"
	"github.com/barberbook/barbershop-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := currentUserID(c)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	payload := gin.H{"user": userPayload(&user)}

	role, _ := c.Get(middleware.ContextUserRole)
	switch role {
	case models.RoleBarber:
		var barber models.Barber
		if err := h.db.Where("user_id = ?", userID).First(&barber).Error; err == nil {
			payload["barber"] = barber
		}
	case models.RoleClient:
		var client models.Client
		if err := h.db.Where("user_id = ?", userID).First(&client).Error; err == nil {
			payload["client"] = client
		}
	}

	c.JSON(http.StatusOK, payload)
}

type ProfileUpdateRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Specialty       string `json:"specialty"`
	ExperienceYears *int   `json:"experience_years"`
	Bio             string `json:"bio"`
	Address         string `json:"address"`
	Preferences     string `json:"preferences"`
	IsAvailable     *bool  `json:"is_available"`
}

// UpdateMe edits the caller's profile, barber or client.
func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := currentUserID(c)

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	role, _ := c.Get(middleware.ContextUserRole)
	switch role {
	case models.RoleBarber:
		var barber models.Barber
		if err := h.db.Where("user_id = ?", userID).First(&barber).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile_not_found"})
			return
		}
		if req.Name != "" {
			barber.Name = req.Name
		}
		if req.Phone != "" {
			barber.Phone = req.Phone
		}
		if req.Specialty != "" {
			barber.Specialty = req.Specialty
		}
		if req.ExperienceYears != nil {
			barber.ExperienceYears = *req.ExperienceYears
		}
		if req.Bio != "" {
			barber.Bio = req.Bio
		}
		if req.IsAvailable != nil {
			barber.IsAvailable = *req.IsAvailable
		}
		if err := h.db.Save(&barber).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_profile"})
			return
		}
		c.JSON(http.StatusOK, barber)

	default:
		var client models.Client
		if err := h.db.Where("user_id = ?", userID).First(&client).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile_not_found"})
			return
		}
		if req.Name != "" {
			client.Name = req.Name
		}
		if req.Phone != "" {
			client.Phone = req.Phone
		}
		if req.Address != "" {
			client.Address = req.Address
		}
		if req.Preferences != "" {
			client.Preferences = req.Preferences
		}
		if err := h.db.Save(&client).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_profile"})
			return
		}
		c.JSON(http.StatusOK, client)
	}
}
