package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/barberbook/barbershop-api/internal/cache"
	"github.com/barberbook/barbershop-api/internal/config"
	"github.com/barberbook/barbershop-api/internal/middleware"
	"github.com/barberbook/barbershop-api/internal/models"
	"github.com/barberbook/barbershop-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	tokens *cache.TokenStore
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, tokens *cache.TokenStore) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, tokens: tokens}
}

// --------- Requests ---------

type RegisterClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Preferences string `json:"preferences"`
}

type RegisterBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	Phone           string `json:"phone"`
	Specialty       string `json:"specialty"`
	ExperienceYears int    `json:"experience_years"`
	Bio             string `json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterClient(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user, ok := h.createUser(c, req.Name, req.Email, req.Password, models.RoleClient)
	if !ok {
		return
	}

	client := models.Client{
		UserID:      user.ID,
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		Preferences: req.Preferences,
	}
	if err := h.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_client"})
		return
	}

	token, err := h.generateToken(user, client.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":   userPayload(user),
		"client": client,
		"token":  token,
	})
}

func (h *AuthHandler) RegisterBarber(c *gin.Context) {
	var req RegisterBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	user, ok := h.createUser(c, req.Name, req.Email, req.Password, models.RoleBarber)
	if !ok {
		return
	}

	barber := models.Barber{
		UserID:          user.ID,
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           user.Email,
		Specialty:       req.Specialty,
		ExperienceYears: req.ExperienceYears,
		Bio:             req.Bio,
	}
	if err := h.db.Create(&barber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_barber"})
		return
	}

	token, err := h.generateToken(user, barber.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":   userPayload(user),
		"barber": barber,
		"token":  token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	profileID, err := h.profileID(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile_not_found"})
		return
	}

	token, err := h.generateToken(&user, profileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

// Logout denylists the current token until its natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, _ := c.Get(middleware.ContextTokenID)
	expUnix, _ := c.Get(middleware.ContextTokenExp)

	tokenID, _ := jti.(string)
	exp, _ := expUnix.(int64)

	if tokenID != "" {
		if err := h.tokens.Revoke(c.Request.Context(), tokenID, time.Unix(exp, 0)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_revoke_token"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Helpers ---------

func (h *AuthHandler) createUser(
	c *gin.Context,
	name, email, password, role string,
) (*models.User, bool) {

	email = strings.ToLower(strings.TrimSpace(email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return nil, false
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_exists"})
		return nil, false
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return nil, false
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return nil, false
	}

	return &user, true
}

func (h *AuthHandler) profileID(user *models.User) (uint, error) {
	switch user.Role {
	case models.RoleBarber:
		var barber models.Barber
		if err := h.db.Where("user_id = ?", user.ID).First(&barber).Error; err != nil {
			return 0, err
		}
		return barber.ID, nil
	default:
		var client models.Client
		if err := h.db.Where("user_id = ?", user.ID).First(&client).Error; err != nil {
			return 0, err
		}
		return client.ID, nil
	}
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User, profileID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"profileId": profileID,
		"role":      user.Role,
		"jti":       uuid.NewString(),
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
