// File: /controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pulsenet-api/config"
	"pulsenet-api/models"
	"pulsenet-api/services"
	"pulsenet-api/utils"
)

type AuthController struct {
	db           *gorm.DB
	cfg          *config.Config
	emailService *services.EmailService
}

func NewAuthController(db *gorm.DB, cfg *config.Config, emailService *services.EmailService) *AuthController {
	return &AuthController{db: db, cfg: cfg, emailService: emailService}
}

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	var existing models.Account
	err := ac.db.Where("login = ?", req.Login).First(&existing).Error
	if err == nil {
		utils.SendError(c, http.StatusConflict, "Login already taken")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	account := models.Account{
		Login:        req.Login,
		PasswordHash: string(hash),
		Email:        req.Email,
	}
	if err := ac.db.Create(&account).Error; err != nil {
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	if ac.emailService != nil && account.Email != "" {
		go ac.emailService.SendWelcomeEmail(account.Email, account.Login)
	}

	token, err := ac.issueToken(account.ID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":   token,
		"user_id": account.ID,
		"login":   account.Login,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	var account models.Account
	if err := ac.db.Where("login = ?", req.Login).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondError(c, &services.StoreError{Err: err})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := ac.issueToken(account.ID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"user_id": account.ID,
		"login":   account.Login,
	})
}

// issueToken signs a week-long HS256 token. The user_id claim is a
// string so numeric precision survives JSON round-trips.
func (ac *AuthController) issueToken(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id": strconv.FormatInt(userID, 10),
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.cfg.JWTSecret))
}
