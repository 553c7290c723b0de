package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"staybook-backend/middleware"
	"staybook-backend/models"
	"staybook-backend/utils"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	JWT *utils.JWTService
}

func NewAuthController(db *gorm.DB, jwtSvc *utils.JWTService) *AuthController {
	return &AuthController{DB: db, JWT: jwtSvc}
}

type registerPayload struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPayload struct {
	Email string `json:"email"`
}

func generateTokenHex(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func isDuplicateEntryError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "duplicate") || strings.Contains(lower, "unique")
}

func userResponse(u models.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"full_name": u.FullName,
		"email":     u.Email,
	}
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "full_name, email and password (min 6 chars) are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "failed to hash password")
		return
	}

	user := models.User{
		FullName: strings.TrimSpace(payload.FullName),
		Email:    strings.ToLower(strings.TrimSpace(payload.Email)),
		Password: string(hash),
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		if isDuplicateEntryError(err) {
			utils.JSONError(c, http.StatusConflict, "error.emailTaken", "An account with this email already exists.")
			return
		}
		log.Printf("Register error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "failed to create account")
		return
	}

	token, err := ctrl.JWT.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "failed to generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": userResponse(user)})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "invalid payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "email and password required")
		return
	}

	var user models.User
	if err := ctrl.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "error.invalidCredentials", "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "error.invalidCredentials", "invalid credentials")
		return
	}

	token, err := ctrl.JWT.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userResponse(user)})
}

func (ctrl *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "error.notAuthenticated", "Please sign in to continue.")
		return
	}

	var user models.User
	if err := ctrl.DB.First(&user, userID).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "error.userNotFound", "account no longer exists")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}

// ForgotPassword always answers 200 so the endpoint cannot be used to
// probe which emails are registered.
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var payload forgotPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "invalid payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "email required")
		return
	}

	var user models.User
	if err := ctrl.DB.Where("email = ?", email).First(&user).Error; err == nil {
		token, err := generateTokenHex(24)
		if err == nil {
			expiry := time.Now().Add(1 * time.Hour)
			ctrl.DB.Model(&user).Updates(map[string]any{
				"reset_token":         token,
				"reset_token_expires": expiry,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "If this email exists, a reset link was sent."})
}
