package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Dadssi/Calendrier-Editoriel/internal/models"
	"github.com/Dadssi/Calendrier-Editoriel/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthHandler(db *gorm.DB, jwtSecret string, ttlSeconds int) *AuthHandler {
	if ttlSeconds <= 0 {
		ttlSeconds = 60 * 60 * 24 * 7
	}
	return &AuthHandler{
		DB:        db,
		JWTSecret: jwtSecret,
		TokenTTL:  time.Duration(ttlSeconds) * time.Second,
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks the admin's credentials and issues a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if !bindJSON(c, &req) {
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || strings.TrimSpace(req.Password) == "" {
		util.Error(c, http.StatusUnprocessableEntity, "Email and password are required")
		return
	}

	var admin models.Admin
	if err := h.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.Error(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			util.ServerError(c)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		util.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	subject := strconv.FormatUint(uint64(admin.ID), 10)
	token, err := util.GenerateToken(h.JWTSecret, subject, h.TokenTTL)
	if err != nil {
		util.ServerError(c)
		return
	}

	util.JSON(c, http.StatusOK, gin.H{"token": token})
}
