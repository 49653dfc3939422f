package handlers

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fitmarket/trainer-booking/internal/images"
	"github.com/fitmarket/trainer-booking/internal/middleware"
	"github.com/fitmarket/trainer-booking/internal/models"
	"github.com/fitmarket/trainer-booking/internal/validators"
)

// AvatarUploader stores a processed avatar and returns its public URL.
type AvatarUploader interface {
	UploadProfileImage(ctx context.Context, data []byte) (string, error)
}

type MeHandler struct {
	db      *gorm.DB
	uploads AvatarUploader
}

func NewMeHandler(db *gorm.DB, uploads AvatarUploader) *MeHandler {
	return &MeHandler{db: db, uploads: uploads}
}

// --------- Requests ---------

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	// ProfileImage is a base64-encoded PNG or JPEG.
	ProfileImage *string `json:"profile_image,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// --------- Handlers ---------

func (h *MeHandler) GetProfile(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)
	c.JSON(http.StatusOK, user)
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_birth_date"})
			return
		}
		user.BirthDate = &birthDate
	}

	if req.ProfileImage != nil && *req.ProfileImage != "" {
		raw, err := base64.StdEncoding.DecodeString(*req.ProfileImage)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_image_encoding"})
			return
		}

		processed, err := images.ProcessAvatar(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_image"})
			return
		}

		url, err := h.uploads.UploadProfileImage(c.Request.Context(), processed)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_upload_image"})
			return
		}
		user.ProfileImageURL = url
	}

	if err := h.db.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *MeHandler) ChangePassword(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wrong_current_password"})
		return
	}

	if !validators.IsStrongPassword(req.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weak_password"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user.PasswordHash = string(hashed)
	if err := h.db.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password_updated"})
}

func (h *MeHandler) DeleteAccount(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(*models.User)

	if err := h.db.Delete(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "account_deleted"})
}
