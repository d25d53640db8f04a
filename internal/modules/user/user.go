package user

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/havenridge/leasing/internal/models"
	"github.com/havenridge/leasing/internal/pkg/response"
	"github.com/havenridge/leasing/internal/pkg/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errDuplicateUsername = errors.New("username already exists")

type SignupDTO struct {
	Username string `json:"username" binding:"required,min=3,max=191"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

type userResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Signup stores a new user with a bcrypt password hash.
func (s *Service) Signup(dto *SignupDTO) (*models.UserModel, error) {
	username := strings.TrimSpace(dto.Username)

	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := models.UserModel{Username: username, Password: string(hash)}
	if err := s.db.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errDuplicateUsername
		}
		return nil, err
	}
	return &u, nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.signup)
}

// POST /signup
func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.ValidationFailed(c, validation.FromBindError(err))
		return
	}
	u, err := h.svc.Signup(&dto)
	if err != nil {
		if errors.Is(err, errDuplicateUsername) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, userResponse{ID: u.ID, Username: u.Username})
}
