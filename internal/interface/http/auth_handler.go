package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-api-boilerplate/internal/application"
	"github.com/oksasatya/go-api-boilerplate/internal/domain/entity"
	"github.com/oksasatya/go-api-boilerplate/internal/interface/middleware"
	"github.com/oksasatya/go-api-boilerplate/pkg/apperr"
	"github.com/oksasatya/go-api-boilerplate/pkg/response"
	"github.com/oksasatya/go-api-boilerplate/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.Service
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name          string `json:"name" binding:"required,min=2"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,pwd"`
	Role          string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
	AccountStatus string `json:"accountStatus" binding:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED PENDING_VERIFICATION"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperr.Validation("invalid payload", validation.ToFieldErrors(err)))
		return
	}

	out, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Role:          entity.UserRole(req.Role),
		AccountStatus: entity.AccountStatus(req.AccountStatus),
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, out, "user registered", nil)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.AppError(c, apperr.Validation("invalid payload", validation.ToFieldErrors(err)))
		return
	}

	out, err := h.Svc.Login(c.Request.Context(), application.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out, "login successful", nil)
}

// Me GET /api/auth/me (auth required)
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetCurrentUser(c.Request.Context(), uid)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, u, "current user", nil)
}

// renderError maps application errors to the response envelope.
// Anything outside the closed taxonomy (repository I/O failures and
// the like) renders as an opaque 500.
func (h *AuthHandler) renderError(c *gin.Context, err error) {
	if ae := apperr.From(err); ae != nil {
		response.AppError(c, ae)
		return
	}
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("trace_id", c.GetString("trace_id")).Error("internal error")
	}
	response.AppError(c, apperr.Internal("internal server error"))
}
