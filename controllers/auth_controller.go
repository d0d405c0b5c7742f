package controllers

import (
	"chopnow/pkg/resp"
	"chopnow/services"
	"chopnow/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=6"`
		Username    string `json:"username" binding:"required"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Register(req.Email, req.Password, req.Username, req.PhoneNumber)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, user)
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	user, err := h.Svc.Profile(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /auth/me
func (h *AuthController) UpdateMe(c *gin.Context) {
	var req struct {
		Username    string `json:"username"`
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Username != "" {
		updates["username"] = req.Username
	}
	if req.PhoneNumber != "" {
		updates["phone_number"] = req.PhoneNumber
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	user, err := h.Svc.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}
