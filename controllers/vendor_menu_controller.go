package controllers

import (
	"strconv"

	"chopnow/entity"
	"chopnow/pkg/resp"
	"chopnow/services"

	"github.com/gin-gonic/gin"
)

type VendorMenuController struct{ Svc *services.MenuService }

func NewVendorMenuController(s *services.MenuService) *VendorMenuController {
	return &VendorMenuController{Svc: s}
}

// GET /vendor/menu
func (h *VendorMenuController) List(c *gin.Context) {
	dishes, err := h.Svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dishes)
}

// POST /vendor/menu
func (h *VendorMenuController) Create(c *gin.Context) {
	var req struct {
		DishName       string `json:"dishName" binding:"required"`
		Detail         string `json:"detail"`
		Price          int64  `json:"price" binding:"required,min=0"`
		Picture        string `json:"picture"`
		DishCategoryID uint   `json:"dishCategoryId" binding:"required"`
		Addons         []struct {
			AddonName string `json:"addonName" binding:"required"`
			Price     int64  `json:"price" binding:"min=0"`
		} `json:"addons"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish := entity.Dish{
		DishName:       req.DishName,
		Detail:         req.Detail,
		Price:          req.Price,
		Picture:        req.Picture,
		Available:      true,
		DishCategoryID: req.DishCategoryID,
	}
	for _, a := range req.Addons {
		dish.Addons = append(dish.Addons, entity.Addon{
			AddonName:   a.AddonName,
			Price:       a.Price,
			IsAvailable: true,
		})
	}

	if err := h.Svc.CreateDish(&dish); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, dish)
}

// PATCH /vendor/menu/:id
func (h *VendorMenuController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	dish, err := h.Svc.DishDetail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}

	var req struct {
		DishName string `json:"dishName"`
		Detail   string `json:"detail"`
		Price    *int64 `json:"price"`
		Picture  string `json:"picture"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.DishName != "" {
		dish.DishName = req.DishName
	}
	if req.Detail != "" {
		dish.Detail = req.Detail
	}
	if req.Price != nil {
		dish.Price = *req.Price
	}
	if req.Picture != "" {
		dish.Picture = req.Picture
	}

	if err := h.Svc.UpdateDish(dish); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dish)
}

// PATCH /vendor/menu/:id/availability
func (h *VendorMenuController) SetAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	var body struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.SetAvailability(uint(id), *body.Available); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"available": *body.Available})
}
