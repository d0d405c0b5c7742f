package controllers

import (
	"strconv"

	"chopnow/pkg/resp"
	"chopnow/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /menu — dishes grouped by category
func (h *MenuController) List(c *gin.Context) {
	cats, err := h.Svc.ListByCategory()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /menu/:id — dish detail with addon catalog
func (h *MenuController) Detail(c *gin.Context) {
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
	resp.OK(c, dish)
}

// GET /packaging
func (h *MenuController) Packaging(c *gin.Context) {
	packs, err := h.Svc.ListPackaging()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, packs)
}

// GET /locations
func (h *MenuController) Locations(c *gin.Context) {
	locs, err := h.Svc.ListLocations()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, locs)
}
