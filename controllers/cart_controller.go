package controllers

import (
	"chopnow/pkg/resp"
	"chopnow/services"
	"chopnow/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	view, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/lines
func (h *CartController) AddLine(c *gin.Context) {
	var req services.AddLineIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := h.Svc.AddLine(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, line)
}

// PATCH /cart/lines/:id
func (h *CartController) UpdateQty(c *gin.Context) {
	var body struct {
		Qty int `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateQty(utils.CurrentUserID(c), c.Param("id"), body.Qty); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"qty": body.Qty})
}

// POST /cart/lines/:id/step — the +/- buttons; decrement clamps at 1
func (h *CartController) StepQty(c *gin.Context) {
	var body struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	qty, err := h.Svc.StepQty(utils.CurrentUserID(c), c.Param("id"), body.Delta)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"qty": qty})
}

// DELETE /cart/lines/:id
func (h *CartController) RemoveLine(c *gin.Context) {
	if err := h.Svc.RemoveLine(utils.CurrentUserID(c), c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
