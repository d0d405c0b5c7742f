package controllers

import (
	"strconv"

	"chopnow/pkg/resp"
	"chopnow/services"
	"chopnow/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders — checkout the whole cart
func (h *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := h.Svc.Checkout(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, res)
}

// POST /orders/line/:lineId — submit a single cart line
func (h *OrderController) SubmitLine(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := h.Svc.SubmitLine(utils.CurrentUserID(c), c.Param("lineId"), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, res)
}

// GET /orders?limit= — order history, most recent first
func (h *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, err := h.Svc.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	detail, err := h.Svc.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	if err := h.Svc.CustomerCancel(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cancelled": true})
}
