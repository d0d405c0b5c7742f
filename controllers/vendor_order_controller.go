package controllers

import (
	"strconv"

	"chopnow/pkg/resp"
	"chopnow/services"

	"github.com/gin-gonic/gin"
)

// VendorOrderController is the vendor app's order queue and transition
// surface. Role enforcement happens in the route group.
type VendorOrderController struct{ Svc *services.OrderService }

func NewVendorOrderController(s *services.OrderService) *VendorOrderController {
	return &VendorOrderController{Svc: s}
}

// GET /vendor/orders?status=&page=&limit=
func (h *VendorOrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	var statusID *uint
	if s := c.Query("status"); s != "" {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			resp.BadRequest(c, "invalid status filter")
			return
		}
		id := uint(v)
		statusID = &id
	}

	out, err := h.Svc.ListForVendor(statusID, page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /vendor/orders/:id
func (h *VendorOrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	out, err := h.Svc.DetailForVendor(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /vendor/orders/:id/accept
func (h *VendorOrderController) Accept(c *gin.Context) {
	h.transition(c, h.Svc.VendorAccept)
}

// PATCH /vendor/orders/:id/ready
func (h *VendorOrderController) Ready(c *gin.Context) {
	h.transition(c, h.Svc.VendorReady)
}

// PATCH /vendor/orders/:id/complete
func (h *VendorOrderController) Complete(c *gin.Context) {
	h.transition(c, h.Svc.VendorComplete)
}

// PATCH /vendor/orders/:id/cancel
func (h *VendorOrderController) Cancel(c *gin.Context) {
	h.transition(c, h.Svc.VendorCancel)
}

func (h *VendorOrderController) transition(c *gin.Context, fn func(uint) error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	if err := fn(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}
