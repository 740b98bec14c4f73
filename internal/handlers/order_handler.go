package handlers

import (
	"net/http"

	"tasmeem_backend/internal/middleware"
	"tasmeem_backend/internal/models"
	"tasmeem_backend/internal/services"
	"tasmeem_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

func (h *OrderHandler) RegisterRoutes(api *gin.RouterGroup) {
	orders := api.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", h.Create)
		orders.GET("/my", h.MyOrders)
		orders.GET("/designs", h.MyDesigns)
		orders.GET("/pending", h.Pending)
		orders.GET("/:id", h.Get)
		orders.POST("/:id/accept", h.Accept)
		orders.PATCH("/:id/status", h.UpdateStatus)
		orders.POST("/:id/files", h.UploadFile)
		orders.POST("/:id/deliverables", h.UploadDeliverable)
		orders.POST("/:id/assign", middleware.RequireRoles(models.UserRoleAdmin), h.Assign)
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	order, err := h.orderService.CreateOrder(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	orderID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.orderService.GetOrder(h.GetDB(c), userID, orderID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// MyOrders lists the caller's orders as a client.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.ClientOrders(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// MyDesigns lists the orders assigned to the caller as a designer.
func (h *OrderHandler) MyDesigns(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.DesignerOrders(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) Pending(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	orders, err := h.orderService.PendingForDesigner(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) Accept(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	orderID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.Accept(h.GetDB(c), userID, orderID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	orderID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateStatus(h.GetDB(c), userID, orderID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *OrderHandler) Assign(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	orderID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.AssignDesignerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	order, err := h.orderService.AssignDesigner(h.GetDB(c), userID, orderID, req.DesignerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *OrderHandler) UploadFile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	orderID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UploadFileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	file, err := h.orderService.UploadFile(c.Request.Context(), h.GetDB(c), userID, orderID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"file": file})
}

func (h *OrderHandler) UploadDeliverable(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	orderID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UploadFileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	deliverable, err := h.orderService.UploadDeliverable(c.Request.Context(), h.GetDB(c), userID, orderID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"deliverable": deliverable})
}
