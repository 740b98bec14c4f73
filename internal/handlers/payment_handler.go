package handlers

import (
	"net/http"

	"tasmeem_backend/internal/middleware"
	"tasmeem_backend/internal/services"
	"tasmeem_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// PaymentHandler manages saved cards for the mock checkout flow.
type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(api *gin.RouterGroup) {
	methods := api.Group("/payment-methods")
	methods.Use(middleware.AuthMiddleware())
	{
		methods.GET("", h.List)
		methods.POST("", h.Add)
		methods.PATCH("/:id", h.Update)
		methods.DELETE("/:id", h.Delete)
	}
}

func (h *PaymentHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	methods, err := h.paymentService.ListMethods(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_methods": methods})
}

func (h *PaymentHandler) Add(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddPaymentMethodRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	method, err := h.paymentService.AddMethod(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payment_method": method})
}

func (h *PaymentHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	methodID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePaymentMethodRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	method, err := h.paymentService.SetDefault(h.GetDB(c), userID, methodID, req.IsDefault)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_method": method})
}

func (h *PaymentHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	methodID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	if err := h.paymentService.DeleteMethod(h.GetDB(c), userID, methodID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
