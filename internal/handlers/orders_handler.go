package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	internalaws "github.com/quickchow/go-food-orders/internal/aws"
	"github.com/quickchow/go-food-orders/internal/orders"
	"github.com/quickchow/go-food-orders/internal/users"
	"github.com/quickchow/go-food-orders/internal/validation"
)

// MetricsNamespace is the CloudWatch namespace the API emits counters under.
const MetricsNamespace = "FoodOrders"

// Store failures surface these generic bodies; the real error is logged
// server-side and never leaks to the client.
const (
	msgCreateFailed = "Unable to create order. Please try again."
	msgListFailed   = "Unable to load orders. Please try again."
	msgUpdateFailed = "Unable to update order. Please try again."
)

// HandlerConfig groups dependencies for the orders handler.
type HandlerConfig struct {
	DynamoDBClient   internalaws.DynamoDBAPI
	CloudWatchClient internalaws.CloudWatchAPI
	OrdersTable      string
	UsersTable       string
	Logger           *zap.Logger
}

// RegisterOrdersRoutes registers routes for the order API.
func RegisterOrdersRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()
	ordersStore := orders.NewStore(cfg.DynamoDBClient, cfg.OrdersTable)
	usersStore := users.NewStore(cfg.DynamoDBClient, cfg.UsersTable)
	metrics := internalaws.NewMetricsEmitter(cfg.CloudWatchClient, MetricsNamespace)

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r.POST("/order-submission", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.SubmitOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		payload, err := orders.Normalize(&req)
		if err != nil {
			// the bound request passed validation, so this only trips on
			// inputs the validator cannot see; still a client error
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		// Refresh the customer directory first so every order has a matching
		// user record, then persist the order itself.
		if _, err := usersStore.Upsert(ctx, payload.FullName, payload.Phone); err != nil {
			logger.Error("failed to upsert user",
				zap.String("phone", payload.Phone),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": msgCreateFailed})
			return
		}

		order, err := ordersStore.Create(ctx, payload)
		if err != nil {
			logger.Error("failed to create order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": msgCreateFailed})
			return
		}

		if err := metrics.Count(ctx, internalaws.MetricOrderSubmitted, 1); err != nil {
			logger.Warn("metric emission failed", zap.Error(err))
		}

		c.JSON(http.StatusCreated, gin.H{"order": order})
	})

	r.GET("/orders", func(c *gin.Context) {
		ctx := c.Request.Context()

		list, err := ordersStore.ListAll(ctx)
		if err != nil {
			logger.Error("failed to list orders", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": msgListFailed})
			return
		}

		c.JSON(http.StatusOK, gin.H{"orders": list})
	})

	r.PATCH("/orders/:id", func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("id")

		var req validation.UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No valid fields provided"})
			return
		}

		order, err := ordersStore.UpdatePaymentConfirmed(ctx, id, &req)
		switch {
		case errors.Is(err, orders.ErrNoRecognizedFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "No valid fields provided"})
			return
		case errors.Is(err, orders.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		case err != nil:
			logger.Error("failed to update order",
				zap.String("order_id", id),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": msgUpdateFailed})
			return
		}

		if order.PaymentConfirmed {
			if err := metrics.Count(ctx, internalaws.MetricPaymentConfirmed, 1); err != nil {
				logger.Warn("metric emission failed", zap.Error(err))
			}
		}

		c.JSON(http.StatusOK, gin.H{"order": order})
	})
}
