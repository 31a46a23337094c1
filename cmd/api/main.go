package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	internalaws "github.com/quickchow/go-food-orders/internal/aws"
	"github.com/quickchow/go-food-orders/internal/handlers"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handlers.RequestLogger(cfg.Logger))

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterOrdersRoutes(r, cfg)

	return r
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ordersTable := os.Getenv("ORDERS_TABLE")
	usersTable := os.Getenv("USERS_TABLE")
	if ordersTable == "" || usersTable == "" {
		logger.Fatal("ORDERS_TABLE and USERS_TABLE must be set")
	}

	clients, err := internalaws.Shared(context.Background())
	if err != nil {
		logger.Fatal("failed to init aws clients", zap.Error(err))
	}

	cfg := handlers.HandlerConfig{
		DynamoDBClient:   clients.DynamoDB,
		CloudWatchClient: clients.CloudWatch,
		OrdersTable:      ordersTable,
		UsersTable:       usersTable,
		Logger:           logger,
	}

	r := setupRouter(cfg)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		addr := ":8080"
		logger.Info("running local server", zap.String("addr", addr))
		if err := r.Run(addr); err != nil {
			logger.Fatal("failed to run local server", zap.Error(err))
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
