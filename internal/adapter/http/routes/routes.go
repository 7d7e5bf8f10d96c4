package routes

import (
	"log"
	"net/http"
	"os"

	"pata_amiga/internal/adapter/http/handlers"
	repository2 "pata_amiga/internal/adapter/persistence/repository"
	"pata_amiga/internal/infrastructure/database"
	"pata_amiga/internal/infrastructure/payments"
	"pata_amiga/internal/infrastructure/postal"
	"pata_amiga/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	cartRepo := repository2.NewCartDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	attemptRepo := repository2.NewPaymentAttemptDynamoRepository(ddb)

	accessToken := os.Getenv("MERCADOPAGO_ACCESS_TOKEN")
	gateway, err := payments.NewMercadoPagoGateway(accessToken)
	if err != nil {
		log.Fatalf("Mercado Pago gateway not configured: %v", err)
	}
	tokenizer, err := payments.NewMercadoPagoTokenizer(accessToken)
	if err != nil {
		log.Fatalf("Mercado Pago tokenizer not configured: %v", err)
	}

	cartUseCase := usecase.NewCartUseCase(cartRepo)
	shippingUseCase := usecase.NewShippingUseCase(postal.NewViaCEPClient())
	widget := usecase.NewWidgetAdapter(tokenizer)
	checkoutUseCase := usecase.NewCheckoutUseCase(cartUseCase, orderRepo, attemptRepo, gateway, widget)

	cartHandler := handlers.NewCartHandler(cartUseCase)
	shippingHandler := handlers.NewShippingHandler(shippingUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	orderHandler := handlers.NewOrderHandler(checkoutUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStorefrontRoutes(v1, cartHandler, shippingHandler, checkoutHandler, orderHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
