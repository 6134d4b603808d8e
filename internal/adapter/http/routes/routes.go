package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "sav_interventions/docs" // This will be auto-generated
	"sav_interventions/internal/adapter/http/handlers"
	repository2 "sav_interventions/internal/adapter/persistence/repository"
	"sav_interventions/internal/infrastructure/database"
	"sav_interventions/internal/infrastructure/payments"
	"sav_interventions/internal/infrastructure/roster"
	"sav_interventions/internal/usecase"
	"sav_interventions/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	interventionRepo := newInterventionRepository()
	technicianRoster := roster.NewStaticRoster()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	interventionUseCase := usecase.NewInterventionUseCase(interventionRepo, technicianRoster)
	billingUseCase := usecase.NewBillingUseCase(interventionRepo, technicianRoster, paymentGateway)
	warrantyUseCase := usecase.NewWarrantyUseCase()

	interventionHandler := handlers.NewInterventionHandler(interventionUseCase)
	billingHandler := handlers.NewBillingHandler(billingUseCase)
	warrantyHandler := handlers.NewWarrantyHandler(warrantyUseCase, interventionUseCase)
	technicianHandler := handlers.NewTechnicianHandler(technicianRoster)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addInterventionRoutes(v1, interventionHandler, billingHandler, warrantyHandler, technicianHandler)
}

// newInterventionRepository picks the persistence backend. The in-memory
// store satisfies the same contract and keeps local runs infrastructure-free.
func newInterventionRepository() interfaces.IInterventionRepository {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("INTERVENTIONS_STORE")), "memory") {
		log.Printf("[routes] using in-memory intervention store")
		return repository2.NewInterventionMemoryRepository()
	}
	return repository2.NewInterventionDynamoRepository(database.MustConnect(context.Background()))
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
