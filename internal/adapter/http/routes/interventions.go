package routes

import (
	"sav_interventions/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInterventions = "/interventions"
	PathTechnicians   = "/technicians"
)

func addInterventionRoutes(
	rg *gin.RouterGroup,
	interventionHandler *handlers.InterventionHandler,
	billingHandler *handlers.BillingHandler,
	warrantyHandler *handlers.WarrantyHandler,
	technicianHandler *handlers.TechnicianHandler,
) {
	interventions := rg.Group(PathInterventions)
	{
		interventions.POST("", interventionHandler.CreateIntervention)
		interventions.GET("", interventionHandler.ListInterventions)
		interventions.GET("/numero/:numero", interventionHandler.GetInterventionByNumero)
		interventions.GET("/reclamation/:reclamation_id", interventionHandler.ListByReclamation)
		interventions.GET("/status/:status", interventionHandler.ListByStatus)
		interventions.GET("/:id", interventionHandler.GetIntervention)
		interventions.PATCH("/:id", interventionHandler.UpdateIntervention)

		// Lifecycle transitions
		interventions.POST("/:id/start", interventionHandler.StartIntervention)
		interventions.POST("/:id/finish", interventionHandler.FinishIntervention)
		interventions.POST("/:id/cancel", interventionHandler.CancelIntervention)

		// Billing
		interventions.GET("/:id/billing-check", billingHandler.CheckBilling)
		interventions.POST("/:id/invoice/calculate", billingHandler.CalculateInvoice)
		interventions.POST("/:id/invoice/generate", billingHandler.GenerateInvoice)
		interventions.POST("/:id/invoice/pay", billingHandler.PayInvoice)

		// Informational warranty re-check
		interventions.GET("/:id/warranty-check", warrantyHandler.CheckWarranty)
	}

	rg.GET(PathTechnicians, technicianHandler.ListTechnicians)
}
