package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathCostEntries = "/costentries"
	PathClients     = "/clients"
	PathInvoices    = "/invoices"
	PathTax         = "/tax"
)

func addBillingRoutes(rg *gin.RouterGroup, h billingHandlers) {
	costEntries := rg.Group(PathCostEntries)
	{
		costEntries.GET("", h.costEntries.ListCostEntries)
		costEntries.GET("/:id", h.costEntries.GetCostEntry)
		costEntries.POST("", h.costEntries.CreateCostEntry)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("", h.clients.ListClients)
		clients.GET("/:id", h.clients.GetClient)
		clients.POST("", h.clients.CreateClient)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", h.invoices.ListInvoices)
		invoices.GET("/:id", h.invoices.GetInvoice)
		invoices.POST("", h.invoices.CreateInvoice)
		// Partial update; every derived amount is recomputed.
		invoices.PUT("/:id", h.invoices.UpdateInvoice)
		invoices.POST("/:id/reminders", h.invoices.SendReminder)
	}

	tax := rg.Group(PathTax)
	{
		tax.GET("/calculate", h.tax.Calculate)
		tax.GET("/rates", h.tax.ListRates)
		tax.GET("/rates/:region", h.tax.GetRate)
	}
}
