package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aslanavm/stok-api/internal/application/barcode"
	"github.com/aslanavm/stok-api/internal/application/inventory"
	"github.com/aslanavm/stok-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Container       *inventory.Container
	AssistantUC     *usecase.AssistantUseCase
	BarcodeBroker   *barcode.Broker
	ReportGenerator InventoryReportGenerator
	StoreName       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	inventoryHandler := NewInventoryHandler(deps.Container)
	products.Get("/", inventoryHandler.List)
	products.Post("/", inventoryHandler.Create)
	products.Post("/samples", inventoryHandler.SeedSamples)
	products.Post("/reload", inventoryHandler.Reload)
	products.Put("/:id", inventoryHandler.Update)
	products.Delete("/:id", inventoryHandler.Delete)
	products.Patch("/:id/quantity", inventoryHandler.UpdateQuantity)
	products.Get("/:id/history", inventoryHandler.History)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.Container)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)

	// Assistant
	assistant := api.Group("/assistant")
	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	assistant.Post("/chat", assistantHandler.Chat)
	assistant.Post("/vision", assistantHandler.Vision)

	// Barcode scan sessions
	scans := api.Group("/barcode/sessions")
	barcodeHandler := NewBarcodeHandler(deps.BarcodeBroker)
	scans.Post("/", barcodeHandler.Open)
	scans.Get("/:id/result", barcodeHandler.Await)
	scans.Post("/:id/result", barcodeHandler.Deliver)
	scans.Delete("/:id", barcodeHandler.Close)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.Container, deps.ReportGenerator, deps.StoreName)
	reports.Get("/inventory", reportHandler.Inventory)
}
