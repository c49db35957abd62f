package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/aslanavm/stok-api/internal/application/dto"
	"github.com/aslanavm/stok-api/internal/application/inventory"
	"github.com/aslanavm/stok-api/internal/domain/entity"
)

// InventoryReportGenerator genera el PDF del inventario (puerto, implementado
// en infrastructure/pdf).
type InventoryReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, storeName string, products []entity.Product, totalStock int) ([]byte, error)
}

// ReportHandler sirve el reporte de inventario en PDF.
type ReportHandler struct {
	container *inventory.Container
	generator InventoryReportGenerator
	storeName string
}

// NewReportHandler construye el handler.
func NewReportHandler(container *inventory.Container, generator InventoryReportGenerator, storeName string) *ReportHandler {
	return &ReportHandler{container: container, generator: generator, storeName: storeName}
}

// Inventory godoc
// @Summary      Descargar el reporte de inventario (PDF)
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	pdfBytes, err := h.generator.GenerateInventoryReport(
		c.Context(), h.storeName, h.container.Snapshot(), h.container.TotalStock(),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "REPORT_FAILED", Message: "no se pudo generar el reporte",
		})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="envanter-raporu.pdf"`)
	return c.Send(pdfBytes)
}
