// Package pdf genera el reporte de inventario en PDF: un listado A4 del stock
// actual con los contadores del tablero, pensado para imprimir o archivar al
// cierre del día.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/aslanavm/stok-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 234, Green: 88, Blue: 12} // naranja de la marca
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator genera el reporte de inventario usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes. Los productos
// llegan en el orden del contenedor (más reciente primero) y se listan así.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	storeName string,
	products []entity.Product,
	totalStock int,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Envanter Raporu", true).
		WithAuthor(storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(storeName, len(products), totalStock))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(totalStock))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y fecha + contadores (der).
func headerRow(storeName string, productCount, totalStock int) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Envanter Raporu", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Tarih: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Ürün çeşidi: %d   |   Toplam stok: %d", productCount, totalStock), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 9,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Ürün", 4, align.Left),
		h("Kategori", 2, align.Left),
		h("Barkod", 2, align.Left),
		h("Miktar", 1, align.Center),
		h("Alış", 1, align.Right),
		h("Satış", 2, align.Right),
	)
}

// productRow: una fila por producto.
func productRow(p entity.Product) core.Row {
	category := p.Category
	if category == "" {
		category = "—"
	}
	return row.New(7).Add(
		col.New(4).Add(
			text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
			text.New(p.Company, props.Text{Size: 6, Top: 4, Color: colorGray}),
		),
		col.New(2).Add(text.New(category, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(p.Barcode, props.Text{Size: 8, Top: 1})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(1).Add(text.New(p.PurchasePrice.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(p.SellingPrice.StringFixed(2)+" TL", props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

// totalsRow: total de unidades en stock.
func totalsRow(totalStock int) core.Row {
	return row.New(9).Add(
		col.New(8),
		col.New(4).Add(
			text.New(fmt.Sprintf("TOPLAM STOK: %d adet", totalStock), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
		),
	)
}
