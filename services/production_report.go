package services

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/yeremiapane/fundraiser-shop/models"
	"github.com/yeremiapane/fundraiser-shop/utils"
)

// WriteProductionPDF renders the production summary and the pending order list as a
// one-page-per-section packing sheet for the volunteers.
func WriteProductionPDF(w io.Writer, summary []ProductionLine, pending []models.Order, generatedAt time.Time) error {
	return buildProductionPDF(summary, pending, generatedAt).Output(w)
}

func buildProductionPDF(summary []ProductionLine, pending []models.Order, generatedAt time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "Letter", "")
	// core fonts are cp1252; names and addresses arrive as UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Production Summary", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Living Water - Production Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Generated "+generatedAt.Format("Jan 2, 2006 3:04 PM"))
	pdf.Ln(10)

	// summary table
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(90, 8, "Product", "1", 0, "L", false, 0, "")
	for _, size := range models.OrderSizes {
		pdf.CellFormat(45, 8, string(size), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	if len(summary) == 0 {
		pdf.CellFormat(180, 8, "No pending orders to produce.", "1", 1, "L", false, 0, "")
	}
	for _, line := range summary {
		pdf.CellFormat(90, 8, tr(line.ProductName), "1", 0, "L", false, 0, "")
		for _, size := range models.OrderSizes {
			pdf.CellFormat(45, 8, fmt.Sprintf("%d", line.Sizes[size]), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Pending Orders (%d)", len(pending)))
	pdf.Ln(9)

	for _, o := range pending {
		pdf.SetFont("Arial", "B", 10)
		header := fmt.Sprintf("#%s  %s  (%s)  %s", o.OrderNumber, o.CustomerName, o.CustomerContact, o.DeliveryOption)
		if o.IsRecurring {
			header += "  - recurring x4"
		}
		pdf.Cell(0, 6, tr(header))
		pdf.Ln(6)

		pdf.SetFont("Arial", "", 10)
		if o.DeliveryOption == models.Delivery && o.DeliveryAddress != "" {
			pdf.Cell(0, 5, tr("    Deliver to: "+o.DeliveryAddress))
			pdf.Ln(5)
		}
		for _, item := range o.Items {
			pdf.Cell(0, 5, tr(fmt.Sprintf("    %dx %s (%s)", item.Quantity, item.ProductName, item.Size)))
			pdf.Ln(5)
		}
		pdf.Cell(0, 5, fmt.Sprintf("    Group: %s   Total: %s", o.AssignedGroup.ShortName(), utils.FormatUSD(o.TotalPrice)))
		pdf.Ln(7)
	}

	return pdf
}
