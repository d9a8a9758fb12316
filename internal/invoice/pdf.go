package invoice

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	pkgerrors "github.com/paypointhq/pos-register/pkg/errors"
	"github.com/shopspring/decimal"
)

// Layout constants in millimeters on an A4 portrait page. Row and block
// positions are fixed; the footer is anchored from the page bottom
// regardless of how many rows the table holds.
const (
	marginLeft  = 15.0
	marginRight = 15.0

	headerNameY    = 20.0
	headerAddressY = 28.0
	headerContactY = 33.0
	headerTaxY     = 38.0
	separatorY     = 45.0
	titleY         = 55.0
	detailsY       = 65.0
	tableHeadY     = 85.0
	tableHeadH     = 8.0
	firstRowY      = 95.0
	rowH           = 10.0
	footerOffset   = 40.0
)

// RenderPDF renders the document to PDF bytes. Rendering is deterministic:
// the creation date embedded in the file comes from the document itself.
func (r *Renderer) RenderPDF(doc Document) ([]byte, error) {
	if len(doc.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeRendering, "invoice has no items")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(doc.IssuedAt)
	pdf.SetModificationDate(doc.IssuedAt)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - marginLeft - marginRight

	// Issuer header, centered.
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(30, 64, 175)
	centerText(pdf, pageW, doc.Issuer.Name, headerNameY)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(75, 85, 99)
	centerText(pdf, pageW, doc.Issuer.Address, headerAddressY)
	centerText(pdf, pageW, fmt.Sprintf("Phone: %s | Email: %s", doc.Issuer.Phone, doc.Issuer.Email), headerContactY)
	centerText(pdf, pageW, fmt.Sprintf("GST: %s", doc.Issuer.TaxID), headerTaxY)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, separatorY, pageW-marginRight, separatorY)

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(30, 64, 175)
	centerText(pdf, pageW, "TAX INVOICE", titleY)

	// Invoice details, left column.
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(marginLeft, detailsY, fmt.Sprintf("Invoice No: %s", doc.Number))
	pdf.Text(marginLeft, detailsY+5, fmt.Sprintf("Date: %s", doc.IssuedAt.Format("January 2, 2006")))
	pdf.Text(marginLeft, detailsY+10, fmt.Sprintf("Time: %s", doc.IssuedAt.Format("03:04 PM")))

	// Buyer block, right column. Empty fields collapse.
	buyerX := pageW - marginRight - 80
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(buyerX, detailsY, "BILL TO:")
	pdf.SetFont("Helvetica", "", 9)
	buyerY := detailsY + 5
	for _, field := range []struct {
		label, value string
	}{
		{"Name", doc.Buyer.Name},
		{"Phone", doc.Buyer.Phone},
		{"Email", doc.Buyer.Email},
		{"GST No", doc.Buyer.TaxID},
	} {
		if field.value == "" {
			continue
		}
		pdf.Text(buyerX, buyerY, fmt.Sprintf("%s: %s", field.label, field.value))
		buyerY += 5
	}

	// Table header band.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(30, 64, 175)
	pdf.Rect(marginLeft, tableHeadY, contentW, tableHeadH, "F")
	headBaseline := tableHeadY + 5
	pdf.Text(marginLeft+5, headBaseline, "Sr No.")
	pdf.Text(marginLeft+20, headBaseline, "Item Description")
	pdf.Text(marginLeft+contentW-60, headBaseline, "Qty")
	pdf.Text(marginLeft+contentW-45, headBaseline, "Unit Price")
	rightText(pdf, marginLeft+contentW-20, headBaseline, "Total")

	// Rows, alternating shade on even indices.
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	y := firstRowY
	for i, item := range doc.Items {
		if i%2 == 0 {
			pdf.SetFillColor(249, 250, 251)
			pdf.Rect(marginLeft, y-3, contentW, rowH, "F")
		}
		pdf.Text(marginLeft+5, y, fmt.Sprintf("%d", i+1))
		pdf.Text(marginLeft+20, y, item.Name)
		pdf.Text(marginLeft+contentW-60, y, fmt.Sprintf("%d", item.Quantity))
		pdf.Text(marginLeft+contentW-45, y, money(item.UnitPrice))
		rightText(pdf, marginLeft+contentW-20, y, money(item.LineTotal))
		y += rowH
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Line(marginLeft, y, pageW-marginRight, y)
	y += 5

	// Totals block, right aligned.
	totalsX := pageW - marginRight - 60
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(totalsX, y, "Subtotal:")
	rightText(pdf, pageW-marginRight, y, money(doc.Subtotal))
	y += 6
	pdf.Text(totalsX, y, fmt.Sprintf("Tax (%s%%):", doc.TaxRate.Mul(decimal.NewFromInt(100)).Round(0)))
	rightText(pdf, pageW-marginRight, y, money(doc.Tax))
	y += 6
	if doc.Discount.IsPositive() {
		pdf.Text(totalsX, y, "Discount:")
		rightText(pdf, pageW-marginRight, y, "-"+money(doc.Discount))
		y += 6
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(totalsX, y, "GRAND TOTAL:")
	rightText(pdf, pageW-marginRight, y, money(doc.Total))
	y += 8
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.5)
	pdf.Line(totalsX-5, y, pageW-marginRight, y)
	y += 10

	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(marginLeft, y, fmt.Sprintf("Payment Method: %s", titleCase(doc.PaymentMethod.String())))
	pdf.Text(marginLeft, y+5, "Payment Status: Paid")
	if doc.OrderID != nil {
		pdf.Text(marginLeft, y+10, fmt.Sprintf("Order ID: %s", OrderNumber(*doc.OrderID)))
	}

	// Footer, anchored from the page bottom.
	footerY := pageH - footerOffset
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	centerText(pdf, pageW, "Thank you for your business!", footerY)
	centerText(pdf, pageW, "This is a computer-generated invoice. No signature required.", footerY+5)
	centerText(pdf, pageW, fmt.Sprintf("For any queries, please contact: %s", doc.Issuer.Phone), footerY+10)
	pdf.Text(marginLeft, footerY+20, "Terms & Conditions:")
	pdf.Text(marginLeft+5, footerY+25, "1. Goods once sold cannot be returned or exchanged.")
	pdf.Text(marginLeft+5, footerY+30, "2. All disputes are subject to jurisdiction of local courts.")

	// Page border.
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.5)
	pdf.Rect(marginLeft-5, 10, pageW-marginLeft-marginRight+10, pageH-55, "D")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeRendering, err, "write invoice pdf")
	}
	return buf.Bytes(), nil
}

func centerText(pdf *fpdf.Fpdf, pageW float64, text string, y float64) {
	pdf.Text((pageW-pdf.GetStringWidth(text))/2, y, text)
}

func rightText(pdf *fpdf.Fpdf, rightX, y float64, text string) {
	pdf.Text(rightX-pdf.GetStringWidth(text), y, text)
}

func money(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
