package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	config "github.com/Chell2003/payment-nexus-dashboard/configs"
	"github.com/Chell2003/payment-nexus-dashboard/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const receiptTemplate = `<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px; margin: 0 auto;">
  <h2 style="text-align: center;">Official Receipt</h2>
  <p style="text-align: center; color: #666;">ACS Manager</p>
  <hr style="margin: 20px 0;" />

  <div style="margin-bottom: 20px;">
    <p><strong>Receipt No:</strong> {{.ReceiptNumber}}</p>
    <p><strong>Payment Date:</strong> {{.PaymentDate}}</p>
  </div>

  <table style="width: 100%; border-collapse: collapse; margin-top: 20px;">
    <tr>
      <td style="padding: 8px; border: 1px solid #e5e7eb;">Student Number</td>
      <td style="padding: 8px; border: 1px solid #e5e7eb;">{{.StudentNumber}}</td>
    </tr>
    <tr>
      <td style="padding: 8px; border: 1px solid #e5e7eb;">Name</td>
      <td style="padding: 8px; border: 1px solid #e5e7eb;">{{.StudentName}}</td>
    </tr>
    <tr>
      <td style="padding: 8px; border: 1px solid #e5e7eb;">Year &amp; Section</td>
      <td style="padding: 8px; border: 1px solid #e5e7eb;">{{.YearAndSection}}</td>
    </tr>
    <tr style="font-weight: bold; background-color: #f3f4f6;">
      <td style="padding: 8px; border: 1px solid #e5e7eb;">Amount Paid</td>
      <td style="padding: 8px; border: 1px solid #e5e7eb;">&#8369;{{money .AmountPaid}}</td>
    </tr>
  </table>

  <div style="text-align: center; margin-top: 40px; font-size: 0.8em; color: #666;">
    <p>This receipt records the amount received. Keep it for your records.</p>
  </div>
</div>`

var receiptTmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{"money": formatAmount}).Parse(receiptTemplate))

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// RenderReceiptHTML produces the printable receipt document for one payment.
func RenderReceiptHTML(payment models.Payment, receiptNumber string) (string, error) {
	data := struct {
		ReceiptNumber  string
		PaymentDate    string
		StudentNumber  string
		StudentName    string
		YearAndSection string
		AmountPaid     float64
	}{
		ReceiptNumber:  receiptNumber,
		PaymentDate:    payment.PaymentDate.Format("January 2, 2006"),
		StudentNumber:  deref(payment.Student.StudentNumber),
		StudentName:    deref(payment.Student.Name),
		YearAndSection: deref(payment.Student.YearAndSection),
		AmountPaid:     payment.AmountPaid,
	}

	var rendered bytes.Buffer
	if err := receiptTmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

// ArchiveReceipt renders the receipt to PDF and uploads it, returning the
// hosted URL.
func ArchiveReceipt(payment models.Payment, receiptNumber string) (string, error) {
	htmlContent, err := RenderReceiptHTML(payment, receiptNumber)
	if err != nil {
		return "", err
	}

	pdfBytes, err := GeneratePDFFromHTML(htmlContent)
	if err != nil {
		return "", err
	}

	return uploadReceiptPDF(pdfBytes, payment.ID.String())
}

func GeneratePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReceiptPDF(fileBytes []byte, paymentID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s_%s", paymentID, uuid.New().String()),
		Folder:       "payment_nexus_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
