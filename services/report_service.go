package services

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/Chell2003/payment-nexus-dashboard/models"
)

// TotalAmount sums amount_paid over every loaded payment. The report total is
// always computed over the unfiltered set.
func TotalAmount(payments []models.Payment) float64 {
	var total float64
	for _, payment := range payments {
		total += payment.AmountPaid
	}
	return total
}

// FilterPayments applies the report screen's text filter: case-insensitive
// substring match on the joined student's name, number and email.
func FilterPayments(payments []models.Payment, search string) []models.Payment {
	if search == "" {
		return payments
	}

	query := strings.ToLower(search)
	filtered := make([]models.Payment, 0, len(payments))
	for _, payment := range payments {
		student := payment.Student
		if strings.Contains(strings.ToLower(deref(student.Name)), query) ||
			strings.Contains(strings.ToLower(deref(student.StudentNumber)), query) ||
			strings.Contains(strings.ToLower(deref(student.Email)), query) {
			filtered = append(filtered, payment)
		}
	}
	return filtered
}

const reportTemplate = `<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 800px; margin: 0 auto;">
  <h2 style="text-align: center;">Payment Collection Report</h2>
  <hr style="margin: 20px 0;" />

  <div style="margin-bottom: 20px;">
    <p><strong>Date Generated:</strong> {{.DateGenerated}}</p>
    <p><strong>Total Amount Collected:</strong> &#8369;{{money .TotalAmount}}</p>
  </div>

  <table style="width: 100%; border-collapse: collapse; margin-top: 20px;">
    <thead>
      <tr style="background-color: #f3f4f6;">
        <th style="padding: 12px; border: 1px solid #e5e7eb; text-align: left;">Student Number</th>
        <th style="padding: 12px; border: 1px solid #e5e7eb; text-align: left;">Name</th>
        <th style="padding: 12px; border: 1px solid #e5e7eb; text-align: left;">Year &amp; Section</th>
        <th style="padding: 12px; border: 1px solid #e5e7eb; text-align: right;">Amount</th>
        <th style="padding: 12px; border: 1px solid #e5e7eb; text-align: left;">Date</th>
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}
      <tr>
        <td style="padding: 12px; border: 1px solid #e5e7eb;">{{.StudentNumber}}</td>
        <td style="padding: 12px; border: 1px solid #e5e7eb;">{{.StudentName}}</td>
        <td style="padding: 12px; border: 1px solid #e5e7eb;">{{.YearAndSection}}</td>
        <td style="padding: 12px; border: 1px solid #e5e7eb; text-align: right;">&#8369;{{money .AmountPaid}}</td>
        <td style="padding: 12px; border: 1px solid #e5e7eb;">{{.PaymentDate}}</td>
      </tr>
      {{end}}
    </tbody>
    <tfoot>
      <tr style="background-color: #f3f4f6; font-weight: bold;">
        <td colspan="3" style="padding: 12px; border: 1px solid #e5e7eb; text-align: right;">Total:</td>
        <td style="padding: 12px; border: 1px solid #e5e7eb; text-align: right;">&#8369;{{money .TotalAmount}}</td>
        <td style="padding: 12px; border: 1px solid #e5e7eb;"></td>
      </tr>
    </tfoot>
  </table>

  <div style="text-align: center; margin-top: 40px; font-size: 0.8em; color: #666;">
    <p>End of Report</p>
  </div>
</div>`

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{"money": formatAmount}).Parse(reportTemplate))

type reportRow struct {
	StudentNumber  string
	StudentName    string
	YearAndSection string
	AmountPaid     float64
	PaymentDate    string
}

// RenderReportHTML produces the printable payment collection report over the
// full (unfiltered) payment set.
func RenderReportHTML(payments []models.Payment) (string, error) {
	rows := make([]reportRow, 0, len(payments))
	for _, payment := range payments {
		rows = append(rows, reportRow{
			StudentNumber:  deref(payment.Student.StudentNumber),
			StudentName:    deref(payment.Student.Name),
			YearAndSection: deref(payment.Student.YearAndSection),
			AmountPaid:     payment.AmountPaid,
			PaymentDate:    payment.PaymentDate.Format("1/2/2006"),
		})
	}

	data := struct {
		DateGenerated string
		TotalAmount   float64
		Rows          []reportRow
	}{
		DateGenerated: time.Now().Format("1/2/2006"),
		TotalAmount:   TotalAmount(payments),
		Rows:          rows,
	}

	var rendered bytes.Buffer
	if err := reportTmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}
