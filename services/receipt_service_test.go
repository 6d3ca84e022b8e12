package services

import (
	"strings"
	"testing"
	"time"

	"github.com/Chell2003/payment-nexus-dashboard/models"
)

func TestRenderReceiptHTML(t *testing.T) {
	payment := models.Payment{
		AmountPaid:  750.25,
		PaymentDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Student: models.Student{
			StudentNumber:  strPtr("001"),
			Name:           strPtr("Ann"),
			YearAndSection: strPtr("BSCS 2-3"),
		},
	}

	html, err := RenderReceiptHTML(payment, "OR-20250615-123456")
	if err != nil {
		t.Fatalf("RenderReceiptHTML() error = %v", err)
	}

	for _, want := range []string{
		"Official Receipt",
		"OR-20250615-123456",
		"June 15, 2025",
		"001",
		"Ann",
		"BSCS 2-3",
		"750.25",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("receipt HTML missing %q", want)
		}
	}
}

func TestRenderReceiptHTMLNilStudentFields(t *testing.T) {
	payment := models.Payment{
		AmountPaid:  100,
		PaymentDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	html, err := RenderReceiptHTML(payment, "OR-20250102-000001")
	if err != nil {
		t.Fatalf("RenderReceiptHTML() error = %v", err)
	}
	if !strings.Contains(html, "100.00") {
		t.Error("receipt should render the amount with two decimals")
	}
}
