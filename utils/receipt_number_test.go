package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateReceiptNumber(t *testing.T) {
	number := GenerateReceiptNumber()

	parts := strings.Split(number, "-")
	if len(parts) != 3 {
		t.Fatalf("GenerateReceiptNumber() = %q, want OR-<date>-<digits>", number)
	}
	if parts[0] != "OR" {
		t.Errorf("prefix = %q, want OR", parts[0])
	}
	if parts[1] != time.Now().Format("20060102") {
		t.Errorf("date part = %q, want today's date", parts[1])
	}
	if len(parts[2]) != receiptSuffixDigits {
		t.Errorf("suffix %q has %d digits, want %d", parts[2], len(parts[2]), receiptSuffixDigits)
	}
	for _, r := range parts[2] {
		if r < '0' || r > '9' {
			t.Errorf("suffix %q contains non-digit %q", parts[2], r)
		}
	}
}
