package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const receiptSuffixDigits = 6

// GenerateReceiptNumber returns an official receipt number of the form
// OR-20060102-123456. The random suffix keeps receipts issued on the same
// day distinguishable; the number is printed, not stored.
func GenerateReceiptNumber() string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	suffix := ""
	for i := 0; i < receiptSuffixDigits; i++ {
		suffix += fmt.Sprintf("%d", seededRand.Intn(10))
	}

	return fmt.Sprintf("OR-%s-%s", time.Now().Format("20060102"), suffix)
}
