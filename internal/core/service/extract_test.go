package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractInvoiceNumber(t *testing.T) {
	cases := []struct {
		name    string
		subject string
		body    string
		want    string
		found   bool
	}{
		{"marker with dash", "Invoice INV-4821 from Acme", "", "INV-4821", true},
		{"short marker with hash", "inv #20394", "", "20394", true},
		{"marker with colon", "Invoice: 10293 overdue", "", "10293", true},
		{"found in body", "Payment reminder", "your invoice AB-1000 is due", "AB-1000", true},
		{"subject wins over body", "Invoice AA-100 due", "see invoice BB-2000", "AA-100", true},
		{"generic reference fallback", "Your order PO-12345 has shipped", "", "PO-12345", true},
		{"too short after marker", "inv 12", "", "", false},
		{"nothing to find", "Lunch on Friday?", "the usual place", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractInvoiceNumber(tc.subject, tc.body)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractAmount(t *testing.T) {
	cases := []struct {
		name    string
		subject string
		body    string
		want    string
		found   bool
	}{
		{"pounds with pence", "", "Total due £123.45", "123.45", true},
		{"dollars with space", "$ 99 one-off fee", "", "99", true},
		{"euros single decimal", "", "charged €1500.5", "1500.5", true},
		{"first amount wins", "£10 admin fee", "plus £20 delivery", "10", true},
		{"no currency marker", "amount is 123.45", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractAmount(tc.subject, tc.body)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.want, got.String())
			}
		})
	}
}
