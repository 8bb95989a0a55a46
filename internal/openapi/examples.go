package openapi

import "strings"

// cannedExample pairs a domain keyword with a representative request
// payload. The table is illustrative data; extend it freely as long as the
// fallback-on-no-match behavior stays intact.
type cannedExample struct {
	keyword string
	payload map[string]any
}

// Ordered: the first keyword matching the API or domain name wins.
var cannedExamples = []cannedExample{
	{"customer", map[string]any{
		"customerId":  "CUST-100482",
		"firstName":   "Maria",
		"lastName":    "Gonzalez",
		"email":       "maria.gonzalez@example.com",
		"phone":       "+34-600-123-456",
		"dateOfBirth": "1988-04-12",
		"address": map[string]any{
			"street":     "Calle Mayor 12",
			"city":       "Madrid",
			"postalCode": "28013",
			"country":    "ES",
		},
	}},
	{"account", map[string]any{
		"accountId":   "ACC-20417733",
		"accountType": "CURRENT",
		"currency":    "EUR",
		"balance":     2450.75,
		"status":      "OPEN",
	}},
	{"payment", map[string]any{
		"paymentOrderId":         "PO-2025-004182",
		"debtorAccount":          "ES9121000418450200051332",
		"creditorAccount":        "DE89370400440532013000",
		"amount":                 150.00,
		"currency":               "EUR",
		"remittanceInformation":  "Invoice 2025-118",
		"requestedExecutionDate": "2025-02-01",
	}},
	{"transaction", map[string]any{
		"transactionId": "TXN-88123902",
		"bookingDate":   "2025-01-14",
		"amount":        -42.10,
		"currency":      "EUR",
		"counterparty":  "Grocery Market SL",
		"category":      "GROCERIES",
	}},
	{"card", map[string]any{
		"cardId":     "CARD-554213",
		"maskedPan":  "**** **** **** 4821",
		"cardType":   "DEBIT",
		"expiryDate": "2027-09",
		"status":     "ACTIVE",
	}},
	{"loan", map[string]any{
		"loanId":          "LOAN-774102",
		"principalAmount": 12000.00,
		"termMonths":      48,
		"interestRate":    5.4,
		"currency":        "EUR",
		"purpose":         "Vehicle purchase",
	}},
	{"fraud", map[string]any{
		"assessmentId":      "FRA-2025-00731",
		"activityType":      "CARD_PAYMENT",
		"riskScore":         0.82,
		"indicators":        []any{"velocity", "geo-mismatch"},
		"recommendedAction": "REVIEW",
	}},
}

// genericExample is the last-resort payload when no keyword matches.
var genericExample = map[string]any{
	"generalDetails": map[string]any{
		"reference":   "REQ-2025-0001",
		"requestedBy": "online-banking",
		"notes":       "generated example payload",
	},
}

// cannedExampleFor returns the first canned payload whose keyword appears,
// case-insensitively, in the API or domain name. No match falls through to
// the generic payload.
func cannedExampleFor(apiName, domain string) map[string]any {
	haystack := strings.ToLower(apiName + " " + domain)
	for _, c := range cannedExamples {
		if strings.Contains(haystack, c.keyword) {
			return c.payload
		}
	}
	return genericExample
}
