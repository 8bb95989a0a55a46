package catalog

// seedDomains is the fixed list of service domains loaded at construction.
func seedDomains() []*ServiceDomain {
	return []*ServiceDomain{
		{
			Name:          "Customer Management",
			Description:   "Maintains customer reference data, onboarding state and relationship details",
			BusinessAreas: []string{"Retail Banking", "Customer Relationship"},
			CommonAPIs:    []string{"Customer Profile API", "Customer Onboarding API"},
		},
		{
			Name:          "Account Management",
			Description:   "Manages current and savings account positions, balances and statements",
			BusinessAreas: []string{"Retail Banking", "Accounts"},
			CommonAPIs:    []string{"Account Information API", "Account Statement API"},
		},
		{
			Name:          "Payment Order",
			Description:   "Handles initiation, tracking and settlement of customer payment orders",
			BusinessAreas: []string{"Payments"},
			CommonAPIs:    []string{"Payment Initiation API", "Payment Status API"},
		},
		{
			Name:          "Card Management",
			Description:   "Issues and services debit and credit cards, including transaction history",
			BusinessAreas: []string{"Cards", "Retail Banking"},
			CommonAPIs:    []string{"Card Issuance API", "Card Transaction API"},
		},
		{
			Name:          "Consumer Loan",
			Description:   "Originates and services consumer lending products and repayment schedules",
			BusinessAreas: []string{"Lending"},
			CommonAPIs:    []string{"Loan Origination API", "Loan Repayment API"},
		},
		{
			Name:          "Fraud Detection",
			Description:   "Evaluates transactions and customer activity for fraud indicators",
			BusinessAreas: []string{"Risk & Compliance"},
			CommonAPIs:    []string{"Fraud Evaluation API"},
		},
	}
}

// seedTemplates is the fixed list of API templates loaded at construction.
func seedTemplates() []*APITemplate {
	return []*APITemplate{
		{
			Name:        "Customer Profile API",
			Domain:      "Customer Management",
			Description: "Create, retrieve and update customer profile records",
			Endpoints: []Endpoint{
				{Path: "/customers", Method: "POST", Operation: "Register", Description: "Register a new customer profile"},
				{Path: "/customers/{customer-id}", Method: "GET", Operation: "Retrieve", Description: "Retrieve a customer profile"},
				{Path: "/customers/{customer-id}", Method: "PUT", Operation: "Update", Description: "Update a customer profile"},
			},
			Coverage:    []string{"KYC reference data", "contact details", "relationship status"},
			Limitations: []string{"retail customers only"},
		},
		{
			Name:        "Customer Onboarding API",
			Domain:      "Customer Management",
			Description: "Drive a customer onboarding workflow through its stages",
			Endpoints: []Endpoint{
				{Path: "/onboarding-cases", Method: "POST", Operation: "Initiate", Description: "Initiate an onboarding case"},
				{Path: "/onboarding-cases/{case-id}", Method: "GET", Operation: "Retrieve", Description: "Retrieve onboarding case state"},
				{Path: "/onboarding-cases/{case-id}/checks", Method: "POST", Operation: "Evaluate", Description: "Run compliance checks for a case"},
			},
			Coverage:    []string{"identity verification", "document capture"},
			Limitations: []string{"no corporate onboarding"},
		},
		{
			Name:        "Account Information API",
			Domain:      "Account Management",
			Description: "Query account positions and balances",
			Endpoints: []Endpoint{
				{Path: "/accounts", Method: "GET", Operation: "Retrieve", Description: "List accounts for the authenticated context"},
				{Path: "/accounts/{account-id}", Method: "GET", Operation: "Retrieve", Description: "Retrieve a single account position"},
			},
			Coverage:    []string{"balances", "account attributes"},
			Limitations: []string{"no transaction history"},
		},
		{
			Name:        "Account Statement API",
			Domain:      "Account Management",
			Description: "Produce account statements and transaction listings",
			Endpoints: []Endpoint{
				{Path: "/accounts/{account-id}/statements", Method: "GET", Operation: "Retrieve", Description: "List statements for an account"},
				{Path: "/accounts/{account-id}/statements", Method: "POST", Operation: "Initiate", Description: "Request generation of a statement"},
			},
		},
		{
			Name:        "Payment Initiation API",
			Domain:      "Payment Order",
			Description: "Initiate and manage payment orders",
			Endpoints: []Endpoint{
				{Path: "/payment-orders", Method: "POST", Operation: "Initiate", Description: "Initiate a payment order"},
				{Path: "/payment-orders/{payment-order-id}", Method: "GET", Operation: "Retrieve", Description: "Retrieve a payment order"},
				{Path: "/payment-orders/{payment-order-id}", Method: "PUT", Operation: "Update", Description: "Amend a pending payment order"},
			},
			Coverage:    []string{"SEPA credit transfer", "internal transfer"},
			Limitations: []string{"no bulk payments"},
		},
		{
			Name:        "Payment Status API",
			Domain:      "Payment Order",
			Description: "Track the execution status of payment orders",
			Endpoints: []Endpoint{
				{Path: "/payment-orders/{payment-order-id}/status", Method: "GET", Operation: "Retrieve", Description: "Retrieve current execution status"},
			},
		},
		{
			Name:        "Card Issuance API",
			Domain:      "Card Management",
			Description: "Issue and manage payment cards",
			Endpoints: []Endpoint{
				{Path: "/cards", Method: "POST", Operation: "Initiate", Description: "Issue a new card"},
				{Path: "/cards/{card-id}", Method: "GET", Operation: "Retrieve", Description: "Retrieve card details"},
				{Path: "/cards/{card-id}", Method: "PUT", Operation: "Update", Description: "Update card status or limits"},
			},
		},
		{
			Name:        "Card Transaction API",
			Domain:      "Card Management",
			Description: "Query card transaction history",
			Endpoints: []Endpoint{
				{Path: "/cards/{card-id}/transactions", Method: "GET", Operation: "Retrieve", Description: "List card transactions"},
			},
			Limitations: []string{"90 day history window"},
		},
		{
			Name:        "Loan Origination API",
			Domain:      "Consumer Loan",
			Description: "Originate consumer loans and evaluate applications",
			Endpoints: []Endpoint{
				{Path: "/loan-applications", Method: "POST", Operation: "Initiate", Description: "Submit a loan application"},
				{Path: "/loan-applications/{application-id}", Method: "GET", Operation: "Retrieve", Description: "Retrieve application state"},
				{Path: "/loan-applications/{application-id}/assessment", Method: "POST", Operation: "Evaluate", Description: "Run affordability assessment"},
			},
			Coverage: []string{"unsecured personal loans"},
		},
		{
			Name:        "Loan Repayment API",
			Domain:      "Consumer Loan",
			Description: "Manage loan repayment schedules and payments",
			Endpoints: []Endpoint{
				{Path: "/loans/{loan-id}/repayments", Method: "GET", Operation: "Retrieve", Description: "List scheduled repayments"},
				{Path: "/loans/{loan-id}/repayments", Method: "POST", Operation: "Initiate", Description: "Make an ad-hoc repayment"},
			},
		},
		{
			Name:        "Fraud Evaluation API",
			Domain:      "Fraud Detection",
			Description: "Score transactions and sessions for fraud risk",
			Endpoints: []Endpoint{
				{Path: "/fraud-assessments", Method: "POST", Operation: "Evaluate", Description: "Evaluate an activity for fraud indicators"},
				{Path: "/fraud-assessments/{assessment-id}", Method: "GET", Operation: "Retrieve", Description: "Retrieve an assessment result"},
			},
			Limitations: []string{"batch scoring not supported"},
		},
	}
}
