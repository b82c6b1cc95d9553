package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductFamily ...
type ProductFamily string

const (
	// ProductAccount ...
	ProductAccount ProductFamily = "account"

	// ProductCard ...
	ProductCard ProductFamily = "card"

	// ProductLoan ...
	ProductLoan ProductFamily = "loan"

	// ProductMortgage ...
	ProductMortgage ProductFamily = "mortgage"
)

// ProductEventType ...
type ProductEventType string

const (
	// ProductEventOpened ...
	ProductEventOpened ProductEventType = "opened"

	// ProductEventApplied ...
	ProductEventApplied ProductEventType = "applied"

	// ProductEventApproved ...
	ProductEventApproved ProductEventType = "approved"
)

// ProductEvent ...
type ProductEvent struct {
	EventTS    time.Time
	CustomerID string
	Family     ProductFamily
	Type       ProductEventType

	// Amount is set for loan and mortgage events only.
	Amount decimal.NullDecimal
}

// ProductEventHeader ...
func ProductEventHeader() []string {
	return []string{"event_ts", "customer_id", "product_family", "event_type", "amount"}
}

// Row ...
func (e ProductEvent) Row() []string {
	amount := ""
	if e.Amount.Valid {
		amount = e.Amount.Decimal.String()
	}
	return []string{
		FormatTimestamp(e.EventTS),
		e.CustomerID,
		string(e.Family),
		string(e.Type),
		amount,
	}
}
