package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the BigQuery friendly event_ts format: UTC, no
// offset marker.
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp ...
func FormatTimestamp(ts time.Time) string {
	return ts.UTC().Format(TimestampLayout)
}

// MarketingEventType ...
type MarketingEventType string

const (
	// MarketingEventImpression ...
	MarketingEventImpression MarketingEventType = "impression"

	// MarketingEventClick ...
	MarketingEventClick MarketingEventType = "click"

	// MarketingEventLead ...
	MarketingEventLead MarketingEventType = "lead"
)

// MarketingEvent ...
type MarketingEvent struct {
	EventTS    time.Time
	CustomerID string
	CampaignID string
	Source     Source
	Channel    Channel
	Device     Device
	Type       MarketingEventType

	// Cost is null for unpaid sources.
	Cost decimal.NullDecimal
}

// FirstLead is the earliest lead attribution of a customer, first write
// wins. Read-only context for the product funnel.
type FirstLead struct {
	LeadTS     time.Time
	CampaignID string
	Source     Source
	Channel    Channel
	Device     Device
}

// MarketingEventHeader ...
func MarketingEventHeader() []string {
	return []string{
		"event_ts", "customer_id", "campaign_id",
		"source", "channel", "device", "event_type", "cost",
	}
}

// Row ...
func (e MarketingEvent) Row() []string {
	cost := ""
	if e.Cost.Valid {
		cost = e.Cost.Decimal.String()
	}
	return []string{
		FormatTimestamp(e.EventTS),
		e.CustomerID,
		e.CampaignID,
		string(e.Source),
		string(e.Channel),
		string(e.Device),
		string(e.Type),
		cost,
	}
}
