package model

import "time"

// DateLayout for the created_date column.
const DateLayout = "2006-01-02"

// Customer ...
type Customer struct {
	ID          string
	CreatedDate time.Time // UTC midnight inside the lookback window
	AgeBand     AgeBand
	Residency   Residency
	Segment     Segment
}

// AgeBand ...
type AgeBand string

const (
	// AgeBand18To25 ...
	AgeBand18To25 AgeBand = "18-25"

	// AgeBand26To35 ...
	AgeBand26To35 AgeBand = "26-35"

	// AgeBand36To45 ...
	AgeBand36To45 AgeBand = "36-45"

	// AgeBand46To60 ...
	AgeBand46To60 AgeBand = "46-60"

	// AgeBand60Plus ...
	AgeBand60Plus AgeBand = "60+"
)

// Residency ...
type Residency string

const (
	// ResidencyAD ...
	ResidencyAD Residency = "AD"

	// ResidencyES ...
	ResidencyES Residency = "ES"

	// ResidencyFR ...
	ResidencyFR Residency = "FR"
)

// Segment is the customer value tier scaling downstream probabilities.
type Segment string

const (
	// SegmentMass ...
	SegmentMass Segment = "mass"

	// SegmentAffluent ...
	SegmentAffluent Segment = "affluent"
)

// CustomerHeader ...
func CustomerHeader() []string {
	return []string{"customer_id", "created_date", "age_band", "residency", "segment"}
}

// Row ...
func (c Customer) Row() []string {
	return []string{
		c.ID,
		c.CreatedDate.Format(DateLayout),
		string(c.AgeBand),
		string(c.Residency),
		string(c.Segment),
	}
}
