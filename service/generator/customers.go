package generator

import (
	"fmt"
	"time"

	"github.com/ClaudiaCodeLab/DemoMB/model"
)

// generateCustomers draws one customer profile per iteration and keeps
// the ordered slice for the two funnel passes.
func (s *Service) generateCustomers(out RecordSink, sum *Summary) error {
	if err := out.Write(model.CustomerHeader()); err != nil {
		return err
	}

	windowStart := midnightUTC(s.now.AddDate(0, 0, -s.conf.Days))

	s.customers = make([]model.Customer, 0, s.conf.Customers)
	for i := 1; i <= s.conf.Customers; i++ {
		customer := model.Customer{
			ID:          fmt.Sprintf("CUST%05d", i),
			CreatedDate: windowStart.AddDate(0, 0, s.rng.Intn(s.conf.Days)),
			AgeBand:     model.AgeBand(ageBands.Pick(s.rng)),
			Residency:   model.Residency(residencies.Pick(s.rng)),
			Segment:     model.Segment(segments.Pick(s.rng)),
		}
		s.customers = append(s.customers, customer)

		if err := out.Write(customer.Row()); err != nil {
			return err
		}
	}

	sum.Customers = len(s.customers)
	return nil
}

func midnightUTC(ts time.Time) time.Time {
	ts = ts.UTC()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}
