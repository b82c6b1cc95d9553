package generator

import (
	"time"

	"github.com/ClaudiaCodeLab/DemoMB/model"
	"github.com/shopspring/decimal"
)

// Fixed per-event costs for paid sources. Unpaid sources emit null.
var (
	impressionCost = decimal.RequireFromString("0.002")
	clickCost      = decimal.RequireFromString("0.25")
	leadCost       = decimal.RequireFromString("2.50")
)

func (s *Service) generateMarketing(out RecordSink, sum *Summary) error {
	if err := out.Write(model.MarketingEventHeader()); err != nil {
		return err
	}

	for _, customer := range s.customers {
		if err := s.marketingForCustomer(out, customer, sum); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) marketingForCustomer(out RecordSink, customer model.Customer, sum *Summary) error {
	channel := model.Channel(channels.Pick(s.rng))
	device := model.Device(devices.Pick(s.rng))

	// The source draw is advisory: it biases the campaign choice, but the
	// emitted source always comes from the campaign it resolved to.
	preferred := model.Source(sources.Pick(s.rng))
	campaign := s.registry.Pick(preferred)
	source := campaign.Source

	anchor := customer.CreatedDate.AddDate(0, 0, s.rng.Intn(11))

	impressions := randBetween(s.rng, 3, 12)
	ctr := clickRate(source, channel)

	write := func(ts time.Time, eventType model.MarketingEventType, cost decimal.Decimal) error {
		return out.Write(model.MarketingEvent{
			EventTS:    ts,
			CustomerID: customer.ID,
			CampaignID: campaign.ID,
			Source:     source,
			Channel:    channel,
			Device:     device,
			Type:       eventType,
			Cost:       costFor(source, cost),
		}.Row())
	}

	impressionTimes := make([]time.Time, 0, impressions)
	for i := 0; i < impressions; i++ {
		ts := anchor.Add(
			time.Duration(randBetween(s.rng, 0, 240))*time.Hour +
				time.Duration(randBetween(s.rng, 0, 59))*time.Minute)
		impressionTimes = append(impressionTimes, ts)

		if err := write(ts, model.MarketingEventImpression, impressionCost); err != nil {
			return err
		}
		sum.Impressions++
	}

	clicks := 0
	for _, ts := range impressionTimes {
		if s.rng.Float64() >= ctr {
			continue
		}
		clicks++
		clickTS := ts.Add(time.Duration(randBetween(s.rng, 1, 120)) * time.Minute)
		if err := write(clickTS, model.MarketingEventClick, clickCost); err != nil {
			return err
		}
		sum.Clicks++
	}

	if clicks == 0 {
		return nil
	}
	if s.rng.Float64() >= leadRate(source, channel) {
		return nil
	}

	leadTS := anchor.Add(
		time.Duration(randBetween(s.rng, 1, 360))*time.Hour +
			time.Duration(randBetween(s.rng, 0, 59))*time.Minute)
	if err := write(leadTS, model.MarketingEventLead, leadCost); err != nil {
		return err
	}
	sum.Leads++

	// At most one lead per customer per run, so first write wins.
	if _, ok := s.firstLeads[customer.ID]; !ok {
		s.firstLeads[customer.ID] = model.FirstLead{
			LeadTS:     leadTS,
			CampaignID: campaign.ID,
			Source:     source,
			Channel:    channel,
			Device:     device,
		}
	}
	return nil
}

// clickRate derives the per-customer CTR from source and channel,
// clamped to [0.04, 0.24].
func clickRate(source model.Source, channel model.Channel) float64 {
	rate := 0.14
	if source == model.SourceGoogle || source == model.SourceMeta {
		rate += 0.04
	}
	if channel == model.ChannelBranch {
		rate -= 0.05
	}
	if source == model.SourceSEO || source == model.SourceBranchReferral {
		rate -= 0.03
	}
	if rate < 0.04 {
		rate = 0.04
	}
	if rate > 0.24 {
		rate = 0.24
	}
	return rate
}

// leadRate derives the click-to-lead conversion rate, capped at 0.55.
func leadRate(source model.Source, channel model.Channel) float64 {
	rate := 0.24
	if source == model.SourceEmail {
		rate += 0.10
	}
	if source == model.SourceBranchReferral {
		rate += 0.12
	}
	if channel == model.ChannelBranch {
		rate += 0.08
	}
	if rate > 0.55 {
		rate = 0.55
	}
	return rate
}

func costFor(source model.Source, cost decimal.Decimal) decimal.NullDecimal {
	if !source.Paid() {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Valid: true, Decimal: cost}
}
