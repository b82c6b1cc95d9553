package generator

import (
	"math/rand"
	"time"

	"github.com/ClaudiaCodeLab/DemoMB/model"
	"github.com/shopspring/decimal"
)

// Account opening probabilities, walk-in vs lead-driven.
const (
	walkInAccountRate    = 0.06
	leadAccountRate      = 0.68
	affluentAccountBoost = 0.05
)

func (s *Service) generateProduct(out RecordSink, sum *Summary) error {
	if err := out.Write(model.ProductEventHeader()); err != nil {
		return err
	}

	for _, customer := range s.customers {
		if err := s.productForCustomer(out, customer, sum); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) productForCustomer(out RecordSink, customer model.Customer, sum *Summary) error {
	firstLead, hasLead := s.firstLeads[customer.ID]
	affluent := customer.Segment == model.SegmentAffluent

	pAccount := walkInAccountRate
	if hasLead {
		pAccount = leadAccountRate
	}
	if affluent {
		pAccount += affluentAccountBoost
	}

	// No account, no products at all for this customer.
	if s.rng.Float64() >= pAccount {
		return nil
	}

	write := func(ts time.Time, family model.ProductFamily, eventType model.ProductEventType, amount decimal.NullDecimal) error {
		return out.Write(model.ProductEvent{
			EventTS:    ts,
			CustomerID: customer.ID,
			Family:     family,
			Type:       eventType,
			Amount:     amount,
		}.Row())
	}

	var openTS time.Time
	if hasLead {
		openTS = firstLead.LeadTS.
			AddDate(0, 0, randBetween(s.rng, 1, 14)).
			Add(time.Duration(randBetween(s.rng, 0, 12)) * time.Hour)
	} else {
		openTS = customer.CreatedDate.
			AddDate(0, 0, randBetween(s.rng, 0, 30)).
			Add(time.Duration(randBetween(s.rng, 0, 12)) * time.Hour)
	}
	if err := write(openTS, model.ProductAccount, model.ProductEventOpened, decimal.NullDecimal{}); err != nil {
		return err
	}
	sum.Accounts++

	pCard := 0.42
	if affluent {
		pCard = 0.58
	}
	if hasLead && firstLead.Channel == model.ChannelBranch {
		pCard += 0.05
	}
	if s.rng.Float64() < pCard {
		cardTS := openTS.
			AddDate(0, 0, randBetween(s.rng, 0, 20)).
			Add(time.Duration(randBetween(s.rng, 0, 10)) * time.Hour)
		if err := write(cardTS, model.ProductCard, model.ProductEventOpened, decimal.NullDecimal{}); err != nil {
			return err
		}
		sum.Cards++
	}

	pLoanApply := 0.10
	pMortgageApply := 0.02
	if affluent {
		pLoanApply = 0.18
		pMortgageApply = 0.05
	}

	if s.rng.Float64() < pLoanApply {
		appliedTS := openTS.
			AddDate(0, 0, randBetween(s.rng, 7, 60)).
			Add(time.Duration(randBetween(s.rng, 0, 10)) * time.Hour)
		amount := loanAmount(s.rng, affluent)
		if err := write(appliedTS, model.ProductLoan, model.ProductEventApplied, amount); err != nil {
			return err
		}
		sum.LoanApplications++

		pApprove := 0.58
		if affluent {
			pApprove = 0.72
		}
		if s.rng.Float64() < pApprove {
			approvedTS := appliedTS.
				AddDate(0, 0, randBetween(s.rng, 1, 10)).
				Add(time.Duration(randBetween(s.rng, 0, 6)) * time.Hour)
			if err := write(approvedTS, model.ProductLoan, model.ProductEventApproved, amount); err != nil {
				return err
			}
			sum.LoanApprovals++
		}
	}

	if s.rng.Float64() < pMortgageApply {
		appliedTS := openTS.
			AddDate(0, 0, randBetween(s.rng, 15, 120)).
			Add(time.Duration(randBetween(s.rng, 0, 10)) * time.Hour)
		amount := mortgageAmount(s.rng, affluent)
		if err := write(appliedTS, model.ProductMortgage, model.ProductEventApplied, amount); err != nil {
			return err
		}
		sum.MortgageApplications++

		pApprove := 0.52
		if affluent {
			pApprove = 0.66
		}
		if s.rng.Float64() < pApprove {
			approvedTS := appliedTS.
				AddDate(0, 0, randBetween(s.rng, 3, 15)).
				Add(time.Duration(randBetween(s.rng, 0, 6)) * time.Hour)
			if err := write(approvedTS, model.ProductMortgage, model.ProductEventApproved, amount); err != nil {
				return err
			}
			sum.MortgageApprovals++
		}
	}

	return nil
}

func loanAmount(rng *rand.Rand, affluent bool) decimal.NullDecimal {
	lo, hi := 2000, 25000
	if affluent {
		lo, hi = 5000, 50000
	}
	return uniformAmount(rng, lo, hi)
}

func mortgageAmount(rng *rand.Rand, affluent bool) decimal.NullDecimal {
	lo, hi := 80000, 250000
	if affluent {
		lo, hi = 120000, 500000
	}
	return uniformAmount(rng, lo, hi)
}

func uniformAmount(rng *rand.Rand, lo int, hi int) decimal.NullDecimal {
	return decimal.NullDecimal{
		Valid:   true,
		Decimal: decimal.NewFromInt(int64(randBetween(rng, lo, hi))),
	}
}
