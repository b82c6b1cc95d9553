package generator

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRun_Structural_Ordering(t *testing.T) {
	result := runOnce(t, 2000, 90, 17)

	accountOpened := map[string]time.Time{}
	for _, row := range result.product[1:] {
		if row[2] == "account" && row[3] == "opened" {
			accountOpened[row[1]] = parseEventTS(t, row[0])
		}
	}
	assert.Greater(t, len(accountOpened), 0)

	for _, row := range result.product[1:] {
		if row[2] == "account" {
			continue
		}
		openTS, ok := accountOpened[row[1]]
		assert.Equal(t, true, ok, row)
		assert.Equal(t, false, parseEventTS(t, row[0]).Before(openTS), row)
	}
}

func TestRun_Applied_Before_Approved(t *testing.T) {
	result := runOnce(t, 5000, 90, 9)

	type productKey struct {
		customerID string
		family     string
	}
	applied := map[productKey][]string{}
	for _, row := range result.product[1:] {
		if row[3] == "applied" {
			applied[productKey{row[1], row[2]}] = row
		}
	}

	approvals := 0
	for _, row := range result.product[1:] {
		if row[3] != "approved" {
			continue
		}
		approvals++
		appliedRow, ok := applied[productKey{row[1], row[2]}]
		assert.Equal(t, true, ok, row)
		assert.Equal(t, true, parseEventTS(t, appliedRow[0]).Before(parseEventTS(t, row[0])), row)
		// approval carries the application amount unchanged
		assert.Equal(t, appliedRow[4], row[4], row)
	}
	assert.Greater(t, approvals, 0)
}

func TestRun_Product_Amounts(t *testing.T) {
	result := runOnce(t, 5000, 90, 9)

	segmentByCustomer := map[string]string{}
	for _, row := range result.customers[1:] {
		segmentByCustomer[row[0]] = row[4]
	}

	loans, mortgages := 0, 0
	for _, row := range result.product[1:] {
		family, amountField := row[2], row[4]
		if family == "account" || family == "card" {
			assert.Equal(t, "", amountField, row)
			continue
		}

		amount, err := strconv.Atoi(amountField)
		assert.Equal(t, nil, err, row)

		affluent := segmentByCustomer[row[1]] == "affluent"
		switch family {
		case "loan":
			loans++
			if affluent {
				assert.GreaterOrEqual(t, amount, 5000, row)
				assert.LessOrEqual(t, amount, 50000, row)
			} else {
				assert.GreaterOrEqual(t, amount, 2000, row)
				assert.LessOrEqual(t, amount, 25000, row)
			}
		case "mortgage":
			mortgages++
			if affluent {
				assert.GreaterOrEqual(t, amount, 120000, row)
				assert.LessOrEqual(t, amount, 500000, row)
			} else {
				assert.GreaterOrEqual(t, amount, 80000, row)
				assert.LessOrEqual(t, amount, 250000, row)
			}
		default:
			t.Fatalf("unknown product family %q", family)
		}
	}
	assert.Greater(t, loans, 0)
	assert.Greater(t, mortgages, 0)
}

func TestRun_Lead_Boosts_Account_Rate(t *testing.T) {
	result := runOnce(t, 5000, 90, 4)

	leads := map[string]bool{}
	for _, row := range result.marketing[1:] {
		if row[6] == "lead" {
			leads[row[1]] = true
		}
	}

	withLead, withLeadAccounts := 0, 0
	withoutLead, withoutLeadAccounts := 0, 0
	accounts := map[string]bool{}
	for _, row := range result.product[1:] {
		if row[2] == "account" {
			accounts[row[1]] = true
		}
	}
	for _, row := range result.customers[1:] {
		id := row[0]
		if leads[id] {
			withLead++
			if accounts[id] {
				withLeadAccounts++
			}
		} else {
			withoutLead++
			if accounts[id] {
				withoutLeadAccounts++
			}
		}
	}

	assert.Greater(t, withLead, 0)
	assert.Greater(t, withoutLead, 0)

	rateWithLead := float64(withLeadAccounts) / float64(withLead)
	rateWithoutLead := float64(withoutLeadAccounts) / float64(withoutLead)
	assert.Greater(t, rateWithLead, rateWithoutLead)
	assert.InDelta(t, 0.69, rateWithLead, 0.08)
	assert.InDelta(t, 0.07, rateWithoutLead, 0.04)
}
