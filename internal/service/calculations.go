// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/vc-tracker/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Rounding of the figures reported by Metrics.
const (
	moneyPlaces = 2
	yearsPlaces = 4
)

// YearsBetween returns the continuous number of years from start to asOf:
// the whole anniversaries of start plus the elapsed share of the current
// anniversary year, measured in days. It is zero when asOf is before start.
//
// A start date of Feb 29 has its anniversaries on Mar 1 of non-leap years.
func YearsBetween(start, asOf models.Date) decimal.Decimal {
	if !asOf.After(start) {
		return decimal.Zero
	}

	whole := asOf.Year() - start.Year()
	if start.AddYears(whole).After(asOf) {
		whole--
	}

	last := start.AddYears(whole)
	next := start.AddYears(whole + 1)

	elapsed := decimal.NewFromInt(int64(last.DaysUntil(asOf)))
	yearLength := decimal.NewFromInt(int64(last.DaysUntil(next)))

	return decimal.NewFromInt(int64(whole)).Add(elapsed.Div(yearLength))
}

// ComputeInterest returns the simple interest accrued by record at asOf:
// principal * rate / 100 * years.
func ComputeInterest(record models.VCRecord, asOf models.Date) decimal.Decimal {
	years := YearsBetween(record.StartDate, asOf)
	return record.PrincipalAmount.Mul(record.InterestRate).Div(hundred).Mul(years)
}

// ComputeProfit returns sum(payments) + interest - principal. It is negative
// until payments and interest together exceed the principal.
func ComputeProfit(record models.VCRecord, asOf models.Date) decimal.Decimal {
	return record.TotalPaid().Add(ComputeInterest(record, asOf)).Sub(record.PrincipalAmount)
}

// computeMetrics assembles every figure derived from record at asOf.
func computeMetrics(record models.VCRecord, asOf models.Date) models.RecordMetrics {
	totalPaid := record.TotalPaid()
	savings := record.PrincipalAmount.Sub(totalPaid)

	metrics := models.RecordMetrics{
		RecordID:            record.ID,
		AsOf:                asOf,
		YearsElapsed:        YearsBetween(record.StartDate, asOf).Round(yearsPlaces),
		Interest:            ComputeInterest(record, asOf).Round(moneyPlaces),
		Profit:              ComputeProfit(record, asOf).Round(moneyPlaces),
		TotalPaid:           totalPaid,
		PaymentCount:        len(record.Payments),
		ExpectedInstallment: expectedInstallment(record).Round(moneyPlaces),
		Savings:             savings,
		SavingsPercentage:   decimal.Zero,
		MonthlySavings:      decimal.Zero,
		History:             paymentHistory(record),
	}

	if record.PrincipalAmount.IsPositive() {
		metrics.SavingsPercentage = savings.Div(record.PrincipalAmount).Mul(hundred).Round(moneyPlaces)
	}
	if n := len(record.Payments); n > 0 {
		metrics.MonthlySavings = savings.Div(decimal.NewFromInt(int64(n))).Round(moneyPlaces)
	}

	return metrics
}

// expectedInstallment is the share of the principal each member pays per
// month, zero when the committee size is not tracked.
func expectedInstallment(record models.VCRecord) decimal.Decimal {
	if record.NumMembers <= 0 {
		return decimal.Zero
	}
	return record.PrincipalAmount.Div(decimal.NewFromInt(int64(record.NumMembers)))
}

// paymentHistory builds one row per payment, in payment order. The implied
// rate of row i divides its amount by what is left of the principal once
// the first i payments (this one included) are deducted.
func paymentHistory(record models.VCRecord) []models.InstallmentRow {
	expected := expectedInstallment(record)
	rows := make([]models.InstallmentRow, 0, len(record.Payments))

	paidSoFar := decimal.Zero
	for i, p := range record.Payments {
		paidSoFar = paidSoFar.Add(p.Amount)

		row := models.InstallmentRow{
			Month:       i + 1,
			Date:        p.Date,
			Expected:    expected.Round(moneyPlaces),
			Actual:      p.Amount,
			Saving:      decimal.Zero,
			ImpliedRate: decimal.Zero,
		}
		if record.NumMembers > 0 {
			row.Saving = expected.Sub(p.Amount).Round(moneyPlaces)
		}
		if remaining := record.PrincipalAmount.Sub(paidSoFar); !remaining.IsZero() {
			row.ImpliedRate = p.Amount.Div(remaining).Mul(hundred).Round(moneyPlaces)
		}

		rows = append(rows, row)
	}

	return rows
}
