// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// RecordMetrics holds the figures derived from a record at a given date.
// None of them is persisted.
type RecordMetrics struct {
	RecordID string `json:"record_id"`
	AsOf     Date   `json:"as_of"`

	// YearsElapsed is the continuous number of years between the start
	// date and AsOf.
	YearsElapsed decimal.Decimal `json:"years_elapsed"`

	// Interest is the simple interest accrued on the principal.
	Interest decimal.Decimal `json:"interest"`

	// Profit is payments + interest - principal.
	Profit decimal.Decimal `json:"profit"`

	TotalPaid    decimal.Decimal `json:"total_paid"`
	PaymentCount int             `json:"payment_count"`

	// ExpectedInstallment is principal / members, zero when members are
	// not tracked.
	ExpectedInstallment decimal.Decimal `json:"expected_installment"`

	// Savings is principal - total paid.
	Savings decimal.Decimal `json:"savings"`

	// SavingsPercentage is Savings as a percentage of the principal.
	SavingsPercentage decimal.Decimal `json:"savings_percentage"`

	// MonthlySavings is Savings averaged over the number of payments.
	MonthlySavings decimal.Decimal `json:"monthly_savings"`

	History []InstallmentRow `json:"history"`
}

// InstallmentRow is one line of a record's payment history.
type InstallmentRow struct {
	Month    int             `json:"month"`
	Date     Date            `json:"date"`
	Expected decimal.Decimal `json:"expected"`
	Actual   decimal.Decimal `json:"actual"`
	Saving   decimal.Decimal `json:"saving"`

	// ImpliedRate is actual / (principal - payments so far) * 100.
	ImpliedRate decimal.Decimal `json:"implied_rate"`
}
