// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/vc-tracker/internal/logger"
	"github.com/MKhiriev/vc-tracker/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		code   string
		want   string
	}{
		{name: "whole amount", amount: decimal.NewFromInt(1500), code: "USD", want: "$1,500.00"},
		{name: "cents", amount: decimal.RequireFromString("2500.5"), code: "USD", want: "$2,500.50"},
		{name: "zero", amount: decimal.Zero, code: "USD", want: "$0.00"},
		{name: "unknown currency", amount: decimal.RequireFromString("12.5"), code: "ZZZ", want: "12.50 ZZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMoney(tt.amount, tt.code))
		})
	}
}

func TestFormatMoney_Negative(t *testing.T) {
	got := formatMoney(decimal.NewFromInt(-9500), "USD")

	assert.True(t, len(got) > 0 && got[0] == '-', "got %q", got)
	assert.Contains(t, got, "$9,500.00")
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "5.00%", formatRate(decimal.NewFromInt(5)))
	assert.Equal(t, "13.75%", formatRate(decimal.RequireFromString("13.75")))
}

func TestPrintRecords_Empty(t *testing.T) {
	out := &bytes.Buffer{}
	env := &Env{Out: out, Currency: "USD", Logger: logger.Nop()}

	env.printRecords(nil)

	assert.Contains(t, out.String(), "No records yet")
}

func TestPrintRecord_CommitteeFields(t *testing.T) {
	out := &bytes.Buffer{}
	env := &Env{Out: out, Currency: "USD", Logger: logger.Nop()}

	env.printRecord(models.VCRecord{
		ID:              "r1",
		Name:            "Office committee",
		PrincipalAmount: decimal.NewFromInt(10000),
		InterestRate:    decimal.NewFromInt(5),
		StartDate:       models.MustParseDate("2023-01-01"),
		NumMembers:      10,
		CurrentMonth:    2,
		MonthsLeft:      8,
		IsActive:        true,
		Payments: []models.Payment{
			{ID: "p1", Amount: decimal.NewFromInt(900), Date: models.MustParseDate("2023-02-01"), Note: "first"},
		},
	})

	s := out.String()
	assert.Contains(t, s, "Office committee")
	assert.Contains(t, s, "$10,000.00")
	assert.Contains(t, s, "Members:")
	assert.Contains(t, s, "first")
	assert.Contains(t, s, "$900.00")
}

func TestPrintMetrics_WithoutMembersHidesSavings(t *testing.T) {
	out := &bytes.Buffer{}
	env := &Env{Out: out, Currency: "USD", Logger: logger.Nop()}

	env.printMetrics(models.RecordMetrics{
		RecordID: "r1",
		AsOf:     models.MustParseDate("2024-01-01"),
		Interest: decimal.NewFromInt(500),
		Profit:   decimal.NewFromInt(1500),
	})

	s := out.String()
	assert.Contains(t, s, "$500.00")
	assert.Contains(t, s, "$1,500.00")
	assert.NotContains(t, s, "Savings")
	assert.NotContains(t, s, "Installments")
}
