// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MKhiriev/vc-tracker/models"
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatMoney renders amount in the currency with ISO 4217 code, e.g.
// "$1,500.00". Unknown codes fall back to "<amount> <code>".
func formatMoney(amount decimal.Decimal, code string) string {
	currency := money.GetCurrency(code)
	if currency == nil {
		return amount.StringFixed(2) + " " + code
	}

	minor := amount.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minor, currency.Code).Display()
}

func formatRate(rate decimal.Decimal) string {
	return rate.StringFixed(2) + "%"
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func (e *Env) money(amount decimal.Decimal) string {
	return formatMoney(amount, e.Currency)
}

func (e *Env) printRecords(records []models.VCRecord) {
	if len(records) == 0 {
		fmt.Fprintln(e.Out, "No records yet. Add one with `add`.")
		return
	}

	tw := newTable(e.Out)
	fmt.Fprintln(tw, "ID\tNAME\tPRINCIPAL\tRATE\tSTART\tPAYMENTS\tPAID")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			r.ID, r.Name, e.money(r.PrincipalAmount), formatRate(r.InterestRate),
			r.StartDate, len(r.Payments), e.money(r.TotalPaid()))
	}
	_ = tw.Flush()
}

func (e *Env) printRecord(r models.VCRecord) {
	tw := newTable(e.Out)
	fmt.Fprintf(tw, "ID:\t%s\n", r.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", r.Name)
	fmt.Fprintf(tw, "Principal:\t%s\n", e.money(r.PrincipalAmount))
	fmt.Fprintf(tw, "Interest rate:\t%s\n", formatRate(r.InterestRate))
	fmt.Fprintf(tw, "Start date:\t%s\n", r.StartDate)
	if r.NumMembers > 0 {
		fmt.Fprintf(tw, "Members:\t%d\n", r.NumMembers)
		fmt.Fprintf(tw, "Current month:\t%d\n", r.CurrentMonth)
		fmt.Fprintf(tw, "Months left:\t%d\n", r.MonthsLeft)
		fmt.Fprintf(tw, "Active:\t%t\n", r.IsActive)
	}
	fmt.Fprintf(tw, "Total paid:\t%s\n", e.money(r.TotalPaid()))
	_ = tw.Flush()

	if len(r.Payments) == 0 {
		fmt.Fprintln(e.Out, "\nNo payments recorded.")
		return
	}

	fmt.Fprintln(e.Out, "\nPayments:")
	tw = newTable(e.Out)
	fmt.Fprintln(tw, "ID\tDATE\tAMOUNT\tNOTE")
	for _, p := range r.Payments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Date, e.money(p.Amount), p.Note)
	}
	_ = tw.Flush()
}

func (e *Env) printMetrics(m models.RecordMetrics) {
	tw := newTable(e.Out)
	fmt.Fprintf(tw, "Record:\t%s\n", m.RecordID)
	fmt.Fprintf(tw, "As of:\t%s\n", m.AsOf)
	fmt.Fprintf(tw, "Years elapsed:\t%s\n", m.YearsElapsed.StringFixed(2))
	fmt.Fprintf(tw, "Interest:\t%s\n", e.money(m.Interest))
	fmt.Fprintf(tw, "Total paid:\t%s (%d payments)\n", e.money(m.TotalPaid), m.PaymentCount)
	fmt.Fprintf(tw, "Profit:\t%s\n", e.money(m.Profit))
	if !m.ExpectedInstallment.IsZero() {
		fmt.Fprintf(tw, "Expected installment:\t%s\n", e.money(m.ExpectedInstallment))
		fmt.Fprintf(tw, "Savings:\t%s (%s)\n", e.money(m.Savings), formatRate(m.SavingsPercentage))
		fmt.Fprintf(tw, "Average monthly savings:\t%s\n", e.money(m.MonthlySavings))
	}
	_ = tw.Flush()

	if len(m.History) == 0 {
		return
	}

	fmt.Fprintln(e.Out, "\nInstallments:")
	tw = newTable(e.Out)
	fmt.Fprintln(tw, "MONTH\tDATE\tEXPECTED\tACTUAL\tSAVING\tIMPLIED RATE")
	for _, row := range m.History {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			row.Month, row.Date, e.money(row.Expected), e.money(row.Actual),
			e.money(row.Saving), formatRate(row.ImpliedRate))
	}
	_ = tw.Flush()
}
