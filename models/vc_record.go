// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

func init() {
	// amounts and rates are written as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// VCRecord is a tracked venture-capital investment (a "VC" committee entry)
// owned by exactly one user.
type VCRecord struct {
	// ID is unique within the owning user's record list.
	ID string `json:"id"`

	// Name is the human-readable label of the VC.
	Name string `json:"name"`

	// PrincipalAmount is the amount originally invested. Payments do not
	// reduce it.
	PrincipalAmount decimal.Decimal `json:"principal_amount"`

	// InterestRate is the annual simple interest rate, in percent.
	InterestRate decimal.Decimal `json:"interest_rate"`

	// StartDate is the day interest starts accruing.
	StartDate Date `json:"start_date"`

	// NumMembers is the number of members sharing the committee. Zero when
	// not tracked.
	NumMembers int `json:"num_members,omitempty"`

	// CurrentMonth is the committee's current installment number ("VC No").
	CurrentMonth int `json:"current_month,omitempty"`

	// MonthsLeft is the number of installments still to be paid.
	MonthsLeft int `json:"months_left,omitempty"`

	// IsActive marks a committee that is still running.
	IsActive bool `json:"is_active,omitempty"`

	// Payments is the ordered payment history.
	Payments []Payment `json:"payments"`
}

// FindPayment returns the index of the payment with the given id, or -1.
func (r VCRecord) FindPayment(id string) int {
	for i, p := range r.Payments {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// TotalPaid sums the amounts of all payments.
func (r VCRecord) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range r.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Payment is a single cash movement received for a record.
type Payment struct {
	// ID is unique within the owning record.
	ID string `json:"id"`

	Amount decimal.Decimal `json:"amount"`
	Date   Date            `json:"date"`
	Note   string          `json:"note,omitempty"`
}

// NewRecord is the input of VCService.AddRecord.
type NewRecord struct {
	Name            string          `json:"name"`
	PrincipalAmount decimal.Decimal `json:"principal_amount"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	StartDate       Date            `json:"start_date"`
	NumMembers      int             `json:"num_members,omitempty"`
	CurrentMonth    int             `json:"current_month,omitempty"`
	MonthsLeft      int             `json:"months_left,omitempty"`
	IsActive        bool            `json:"is_active,omitempty"`
}

// RecordUpdate describes a partial update of a record.
// Only non-nil fields are applied.
type RecordUpdate struct {
	Name            *string          `json:"name,omitempty"`
	PrincipalAmount *decimal.Decimal `json:"principal_amount,omitempty"`
	InterestRate    *decimal.Decimal `json:"interest_rate,omitempty"`
	StartDate       *Date            `json:"start_date,omitempty"`
	NumMembers      *int             `json:"num_members,omitempty"`
	CurrentMonth    *int             `json:"current_month,omitempty"`
	MonthsLeft      *int             `json:"months_left,omitempty"`
	IsActive        *bool            `json:"is_active,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u RecordUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.PrincipalAmount == nil &&
		u.InterestRate == nil &&
		u.StartDate == nil &&
		u.NumMembers == nil &&
		u.CurrentMonth == nil &&
		u.MonthsLeft == nil &&
		u.IsActive == nil
}

// Apply copies every non-nil field of u onto r.
func (u RecordUpdate) Apply(r *VCRecord) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.PrincipalAmount != nil {
		r.PrincipalAmount = *u.PrincipalAmount
	}
	if u.InterestRate != nil {
		r.InterestRate = *u.InterestRate
	}
	if u.StartDate != nil {
		r.StartDate = *u.StartDate
	}
	if u.NumMembers != nil {
		r.NumMembers = *u.NumMembers
	}
	if u.CurrentMonth != nil {
		r.CurrentMonth = *u.CurrentMonth
	}
	if u.MonthsLeft != nil {
		r.MonthsLeft = *u.MonthsLeft
	}
	if u.IsActive != nil {
		r.IsActive = *u.IsActive
	}
}

// NewPayment is the input of VCService.AddPayment.
type NewPayment struct {
	Amount decimal.Decimal `json:"amount"`
	Date   Date            `json:"date"`
	Note   string          `json:"note,omitempty"`
}
