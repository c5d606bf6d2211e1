// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/vc-tracker/models"
	"github.com/shopspring/decimal"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName            = "name"
	FieldPrincipalAmount = "principal_amount"
	FieldInterestRate    = "interest_rate"
	FieldStartDate       = "start_date"
	FieldCounters        = "counters"

	FieldAmount = "amount"
	FieldDate   = "date"
	FieldNote   = "note"
)

// MaxNoteLength bounds a payment note, in bytes.
const MaxNoteLength = 500

// VCRecordValidator implements the Validator interface for the inputs of
// record and payment operations: NewRecord, RecordUpdate and NewPayment.
// Both value and pointer forms are accepted.
type VCRecordValidator struct {
}

// NewVCRecordValidator constructs a new VCRecordValidator
// and returns it as the Validator interface.
func NewVCRecordValidator() Validator {
	return &VCRecordValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *VCRecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewRecord:
		return v.validateNewRecord(ctx, value, fields...)
	case *models.NewRecord:
		return v.validateNewRecord(ctx, *value, fields...)

	case models.RecordUpdate:
		return v.validateRecordUpdate(ctx, value, fields...)
	case *models.RecordUpdate:
		return v.validateRecordUpdate(ctx, *value, fields...)

	case models.NewPayment:
		return v.validateNewPayment(ctx, value, fields...)
	case *models.NewPayment:
		return v.validateNewPayment(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateNewRecord validates every field of a record being created.
func (v *VCRecordValidator) validateNewRecord(_ context.Context, r models.NewRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPrincipalAmount, FieldInterestRate, FieldStartDate, FieldCounters}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = validateName(r.Name)
		case FieldPrincipalAmount:
			err = validatePrincipal(r.PrincipalAmount)
		case FieldInterestRate:
			err = validateInterestRate(r.InterestRate)
		case FieldStartDate:
			err = validateStartDate(r.StartDate)
		case FieldCounters:
			err = validateCounters(r.NumMembers, r.CurrentMonth, r.MonthsLeft)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateRecordUpdate requires at least one field and applies the creation
// rules to every field that is present.
func (v *VCRecordValidator) validateRecordUpdate(_ context.Context, u models.RecordUpdate, _ ...string) error {
	if u.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	if u.Name != nil {
		if err := validateName(*u.Name); err != nil {
			return err
		}
	}
	if u.PrincipalAmount != nil {
		if err := validatePrincipal(*u.PrincipalAmount); err != nil {
			return err
		}
	}
	if u.InterestRate != nil {
		if err := validateInterestRate(*u.InterestRate); err != nil {
			return err
		}
	}
	if u.StartDate != nil {
		if err := validateStartDate(*u.StartDate); err != nil {
			return err
		}
	}

	for _, counter := range []*int{u.NumMembers, u.CurrentMonth, u.MonthsLeft} {
		if counter != nil && *counter < 0 {
			return ErrNegativeCount
		}
	}

	return nil
}

func (v *VCRecordValidator) validateNewPayment(_ context.Context, p models.NewPayment, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAmount, FieldDate, FieldNote}
	}

	for _, f := range fields {
		switch f {
		case FieldAmount:
			if !p.Amount.IsPositive() {
				return ErrInvalidAmount
			}
		case FieldDate:
			if p.Date.IsZero() {
				return ErrEmptyPaymentDate
			}
		case FieldNote:
			if len(p.Note) > MaxNoteLength {
				return fmt.Errorf("%w: want at most %d bytes", ErrNoteTooLong, MaxNoteLength)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

func validatePrincipal(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidPrincipal
	}
	return nil
}

func validateInterestRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return ErrInvalidInterestRate
	}
	return nil
}

func validateStartDate(d models.Date) error {
	if d.IsZero() {
		return ErrEmptyStartDate
	}
	return nil
}

func validateCounters(counters ...int) error {
	for _, c := range counters {
		if c < 0 {
			return ErrNegativeCount
		}
	}
	return nil
}
