// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vc-tracker/internal/validators"
	"github.com/MKhiriev/vc-tracker/models"
)

// VCValidationService validates the input of every VCService call before
// passing it to the wrapped service.
type VCValidationService struct {
	inner     VCService
	validator validators.Validator
}

func NewVCValidationService() VCServiceWrapper {
	return &VCValidationService{
		validator: validators.NewVCRecordValidator(),
	}
}

func (v *VCValidationService) Wrap(wrapped VCService) VCService {
	v.inner = wrapped
	return v
}

func (v *VCValidationService) ListRecords(ctx context.Context, username string) ([]models.VCRecord, error) {
	return v.inner.ListRecords(ctx, username)
}

func (v *VCValidationService) GetRecord(ctx context.Context, username, recordID string) (models.VCRecord, error) {
	if recordID == "" {
		return models.VCRecord{}, recordNotFound(recordID)
	}
	return v.inner.GetRecord(ctx, username, recordID)
}

func (v *VCValidationService) AddRecord(ctx context.Context, username string, record models.NewRecord) (models.VCRecord, error) {
	if err := v.validator.Validate(ctx, record); err != nil {
		return models.VCRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.AddRecord(ctx, username, record)
}

func (v *VCValidationService) EditRecord(ctx context.Context, username, recordID string, update models.RecordUpdate) (models.VCRecord, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.VCRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.EditRecord(ctx, username, recordID, update)
}

func (v *VCValidationService) DeleteRecord(ctx context.Context, username, recordID string) error {
	return v.inner.DeleteRecord(ctx, username, recordID)
}

func (v *VCValidationService) AddPayment(ctx context.Context, username, recordID string, payment models.NewPayment) (models.Payment, error) {
	if err := v.validator.Validate(ctx, payment); err != nil {
		return models.Payment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.AddPayment(ctx, username, recordID, payment)
}

func (v *VCValidationService) DeletePayment(ctx context.Context, username, recordID, paymentID string) error {
	return v.inner.DeletePayment(ctx, username, recordID, paymentID)
}

func (v *VCValidationService) Metrics(ctx context.Context, username, recordID string, asOf models.Date) (models.RecordMetrics, error) {
	if asOf.IsZero() {
		return models.RecordMetrics{}, fmt.Errorf("%w: as-of date is required", ErrInvalidDataProvided)
	}
	return v.inner.Metrics(ctx, username, recordID, asOf)
}
