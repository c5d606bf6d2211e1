// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/vc-tracker/internal/logger"
	"github.com/MKhiriev/vc-tracker/internal/store"
	"github.com/MKhiriev/vc-tracker/models"
)

// vcService is the concrete implementation of VCService. Input validation
// is done by the wrapper from NewVCValidationService.
type vcService struct {
	userStore store.UserStore
	ids       IDGenerator

	logger *logger.Logger
}

// NewVCService constructs a VCService over userStore. ids provides record and
// payment identifiers.
func NewVCService(userStore store.UserStore, ids IDGenerator, logger *logger.Logger) VCService {
	return &vcService{
		userStore: userStore,
		ids:       ids,
		logger:    logger,
	}
}

// ListRecords returns the user's records in insertion order.
func (s *vcService) ListRecords(ctx context.Context, username string) ([]models.VCRecord, error) {
	_, user, err := s.loadUser(ctx, username)
	if err != nil {
		return nil, err
	}

	return user.VCRecords, nil
}

// GetRecord returns a single record, or ErrNotFound.
func (s *vcService) GetRecord(ctx context.Context, username, recordID string) (models.VCRecord, error) {
	_, user, err := s.loadUser(ctx, username)
	if err != nil {
		return models.VCRecord{}, err
	}

	i := user.FindRecord(recordID)
	if i < 0 {
		return models.VCRecord{}, recordNotFound(recordID)
	}

	return user.VCRecords[i], nil
}

// AddRecord appends a new record with a fresh id and no payments.
func (s *vcService) AddRecord(ctx context.Context, username string, newRecord models.NewRecord) (models.VCRecord, error) {
	users, user, err := s.loadUser(ctx, username)
	if err != nil {
		return models.VCRecord{}, err
	}

	record := models.VCRecord{
		ID:              s.uniqueID(func(id string) bool { return user.FindRecord(id) >= 0 }),
		Name:            newRecord.Name,
		PrincipalAmount: newRecord.PrincipalAmount,
		InterestRate:    newRecord.InterestRate,
		StartDate:       newRecord.StartDate,
		NumMembers:      newRecord.NumMembers,
		CurrentMonth:    newRecord.CurrentMonth,
		MonthsLeft:      newRecord.MonthsLeft,
		IsActive:        newRecord.IsActive,
		Payments:        []models.Payment{},
	}
	user.VCRecords = append(user.VCRecords, record)

	if err = s.save(ctx, users, user); err != nil {
		return models.VCRecord{}, err
	}

	logger.FromContext(ctx).Info().
		Str("username", username).
		Str("record_id", record.ID).
		Msg("record added")
	return record, nil
}

// EditRecord applies the non-nil fields of update to the record.
func (s *vcService) EditRecord(ctx context.Context, username, recordID string, update models.RecordUpdate) (models.VCRecord, error) {
	users, user, err := s.loadUser(ctx, username)
	if err != nil {
		return models.VCRecord{}, err
	}

	i := user.FindRecord(recordID)
	if i < 0 {
		return models.VCRecord{}, recordNotFound(recordID)
	}

	update.Apply(&user.VCRecords[i])

	if err = s.save(ctx, users, user); err != nil {
		return models.VCRecord{}, err
	}

	return user.VCRecords[i], nil
}

// DeleteRecord removes the record. An unknown id leaves the list unchanged
// and returns ErrNotFound.
func (s *vcService) DeleteRecord(ctx context.Context, username, recordID string) error {
	users, user, err := s.loadUser(ctx, username)
	if err != nil {
		return err
	}

	i := user.FindRecord(recordID)
	if i < 0 {
		return recordNotFound(recordID)
	}

	user.VCRecords = slices.Delete(user.VCRecords, i, i+1)

	if err = s.save(ctx, users, user); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("username", username).
		Str("record_id", recordID).
		Msg("record deleted")
	return nil
}

// AddPayment appends a payment to the record. For an active committee it
// also moves to the next installment: current_month goes up by one and
// months_left goes down by one, never below zero.
func (s *vcService) AddPayment(ctx context.Context, username, recordID string, newPayment models.NewPayment) (models.Payment, error) {
	users, user, err := s.loadUser(ctx, username)
	if err != nil {
		return models.Payment{}, err
	}

	i := user.FindRecord(recordID)
	if i < 0 {
		return models.Payment{}, recordNotFound(recordID)
	}
	record := &user.VCRecords[i]

	payment := models.Payment{
		ID:     s.uniqueID(func(id string) bool { return record.FindPayment(id) >= 0 }),
		Amount: newPayment.Amount,
		Date:   newPayment.Date,
		Note:   newPayment.Note,
	}
	record.Payments = append(record.Payments, payment)

	if record.IsActive {
		record.CurrentMonth++
		record.MonthsLeft = max(record.MonthsLeft-1, 0)
	}

	if err = s.save(ctx, users, user); err != nil {
		return models.Payment{}, err
	}

	return payment, nil
}

// DeletePayment removes a single payment from the record. The committee
// counters are left as they are.
func (s *vcService) DeletePayment(ctx context.Context, username, recordID, paymentID string) error {
	users, user, err := s.loadUser(ctx, username)
	if err != nil {
		return err
	}

	i := user.FindRecord(recordID)
	if i < 0 {
		return recordNotFound(recordID)
	}
	record := &user.VCRecords[i]

	j := record.FindPayment(paymentID)
	if j < 0 {
		return fmt.Errorf("%w: payment %q", ErrNotFound, paymentID)
	}

	record.Payments = slices.Delete(record.Payments, j, j+1)

	return s.save(ctx, users, user)
}

// Metrics computes the derived figures of a record. Nothing is persisted.
func (s *vcService) Metrics(ctx context.Context, username, recordID string, asOf models.Date) (models.RecordMetrics, error) {
	record, err := s.GetRecord(ctx, username, recordID)
	if err != nil {
		return models.RecordMetrics{}, err
	}

	return computeMetrics(record, asOf), nil
}

// loadUser loads the document and returns it with the user's entry.
func (s *vcService) loadUser(ctx context.Context, username string) (models.Users, models.User, error) {
	users, err := s.userStore.Load(ctx)
	if err != nil {
		return nil, models.User{}, fmt.Errorf("error loading users: %w", err)
	}

	user, ok := users[username]
	if !ok {
		logger.FromContext(ctx).Warn().Str("username", username).Msg("session user is not in the users document")
		return nil, models.User{}, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}

	return users, user, nil
}

// save writes user back into users and persists the document.
func (s *vcService) save(ctx context.Context, users models.Users, user models.User) error {
	users[user.Username] = user

	if err := s.userStore.Save(ctx, users); err != nil {
		return fmt.Errorf("error saving users: %w", err)
	}

	return nil
}

// uniqueID draws ids until taken reports a free one.
func (s *vcService) uniqueID(taken func(string) bool) string {
	id := s.ids.Generate()
	for taken(id) {
		id = s.ids.Generate()
	}
	return id
}

func recordNotFound(recordID string) error {
	return fmt.Errorf("%w: record %q", ErrNotFound, recordID)
}
