// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/vc-tracker/internal/config"
	"github.com/MKhiriev/vc-tracker/internal/logger"
	"github.com/MKhiriev/vc-tracker/internal/service"
	"github.com/MKhiriev/vc-tracker/internal/utils"
	"github.com/MKhiriev/vc-tracker/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (string, error)
	createTokenFn  func(ctx context.Context, username string) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.registerUserFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, username string) (models.Token, error) {
	return m.createTokenFn(ctx, username)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock VCService
// ─────────────────────────────────────────────

type mockVCService struct {
	listRecordsFn   func(ctx context.Context, username string) ([]models.VCRecord, error)
	getRecordFn     func(ctx context.Context, username, recordID string) (models.VCRecord, error)
	addRecordFn     func(ctx context.Context, username string, record models.NewRecord) (models.VCRecord, error)
	editRecordFn    func(ctx context.Context, username, recordID string, update models.RecordUpdate) (models.VCRecord, error)
	deleteRecordFn  func(ctx context.Context, username, recordID string) error
	addPaymentFn    func(ctx context.Context, username, recordID string, payment models.NewPayment) (models.Payment, error)
	deletePaymentFn func(ctx context.Context, username, recordID, paymentID string) error
	metricsFn       func(ctx context.Context, username, recordID string, asOf models.Date) (models.RecordMetrics, error)
}

func (m *mockVCService) ListRecords(ctx context.Context, username string) ([]models.VCRecord, error) {
	return m.listRecordsFn(ctx, username)
}

func (m *mockVCService) GetRecord(ctx context.Context, username, recordID string) (models.VCRecord, error) {
	return m.getRecordFn(ctx, username, recordID)
}

func (m *mockVCService) AddRecord(ctx context.Context, username string, record models.NewRecord) (models.VCRecord, error) {
	return m.addRecordFn(ctx, username, record)
}

func (m *mockVCService) EditRecord(ctx context.Context, username, recordID string, update models.RecordUpdate) (models.VCRecord, error) {
	return m.editRecordFn(ctx, username, recordID, update)
}

func (m *mockVCService) DeleteRecord(ctx context.Context, username, recordID string) error {
	return m.deleteRecordFn(ctx, username, recordID)
}

func (m *mockVCService) AddPayment(ctx context.Context, username, recordID string, payment models.NewPayment) (models.Payment, error) {
	return m.addPaymentFn(ctx, username, recordID, payment)
}

func (m *mockVCService) DeletePayment(ctx context.Context, username, recordID, paymentID string) error {
	return m.deletePaymentFn(ctx, username, recordID, paymentID)
}

func (m *mockVCService) Metrics(ctx context.Context, username, recordID string, asOf models.Date) (models.RecordMetrics, error) {
	return m.metricsFn(ctx, username, recordID, asOf)
}

// ─────────────────────────────────────────────
// Mock AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given services with a nop logger
// and no request timeout.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, config.Server{}, logger.Nop())
}

// acceptingAuth returns an AuthService whose ParseToken accepts any token as
// username.
func acceptingAuth(username string) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Username: username}, nil
		},
	}
}

// withSession returns r carrying an authenticated session for username, as
// the auth middleware leaves it.
func withSession(r *http.Request, username string) *http.Request {
	var session models.Session
	session.Login(username)
	return r.WithContext(utils.WithSession(r.Context(), session))
}
