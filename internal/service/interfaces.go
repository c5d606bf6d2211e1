// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of vc-tracker: user registration
// and login, session tokens, and the management of VC records, payments,
// interest and profit.
//
// Every operation follows the load-mutate-save pattern over
// [store.UserStore]. Errors are reported with the sentinels of errors.go
// (plus [store.ErrStorage] passed through), matched with [errors.Is].
package service

import (
	"context"

	"github.com/MKhiriev/vc-tracker/models"
)

// AuthService registers users, checks their credentials and issues the
// tokens that carry a session between requests.
type AuthService interface {
	// RegisterUser creates a user with an empty record list.
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login verifies credentials and returns the authenticated username.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	CreateToken(ctx context.Context, username string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VCService manages the VC records of a single user at a time. The username
// always comes from the caller's authenticated session.
type VCService interface {
	ListRecords(ctx context.Context, username string) ([]models.VCRecord, error)
	GetRecord(ctx context.Context, username, recordID string) (models.VCRecord, error)
	AddRecord(ctx context.Context, username string, record models.NewRecord) (models.VCRecord, error)
	EditRecord(ctx context.Context, username, recordID string, update models.RecordUpdate) (models.VCRecord, error)
	DeleteRecord(ctx context.Context, username, recordID string) error

	AddPayment(ctx context.Context, username, recordID string, payment models.NewPayment) (models.Payment, error)
	DeletePayment(ctx context.Context, username, recordID, paymentID string) error

	// Metrics computes interest, profit and the payment history of a record
	// as of the given date.
	Metrics(ctx context.Context, username, recordID string, asOf models.Date) (models.RecordMetrics, error)
}

// VCServiceWrapper defines middleware composition for VCService.
// Implementations wrap an existing VCService to add behavior such as
// validation.
type VCServiceWrapper interface {
	Wrap(VCService) VCService
}

// AppInfoService reports information about the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator produces unique identifiers for records and payments.
type IDGenerator interface {
	Generate() string
}
