// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for talking to the
// vc-tracker server.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/vc-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vc-tracker
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates the account. On success the server logs the user in
	// and the returned bearer token is stored via SetToken.
	Register(ctx context.Context, credentials models.Credentials) error

	// Login authenticates the user and stores the returned bearer token via
	// SetToken.
	Login(ctx context.Context, credentials models.Credentials) error

	// Session reports which user the stored token belongs to.
	Session(ctx context.Context) (models.Session, error)

	ListRecords(ctx context.Context) ([]models.VCRecord, error)
	GetRecord(ctx context.Context, recordID string) (models.VCRecord, error)
	AddRecord(ctx context.Context, record models.NewRecord) (models.VCRecord, error)
	EditRecord(ctx context.Context, recordID string, update models.RecordUpdate) (models.VCRecord, error)
	DeleteRecord(ctx context.Context, recordID string) error

	AddPayment(ctx context.Context, recordID string, payment models.NewPayment) (models.Payment, error)
	DeletePayment(ctx context.Context, recordID, paymentID string) error

	// Metrics fetches the derived figures of a record. A zero asOf lets the
	// server use its current date.
	Metrics(ctx context.Context, recordID string, asOf models.Date) (models.RecordMetrics, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
