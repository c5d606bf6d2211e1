// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/vc-tracker/internal/config"
	"github.com/MKhiriev/vc-tracker/internal/logger"
	"github.com/MKhiriev/vc-tracker/internal/utils"
	"github.com/MKhiriev/vc-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] over cfg.ServerAddress, with every request bounded by
// cfg.RequestTimeout.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter] with POST /api/user/register.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) error {
	return h.authenticate(ctx, "/api/user/register", credentials)
}

// Login implements [ServerAdapter] with POST /api/user/login.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) error {
	return h.authenticate(ctx, "/api/user/login", credentials)
}

// authenticate posts credentials to path and keeps the bearer token from the
// Authorization response header.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("parse bearer token: %w", err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("username", credentials.Username).Str("path", path).Msg("authenticated")
	return nil
}

// Session implements [ServerAdapter] with GET /api/user/session.
func (h *httpServerAdapter) Session(ctx context.Context) (models.Session, error) {
	var session models.Session
	resp, err := h.authedRequest(ctx).
		SetResult(&session).
		Get("/api/user/session")
	if err = checkResponse("session", resp, err); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// ListRecords implements [ServerAdapter] with GET /api/records.
func (h *httpServerAdapter) ListRecords(ctx context.Context) ([]models.VCRecord, error) {
	var records []models.VCRecord
	resp, err := h.authedRequest(ctx).
		SetResult(&records).
		Get("/api/records")
	if err = checkResponse("list records", resp, err); err != nil {
		return nil, err
	}
	return records, nil
}

// GetRecord implements [ServerAdapter] with GET /api/records/{id}.
func (h *httpServerAdapter) GetRecord(ctx context.Context, recordID string) (models.VCRecord, error) {
	var record models.VCRecord
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", recordID).
		SetResult(&record).
		Get("/api/records/{id}")
	if err = checkResponse("get record", resp, err); err != nil {
		return models.VCRecord{}, err
	}
	return record, nil
}

// AddRecord implements [ServerAdapter] with POST /api/records.
func (h *httpServerAdapter) AddRecord(ctx context.Context, newRecord models.NewRecord) (models.VCRecord, error) {
	var record models.VCRecord
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(newRecord).
		SetResult(&record).
		Post("/api/records")
	if err = checkResponse("add record", resp, err); err != nil {
		return models.VCRecord{}, err
	}
	return record, nil
}

// EditRecord implements [ServerAdapter] with PATCH /api/records/{id}.
func (h *httpServerAdapter) EditRecord(ctx context.Context, recordID string, update models.RecordUpdate) (models.VCRecord, error) {
	var record models.VCRecord
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", recordID).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&record).
		Patch("/api/records/{id}")
	if err = checkResponse("edit record", resp, err); err != nil {
		return models.VCRecord{}, err
	}
	return record, nil
}

// DeleteRecord implements [ServerAdapter] with DELETE /api/records/{id}.
func (h *httpServerAdapter) DeleteRecord(ctx context.Context, recordID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", recordID).
		Delete("/api/records/{id}")
	return checkResponse("delete record", resp, err)
}

// AddPayment implements [ServerAdapter] with POST /api/records/{id}/payments.
func (h *httpServerAdapter) AddPayment(ctx context.Context, recordID string, newPayment models.NewPayment) (models.Payment, error) {
	var payment models.Payment
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", recordID).
		SetHeader("Content-Type", "application/json").
		SetBody(newPayment).
		SetResult(&payment).
		Post("/api/records/{id}/payments")
	if err = checkResponse("add payment", resp, err); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

// DeletePayment implements [ServerAdapter] with
// DELETE /api/records/{id}/payments/{paymentID}.
func (h *httpServerAdapter) DeletePayment(ctx context.Context, recordID, paymentID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"id": recordID, "paymentID": paymentID}).
		Delete("/api/records/{id}/payments/{paymentID}")
	return checkResponse("delete payment", resp, err)
}

// Metrics implements [ServerAdapter] with GET /api/records/{id}/metrics.
func (h *httpServerAdapter) Metrics(ctx context.Context, recordID string, asOf models.Date) (models.RecordMetrics, error) {
	var metrics models.RecordMetrics
	req := h.authedRequest(ctx).
		SetPathParam("id", recordID).
		SetResult(&metrics)
	if !asOf.IsZero() {
		req.SetQueryParam("as_of", asOf.String())
	}

	resp, err := req.Get("/api/records/{id}/metrics")
	if err = checkResponse("metrics", resp, err); err != nil {
		return models.RecordMetrics{}, err
	}
	return metrics, nil
}

// Version implements [ServerAdapter] with GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err = checkResponse("version", resp, err); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

// authedRequest returns a request carrying the stored bearer token.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", utils.BearerHeader(h.Token()))
}

// checkResponse reports a transport failure or a non-2xx answer for op.
func checkResponse(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	return mapHTTPError(resp)
}
