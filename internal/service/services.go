// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/vc-tracker/internal/config"
	"github.com/MKhiriev/vc-tracker/internal/crypto"
	"github.com/MKhiriev/vc-tracker/internal/logger"
	"github.com/MKhiriev/vc-tracker/internal/store"
	"github.com/MKhiriev/vc-tracker/internal/utils"
)

type Services struct {
	AuthService    AuthService
	VCService      VCService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	hasher := crypto.NewBcryptHasher(cfg.App.BcryptCost)
	vcService := NewVCService(storages.UserStore, utils.NewUUIDGenerator(), logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserStore, hasher, cfg.App, logger),
		VCService:      NewVCValidationService().Wrap(vcService),
		AppInfoService: appInfoService,
	}, nil
}
