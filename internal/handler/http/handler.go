// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server

	// authLimiter throttles /auth per client IP. Nil disables it.
	authLimiter *ipRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
	if cfg.AuthRateLimit > 0 {
		h.authLimiter = newIPRateLimiter(perMinute(cfg.AuthRateLimit), max(cfg.AuthRateBurst, 1))
	}

	logger.Info().Msg("http handler created")
	return h
}
