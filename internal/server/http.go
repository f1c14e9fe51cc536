// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/AccelByte/extend-landing-promo/pkg/handler"
	"github.com/AccelByte/extend-landing-promo/pkg/page"

	"github.com/sirupsen/logrus"
)

// APIServer serves the page state over HTTP.
type APIServer struct {
	server    *http.Server
	port      int
	doc       *page.Document
	countdown handler.CountdownSource
	health    handler.HealthSource
}

// NewAPIServer creates a new HTTP API server instance.
func NewAPIServer(port int, doc *page.Document, cd handler.CountdownSource, health handler.HealthSource) *APIServer {
	return &APIServer{
		port:      port,
		doc:       doc,
		countdown: cd,
		health:    health,
	}
}

// Setup builds the router.
func (s *APIServer) Setup() error {
	router := handler.NewRouter(s.doc, s.countdown, s.health)

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return nil
}

// Start begins serving the API on the configured port.
func (s *APIServer) Start(ctx context.Context) error {
	go func() {
		logrus.Infof("HTTP API listening on port %d", s.port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP API server failed: %v", err)
		}
	}()
	return nil
}

// Shutdown gracefully stops the API server.
func (s *APIServer) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down HTTP API server...")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("HTTP API server stopped")
	return nil
}
