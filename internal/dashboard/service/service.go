package service

import (
	"context"
	"errors"
	"log/slog"

	"deskflow/internal/dashboard"
	dErrors "deskflow/pkg/domain-errors"
	"deskflow/pkg/platform/strings"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store

// Store reads the schools listing. formTypes is upper-cased; empty means all.
type Store interface {
	ListSchools(ctx context.Context, formTypes []string) ([]dashboard.School, error)
}

// Service serves the schools-with-orders dashboard.
type Service struct {
	store  Store
	logger *slog.Logger
}

func New(store Store, logger *slog.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, logger: logger}, nil
}

// Schools lists the schools with at least one order form, optionally
// restricted to the given form types (case-insensitive).
func (s *Service) Schools(ctx context.Context, formTypes []string) (dashboard.Listing, error) {
	formTypes = strings.DedupeAndTrimUpper(formTypes)

	schools, err := s.store.ListSchools(ctx, formTypes)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list schools with orders",
			"tipo_formulario", formTypes,
			"error", err,
		)
		return dashboard.Listing{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to list schools")
	}

	s.logger.InfoContext(ctx, "listed schools with orders", "total_escolas", len(schools))
	return dashboard.NewListing(schools), nil
}
