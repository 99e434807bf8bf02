package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"deskflow/internal/cascade"
	"deskflow/internal/cascade/metrics"
	"deskflow/internal/platform/config"
	dErrors "deskflow/pkg/domain-errors"
	"deskflow/pkg/platform/sentinel"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// RowSource loads the flat file-distribution rows of one school.
type RowSource interface {
	ListRows(ctx context.Context, schoolID int64, formType string) ([]cascade.FlatRow, error)
}

// Cache stores rendered cascades. Get returns sentinel.ErrNotFound on a miss.
type Cache interface {
	Get(ctx context.Context, schoolID int64, formType string) ([]cascade.Division, error)
	Set(ctx context.Context, schoolID int64, formType string, tree []cascade.Division) error
}

// Service builds the order cascade dashboard of a school.
type Service struct {
	rows            RowSource
	cache           Cache
	logger          *slog.Logger
	metrics         *metrics.Metrics
	tracer          trace.Tracer
	defaultFormType string
}

type Option func(s *Service)

func WithCache(cache Cache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// WithDefaultFormType overrides the form type used when callers pass none.
func WithDefaultFormType(formType string) Option {
	return func(s *Service) {
		if formType = strings.TrimSpace(formType); formType != "" {
			s.defaultFormType = strings.ToUpper(formType)
		}
	}
}

// New constructs a Service.
func New(rows RowSource, opts ...Option) (*Service, error) {
	if rows == nil {
		return nil, errors.New("row source is required")
	}
	s := &Service{
		rows:            rows,
		logger:          slog.New(slog.DiscardHandler),
		tracer:          otel.Tracer("deskflow/internal/cascade/service"),
		defaultFormType: config.DefaultFormType,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SchoolCascade returns the division → product → date → file report for
// schoolID, restricted to order forms of formType (case-insensitive, blank
// selects the default). Errors carry domain codes:
//   - CodeBadRequest: schoolID is not positive; no rows are loaded
//   - CodeUnavailable / CodeTimeout: the row source failed
//   - CodeInvalidInput: a loaded row could not be normalized
//
// A school without matching rows yields an empty, non-nil slice.
func (s *Service) SchoolCascade(ctx context.Context, schoolID int64, formType string) ([]cascade.Division, error) {
	if schoolID <= 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "escola_id must be greater than zero")
	}
	formType = s.resolveFormType(formType)

	ctx, span := s.tracer.Start(ctx, "cascade.SchoolCascade", trace.WithAttributes(
		attribute.Int64("escola_id", schoolID),
		attribute.String("tipo_formulario", formType),
	))
	defer span.End()

	if tree, ok := s.fromCache(ctx, schoolID, formType); ok {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return tree, nil
	}

	start := time.Now()
	rows, err := s.rows.ListRows(ctx, schoolID, formType)
	s.metrics.ObserveLoadRows(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load rows")
		s.logger.ErrorContext(ctx, "failed to load cascade rows",
			"escola_id", schoolID,
			"tipo_formulario", formType,
			"error", err,
		)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "loading order rows timed out")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to load order rows")
	}

	start = time.Now()
	tree, err := cascade.Aggregate(rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "aggregate")
		s.metrics.IncrementInvalidInput()
		s.logger.ErrorContext(ctx, "malformed cascade rows",
			"escola_id", schoolID,
			"tipo_formulario", formType,
			"rows", len(rows),
			"error", err,
		)
		return nil, err
	}
	s.metrics.ObserveAggregate(start, len(rows))
	span.SetAttributes(attribute.Int("rows", len(rows)), attribute.Int("divisions", len(tree)))

	if len(tree) == 0 {
		s.logger.WarnContext(ctx, "no cascade rows for school",
			"escola_id", schoolID,
			"tipo_formulario", formType,
		)
	} else {
		s.logger.InfoContext(ctx, "cascade built",
			"escola_id", schoolID,
			"tipo_formulario", formType,
			"rows", len(rows),
			"divisions", len(tree),
		)
	}

	s.toCache(ctx, schoolID, formType, tree)
	return tree, nil
}

func (s *Service) resolveFormType(formType string) string {
	formType = strings.TrimSpace(formType)
	if formType == "" {
		return s.defaultFormType
	}
	return strings.ToUpper(formType)
}

// fromCache never fails the request: cache errors degrade to a miss.
func (s *Service) fromCache(ctx context.Context, schoolID int64, formType string) ([]cascade.Division, bool) {
	if s.cache == nil {
		return nil, false
	}
	tree, err := s.cache.Get(ctx, schoolID, formType)
	switch {
	case err == nil:
		s.metrics.IncrementCache("hit")
		return tree, true
	case errors.Is(err, sentinel.ErrNotFound):
		s.metrics.IncrementCache("miss")
	default:
		s.metrics.IncrementCache("error")
		s.logger.WarnContext(ctx, "cascade cache read failed",
			"escola_id", schoolID,
			"error", err,
		)
	}
	return nil, false
}

func (s *Service) toCache(ctx context.Context, schoolID int64, formType string, tree []cascade.Division) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, schoolID, formType, tree); err != nil {
		s.logger.WarnContext(ctx, "cascade cache write failed",
			"escola_id", schoolID,
			"error", err,
		)
	}
}
