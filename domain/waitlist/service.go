package waitlist

//go:generate mockgen -source=service.go -destination=mock_service.go -package=waitlist

import (
	"context"
	"strings"

	"github.com/akeren/saascribe/internal/log"
	"github.com/akeren/saascribe/pkg/constants"
	apperrors "github.com/akeren/saascribe/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/akeren/saascribe/domain/waitlist"

type WaitlistService interface {
	// AddEntry performs exactly one insert of email into the record store.
	AddEntry(ctx context.Context, email string) error
}

// SubmissionMetrics counts store outcomes as "success" or the lower-cased error type.
type SubmissionMetrics struct {
	submissions *prometheus.CounterVec
}

func NewSubmissionMetrics(reg prometheus.Registerer) *SubmissionMetrics {
	m := &SubmissionMetrics{
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "waitlist_submissions_total",
				Help: "Waitlist inserts by outcome.",
			},
			[]string{"outcome"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.submissions)
	}
	return m
}

func (m *SubmissionMetrics) observe(err error) {
	if m == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = strings.ToLower(apperrors.GetErrorType(err))
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

type waitlistService struct {
	logger     *log.Logger
	repository WaitlistRepository
	metrics    *SubmissionMetrics
	tracer     trace.Tracer
}

func NewWaitlistService(logger *log.Logger, repository WaitlistRepository, metrics *SubmissionMetrics) WaitlistService {
	return &waitlistService{
		logger:     logger,
		repository: repository,
		metrics:    metrics,
		tracer:     otel.Tracer(tracerName),
	}
}

func (s *waitlistService) AddEntry(ctx context.Context, email string) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	ctx, span := s.tracer.Start(ctx, "waitlist.AddEntry",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.collection.name", constants.WaitlistCollection)),
	)
	defer span.End()

	err := s.repository.InsertEntry(ctx, ToWaitlistEntryModel(email))
	s.metrics.observe(err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, apperrors.GetErrorType(err))
		logger.Debug("Waitlist insert failed",
			"type", apperrors.GetErrorType(err),
			"retryable", apperrors.IsRetryable(err),
		)
		return err
	}

	span.SetStatus(codes.Ok, "")
	logger.Info("Waitlist entry added")
	return nil
}
