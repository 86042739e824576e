package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
	"github.com/stacklok/descriptor-registry-server/internal/otel"
	"github.com/stacklok/descriptor-registry-server/internal/telemetry"
)

const (
	// ServiceTracerName is the name used for the registry service tracer
	ServiceTracerName = "github.com/stacklok/descriptor-registry-server/service"
)

// RegistryOption configures the registry service
type RegistryOption func(*registryService) error

// WithIdentifierCodec sets the codec used to decode identifiers. Defaults to base64url.
func WithIdentifierCodec(codec IdentifierCodec) RegistryOption {
	return func(s *registryService) error {
		if codec == nil {
			return fmt.Errorf("identifier codec is required")
		}
		s.codec = codec
		return nil
	}
}

// WithTracer sets the OpenTelemetry tracer for the registry service.
// If not set, tracing will be disabled (no-op).
func WithTracer(tracer trace.Tracer) RegistryOption {
	return func(s *registryService) error {
		s.tracer = tracer
		return nil
	}
}

// WithMetrics sets the operation metrics of the registry service.
// A nil value disables metrics.
func WithMetrics(metrics *telemetry.RegistryMetrics) RegistryOption {
	return func(s *registryService) error {
		s.metrics = metrics
		return nil
	}
}

// registryService implements RegistryService on top of a Repository
type registryService struct {
	repo    Repository
	codec   IdentifierCodec
	tracer  trace.Tracer
	metrics *telemetry.RegistryMetrics
}

var _ RegistryService = (*registryService)(nil)

// NewRegistryService creates a registry service backed by the given repository.
func NewRegistryService(repo Repository, opts ...RegistryOption) (RegistryService, error) {
	if repo == nil {
		return nil, fmt.Errorf("repository is required")
	}

	s := &registryService{
		repo:  repo,
		codec: Base64URLCodec{},
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// observe opens a span for an operation and returns the function that closes it,
// recording the error and the operation metrics.
func (s *registryService) observe(
	ctx context.Context,
	operation string,
	attrs ...attribute.KeyValue,
) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := otel.StartSpan(ctx, s.tracer, "registryService."+operation,
		trace.WithAttributes(append(attrs, otel.AttrOperation.String(operation))...),
	)

	return ctx, func(err error) {
		outcome := telemetry.OutcomeSuccess
		if err != nil {
			outcome = string(KindOf(err))
			span.SetAttributes(otel.AttrErrorKind.String(outcome))
			otel.RecordError(span, err)
			slog.DebugContext(ctx, "Registry operation failed",
				"operation", operation,
				"kind", outcome,
				"error", err,
				"request_id", middleware.GetReqID(ctx))
		}
		span.End()
		s.metrics.RecordOperation(ctx, operation, outcome, time.Since(start))
	}
}

// decode converts a transport identifier into the stored identifier and checks it.
func (s *registryService) decode(kind, encoded string) (string, error) {
	id, err := s.codec.Decode(encoded)
	if err != nil {
		return "", err
	}
	if err := EnsureIdentifier(kind, id); err != nil {
		return "", err
	}
	return id, nil
}

// CheckReadiness checks if the service is ready to serve requests
func (s *registryService) CheckReadiness(ctx context.Context) error {
	return s.repo.CheckReadiness(ctx)
}

// Description returns the service profiles supported by the registry
func (*registryService) Description(_ context.Context) *ServiceDescription {
	return &ServiceDescription{
		Profiles: []string{ProfileAASRegistryFull, ProfileSubmodelRegistryFull},
	}
}

// ListShells returns a page of shells matching the asset type and asset kind filters
func (s *registryService) ListShells(
	ctx context.Context,
	opts ...Option[ListShellsOptions],
) (page *Page[*descriptor.Shell], err error) {
	options := &ListShellsOptions{}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	ctx, done := s.observe(ctx, "ListShells", pageAttributes(options.Page)...)
	defer func() { done(err) }()

	filter := ShellFilter{AssetKind: options.AssetKind}
	if options.AssetType != nil {
		assetType, err := s.codec.Decode(*options.AssetType)
		if err != nil {
			return nil, err
		}
		filter.AssetType = assetType
	}

	shells, err := s.repo.ListShells(ctx, filter)
	if err != nil {
		return nil, err
	}

	page, err = Paginate(shells, options.Page)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "ListShells completed",
		"count", len(page.Items),
		"has_more", page.HasMore(),
		"request_id", middleware.GetReqID(ctx))

	return page, nil
}

// GetShell returns a shell
func (s *registryService) GetShell(ctx context.Context, shellID string) (shell *descriptor.Shell, err error) {
	ctx, done := s.observe(ctx, "GetShell")
	defer func() { done(err) }()

	id, err := s.decode("shell", shellID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetShell(ctx, id)
}

// CreateShell registers a new shell
func (s *registryService) CreateShell(
	ctx context.Context,
	shell *descriptor.Shell,
) (created *descriptor.Shell, err error) {
	ctx, done := s.observe(ctx, "CreateShell")
	defer func() { done(err) }()

	if err := EnsureShell(shell); err != nil {
		return nil, err
	}
	return s.repo.CreateShell(ctx, shell)
}

// UpdateShell replaces a shell
func (s *registryService) UpdateShell(
	ctx context.Context,
	shellID string,
	shell *descriptor.Shell,
) (updated *descriptor.Shell, err error) {
	ctx, done := s.observe(ctx, "UpdateShell")
	defer func() { done(err) }()

	id, err := s.decode("shell", shellID)
	if err != nil {
		return nil, err
	}
	if err := EnsureShell(shell); err != nil {
		return nil, err
	}
	return s.repo.UpdateShell(ctx, id, shell)
}

// DeleteShell removes a shell and its nested submodels
func (s *registryService) DeleteShell(ctx context.Context, shellID string) (err error) {
	ctx, done := s.observe(ctx, "DeleteShell")
	defer func() { done(err) }()

	id, err := s.decode("shell", shellID)
	if err != nil {
		return err
	}
	return s.repo.DeleteShell(ctx, id)
}

// ListShellSubmodels returns a page of the submodels nested in a shell
func (s *registryService) ListShellSubmodels(
	ctx context.Context,
	shellID string,
	opts ...Option[ListSubmodelsOptions],
) (page *Page[*descriptor.Submodel], err error) {
	options := &ListSubmodelsOptions{}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	ctx, done := s.observe(ctx, "ListShellSubmodels", pageAttributes(options.Page)...)
	defer func() { done(err) }()

	id, err := s.decode("shell", shellID)
	if err != nil {
		return nil, err
	}

	submodels, err := s.repo.ListShellSubmodels(ctx, id)
	if err != nil {
		return nil, err
	}
	return Paginate(submodels, options.Page)
}

// GetShellSubmodel returns a nested submodel
func (s *registryService) GetShellSubmodel(
	ctx context.Context,
	shellID, submodelID string,
) (submodel *descriptor.Submodel, err error) {
	ctx, done := s.observe(ctx, "GetShellSubmodel")
	defer func() { done(err) }()

	sid, mid, err := s.decodePair(shellID, submodelID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetShellSubmodel(ctx, sid, mid)
}

// CreateShellSubmodel adds a submodel to a shell
func (s *registryService) CreateShellSubmodel(
	ctx context.Context,
	shellID string,
	submodel *descriptor.Submodel,
) (created *descriptor.Submodel, err error) {
	ctx, done := s.observe(ctx, "CreateShellSubmodel")
	defer func() { done(err) }()

	id, err := s.decode("shell", shellID)
	if err != nil {
		return nil, err
	}
	if err := EnsureSubmodel(submodel); err != nil {
		return nil, err
	}
	return s.repo.AddShellSubmodel(ctx, id, submodel)
}

// UpdateShellSubmodel replaces a nested submodel in a single repository call, so no
// other writer can observe the submodel missing halfway through the update.
func (s *registryService) UpdateShellSubmodel(
	ctx context.Context,
	shellID, submodelID string,
	submodel *descriptor.Submodel,
) (updated *descriptor.Submodel, err error) {
	ctx, done := s.observe(ctx, "UpdateShellSubmodel")
	defer func() { done(err) }()

	sid, mid, err := s.decodePair(shellID, submodelID)
	if err != nil {
		return nil, err
	}
	if err := EnsureSubmodel(submodel); err != nil {
		return nil, err
	}
	return s.repo.ReplaceShellSubmodel(ctx, sid, mid, submodel)
}

// DeleteShellSubmodel removes a nested submodel
func (s *registryService) DeleteShellSubmodel(ctx context.Context, shellID, submodelID string) (err error) {
	ctx, done := s.observe(ctx, "DeleteShellSubmodel")
	defer func() { done(err) }()

	sid, mid, err := s.decodePair(shellID, submodelID)
	if err != nil {
		return err
	}
	return s.repo.DeleteShellSubmodel(ctx, sid, mid)
}

// ListSubmodels returns a page of standalone submodels
func (s *registryService) ListSubmodels(
	ctx context.Context,
	opts ...Option[ListSubmodelsOptions],
) (page *Page[*descriptor.Submodel], err error) {
	options := &ListSubmodelsOptions{}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	ctx, done := s.observe(ctx, "ListSubmodels", pageAttributes(options.Page)...)
	defer func() { done(err) }()

	submodels, err := s.repo.ListSubmodels(ctx)
	if err != nil {
		return nil, err
	}
	return Paginate(submodels, options.Page)
}

// GetSubmodel returns a standalone submodel
func (s *registryService) GetSubmodel(ctx context.Context, submodelID string) (submodel *descriptor.Submodel, err error) {
	ctx, done := s.observe(ctx, "GetSubmodel")
	defer func() { done(err) }()

	id, err := s.decode("submodel", submodelID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetSubmodel(ctx, id)
}

// CreateSubmodel registers a standalone submodel
func (s *registryService) CreateSubmodel(
	ctx context.Context,
	submodel *descriptor.Submodel,
) (created *descriptor.Submodel, err error) {
	ctx, done := s.observe(ctx, "CreateSubmodel")
	defer func() { done(err) }()

	if err := EnsureSubmodel(submodel); err != nil {
		return nil, err
	}
	return s.repo.AddSubmodel(ctx, submodel)
}

// UpdateSubmodel replaces a standalone submodel in a single repository call
func (s *registryService) UpdateSubmodel(
	ctx context.Context,
	submodelID string,
	submodel *descriptor.Submodel,
) (updated *descriptor.Submodel, err error) {
	ctx, done := s.observe(ctx, "UpdateSubmodel")
	defer func() { done(err) }()

	id, err := s.decode("submodel", submodelID)
	if err != nil {
		return nil, err
	}
	if err := EnsureSubmodel(submodel); err != nil {
		return nil, err
	}
	return s.repo.ReplaceSubmodel(ctx, id, submodel)
}

// DeleteSubmodel removes a standalone submodel
func (s *registryService) DeleteSubmodel(ctx context.Context, submodelID string) (err error) {
	ctx, done := s.observe(ctx, "DeleteSubmodel")
	defer func() { done(err) }()

	id, err := s.decode("submodel", submodelID)
	if err != nil {
		return err
	}
	return s.repo.DeleteSubmodel(ctx, id)
}

func (s *registryService) decodePair(shellID, submodelID string) (string, string, error) {
	sid, err := s.decode("shell", shellID)
	if err != nil {
		return "", "", err
	}
	mid, err := s.decode("submodel", submodelID)
	if err != nil {
		return "", "", err
	}
	return sid, mid, nil
}

func pageAttributes(req PageRequest) []attribute.KeyValue {
	attrs := []attribute.KeyValue{otel.AttrHasCursor.Bool(req.Cursor != nil)}
	if req.Limit != nil {
		attrs = append(attrs, otel.AttrPageSize.Int(*req.Limit))
	}
	return attrs
}
