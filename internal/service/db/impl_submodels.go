package database

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/stacklok/descriptor-registry-server/internal/db/sqlc"
	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
	"github.com/stacklok/descriptor-registry-server/internal/otel"
	"github.com/stacklok/descriptor-registry-server/internal/service"
)

// ListSubmodels implements Repository.ListSubmodels
func (s *dbStore) ListSubmodels(ctx context.Context) (result []*descriptor.Submodel, err error) {
	ctx, span := s.startSpan(ctx, "dbStore.ListSubmodels")
	defer func() {
		recordError(span, err)
		span.End()
	}()

	rows, err := sqlc.New(s.pool).ListSubmodels(ctx)
	if err != nil {
		return nil, service.NewStorageError("list submodels", err)
	}

	result = make([]*descriptor.Submodel, 0, len(rows))
	for _, row := range rows {
		submodel, err := submodelFromRow(row)
		if err != nil {
			return nil, err
		}
		result = append(result, submodel)
	}

	span.SetAttributes(otel.AttrResultCount.Int(len(result)))
	return result, nil
}

// GetSubmodel implements Repository.GetSubmodel
func (s *dbStore) GetSubmodel(ctx context.Context, id string) (submodel *descriptor.Submodel, err error) {
	ctx, span := s.startSpan(ctx, "dbStore.GetSubmodel", trace.WithAttributes(otel.AttrSubmodelID.String(id)))
	defer func() {
		recordError(span, err)
		span.End()
	}()

	if err := service.EnsureIdentifier("submodel", id); err != nil {
		return nil, err
	}

	row, err := sqlc.New(s.pool).GetSubmodel(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.NewSubmodelNotFoundError(id)
		}
		return nil, service.NewStorageError("get submodel", err)
	}
	return submodelFromRow(row)
}

// AddSubmodel implements Repository.AddSubmodel
func (s *dbStore) AddSubmodel(ctx context.Context, submodel *descriptor.Submodel) (added *descriptor.Submodel, err error) {
	ctx, span := s.startSpan(ctx, "dbStore.AddSubmodel")
	defer func() {
		recordError(span, err)
		span.End()
	}()

	if err := service.EnsureSubmodel(submodel); err != nil {
		return nil, err
	}
	span.SetAttributes(otel.AttrSubmodelID.String(submodel.ID))

	payload, err := marshalSubmodel(submodel)
	if err != nil {
		return nil, err
	}

	err = sqlc.New(s.pool).InsertSubmodel(ctx, sqlc.InsertSubmodelParams{ID: submodel.ID, Payload: payload})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, service.NewSubmodelAlreadyExistsError(submodel.ID)
		}
		return nil, service.NewStorageError("insert submodel", err)
	}

	slog.InfoContext(ctx, "Submodel created",
		"submodel_id", submodel.ID,
		"request_id", middleware.GetReqID(ctx))

	return submodel.Clone(), nil
}

// ReplaceSubmodel implements Repository.ReplaceSubmodel with a single UPDATE, so the
// record is never observed missing.
func (s *dbStore) ReplaceSubmodel(
	ctx context.Context,
	id string,
	submodel *descriptor.Submodel,
) (replaced *descriptor.Submodel, err error) {
	ctx, span := s.startSpan(ctx, "dbStore.ReplaceSubmodel", trace.WithAttributes(otel.AttrSubmodelID.String(id)))
	defer func() {
		recordError(span, err)
		span.End()
	}()

	if err := service.EnsureIdentifier("submodel", id); err != nil {
		return nil, err
	}
	if err := service.EnsureSubmodel(submodel); err != nil {
		return nil, err
	}

	payload, err := marshalSubmodel(submodel)
	if err != nil {
		return nil, err
	}

	affected, err := sqlc.New(s.pool).ReplaceSubmodel(ctx, sqlc.ReplaceSubmodelParams{
		NewID:   submodel.ID,
		Payload: payload,
		ID:      id,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, service.NewSubmodelAlreadyExistsError(submodel.ID)
		}
		return nil, service.NewStorageError("replace submodel", err)
	}
	if affected == 0 {
		return nil, service.NewSubmodelNotFoundError(id)
	}

	return submodel.Clone(), nil
}

// DeleteSubmodel implements Repository.DeleteSubmodel
func (s *dbStore) DeleteSubmodel(ctx context.Context, id string) (err error) {
	ctx, span := s.startSpan(ctx, "dbStore.DeleteSubmodel", trace.WithAttributes(otel.AttrSubmodelID.String(id)))
	defer func() {
		recordError(span, err)
		span.End()
	}()

	if err := service.EnsureIdentifier("submodel", id); err != nil {
		return err
	}

	affected, err := sqlc.New(s.pool).DeleteSubmodel(ctx, id)
	if err != nil {
		return service.NewStorageError("delete submodel", err)
	}
	if affected == 0 {
		return service.NewSubmodelNotFoundError(id)
	}

	slog.InfoContext(ctx, "Submodel deleted",
		"submodel_id", id,
		"request_id", middleware.GetReqID(ctx))
	return nil
}
