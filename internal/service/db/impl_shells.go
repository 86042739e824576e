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

// ListShells implements Repository.ListShells
func (s *dbStore) ListShells(ctx context.Context, filter service.ShellFilter) (result []*descriptor.Shell, err error) {
	ctx, span := s.startSpan(ctx, "dbStore.ListShells", trace.WithAttributes(
		otel.AttrAssetType.String(filter.AssetType),
		otel.AttrAssetKind.String(filter.AssetKind.String()),
	))
	defer func() {
		recordError(span, err)
		span.End()
	}()

	err = s.inReadTx(ctx, func(querier *sqlc.Queries) error {
		rows, err := querier.ListShells(ctx, sqlc.ListShellsParams{
			AssetType: optional(filter.AssetType),
			AssetKind: optional(filter.AssetKind),
		})
		if err != nil {
			return service.NewStorageError("list shells", err)
		}

		ids := make([]string, 0, len(rows))
		for _, row := range rows {
			ids = append(ids, row.ID)
		}

		nestedRows, err := querier.ListShellSubmodelsByShells(ctx, ids)
		if err != nil {
			return service.NewStorageError("list nested submodels", err)
		}
		nested := make(map[string][]sqlc.ShellSubmodelDescriptor, len(rows))
		for _, n := range nestedRows {
			nested[n.ShellID] = append(nested[n.ShellID], n)
		}

		result = make([]*descriptor.Shell, 0, len(rows))
		for _, row := range rows {
			shell, err := shellFromRow(row, nested[row.ID])
			if err != nil {
				return err
			}
			result = append(result, shell)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(otel.AttrResultCount.Int(len(result)))
	return result, nil
}

// GetShell implements Repository.GetShell
func (s *dbStore) GetShell(ctx context.Context, id string) (shell *descriptor.Shell, err error) {
	ctx, span := s.startSpan(ctx, "dbStore.GetShell", trace.WithAttributes(otel.AttrShellID.String(id)))
	defer func() {
		recordError(span, err)
		span.End()
	}()

	if err := service.EnsureIdentifier("shell", id); err != nil {
		return nil, err
	}

	err = s.inReadTx(ctx, func(querier *sqlc.Queries) error {
		shell, err = getShell(ctx, querier, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return shell, nil
}

// CreateShell implements Repository.CreateShell
func (s *dbStore) CreateShell(ctx context.Context, shell *descriptor.Shell) (created *descriptor.Shell, err error) {
	ctx, span := s.startSpan(ctx, "dbStore.CreateShell")
	defer func() {
		recordError(span, err)
		span.End()
	}()

	if err := service.EnsureShell(shell); err != nil {
		return nil, err
	}
	span.SetAttributes(otel.AttrShellID.String(shell.ID))

	payload, err := marshalShell(shell)
	if err != nil {
		return nil, err
	}

	err = s.inTx(ctx, func(querier *sqlc.Queries) error {
		err := querier.InsertShell(ctx, sqlc.InsertShellParams{
			ID:        shell.ID,
			AssetType: optional(shell.AssetType),
			AssetKind: optional(shell.AssetKind),
			Payload:   payload,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return service.NewShellAlreadyExistsError(shell.ID)
			}
			return service.NewStorageError("insert shell", err)
		}
		return insertNested(ctx, querier, shell)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Shell created",
		"shell_id", shell.ID,
		"submodels", len(shell.SubmodelDescriptors),
		"request_id", middleware.GetReqID(ctx))

	return shell.Clone(), nil
}

// UpdateShell implements Repository.UpdateShell. A changed id re-keys the shell;
// its nested rows follow through the cascading foreign key before they are replaced.
func (s *dbStore) UpdateShell(
	ctx context.Context,
	id string,
	shell *descriptor.Shell,
) (updated *descriptor.Shell, err error) {
	ctx, span := s.startSpan(ctx, "dbStore.UpdateShell", trace.WithAttributes(otel.AttrShellID.String(id)))
	defer func() {
		recordError(span, err)
		span.End()
	}()

	if err := service.EnsureIdentifier("shell", id); err != nil {
		return nil, err
	}
	if err := service.EnsureShell(shell); err != nil {
		return nil, err
	}

	payload, err := marshalShell(shell)
	if err != nil {
		return nil, err
	}

	err = s.inTx(ctx, func(querier *sqlc.Queries) error {
		if err := lockShell(ctx, querier, id); err != nil {
			return err
		}

		_, err := querier.UpdateShell(ctx, sqlc.UpdateShellParams{
			NewID:     shell.ID,
			AssetType: optional(shell.AssetType),
			AssetKind: optional(shell.AssetKind),
			Payload:   payload,
			ID:        id,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return service.NewShellAlreadyExistsError(shell.ID)
			}
			return service.NewStorageError("update shell", err)
		}

		if err := querier.DeleteShellSubmodels(ctx, shell.ID); err != nil {
			return service.NewStorageError("clear nested submodels", err)
		}
		return insertNested(ctx, querier, shell)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Shell updated",
		"shell_id", id,
		"new_shell_id", shell.ID,
		"request_id", middleware.GetReqID(ctx))

	return shell.Clone(), nil
}

// DeleteShell implements Repository.DeleteShell. Nested rows are removed by the
// cascading foreign key.
func (s *dbStore) DeleteShell(ctx context.Context, id string) (err error) {
	ctx, span := s.startSpan(ctx, "dbStore.DeleteShell", trace.WithAttributes(otel.AttrShellID.String(id)))
	defer func() {
		recordError(span, err)
		span.End()
	}()

	if err := service.EnsureIdentifier("shell", id); err != nil {
		return err
	}

	affected, err := sqlc.New(s.pool).DeleteShell(ctx, id)
	if err != nil {
		return service.NewStorageError("delete shell", err)
	}
	if affected == 0 {
		return service.NewShellNotFoundError(id)
	}

	slog.InfoContext(ctx, "Shell deleted",
		"shell_id", id,
		"request_id", middleware.GetReqID(ctx))
	return nil
}

// ListShellSubmodels implements Repository.ListShellSubmodels
func (s *dbStore) ListShellSubmodels(ctx context.Context, shellID string) (result []*descriptor.Submodel, err error) {
	ctx, span := s.startSpan(ctx, "dbStore.ListShellSubmodels", trace.WithAttributes(otel.AttrShellID.String(shellID)))
	defer func() {
		recordError(span, err)
		span.End()
	}()

	if err := service.EnsureIdentifier("shell", shellID); err != nil {
		return nil, err
	}

	err = s.inReadTx(ctx, func(querier *sqlc.Queries) error {
		if err := shellExists(ctx, querier, shellID); err != nil {
			return err
		}

		rows, err := querier.ListShellSubmodels(ctx, shellID)
		if err != nil {
			return service.NewStorageError("list nested submodels", err)
		}

		result = make([]*descriptor.Submodel, 0, len(rows))
		for _, row := range rows {
			submodel, err := nestedFromRow(row)
			if err != nil {
				return err
			}
			result = append(result, submodel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(otel.AttrResultCount.Int(len(result)))
	return result, nil
}

// GetShellSubmodel implements Repository.GetShellSubmodel
func (s *dbStore) GetShellSubmodel(
	ctx context.Context,
	shellID, submodelID string,
) (submodel *descriptor.Submodel, err error) {
	ctx, span := s.startSpan(ctx, "dbStore.GetShellSubmodel", trace.WithAttributes(
		otel.AttrShellID.String(shellID),
		otel.AttrSubmodelID.String(submodelID),
	))
	defer func() {
		recordError(span, err)
		span.End()
	}()

	if err := ensurePair(shellID, submodelID); err != nil {
		return nil, err
	}

	err = s.inReadTx(ctx, func(querier *sqlc.Queries) error {
		row, err := querier.GetShellSubmodel(ctx, sqlc.GetShellSubmodelParams{ShellID: shellID, ID: submodelID})
		if err == nil {
			submodel, err = nestedFromRow(row)
			return err
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return service.NewStorageError("get nested submodel", err)
		}
		// Tell a missing shell apart from a missing submodel
		if err := shellExists(ctx, querier, shellID); err != nil {
			return err
		}
		return service.NewSubmodelNotFoundInShellError(shellID, submodelID)
	})
	if err != nil {
		return nil, err
	}
	return submodel, nil
}

// AddShellSubmodel implements Repository.AddShellSubmodel
func (s *dbStore) AddShellSubmodel(
	ctx context.Context,
	shellID string,
	submodel *descriptor.Submodel,
) (added *descriptor.Submodel, err error) {
	ctx, span := s.startSpan(ctx, "dbStore.AddShellSubmodel", trace.WithAttributes(otel.AttrShellID.String(shellID)))
	defer func() {
		recordError(span, err)
		span.End()
	}()

	if err := service.EnsureIdentifier("shell", shellID); err != nil {
		return nil, err
	}
	if err := service.EnsureSubmodel(submodel); err != nil {
		return nil, err
	}
	span.SetAttributes(otel.AttrSubmodelID.String(submodel.ID))

	payload, err := marshalSubmodel(submodel)
	if err != nil {
		return nil, err
	}

	err = s.inTx(ctx, func(querier *sqlc.Queries) error {
		if err := lockShell(ctx, querier, shellID); err != nil {
			return err
		}
		err := querier.InsertShellSubmodel(ctx, sqlc.InsertShellSubmodelParams{
			ShellID: shellID,
			ID:      submodel.ID,
			Payload: payload,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return service.NewSubmodelAlreadyExistsInShellError(shellID, submodel.ID)
			}
			return service.NewStorageError("insert nested submodel", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Nested submodel added",
		"shell_id", shellID,
		"submodel_id", submodel.ID,
		"request_id", middleware.GetReqID(ctx))

	return submodel.Clone(), nil
}

// ReplaceShellSubmodel implements Repository.ReplaceShellSubmodel. The row is
// updated in place, so the submodel keeps its position in the nested list.
func (s *dbStore) ReplaceShellSubmodel(
	ctx context.Context,
	shellID, submodelID string,
	submodel *descriptor.Submodel,
) (replaced *descriptor.Submodel, err error) {
	ctx, span := s.startSpan(ctx, "dbStore.ReplaceShellSubmodel", trace.WithAttributes(
		otel.AttrShellID.String(shellID),
		otel.AttrSubmodelID.String(submodelID),
	))
	defer func() {
		recordError(span, err)
		span.End()
	}()

	if err := ensurePair(shellID, submodelID); err != nil {
		return nil, err
	}
	if err := service.EnsureSubmodel(submodel); err != nil {
		return nil, err
	}

	payload, err := marshalSubmodel(submodel)
	if err != nil {
		return nil, err
	}

	err = s.inTx(ctx, func(querier *sqlc.Queries) error {
		if err := lockShell(ctx, querier, shellID); err != nil {
			return err
		}
		affected, err := querier.ReplaceShellSubmodel(ctx, sqlc.ReplaceShellSubmodelParams{
			NewID:   submodel.ID,
			Payload: payload,
			ShellID: shellID,
			ID:      submodelID,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return service.NewSubmodelAlreadyExistsInShellError(shellID, submodel.ID)
			}
			return service.NewStorageError("replace nested submodel", err)
		}
		if affected == 0 {
			return service.NewSubmodelNotFoundInShellError(shellID, submodelID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return submodel.Clone(), nil
}

// DeleteShellSubmodel implements Repository.DeleteShellSubmodel
func (s *dbStore) DeleteShellSubmodel(ctx context.Context, shellID, submodelID string) (err error) {
	ctx, span := s.startSpan(ctx, "dbStore.DeleteShellSubmodel", trace.WithAttributes(
		otel.AttrShellID.String(shellID),
		otel.AttrSubmodelID.String(submodelID),
	))
	defer func() {
		recordError(span, err)
		span.End()
	}()

	if err := ensurePair(shellID, submodelID); err != nil {
		return err
	}

	err = s.inTx(ctx, func(querier *sqlc.Queries) error {
		if err := lockShell(ctx, querier, shellID); err != nil {
			return err
		}
		affected, err := querier.DeleteShellSubmodel(ctx, sqlc.DeleteShellSubmodelParams{ShellID: shellID, ID: submodelID})
		if err != nil {
			return service.NewStorageError("delete nested submodel", err)
		}
		if affected == 0 {
			return service.NewSubmodelNotFoundInShellError(shellID, submodelID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Nested submodel deleted",
		"shell_id", shellID,
		"submodel_id", submodelID,
		"request_id", middleware.GetReqID(ctx))
	return nil
}

func getShell(ctx context.Context, querier *sqlc.Queries, id string) (*descriptor.Shell, error) {
	row, err := querier.GetShell(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.NewShellNotFoundError(id)
		}
		return nil, service.NewStorageError("get shell", err)
	}

	nested, err := querier.ListShellSubmodels(ctx, id)
	if err != nil {
		return nil, service.NewStorageError("list nested submodels", err)
	}
	return shellFromRow(row, nested)
}

func shellExists(ctx context.Context, querier *sqlc.Queries, id string) error {
	if _, err := querier.GetShell(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return service.NewShellNotFoundError(id)
		}
		return service.NewStorageError("get shell", err)
	}
	return nil
}

// insertNested appends every nested submodel of shell in list order
func insertNested(ctx context.Context, querier *sqlc.Queries, shell *descriptor.Shell) error {
	for i := range shell.SubmodelDescriptors {
		submodel := &shell.SubmodelDescriptors[i]
		payload, err := marshalSubmodel(submodel)
		if err != nil {
			return err
		}
		err = querier.InsertShellSubmodel(ctx, sqlc.InsertShellSubmodelParams{
			ShellID: shell.ID,
			ID:      submodel.ID,
			Payload: payload,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return service.NewSubmodelAlreadyExistsInShellError(shell.ID, submodel.ID)
			}
			return service.NewStorageError("insert nested submodel", err)
		}
	}
	return nil
}
