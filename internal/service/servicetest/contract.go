// Package servicetest holds the behavioural test suite every service.Repository
// implementation must pass. Backends run it from their own tests with a constructor
// that returns an empty repository.
package servicetest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
	"github.com/stacklok/descriptor-registry-server/internal/service"
)

// Factory returns an empty repository for a single subtest.
type Factory func(t *testing.T) service.Repository

// Shell builds a shell descriptor with the given nested submodel ids.
func Shell(id string, submodelIDs ...string) *descriptor.Shell {
	shell := &descriptor.Shell{
		ID:        id,
		IDShort:   "short-" + id,
		AssetKind: descriptor.AssetKindInstance,
		Endpoints: []descriptor.Endpoint{{
			Interface:           "AAS-3.0",
			ProtocolInformation: descriptor.ProtocolInformation{Href: "http://localhost/shells/" + id},
		}},
	}
	for _, sid := range submodelIDs {
		shell.SubmodelDescriptors = append(shell.SubmodelDescriptors, *Submodel(sid))
	}
	return shell
}

// Submodel builds a submodel descriptor.
func Submodel(id string) *descriptor.Submodel {
	return &descriptor.Submodel{
		ID:      id,
		IDShort: "short-" + id,
		SemanticID: &descriptor.Reference{
			Type: "ExternalReference",
			Keys: []descriptor.Key{{Type: "GlobalReference", Value: "urn:semantic:" + id}},
		},
		Endpoints: []descriptor.Endpoint{{
			Interface:           "SUBMODEL-3.0",
			ProtocolInformation: descriptor.ProtocolInformation{Href: "http://localhost/submodels/" + id},
		}},
	}
}

// RunRepositoryContract runs the full suite against repositories built by newRepo.
func RunRepositoryContract(t *testing.T, newRepo Factory) {
	t.Helper()

	t.Run("shells", func(t *testing.T) { testShells(t, newRepo) })
	t.Run("shell update", func(t *testing.T) { testShellUpdate(t, newRepo) })
	t.Run("shell filters", func(t *testing.T) { testShellFilters(t, newRepo) })
	t.Run("nested submodels", func(t *testing.T) { testNestedSubmodels(t, newRepo) })
	t.Run("nested replace", func(t *testing.T) { testNestedReplace(t, newRepo) })
	t.Run("standalone submodels", func(t *testing.T) { testStandaloneSubmodels(t, newRepo) })
	t.Run("keyspace independence", func(t *testing.T) { testKeyspaceIndependence(t, newRepo) })
	t.Run("cascade delete", func(t *testing.T) { testCascade(t, newRepo) })
	t.Run("invalid identifiers", func(t *testing.T) { testInvalidIdentifiers(t, newRepo) })
	t.Run("invalid payloads", func(t *testing.T) { testInvalidPayloads(t, newRepo) })
	t.Run("copies on read", func(t *testing.T) { testCopies(t, newRepo) })
	t.Run("ordering", func(t *testing.T) { testOrdering(t, newRepo) })
	t.Run("concurrent create", func(t *testing.T) { testConcurrentCreate(t, newRepo) })
	t.Run("paging over listings", func(t *testing.T) { testPaging(t, newRepo) })
}

func testShells(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	created, err := repo.CreateShell(ctx, Shell("S1"))
	require.NoError(t, err)
	assert.Equal(t, Shell("S1"), created)

	_, err = repo.CreateShell(ctx, Shell("S1"))
	require.ErrorIs(t, err, service.ErrShellAlreadyExists)
	assert.EqualError(t, err, "shell already exists (id: S1)")

	first, err := repo.GetShell(ctx, "S1")
	require.NoError(t, err)
	second, err := repo.GetShell(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = repo.GetShell(ctx, "missing")
	require.ErrorIs(t, err, service.ErrNotFound)
	assert.EqualError(t, err, "shell not found (id: missing)")

	require.NoError(t, repo.DeleteShell(ctx, "S1"))
	err = repo.DeleteShell(ctx, "S1")
	require.ErrorIs(t, err, service.ErrShellNotFound)

	_, err = repo.CreateShell(ctx, Shell("S2", "M1", "M1"))
	require.ErrorIs(t, err, service.ErrAlreadyExists)
	_, err = repo.GetShell(ctx, "S2")
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = repo.CreateShell(ctx, nil)
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

func testShellUpdate(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.CreateShell(ctx, Shell("S1", "M1"))
	require.NoError(t, err)
	_, err = repo.CreateShell(ctx, Shell("S2"))
	require.NoError(t, err)

	_, err = repo.UpdateShell(ctx, "missing", Shell("missing"))
	require.ErrorIs(t, err, service.ErrShellNotFound)

	replacement := Shell("S1", "M2", "M3")
	replacement.IDShort = "renamed"
	updated, err := repo.UpdateShell(ctx, "S1", replacement)
	require.NoError(t, err)
	assert.Equal(t, replacement, updated)

	got, err := repo.GetShell(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.IDShort)
	assert.Equal(t, []string{"M2", "M3"}, got.SubmodelIDs())

	_, err = repo.UpdateShell(ctx, "S1", Shell("S2"))
	require.ErrorIs(t, err, service.ErrShellAlreadyExists)

	rekeyed, err := repo.UpdateShell(ctx, "S1", Shell("S3", "M2"))
	require.NoError(t, err)
	assert.Equal(t, "S3", rekeyed.ID)

	_, err = repo.GetShell(ctx, "S1")
	require.ErrorIs(t, err, service.ErrNotFound)
	got, err = repo.GetShell(ctx, "S3")
	require.NoError(t, err)
	assert.Equal(t, []string{"M2"}, got.SubmodelIDs())

	nested, err := repo.GetShellSubmodel(ctx, "S3", "M2")
	require.NoError(t, err)
	assert.Equal(t, "M2", nested.ID)
}

func testShellFilters(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	shells := []*descriptor.Shell{
		{ID: "a", AssetType: "pump", AssetKind: descriptor.AssetKindInstance},
		{ID: "b", AssetType: "pump", AssetKind: descriptor.AssetKindType},
		{ID: "c", AssetType: "valve", AssetKind: descriptor.AssetKindInstance},
		{ID: "d"},
	}
	for _, shell := range shells {
		_, err := repo.CreateShell(ctx, shell)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter service.ShellFilter
		want   []string
	}{
		{name: "no filter", filter: service.ShellFilter{}, want: []string{"a", "b", "c", "d"}},
		{name: "asset type", filter: service.ShellFilter{AssetType: "pump"}, want: []string{"a", "b"}},
		{name: "asset kind", filter: service.ShellFilter{AssetKind: descriptor.AssetKindInstance}, want: []string{"a", "c"}},
		{
			name:   "both filters",
			filter: service.ShellFilter{AssetType: "pump", AssetKind: descriptor.AssetKindInstance},
			want:   []string{"a"},
		},
		{name: "no match", filter: service.ShellFilter{AssetType: "motor"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListShells(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, shellIDs(got))
		})
	}
}

func testNestedSubmodels(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.ListShellSubmodels(ctx, "S1")
	require.ErrorIs(t, err, service.ErrShellNotFound)
	_, err = repo.AddShellSubmodel(ctx, "S1", Submodel("M1"))
	require.ErrorIs(t, err, service.ErrShellNotFound)

	_, err = repo.CreateShell(ctx, Shell("S1", "M1"))
	require.NoError(t, err)

	list, err := repo.ListShellSubmodels(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, []*descriptor.Submodel{Submodel("M1")}, list)

	got, err := repo.GetShellSubmodel(ctx, "S1", "M1")
	require.NoError(t, err)
	assert.Equal(t, Submodel("M1"), got)

	_, err = repo.GetShellSubmodel(ctx, "missing", "M1")
	require.ErrorIs(t, err, service.ErrShellNotFound)

	_, err = repo.GetShellSubmodel(ctx, "S1", "M9")
	require.ErrorIs(t, err, service.ErrSubmodelNotFound)
	assert.EqualError(t, err, "submodel not found in shell (shell: S1, submodel: M9)")

	added, err := repo.AddShellSubmodel(ctx, "S1", Submodel("M2"))
	require.NoError(t, err)
	assert.Equal(t, Submodel("M2"), added)

	_, err = repo.AddShellSubmodel(ctx, "S1", Submodel("M2"))
	require.ErrorIs(t, err, service.ErrSubmodelAlreadyExists)
	assert.EqualError(t, err, "submodel already exists in shell (shell: S1, submodel: M2)")

	list, err = repo.ListShellSubmodels(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, []string{"M1", "M2"}, submodelIDs(list))

	require.NoError(t, repo.DeleteShellSubmodel(ctx, "S1", "M1"))
	err = repo.DeleteShellSubmodel(ctx, "S1", "M1")
	require.ErrorIs(t, err, service.ErrSubmodelNotFound)
	err = repo.DeleteShellSubmodel(ctx, "missing", "M1")
	require.ErrorIs(t, err, service.ErrShellNotFound)

	shell, err := repo.GetShell(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, []string{"M2"}, shell.SubmodelIDs())
}

func testNestedReplace(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.CreateShell(ctx, Shell("S1", "M1", "M2", "M3"))
	require.NoError(t, err)

	_, err = repo.ReplaceShellSubmodel(ctx, "missing", "M1", Submodel("M1"))
	require.ErrorIs(t, err, service.ErrShellNotFound)
	_, err = repo.ReplaceShellSubmodel(ctx, "S1", "M9", Submodel("M9"))
	require.ErrorIs(t, err, service.ErrSubmodelNotFound)

	changed := Submodel("M2")
	changed.IDShort = "changed"
	got, err := repo.ReplaceShellSubmodel(ctx, "S1", "M2", changed)
	require.NoError(t, err)
	assert.Equal(t, changed, got)

	_, err = repo.ReplaceShellSubmodel(ctx, "S1", "M2", Submodel("M3"))
	require.ErrorIs(t, err, service.ErrSubmodelAlreadyExists)

	_, err = repo.ReplaceShellSubmodel(ctx, "S1", "M2", Submodel("M4"))
	require.NoError(t, err)

	list, err := repo.ListShellSubmodels(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, []string{"M1", "M4", "M3"}, submodelIDs(list))
}

func testStandaloneSubmodels(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.AddSubmodel(ctx, Submodel("X"))
	require.NoError(t, err)
	_, err = repo.AddSubmodel(ctx, Submodel("X"))
	require.ErrorIs(t, err, service.ErrSubmodelAlreadyExists)
	assert.EqualError(t, err, "submodel already exists (id: X)")
	require.NoError(t, repo.DeleteSubmodel(ctx, "X"))
	_, err = repo.AddSubmodel(ctx, Submodel("X"))
	require.NoError(t, err)

	got, err := repo.GetSubmodel(ctx, "X")
	require.NoError(t, err)
	assert.Equal(t, Submodel("X"), got)

	_, err = repo.GetSubmodel(ctx, "missing")
	require.ErrorIs(t, err, service.ErrSubmodelNotFound)
	assert.EqualError(t, err, "submodel not found (id: missing)")
	err = repo.DeleteSubmodel(ctx, "missing")
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = repo.ReplaceSubmodel(ctx, "missing", Submodel("missing"))
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = repo.AddSubmodel(ctx, Submodel("Y"))
	require.NoError(t, err)
	_, err = repo.ReplaceSubmodel(ctx, "X", Submodel("Y"))
	require.ErrorIs(t, err, service.ErrSubmodelAlreadyExists)

	changed := Submodel("X")
	changed.IDShort = "changed"
	replaced, err := repo.ReplaceSubmodel(ctx, "X", changed)
	require.NoError(t, err)
	assert.Equal(t, changed, replaced)

	_, err = repo.ReplaceSubmodel(ctx, "X", Submodel("Z"))
	require.NoError(t, err)
	_, err = repo.GetSubmodel(ctx, "X")
	require.ErrorIs(t, err, service.ErrNotFound)

	list, err := repo.ListSubmodels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Y", "Z"}, submodelIDs(list))
}

func testKeyspaceIndependence(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.AddSubmodel(ctx, Submodel("X"))
	require.NoError(t, err)
	_, err = repo.CreateShell(ctx, Shell("S1"))
	require.NoError(t, err)
	_, err = repo.CreateShell(ctx, Shell("S2", "X"))
	require.NoError(t, err)
	_, err = repo.AddShellSubmodel(ctx, "S1", Submodel("X"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteShellSubmodel(ctx, "S1", "X"))
	_, err = repo.GetSubmodel(ctx, "X")
	require.NoError(t, err, "deleting a nested submodel must not touch the standalone one")
	_, err = repo.GetShellSubmodel(ctx, "S2", "X")
	require.NoError(t, err, "deleting a nested submodel must not touch other shells")

	require.NoError(t, repo.DeleteSubmodel(ctx, "X"))
	_, err = repo.GetShellSubmodel(ctx, "S2", "X")
	require.NoError(t, err, "deleting a standalone submodel must not touch nested ones")

	_, err = repo.GetShellSubmodel(ctx, "S1", "X")
	require.ErrorIs(t, err, service.ErrSubmodelNotFound)
}

func testCascade(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.CreateShell(ctx, Shell("S1", "M1"))
	require.NoError(t, err)
	_, err = repo.AddSubmodel(ctx, Submodel("M1"))
	require.NoError(t, err)

	list, err := repo.ListShellSubmodels(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, []string{"M1"}, submodelIDs(list))
	_, err = repo.GetShellSubmodel(ctx, "S1", "M1")
	require.NoError(t, err)

	require.NoError(t, repo.DeleteShell(ctx, "S1"))

	_, err = repo.GetShellSubmodel(ctx, "S1", "M1")
	require.ErrorIs(t, err, service.ErrNotFound)
	_, err = repo.ListShellSubmodels(ctx, "S1")
	require.ErrorIs(t, err, service.ErrShellNotFound)
	_, err = repo.GetSubmodel(ctx, "M1")
	require.NoError(t, err)

	_, err = repo.CreateShell(ctx, Shell("S1"))
	require.NoError(t, err)
	list, err = repo.ListShellSubmodels(ctx, "S1")
	require.NoError(t, err)
	assert.Empty(t, list, "a recreated shell must not inherit nested submodels")
}

func testInvalidIdentifiers(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.CreateShell(ctx, Shell("S1"))
	require.NoError(t, err)

	ids := map[string]string{
		"empty":   "",
		"blank":   "  \t",
		"nul":     "a\x00b",
		"invalid": string([]byte{0xff, 0xfe}),
	}

	for name, id := range ids {
		t.Run(name, func(t *testing.T) {
			calls := map[string]error{}
			_, calls["GetShell"] = repo.GetShell(ctx, id)
			_, calls["CreateShell"] = repo.CreateShell(ctx, Shell(id))
			_, calls["UpdateShell"] = repo.UpdateShell(ctx, id, Shell("S1"))
			calls["DeleteShell"] = repo.DeleteShell(ctx, id)
			_, calls["ListShellSubmodels"] = repo.ListShellSubmodels(ctx, id)
			_, calls["GetShellSubmodel"] = repo.GetShellSubmodel(ctx, "S1", id)
			_, calls["AddShellSubmodel"] = repo.AddShellSubmodel(ctx, "S1", Submodel(id))
			_, calls["ReplaceShellSubmodel"] = repo.ReplaceShellSubmodel(ctx, id, "M1", Submodel("M1"))
			calls["DeleteShellSubmodel"] = repo.DeleteShellSubmodel(ctx, "S1", id)
			_, calls["GetSubmodel"] = repo.GetSubmodel(ctx, id)
			_, calls["AddSubmodel"] = repo.AddSubmodel(ctx, Submodel(id))
			_, calls["ReplaceSubmodel"] = repo.ReplaceSubmodel(ctx, id, Submodel("M1"))
			calls["DeleteSubmodel"] = repo.DeleteSubmodel(ctx, id)

			for op, err := range calls {
				assert.ErrorIs(t, err, service.ErrInvalidArgument, op)
			}
		})
	}

	_, err = repo.AddShellSubmodel(ctx, "S1", nil)
	require.ErrorIs(t, err, service.ErrInvalidArgument)
	_, err = repo.AddSubmodel(ctx, nil)
	require.ErrorIs(t, err, service.ErrInvalidArgument)
	_, err = repo.UpdateShell(ctx, "S1", nil)
	require.ErrorIs(t, err, service.ErrInvalidArgument)
}

func testInvalidPayloads(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.CreateShell(ctx, Shell("S1", "M1"))
	require.NoError(t, err)
	_, err = repo.AddSubmodel(ctx, Submodel("M1"))
	require.NoError(t, err)

	lowerKind := Shell("S2")
	lowerKind.AssetKind = descriptor.AssetKind("instance")
	unknownKind := Shell("S2")
	unknownKind.AssetKind = descriptor.AssetKind("Bogus")
	nulShell := Shell("S2")
	nulShell.IDShort = "a\x00b"
	nulNested := Shell("S2", "M2")
	nulNested.SubmodelDescriptors[0].Description = []descriptor.LangString{{Language: "en", Text: "\x00"}}
	nulSubmodel := Submodel("M2")
	nulSubmodel.SemanticID.Keys[0].Value = "urn:\x00"

	calls := map[string]error{}
	_, calls["CreateShell lower case kind"] = repo.CreateShell(ctx, lowerKind)
	_, calls["CreateShell unknown kind"] = repo.CreateShell(ctx, unknownKind)
	_, calls["UpdateShell unknown kind"] = repo.UpdateShell(ctx, "S1", unknownKind)
	_, calls["CreateShell NUL text"] = repo.CreateShell(ctx, nulShell)
	_, calls["CreateShell NUL nested text"] = repo.CreateShell(ctx, nulNested)
	_, calls["UpdateShell NUL text"] = repo.UpdateShell(ctx, "S1", nulShell)
	_, calls["AddShellSubmodel NUL text"] = repo.AddShellSubmodel(ctx, "S1", nulSubmodel)
	_, calls["ReplaceShellSubmodel NUL text"] = repo.ReplaceShellSubmodel(ctx, "S1", "M1", nulSubmodel)
	_, calls["AddSubmodel NUL text"] = repo.AddSubmodel(ctx, nulSubmodel)
	_, calls["ReplaceSubmodel NUL text"] = repo.ReplaceSubmodel(ctx, "M1", nulSubmodel)

	for op, err := range calls {
		assert.ErrorIs(t, err, service.ErrInvalidArgument, op)
	}

	shells, err := repo.ListShells(ctx, service.ShellFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"S1"}, shellIDs(shells))

	stored, err := repo.GetShell(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, Shell("S1", "M1"), stored)

	submodels, err := repo.ListSubmodels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"M1"}, submodelIDs(submodels))
}

func testCopies(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	input := Shell("S1", "M1")
	_, err := repo.CreateShell(ctx, input)
	require.NoError(t, err)
	input.IDShort = "mutated input"
	input.SubmodelDescriptors[0].IDShort = "mutated input"

	got, err := repo.GetShell(ctx, "S1")
	require.NoError(t, err)
	got.IDShort = "mutated output"
	got.SubmodelDescriptors = nil

	listed, err := repo.ListShells(ctx, service.ShellFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	listed[0].Endpoints[0].ProtocolInformation.Href = "mutated list"

	nested, err := repo.ListShellSubmodels(ctx, "S1")
	require.NoError(t, err)
	nested[0].SemanticID.Keys[0].Value = "mutated nested"

	assertShell, err := repo.GetShell(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, Shell("S1", "M1"), assertShell)
}

func testOrdering(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	for _, id := range []string{"urn:b", "urn:a", "urn:C", "urn:c"} {
		_, err := repo.CreateShell(ctx, Shell(id))
		require.NoError(t, err)
		_, err = repo.AddSubmodel(ctx, Submodel(id))
		require.NoError(t, err)
	}

	shells, err := repo.ListShells(ctx, service.ShellFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"urn:C", "urn:a", "urn:b", "urn:c"}, shellIDs(shells))

	submodels, err := repo.ListSubmodels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"urn:C", "urn:a", "urn:b", "urn:c"}, submodelIDs(submodels))

	_, err = repo.CreateShell(ctx, Shell("S", "z", "a", "m"))
	require.NoError(t, err)
	nested, err := repo.ListShellSubmodels(ctx, "S")
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, submodelIDs(nested))
}

func testConcurrentCreate(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	const writers = 16
	var wins, conflicts atomic.Int32
	var g errgroup.Group
	for range writers {
		g.Go(func() error {
			_, err := repo.CreateShell(ctx, Shell("race"))
			switch service.KindOf(err) {
			case "":
				wins.Add(1)
			case service.KindAlreadyExists:
				conflicts.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(writers-1), conflicts.Load())
}

func testPaging(t *testing.T, newRepo Factory) {
	ctx := context.Background()
	repo := newRepo(t)

	for i := 1; i <= 5; i++ {
		_, err := repo.CreateShell(ctx, Shell(fmt.Sprintf("S%d", i)))
		require.NoError(t, err)
	}

	all, err := repo.ListShells(ctx, service.ShellFilter{})
	require.NoError(t, err)

	limit := 2
	var seen []string
	var cursor *string
	for pages := 0; ; pages++ {
		require.Less(t, pages, 5, "paging must terminate")
		page, err := service.Paginate(all, service.PageRequest{Cursor: cursor, Limit: &limit})
		require.NoError(t, err)
		seen = append(seen, shellIDs(page.Items)...)
		if !page.HasMore() {
			break
		}
		next := page.NextCursor
		cursor = &next
	}
	assert.Equal(t, []string{"S1", "S2", "S3", "S4", "S5"}, seen)
}

func shellIDs(shells []*descriptor.Shell) []string {
	ids := make([]string, 0, len(shells))
	for _, s := range shells {
		ids = append(ids, s.ID)
	}
	return ids
}

func submodelIDs(submodels []*descriptor.Submodel) []string {
	ids := make([]string, 0, len(submodels))
	for _, s := range submodels {
		ids = append(ids, s.ID)
	}
	return ids
}
