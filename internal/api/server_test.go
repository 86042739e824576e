package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/descriptor-registry-server/internal/api"
	"github.com/stacklok/descriptor-registry-server/internal/api/common"
	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
	"github.com/stacklok/descriptor-registry-server/internal/service"
	"github.com/stacklok/descriptor-registry-server/internal/service/inmemory"
	"github.com/stacklok/descriptor-registry-server/internal/service/mocks"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	repo, err := inmemory.New()
	require.NoError(t, err)
	svc, err := service.NewRegistryService(repo)
	require.NoError(t, err)

	return api.NewServer(svc, api.WithMiddlewares(middleware.RequestID, api.LoggingMiddleware))
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	// health does not touch the service
	server := api.NewServer(mocks.NewMockRegistryService(ctrl))

	rec := do(t, server, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockSvc := mocks.NewMockRegistryService(ctrl)

	without := api.NewServer(mockSvc)
	assert.Equal(t, http.StatusNotFound, do(t, without, http.MethodGet, "/metrics", "").Code)

	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("registry_up 1\n"))
	})
	with := api.NewServer(mockSvc, api.WithMetricsHandler(metrics))
	rec := do(t, with, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "registry_up 1\n", rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "unknown root path", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
		{name: "unknown api path", method: http.MethodGet, path: "/api/v3.0/nope", wantStatus: http.StatusNotFound},
		{
			name:       "method not allowed",
			method:     http.MethodPatch,
			path:       "/api/v3.0/shell-descriptors",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, server, tt.method, tt.path, "")
			assert.Equal(t, tt.wantStatus, rec.Code)

			var result common.ErrorResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
			require.Len(t, result.Messages, 1)
			assert.Equal(t, common.MessageTypeError, result.Messages[0].MessageType)
		})
	}
}

func TestShellLifecycle(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	codec := service.Base64URLCodec{}
	shellPath := api.APIPrefix + "/shell-descriptors/" + codec.Encode("urn:shell:S1")

	rec := do(t, server, http.MethodPost, api.APIPrefix+"/shell-descriptors",
		`{"id":"urn:shell:S1","submodelDescriptors":[{"id":"urn:sm:M1"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, shellPath, rec.Header().Get("Location"))

	rec = do(t, server, http.MethodGet, shellPath+"/submodel-descriptors", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var page common.PagedResult[descriptor.Submodel]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Result, 1)
	assert.Equal(t, "urn:sm:M1", page.Result[0].ID)
	assert.Empty(t, page.PagingMetadata.Cursor)

	nestedPath := shellPath + "/submodel-descriptors/" + codec.Encode("urn:sm:M1")
	assert.Equal(t, http.StatusOK, do(t, server, http.MethodGet, nestedPath, "").Code)

	// nested submodels are invisible to the standalone keyspace
	assert.Equal(t, http.StatusNotFound,
		do(t, server, http.MethodGet, api.APIPrefix+"/submodel-descriptors/"+codec.Encode("urn:sm:M1"), "").Code)

	assert.Equal(t, http.StatusNoContent, do(t, server, http.MethodDelete, shellPath, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, server, http.MethodGet, shellPath, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, server, http.MethodGet, nestedPath, "").Code)
}

func TestStandaloneSubmodelLifecycle(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	collection := api.APIPrefix + "/submodel-descriptors"
	itemPath := collection + "/" + service.Base64URLCodec{}.Encode("urn:sm:X")

	assert.Equal(t, http.StatusCreated, do(t, server, http.MethodPost, collection, `{"id":"urn:sm:X"}`).Code)
	assert.Equal(t, http.StatusConflict, do(t, server, http.MethodPost, collection, `{"id":"urn:sm:X"}`).Code)
	assert.Equal(t, http.StatusNoContent,
		do(t, server, http.MethodPut, itemPath, `{"id":"urn:sm:X","idShort":"renamed"}`).Code)

	rec := do(t, server, http.MethodGet, itemPath, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"urn:sm:X","idShort":"renamed"}`, rec.Body.String())

	assert.Equal(t, http.StatusNoContent, do(t, server, http.MethodDelete, itemPath, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, server, http.MethodDelete, itemPath, "").Code)
	assert.Equal(t, http.StatusCreated, do(t, server, http.MethodPost, collection, `{"id":"urn:sm:X"}`).Code)
}

func TestShellPaging(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	collection := api.APIPrefix + "/shell-descriptors"
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.Equal(t, http.StatusCreated, do(t, server, http.MethodPost, collection, `{"id":"`+id+`"}`).Code)
	}

	var ids []string
	var sizes []int
	path := collection + "?limit=2"
	for {
		rec := do(t, server, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var page common.PagedResult[descriptor.Shell]
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		sizes = append(sizes, len(page.Result))
		for _, s := range page.Result {
			ids = append(ids, s.ID)
		}
		if page.PagingMetadata.Cursor == "" {
			break
		}
		path = collection + "?limit=2&cursor=" + page.PagingMetadata.Cursor
	}

	assert.Equal(t, []int{2, 2, 1}, sizes)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids)

	assert.Equal(t, http.StatusBadRequest, do(t, server, http.MethodGet, collection+"?limit=0", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, server, http.MethodGet, collection+"?cursor=5", "").Code)
}

func TestUndecodableIdentifier(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	rec := do(t, server, http.MethodGet, api.APIPrefix+"/shell-descriptors/not%20base64!", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRejectedDescriptorPayloads(t *testing.T) {
	t.Parallel()

	shells := api.APIPrefix + "/shell-descriptors"
	submodels := api.APIPrefix + "/submodel-descriptors"
	nested := shells + "/" + service.Base64URLCodec{}.Encode("urn:ok") + "/submodel-descriptors"

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "lower case asset kind", path: shells, body: `{"id":"s1","assetKind":"instance"}`},
		{name: "unknown asset kind", path: shells, body: `{"id":"s2","assetKind":"Bogus"}`},
		{name: "NUL in shell text", path: shells, body: `{"id":"s3","idShort":"a\u0000b"}`},
		{
			name: "NUL in nested submodel text",
			path: shells,
			body: `{"id":"s4","submodelDescriptors":[{"id":"m","description":[{"language":"en","text":"\u0000"}]}]}`,
		},
		{name: "NUL in standalone submodel text", path: submodels, body: `{"id":"m1","idShort":"\u0000"}`},
		{name: "NUL in added nested submodel", path: nested, body: `{"id":"m2","idShort":"\u0000"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := newTestServer(t)
			require.Equal(t, http.StatusCreated, do(t, server, http.MethodPost, shells, `{"id":"urn:ok"}`).Code)

			rec := do(t, server, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestAssetKindFilterMatchesStoredShells(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	collection := api.APIPrefix + "/shell-descriptors"
	require.Equal(t, http.StatusCreated,
		do(t, server, http.MethodPost, collection, `{"id":"s1","assetKind":"Instance"}`).Code)
	require.Equal(t, http.StatusBadRequest,
		do(t, server, http.MethodPost, collection, `{"id":"s2","assetKind":"instance"}`).Code)

	rec := do(t, server, http.MethodGet, collection+"?assetKind=instance", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page common.PagedResult[descriptor.Shell]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	require.Len(t, page.Result, 1)
	assert.Equal(t, "s1", page.Result[0].ID)
}
