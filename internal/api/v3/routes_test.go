package v3

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/descriptor-registry-server/internal/api/common"
	"github.com/stacklok/descriptor-registry-server/internal/descriptor"
	"github.com/stacklok/descriptor-registry-server/internal/service"
	"github.com/stacklok/descriptor-registry-server/internal/service/mocks"
)

const (
	// base64url of "urn:example:shell:1"
	encodedShellID = "dXJuOmV4YW1wbGU6c2hlbGw6MQ"
	// base64url of "urn:example:submodel:1"
	encodedSubmodelID = "dXJuOmV4YW1wbGU6c3VibW9kZWw6MQ"
)

func TestRoutes(t *testing.T) {
	t.Parallel()

	shell := &descriptor.Shell{ID: "urn:example:shell:1", IDShort: "pump"}
	submodel := &descriptor.Submodel{ID: "urn:example:submodel:1"}

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		setupMocks   func(*mocks.MockRegistryService)
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:   "list shells",
			method: http.MethodGet,
			path:   "/shell-descriptors?limit=1",
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().ListShells(gomock.Any(), gomock.Any()).
					Return(&service.Page[*descriptor.Shell]{Items: []*descriptor.Shell{shell}, NextCursor: "1"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"paging_metadata":{"cursor":"1"},"result":[{"id":"urn:example:shell:1","idShort":"pump"}]}`,
		},
		{
			name:       "list shells with bad limit",
			method:     http.MethodGet,
			path:       "/shell-descriptors?limit=abc",
			setupMocks: func(*mocks.MockRegistryService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "list shells with bad asset kind",
			method:     http.MethodGet,
			path:       "/shell-descriptors?assetKind=Virtual",
			setupMocks: func(*mocks.MockRegistryService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "list shells with invalid cursor",
			method: http.MethodGet,
			path:   "/shell-descriptors?cursor=99",
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().ListShells(gomock.Any(), gomock.Any()).
					Return(nil, service.NewInvalidArgumentError("invalid cursor (cursor: 99)"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "get shell",
			method: http.MethodGet,
			path:   "/shell-descriptors/" + encodedShellID,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().GetShell(gomock.Any(), encodedShellID).Return(shell, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"urn:example:shell:1","idShort":"pump"}`,
		},
		{
			name:   "get missing shell",
			method: http.MethodGet,
			path:   "/shell-descriptors/" + encodedShellID,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().GetShell(gomock.Any(), encodedShellID).
					Return(nil, service.NewShellNotFoundError("urn:example:shell:1"))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "create shell",
			method: http.MethodPost,
			path:   "/shell-descriptors",
			body:   `{"id":"urn:example:shell:1","idShort":"pump"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().CreateShell(gomock.Any(), shell).Return(shell, nil)
			},
			wantStatus:   http.StatusCreated,
			wantLocation: "/shell-descriptors/" + encodedShellID,
			wantBody:     `{"id":"urn:example:shell:1","idShort":"pump"}`,
		},
		{
			name:   "create duplicate shell",
			method: http.MethodPost,
			path:   "/shell-descriptors",
			body:   `{"id":"urn:example:shell:1","idShort":"pump"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().CreateShell(gomock.Any(), shell).
					Return(nil, service.NewShellAlreadyExistsError("urn:example:shell:1"))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "create shell with malformed body",
			method:     http.MethodPost,
			path:       "/shell-descriptors",
			body:       `{"id":`,
			setupMocks: func(*mocks.MockRegistryService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "update shell",
			method: http.MethodPut,
			path:   "/shell-descriptors/" + encodedShellID,
			body:   `{"id":"urn:example:shell:1","idShort":"pump"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().UpdateShell(gomock.Any(), encodedShellID, shell).Return(shell, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "delete shell",
			method: http.MethodDelete,
			path:   "/shell-descriptors/" + encodedShellID,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().DeleteShell(gomock.Any(), encodedShellID).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "delete shell storage failure",
			method: http.MethodDelete,
			path:   "/shell-descriptors/" + encodedShellID,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().DeleteShell(gomock.Any(), encodedShellID).
					Return(service.NewStorageError("delete shell", errors.New("conn closed")))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "list shell submodels",
			method: http.MethodGet,
			path:   "/shell-descriptors/" + encodedShellID + "/submodel-descriptors",
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().ListShellSubmodels(gomock.Any(), encodedShellID, gomock.Any()).
					Return(&service.Page[*descriptor.Submodel]{Items: []*descriptor.Submodel{submodel}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"paging_metadata":{},"result":[{"id":"urn:example:submodel:1"}]}`,
		},
		{
			name:   "get shell submodel",
			method: http.MethodGet,
			path:   "/shell-descriptors/" + encodedShellID + "/submodel-descriptors/" + encodedSubmodelID,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().GetShellSubmodel(gomock.Any(), encodedShellID, encodedSubmodelID).Return(submodel, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"urn:example:submodel:1"}`,
		},
		{
			name:   "create shell submodel",
			method: http.MethodPost,
			path:   "/shell-descriptors/" + encodedShellID + "/submodel-descriptors",
			body:   `{"id":"urn:example:submodel:1"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().CreateShellSubmodel(gomock.Any(), encodedShellID, submodel).Return(submodel, nil)
			},
			wantStatus:   http.StatusCreated,
			wantLocation: "/shell-descriptors/" + encodedShellID + "/submodel-descriptors/" + encodedSubmodelID,
		},
		{
			name:   "update shell submodel",
			method: http.MethodPut,
			path:   "/shell-descriptors/" + encodedShellID + "/submodel-descriptors/" + encodedSubmodelID,
			body:   `{"id":"urn:example:submodel:1"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().UpdateShellSubmodel(gomock.Any(), encodedShellID, encodedSubmodelID, submodel).
					Return(submodel, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "delete missing shell submodel",
			method: http.MethodDelete,
			path:   "/shell-descriptors/" + encodedShellID + "/submodel-descriptors/" + encodedSubmodelID,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().DeleteShellSubmodel(gomock.Any(), encodedShellID, encodedSubmodelID).
					Return(service.NewSubmodelNotFoundInShellError("urn:example:shell:1", "urn:example:submodel:1"))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "list submodels",
			method: http.MethodGet,
			path:   "/submodel-descriptors?limit=5&cursor=0",
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().ListSubmodels(gomock.Any(), gomock.Any()).
					Return(&service.Page[*descriptor.Submodel]{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"paging_metadata":{},"result":[]}`,
		},
		{
			name:   "get submodel",
			method: http.MethodGet,
			path:   "/submodel-descriptors/" + encodedSubmodelID,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().GetSubmodel(gomock.Any(), encodedSubmodelID).Return(submodel, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "create submodel",
			method: http.MethodPost,
			path:   "/submodel-descriptors",
			body:   `{"id":"urn:example:submodel:1"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().CreateSubmodel(gomock.Any(), submodel).Return(submodel, nil)
			},
			wantStatus:   http.StatusCreated,
			wantLocation: "/submodel-descriptors/" + encodedSubmodelID,
		},
		{
			name:   "update submodel with colliding id",
			method: http.MethodPut,
			path:   "/submodel-descriptors/" + encodedSubmodelID,
			body:   `{"id":"urn:example:submodel:1"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().UpdateSubmodel(gomock.Any(), encodedSubmodelID, submodel).
					Return(nil, service.NewSubmodelAlreadyExistsError("urn:example:submodel:1"))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "delete submodel",
			method: http.MethodDelete,
			path:   "/submodel-descriptors/" + encodedSubmodelID,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().DeleteSubmodel(gomock.Any(), encodedSubmodelID).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "description",
			method: http.MethodGet,
			path:   "/description",
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().Description(gomock.Any()).Return(&service.ServiceDescription{Profiles: []string{"p"}})
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"profiles":["p"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			mockSvc := mocks.NewMockRegistryService(ctrl)
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			Router(mockSvc, nil).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantStatus >= http.StatusBadRequest {
				var result common.ErrorResult
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
				require.Len(t, result.Messages, 1)
				assert.NotContains(t, result.Messages[0].Text, "conn closed")
			}
		})
	}
}

func TestListShellsQueryOptions(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSvc := mocks.NewMockRegistryService(ctrl)
	mockSvc.EXPECT().ListShells(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, opts ...service.Option[service.ListShellsOptions]) (*service.Page[*descriptor.Shell], error) {
			var applied service.ListShellsOptions
			for _, opt := range opts {
				require.NoError(t, opt(&applied))
			}
			require.NotNil(t, applied.Page.Limit)
			require.NotNil(t, applied.Page.Cursor)
			require.NotNil(t, applied.AssetType)
			assert.Equal(t, 2, *applied.Page.Limit)
			assert.Equal(t, "4", *applied.Page.Cursor)
			assert.Equal(t, "cHVtcA", *applied.AssetType)
			assert.Equal(t, descriptor.AssetKindInstance, applied.AssetKind)
			return &service.Page[*descriptor.Shell]{}, nil
		})

	req := httptest.NewRequest(http.MethodGet,
		"/shell-descriptors?limit=2&cursor=4&assetType=cHVtcA&assetKind=instance", nil)
	rec := httptest.NewRecorder()
	Router(mockSvc, service.Base64URLCodec{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateWithPlainCodecEscapesLocation(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	created := &descriptor.Submodel{ID: "https://example.com/sm/1"}
	mockSvc := mocks.NewMockRegistryService(ctrl)
	mockSvc.EXPECT().CreateSubmodel(gomock.Any(), created).Return(created, nil)

	req := httptest.NewRequest(http.MethodPost, "/submodel-descriptors", strings.NewReader(`{"id":"https://example.com/sm/1"}`))
	rec := httptest.NewRecorder()
	Router(mockSvc, service.PlainCodec{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/submodel-descriptors/https:%2F%2Fexample.com%2Fsm%2F1", rec.Header().Get("Location"))
}
