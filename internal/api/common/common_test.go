package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/descriptor-registry-server/internal/service"
)

func TestStatusForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid argument", err: service.NewInvalidArgumentError("bad"), want: http.StatusBadRequest},
		{name: "not found", err: service.NewShellNotFoundError("s"), want: http.StatusNotFound},
		{name: "already exists", err: service.NewSubmodelAlreadyExistsError("m"), want: http.StatusConflict},
		{name: "storage", err: service.NewStorageError("op", errors.New("down")), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StatusForError(tt.err))
		})
	}
}

func TestWriteServiceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{
			name:       "not found keeps message",
			err:        service.NewShellNotFoundError("urn:s"),
			wantStatus: http.StatusNotFound,
			wantText:   "shell not found (id: urn:s)",
		},
		{
			name:       "storage failure hides cause",
			err:        service.NewStorageError("get shell", errors.New("password authentication failed")),
			wantStatus: http.StatusInternalServerError,
			wantText:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			WriteServiceError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Len(t, body.Messages, 1)
			msg := body.Messages[0]
			assert.Equal(t, MessageTypeError, msg.MessageType)
			assert.Equal(t, tt.wantText, msg.Text)
			assert.Equal(t, strconv.Itoa(tt.wantStatus), msg.Code)
			assert.NotEmpty(t, msg.Timestamp)
			_, err := uuid.Parse(msg.CorrelationID)
			require.NoError(t, err)
		})
	}
}

func TestNewPagedResult(t *testing.T) {
	t.Parallel()

	empty := NewPagedResult(&service.Page[string]{})
	data, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.JSONEq(t, `{"paging_metadata":{},"result":[]}`, string(data))

	next := NewPagedResult(&service.Page[string]{Items: []string{"a", "b"}, NextCursor: "2"})
	data, err = json.Marshal(next)
	require.NoError(t, err)
	assert.JSONEq(t, `{"paging_metadata":{"cursor":"2"},"result":["a","b"]}`, string(data))
}

func TestDecodeJSONBody(t *testing.T) {
	t.Parallel()

	var dst struct {
		ID string `json:"id"`
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":"urn:x"}`))
	require.NoError(t, DecodeJSONBody(rec, req, &dst))
	assert.Equal(t, "urn:x", dst.ID)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"id":`))
	require.ErrorIs(t, DecodeJSONBody(rec, req, &dst), service.ErrInvalidArgument)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	require.ErrorIs(t, DecodeJSONBody(rec, req, &dst), service.ErrInvalidArgument)

	huge := `{"id":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(huge))
	err := DecodeJSONBody(rec, req, &dst)
	require.ErrorIs(t, err, service.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "exceeds")
}
