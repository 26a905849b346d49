package remote

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetra/hrdesk/modules/hrm/domain/entities/department"
	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
	"github.com/avetra/hrdesk/pkg/configuration"
	"github.com/avetra/hrdesk/pkg/serrors"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(configuration.APIOptions{
		BaseURL:         srv.URL,
		Token:           "secret",
		Timeout:         5 * time.Second,
		RequestIDHeader: "X-Request-ID",
	}, nil)
}

func TestListDecodesRowsAndSendsHeaders(t *testing.T) {
	var gotAuth, gotRID string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRID = r.Header.Get("X-Request-ID")
		require.Equal(t, "/departments", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]departmentRow{
			{ID: "1", Name: "Paie", Description: "paie et cotisations"},
			{ID: "2", Name: "Juridique"},
		})
	}))

	repo := NewDepartmentRepository(client)
	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Paie", rows[0].Name())
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.NotEmpty(t, gotRID)
}

func TestCreateSurfacesServerMessageOn4xx(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "name already taken"})
	}))

	repo := NewDepartmentRepository(client)
	_, err := repo.Create(context.Background(), &department.CreateDTO{Name: "Paie"})
	require.Error(t, err)
	assert.True(t, serrors.IsValidation(err))
	assert.Equal(t, "name already taken", serrors.UserMessage(err, "fallback"))
}

func TestNotFoundAndServerErrors(t *testing.T) {
	status := http.StatusNotFound
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("not json"))
	}))
	repo := NewDepartmentRepository(client)

	_, err := repo.List(context.Background())
	require.True(t, errors.Is(err, serrors.ErrNotFound))

	status = http.StatusInternalServerError
	_, err = repo.List(context.Background())
	require.True(t, errors.Is(err, serrors.ErrServer))
	assert.Equal(t, "server error", serrors.UserMessage(err, "fallback"))
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	client := NewClient(configuration.APIOptions{
		BaseURL:         "http://127.0.0.1:1",
		Timeout:         200 * time.Millisecond,
		RequestIDHeader: "X-Request-ID",
	}, nil)
	repo := NewDepartmentRepository(client)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, serrors.ErrNetwork))
}

func TestDeleteManySendsBatch(t *testing.T) {
	var got struct {
		IDs []string `json:"ids"`
	}
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/departments/bulk-delete", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))

	repo := NewDepartmentRepository(client)
	require.NoError(t, repo.DeleteMany(context.Background(), []string{"1", "3"}))
	assert.Equal(t, []string{"1", "3"}, got.IDs)
}

func TestImportUploadsMultipart(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/departments/import", r.URL.Path)
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "services.xlsx", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "workbook-bytes", string(content))
		_ = json.NewEncoder(w).Encode(map[string]int{"importedCount": 12})
	}))

	repo := NewDepartmentRepository(client)
	n, err := repo.Import(context.Background(), "services.xlsx", strings.NewReader("workbook-bytes"))
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestExportDownloadsBlobWithScope(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/departments/export", r.URL.Path)
		assert.Equal(t, "month", r.URL.Query().Get("scope"))
		assert.Equal(t, "2024-03", r.URL.Query().Get("month"))
		_, _ = w.Write([]byte("xlsx-blob"))
	}))

	repo := NewDepartmentRepository(client)
	scope := exports.ForMonth(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	blob, err := repo.Export(context.Background(), scope)
	require.NoError(t, err)
	assert.Equal(t, "xlsx-blob", string(blob))
}
