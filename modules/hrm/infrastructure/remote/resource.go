package remote

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
)

// resource is one REST collection. Row is the wire representation of
// a record.
type resource[Row any] struct {
	client *Client
	base   string
}

func newResource[Row any](client *Client, base string) resource[Row] {
	return resource[Row]{client: client, base: base}
}

func (r resource[Row]) list(ctx context.Context, query url.Values) ([]Row, error) {
	path := r.base
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	var rows []Row
	if err := r.client.getJSON(ctx, path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r resource[Row]) create(ctx context.Context, payload any) (Row, error) {
	var row Row
	err := r.client.sendJSON(ctx, http.MethodPost, r.base, payload, &row)
	return row, err
}

func (r resource[Row]) update(ctx context.Context, id string, payload any) (Row, error) {
	var row Row
	err := r.client.sendJSON(ctx, http.MethodPut, r.base+"/"+url.PathEscape(id), payload, &row)
	return row, err
}

// deleteMany deletes a batch in one call; the server treats the batch
// as all-or-nothing.
func (r resource[Row]) deleteMany(ctx context.Context, ids []string) error {
	payload := struct {
		IDs []string `json:"ids"`
	}{IDs: ids}
	return r.client.sendJSON(ctx, http.MethodPost, r.base+"/bulk-delete", payload, nil)
}

func (r resource[Row]) importFile(ctx context.Context, filename string, src io.Reader) (int, error) {
	var out struct {
		ImportedCount int `json:"importedCount"`
	}
	if err := r.client.upload(ctx, r.base+"/import", filename, src, &out); err != nil {
		return 0, err
	}
	return out.ImportedCount, nil
}

func (r resource[Row]) exportFile(ctx context.Context, scope exports.Scope) ([]byte, error) {
	return r.client.download(ctx, r.base+"/export?"+scope.Query().Encode())
}
