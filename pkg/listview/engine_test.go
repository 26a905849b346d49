package listview

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetra/hrdesk/pkg/serrors"
)

type dept struct {
	id   string
	name string
}

func (d dept) ItemID() string { return d.id }

type memSource struct {
	mu        sync.Mutex
	rows      []dept
	listErr   error
	deleteErr error
	importErr error
	deletes   [][]string
	imports   int
}

func (m *memSource) List(ctx context.Context) ([]dept, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]dept(nil), m.rows...), nil
}

func (m *memSource) DeleteMany(ctx context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes = append(m.deletes, ids)
	if m.deleteErr != nil {
		return m.deleteErr
	}
	doomed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}
	kept := m.rows[:0]
	for _, row := range m.rows {
		if _, ok := doomed[row.id]; !ok {
			kept = append(kept, row)
		}
	}
	m.rows = kept
	return nil
}

func (m *memSource) Import(ctx context.Context, filename string, r io.Reader) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.importErr != nil {
		return 0, m.importErr
	}
	m.imports++
	return 3, nil
}

type fakeConfirmer struct {
	answer bool
	calls  int
}

func (f *fakeConfirmer) Confirm(ctx context.Context, title, body string) (bool, error) {
	f.calls++
	return f.answer, nil
}

type fakeNotifier struct {
	successes []string
	failures  []string
}

func (f *fakeNotifier) Success(msg string) { f.successes = append(f.successes, msg) }
func (f *fakeNotifier) Error(msg string)   { f.failures = append(f.failures, msg) }

func newTestEngine(t *testing.T, rows []dept, pageSize int) (*Engine[dept], *memSource, *fakeConfirmer, *fakeNotifier) {
	t.Helper()
	src := &memSource{rows: rows}
	confirmer := &fakeConfirmer{answer: true}
	notifier := &fakeNotifier{}
	eng := NewEngine(Config[dept]{
		Source:       src,
		Confirmer:    confirmer,
		Notifier:     notifier,
		PageSize:     pageSize,
		SearchFields: []func(dept) string{func(d dept) string { return d.name }},
	})
	require.NoError(t, eng.Refresh(context.Background()))
	return eng, src, confirmer, notifier
}

func someDepts(n int) []dept {
	rows := make([]dept, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, dept{id: fmt.Sprintf("%02d", i), name: fmt.Sprintf("Department %02d", i)})
	}
	return rows
}

func TestFilterMatchesSubstringCaseInsensitive(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, []dept{
		{"1", "Ressources Humaines"},
		{"2", "Comptabilité"},
		{"3", "ressources matérielles"},
	}, 10)

	eng.SetFilterText("RESSOURCES")
	filtered := eng.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].id)
	assert.Equal(t, "3", filtered[1].id)

	eng.SetFilterText("")
	assert.Len(t, eng.Filtered(), 3)
}

func TestFilterResetsPageAndSelection(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, someDepts(25), 10)

	eng.SetPage(3)
	require.Equal(t, 3, eng.Page())
	eng.ToggleSelect("21")
	require.Len(t, eng.SelectedIDs(), 1)

	eng.SetFilterText("Department")
	assert.Equal(t, 1, eng.Page())
	assert.Empty(t, eng.SelectedIDs())
}

func TestTotalPagesAndClamping(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, someDepts(25), 10)
	assert.Equal(t, 3, eng.TotalPages())

	eng.SetPage(99)
	assert.Equal(t, 3, eng.Page())
	eng.SetPage(-4)
	assert.Equal(t, 1, eng.Page())
}

func TestEmptySnapshotIsSafe(t *testing.T) {
	eng, _, confirmer, _ := newTestEngine(t, nil, 10)
	assert.Equal(t, 1, eng.TotalPages())
	assert.Empty(t, eng.Visible())

	eng.ToggleSelectAllVisible()
	assert.Empty(t, eng.SelectedIDs())

	require.NoError(t, eng.BulkDelete(context.Background(), "Delete", "Sure?"))
	assert.Zero(t, confirmer.calls)
}

func TestSetPageSizeAllUsesFilteredCount(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, []dept{
		{"1", "Paie"},
		{"2", "Paie adjointe"},
		{"3", "Juridique"},
	}, 2)

	eng.SetFilterText("paie")
	eng.SetPageSizeAll()
	assert.Equal(t, 2, eng.PageSize())
	assert.Equal(t, 1, eng.TotalPages())
	assert.Len(t, eng.Visible(), 2)
}

func TestToggleSelectOnlyVisibleRows(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, someDepts(25), 10)

	eng.ToggleSelect("05")
	assert.Equal(t, []string{"05"}, eng.SelectedIDs())

	// Row 15 lives on page 2; selecting it from page 1 is a no-op.
	eng.ToggleSelect("15")
	assert.Equal(t, []string{"05"}, eng.SelectedIDs())

	eng.ToggleSelect("05")
	assert.Empty(t, eng.SelectedIDs())
}

func TestToggleSelectAllVisibleIsIdempotentPair(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, someDepts(25), 10)
	eng.SetPage(3)

	eng.ToggleSelectAllVisible()
	assert.Equal(t, []string{"21", "22", "23", "24", "25"}, eng.SelectedIDs())

	eng.ToggleSelectAllVisible()
	assert.Empty(t, eng.SelectedIDs())
}

func TestToggleSelectAllVisibleReplacesPartialSelection(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, someDepts(12), 10)

	eng.ToggleSelect("03")
	eng.ToggleSelectAllVisible()
	assert.Len(t, eng.SelectedIDs(), 10)
}

func TestBulkDeleteDeclined(t *testing.T) {
	eng, src, confirmer, _ := newTestEngine(t, someDepts(5), 10)
	confirmer.answer = false

	eng.ToggleSelect("01")
	require.NoError(t, eng.BulkDelete(context.Background(), "Delete", "Sure?"))
	assert.Equal(t, 1, confirmer.calls)
	assert.Empty(t, src.deletes)
	assert.Equal(t, []string{"01"}, eng.SelectedIDs())
}

func TestBulkDeleteSuccess(t *testing.T) {
	eng, src, _, notifier := newTestEngine(t, someDepts(5), 10)

	eng.ToggleSelect("01")
	eng.ToggleSelect("03")
	require.NoError(t, eng.BulkDelete(context.Background(), "Delete", "Sure?"))

	assert.Equal(t, [][]string{{"01", "03"}}, src.deletes)
	assert.Empty(t, eng.SelectedIDs())
	assert.Len(t, eng.Filtered(), 3)
	assert.NotEmpty(t, notifier.successes)
}

func TestBulkDeleteFailureLeavesStateIntact(t *testing.T) {
	eng, src, _, notifier := newTestEngine(t, someDepts(5), 10)
	src.deleteErr = serrors.ErrServer.WithMessage("deletion rejected")

	eng.ToggleSelect("02")
	err := eng.BulkDelete(context.Background(), "Delete", "Sure?")
	require.Error(t, err)

	assert.Equal(t, []string{"02"}, eng.SelectedIDs())
	assert.Len(t, eng.Filtered(), 5)
	require.NotEmpty(t, notifier.failures)
	assert.Equal(t, "deletion rejected", notifier.failures[0])
}

func TestSingleDeletePrunesOverlappingSelection(t *testing.T) {
	eng, _, _, _ := newTestEngine(t, someDepts(5), 10)

	eng.ToggleSelect("02")
	eng.ToggleSelect("04")
	require.NoError(t, eng.Delete(context.Background(), "02", "Delete", "Sure?"))

	// The deleted id must not survive in the selection; the other one
	// is still present in the fresh snapshot and stays selected.
	assert.Equal(t, []string{"04"}, eng.SelectedIDs())
}

func TestRefreshFailureKeepsLastKnownGoodSnapshot(t *testing.T) {
	eng, src, _, notifier := newTestEngine(t, someDepts(5), 10)

	src.mu.Lock()
	src.listErr = serrors.ErrNetwork
	src.mu.Unlock()
	require.Error(t, eng.Refresh(context.Background()))

	assert.Len(t, eng.Filtered(), 5)
	assert.NotEmpty(t, notifier.failures)
}

func TestImportSuccessTriggersRefresh(t *testing.T) {
	eng, src, _, notifier := newTestEngine(t, someDepts(2), 10)

	src.mu.Lock()
	src.rows = append(src.rows, dept{"99", "Imported"})
	src.mu.Unlock()

	require.NoError(t, eng.ImportFile(context.Background(), "depts.xlsx", strings.NewReader("stub")))
	assert.Equal(t, 1, src.imports)
	assert.Len(t, eng.Filtered(), 3)
	assert.NotEmpty(t, notifier.successes)
}

func TestImportFailureLeavesStateIntact(t *testing.T) {
	eng, src, _, notifier := newTestEngine(t, someDepts(2), 10)
	src.importErr = serrors.ErrValidation.WithMessage("malformed workbook")

	require.Error(t, eng.ImportFile(context.Background(), "depts.xlsx", strings.NewReader("stub")))
	assert.Len(t, eng.Filtered(), 2)
	require.NotEmpty(t, notifier.failures)
	assert.Equal(t, "malformed workbook", notifier.failures[0])
}

type gatedSource struct {
	started chan struct{}
	gate    chan struct{}
	first   []dept
	second  []dept

	mu    sync.Mutex
	calls int
}

func (g *gatedSource) List(ctx context.Context) ([]dept, error) {
	g.mu.Lock()
	g.calls++
	n := g.calls
	g.mu.Unlock()
	if n == 1 {
		close(g.started)
		<-g.gate
		return g.first, nil
	}
	return g.second, nil
}

func (g *gatedSource) DeleteMany(ctx context.Context, ids []string) error { return nil }
func (g *gatedSource) Import(ctx context.Context, filename string, r io.Reader) (int, error) {
	return 0, nil
}

func TestStaleFetchResponseIsDiscarded(t *testing.T) {
	src := &gatedSource{
		started: make(chan struct{}),
		gate:    make(chan struct{}),
		first:   someDepts(2),
		second:  someDepts(4),
	}
	eng := NewEngine(Config[dept]{
		Source:       src,
		Confirmer:    &fakeConfirmer{},
		Notifier:     &fakeNotifier{},
		PageSize:     10,
		SearchFields: []func(dept) string{func(d dept) string { return d.name }},
	})

	done := make(chan error, 1)
	go func() { done <- eng.Refresh(context.Background()) }()
	<-src.started

	// A second refresh starts and completes while the first is still
	// in flight; its response must win.
	require.NoError(t, eng.Refresh(context.Background()))
	close(src.gate)
	require.NoError(t, <-done)

	assert.Len(t, eng.Filtered(), 4)
}
