package listview

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sirupsen/logrus"

	"github.com/avetra/hrdesk/pkg/serrors"
)

// Item is one row of a managed collection. IDs are unique within a
// snapshot.
type Item interface {
	ItemID() string
}

// Source is the remote collection the engine fronts. Failures are
// non-fatal to the engine: the last-known-good snapshot stays in
// place.
type Source[T Item] interface {
	List(ctx context.Context) ([]T, error)
	DeleteMany(ctx context.Context, ids []string) error
	Import(ctx context.Context, filename string, r io.Reader) (int, error)
}

// Confirmer asks the user before destructive actions.
type Confirmer interface {
	Confirm(ctx context.Context, title, body string) (bool, error)
}

// Notifier renders transient acknowledgments and failures.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type MatchMode int

const (
	// MatchSubstring matches rows whose searchable fields contain the
	// filter text, case-insensitively.
	MatchSubstring MatchMode = iota
	// MatchFuzzy matches rows via normalized fuzzy matching.
	MatchFuzzy
)

type Config[T Item] struct {
	Source    Source[T]
	Confirmer Confirmer
	Notifier  Notifier
	Logger    *logrus.Logger

	PageSize  int
	MatchMode MatchMode
	// SearchFields extract the values the free-text filter runs over.
	SearchFields []func(T) string
	// Less overrides the default sort (ascending ItemID).
	Less func(a, b T) bool
}

// Engine owns a filtered, paginated, selectable view over a snapshot
// of a remote collection. All exported methods are safe for use from
// a single event loop; internal locking only protects against a fetch
// completing while another event runs.
type Engine[T Item] struct {
	cfg Config[T]

	mu       sync.Mutex
	snapshot []T
	filter   string
	page     int
	pageSize int
	allRows  bool
	selected map[string]struct{}
	fetchSeq uint64
}

func NewEngine[T Item](cfg Config[T]) *Engine[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	return &Engine[T]{
		cfg:      cfg,
		page:     1,
		pageSize: cfg.PageSize,
		selected: make(map[string]struct{}),
	}
}

// Refresh fetches a fresh snapshot. A refresh started later always
// wins: responses of superseded fetches are discarded so rapid
// filter/year changes cannot apply a stale list.
func (e *Engine[T]) Refresh(ctx context.Context) error {
	e.mu.Lock()
	e.fetchSeq++
	seq := e.fetchSeq
	e.mu.Unlock()

	rows, err := e.cfg.Source.List(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	if seq != e.fetchSeq {
		e.cfg.Logger.WithFields(logrus.Fields{"seq": seq, "latest": e.fetchSeq}).
			Debug("listview: discarding superseded fetch response")
		return nil
	}
	if err != nil {
		e.notifyError(err, "failed to load records")
		return err
	}
	e.snapshot = rows
	e.pruneSelectionLocked()
	e.clampPageLocked()
	return nil
}

// SetFilterText stores the free-text filter. Pagination resets to the
// first page so the view can never land on an out-of-range page, and
// the selection is cleared because prior selections may no longer be
// visible.
func (e *Engine[T]) SetFilterText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.filter == text {
		return
	}
	e.filter = text
	e.page = 1
	e.selected = make(map[string]struct{})
}

// SetPage moves to page n, clamped into [1, TotalPages]. Moving to a
// different page clears the selection.
func (e *Engine[T]) SetPage(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := e.totalPagesLocked()
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	if n == e.page {
		return
	}
	e.page = n
	e.selected = make(map[string]struct{})
}

// SetPageSize changes the page length and clears the selection. The
// current page is clamped so it stays in range.
func (e *Engine[T]) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pageSize = size
	e.allRows = false
	e.selected = make(map[string]struct{})
	e.clampPageLocked()
}

// SetPageSizeAll shows every currently filtered row on a single page.
// The size tracks the filtered count, not the unfiltered collection.
func (e *Engine[T]) SetPageSizeAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.allRows = true
	e.page = 1
	e.selected = make(map[string]struct{})
}

func (e *Engine[T]) FilterText() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filter
}

func (e *Engine[T]) Page() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.page
}

func (e *Engine[T]) PageSize() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.effectivePageSizeLocked()
}

// Filtered returns all snapshot rows matching the current filter, in
// the engine's sort order.
func (e *Engine[T]) Filtered() []T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filteredLocked()
}

// Visible returns the rows of the current page.
func (e *Engine[T]) Visible() []T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visibleLocked()
}

func (e *Engine[T]) TotalPages() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalPagesLocked()
}

// ToggleSelect adds or removes id from the selection. Only ids on the
// current visible page are selectable.
func (e *Engine[T]) ToggleSelect(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	visible := false
	for _, row := range e.visibleLocked() {
		if row.ItemID() == id {
			visible = true
			break
		}
	}
	if !visible {
		e.cfg.Logger.WithField("id", id).Debug("listview: ignoring selection of non-visible row")
		return
	}
	if _, ok := e.selected[id]; ok {
		delete(e.selected, id)
	} else {
		e.selected[id] = struct{}{}
	}
}

// ToggleSelectAllVisible selects exactly the current page, or clears
// the selection when the page is already fully selected. Rows on
// other pages are never touched.
func (e *Engine[T]) ToggleSelectAllVisible() {
	e.mu.Lock()
	defer e.mu.Unlock()
	visible := e.visibleLocked()
	all := len(visible) > 0 && len(visible) == len(e.selected)
	if all {
		for _, row := range visible {
			if _, ok := e.selected[row.ItemID()]; !ok {
				all = false
				break
			}
		}
	}
	e.selected = make(map[string]struct{}, len(visible))
	if all {
		return
	}
	for _, row := range visible {
		e.selected[row.ItemID()] = struct{}{}
	}
}

// SelectedIDs returns the selection in sorted order.
func (e *Engine[T]) SelectedIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]string, 0, len(e.selected))
	for id := range e.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// BulkDelete deletes the selected rows after confirmation. An empty
// selection is a no-op: the confirmer is not even consulted. On
// failure local state is left untouched; the whole batch counts as
// failed.
func (e *Engine[T]) BulkDelete(ctx context.Context, title, body string) error {
	ids := e.SelectedIDs()
	if len(ids) == 0 {
		return nil
	}
	ok, err := e.cfg.Confirmer.Confirm(ctx, title, body)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := e.cfg.Source.DeleteMany(ctx, ids); err != nil {
		e.cfg.Logger.WithError(err).WithField("count", len(ids)).Error("listview: bulk delete failed")
		e.notifyError(err, "failed to delete records")
		return err
	}
	e.mu.Lock()
	e.selected = make(map[string]struct{})
	e.mu.Unlock()
	if e.cfg.Notifier != nil {
		e.cfg.Notifier.Success("records deleted")
	}
	return e.Refresh(ctx)
}

// Delete removes a single row after confirmation. Any remaining
// selection is recomputed from the post-mutation snapshot, so an
// overlapping bulk selection never keeps a deleted id.
func (e *Engine[T]) Delete(ctx context.Context, id, title, body string) error {
	ok, err := e.cfg.Confirmer.Confirm(ctx, title, body)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := e.cfg.Source.DeleteMany(ctx, []string{id}); err != nil {
		e.cfg.Logger.WithError(err).WithField("id", id).Error("listview: delete failed")
		e.notifyError(err, "failed to delete record")
		return err
	}
	if e.cfg.Notifier != nil {
		e.cfg.Notifier.Success("record deleted")
	}
	return e.Refresh(ctx)
}

// ImportFile hands a spreadsheet to the store's import endpoint and
// refreshes on success.
func (e *Engine[T]) ImportFile(ctx context.Context, filename string, r io.Reader) error {
	n, err := e.cfg.Source.Import(ctx, filename, r)
	if err != nil {
		e.cfg.Logger.WithError(err).WithField("filename", filename).Error("listview: import failed")
		e.notifyError(err, "failed to import file")
		return err
	}
	e.cfg.Logger.WithFields(logrus.Fields{"filename": filename, "imported": n}).Info("listview: import complete")
	if e.cfg.Notifier != nil {
		e.cfg.Notifier.Success("import complete")
	}
	return e.Refresh(ctx)
}

func (e *Engine[T]) notifyError(err error, fallback string) {
	if e.cfg.Notifier == nil {
		return
	}
	e.cfg.Notifier.Error(serrors.UserMessage(err, fallback))
}

func (e *Engine[T]) matches(row T, needle string) bool {
	for _, field := range e.cfg.SearchFields {
		value := field(row)
		switch e.cfg.MatchMode {
		case MatchFuzzy:
			if fuzzy.MatchNormalizedFold(needle, value) {
				return true
			}
		default:
			if strings.Contains(strings.ToLower(value), strings.ToLower(needle)) {
				return true
			}
		}
	}
	return false
}

func (e *Engine[T]) filteredLocked() []T {
	rows := make([]T, 0, len(e.snapshot))
	for _, row := range e.snapshot {
		if e.filter == "" || e.matches(row, e.filter) {
			rows = append(rows, row)
		}
	}
	less := e.cfg.Less
	if less == nil {
		less = func(a, b T) bool { return a.ItemID() < b.ItemID() }
	}
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
	return rows
}

func (e *Engine[T]) visibleLocked() []T {
	rows := e.filteredLocked()
	size := e.effectivePageSizeLocked()
	start := (e.page - 1) * size
	if start >= len(rows) {
		return nil
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

func (e *Engine[T]) effectivePageSizeLocked() int {
	if e.allRows {
		if n := len(e.filteredLocked()); n > 0 {
			return n
		}
		return 1
	}
	return e.pageSize
}

func (e *Engine[T]) totalPagesLocked() int {
	count := len(e.filteredLocked())
	size := e.effectivePageSizeLocked()
	total := (count + size - 1) / size
	if total < 1 {
		total = 1
	}
	return total
}

func (e *Engine[T]) clampPageLocked() {
	total := e.totalPagesLocked()
	if e.page > total {
		e.page = total
	}
	if e.page < 1 {
		e.page = 1
	}
}

func (e *Engine[T]) pruneSelectionLocked() {
	if len(e.selected) == 0 {
		return
	}
	present := make(map[string]struct{}, len(e.snapshot))
	for _, row := range e.snapshot {
		present[row.ItemID()] = struct{}{}
	}
	for id := range e.selected {
		if _, ok := present[id]; !ok {
			delete(e.selected, id)
		}
	}
}
