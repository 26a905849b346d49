package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avetra/hrdesk/modules/hrm/domain/aggregates/charge"
	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
)

type stubPublisher struct {
	events []interface{}
}

func (s *stubPublisher) Publish(args ...interface{}) { s.events = append(s.events, args...) }
func (s *stubPublisher) Subscribe(handler interface{})   {}
func (s *stubPublisher) Unsubscribe(handler interface{}) {}
func (s *stubPublisher) Clear()                          {}
func (s *stubPublisher) SubscribersCount() int           { return 0 }

type mockChargeRepo struct {
	called  bool
	charges []charge.Charge
}

func (m *mockChargeRepo) mark() { m.called = true }

func (m *mockChargeRepo) List(ctx context.Context) ([]charge.Charge, error) {
	return m.charges, nil
}

func (m *mockChargeRepo) ListByYear(ctx context.Context, params *charge.FindParams) ([]charge.Charge, error) {
	return m.charges, nil
}

func (m *mockChargeRepo) Create(ctx context.Context, data *charge.CreateDTO) (charge.Charge, error) {
	m.mark()
	return data.ToEntity(), nil
}

func (m *mockChargeRepo) Update(ctx context.Context, id string, data *charge.UpdateDTO) (charge.Charge, error) {
	m.mark()
	return data.ToEntity(id), nil
}

func (m *mockChargeRepo) DeleteMany(ctx context.Context, ids []string) error {
	m.mark()
	return nil
}

func (m *mockChargeRepo) Import(ctx context.Context, filename string, r io.Reader) (int, error) {
	m.mark()
	return 0, nil
}

func (m *mockChargeRepo) Export(ctx context.Context, scope exports.Scope) ([]byte, error) {
	m.mark()
	return []byte("blob"), nil
}

func TestChargeServiceAuthorizeCreateDenied(t *testing.T) {
	t.Cleanup(func() { authorizeHRMFn = defaultAuthorizeHRM })

	repo := &mockChargeRepo{}
	svc := NewChargeService(repo, &stubPublisher{})

	authorizeHRMFn = func(ctx context.Context, object, action string) error {
		require.Equal(t, ChargesObject, object)
		require.Equal(t, "create", action)
		return errors.New("forbidden")
	}

	_, err := svc.Create(context.Background(), &charge.CreateDTO{Period: "2024-03"})
	require.Error(t, err)
	require.False(t, repo.called, "repository should not be called when authorization fails")
}

func TestChargeServiceCreatePublishesEvent(t *testing.T) {
	repo := &mockChargeRepo{}
	bus := &stubPublisher{}
	svc := NewChargeService(repo, bus)

	created, err := svc.Create(context.Background(), &charge.CreateDTO{
		Period:      "2024-03",
		PayrollBase: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03", created.Period())
	require.Len(t, bus.events, 1)
	ev, ok := bus.events[0].(charge.CreatedEvent)
	require.True(t, ok)
	assert.Equal(t, "2024-03", ev.Result.Period())
}

func TestChargeServiceCreateRejectsInvalidDTO(t *testing.T) {
	repo := &mockChargeRepo{}
	svc := NewChargeService(repo, &stubPublisher{})

	_, err := svc.Create(context.Background(), &charge.CreateDTO{Period: "bad"})
	require.Error(t, err)
	require.False(t, repo.called)
}

func TestChargeServiceDeleteManyPublishesEvent(t *testing.T) {
	repo := &mockChargeRepo{}
	bus := &stubPublisher{}
	svc := NewChargeService(repo, bus)

	require.NoError(t, svc.DeleteMany(context.Background(), []string{"1", "2"}))
	require.Len(t, bus.events, 1)
	ev, ok := bus.events[0].(charge.DeletedEvent)
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, ev.IDs)
}

func TestChargeServicePeriodKeys(t *testing.T) {
	repo := &mockChargeRepo{charges: []charge.Charge{
		(&charge.CreateDTO{Period: "2024-01"}).ToEntity(),
		(&charge.CreateDTO{Period: "2024-02"}).ToEntity(),
	}}
	svc := NewChargeService(repo, &stubPublisher{})

	keys, err := svc.PeriodKeys(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01", "2024-02"}, keys)
}
