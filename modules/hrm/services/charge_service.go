package services

import (
	"context"
	"io"

	"github.com/avetra/hrdesk/modules/hrm/domain/aggregates/charge"
	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
	"github.com/avetra/hrdesk/pkg/eventbus"
)

type ChargeService struct {
	repo      charge.Repository
	publisher eventbus.EventBus
}

func NewChargeService(repo charge.Repository, publisher eventbus.EventBus) *ChargeService {
	return &ChargeService{repo: repo, publisher: publisher}
}

func (s *ChargeService) List(ctx context.Context) ([]charge.Charge, error) {
	return s.repo.List(ctx)
}

func (s *ChargeService) ListByYear(ctx context.Context, params *charge.FindParams) ([]charge.Charge, error) {
	return s.repo.ListByYear(ctx, params)
}

// PeriodKeys returns the period keys of every existing entry, the
// input of the entry form's duplicate check.
func (s *ChargeService) PeriodKeys(ctx context.Context) ([]string, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, row.Period())
	}
	return keys, nil
}

func (s *ChargeService) Create(ctx context.Context, data *charge.CreateDTO) (charge.Charge, error) {
	if err := authorizeHRM(ctx, ChargesObject, "create"); err != nil {
		return charge.Charge{}, err
	}
	if err := data.Ok(); err != nil {
		return charge.Charge{}, err
	}
	created, err := s.repo.Create(ctx, data)
	if err != nil {
		return charge.Charge{}, err
	}
	s.publisher.Publish(charge.NewCreatedEvent(ctx, created))
	return created, nil
}

func (s *ChargeService) Update(ctx context.Context, id string, data *charge.UpdateDTO) (charge.Charge, error) {
	if err := authorizeHRM(ctx, ChargesObject, "update"); err != nil {
		return charge.Charge{}, err
	}
	if err := data.Ok(); err != nil {
		return charge.Charge{}, err
	}
	updated, err := s.repo.Update(ctx, id, data)
	if err != nil {
		return charge.Charge{}, err
	}
	s.publisher.Publish(charge.NewUpdatedEvent(ctx, updated))
	return updated, nil
}

func (s *ChargeService) DeleteMany(ctx context.Context, ids []string) error {
	if err := authorizeHRM(ctx, ChargesObject, "delete"); err != nil {
		return err
	}
	if err := s.repo.DeleteMany(ctx, ids); err != nil {
		return err
	}
	s.publisher.Publish(charge.NewDeletedEvent(ctx, ids))
	return nil
}

func (s *ChargeService) Import(ctx context.Context, filename string, r io.Reader) (int, error) {
	if err := authorizeHRM(ctx, ChargesObject, "import"); err != nil {
		return 0, err
	}
	return s.repo.Import(ctx, filename, r)
}

func (s *ChargeService) Export(ctx context.Context, scope exports.Scope) ([]byte, string, error) {
	if err := authorizeHRM(ctx, ChargesObject, "export"); err != nil {
		return nil, "", err
	}
	blob, err := s.repo.Export(ctx, scope)
	if err != nil {
		return nil, "", err
	}
	return blob, exports.Filename("charges", scope), nil
}
