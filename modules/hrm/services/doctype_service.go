package services

import (
	"context"
	"io"

	"github.com/avetra/hrdesk/modules/hrm/domain/entities/doctype"
	"github.com/avetra/hrdesk/modules/hrm/domain/exports"
	"github.com/avetra/hrdesk/pkg/eventbus"
)

type DocTypeService struct {
	repo      doctype.Repository
	publisher eventbus.EventBus
}

func NewDocTypeService(repo doctype.Repository, publisher eventbus.EventBus) *DocTypeService {
	return &DocTypeService{repo: repo, publisher: publisher}
}

func (s *DocTypeService) List(ctx context.Context) ([]doctype.DocType, error) {
	return s.repo.List(ctx)
}

func (s *DocTypeService) Create(ctx context.Context, data *doctype.CreateDTO) (doctype.DocType, error) {
	if err := authorizeHRM(ctx, DocTypesObject, "create"); err != nil {
		return doctype.DocType{}, err
	}
	if err := data.Ok(); err != nil {
		return doctype.DocType{}, err
	}
	return s.repo.Create(ctx, data)
}

func (s *DocTypeService) Update(ctx context.Context, id string, data *doctype.UpdateDTO) (doctype.DocType, error) {
	if err := authorizeHRM(ctx, DocTypesObject, "update"); err != nil {
		return doctype.DocType{}, err
	}
	if err := data.Ok(); err != nil {
		return doctype.DocType{}, err
	}
	return s.repo.Update(ctx, id, data)
}

func (s *DocTypeService) DeleteMany(ctx context.Context, ids []string) error {
	if err := authorizeHRM(ctx, DocTypesObject, "delete"); err != nil {
		return err
	}
	return s.repo.DeleteMany(ctx, ids)
}

func (s *DocTypeService) Import(ctx context.Context, filename string, r io.Reader) (int, error) {
	if err := authorizeHRM(ctx, DocTypesObject, "import"); err != nil {
		return 0, err
	}
	return s.repo.Import(ctx, filename, r)
}

func (s *DocTypeService) Export(ctx context.Context, scope exports.Scope) ([]byte, string, error) {
	if err := authorizeHRM(ctx, DocTypesObject, "export"); err != nil {
		return nil, "", err
	}
	blob, err := s.repo.Export(ctx, scope)
	if err != nil {
		return nil, "", err
	}
	return blob, exports.Filename("types_documents", scope), nil
}
