package data

import (
	"context"
)

// DTO maps between a persistence representation and its domain model M.
type DTO[M any] interface {
	To() M
	From(m M) any
}

type DtoWrapRepository[D DTO[M], M any, ID comparable] struct {
	dtoRepository Repository[D, ID]
}

func NewDtoWrapRepository[D DTO[M], M any, ID comparable](dtoRepository Repository[D, ID]) *DtoWrapRepository[D, M, ID] {
	return &DtoWrapRepository[D, M, ID]{
		dtoRepository: dtoRepository,
	}
}

func (d *DtoWrapRepository[D, M, ID]) FindOne(ctx context.Context, id ID) (M, error) {
	dto, err := d.dtoRepository.FindOne(ctx, id)
	return dto.To(), err
}

func (d *DtoWrapRepository[D, M, ID]) FindAll(ctx context.Context) ([]M, error) {
	dtos, err := d.dtoRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	models := make([]M, 0, len(dtos))
	for _, v := range dtos {
		models = append(models, v.To())
	}
	return models, nil
}

func (d *DtoWrapRepository[D, M, ID]) Create(ctx context.Context, entity M) (M, error) {
	var dto D
	dto = dto.From(entity).(D)
	created, err := d.dtoRepository.Create(ctx, dto)
	return created.To(), err
}

func (d *DtoWrapRepository[D, M, ID]) Update(ctx context.Context, entity M) (M, error) {
	var dto D
	dto = dto.From(entity).(D)
	updated, err := d.dtoRepository.Update(ctx, dto)
	return updated.To(), err
}

func (d *DtoWrapRepository[D, M, ID]) Delete(ctx context.Context, entity M) error {
	var dto D
	dto = dto.From(entity).(D)
	return d.dtoRepository.Delete(ctx, dto)
}

type DtoWrapFindByRepository[D DTO[M], M any, E DTO[S], S any] struct {
	dtoRepository FindByRepository[D, E]
}

func NewDtoWrapFindByRepository[D DTO[M], M any, E DTO[S], S any](dtoRepository FindByRepository[D, E]) *DtoWrapFindByRepository[D, M, E, S] {
	return &DtoWrapFindByRepository[D, M, E, S]{dtoRepository: dtoRepository}
}

func (d *DtoWrapFindByRepository[D, M, E, S]) FindBy(ctx context.Context, name string, byEntity S) ([]M, error) {
	var dto E
	dto = dto.From(byEntity).(E)
	dtos, err := d.dtoRepository.FindBy(ctx, name, dto)

	models := make([]M, 0, len(dtos))
	for _, v := range dtos {
		models = append(models, v.To())
	}
	return models, err
}
