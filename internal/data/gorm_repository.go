package data

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LazyLoadable is implemented by persistence DTOs that carry deferred
// association load functions, keyed by association field name. The
// repository installs the functions; LazyLoadNow runs them.
type LazyLoadable interface {
	NewInstance()
	SetLoadFunc(entity string, fn func() (any, error))
	HasLoadFunc(entity string) bool
	DeleteLoadFunc(entity string)
	Load(name string, entity any) (any, error)
	Entities() []string
}

type LazyLoader struct {
	loaderMap map[string]func() (any, error)
}

func (l *LazyLoader) NewInstance() {
	l.loaderMap = make(map[string]func() (any, error))
}

func (l *LazyLoader) SetLoadFunc(entity string, fn func() (any, error)) {
	l.loaderMap[entity] = fn
}

func (l *LazyLoader) DeleteLoadFunc(entity string) {
	delete(l.loaderMap, entity)
}

func (l *LazyLoader) Entities() []string {
	entities := make([]string, 0, len(l.loaderMap))
	for k := range l.loaderMap {
		entities = append(entities, k)
	}
	return entities
}

func (l *LazyLoader) HasLoadFunc(entity string) bool {
	_, ok := l.loaderMap[entity]
	return ok
}

func (l *LazyLoader) Load(name string, entity any) (any, error) {
	typeOf := reflect.TypeOf(entity)
	if fn, ok := l.loaderMap[name]; ok {
		loaded, err := fn()
		logrus.Debugf("LazyLoader.Load: LazyLoader[%p] loaded[%+v]", l, loaded)
		delete(l.loaderMap, name)
		return loaded, err
	}
	return nil, fmt.Errorf("lazy load function for %s[%s] is not set", name, typeOf)
}

// LazyLoadNow resolves the named association of parent and writes the loaded
// value back into the matching struct field.
func LazyLoadNow[T any](name string, parent LazyLoadable) (T, error) {
	var entity T
	loaded, err := parent.Load(name, entity)
	if err != nil {
		return entity, err
	}
	valueOfParent := reflect.ValueOf(parent)
	valueOfLoaded := reflect.ValueOf(loaded)

	child := reflect.Indirect(valueOfParent).FieldByName(name)
	if child.Type().Kind() == reflect.Pointer {
		child.Set(valueOfLoaded)
		return loaded.(T), nil
	}
	child.Set(reflect.Indirect(valueOfLoaded))
	return reflect.Indirect(valueOfLoaded).Interface().(T), nil
}

// GormRepository is a generic Repository over a gorm session obtained from
// the transaction manager per call. Associations tagged fetch:"eager" are
// preloaded; fetch:"lazy" ones get deferred load functions instead.
type GormRepository[T any, ID comparable] struct {
	transactionManager TransactionManager
}

func NewGormRepository[T any, ID comparable](transactionManager TransactionManager) *GormRepository[T, ID] {
	return &GormRepository[T, ID]{transactionManager: transactionManager}
}

func (u *GormRepository[T, ID]) session(ctx context.Context) *gorm.DB {
	return u.transactionManager.Get(ctx).(*gorm.DB)
}

func (u *GormRepository[T, ID]) withEagerPreloads(db *gorm.DB, ptrToEntity any) *gorm.DB {
	for _, v := range findAssociations(ptrToEntity) {
		if v.FetchMode == FetchEagerMode {
			db = db.Preload(v.Name)
		}
	}
	return db
}

func (u *GormRepository[T, ID]) FindOne(ctx context.Context, id ID) (T, error) {
	var entity T
	db := u.withEagerPreloads(u.session(ctx).Model(&entity), &entity)
	if err := db.First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity, NotFoundError
		}
		return entity, err
	}
	u.attachLoadFuncs(ctx, &entity)
	return entity, nil
}

func (u *GormRepository[T, ID]) FindAll(ctx context.Context) ([]T, error) {
	var entity T
	var entities []T
	db := u.withEagerPreloads(u.session(ctx).Model(&entity), &entity)
	if err := db.Order("id").Find(&entities).Error; err != nil {
		return nil, err
	}
	for i := range entities {
		u.attachLoadFuncs(ctx, &entities[i])
	}
	return entities, nil
}

func (u *GormRepository[T, ID]) Create(ctx context.Context, entity T) (T, error) {
	if err := u.session(ctx).Create(&entity).Error; err != nil {
		return entity, err
	}
	u.attachLoadFuncs(ctx, &entity)
	return entity, nil
}

func (u *GormRepository[T, ID]) Update(ctx context.Context, entity T) (T, error) {
	if _, zero := findID[T, ID](entity); zero {
		panic("entity.ID is missing")
	}
	db := u.session(ctx)
	var omits []string
	for _, v := range findAssociations(&entity) {
		if v.FetchMode == FetchLazyMode {
			omits = append(omits, v.Name)
		}
	}
	if len(omits) > 0 {
		// a single Omit call: gorm replaces, not appends, the omit list
		db = db.Omit(omits...)
	}
	if err := db.Save(&entity).Error; err != nil {
		return entity, err
	}
	u.attachLoadFuncs(ctx, &entity)
	return entity, nil
}

func (u *GormRepository[T, ID]) Delete(ctx context.Context, entity T) error {
	if _, zero := findID[T, ID](entity); zero {
		panic("entity.ID is missing")
	}
	if err := u.session(ctx).Delete(&entity).Error; err != nil {
		return err
	}
	return nil
}

func (u *GormRepository[T, ID]) attachLoadFuncs(ctx context.Context, ptrToEntity any) {
	loader, ok := ptrToEntity.(LazyLoadable)
	if !ok {
		return
	}
	loader.NewInstance()
	id := findIDValue(ptrToEntity, "ID")
	for _, v := range findAssociations(ptrToEntity) {
		if v.FetchMode != FetchLazyMode {
			continue
		}
		switch v.Type {
		case BelongTo:
			logrus.Debugf("GormRepository.attachLoadFuncs: belong-to entity [%p] association [%s] id [%v]", loader, v.Name, v.ID)
			loader.SetLoadFunc(v.Name, u.belongToLoadFunc(ctx, v.PtrToEntity, v.ID))
		case HasOne:
			logrus.Debugf("GormRepository.attachLoadFuncs: has-one entity [%p] association [%s] foreignKey [%s:%v]", loader, v.Name, v.ForeignKey, id)
			loader.SetLoadFunc(v.Name, u.hasOneLoadFunc(ctx, v.PtrToEntity, v.ForeignKey, id))
		case HasMany:
			logrus.Debugf("GormRepository.attachLoadFuncs: has-many entity [%p] association [%s] foreignKey [%s:%v]", loader, v.Name, v.ForeignKey, id)
			loader.SetLoadFunc(v.Name, u.hasManyLoadFunc(ctx, v.PtrToEntity, v.ForeignKey, id))
		}
	}
}

func (u *GormRepository[T, ID]) belongToLoadFunc(ctx context.Context, ptrToEntity any, id any) func() (any, error) {
	return func() (any, error) {
		if id == nil {
			return nil, NotFoundError
		}
		if err := u.session(ctx).First(ptrToEntity, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NotFoundError
			}
			return nil, err
		}
		return ptrToEntity, nil
	}
}

func (u *GormRepository[T, ID]) hasOneLoadFunc(ctx context.Context, ptrToEntity any, foreignKey string, foreignKeyValue any) func() (any, error) {
	return func() (any, error) {
		if foreignKeyValue == nil {
			return nil, NotFoundError
		}
		if err := u.session(ctx).First(ptrToEntity, fmt.Sprintf("%s = ?", foreignKey), foreignKeyValue).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NotFoundError
			}
			return nil, err
		}
		return ptrToEntity, nil
	}
}

func (u *GormRepository[T, ID]) hasManyLoadFunc(ctx context.Context, ptrToEntities any, foreignKey string, foreignKeyValue any) func() (any, error) {
	return func() (any, error) {
		if foreignKeyValue == nil {
			return nil, NotFoundError
		}
		if err := u.session(ctx).Find(ptrToEntities, fmt.Sprintf("%s = ?", foreignKey), foreignKeyValue).Error; err != nil {
			return nil, err
		}
		return ptrToEntities, nil
	}
}

// GormFindByRepository lists entities owned by another entity through the
// named belong-to association, e.g. orders by member.
type GormFindByRepository[T any, S any, ID comparable] struct {
	*GormRepository[T, ID]
}

func NewGormFindByRepository[T any, S any, ID comparable](gormRepository *GormRepository[T, ID]) *GormFindByRepository[T, S, ID] {
	return &GormFindByRepository[T, S, ID]{GormRepository: gormRepository}
}

func (u *GormFindByRepository[T, S, ID]) FindBy(ctx context.Context, name string, byEntity S) ([]T, error) {
	var entity T
	var entities []T

	id, zero := findID[S, any](byEntity)
	if zero {
		panic(fmt.Sprintf("FindBy: %s's ID field is empty", reflect.TypeOf(byEntity).Name()))
	}
	foreignKey := fmt.Sprintf("%s_id", toSnakeCase(name))

	db := u.withEagerPreloads(u.session(ctx).Model(&entity), &entity)
	if err := db.Order("id").Find(&entities, fmt.Sprintf("%s = ?", foreignKey), id).Error; err != nil {
		return nil, err
	}
	for i := range entities {
		u.attachLoadFuncs(ctx, &entities[i])
	}
	return entities, nil
}
