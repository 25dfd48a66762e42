package data

import (
	"context"
	"reflect"

	"github.com/sirupsen/logrus"
)

// InMemoryRepository is a map-backed Repository for tests. Integer IDs are
// assigned from a sequence on Create when left empty, mirroring the
// autoincrement behavior of the real store.
type InMemoryRepository[T any, ID comparable] struct {
	database           map[ID]T
	insertion          []ID
	sequence           int64
	transactionManager TransactionManager
}

func NewInMemoryRepository[T any, ID comparable](transactionManager TransactionManager) *InMemoryRepository[T, ID] {
	return &InMemoryRepository[T, ID]{
		database:           make(map[ID]T),
		transactionManager: transactionManager,
	}
}

func (u *InMemoryRepository[T, ID]) FindOne(ctx context.Context, id ID) (T, error) {
	if v, ok := u.database[id]; ok {
		return v, nil
	}
	var v T
	return v, NotFoundError
}

func (u *InMemoryRepository[T, ID]) FindAll(ctx context.Context) ([]T, error) {
	entities := make([]T, 0, len(u.database))
	for _, id := range u.insertion {
		if v, ok := u.database[id]; ok {
			entities = append(entities, v)
		}
	}
	return entities, nil
}

func (u *InMemoryRepository[T, ID]) Create(ctx context.Context, entity T) (T, error) {
	transaction := u.transactionManager.Get(ctx)
	logrus.Debugf("InMemoryRepository.Create: transaction [%v] entity [%+v]", transaction, entity)

	id, zero := findID[T, ID](entity)
	if zero {
		entity = u.nextID(entity)
		id, _ = findID[T, ID](entity)
	}
	u.database[id] = entity
	u.insertion = append(u.insertion, id)
	return entity, nil
}

func (u *InMemoryRepository[T, ID]) Update(ctx context.Context, entity T) (T, error) {
	id, _ := findID[T, ID](entity)
	if _, ok := u.database[id]; ok {
		u.database[id] = entity
		return entity, nil
	}
	var v T
	return v, NotFoundError
}

func (u *InMemoryRepository[T, ID]) Delete(ctx context.Context, entity T) error {
	id, _ := findID[T, ID](entity)
	if _, ok := u.database[id]; ok {
		delete(u.database, id)
		return nil
	}
	return NotFoundError
}

func (u *InMemoryRepository[T, ID]) nextID(entity T) T {
	u.sequence++
	value := reflect.ValueOf(&entity).Elem().FieldByName("ID")
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value.SetInt(u.sequence)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		value.SetUint(uint64(u.sequence))
	default:
		panic("InMemoryRepository: cannot assign sequence to non-integer ID")
	}
	return entity
}
