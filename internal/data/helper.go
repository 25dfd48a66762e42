package data

import (
	"fmt"
	"reflect"
	"strings"

	"gorm.io/gorm"
)

func findID[T any, ID comparable](entity T) (ID, bool) {
	valueOfEntity := reflect.ValueOf(entity)
	if valueOfEntity.Type().Kind() == reflect.Pointer {
		valueOfEntity = reflect.Indirect(valueOfEntity)
	}
	value := valueOfEntity.FieldByName("ID")
	if !value.IsValid() {
		panic(fmt.Sprintf("Entity '%s' has not ID field", valueOfEntity.Type()))
	}
	if !value.Comparable() {
		panic(fmt.Sprintf("ID field type '%s' of '%s' is not comparable", value.Type(), valueOfEntity.Type()))
	}
	v := value.Interface()
	switch v.(type) {
	case ID:
		return v.(ID), value.IsZero()
	default:
		panic("Entity's ID field type is different from ID type constraint")
	}
}

func findIDValue(ptrToEntity any, fieldName string) any {
	valueOfEntity := reflect.ValueOf(ptrToEntity)
	if valueOfEntity.Type().Kind() == reflect.Pointer {
		valueOfEntity = reflect.Indirect(valueOfEntity)
	}
	if !valueOfEntity.IsValid() {
		return nil
	}
	value := valueOfEntity.FieldByName(fieldName)
	if !value.IsValid() {
		panic(fmt.Sprintf("Entity '%s' has not %s field", valueOfEntity.Type(), fieldName))
	}
	if value.Type().Kind() == reflect.Pointer && value.IsNil() {
		return nil
	}
	if value.IsZero() {
		return nil
	}
	return value.Interface()
}

type FetchMode string

const (
	FetchEagerMode = "eager"
	FetchLazyMode  = "lazy"
)

func ToFetchMode(m string) FetchMode {
	switch m {
	case "", FetchLazyMode:
		return FetchLazyMode
	case FetchEagerMode:
		return FetchEagerMode
	default:
		panic(fmt.Sprintf("wrong fetch-mode - %s", m))
	}
}

type AssociationType int

const (
	BelongTo AssociationType = iota + 1
	HasOne
	HasMany
)

type Association struct {
	Name        string
	PtrToEntity any
	ID          any
	ForeignKey  string
	Type        AssociationType
	FetchMode   FetchMode
}

var systemStructTypes = []any{
	gorm.Model{},
	LazyLoader{},
}

var systemStructTypeMap map[string]bool

func init() {
	systemStructTypeMap = make(map[string]bool)
	for _, s := range systemStructTypes {
		typeName := reflect.TypeOf(s).String()
		systemStructTypeMap[typeName] = true
	}
}

func isSystemStructType(typeName reflect.Type) bool {
	return systemStructTypeMap[typeName.String()]
}

func toSnakeCase(camel string) string {
	var b strings.Builder
	diff := 'a' - 'A'
	l := len(camel)
	for i, v := range camel {
		if v >= 'a' {
			b.WriteRune(v)
			continue
		}
		if (i != 0 || i == l-1) && ( // head and tail
		(i > 0 && rune(camel[i-1]) >= 'a') || // pre
			(i < l-1 && rune(camel[i+1]) >= 'a')) { // next
			b.WriteRune('_')
		}
		b.WriteRune(v + diff)
	}
	return b.String()
}

// findAssociations discovers belong-to, has-one and has-many associations of
// an entity struct by its field shapes: a struct field with a matching
// <Field>ID foreign key on the owner is belong-to; a struct or slice field
// whose element carries a <Owner>ID foreign key is has-one or has-many.
// Embedded value objects resolve to neither and are left alone.
func findAssociations(ptrToEntity any) []Association {
	var associations []Association
	entityType := reflect.TypeOf(ptrToEntity)

	if entityType.Kind() == reflect.Pointer || entityType.Kind() == reflect.Slice {
		entityType = entityType.Elem()
		if entityType.Kind() == reflect.Slice {
			entityType = entityType.Elem()
		}
	}
	if entityType.Kind() != reflect.Struct {
		panic(fmt.Sprintf("findAssociations: entity[%s] is not struct type", entityType.String()))
	}
	numOfField := entityType.NumField()
	for i := 0; i < numOfField; i++ {
		field := entityType.Field(i)
		if isSystemStructType(field.Type) {
			continue
		}

		var association Association
		association.Name = field.Name
		association.FetchMode = ToFetchMode(field.Tag.Get("fetch"))

		belongToForeignKey := fmt.Sprintf("%sID", field.Name)
		hasForeignKey := fmt.Sprintf("%sID", entityType.Name())
		switch {
		case field.Type.Kind() == reflect.Struct:
			association.PtrToEntity = reflect.New(field.Type).Interface()
			if _, ok := entityType.FieldByName(belongToForeignKey); ok {
				association.Type = BelongTo
				association.ID = findIDValue(ptrToEntity, belongToForeignKey)
			} else if _, ok := field.Type.FieldByName(hasForeignKey); ok {
				association.Type = HasOne
				association.ForeignKey = toSnakeCase(hasForeignKey)
			}
		case field.Type.Kind() == reflect.Pointer && field.Type.Elem().Kind() == reflect.Struct:
			association.PtrToEntity = reflect.New(field.Type.Elem()).Interface()
			if _, ok := entityType.FieldByName(belongToForeignKey); ok {
				association.Type = BelongTo
				association.ID = findIDValue(ptrToEntity, belongToForeignKey)
			} else if _, ok := field.Type.Elem().FieldByName(hasForeignKey); ok {
				association.Type = HasOne
				association.ForeignKey = toSnakeCase(hasForeignKey)
			}
		case field.Type.Kind() == reflect.Slice && field.Type.Elem().Kind() == reflect.Struct:
			association.PtrToEntity = reflect.New(field.Type).Interface()
			if _, ok := field.Type.Elem().FieldByName(hasForeignKey); ok {
				association.Type = HasMany
				association.ForeignKey = toSnakeCase(hasForeignKey)
			}
		default:
			continue
		}
		if association.Type == 0 {
			continue
		}

		associations = append(associations, association)
	}
	return associations
}
