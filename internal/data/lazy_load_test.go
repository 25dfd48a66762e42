package data

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLazyLoad(t *testing.T) {
	type Company struct {
		ID   uint
		Name string
	}
	kakao := Company{
		ID:   1,
		Name: "kakao",
	}

	t.Run("value", func(t *testing.T) {
		lazy := LazyLoadValue(kakao)
		company, err := lazy.Get()
		assert.Nil(t, err)
		assert.Equal(t, kakao, company)
	})

	t.Run("fn resolves once", func(t *testing.T) {
		calls := 0
		lazy := LazyLoadFn[Company](func() (any, error) {
			calls++
			return kakao, nil
		})

		company, err := lazy.Get()
		assert.Nil(t, err)
		assert.Equal(t, kakao, company)

		company, err = lazy.Get()
		assert.Nil(t, err)
		assert.Equal(t, kakao, company)
		assert.Equal(t, 1, calls)
	})

	t.Run("fn error is cached", func(t *testing.T) {
		boom := errors.New("boom")
		calls := 0
		lazy := LazyLoadFn[Company](func() (any, error) {
			calls++
			return nil, boom
		})

		_, err := lazy.Get()
		assert.ErrorIs(t, err, boom)
		_, err = lazy.Get()
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("nil fn yields zero value", func(t *testing.T) {
		lazy := &LazyLoad[Company]{}
		company, err := lazy.Get()
		assert.Nil(t, err)
		assert.Equal(t, Company{}, company)
	})
}
