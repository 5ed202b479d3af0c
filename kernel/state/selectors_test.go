package state

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tigerater/chronoctl/kernel/model"
)

func TestGetAll_MapsIdsInOrder(t *testing.T) {
	c := NewCollection[model.Bucket]()
	c = Reduce(c, SetAll[model.Bucket]{Status: Done, Entities: []model.Bucket{
		bucket("b", "two"), bucket("a", "one"),
	}})

	all := GetAll(c)
	require.Len(t, all, 2)
	assert.Equal(t, "two", all[0].Name)
	assert.Equal(t, "one", all[1].Name)
}

func TestGetByID_Found(t *testing.T) {
	c := NewCollection[model.Bucket]()
	c = Reduce(c, SetOne[model.Bucket]{Entity: bucket("a", "one")})

	got, err := GetByID(c, "a")
	require.NoError(t, err)
	assert.Equal(t, "one", got.Name)
}

func TestGetByID_NotFound(t *testing.T) {
	c := NewCollection[model.Bucket]()

	_, err := GetByID(c, "missing")
	require.Error(t, err)
	assert.Equal(t, ErrNotFound, errors.Cause(err))
	assert.Contains(t, err.Error(), "missing")
}

func TestSelectors_PanicOnUninitializedCollection(t *testing.T) {
	var uninitialized Collection[model.Bucket]

	assert.Panics(t, func() { GetAll(uninitialized) })
	assert.Panics(t, func() { _, _ = GetByID(uninitialized, "a") })
}

func TestGetAllMatching(t *testing.T) {
	c := NewCollection[model.Bucket]()
	c = Reduce(c, SetAll[model.Bucket]{Status: Done, Entities: []model.Bucket{
		bucket("a", "metrics"), bucket("b", "traces"), bucket("c", "metrics-long"),
	}})

	matched := GetAllMatching(c, func(b model.Bucket) bool { return b.Name != "traces" })
	require.Len(t, matched, 2)
	assert.Equal(t, "a", matched[0].ID)
	assert.Equal(t, "c", matched[1].ID)
}
