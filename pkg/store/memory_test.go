// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

//go:build unit

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platform-engineering-labs/refract/internal/util"
)

func TestMemoryStore_Query(t *testing.T) {
	t.Run("projects to the requested fields", func(t *testing.T) {
		st := NewMemoryStore()
		owner := util.NewID()
		require.NoError(t, st.Put(owner, Outputs{"x": 1, "y": 2, "z": 3}))

		out, err := st.Query(owner, []string{"x", "z"})

		require.NoError(t, err)
		assert.Len(t, out, 2)
		assert.Equal(t, float64(1), out["x"])
		assert.Equal(t, float64(3), out["z"])
	})

	t.Run("empty fields returns the whole document", func(t *testing.T) {
		st := NewMemoryStore()
		owner := util.NewID()
		require.NoError(t, st.Put(owner, Outputs{"x": 1, "y": 2}))

		out, err := st.Query(owner, nil)

		require.NoError(t, err)
		assert.Len(t, out, 2)
	})

	t.Run("absent owner yields nil and no error", func(t *testing.T) {
		st := NewMemoryStore()

		out, err := st.Query(util.NewID(), []string{"x"})

		require.NoError(t, err)
		assert.Nil(t, out)
	})

	t.Run("fields the owner never produced are missing from the result", func(t *testing.T) {
		st := NewMemoryStore()
		owner := util.NewID()
		require.NoError(t, st.Put(owner, Outputs{"x": 1}))

		out, err := st.Query(owner, []string{"x", "missing"})

		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Len(t, out, 1)
	})

	t.Run("values come back in document shape", func(t *testing.T) {
		type dataset struct {
			Rows int    `json:"rows"`
			URI  string `json:"uri"`
		}
		st := NewMemoryStore()
		owner := util.NewID()
		require.NoError(t, st.Put(owner, Outputs{"dataset": dataset{Rows: 41, URI: "s3://corpus"}}))

		out, err := st.Query(owner, []string{"dataset"})

		require.NoError(t, err)
		doc, ok := out["dataset"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(41), doc["rows"])
		assert.Equal(t, "s3://corpus", doc["uri"])
	})
}

func TestMemoryStore_RecordsRequests(t *testing.T) {
	st := NewMemoryStore()
	ownerA := util.NewID()
	ownerB := util.NewID()
	require.NoError(t, st.Put(ownerA, Outputs{"x": 1}))

	_, err := st.Query(ownerA, []string{"x"})
	require.NoError(t, err)
	_, err = st.Query(ownerB, nil)
	require.NoError(t, err)
	_, err = st.Query(ownerA, []string{"y"})
	require.NoError(t, err)

	assert.Equal(t, 3, st.Queries())
	assert.Equal(t, 2, st.QueriesFor(ownerA))
	assert.Equal(t, 1, st.QueriesFor(ownerB))

	requests := st.Requests()
	require.Len(t, requests, 3)
	assert.Equal(t, []string{"x"}, requests[0].Fields)
	assert.Equal(t, ownerB, requests[1].Owner)
}

func TestMemoryStore_PutMerges(t *testing.T) {
	st := NewMemoryStore()
	owner := util.NewID()
	require.NoError(t, st.Put(owner, Outputs{"x": 1}))
	require.NoError(t, st.Put(owner, Outputs{"y": 2}))

	out, err := st.Query(owner, nil)

	require.NoError(t, err)
	assert.Len(t, out, 2)
}
