package api

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDataspaces(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/dataspaces", r.URL.Path)
		w.Write(jsonResponse([]map[string]any{
			{"id": "ds1", "name": "EU"},
			{"id": "ds2", "name": "US"},
		}))
	})

	items, err := client.ListDataspaces()
	require.NoError(t, err)
	want := []Dataspace{{ID: "ds1", Name: "EU"}, {ID: "ds2", Name: "US"}}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("dataspaces mismatch (-want +got):\n%s", diff)
	}
}

func TestListDataspacesNullDataIsEmpty(t *testing.T) {
	_, client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null}`))
	})

	items, err := client.ListDataspaces()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Len(t, items, 0)
}

func TestDataspaceNameFirstMatchWins(t *testing.T) {
	items := []Dataspace{
		{ID: "ds1", Name: "EU"},
		{ID: "ds1", Name: "EU duplicate"},
		{ID: "ds2", Name: "US"},
	}
	assert.Equal(t, "EU", DataspaceName(items, "ds1"))
	assert.Equal(t, "US", DataspaceName(items, "ds2"))
	assert.Equal(t, "", DataspaceName(items, "ds9"))
	assert.Equal(t, "", DataspaceName(nil, "ds1"))
}
