package sheetstore

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is an in-memory RowAPI. Row 1 is the header, matching the
// 1-based addressing of the real backend.
type fakeAPI struct {
	tabs map[string][][]string
	down bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{tabs: make(map[string][][]string)}
}

func (f *fakeAPI) Rows(tab string) ([][]string, error) {
	if f.down {
		return nil, ErrNotConnected
	}
	return f.tabs[tab], nil
}

func (f *fakeAPI) Header(tab string) ([]string, error) {
	if f.down {
		return nil, ErrNotConnected
	}
	rows := f.tabs[tab]
	if len(rows) == 0 {
		return nil, ErrWriteRejected
	}
	return rows[0], nil
}

func (f *fakeAPI) Append(tab string, row []string) error {
	if f.down {
		return ErrNotConnected
	}
	f.tabs[tab] = append(f.tabs[tab], row)
	return nil
}

func (f *fakeAPI) UpdateRow(tab string, rowIndex int, row []string) error {
	if f.down {
		return ErrNotConnected
	}
	f.tabs[tab][rowIndex-1] = row
	return nil
}

func (f *fakeAPI) DeleteRow(tab string, rowIndex int) error {
	if f.down {
		return ErrNotConnected
	}
	rows := f.tabs[tab]
	f.tabs[tab] = append(rows[:rowIndex-1], rows[rowIndex:]...)
	return nil
}

func (f *fakeAPI) EnsureTab(tab string, header []string) error {
	if f.down {
		return ErrNotConnected
	}
	if _, ok := f.tabs[tab]; !ok {
		f.tabs[tab] = [][]string{header}
	}
	return nil
}

func seededStore(t *testing.T, tab string, rows [][]string) (*Store, *fakeAPI) {
	t.Helper()
	api := newFakeAPI()
	api.tabs[tab] = rows
	return New(api), api
}

func TestList(t *testing.T) {
	store, _ := seededStore(t, TabLocations, [][]string{
		{"ID", "Location Name"},
		{"1", "HQ"},
		{"2", "Warehouse"},
		{"3", "Lab"},
	})

	records, err := store.List(TabLocations)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Every declared header key is present on every record.
	for _, rec := range records {
		assert.Contains(t, rec, "ID")
		assert.Contains(t, rec, "Location Name")
	}
	assert.Equal(t, "Warehouse", records[1]["Location Name"])
}

func TestListPadsShortRows(t *testing.T) {
	store, _ := seededStore(t, TabSubcategories, [][]string{
		{"ID", "Subcategory Name", "Category ID"},
		{"1", "Laptops"}, // missing trailing cell
	})

	records, err := store.List(TabSubcategories)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0]["Category ID"])
}

func TestListDropsAllEmptyRows(t *testing.T) {
	store, _ := seededStore(t, TabBrands, [][]string{
		{"ID", "Brand Name"},
		{"1", "Dell"},
		{"", ""}, // empty row between two data rows
		{"2", "HP"},
	})

	records, err := store.List(TabBrands)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Dell", records[0]["Brand Name"])
	assert.Equal(t, "HP", records[1]["Brand Name"])
}

func TestListTrimsHeaderAndValues(t *testing.T) {
	store, _ := seededStore(t, TabBrands, [][]string{
		{" ID ", " Brand Name "},
		{" 1 ", " Lenovo "},
	})

	records, err := store.List(TabBrands)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Lenovo", records[0]["Brand Name"])
}

func TestListUnreachableBackend(t *testing.T) {
	store, api := seededStore(t, TabBrands, nil)
	api.down = true

	_, err := store.List(TabBrands)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestFind(t *testing.T) {
	store, _ := seededStore(t, TabLocations, [][]string{
		{"ID", "Location Name"},
		{"1", "HQ"},
		{"2", "Warehouse"},
	})

	rec, err := store.Find(TabLocations, "ID", "2")
	require.NoError(t, err)
	assert.Equal(t, "Warehouse", rec["Location Name"])

	_, err = store.Find(TabLocations, "ID", "99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNextID(t *testing.T) {
	t.Run("empty tab", func(t *testing.T) {
		store, _ := seededStore(t, TabLocations, [][]string{
			{"ID", "Location Name"},
		})
		id, err := store.NextID(TabLocations)
		require.NoError(t, err)
		assert.Equal(t, 1, id)
	})

	t.Run("non-numeric entries ignored", func(t *testing.T) {
		store, _ := seededStore(t, TabLocations, [][]string{
			{"ID", "Location Name"},
			{"2", "HQ"},
			{"5", "Warehouse"},
			{"x", "Broken"},
		})
		id, err := store.NextID(TabLocations)
		require.NoError(t, err)
		assert.Equal(t, 6, id)
	})

	t.Run("nothing parsable", func(t *testing.T) {
		store, _ := seededStore(t, TabLocations, [][]string{
			{"ID", "Location Name"},
			{"abc", "HQ"},
		})
		id, err := store.NextID(TabLocations)
		require.NoError(t, err)
		assert.Equal(t, 1, id)
	})
}

func TestInsertThenFind(t *testing.T) {
	store, _ := seededStore(t, TabBrands, [][]string{
		{"ID", "Brand Name"},
	})

	err := store.Insert(TabBrands, Record{
		"ID":         "1",
		"Brand Name": "Apple",
		"Bogus":      "dropped", // not in the header
	})
	require.NoError(t, err)

	rec, err := store.Find(TabBrands, "ID", "1")
	require.NoError(t, err)
	assert.Equal(t, "Apple", rec["Brand Name"])
	assert.NotContains(t, rec, "Bogus")
}

func TestInsertMissingFieldsDefaultEmpty(t *testing.T) {
	store, api := seededStore(t, TabSubcategories, [][]string{
		{"ID", "Subcategory Name", "Category ID"},
	})

	require.NoError(t, store.Insert(TabSubcategories, Record{"ID": "1"}))
	assert.Equal(t, []string{"1", "", ""}, api.tabs[TabSubcategories][1])
}

func TestInsertWithNextID(t *testing.T) {
	store, api := seededStore(t, TabLocations, [][]string{
		{"ID", "Location Name"},
		{"3", "HQ"},
	})

	id, err := store.InsertWithNextID(TabLocations, Record{"Location Name": "Warehouse"})
	require.NoError(t, err)
	assert.Equal(t, 4, id)
	assert.Equal(t, []string{"4", "Warehouse"}, api.tabs[TabLocations][2])
}

func TestInsertWithNextIDOverwritesCallerID(t *testing.T) {
	store, api := seededStore(t, TabLocations, [][]string{
		{"ID", "Location Name"},
	})

	id, err := store.InsertWithNextID(TabLocations, Record{"ID": "0", "Location Name": "HQ"})
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, []string{"1", "HQ"}, api.tabs[TabLocations][1])
}

func TestInsertWithNextIDConcurrentCallersGetDistinctIDs(t *testing.T) {
	store, _ := seededStore(t, TabLocations, [][]string{
		{"ID", "Location Name"},
	})

	const callers = 16
	ids := make(chan int, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := store.InsertWithNextID(TabLocations, Record{"Location Name": "Desk"})
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "ID %d allocated twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, callers)
}

func TestUpdatePartialPatch(t *testing.T) {
	store, _ := seededStore(t, TabAssets, [][]string{
		{"Asset Code", "Item Name", "Location", "Amount"},
		{"AST-1", "Printer", "HQ", "300"},
		{"AST-2", "Router", "Lab", "150"},
	})

	err := store.Update(TabAssets, "Asset Code", "AST-2", Record{"Location": "Warehouse"})
	require.NoError(t, err)

	rec, err := store.Find(TabAssets, "Asset Code", "AST-2")
	require.NoError(t, err)
	// Patched field changed, everything else kept its previous value.
	assert.Equal(t, "Warehouse", rec["Location"])
	assert.Equal(t, "Router", rec["Item Name"])
	assert.Equal(t, "150", rec["Amount"])

	// Neighbour row untouched.
	other, err := store.Find(TabAssets, "Asset Code", "AST-1")
	require.NoError(t, err)
	assert.Equal(t, "HQ", other["Location"])
}

func TestUpdateNotFound(t *testing.T) {
	store, _ := seededStore(t, TabAssets, [][]string{
		{"Asset Code", "Item Name"},
		{"AST-1", "Printer"},
	})
	err := store.Update(TabAssets, "Asset Code", "AST-9", Record{"Item Name": "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	store, api := seededStore(t, TabLocations, [][]string{
		{"ID", "Location Name"},
		{"1", "HQ"},
		{"2", "Warehouse"},
		{"3", "Lab"},
	})

	require.NoError(t, store.Delete(TabLocations, "ID", "2"))

	records, err := store.List(TabLocations)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "HQ", records[0]["Location Name"])
	assert.Equal(t, "Lab", records[1]["Location Name"])
	// Physical removal: 3 data rows became 2.
	assert.Len(t, api.tabs[TabLocations], 3)
}

func TestDeleteTranslatesRowIndexPastEmptyRows(t *testing.T) {
	store, api := seededStore(t, TabLocations, [][]string{
		{"ID", "Location Name"},
		{"1", "HQ"},
		{"", ""},
		{"2", "Warehouse"},
	})

	require.NoError(t, store.Delete(TabLocations, "ID", "2"))

	// Row 4 was removed, not row 3: the empty spacer row survives.
	assert.Equal(t, [][]string{
		{"ID", "Location Name"},
		{"1", "HQ"},
		{"", ""},
	}, api.tabs[TabLocations])
}

func TestDeleteNotFoundLeavesRowsUnchanged(t *testing.T) {
	initial := [][]string{
		{"ID", "Location Name"},
		{"1", "HQ"},
		{"2", "Warehouse"},
	}
	store, api := seededStore(t, TabLocations, initial)

	err := store.Delete(TabLocations, "ID", "42")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, initial, api.tabs[TabLocations])
}

func TestStoreErrorCarriesTabAndOp(t *testing.T) {
	store, api := seededStore(t, TabAssets, nil)
	api.down = true

	err := store.Insert(TabAssets, Record{})
	require.Error(t, err)

	var se *StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, TabAssets, se.Tab)
	assert.Equal(t, "insert", se.Op)
}

func TestEnsureSchema(t *testing.T) {
	api := newFakeAPI()
	store := New(api)

	require.NoError(t, store.EnsureSchema())
	for tab, header := range Schema {
		require.NotEmpty(t, api.tabs[tab], "tab %s missing", tab)
		assert.Equal(t, header, api.tabs[tab][0])
	}
}
