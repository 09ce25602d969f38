package recordstore_test

import (
	"context"
	"sync"
	"testing"

	"frontdesk/infras/recordstore"
	"frontdesk/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRooms(t *testing.T, store recordstore.Client) {
	t.Helper()

	results, err := store.Create(context.Background(), "rooms",
		recordstore.Record{"room_number": "101", "floor": 1, "status": "available", "base_rate": 100.0},
		recordstore.Record{"room_number": "102", "floor": 1, "status": "occupied", "base_rate": 120.0},
		recordstore.Record{"room_number": "201", "floor": 2, "status": "cleaning", "base_rate": 150.5},
		recordstore.Record{"room_number": "301", "floor": 3, "status": "available", "base_rate": 300.0},
	)
	require.NoError(t, err)

	created, err := recordstore.Partition(results)
	require.NoError(t, err)
	require.Len(t, created, 4)
}

func TestMemory_CreateAssignsIDs(t *testing.T) {
	store := recordstore.NewMemory()

	results, err := store.Create(context.Background(), "guests",
		recordstore.Record{"first_name": "Ada"},
		recordstore.Record{"first_name": "Grace"},
	)
	require.NoError(t, err)

	for idx, result := range results {
		assert.True(t, result.Success)

		id, ok := result.Data.ID()
		assert.True(t, ok)
		assert.Equal(t, int64(idx+1), id)
	}
}

func TestMemory_FetchFilters(t *testing.T) {
	store := recordstore.NewMemory()
	seedRooms(t, store)

	tests := []struct {
		name     string
		where    dto.FilterGroup
		params   dto.QueryParams
		expected []string
	}{
		{
			name:     "no filter returns everything ordered by id",
			expected: []string{"101", "102", "201", "301"},
		},
		{
			name: "equality",
			where: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "status", Value: "available", Operator: dto.FilterOperatorEq},
			}},
			expected: []string{"101", "301"},
		},
		{
			name: "numeric range across types",
			where: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "base_rate", Value: "120", Operator: dto.FilterOperatorGreaterEq},
				dto.Filter{Field: "floor", Value: int64(2), Operator: dto.FilterOperatorLessEq},
			}},
			expected: []string{"102", "201"},
		},
		{
			name: "or group with like",
			where: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "room_number", Value: "30", Operator: dto.FilterOperatorLike},
					dto.Filter{Field: "status", Value: "CLEAN", Operator: dto.FilterOperatorLike},
				},
			},
			expected: []string{"201", "301"},
		},
		{
			name: "in operator",
			where: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "id", Value: []int64{2, 4}, Operator: dto.FilterOperatorIn},
			}},
			expected: []string{"102", "301"},
		},
		{
			name:     "sorted descending and paged",
			params:   dto.QueryParams{Page: 2, Limit: 2, SortBy: "base_rate", SortDir: dto.SortDirDesc},
			expected: []string{"102", "101"},
		},
		{
			name:     "page past the end",
			params:   dto.QueryParams{Page: 5, Limit: 2},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := store.Fetch(context.Background(), "rooms", recordstore.Query{Where: tt.where, Params: tt.params})
			require.NoError(t, err)

			numbers := []string{}
			for _, record := range records {
				numbers = append(numbers, record.String("room_number"))
			}

			assert.Equal(t, tt.expected, numbers)
		})
	}
}

func TestMemory_CountAndProjection(t *testing.T) {
	store := recordstore.NewMemory()
	seedRooms(t, store)

	count, err := store.Count(context.Background(), "rooms", dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "status", Value: "available", Operator: dto.FilterOperatorNotEq},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	record, err := store.Get(context.Background(), "rooms", 3, "room_number")
	require.NoError(t, err)
	assert.Equal(t, recordstore.Record{"id": int64(3), "room_number": "201"}, record)
}

func TestMemory_GetMissing(t *testing.T) {
	store := recordstore.NewMemory()

	_, err := store.Get(context.Background(), "rooms", 42)

	assert.ErrorIs(t, err, recordstore.ErrNotFound)
}

func TestMemory_PartialBatch(t *testing.T) {
	store := recordstore.NewMemory(recordstore.WithRequiredFields("rooms", "room_number"))

	results, err := store.Create(context.Background(), "rooms",
		recordstore.Record{"room_number": "101"},
		recordstore.Record{"room_number": "  "},
	)
	require.NoError(t, err)

	created, err := recordstore.Partition(results)
	assert.Len(t, created, 1)

	var batchErr *recordstore.BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, "room_number is required", batchErr.Error())
	assert.Equal(t, 1, batchErr.Succeeded)
}

func TestMemory_UpdateAndDelete(t *testing.T) {
	store := recordstore.NewMemory()
	seedRooms(t, store)

	ctx := context.Background()

	results, err := store.Update(ctx, "rooms",
		recordstore.Record{"id": int64(1), "status": "maintenance"},
		recordstore.Record{"id": int64(99), "status": "cleaning"},
		recordstore.Record{"status": "cleaning"},
	)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.Equal(t, "maintenance", results[0].Data.String("status"))
	assert.Equal(t, "101", results[0].Data.String("room_number"))
	assert.False(t, results[1].Success)
	assert.False(t, results[2].Success)

	results, err = store.Delete(ctx, "rooms", 2, 2)
	require.NoError(t, err)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)

	count, err := store.Count(ctx, "rooms", dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMemory_RejectsInvalidIdentifiers(t *testing.T) {
	store := recordstore.NewMemory()

	_, err := store.Fetch(context.Background(), "rooms; DROP TABLE rooms", recordstore.Query{})
	assert.ErrorIs(t, err, recordstore.ErrInvalidIdentifier)

	_, err = store.Fetch(context.Background(), "rooms", recordstore.Query{Params: dto.QueryParams{SortBy: "id desc"}})
	assert.ErrorIs(t, err, recordstore.ErrInvalidIdentifier)
}

func TestMemory_ConcurrentWrites(t *testing.T) {
	store := recordstore.NewMemory()

	var wg sync.WaitGroup

	for range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, _ = store.Create(context.Background(), "transactions", recordstore.Record{"amount": 10.0})
			_, _ = store.Fetch(context.Background(), "transactions", recordstore.Query{})
		}()
	}

	wg.Wait()

	count, err := store.Count(context.Background(), "transactions", dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 20, count)
}
