package shared_test

import (
	"context"
	"errors"
	"testing"

	"frontdesk/shared"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input string
		want  *bool
	}{
		{input: "", want: nil},
		{input: "true", want: boolPtr(true)},
		{input: "1", want: boolPtr(true)},
		{input: "false", want: boolPtr(false)},
		{input: "0", want: boolPtr(false)},
		{input: "vip", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt64(t *testing.T) {
	got, err := shared.ConvertStringToInt64(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	_, err = shared.ConvertStringToInt64("room-1")
	assert.ErrorContains(t, err, `invalid integer "room-1"`)
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name         string
		total, limit int
		want         int
	}{
		{name: "no records", total: 0, limit: 10, want: 1},
		{name: "no limit", total: 25, limit: 0, want: 1},
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "single record", total: 1, limit: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type roomPatch struct {
		RoomNumber string   `db:"room_number"`
		Floor      *int     `db:"floor"`
		BaseRate   *float64 `db:"base_rate"`
		Notes      *string  `db:"notes"`
		Internal   string
	}

	ground := 0
	rate := 80.0

	tests := []struct {
		name string
		data roomPatch
		want map[string]any
	}{
		{
			name: "set fields only",
			data: roomPatch{RoomNumber: "101", BaseRate: &rate, Internal: "ignored"},
			want: map[string]any{"room_number": "101", "base_rate": 80.0},
		},
		{
			name: "explicit zero pointer counts",
			data: roomPatch{Floor: &ground},
			want: map[string]any{"floor": 0},
		},
		{
			name: "nothing set",
			data: roomPatch{},
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.TransformFields(tt.data))
		})
	}
}

func TestFilterByField(t *testing.T) {
	got := shared.FilterByField("booking_id", int64(7))

	assert.Equal(t, dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{dto.Filter{Field: "booking_id", Value: int64(7), Operator: dto.FilterOperatorEq}},
	}, got)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get:4", shared.BuildCacheKey("room:get", int64(4)))
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
	assert.Equal(t, "statistics:dashboard", shared.BuildCacheKey("statistics:dashboard"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "id", SortDir: dto.SortDirDesc}
	available := shared.FilterByField("status", "available")

	first := shared.BuildCacheKeyWithQuery("room:gets", params, available)
	second := shared.BuildCacheKeyWithQuery("room:gets", params, available)
	occupied := shared.BuildCacheKeyWithQuery("room:gets", params, shared.FilterByField("status", "occupied"))
	nextPage := shared.BuildCacheKeyWithQuery("room:gets", dto.QueryParams{Page: 2, Limit: 10}, available)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, occupied)
	assert.NotEqual(t, first, nextPage)
	assert.Regexp(t, `^room:gets:[0-9a-f]{16}$`, first)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	gomock.InOrder(
		mockCache.EXPECT().Clear(gomock.Any(), "room:gets*").Return(nil),
		mockCache.EXPECT().Clear(gomock.Any(), "room:count*").Return(errors.New("redis down")),
		mockCache.EXPECT().Clear(gomock.Any(), "statistics*").Return(nil),
	)

	shared.InvalidateCaches(context.Background(), mockCache, "room:gets", "room:count", "statistics")
}

func boolPtr(b bool) *bool {
	return &b
}
