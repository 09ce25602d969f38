package request_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
	"frontdesk/transport/http/request"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "valid", raw: "42", want: 42},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := withID(httptest.NewRequest(http.MethodGet, "/", nil), tt.raw)

			id, err := request.ID(r)

			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestQueryInt64(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?guest_id=7&room_id=x", nil)

	guestID, err := request.QueryInt64(r, "guest_id")
	require.NoError(t, err)
	require.NotNil(t, guestID)
	assert.Equal(t, int64(7), *guestID)

	missing, err := request.QueryInt64(r, "booking_id")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = request.QueryInt64(r, "room_id")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantOK  bool
		wantErr bool
	}{
		{name: "absent", query: ""},
		{name: "both", query: "?start=2024-01-01&end=2024-01-31", wantOK: true},
		{name: "only start", query: "?start=2024-01-01", wantErr: true},
		{name: "malformed", query: "?start=01/01/2024&end=2024-01-31", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)

			start, end, ok, err := request.DateRange(r)

			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)

			if ok {
				assert.Equal(t, "2024-01-01", timezone.FormatDate(start))
				assert.Equal(t, "2024-01-31", timezone.FormatDate(end))
			}
		})
	}
}
