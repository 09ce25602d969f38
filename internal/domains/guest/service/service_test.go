package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/infras/recordstore"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/service"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Guest, *guestMocks.MockGuest) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel()), mockRepo
}

func TestGuestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *guestMocks.MockGuest)
		wantCode  int
	}{
		{
			name: "success",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, guests ...model.Guest) ([]model.Guest, error) {
						created := guests[0]
						created.ID = 7

						return []model.Guest{created}, nil
					})
			},
		},
		{
			name: "rejected by the store",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return([]model.Guest{}, &recordstore.BatchError{Failures: []recordstore.Result{{Message: "email already exists"}}})
			},
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), dto.CreateGuestRequest{FirstName: "Ada", LastName: "Lovelace"})

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), res.ID)
			assert.Equal(t, "Ada Lovelace", res.Name)
			assert.Empty(t, res.BookingHistory)
		})
	}
}

func TestGuestService_Search(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			assert.Equal(t, gDto.FilterGroupOperatorOr, filter.Operator)
			assert.Len(t, filter.Filters, len(model.SearchFields))

			return 1, nil
		})
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Guest{{ID: 1, FirstName: "Ada"}}, nil)

	res, err := svc.Search(context.Background(), "ada", gDto.QueryParams{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	require.Len(t, res.Guests, 1)
	assert.Equal(t, "Ada", res.Guests[0].FirstName)
}

func TestGuestService_UpdateRecomputesName(t *testing.T) {
	svc, repo := newService(t)

	lastName := "King"

	repo.EXPECT().Get(gomock.Any(), int64(2)).Return(model.Guest{ID: 2, FirstName: "Ada", LastName: "Lovelace"}, nil)
	repo.EXPECT().
		Update(gomock.Any(), int64(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, fields map[string]any) (model.Guest, error) {
			assert.Equal(t, "Ada King", fields[model.FieldName])
			assert.Equal(t, "King", fields[model.FieldLastName])

			return model.Guest{ID: id, FirstName: "Ada", LastName: "King"}, nil
		})

	res, err := svc.Update(context.Background(), dto.UpdateGuestRequest{LastName: &lastName}, 2)

	require.NoError(t, err)
	assert.Equal(t, "Ada King", res.Name)
}

func TestGuestService_UpdateVIPOnlyKeepsName(t *testing.T) {
	svc, repo := newService(t)

	vip := false

	repo.EXPECT().Get(gomock.Any(), int64(2)).Return(model.Guest{ID: 2, FirstName: "Ada", VIPStatus: true}, nil)
	repo.EXPECT().
		Update(gomock.Any(), int64(2), map[string]any{model.FieldVIPStatus: false}).
		Return(model.Guest{ID: 2, FirstName: "Ada"}, nil)

	res, err := svc.Update(context.Background(), dto.UpdateGuestRequest{VIPStatus: &vip}, 2)

	require.NoError(t, err)
	assert.False(t, res.VIPStatus)
}

func TestGuestService_AddBookingToHistory(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr bool
	}{
		{name: "success"},
		{name: "guest missing", repoErr: failure.NotFound("guest not found"), wantErr: true},
		{name: "store failure", repoErr: errors.New("timeout"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)

			repo.EXPECT().AddBookingToHistory(gomock.Any(), int64(3), int64(11)).Return(model.Guest{}, tt.repoErr)

			err := svc.AddBookingToHistory(context.Background(), 3, 11)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuestService_DeleteNotFound(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Get(gomock.Any(), int64(4)).Return(model.Guest{}, failure.NotFound("guest not found"))

	err := svc.Delete(context.Background(), 4)

	assert.True(t, failure.IsNotFound(err))
}
