package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/infras/recordstore"
	roomMocks "frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel()), mockRepo, mockCache
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(repo *roomMocks.MockRoom)
		wantCode  int
		wantName  string
	}{
		{
			name: "defaults name and status",
			req:  dto.CreateRoomRequest{RoomNumber: "101", Type: "Standard", BaseRate: 120},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rooms ...model.Room) ([]model.Room, error) {
						require.Len(t, rooms, 1)
						assert.Equal(t, model.StatusAvailable, rooms[0].Status)
						assert.False(t, rooms[0].LastCleaned.IsZero())

						created := rooms[0]
						created.ID = 1

						return []model.Room{created}, nil
					})
			},
			wantName: "101",
		},
		{
			name: "rejected by the store",
			req:  dto.CreateRoomRequest{RoomNumber: "101", Type: "Standard"},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return([]model.Room{}, &recordstore.BatchError{Failures: []recordstore.Result{{Message: "room_number already exists"}}})
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "store unreachable",
			req:  dto.CreateRoomRequest{RoomNumber: "101", Type: "Standard"},
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return([]model.Room{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), res.ID)
			assert.Equal(t, tt.wantName, res.Name)
			assert.Equal(t, string(model.StatusAvailable), res.Status)
		})
	}
}

func TestRoomService_CreateBatchPartial(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Room{{ID: 1, RoomNumber: "101", Status: model.StatusAvailable}}, &recordstore.BatchError{
			Failures:  []recordstore.Result{{Message: "room_number already exists"}},
			Succeeded: 1,
		})

	res, err := svc.CreateBatch(context.Background(), dto.CreateRoomsRequest{Rooms: []dto.CreateRoomRequest{
		{RoomNumber: "101", Type: "Standard"},
		{RoomNumber: "101", Type: "Suite"},
	}})

	require.NoError(t, err)
	require.Len(t, res.Rooms, 1)
	assert.Equal(t, "101", res.Rooms[0].RoomNumber)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, []string{"room_number already exists"}, res.Errors)
}

func TestRoomService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache miss loads from the store",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Room{
					{ID: 1, RoomNumber: "101"},
					{ID: 2, RoomNumber: "102"},
				}, nil)
			},
			wantTotal: 2,
		},
		{
			name: "count error",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
				repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Room{}, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalData)
			assert.Equal(t, 1, res.TotalPage)
			assert.Len(t, res.Rooms, tt.wantTotal)
		})
	}
}

func TestRoomService_GetNotFound(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), int64(9)).Return(model.Room{}, failure.NotFound("room not found"))

	_, err := svc.Get(context.Background(), 9)

	assert.True(t, failure.IsNotFound(err))
}

func TestRoomService_UpdateStampsLastCleaned(t *testing.T) {
	svc, repo, _ := newService(t)

	status := string(model.StatusAvailable)

	repo.EXPECT().Get(gomock.Any(), int64(3)).Return(model.Room{ID: 3, Status: model.StatusCleaning}, nil)
	repo.EXPECT().
		Update(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, fields map[string]any) (model.Room, error) {
			assert.Equal(t, status, fields[model.FieldStatus])
			assert.Contains(t, fields, model.FieldLastCleaned)

			return model.Room{ID: id, Status: model.StatusAvailable}, nil
		})

	res, err := svc.Update(context.Background(), dto.UpdateRoomRequest{Status: &status}, 3)

	require.NoError(t, err)
	assert.Equal(t, status, res.Status)
}

func TestRoomService_UpdateWithoutFieldsReturnsCurrent(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), int64(3)).Return(model.Room{ID: 3, RoomNumber: "303"}, nil)

	res, err := svc.Update(context.Background(), dto.UpdateRoomRequest{}, 3)

	require.NoError(t, err)
	assert.Equal(t, "303", res.RoomNumber)
}

func TestRoomService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom)
		wantCode  int
	}{
		{
			name: "success",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), int64(4)).Return(model.Room{ID: 4}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(4), model.StatusMaintenance).
					Return(model.Room{ID: 4, Status: model.StatusMaintenance}, nil)
			},
		},
		{
			name: "room not found",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), int64(4)).Return(model.Room{}, failure.NotFound("room not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			res, err := svc.UpdateStatus(context.Background(), 4, model.StatusMaintenance)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(model.StatusMaintenance), res.Status)
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), int64(5)).Return(model.Room{ID: 5}, nil)
	repo.EXPECT().Delete(gomock.Any(), int64(5)).Return([]int64{5}, nil)

	assert.NoError(t, svc.Delete(context.Background(), 5))
}
