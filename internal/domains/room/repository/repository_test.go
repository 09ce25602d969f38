package repository_test

import (
	"context"
	"testing"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/infras/recordstore"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	notifyMocks "frontdesk/shared/notify/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRepository(t *testing.T) (repository.Room, *notifyMocks.MockNotifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	notifier := notifyMocks.NewMockNotifier(ctrl)

	return repository.New(recordstore.NewMemory(), notifier, otelMocks.NewOtel()), notifier
}

func TestRoomRepository_UpdateStatusStampsLastCleaned(t *testing.T) {
	repo, _ := newRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Room{RoomNumber: "101", Status: model.StatusOccupied})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.True(t, created[0].LastCleaned.IsZero())

	cleaning, err := repo.UpdateStatus(ctx, created[0].ID, model.StatusCleaning)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCleaning, cleaning.Status)
	assert.True(t, cleaning.LastCleaned.IsZero())

	available, err := repo.UpdateStatus(ctx, created[0].ID, model.StatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAvailable, available.Status)
	assert.False(t, available.LastCleaned.IsZero())
}

func TestRoomRepository_CreateRejectsUnknownStatus(t *testing.T) {
	repo, notifier := newRepository(t)

	notifier.EXPECT().Error(gomock.Any(), model.EntityName, gomock.Any()).Times(1)

	created, err := repo.Create(context.Background(),
		model.Room{RoomNumber: "101", Status: model.StatusAvailable},
		model.Room{RoomNumber: "102", Status: "flooded"},
	)

	require.Len(t, created, 1)
	assert.Equal(t, "101", created[0].RoomNumber)
	assert.ErrorContains(t, err, "invalid room status")
}

func TestRoomRepository_FilterByFloorAndStatus(t *testing.T) {
	repo, _ := newRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx,
		model.Room{RoomNumber: "101", Floor: 1, Status: model.StatusAvailable},
		model.Room{RoomNumber: "102", Floor: 1, Status: model.StatusOccupied},
		model.Room{RoomNumber: "201", Floor: 2, Status: model.StatusAvailable},
	)
	require.NoError(t, err)

	filter := shared.FilterByField(model.FieldFloor, 1)
	filter.Add(gDto.Filter{Field: model.FieldStatus, Value: string(model.StatusAvailable), Operator: gDto.FilterOperatorEq})

	rooms, err := repo.GetAll(ctx, gDto.QueryParams{}, filter)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "101", rooms[0].RoomNumber)

	total, err := repo.Count(ctx, shared.FilterByField(model.FieldFloor, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}
