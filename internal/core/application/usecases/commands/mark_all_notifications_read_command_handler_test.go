package commands_test

import (
	"errors"
	"testing"

	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewMarkAllNotificationsReadCommand(t *testing.T) {
	userID := kernel.NewUUID()
	cmd, err := commands.NewMarkAllNotificationsReadCommand(userID)
	require.NoError(t, err)
	assert.Equal(t, userID, cmd.UserID())

	_, err = commands.NewMarkAllNotificationsReadCommand(kernel.UUID{})
	require.Error(t, err)
}

func TestMarkAllNotificationsReadCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewMarkAllNotificationsReadCommand(userID)
	require.NoError(t, err)

	repo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("MarkAllAsRead", ctx, userID).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkAllNotificationsReadCommandHandler(factory)
	affected, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkAllNotificationsReadCommandHandler_Handle_RepoError(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewMarkAllNotificationsReadCommand(userID)
	require.NoError(t, err)

	repo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		repo.On("MarkAllAsRead", ctx, userID).Return(int64(0), errors.New("update failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkAllNotificationsReadCommandHandler(factory)
	affected, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Zero(t, affected)
}
