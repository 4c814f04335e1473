package commands_test

import (
	"testing"

	"fixmarket/internal/core/application/usecases/commands"
	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/technician"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTechnicianCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateTechnicianCommand(userID, "Alex")
	require.NoError(t, err)

	technicianRepo := new(MockTechnicianRepository)
	uow := new(MockUoW)

	var created *technician.Technician
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("Add", ctx, mock.AnythingOfType("*technician.Technician")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*technician.Technician)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTechnicianUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateTechnicianCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, cmd.TechnicianID(), created.ID())
	assert.Equal(t, userID, created.UserID())
	assert.Equal(t, "Alex", created.Name())
	assert.False(t, created.IsVerified())
	assert.Zero(t, created.AverageRating())
	assert.Zero(t, created.TotalReviews())

	technicianRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateTechnicianCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockTechnicianUoWFactory)
	handler := commands.NewCreateTechnicianCommandHandler(factory)
	err := handler.Handle(ctx, commands.CreateTechnicianCommand{})

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateTechnicianCommand_Validation(t *testing.T) {
	t.Run("empty user id", func(t *testing.T) {
		_, err := commands.NewCreateTechnicianCommand(kernel.UUID{}, "Alex")
		require.Error(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := commands.NewCreateTechnicianCommand(kernel.NewUUID(), "")
		require.Error(t, err)
	})
}

func TestVerifyTechnicianCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	tech, err := technician.NewTechnician(kernel.NewUUID(), kernel.NewUUID(), "Alex")
	require.NoError(t, err)

	cmd, err := commands.NewVerifyTechnicianCommand(tech.ID())
	require.NoError(t, err)

	technicianRepo := new(MockTechnicianRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TechnicianRepository").Return(technicianRepo).Once(),
		technicianRepo.On("Get", ctx, tech.ID()).Return(tech, nil).Once(),
		technicianRepo.On("Update", ctx, tech).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTechnicianUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVerifyTechnicianCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, tech.IsVerified())

	technicianRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestVerifyTechnicianCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockTechnicianUoWFactory)
	handler := commands.NewVerifyTechnicianCommandHandler(factory)
	err := handler.Handle(ctx, commands.VerifyTechnicianCommand{})

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
