package commands_test

import (
	"testing"

	"fixmarket/internal/core/application/usecases/commands"
	"fixmarket/internal/core/domain/model/kernel"
	"fixmarket/internal/core/domain/model/offer"
	"fixmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRejectOfferCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	technicianID := kernel.NewUUID()
	testOffer := newPendingOffer(t, kernel.NewUUID(), technicianID)

	cmd, err := commands.NewRejectOfferCommand(testOffer.ID(), technicianID)
	require.NoError(t, err)

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("GetForUpdate", ctx, testOffer.ID()).Return(testOffer, nil).Once(),
		offerRepo.On("Update", ctx, testOffer).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOfferCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, offer.Rejected, testOffer.Status())

	offerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRejectOfferCommandHandler_Handle_OfferNotFound(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRejectOfferCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("GetForUpdate", ctx, cmd.OfferID()).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOfferCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOfferNotFound)
}

func TestRejectOfferCommandHandler_Handle_WrongTechnician(t *testing.T) {
	ctx := t.Context()

	testOffer := newPendingOffer(t, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewRejectOfferCommand(testOffer.ID(), kernel.NewUUID())
	require.NoError(t, err)

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("GetForUpdate", ctx, testOffer.ID()).Return(testOffer, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOfferCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOfferNotFound)
	assert.Equal(t, offer.Pending, testOffer.Status())
}

func TestRejectOfferCommandHandler_Handle_AlreadyResolved(t *testing.T) {
	ctx := t.Context()

	technicianID := kernel.NewUUID()
	testOffer := newPendingOffer(t, kernel.NewUUID(), technicianID)
	require.NoError(t, testOffer.Accept(acceptClock))

	cmd, err := commands.NewRejectOfferCommand(testOffer.ID(), technicianID)
	require.NoError(t, err)

	offerRepo := new(MockOfferRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OfferRepository").Return(offerRepo).Once(),
		offerRepo.On("GetForUpdate", ctx, testOffer.ID()).Return(testOffer, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOfferUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRejectOfferCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrJobNotEligible)
	offerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRejectOfferCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockOfferUoWFactory)
	handler := commands.NewRejectOfferCommandHandler(factory)
	err := handler.Handle(ctx, commands.RejectOfferCommand{})

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
