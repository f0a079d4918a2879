package commands_test

import (
	"testing"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/presenter"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/usecases/commands"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/ports"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateAvailabilityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	partner := newTestPartner(t)
	cmd, err := commands.NewUpdateAvailabilityCommand(partner.ID(), false)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, partner.ID()).Return(partner, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Update", ctx, partner).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Publish", ports.EventPartnerAvailabilityChange, ports.Broadcast(),
		presenter.AvailabilityView{ID: partner.ID().String(), IsAvailable: false}).Once()

	handler := commands.NewUpdateAvailabilityCommandHandler(factory, notifier)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, updated.IsAvailable())
	userRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUpdateAvailabilityCommandHandler_Handle_BusyPartnerConflict(t *testing.T) {
	ctx := t.Context()

	partner := newTestPartner(t)
	require.NoError(t, partner.MarkBusy(kernel.NewUUID()))

	cmd, err := commands.NewUpdateAvailabilityCommand(partner.ID(), true)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, partner.ID()).Return(partner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateAvailabilityCommandHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit")
}

func TestUpdateAvailabilityCommandHandler_Handle_PartnerNotFound(t *testing.T) {
	ctx := t.Context()

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewUpdateAvailabilityCommand(partnerID, true)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, partnerID).Return(nil, errs.NewObjectNotFoundError("user", partnerID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateAvailabilityCommandHandler(factory, new(MockNotifier))
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUpdateAvailabilityCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateAvailabilityCommand{} // not constructed properly

	factory := new(MockUserUoWFactory)
	handler := commands.NewUpdateAvailabilityCommandHandler(factory, new(MockNotifier))
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateAvailabilityCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
