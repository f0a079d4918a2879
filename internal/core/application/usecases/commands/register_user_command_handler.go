package commands

import (
	"context"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/presenter"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/ports"
)

// RegisterUserCommandHandler handles account signup. Email and username
// uniqueness rides on the storage layer's constraints rather than a
// check-then-insert, so two concurrent signups with the same email cannot
// both succeed.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     PasswordHasher
	notifier   ports.NotificationPort
}

// NewRegisterUserCommandHandler creates a handler for signup operations.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher PasswordHasher,
	notifier ports.NotificationPort,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		notifier:   notifier,
	}
}

// Handle processes the signup command and returns the created user.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	aggregate, err := user.NewUser(
		cmd.ID(),
		cmd.Username(),
		cmd.Email(),
		passwordHash,
		cmd.Role(),
		cmd.EstimatedDeliveryTime(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if aggregate.IsDeliveryPartner() {
		h.notifier.Publish(
			ports.EventPartnerCreated,
			ports.Broadcast(),
			presenter.UserToView(aggregate),
		)
	}

	return aggregate, nil
}
