package services_test

import (
	"testing"
	"time"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/services"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHash = "$2a$10$abcdefghijklmnopqrstuv"

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem("Biryani", 1, 220)
	require.NoError(t, err)
	customer, err := order.NewCustomerInfo("Priya", "+91-9876543210", "12 MG Road, Bengaluru")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), order.GenerateOrderID(), []order.Item{item}, 20, customer, kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return o
}

func newTestPartner(t *testing.T) *user.User {
	t.Helper()

	u, err := user.NewUser(kernel.NewUUID(), "ravi", "ravi@example.com", testHash, user.DeliveryPartner, 30)
	require.NoError(t, err)
	return u
}

func TestAssignmentCoordinator_Assign(t *testing.T) {
	coordinator := services.NewAssignmentCoordinator()

	t.Run("should bind both sides and derive dispatch time", func(t *testing.T) {
		o := newTestOrder(t)
		partner := newTestPartner(t)

		err := coordinator.Assign(o, partner, time.Now())

		require.NoError(t, err)
		require.NotNil(t, o.PartnerID())
		assert.True(t, o.PartnerID().IsEqual(partner.ID()))
		require.NotNil(t, o.DispatchTime())
		assert.Equal(t, 50, *o.DispatchTime())
		assert.False(t, partner.IsAvailable())
		require.NotNil(t, partner.CurrentOrderID())
		assert.True(t, partner.CurrentOrderID().IsEqual(o.ID()))
	})

	t.Run("should fail when order already has a partner", func(t *testing.T) {
		o := newTestOrder(t)
		first := newTestPartner(t)
		second := newTestPartner(t)
		require.NoError(t, coordinator.Assign(o, first, time.Now()))

		err := coordinator.Assign(o, second, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.True(t, second.IsAvailable())
	})

	t.Run("should treat a manager candidate as not found", func(t *testing.T) {
		o := newTestOrder(t)
		manager, err := user.NewUser(kernel.NewUUID(), "asha", "asha@example.com", testHash, user.Manager, 0)
		require.NoError(t, err)

		err = coordinator.Assign(o, manager, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail when partner is unavailable", func(t *testing.T) {
		o := newTestOrder(t)
		partner := newTestPartner(t)
		require.NoError(t, partner.SetAvailability(false))

		err := coordinator.Assign(o, partner, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Nil(t, o.PartnerID())
	})

	t.Run("should fail when partner already carries an order", func(t *testing.T) {
		partner := newTestPartner(t)
		require.NoError(t, coordinator.Assign(newTestOrder(t), partner, time.Now()))

		err := coordinator.Assign(newTestOrder(t), partner, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should fail with unconstructed aggregates", func(t *testing.T) {
		var o order.Order
		var partner user.User

		err := services.NewAssignmentCoordinator().Assign(&o, newTestPartner(t), time.Now())
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)

		err = services.NewAssignmentCoordinator().Assign(newTestOrder(t), &partner, time.Now())
		assert.ErrorIs(t, err, user.ErrUserIsNotConstructed)
	})
}

func TestAssignmentCoordinator_CompleteDelivery(t *testing.T) {
	coordinator := services.NewAssignmentCoordinator()

	t.Run("should deliver and release the bound partner", func(t *testing.T) {
		o := newTestOrder(t)
		partner := newTestPartner(t)
		require.NoError(t, coordinator.Assign(o, partner, time.Now()))
		require.NoError(t, o.AdvanceStatus(order.Picked, partner.ID(), time.Now()))
		require.NoError(t, o.AdvanceStatus(order.OnRoute, partner.ID(), time.Now()))

		err := coordinator.CompleteDelivery(o, partner, partner.ID(), time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, partner.IsAvailable())
		assert.Nil(t, partner.CurrentOrderID())
	})

	t.Run("should keep partner bound when the transition is illegal", func(t *testing.T) {
		o := newTestOrder(t)
		partner := newTestPartner(t)
		require.NoError(t, coordinator.Assign(o, partner, time.Now()))

		err := coordinator.CompleteDelivery(o, partner, partner.ID(), time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.False(t, partner.IsAvailable())
		require.NotNil(t, partner.CurrentOrderID())
	})

	t.Run("should tolerate a missing partner", func(t *testing.T) {
		o := newTestOrder(t)
		actor := kernel.NewUUID()
		require.NoError(t, o.AdvanceStatus(order.Picked, actor, time.Now()))
		require.NoError(t, o.AdvanceStatus(order.OnRoute, actor, time.Now()))

		err := coordinator.CompleteDelivery(o, nil, actor, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestAssignmentCoordinator_ReleaseForDeletion(t *testing.T) {
	coordinator := services.NewAssignmentCoordinator()

	t.Run("should release the bound partner pre-pickup", func(t *testing.T) {
		o := newTestOrder(t)
		partner := newTestPartner(t)
		require.NoError(t, coordinator.Assign(o, partner, time.Now()))

		err := coordinator.ReleaseForDeletion(o, partner)

		require.NoError(t, err)
		assert.True(t, partner.IsAvailable())
		assert.Nil(t, partner.CurrentOrderID())
	})

	t.Run("should fail once the order was picked up", func(t *testing.T) {
		o := newTestOrder(t)
		partner := newTestPartner(t)
		require.NoError(t, coordinator.Assign(o, partner, time.Now()))
		require.NoError(t, o.AdvanceStatus(order.Picked, partner.ID(), time.Now()))

		err := coordinator.ReleaseForDeletion(o, partner)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.False(t, partner.IsAvailable())
	})

	t.Run("should tolerate no partner bound", func(t *testing.T) {
		o := newTestOrder(t)

		assert.NoError(t, coordinator.ReleaseForDeletion(o, nil))
	})
}
