package order_test

import (
	"strings"
	"testing"
	"time"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T) []order.Item {
	t.Helper()

	burger, err := order.NewItem("Burger", 2, 120.50)
	require.NoError(t, err)
	fries, err := order.NewItem("Fries", 1, 59)
	require.NoError(t, err)

	return []order.Item{burger, fries}
}

func validCustomer(t *testing.T) order.CustomerInfo {
	t.Helper()

	customer, err := order.NewCustomerInfo("Priya", "+91-9876543210", "12 MG Road, Bengaluru")
	require.NoError(t, err)
	return customer
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.GenerateOrderID(),
		validItems(t),
		20,
		validCustomer(t),
		kernel.NewUUID(),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		validID := kernel.NewUUID()
		manager := kernel.NewUUID()
		now := time.Now()

		o, err := order.NewOrder(validID, "ORD-TEST-1", validItems(t), 20, validCustomer(t), manager, now)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "ORD-TEST-1", o.OrderID())
		assert.Equal(t, 20, o.PrepTime())
		assert.Equal(t, order.Prep, o.Status())
		assert.Nil(t, o.PartnerID())
		assert.Nil(t, o.DispatchTime())
		assert.True(t, o.CreatedBy().IsEqual(manager))
		assert.Equal(t, 1, o.Version())
	})

	t.Run("should compute total from items", func(t *testing.T) {
		o := newTestOrder(t)

		assert.InDelta(t, 2*120.50+59, o.TotalAmount(), 0.001)
	})

	t.Run("should start history with the initial status", func(t *testing.T) {
		o := newTestOrder(t)

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.Prep, history[0].Status())
		assert.True(t, history[0].UpdatedBy().IsEqual(o.CreatedBy()))
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "ORD-TEST-1", validItems(t), 20, validCustomer(t), kernel.NewUUID(), time.Now())

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with empty order identifier", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "", validItems(t), 20, validCustomer(t), kernel.NewUUID(), time.Now())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with no items", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-TEST-1", nil, 20, validCustomer(t), kernel.NewUUID(), time.Now())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non-positive prep time", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-TEST-1", validItems(t), 0, validCustomer(t), kernel.NewUUID(), time.Now())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for order not created via factory", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AssignPartner(t *testing.T) {
	t.Run("should bind partner and derive dispatch time", func(t *testing.T) {
		o := newTestOrder(t)
		partnerID := kernel.NewUUID()

		err := o.AssignPartner(partnerID, 30, time.Now())

		require.NoError(t, err)
		require.NotNil(t, o.PartnerID())
		assert.True(t, o.PartnerID().IsEqual(partnerID))
		require.NotNil(t, o.DispatchTime())
		assert.Equal(t, o.PrepTime()+30, *o.DispatchTime())
		assert.True(t, o.IsBoundTo(partnerID))
	})

	t.Run("should fail on second assignment", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignPartner(kernel.NewUUID(), 30, time.Now()))

		err := o.AssignPartner(kernel.NewUUID(), 15, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should fail with invalid partner id", func(t *testing.T) {
		o := newTestOrder(t)
		var invalidID kernel.UUID

		err := o.AssignPartner(invalidID, 30, time.Now())

		require.Error(t, err)
		assert.Nil(t, o.PartnerID())
	})
}

func TestOrder_AdvanceStatus(t *testing.T) {
	t.Run("should walk the full lifecycle one step at a time", func(t *testing.T) {
		o := newTestOrder(t)
		actor := kernel.NewUUID()

		for _, target := range []order.Status{order.Picked, order.OnRoute, order.Delivered} {
			require.NoError(t, o.AdvanceStatus(target, actor, time.Now()))
			assert.Equal(t, target, o.Status())
		}

		assert.False(t, o.IsActive())
	})

	t.Run("should append a history entry per transition", func(t *testing.T) {
		o := newTestOrder(t)
		actor := kernel.NewUUID()

		require.NoError(t, o.AdvanceStatus(order.Picked, actor, time.Now()))
		require.NoError(t, o.AdvanceStatus(order.OnRoute, actor, time.Now()))

		history := o.History()
		require.Len(t, history, 3)
		assert.Equal(t, order.Prep, history[0].Status())
		assert.Equal(t, order.Picked, history[1].Status())
		assert.Equal(t, order.OnRoute, history[2].Status())
		assert.True(t, history[2].UpdatedBy().IsEqual(actor))
	})

	t.Run("should leave order untouched on illegal move", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AdvanceStatus(order.Delivered, kernel.NewUUID(), time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.Prep, o.Status())
		assert.Len(t, o.History(), 1)
	})
}

func TestOrder_UpdateDetails(t *testing.T) {
	t.Run("should replace items and recompute total", func(t *testing.T) {
		o := newTestOrder(t)
		pizza, err := order.NewItem("Pizza", 3, 250)
		require.NoError(t, err)

		err = o.UpdateDetails([]order.Item{pizza}, 25, validCustomer(t), 0, time.Now())

		require.NoError(t, err)
		assert.Equal(t, 25, o.PrepTime())
		assert.InDelta(t, 750, o.TotalAmount(), 0.001)
		assert.Nil(t, o.DispatchTime())
	})

	t.Run("should recompute dispatch time when a partner is bound", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignPartner(kernel.NewUUID(), 30, time.Now()))

		err := o.UpdateDetails(validItems(t), 40, validCustomer(t), 30, time.Now())

		require.NoError(t, err)
		require.NotNil(t, o.DispatchTime())
		assert.Equal(t, 70, *o.DispatchTime())
	})

	t.Run("should fail after pickup", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AdvanceStatus(order.Picked, kernel.NewUUID(), time.Now()))

		err := o.UpdateDetails(validItems(t), 25, validCustomer(t), 0, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 20, o.PrepTime())
	})
}

func TestOrder_RecomputeDispatchTime(t *testing.T) {
	t.Run("should refresh the estimate before the order is on route", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AssignPartner(kernel.NewUUID(), 30, time.Now()))

		err := o.RecomputeDispatchTime(45, time.Now())

		require.NoError(t, err)
		require.NotNil(t, o.DispatchTime())
		assert.Equal(t, 65, *o.DispatchTime())
	})

	t.Run("should fail with no partner bound", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.RecomputeDispatchTime(45, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should fail once the order is on route", func(t *testing.T) {
		o := newTestOrder(t)
		actor := kernel.NewUUID()
		require.NoError(t, o.AssignPartner(actor, 30, time.Now()))
		require.NoError(t, o.AdvanceStatus(order.Picked, actor, time.Now()))
		require.NoError(t, o.AdvanceStatus(order.OnRoute, actor, time.Now()))

		err := o.RecomputeDispatchTime(45, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, 50, *o.DispatchTime())
	})
}

func TestOrder_EnsureDeletable(t *testing.T) {
	t.Run("should allow deletion before pickup", func(t *testing.T) {
		o := newTestOrder(t)

		assert.NoError(t, o.EnsureDeletable())
	})

	t.Run("should fail after pickup", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.AdvanceStatus(order.Picked, kernel.NewUUID(), time.Now()))

		err := o.EnsureDeletable()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestOrder_IsBoundTo(t *testing.T) {
	t.Run("should compare by identity, not mere presence", func(t *testing.T) {
		o := newTestOrder(t)
		partnerID := kernel.NewUUID()
		require.NoError(t, o.AssignPartner(partnerID, 30, time.Now()))

		assert.True(t, o.IsBoundTo(partnerID))
		assert.False(t, o.IsBoundTo(kernel.NewUUID()))
	})

	t.Run("should be false with no partner", func(t *testing.T) {
		o := newTestOrder(t)

		assert.False(t, o.IsBoundTo(kernel.NewUUID()))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should reconstruct order with history and version", func(t *testing.T) {
		id := kernel.NewUUID()
		partnerID := kernel.NewUUID()
		manager := kernel.NewUUID()
		dispatch := 50
		now := time.Now()
		history := []order.HistoryEntry{
			order.NewHistoryEntry(order.Prep, now, manager),
			order.NewHistoryEntry(order.Picked, now, partnerID),
		}

		o, err := order.RestoreOrder(
			id, "ORD-TEST-2", validItems(t), 20, order.Picked,
			&partnerID, &dispatch, validCustomer(t), history, manager, now, now, 3,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Picked, o.Status())
		assert.Equal(t, 3, o.Version())
		assert.Len(t, o.History(), 2)
		require.NotNil(t, o.DispatchTime())
		assert.Equal(t, 50, *o.DispatchTime())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-TEST-3", validItems(t), 20, order.Unknown,
			nil, nil, validCustomer(t), nil, kernel.NewUUID(), time.Now(), time.Now(), 1,
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestGenerateOrderID(t *testing.T) {
	t.Run("should produce prefixed uppercase identifiers", func(t *testing.T) {
		id := order.GenerateOrderID()

		assert.True(t, len(id) > len("ORD-"))
		assert.Equal(t, "ORD-", id[:4])
		assert.Equal(t, id, strings.ToUpper(id))
	})

	t.Run("should vary across calls", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 20 {
			seen[order.GenerateOrderID()] = struct{}{}
		}

		assert.Greater(t, len(seen), 1)
	})
}
