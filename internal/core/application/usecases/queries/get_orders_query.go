package queries

import (
	"errors"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetOrdersQuery retrieves a page of orders scoped to the requesting user.
// Managers see every order; delivery partners see only the orders assigned
// to them. An optional status filter accepts the external vocabulary.
//
// Example:
//
//	query, err := NewGetOrdersQuery(actorID, user.Manager, 1, 20, "PREPARING")
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	page, err := NewGetOrdersQueryHandler(db).Handle(ctx, query)
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	actorRole user.Role
	page      int
	pageSize  int
	status    *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for a page of orders. page counts from 1;
// pageSize falls back to the default when zero and is capped at the maximum.
// externalStatus filters by lifecycle state when non-empty; an unknown name
// is rejected outright rather than matching nothing.
func NewGetOrdersQuery(
	actorID kernel.UUID,
	actorRole user.Role,
	page, pageSize int,
	externalStatus string,
) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setActor(actorID, actorRole),
		query.setPage(page, pageSize),
		query.setStatus(externalStatus),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ActorID returns the requesting user.
func (q GetOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// ActorRole returns the requesting user's role.
func (q GetOrdersQuery) ActorRole() user.Role {
	return q.actorRole
}

// Page returns the 1-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size after defaulting and capping.
func (q GetOrdersQuery) PageSize() int {
	return q.pageSize
}

// Status returns the lifecycle filter, or nil for all statuses.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

func (q *GetOrdersQuery) setActor(actorID kernel.UUID, actorRole user.Role) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if err := actorRole.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	q.actorRole = actorRole
	return nil
}

func (q *GetOrdersQuery) setPage(page, pageSize int) error {
	if page < 1 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, maxPageSize)
	}

	q.page = page
	q.pageSize = pageSize
	return nil
}

func (q *GetOrdersQuery) setStatus(externalStatus string) error {
	if externalStatus == "" {
		return nil
	}

	status, err := order.StatusFromExternal(externalStatus)
	if err != nil {
		return err
	}

	q.status = &status
	return nil
}

// PaginationResponse describes the page window of a list response: the
// current 1-based page, the number of pages, and the total row count.
type PaginationResponse struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// NewPaginationResponse computes the page window for a total at the given
// page size.
func NewPaginationResponse(current, pageSize int, total int64) PaginationResponse {
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return PaginationResponse{
		Current: current,
		Pages:   pages,
		Total:   total,
	}
}

// GetOrdersQueryResponse is one page of order read models together with the
// page window.
type GetOrdersQueryResponse struct {
	Orders     []OrderResponse    `json:"orders"`
	Pagination PaginationResponse `json:"pagination"`
}
