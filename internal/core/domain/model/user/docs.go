// Package user contains the identity aggregate and its role model.
//
// A user is either a manager or a delivery partner. Managers create and edit
// orders and administer partners; delivery partners carry the availability
// state that the assignment coordinator relies on: a partner is bound to at
// most one active order, and is unavailable for exactly as long as that
// binding exists. The aggregate enforces that relationship on every mutation
// so the two fields cannot drift apart through domain operations.
package user
