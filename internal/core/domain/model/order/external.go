package order

import (
	"fmt"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// The externally presented status vocabulary. API responses and push-channel
// payloads always use these strings; storage always uses Status. The mapping
// is a total bijection over the four lifecycle states, applied in exactly one
// place per direction so no call site remaps fields by hand.
const (
	ExternalPrep      = "PREPARING"
	ExternalPicked    = "READY"
	ExternalOnRoute   = "OUT_FOR_DELIVERY"
	ExternalDelivered = "DELIVERED"
)

var statusToExternal = map[Status]string{
	Prep:      ExternalPrep,
	Picked:    ExternalPicked,
	OnRoute:   ExternalOnRoute,
	Delivered: ExternalDelivered,
}

var externalToStatus = map[string]Status{
	ExternalPrep:      Prep,
	ExternalPicked:    Picked,
	ExternalOnRoute:   OnRoute,
	ExternalDelivered: Delivered,
}

// External returns the externally presented name of the status.
// Invalid statuses map to the empty string.
func (s Status) External() string {
	return statusToExternal[s]
}

// StatusFromExternal parses an externally presented status string. Unmapped
// strings are rejected outright rather than passed through, so internal
// vocabulary or arbitrary values can never sneak in via a status update.
func StatusFromExternal(s string) (Status, error) {
	status, ok := externalToStatus[s]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a known status", s))
	}
	return status, nil
}
