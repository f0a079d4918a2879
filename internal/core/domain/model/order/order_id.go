package order

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const orderIDRandomLength = 5

var orderIDAlphabet = []rune("0123456789abcdefghijklmnopqrstuvwxyz")

// GenerateOrderID produces a human-readable order identifier of the form
// ORD-<base36 timestamp>-<random suffix>, uppercased. Uniqueness is backed by
// the database constraint on the column; the random suffix keeps identifiers
// generated within the same millisecond apart.
func GenerateOrderID() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)

	suffix := make([]rune, orderIDRandomLength)
	for i := range suffix {
		suffix[i] = orderIDAlphabet[rand.Intn(len(orderIDAlphabet))]
	}

	return strings.ToUpper("ORD-" + timestamp + "-" + string(suffix))
}
