package kernel

import (
	"fmt"
	"math/rand/v2"

	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"

	"github.com/google/uuid"
)

const (
	// OrderIDLength is the fixed length of customer-facing order identifiers.
	OrderIDLength = 8

	// orderIDAlphabet is the character set identifiers are drawn from.
	// 36^8 possible codes make random collisions effectively impossible.
	orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// maxRandomAttempts bounds the random draw loop. Collision after this many
	// draws means the existing-ID set is pathological, not unlucky.
	maxRandomAttempts = 4096

	// maxFallbackAttempts bounds the UUID-derived fallback loop that runs after
	// random draws are exhausted.
	maxFallbackAttempts = 16
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// one of the constructor functions. This error is returned when validating a
// zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or GenerateOrderID",
)

// OrderID is a value object representing the short identifier customers use to
// track their orders. It is always exactly 8 characters from the A-Z0-9
// alphabet. The zero value is invalid; use NewOrderID to reconstruct an
// identifier from persistence or GenerateOrderID to mint a fresh one.
//
// OrderID is immutable and safe for concurrent use.
type OrderID struct {
	value string

	guard guard.ConstructorGuard
}

// NewOrderID creates an OrderID from its string form, validating length and
// alphabet. It is typically used when reconstructing orders from persistence
// or parsing identifiers submitted by callers.
func NewOrderID(value string) (OrderID, error) {
	if value == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderID")
	}

	if len(value) != OrderIDLength {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%q is not %d characters long", value, OrderIDLength))
	}

	for _, c := range value {
		if !isOrderIDChar(byte(c)) {
			return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderID",
				fmt.Errorf("%q contains characters outside A-Z0-9", value))
		}
	}

	return OrderID{value: value, guard: guard.NewConstructorGuard()}, nil
}

// GenerateOrderID mints a new identifier that is guaranteed not to satisfy the
// taken predicate at the time of the call. The caller must hold the same
// serialization boundary that protects the subsequent create, otherwise two
// writers can both pass the check against a stale snapshot.
//
// Generation draws uniformly random codes up to maxRandomAttempts times, then
// falls back to codes derived from fresh UUIDs before giving up with a
// GenerationExhaustedError. A nil predicate means no identifier is taken.
func GenerateOrderID(taken func(string) bool) (OrderID, error) {
	if taken == nil {
		taken = func(string) bool { return false }
	}

	for range maxRandomAttempts {
		candidate := randomCode()
		if !taken(candidate) {
			return OrderID{value: candidate, guard: guard.NewConstructorGuard()}, nil
		}
	}

	for range maxFallbackAttempts {
		candidate := codeFromUUID(uuid.New())
		if !taken(candidate) {
			return OrderID{value: candidate, guard: guard.NewConstructorGuard()}, nil
		}
	}

	return OrderID{}, errs.NewGenerationExhaustedError(maxRandomAttempts + maxFallbackAttempts)
}

// Validate ensures the OrderID was constructed through NewOrderID or
// GenerateOrderID rather than as a zero value.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}

// String returns the identifier's canonical 8-character form.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

func randomCode() string {
	buf := make([]byte, OrderIDLength)
	for i := range buf {
		buf[i] = orderIDAlphabet[rand.IntN(len(orderIDAlphabet))]
	}
	return string(buf)
}

// codeFromUUID maps the first bytes of a UUID into the identifier alphabet,
// giving a deterministic function of an identifier space that is itself
// collision-free for practical purposes.
func codeFromUUID(u uuid.UUID) string {
	buf := make([]byte, OrderIDLength)
	for i := range buf {
		buf[i] = orderIDAlphabet[int(u[i])%len(orderIDAlphabet)]
	}
	return string(buf)
}

func isOrderIDChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
