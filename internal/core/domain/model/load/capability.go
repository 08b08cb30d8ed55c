package load

import (
	"fmt"
	"strings"

	"loadboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Capability describes what a trucker can carry. Both parts are optional; the zero
// Capability matches every load.
type Capability struct {
	vehicleType string
	capacity    decimal.Decimal
	hasCapacity bool
}

// AnyCapability returns the filter that matches every posted load.
func AnyCapability() Capability {
	return Capability{}
}

// NewCapability builds a filter. An empty vehicleType matches any vehicle type;
// a nil capacity means no weight limit. A given capacity must be positive.
func NewCapability(vehicleType string, capacity *decimal.Decimal) (Capability, error) {
	c := Capability{vehicleType: strings.TrimSpace(vehicleType)}

	if capacity != nil {
		if !capacity.IsPositive() {
			return Capability{}, errs.NewValueIsInvalidErrorWithCause(
				"capacity",
				fmt.Errorf("%s is not greater than 0", capacity),
			)
		}
		c.capacity = *capacity
		c.hasCapacity = true
	}

	return c, nil
}

// VehicleType returns the vehicle type filter, or "" when unrestricted.
func (c Capability) VehicleType() string {
	return c.vehicleType
}

// Capacity returns the weight limit in tons and whether one is set.
func (c Capability) Capacity() (decimal.Decimal, bool) {
	return c.capacity, c.hasCapacity
}

// Accepts reports whether a truck with this capability can carry a load with the
// given terms: vehicle types match case-insensitively and the weight fits.
func (c Capability) Accepts(t Terms) bool {
	if c.vehicleType != "" && !strings.EqualFold(c.vehicleType, t.VehicleType()) {
		return false
	}
	if c.hasCapacity && t.Weight().GreaterThan(c.capacity) {
		return false
	}
	return true
}
