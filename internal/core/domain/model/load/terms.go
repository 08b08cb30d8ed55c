package load

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrTermsAreNotConstructed is returned when Terms were not created via NewTerms.
var ErrTermsAreNotConstructed = errors.New("Terms must be created via NewTerms constructor")

// PickupDateLayout is the calendar-date layout used for pickup dates on the wire.
const PickupDateLayout = time.DateOnly

// Terms are the shipment terms of a load. They are fixed when the load is posted;
// no operation edits them afterwards.
type Terms struct {
	origin      string
	destination string
	cargoType   string
	vehicleType string
	weight      decimal.Decimal
	price       kernel.Money
	pickupDate  time.Time

	isConstructed bool
}

// NewTerms validates every field and reports all problems at once.
//
// Rules:
//   - origin, destination, cargoType and vehicleType are required (surrounding spaces trimmed)
//   - weight (tons) must be greater than 0
//   - price must be greater than 0
//   - pickupDate is required; only the calendar date (UTC) is kept
//
// Returns a joined error of ValueIsRequiredError / ValueIsInvalidError values.
func NewTerms(
	origin, destination, cargoType, vehicleType string,
	weight decimal.Decimal,
	price kernel.Money,
	pickupDate time.Time,
) (Terms, error) {
	t := Terms{isConstructed: true}

	if err := errors.Join(
		setRequired(&t.origin, "origin", origin),
		setRequired(&t.destination, "destination", destination),
		setRequired(&t.cargoType, "cargoType", cargoType),
		setRequired(&t.vehicleType, "vehicleType", vehicleType),
		t.setWeight(weight),
		t.setPrice(price),
		t.setPickupDate(pickupDate),
	); err != nil {
		return Terms{}, err
	}

	return t, nil
}

func (t Terms) Validate() error {
	if !t.isConstructed {
		return ErrTermsAreNotConstructed
	}
	return nil
}

func (t Terms) Origin() string {
	return t.origin
}

func (t Terms) Destination() string {
	return t.destination
}

func (t Terms) CargoType() string {
	return t.cargoType
}

// VehicleType returns the vehicle type a trucker needs to carry the load.
func (t Terms) VehicleType() string {
	return t.vehicleType
}

// Weight returns the cargo weight in tons.
func (t Terms) Weight() decimal.Decimal {
	return t.weight
}

func (t Terms) Price() kernel.Money {
	return t.price
}

// PickupDate returns midnight UTC of the pickup day.
func (t Terms) PickupDate() time.Time {
	return t.pickupDate
}

func setRequired(dst *string, name, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = trimmed
	return nil
}

func (t *Terms) setWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s is not greater than 0", weight))
	}
	t.weight = weight
	return nil
}

func (t *Terms) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", price))
	}
	t.price = price
	return nil
}

func (t *Terms) setPickupDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	y, m, d := date.Date()
	t.pickupDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return nil
}
