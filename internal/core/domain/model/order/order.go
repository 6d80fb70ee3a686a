package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// CodeLength is the required length of pickup and delivery verification codes.
const CodeLength = 6

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root for one buyer/seller/product transaction. It
// owns the lifecycle status, the link to the escrow holding the buyer's
// funds, and the one-time verification codes proving physical handoff.
//
// Invariants:
//   - total always equals itemPrice x quantity as computed at creation; it is
//     never recomputed, even if the product price later changes
//   - the escrow link is set exactly when the status requires one
//     (see Status.ValidateCanHaveEscrow)
//   - verification codes exist from WorkerAssigned onward and never change
//   - all state changes go through the transition methods below; there is no
//     way to skip forward or regress
type Order struct {
	id        kernel.UUID
	buyerID   kernel.UUID
	sellerID  kernel.UUID
	productID kernel.UUID

	quantity  int
	itemPrice kernel.Money
	total     kernel.Money

	status   Status
	escrowID *kernel.UUID

	pickupCode   string
	deliveryCode string

	isConstructed bool
}

// NewOrder creates an order in PendingPayment with the total computed from
// the item price and quantity. The caller is expected to freeze the escrow
// and call MarkPaymentFrozen within the same atomic unit of work.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	productID kernel.UUID,
	itemPrice kernel.Money,
	quantity int,
) (*Order, error) {
	o := &Order{
		status:        PendingPayment,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setItemPrice(itemPrice),
	); err != nil {
		return nil, err
	}

	total, err := itemPrice.Multiply(quantity)
	if err != nil {
		return nil, err
	}
	o.total = total

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation flow. The stored status, escrow link, and codes are validated for
// mutual consistency.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	productID kernel.UUID,
	itemPrice kernel.Money,
	total kernel.Money,
	quantity int,
	status Status,
	escrowID *kernel.UUID,
	pickupCode string,
	deliveryCode string,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setItemPrice(itemPrice),
	); err != nil {
		return nil, err
	}

	if err := total.Validate(); err != nil {
		return nil, err
	}
	o.total = total

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	if escrowID != nil {
		if err := escrowID.Validate(); err != nil {
			return nil, err
		}
		id := *escrowID
		o.escrowID = &id
	}
	if err := status.ValidateCanHaveEscrow(o.escrowID != nil); err != nil {
		return nil, err
	}

	if status == WorkerAssigned || status == PickedUp || status == Completed {
		if err := errors.Join(
			validateCode("pickupCode", pickupCode),
			validateCode("deliveryCode", deliveryCode),
		); err != nil {
			return nil, err
		}
	}
	o.pickupCode = pickupCode
	o.deliveryCode = deliveryCode

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the profile ID of the buyer.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the profile ID of the seller.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// ProductID returns the ID of the purchased product.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// Quantity returns the number of items purchased.
func (o *Order) Quantity() int {
	return o.quantity
}

// ItemPrice returns the per-item price captured at creation time.
func (o *Order) ItemPrice() kernel.Money {
	return o.itemPrice
}

// Total returns itemPrice x quantity as computed at creation time.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// EscrowID returns the linked escrow's ID, or nil before the freeze step.
func (o *Order) EscrowID() *kernel.UUID {
	return o.escrowID
}

// PickupCode returns the pickup verification code, empty until a worker is assigned.
func (o *Order) PickupCode() string {
	return o.pickupCode
}

// DeliveryCode returns the delivery verification code, empty until a worker is assigned.
func (o *Order) DeliveryCode() string {
	return o.deliveryCode
}

// MarkPaymentFrozen links the frozen escrow to the order and moves it from
// PendingPayment to PaymentFrozen. Together with NewOrder and the escrow
// freeze this forms the single atomic creation step.
func (o *Order) MarkPaymentFrozen(escrowID kernel.UUID) error {
	if err := escrowID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Freeze()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.escrowID = &escrowID
	return nil
}

// Accept moves the order from PaymentFrozen to SellerAccepted.
// Repeating the call fails with an invalid-state error.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignWorker moves the order from SellerAccepted to WorkerAssigned and
// stores the two verification codes. Codes must be exactly CodeLength
// characters and are immutable afterwards.
func (o *Order) AssignWorker(pickupCode string, deliveryCode string) error {
	if err := errors.Join(
		validateCode("pickupCode", pickupCode),
		validateCode("deliveryCode", deliveryCode),
	); err != nil {
		return err
	}

	newStatus, err := o.status.AssignWorker()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.pickupCode = pickupCode
	o.deliveryCode = deliveryCode
	return nil
}

// VerifyPickup moves the order from WorkerAssigned to PickedUp if the
// submitted code exactly matches the stored pickup code. The comparison is
// case-sensitive with no trimming. State legality is checked before the code
// so that a correct code on an already-picked-up order still fails with an
// invalid-state error, not a silent second success.
func (o *Order) VerifyPickup(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("pickupCode")
	}

	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	if code != o.pickupCode {
		return errs.NewCodeMismatchError("pickup code")
	}

	o.status = newStatus
	return nil
}

// VerifyDelivery moves the order from PickedUp to Completed if the submitted
// code exactly matches the stored delivery code. Same rules as VerifyPickup.
func (o *Order) VerifyDelivery(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("deliveryCode")
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	if code != o.deliveryCode {
		return errs.NewCodeMismatchError("delivery code")
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order from any non-terminal status to Cancelled.
// Refunding the escrow, if one exists, is the caller's responsibility within
// the same unit of work.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	o.sellerID = sellerID
	return nil
}

func (o *Order) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	o.productID = productID
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setItemPrice(itemPrice kernel.Money) error {
	if err := itemPrice.Validate(); err != nil {
		return err
	}
	o.itemPrice = itemPrice
	return nil
}

func validateCode(paramName string, code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if len(code) != CodeLength {
		return errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("code must be %d characters, got %d", CodeLength, len(code)))
	}
	return nil
}
