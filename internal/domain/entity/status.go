package entity

// Status is the lifecycle state of a shopping cart. The business flow is
// UNPAID -> IN_PROGRESS -> WAITING_FOR_SHIPMENT -> SHIPPED -> COLLECTED,
// but the service surface sets the status only at construction; the
// transition machinery lives outside this core.
type Status string

const (
	// StatusUnpaid is the initial state of every cart.
	StatusUnpaid Status = "UNPAID"
	// StatusInProgress means payment was received and the order is being prepared.
	StatusInProgress Status = "IN_PROGRESS"
	// StatusWaitingForShipment means the order is packed and awaiting pickup.
	StatusWaitingForShipment Status = "WAITING_FOR_SHIPMENT"
	// StatusShipped means the order left the warehouse.
	StatusShipped Status = "SHIPPED"
	// StatusCollected is the terminal state.
	StatusCollected Status = "COLLECTED"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusUnpaid, StatusInProgress, StatusWaitingForShipment,
		StatusShipped, StatusCollected:
		return true
	default:
		return false
	}
}
