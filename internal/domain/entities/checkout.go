package entities

// CheckoutState is the coordinator state machine. Transitions are driven by
// the checkout use case only; the HTTP layer observes, never mutates.
//
// Idle -> ValidatingPreconditions -> CreatingOrder -> AwaitingCredential
//      -> SubmittingPayment -> Resolved, plus terminal Aborted.

type CheckoutState string

const (
	CheckoutStateIdle                    CheckoutState = "idle"
	CheckoutStateValidatingPreconditions CheckoutState = "validating_preconditions"
	CheckoutStateCreatingOrder           CheckoutState = "creating_order"
	CheckoutStateAwaitingCredential      CheckoutState = "awaiting_credential"
	CheckoutStateSubmittingPayment       CheckoutState = "submitting_payment"
	CheckoutStateResolved                CheckoutState = "resolved"
	CheckoutStateAborted                 CheckoutState = "aborted"
)
