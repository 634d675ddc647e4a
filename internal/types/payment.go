package types

// PaymentScheduleItemType distinguishes the one-time setup charge from
// recurring subscription charges in a projected schedule
type PaymentScheduleItemType string

const (
	PaymentScheduleItemTypeSetup        PaymentScheduleItemType = "SETUP"
	PaymentScheduleItemTypeSubscription PaymentScheduleItemType = "SUBSCRIPTION"
)

func (p PaymentScheduleItemType) String() string {
	return string(p)
}

// PaymentStatus tracks a projected or actual payment. Schedule
// generation only ever emits PENDING; the rest exist for the admin
// surface once proofs are verified.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusOverdue  PaymentStatus = "OVERDUE"
	PaymentStatusCanceled PaymentStatus = "CANCELED"
)

func (p PaymentStatus) String() string {
	return string(p)
}
