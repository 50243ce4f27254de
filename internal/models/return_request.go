package models

import "time"

type ReturnStatus string

const (
	ReturnStatusRequested ReturnStatus = "requested"
	ReturnStatusApproved  ReturnStatus = "approved"
	ReturnStatusRejected  ReturnStatus = "rejected"
	ReturnStatusReceived  ReturnStatus = "received"
	ReturnStatusRefunded  ReturnStatus = "refunded"
)

// returnTransitions is the return workflow's own transition table. It is
// intentionally independent from the order lifecycle; the two machines are
// linked only by the non-authoritative OrderID label.
var returnTransitions = map[ReturnStatus][]ReturnStatus{
	ReturnStatusRequested: {ReturnStatusApproved, ReturnStatusRejected},
	ReturnStatusApproved:  {ReturnStatusReceived},
	ReturnStatusReceived:  {ReturnStatusRefunded},
	ReturnStatusRejected:  {},
	ReturnStatusRefunded:  {},
}

func (s ReturnStatus) IsValid() bool {
	_, ok := returnTransitions[s]
	return ok
}

func (s ReturnStatus) CanTransitionTo(target ReturnStatus) bool {
	for _, allowed := range returnTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

type ReturnReason string

const (
	ReturnReasonSize        ReturnReason = "size"
	ReturnReasonDamaged     ReturnReason = "damaged"
	ReturnReasonWrongItem   ReturnReason = "wrong_item"
	ReturnReasonChangedMind ReturnReason = "changed_mind"
	ReturnReasonOther       ReturnReason = "other"
)

func (r ReturnReason) IsValid() bool {
	switch r {
	case ReturnReasonSize, ReturnReasonDamaged, ReturnReasonWrongItem, ReturnReasonChangedMind, ReturnReasonOther:
		return true
	}
	return false
}

// ReturnRequest is a customer-submitted return. OrderID is optional and not
// checked against the orders collection.
type ReturnRequest struct {
	ID        string       `json:"id" bson:"_id"`
	CreatedAt time.Time    `json:"createdAt" bson:"created_at"`
	Status    ReturnStatus `json:"status" bson:"status"`
	Name      string       `json:"name" bson:"name" validate:"required"`
	Phone     string       `json:"phone" bson:"phone" validate:"required"`
	Email     string       `json:"email" bson:"email" validate:"required,email"`
	OrderID   string       `json:"orderId,omitempty" bson:"order_id,omitempty"`
	Reason    ReturnReason `json:"reason" bson:"reason" validate:"required"`
	Details   string       `json:"details,omitempty" bson:"details,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt" bson:"updated_at"`
}
