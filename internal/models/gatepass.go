package models

// Pass types a student may request.
const (
	PassTypeLocal = "local"
	PassTypeLeave = "leave"
)

// Approval lifecycle states. A pass is created Pending and moved to
// Approved or Rejected by a watchman; terminal states are not locked, a
// watchman may re-decide a pass.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// ValidPassType reports whether t is a recognised pass type.
func ValidPassType(t string) bool {
	return t == PassTypeLocal || t == PassTypeLeave
}

// GatePass is the sole persisted entity: one student request to leave the
// premises. The document ID doubles as the public identifier and is never
// stored inside the document itself.
type GatePass struct {
	ID              string `json:"id" firestore:"-"`
	PassType        string `json:"pass_type" firestore:"pass_type"`
	PRNNumber       string `json:"prn_number" firestore:"prn_number"`
	Department      string `json:"department" firestore:"department"`
	Name            string `json:"name" firestore:"name"`
	Wing            string `json:"wing" firestore:"wing"`
	RoomNumber      string `json:"room_number" firestore:"room_number"`
	Reason          string `json:"reason" firestore:"reason"`
	PhoneNo         string `json:"phone_no" firestore:"phone_no"`
	ProposedVisit   string `json:"proposed_visit" firestore:"proposed_visit"`
	OutingDates     string `json:"outing_dates" firestore:"outing_dates"`
	Status          string `json:"status" firestore:"status"`
	RejectionReason string `json:"rejection_reason,omitempty" firestore:"rejection_reason,omitempty"`
	Timestamp       string `json:"timestamp" firestore:"timestamp"`
	CreatedAt       string `json:"created_at" firestore:"created_at"`
	UpdatedAt       string `json:"updated_at" firestore:"updated_at"`
}

// GatePassPreview is the projection served to watchman list views, where
// full detail is unnecessary.
type GatePassPreview struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PRNNumber  string `json:"prn_number"`
	Department string `json:"department"`
	Wing       string `json:"wing"`
	Status     string `json:"status"`
	PassType   string `json:"pass_type"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// Preview projects the pass onto its list-view subset.
func (g GatePass) Preview() GatePassPreview {
	return GatePassPreview{
		ID:         g.ID,
		Name:       g.Name,
		PRNNumber:  g.PRNNumber,
		Department: g.Department,
		Wing:       g.Wing,
		Status:     g.Status,
		PassType:   g.PassType,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}

// StatusUpdate is the partial mutation applied on approval or rejection.
// RejectionReason is persisted only when SetRejection is true.
type StatusUpdate struct {
	Status          string
	RejectionReason string
	SetRejection    bool
	UpdatedAt       string
}

// StatusCounts tallies passes per lifecycle state.
type StatusCounts struct {
	All      int `json:"all"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// Statistics is the nested type x status count structure.
type Statistics struct {
	Total StatusCounts `json:"total"`
	Local StatusCounts `json:"local"`
	Leave StatusCounts `json:"leave"`
}

// StatisticsReport wraps the counts with their generation time.
type StatisticsReport struct {
	Stats       Statistics `json:"stats"`
	LastUpdated string     `json:"last_updated"`
}
