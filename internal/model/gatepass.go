package model

import "time"

// GatePassRequest is a student's outing request, tracked from submission
// through warden approval and gate movements.
type GatePassRequest struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	RegisterNo  string     `json:"register_no"`
	RoomNumber  string     `json:"room_number"`
	Reason      string     `json:"reason"`
	Village     string     `json:"village"`
	PhoneNumber string     `json:"phone_number"`
	Photo       string     `json:"photo,omitempty"`
	Days        string     `json:"days"`
	Submitted   bool       `json:"submitted"`
	ApprovedBy  *string    `json:"approved_by"`
	Returned    bool       `json:"returned"`
	OutTime     *time.Time `json:"out_time"`
	InTime      *time.Time `json:"in_time"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateGatePassRequest is the payload a student submits for a new outing.
type CreateGatePassRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	RegisterNo  string `json:"register_no" binding:"required,min=2,max=32"`
	RoomNumber  string `json:"room_number" binding:"required,max=16"`
	Reason      string `json:"reason" binding:"required,min=3,max=500"`
	Village     string `json:"village" binding:"required,max=100"`
	PhoneNumber string `json:"phone_number" binding:"required,min=6,max=20"`
	Photo       string `json:"photo" binding:"omitempty,max=255"`
	Days        string `json:"days" binding:"required,max=32"`
}

// ApproveGatePassRequest is the payload for the approval transition.
// Submitted carries binding:"required" so only the true value binds —
// the transition is one-directional, there is no un-submit.
type ApproveGatePassRequest struct {
	Submitted bool   `json:"submitted" binding:"required"`
	Approver  string `json:"approver" binding:"required,min=2,max=100"`
}

// BulkDeleteRequest names the gate-pass records to remove.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

// BulkDeleteResponse echoes the ids that were requested for deletion.
// Missing ids are silently ignored, so the echo is the full input set.
type BulkDeleteResponse struct {
	DeletedIDs []string `json:"deleted_ids"`
}

// GatePassFilter narrows a listing. Nil fields are unconstrained.
type GatePassFilter struct {
	Submitted *bool
	Returned  *bool
	From      *time.Time
	To        *time.Time
}

// Empty reports whether the filter constrains nothing, which makes the
// listing eligible for the shared cache entry.
func (f GatePassFilter) Empty() bool {
	return f.Submitted == nil && f.Returned == nil && f.From == nil && f.To == nil
}

// GatePassStats are the dashboard counters.
type GatePassStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Out     int `json:"out"`
}
