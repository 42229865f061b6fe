package request

type CreateBookingRequest struct {
	ServiceID     string `json:"serviceId" validate:"required,uuid4"`
	ScheduledDate string `json:"scheduledDate" validate:"required,datetime=2006-01-02"`
	ScheduledTime string `json:"scheduledTime" validate:"required,datetime=15:04"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	// State is optional and has no server-side default; the web client
	// sends one but the backend does not rely on it.
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode" validate:"required"`
	Notes   string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED IN_PROGRESS COMPLETED CANCELLED NO_SHOW"`
}
