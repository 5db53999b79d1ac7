package request

type CreateBookingRequest struct {
	DecoratorID string  `json:"decorator_id" validate:"required,uuid4"`
	ClientName  string  `json:"client_name" validate:"required,min=2,max=100"`
	ClientEmail string  `json:"client_email" validate:"required,email"`
	ServiceType *string `json:"service_type,omitempty" validate:"omitempty,max=100"`
	EventDate   string  `json:"event_date" validate:"required,datetime=2006-01-02"`
	EventTime   string  `json:"event_time" validate:"required,datetime=15:04"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed rejected cancelled"`
}
