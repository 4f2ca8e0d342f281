package event

// CreateEventRequest is the payload for registering an event.
type CreateEventRequest struct {
	Name string `json:"name"`
	Date string `json:"date"` // ISO date, YYYY-MM-DD
}

// DeleteResult reports what a cascade delete removed.
type DeleteResult struct {
	EventName    string `json:"event_name"`
	RemovedSales int    `json:"removed_sales"`
}
