package models

// Event operation names published to Kafka.
const (
	EventReviewCreated   = "review_created"
	EventHouseRegistered = "house_registered"
)

// Event is the payload published to Kafka for catalog activity.
type Event struct {
	EventID      string  `json:"event_id"`      // Unique event identifier
	Timestamp    int64   `json:"timestamp"`     // Unix seconds
	Operation    string  `json:"operation"`     // One of the Event* constants
	HouseAddress string  `json:"house_address"` // Affected house
	UserID       string  `json:"user_id"`       // Acting user
	Rating       float64 `json:"rating,omitempty"`
}
