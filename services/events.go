package services

// Event names published on order mutations.
const (
	EventOrderCreated           = "order_created"
	EventOrderUpdated           = "order_updated"
	EventOrderFulfillmentToggle = "order_fulfillment_toggled"
)

// EventPublisher receives order change notifications (the websocket hub in production).
type EventPublisher interface {
	Publish(event string, data interface{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, interface{}) {}
