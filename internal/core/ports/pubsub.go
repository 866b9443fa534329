package ports

// Topic identifies a class of published events.
type Topic interface {
	Code() int
	Label() string
}

// PubSubService defines the methods of the event sink used to broadcast
// launch and trade records. Events are observational only; no component
// reads them back.
type PubSubService interface {
	// Subscribe registers some client for a topic and returns the
	// subscription id.
	Subscribe(topic string, args ...interface{}) (string, error)
	// Unsubscribe removes the client with the given id from a topic.
	Unsubscribe(topic, id string) error
	// Publish publishes a message for a certain topic. All clients
	// subscribed for such topic will receive the message.
	Publish(topic string, message string) error
	// TopicsByLabel returns all the topics supported by the service mapped
	// by their label.
	TopicsByLabel() map[string]Topic
}
