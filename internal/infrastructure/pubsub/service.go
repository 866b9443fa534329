package pubsub

import (
	"github.com/duocurve-network/duocurve-daemon/internal/core/application"
	"github.com/duocurve-network/duocurve-daemon/internal/core/ports"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// logPubSubService is the default event sink. It writes every published
// message to the structured log instead of delivering it anywhere, which is
// enough for a single-process deployment without registered webhooks.
type logPubSubService struct{}

func NewLogPubSubService() ports.PubSubService {
	return &logPubSubService{}
}

func (s *logPubSubService) Subscribe(string, ...interface{}) (string, error) {
	return uuid.New().String(), nil
}

func (s *logPubSubService) Unsubscribe(_, _ string) error {
	return nil
}

func (s *logPubSubService) Publish(topic string, message string) error {
	log.WithField("topic", topic).Info(message)
	return nil
}

func (s *logPubSubService) TopicsByLabel() map[string]ports.Topic {
	return map[string]ports.Topic{
		application.LaunchTopic.Label(): application.LaunchTopic,
		application.TradeTopic.Label():  application.TradeTopic,
	}
}
