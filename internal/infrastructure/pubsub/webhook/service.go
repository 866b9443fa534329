package webhookpubsub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/duocurve-network/duocurve-daemon/internal/core/ports"
	"github.com/duocurve-network/duocurve-daemon/pkg/circuitbreaker"
	"github.com/golang-jwt/jwt"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"
)

const defaultRequestTimeout = 15 * time.Second

type webhookService struct {
	lock          *sync.RWMutex
	hooks         map[string]*Webhook
	hooksByAction map[WebhookAction][]string
	httpClient    *client
	cb            *gobreaker.CircuitBreaker
}

// NewWebhookPubSubService returns a PubSubService delivering every published
// message to the registered webhook endpoints with a POST request. Requests
// carry a JWT bearer token when the hook was registered with a secret.
func NewWebhookPubSubService() ports.PubSubService {
	return &webhookService{
		lock:          &sync.RWMutex{},
		hooks:         map[string]*Webhook{},
		hooksByAction: map[WebhookAction][]string{},
		httpClient:    newHTTPClient(defaultRequestTimeout),
		cb:            circuitbreaker.NewCircuitBreaker("webhook"),
	}
}

func (ws *webhookService) Subscribe(topic string, args ...interface{}) (string, error) {
	actionType, ok := stringToAction[topic]
	if !ok {
		return "", ErrInvalidTopic
	}
	if len(args) != 2 {
		return "", ErrInvalidArgs
	}
	endpoint, ok := args[0].(string)
	if !ok {
		return "", ErrInvalidArgType
	}
	secret, ok := args[1].(string)
	if !ok {
		return "", ErrInvalidArgType
	}

	hook, err := NewWebhook(actionType, endpoint, secret)
	if err != nil {
		return "", err
	}

	return ws.addWebhook(hook)
}

func (ws *webhookService) Unsubscribe(_, id string) error {
	ws.removeWebhook(id)
	return nil
}

func (ws *webhookService) Publish(topic string, message string) error {
	actionType, ok := WebhookActionFromString(topic)
	if !ok {
		return ErrUnknownWebhookAction
	}
	return ws.invokeWebhooksForAction(actionType, message)
}

func (ws *webhookService) TopicsByLabel() map[string]ports.Topic {
	topics := make(map[string]ports.Topic)
	for label, action := range stringToAction {
		topics[label] = action
	}
	return topics
}

// ExportState serializes the registered hooks so a CLI process can persist
// them between invocations.
func (ws *webhookService) ExportState() ([]byte, error) {
	ws.lock.RLock()
	defer ws.lock.RUnlock()

	hooks := make([]*Webhook, 0, len(ws.hooks))
	for _, hook := range ws.hooks {
		hooks = append(hooks, hook)
	}
	return json.Marshal(hooks)
}

// ImportState replaces the registered hooks with previously exported ones.
func (ws *webhookService) ImportState(raw []byte) error {
	var hooks []*Webhook
	if err := json.Unmarshal(raw, &hooks); err != nil {
		return err
	}

	ws.lock.Lock()
	defer ws.lock.Unlock()

	ws.hooks = map[string]*Webhook{}
	ws.hooksByAction = map[WebhookAction][]string{}
	for _, hook := range hooks {
		ws.hooks[hook.ID] = hook
		ws.hooksByAction[hook.ActionType] = append(
			ws.hooksByAction[hook.ActionType], hook.ID,
		)
	}
	return nil
}

// addWebhook adds the provided hook to those managed by the service.
// If another hook with the same id already exists, the method returns
// preventing overwrites/duplications.
func (ws *webhookService) addWebhook(hook *Webhook) (string, error) {
	ws.lock.Lock()
	defer ws.lock.Unlock()

	if _, ok := ws.hooks[hook.ID]; ok {
		return hook.ID, nil
	}

	ws.hooks[hook.ID] = hook
	ws.hooksByAction[hook.ActionType] = append(
		ws.hooksByAction[hook.ActionType], hook.ID,
	)
	return hook.ID, nil
}

// removeWebhook attempts to remove the hook identified by an ID from those
// managed by the service. Nothing is done in case the hook does not actually
// exist.
func (ws *webhookService) removeWebhook(hookID string) {
	ws.lock.Lock()
	defer ws.lock.Unlock()

	hook, ok := ws.hooks[hookID]
	if !ok {
		return
	}
	delete(ws.hooks, hookID)

	ids := ws.hooksByAction[hook.ActionType]
	for i, id := range ids {
		if id == hookID {
			ws.hooksByAction[hook.ActionType] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
}

// invokeWebhooksForAction makes a POST request to every webhook endpoint
// registered for the given action.
// This method adopts a circuit breaker approach in order to maximize the
// chances that every webhook gets invoked without errors.
func (ws *webhookService) invokeWebhooksForAction(
	actionType WebhookAction, message string,
) error {
	hooks := ws.getHooksByAction(actionType)
	if actionType != AllActions {
		hooksForAllActions := ws.getHooksByAction(AllActions)
		hooks = append(hooks, hooksForAllActions...)
	}

	eg := &errgroup.Group{}
	for i := range hooks {
		hook := hooks[i]
		eg.Go(func() error { return ws.doRequest(hook, message) })
	}
	return eg.Wait()
}

func (ws *webhookService) getHooksByAction(actionType WebhookAction) []*Webhook {
	ws.lock.RLock()
	defer ws.lock.RUnlock()

	ids := ws.hooksByAction[actionType]
	hooks := make([]*Webhook, 0, len(ids))
	for _, id := range ids {
		hooks = append(hooks, ws.hooks[id])
	}
	return hooks
}

func (ws *webhookService) doRequest(hook *Webhook, payload string) error {
	_, err := ws.cb.Execute(func() (interface{}, error) {
		headers := map[string]string{
			"Content-Type": "application/json",
		}
		if hook.IsSecured() {
			token := jwt.New(jwt.SigningMethodHS256)
			secret := []byte(hook.Secret)
			tokenString, _ := token.SignedString(secret)
			headers["Authorization"] = fmt.Sprintf("Bearer %s", tokenString)
		}

		status, resp, err := ws.httpClient.post(hook.Endpoint, payload, headers)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf(resp)
		}
		return nil, nil
	})

	return err
}
