package produce

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	RecipeExchange          = "recipe.exchange"
	RecipeEventsQueue       = "recipe.events"
	RecipeEventsRoutingKey  = "recipe.lifecycle"
	ActionRecipeCreated     = "created"
	ActionRecipeDeleted     = "deleted"
	ActionRecipeStateChange = "state_changed"
)

type RecipeService struct {
	channel *amqp.Channel
}

type RecipeEventMessage struct {
	RecipeID  string `json:"recipe_id"`
	OwnerID   string `json:"owner_id"`
	Action    string `json:"action"`
	State     string `json:"state,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func InitRecipeService(channel *amqp.Channel) *RecipeService {
	service := &RecipeService{
		channel: channel,
	}

	err := channel.ExchangeDeclare(
		RecipeExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Recipe exchange: " + err.Error())
	}

	_, err = channel.QueueDeclare(
		RecipeEventsQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare Recipe events queue: " + err.Error())
	}

	err = channel.QueueBind(
		RecipeEventsQueue,
		RecipeEventsRoutingKey,
		RecipeExchange,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to bind Recipe events queue: " + err.Error())
	}

	return service
}

// PublishRecipeEvent emits a lifecycle event for downstream consumers
// (activity feeds, notifications). Best effort; callers log failures and
// never fail the request over it.
func (s *RecipeService) PublishRecipeEvent(ctx context.Context, action, recipeID, ownerID, state string) error {
	message := RecipeEventMessage{
		RecipeID:  recipeID,
		OwnerID:   ownerID,
		Action:    action,
		State:     state,
		Timestamp: time.Now().Unix(),
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(ctx,
		RecipeExchange,
		RecipeEventsRoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
}
