package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// WelcomePayload é o evento publicado quando um membro completa o registro.
// O worker consome e envia o email de boas-vindas com o cartão de membro.
type WelcomePayload struct {
	MemberID   string `json:"member_id"`   // id da linha
	MemberCode string `json:"member_code"` // código impresso no cartão
	Name       string `json:"name"`
	Email      string `json:"email"`
	CardLink   string `json:"card_link"`
}

type QueueProducerInterface interface {
	PublishWelcome(ctx context.Context, payload WelcomePayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishWelcome(ctx context.Context, payload WelcomePayload) error {

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // mensagem sobrevive a restart do broker
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %v", err)
	}

	return nil
}
