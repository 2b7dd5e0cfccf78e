package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// WelcomeSender define o contrato do envio de boas-vindas (SMTP por trás)
type WelcomeSender interface {
	SendWelcome(to, name, memberID, cardLink string) error
}

type Worker struct {
	Channel *amqp.Channel
	Mail    WelcomeSender
}

func NewWorker(ch *amqp.Channel, mail WelcomeSender) *Worker {
	return &Worker{
		Channel: ch,
		Mail:    mail,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload WelcomePayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] invalid JSON: %s", err)
				// Mensagem malformada: rejeita sem requeue para não travar a fila
				d.Nack(false, false)
				continue
			}

			log.Printf("📧 [WORKER] sending welcome card to %s (%s)", payload.Name, payload.MemberCode)

			if err := w.Mail.SendWelcome(payload.Email, payload.Name, payload.MemberCode, payload.CardLink); err != nil {
				log.Printf("❌ [WORKER] send failed: %s", err)
				// Vai para a DLQ; reprocessamento é manual
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker waiting on queue '%s'", queueName)
	<-forever
}
