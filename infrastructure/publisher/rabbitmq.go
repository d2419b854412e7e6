package publisher

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-sync-api/internal/config"
	"github.com/vfg2006/marketplace-sync-api/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	now        func() time.Time
}

func NewRabbitMQ(cfg config.RabbitMQ) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("erro ao abrir canal: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"exchange":    cfg.Exchange,
		"queue":       cfg.QueueName,
		"routing_key": cfg.RoutingKey,
	}).Info("Conectado ao RabbitMQ")

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		now:        time.Now,
	}, nil
}

func declareTopology(ch *amqp.Channel, cfg config.RabbitMQ) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("erro ao declarar exchange: %w", err)
	}

	if cfg.QueueName == "" {
		return nil
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("erro ao declarar fila: %w", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("erro ao vincular fila: %w", err)
	}

	return nil
}

func (r *RabbitMQ) PublishSyncCompleted(ctx context.Context, summary *domain.SyncSummary) error {
	if summary == nil {
		return errors.New("resumo de sincronização vazio")
	}

	now := r.now()
	body, err := json.Marshal(newSyncCompletedMessage(summary, now))
	if err != nil {
		return fmt.Errorf("erro ao serializar mensagem: %w", err)
	}

	err = r.channel.PublishWithContext(ctx, r.exchange, r.routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    summary.RunID,
		Type:         EventSyncCompleted,
		Body:         body,
		Timestamp:    now,
	})
	if err != nil {
		return fmt.Errorf("erro ao publicar mensagem: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": summary.AccountID,
		"run_id":     summary.RunID,
	}).Debug("Evento de sincronização publicado")

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
