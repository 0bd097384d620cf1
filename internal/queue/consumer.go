package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tourops/tour-logistics/internal/model"
	"github.com/tourops/tour-logistics/internal/repository"
)

// StartActivityConsumer connects to RabbitMQ, declares the tour.activity
// queue (durable), and starts consuming activity events. Each event is
// inserted into the activity_logs table. The function runs a reconnect
// loop and never returns under normal operation; processing errors are
// logged and the offending message rejected so the server keeps running.
func StartActivityConsumer(db *sql.DB) error {
	url := BrokerURL()
	repo := repository.NewActivityRepo(db)

	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("activity-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn, repo); err != nil {
			log.Printf("activity-consumer: consume loop ended: %v; reconnecting", err)
			// Sleep briefly before reconnect
			time.Sleep(2 * time.Second)
			continue
		}
	}
}

func consumeLoop(conn *amqp.Connection, repo *repository.ActivityRepo) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("activity-consumer: set QoS failed: %v", err)
	}

	_, err = ch.QueueDeclare(ActivityQueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(ActivityQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(repo, d.Body); err != nil {
			log.Printf("activity-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

// parseActivityEvent decodes a queue message into the log entry it
// should produce. Events without a tour or an action are malformed.
func parseActivityEvent(body []byte) (*model.ActivityLog, error) {
	var ev ActivityEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if ev.TourID == 0 || ev.ActionType == "" {
		return nil, fmt.Errorf("incomplete event: tour_id=%d action=%q", ev.TourID, ev.ActionType)
	}
	return &model.ActivityLog{
		TourID:      ev.TourID,
		ShowID:      ev.ShowID,
		ActionType:  ev.ActionType,
		Description: ev.Description,
		CreatedBy:   ev.CreatedBy,
	}, nil
}

func handleMessage(repo *repository.ActivityRepo, body []byte) error {
	entry, err := parseActivityEvent(body)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
