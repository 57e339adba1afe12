// Package events publishes batch formatting reports to Kafka so downstream
// consumers (audit, notifications) can observe runs without polling.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"dialtone/pkg/model"
)

const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"

	EventSheetFormatted = "sheet.formatted"
)

// Publisher wraps a kafka-go writer for formatting report events. A nil
// *Publisher is valid and drops every publish, so callers do not have to
// branch on whether Kafka is configured.
type Publisher struct {
	writer *kafka.Writer
	source string
}

func NewPublisher(brokers []string, topic, source string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		BatchTimeout: 50 * time.Millisecond,
	}

	return &Publisher{writer: writer, source: source}, nil
}

// PublishReport emits one sheet.formatted event, keyed by run ID so all
// events of a run land on the same partition.
func (p *Publisher) PublishReport(ctx context.Context, report *model.Report) error {
	if p == nil {
		return nil
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(report.RunID),
		Value: payload,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(report.RunID)},
			{Key: HeaderEventType, Value: []byte(EventSheetFormatted)},
			{Key: HeaderSource, Value: []byte(p.source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish report for sheet %s: %w", report.Sheet, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
