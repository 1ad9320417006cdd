package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rmohit9/Healthcare-Portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	PostEventPublished   = "post.published"
	PostEventUnpublished = "post.unpublished"
	PostEventDeleted     = "post.deleted"
)

type PostEvent struct {
	Type        string     `json:"type"`
	PostID      uuid.UUID  `json:"post_id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	AuthorID    uuid.UUID  `json:"author_id"`
	CategoryID  int        `json:"category_id"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	OccurredAt  time.Time  `json:"occurred_at"`
}

func NewPostEvent(eventType string, post *entity.BlogPost, now time.Time) PostEvent {
	return PostEvent{
		Type:        eventType,
		PostID:      post.ID,
		Slug:        post.Slug,
		Title:       post.Title,
		AuthorID:    post.AuthorID,
		CategoryID:  post.CategoryID,
		PublishedAt: post.PublishedAt,
		OccurredAt:  now,
	}
}

// PostEventPublisher is called after commit. Delivery is best effort.
type PostEventPublisher interface {
	Publish(ctx context.Context, event PostEvent)
}

// KafkaWriter is the subset of *kafka.Writer the publisher needs.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type postEventPublisher struct {
	writer KafkaWriter
	log    *logrus.Logger
}

// NewPostEventPublisher accepts a nil writer; events are then dropped.
func NewPostEventPublisher(writer KafkaWriter, log *logrus.Logger) PostEventPublisher {
	return &postEventPublisher{
		writer: writer,
		log:    log,
	}
}

// kafka-go waits up to a second to fill a batch by default, which would hold up each request.
const kafkaBatchTimeout = 10 * time.Millisecond

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           kafkaBatchTimeout,
		AllowAutoTopicCreation: true,
	}
}

func (p *postEventPublisher) Publish(ctx context.Context, event PostEvent) {
	if p.writer == nil {
		p.log.Debugf("Kafka writer not configured, skipping %s for post %s", event.Type, event.PostID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.log.Warnf("Failed to marshal post event: %+v", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.PostID.String()),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Warnf("Failed to publish %s for post %s: %+v", event.Type, event.PostID, err)
		return
	}

	p.log.WithFields(logrus.Fields{
		"event":   event.Type,
		"post_id": event.PostID,
	}).Info("Post event published")
}
