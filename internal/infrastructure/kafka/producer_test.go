package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/announcement/dto"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

type fakeMetrics struct {
	published []string
	failed    []string
}

func (m *fakeMetrics) RecordEventPublished(eventType string, _ time.Duration) {
	m.published = append(m.published, eventType)
}

func (m *fakeMetrics) RecordEventPublishError(eventType string) {
	m.failed = append(m.failed, eventType)
}

func TestProducer_Publish(t *testing.T) {
	w := &fakeWriter{}
	m := &fakeMetrics{}
	p := newProducer(w, "announcements.events", time.Second, m, zerolog.Nop())

	err := p.PublishAnnouncementEvent(context.Background(), &dto.AnnouncementEvent{
		Type:           dto.EventAnnouncementPublished,
		AnnouncementID: 12,
		Slug:           "welcome",
		ActorID:        3,
	})
	require.NoError(t, err)
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	require.Equal(t, "announcements.events", msg.Topic)
	require.Equal(t, "announcement-12", string(msg.Key))
	require.Equal(t, dto.EventAnnouncementPublished, string(msg.Headers[0].Value))

	var decoded dto.AnnouncementEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	require.Equal(t, "welcome", decoded.Slug)
	require.Equal(t, uint(3), decoded.ActorID)

	require.Equal(t, []string{dto.EventAnnouncementPublished}, m.published)
	require.True(t, p.Healthy())

	require.NoError(t, p.Close())
	require.True(t, w.closed)
}

func TestProducer_PublishFailure(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	m := &fakeMetrics{}
	p := newProducer(w, "announcements.events", 0, m, zerolog.Nop())

	err := p.PublishAnnouncementEvent(context.Background(), &dto.AnnouncementEvent{Type: dto.EventAnnouncementDeleted, AnnouncementID: 1})
	require.ErrorContains(t, err, "leader not available")
	require.Equal(t, []string{dto.EventAnnouncementDeleted}, m.failed)
	require.False(t, p.Healthy())

	w.err = nil
	require.NoError(t, p.PublishAnnouncementEvent(context.Background(), &dto.AnnouncementEvent{Type: dto.EventAnnouncementDeleted, AnnouncementID: 1}))
	require.True(t, p.Healthy())
}

func TestNopPublisher(t *testing.T) {
	p := NewNopPublisher(zerolog.Nop())
	require.NoError(t, p.PublishAnnouncementEvent(context.Background(), &dto.AnnouncementEvent{Type: dto.EventAnnouncementCreated}))
	require.True(t, p.Healthy())
	require.NoError(t, p.Close())
}
