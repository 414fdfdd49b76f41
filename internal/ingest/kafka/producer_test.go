package kafka

import (
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func TestNewProducer_WriterConfig(t *testing.T) {
	p := NewProducer(ProducerConfig{
		Brokers: []string{"broker-1:9092", "broker-2:9092"},
		Topic:   "media.ingested",
	})
	defer p.Close()

	require.Equal(t, "media.ingested", p.writer.Topic)
	require.IsType(t, &kafkago.Hash{}, p.writer.Balancer)
	require.Equal(t, kafkago.RequireAll, p.writer.RequiredAcks)
}
