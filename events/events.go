// Package events publishes transaction-processed events once a gateway
// transaction record has been persisted.
package events

import (
	"github.com/Shopify/sarama"
	"github.com/commercegate/helcim-gateway/data"
	"github.com/commercegate/helcim-gateway/keys"
	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/log"
)

// Publisher provides an interface by which to publish transaction events
type Publisher interface {
	TransactionProcessed(event *data.TransactionProcessed) error
	Close() error
}

// KafkaPublisher implements the Publisher interface over a Kafka topic
type KafkaPublisher struct {
	producer sarama.SyncProducer
	schema   *avro.Schema
	topic    string
}

// NewKafkaPublisher connects a synchronous producer to the given brokers
func NewKafkaPublisher(brokerAddrs []string, topic string) (*KafkaPublisher, error) {

	producerConfig := sarama.NewConfig()
	producerConfig.Producer.RequiredAcks = sarama.WaitForAll
	producerConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokerAddrs, producerConfig)
	if err != nil {
		return nil, err
	}

	return &KafkaPublisher{
		producer: producer,
		schema:   &avro.Schema{Definition: data.TransactionProcessedSchema},
		topic:    topic,
	}, nil
}

// TransactionProcessed publishes a transaction-processed event
func (p *KafkaPublisher) TransactionProcessed(event *data.TransactionProcessed) error {

	message, err := p.schema.Marshal(event)
	if err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(message),
	})
	if err != nil {
		return err
	}

	log.Trace("published transaction processed event", log.Data{
		keys.Topic:         p.topic,
		keys.TransactionID: event.TransactionID,
		"partition":        partition,
		"offset":           offset,
	})

	return nil
}

// Close shuts the underlying producer down
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
