// Package notify publishes notification events for the external
// dispatcher (email / WhatsApp delivery happens outside this service).
package notify

import (
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/bookden/rental-service/pkg/circuitbreaker"
	"github.com/bookden/rental-service/pkg/kafka"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ExpiringNotice struct {
	MessageID      string    `json:"messageId"`
	SubscriberName string    `json:"subscriberName"`
	Email          string    `json:"email"`
	MobileNumber   string    `json:"mobileNumber"`
	EndDate        time.Time `json:"endDate"`
}

type DelayedNotice struct {
	MessageID    string    `json:"messageId"`
	SubscriberID int       `json:"-"`
	BookTitle    string    `json:"bookTitle"`
	SerialNumber int       `json:"serialNumber"`
	EndDate      time.Time `json:"endDate"`
	DelayInDays  int       `json:"delayInDays"`
}

//go:generate mockgen -destination=mocks/mock.go -package=notify_mocks github.com/bookden/rental-service/internal/notify Notifier

type Notifier interface {
	PublishExpiring(notice ExpiringNotice) error
	PublishDelayed(notice DelayedNotice) error
}

type producer struct {
	p   sarama.SyncProducer
	cfg kafka.Config
	cb  circuitbreaker.CircuitBreaker
	log *zap.Logger
}

func NewProducer(p sarama.SyncProducer, cfg kafka.Config, log *zap.Logger) *producer {
	return &producer{
		p:   p,
		cfg: cfg,
		cb:  circuitbreaker.New(20, 30*time.Second, 0.5, 5),
		log: log.Named("notify"),
	}
}

func (n *producer) PublishExpiring(notice ExpiringNotice) error {
	notice.MessageID = uuid.NewString()
	return n.publish(n.cfg.RenewalTopic, notice.Email, notice)
}

func (n *producer) PublishDelayed(notice DelayedNotice) error {
	notice.MessageID = uuid.NewString()
	return n.publish(n.cfg.DelayedTopic, notice.BookTitle, notice)
}

// publish is fire-and-forget from the core's perspective: failures
// are reported to the caller for logging, never retried here.
func (n *producer) publish(topic, key string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return n.cb.Call(func() error {
		_, _, err := n.p.SendMessage(&sarama.ProducerMessage{
			Topic: topic,
			Key:   sarama.StringEncoder(key),
			Value: sarama.ByteEncoder(raw),
		})
		if err != nil {
			n.log.Error("publish", zap.String("topic", topic), zap.Error(err))
		}
		return err
	})
}
