package kafka

import (
	"github.com/IBM/sarama"
)

type Config struct {
	Addrs        []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
	RenewalTopic string   `yaml:"renewalTopic" envconfig:"KAFKA_RENEWAL_TOPIC" default:"subscription.expiring"`
	DelayedTopic string   `yaml:"delayedTopic" envconfig:"KAFKA_DELAYED_TOPIC" default:"rental.delayed"`
	RetryMax     int      `yaml:"retryMax" envconfig:"KAFKA_RETRY_MAX" default:"3"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Retry.Max = cfg.RetryMax
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
