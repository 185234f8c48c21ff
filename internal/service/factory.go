package service

import (
	"log/slog"

	"supportpulse.app/pulse/internal/classifier"
	"supportpulse.app/pulse/internal/feed"
	"supportpulse.app/pulse/internal/store"
)

type Services struct {
	stores     *store.Stores
	txRunner   TxRunner
	classifier *classifier.Classifier
	publisher  feed.Publisher
	logger     *slog.Logger
}

func NewServices(stores *store.Stores, txRunner TxRunner, c *classifier.Classifier, publisher feed.Publisher, logger *slog.Logger) *Services {
	return &Services{
		stores:     stores,
		txRunner:   txRunner,
		classifier: c,
		publisher:  publisher,
		logger:     logger,
	}
}

func (s *Services) Dispatcher() Dispatcher {
	return NewDispatcher(s.txRunner, s.classifier, s.publisher, s.logger)
}

func (s *Services) PulseChecks() PulseCheckService {
	return NewPulseCheckService(s.stores.PulseChecks(), s.txRunner, s.logger)
}

func (s *Services) Behavior() BehaviorService {
	return NewBehaviorService(s.stores.BehaviorLogs())
}
