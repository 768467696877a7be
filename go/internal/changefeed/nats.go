package changefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

type NATSConfig struct {
	URL           string
	SubjectPrefix string
	MaxReconnects int
	ReconnectWait time.Duration
}

func DefaultNATSConfig() NATSConfig {
	return NATSConfig{
		URL:           nats.DefaultURL,
		SubjectPrefix: "football",
		MaxReconnects: -1, // Infinite
		ReconnectWait: 2 * time.Second,
	}
}

// NATSPublisher publishes changes on core NATS subjects
type NATSPublisher struct {
	nc     *nats.Conn
	prefix string
}

func NewNATSPublisher(cfg NATSConfig) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name("footballdb"),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	log.Info().Str("url", nc.ConnectedUrl()).Str("prefix", cfg.SubjectPrefix).Msg("Change feed publishing to NATS")
	return &NATSPublisher{nc: nc, prefix: cfg.SubjectPrefix}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, change Change) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal change: %w", err)
	}

	if err := p.nc.Publish(change.Subject(p.prefix), data); err != nil {
		return fmt.Errorf("publish %s: %w", change.Subject(p.prefix), err)
	}
	return nil
}

// Close flushes pending messages and closes the connection
func (p *NATSPublisher) Close() error {
	return p.nc.Drain()
}
