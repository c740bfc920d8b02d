package messaging

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
	"thermonet.xyz/thermonet-service/pkg/common"
	"thermonet.xyz/thermonet-service/pkg/thermo"
)

const DefaultSubject = "thermonet.readings"

type publishConn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NatsPublisher emits every accepted batch as one JSON message.
type NatsPublisher struct {
	conn    publishConn
	subject string
	logger  *zap.Logger
}

var _ thermo.Publisher = (*NatsPublisher)(nil)

func NewNatsPublisher(url, subject string) (*NatsPublisher, error) {
	logger := common.GetLoggerWith(common.LoggerNamePublisher)

	nc, err := nats.Connect(url,
		nats.Name("thermonet-service"),
		nats.Timeout(5*time.Second),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrlRedacted()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats %s: %w", url, err)
	}

	logger.Info("Connected to NATS", zap.String("url", nc.ConnectedUrlRedacted()), zap.String("subject", subject))
	return newPublisher(nc, subject), nil
}

func newPublisher(conn publishConn, subject string) *NatsPublisher {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NatsPublisher{
		conn:    conn,
		subject: subject,
		logger:  common.GetLoggerWith(common.LoggerNamePublisher),
	}
}

func (p *NatsPublisher) Subject() string {
	return p.subject
}

func (p *NatsPublisher) Publish(event thermo.IngestEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode ingest event: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", p.subject, err)
	}

	p.logger.Debug("Published readings batch",
		zap.String("subject", p.subject),
		zap.Int("readings", len(event.Readings)),
	)
	return nil
}

// Close flushes pending messages before closing the connection.
func (p *NatsPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.logger.Warn("Failed to drain NATS connection", zap.Error(err))
	}
}
