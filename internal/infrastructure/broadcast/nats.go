package broadcast

import (
	"context"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/nats-io/nats.go"

	"github.com/riskibarqy/fantasy-draft/internal/domain/draft"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

const defaultSubjectPrefix = "fantasy.draft"

// envelope wraps an event with the id of the instance that published it so
// an instance can skip its own messages.
type envelope struct {
	Origin string      `json:"origin"`
	Event  draft.Event `json:"event"`
}

// NATSBridge relays draft events between instances over core NATS. Each
// league maps to the subject <prefix>.<leagueID>.
type NATSBridge struct {
	conn    *nats.Conn
	prefix  string
	origin  string
	metrics *Metrics
	logger  *logging.Logger
	sub     *nats.Subscription
}

func NewNATSBridge(url, prefix string, metrics *Metrics, logger *logging.Logger) (*NATSBridge, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("broadcast.nats")

	conn, err := nats.Connect(url,
		nats.Name("fantasy-draft"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, crerr.Wrapf(err, "connect nats %s", url)
	}

	return newNATSBridge(conn, prefix, metrics, logger), nil
}

func newNATSBridge(conn *nats.Conn, prefix string, metrics *Metrics, logger *logging.Logger) *NATSBridge {
	prefix = strings.Trim(strings.TrimSpace(prefix), ".")
	if prefix == "" {
		prefix = defaultSubjectPrefix
	}
	return &NATSBridge{
		conn:    conn,
		prefix:  prefix,
		origin:  strings.TrimPrefix(nats.NewInbox(), nats.InboxPrefix),
		metrics: metrics,
		logger:  logger,
	}
}

func (b *NATSBridge) subject(leagueID string) string {
	return b.prefix + "." + leagueID
}

func (b *NATSBridge) Forward(_ context.Context, event draft.Event) error {
	data, err := sonic.Marshal(envelope{Origin: b.origin, Event: event})
	if err != nil {
		return crerr.Wrap(err, "encode draft event")
	}
	if err := b.conn.Publish(b.subject(event.LeagueID), data); err != nil {
		return crerr.Wrapf(err, "publish draft event to %s", b.subject(event.LeagueID))
	}
	return nil
}

// Listen subscribes to every league subject and hands events published by
// other instances to deliver.
func (b *NATSBridge) Listen(deliver func(context.Context, draft.Event)) error {
	sub, err := b.conn.Subscribe(b.prefix+".>", func(msg *nats.Msg) {
		b.handle(msg.Data, deliver)
	})
	if err != nil {
		return crerr.Wrapf(err, "subscribe %s.>", b.prefix)
	}
	b.sub = sub
	return nil
}

func (b *NATSBridge) handle(data []byte, deliver func(context.Context, draft.Event)) {
	var env envelope
	if err := sonic.Unmarshal(data, &env); err != nil {
		b.metrics.bridgeMessage("in", "decode_error")
		b.logger.Warn("decode bridged draft event failed", "error", err)
		return
	}
	if env.Origin == b.origin {
		return
	}
	if !env.Event.Type.Valid() || env.Event.LeagueID == "" {
		b.metrics.bridgeMessage("in", "invalid")
		b.logger.Warn("ignoring invalid bridged draft event", "origin", env.Origin, "type", env.Event.Type)
		return
	}

	b.metrics.bridgeMessage("in", "ok")
	deliver(context.Background(), env.Event)
}

func (b *NATSBridge) Close() error {
	if b.sub != nil {
		if err := b.sub.Unsubscribe(); err != nil {
			b.logger.Warn("unsubscribe nats bridge failed", "error", err)
		}
	}
	if b.conn == nil {
		return nil
	}
	return b.conn.Drain()
}
