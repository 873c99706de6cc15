package broadcast

import (
	"context"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fantasy-draft/internal/domain/draft"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

const (
	defaultSendTimeout = 250 * time.Millisecond
	defaultBuffer      = 16
	defaultWorkers     = 32
)

type Config struct {
	SendTimeout time.Duration
	Buffer      int
	Workers     int
}

func (c Config) normalize() Config {
	if c.SendTimeout <= 0 {
		c.SendTimeout = defaultSendTimeout
	}
	if c.Buffer <= 0 {
		c.Buffer = defaultBuffer
	}
	if c.Workers <= 0 {
		c.Workers = defaultWorkers
	}
	return c
}

// Bridge forwards locally published events to other instances.
type Bridge interface {
	Forward(ctx context.Context, event draft.Event) error
}

// Subscription is one live listener on a league's draft events. The channel
// is closed when the subscription is removed, either by Unsubscribe or
// because the listener fell behind.
type Subscription struct {
	id       uint64
	leagueID string
	ch       chan draft.Event

	mu     sync.Mutex
	closed bool
}

func (s *Subscription) ID() uint64 {
	return s.id
}

func (s *Subscription) LeagueID() string {
	return s.leagueID
}

func (s *Subscription) Events() <-chan draft.Event {
	return s.ch
}

// send blocks for at most timeout. It reports false when the event could not
// be delivered; a closed subscription counts as delivered.
func (s *Subscription) send(event draft.Event, timeout time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}

	select {
	case s.ch <- event:
		return true
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case s.ch <- event:
		return true
	case <-timer.C:
		return false
	}
}

func (s *Subscription) close() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.closed = true
	close(s.ch)
	return true
}

// leagueChannel is dropped from the hub once it has no subscribers and no
// fan-out holds it.
type leagueChannel struct {
	subscribers map[uint64]*Subscription
	inflight    int
	// fanout serializes deliveries so subscribers see events in sequence order.
	fanout sync.Mutex
}

// Hub is the per-league registry of draft subscribers. It is created once at
// startup and injected into the draft service and the SSE handler.
type Hub struct {
	cfg     Config
	pool    *ants.Pool
	metrics *Metrics
	logger  *logging.Logger

	mu      sync.Mutex
	nextID  uint64
	leagues map[string]*leagueChannel
	// sequences outlive pruned channels so bridged listeners never see a
	// league's sequence restart.
	sequences map[string]uint64
	bridge    Bridge
	closed    bool
}

func NewHub(cfg Config, metrics *Metrics, logger *logging.Logger) (*Hub, error) {
	if logger == nil {
		logger = logging.Default()
	}
	cfg = cfg.normalize()

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, crerr.Wrap(err, "create broadcast worker pool")
	}

	return &Hub{
		cfg:     cfg,
		pool:    pool,
		metrics: metrics,
		logger:  logger.Named("broadcast"),
		leagues:   make(map[string]*leagueChannel),
		sequences: make(map[string]uint64),
	}, nil
}

// SetBridge enables cross-instance forwarding for events published here.
func (h *Hub) SetBridge(bridge Bridge) {
	h.mu.Lock()
	h.bridge = bridge
	h.mu.Unlock()
}

func (h *Hub) Subscribe(leagueID string) (*Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, crerr.New("broadcast hub is closed")
	}

	h.nextID++
	sub := &Subscription{
		id:       h.nextID,
		leagueID: leagueID,
		ch:       make(chan draft.Event, h.cfg.Buffer),
	}
	h.channelLocked(leagueID).subscribers[sub.id] = sub
	h.metrics.subscriberAdded()

	h.logger.Debug("subscriber added", "league_id", leagueID, "subscriber_id", sub.id)
	return sub, nil
}

// Unsubscribe removes sub and closes its channel. It is safe to call more
// than once.
func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	if h.remove(sub) {
		h.logger.Debug("subscriber removed", "league_id", sub.leagueID, "subscriber_id", sub.id)
	}
}

// SubscriberCount returns the number of live subscribers for a league.
func (h *Hub) SubscriberCount(leagueID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.leagues[leagueID]; ok {
		return len(ch.subscribers)
	}
	return 0
}

// Publish stamps the event with the next league sequence, fans it out to
// local subscribers and forwards it over the bridge. Delivery problems are
// logged, never returned.
func (h *Hub) Publish(ctx context.Context, event draft.Event) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		h.logger.WarnContext(ctx, "publish on closed hub", "league_id", event.LeagueID, "type", event.Type)
		return
	}
	channel := h.acquireLocked(event.LeagueID)
	bridge := h.bridge
	h.mu.Unlock()

	// The sequence is taken under the fan-out lock so delivery order matches it.
	channel.fanout.Lock()
	h.mu.Lock()
	h.sequences[event.LeagueID]++
	event.Sequence = h.sequences[event.LeagueID]
	h.mu.Unlock()
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	h.deliverLocked(ctx, channel, event)
	channel.fanout.Unlock()
	h.release(event.LeagueID, channel)

	if bridge != nil {
		if err := bridge.Forward(ctx, event); err != nil {
			h.metrics.bridgeMessage("out", "error")
			h.logger.WarnContext(ctx, "forward draft event failed",
				"league_id", event.LeagueID,
				"type", event.Type,
				"sequence", event.Sequence,
				"error", err,
			)
			return
		}
		h.metrics.bridgeMessage("out", "ok")
	}
}

// Deliver fans out an event that was published by another instance. The
// remote sequence is kept as is.
func (h *Hub) Deliver(ctx context.Context, event draft.Event) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	channel := h.acquireLocked(event.LeagueID)
	h.mu.Unlock()

	channel.fanout.Lock()
	h.deliverLocked(ctx, channel, event)
	channel.fanout.Unlock()
	h.release(event.LeagueID, channel)
}

// deliverLocked must run with channel.fanout held.
func (h *Hub) deliverLocked(ctx context.Context, channel *leagueChannel, event draft.Event) {
	h.mu.Lock()
	subs := make([]*Subscription, 0, len(channel.subscribers))
	for _, sub := range channel.subscribers {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	h.metrics.eventPublished(event.Type)
	if len(subs) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			if sub.send(event, h.cfg.SendTimeout) {
				return
			}
			if h.remove(sub) {
				h.metrics.subscriberDropped()
				h.logger.WarnContext(ctx, "slow draft subscriber dropped",
					"league_id", event.LeagueID,
					"subscriber_id", sub.id,
					"type", event.Type,
					"sequence", event.Sequence,
					"timeout", h.cfg.SendTimeout,
				)
			}
		}
		if err := h.pool.Submit(task); err != nil {
			wg.Done()
			h.logger.ErrorContext(ctx, "submit draft fan-out task failed",
				"league_id", event.LeagueID,
				"subscriber_id", sub.id,
				"error", err,
			)
		}
	}
	wg.Wait()
}

func (h *Hub) remove(sub *Subscription) bool {
	h.mu.Lock()
	removed := false
	if channel, ok := h.leagues[sub.leagueID]; ok {
		if _, exists := channel.subscribers[sub.id]; exists {
			delete(channel.subscribers, sub.id)
			removed = true
		}
		h.pruneLocked(sub.leagueID, channel)
	}
	h.mu.Unlock()

	if removed {
		h.metrics.subscriberRemoved()
	}
	sub.close()
	return removed
}

func (h *Hub) channelLocked(leagueID string) *leagueChannel {
	channel, ok := h.leagues[leagueID]
	if !ok {
		channel = &leagueChannel{subscribers: make(map[uint64]*Subscription)}
		h.leagues[leagueID] = channel
	}
	return channel
}

// acquireLocked returns the league channel and marks a fan-out in flight.
func (h *Hub) acquireLocked(leagueID string) *leagueChannel {
	channel := h.channelLocked(leagueID)
	channel.inflight++
	return channel
}

func (h *Hub) release(leagueID string, channel *leagueChannel) {
	h.mu.Lock()
	channel.inflight--
	h.pruneLocked(leagueID, channel)
	h.mu.Unlock()
}

func (h *Hub) pruneLocked(leagueID string, channel *leagueChannel) {
	if channel.inflight > 0 || len(channel.subscribers) > 0 {
		return
	}
	if h.leagues[leagueID] == channel {
		delete(h.leagues, leagueID)
	}
}

// Close releases the worker pool and closes every subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	var subs []*Subscription
	for _, channel := range h.leagues {
		for _, sub := range channel.subscribers {
			subs = append(subs, sub)
		}
		channel.subscribers = make(map[uint64]*Subscription)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		h.metrics.subscriberRemoved()
		sub.close()
	}
	h.pool.Release()
}
