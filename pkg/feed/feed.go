// Package feed transports behaviour-tree snapshots between the tree
// runtime and its viewers over a Redis pub/sub channel.
//
// Snapshots travel as JSON-encoded [behaviour.Tree] payloads. The feed is
// fire-and-forget: every published snapshot replaces the previous one in
// the viewer wholesale, so there is no replay, acknowledgement, or
// persistence. Viewers that miss a snapshot simply pick up the next one.
package feed

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"github.com/a17hq/btviz/pkg/behaviour"
	"github.com/a17hq/btviz/pkg/observability"
)

// DefaultChannel is the pub/sub channel snapshots are published on when
// the configuration does not name one.
const DefaultChannel = "btviz:snapshots"

// Config holds connection settings for the snapshot feed.
type Config struct {
	// Addr is the Redis host:port. Defaults to localhost:6379.
	Addr string

	// Password is the optional Redis auth password.
	Password string

	// DB is the Redis database number.
	DB int

	// Channel is the pub/sub channel name. Defaults to DefaultChannel.
	Channel string
}

func (c Config) withDefaults() Config {
	if c.Addr == "" {
		c.Addr = "localhost:6379"
	}
	if c.Channel == "" {
		c.Channel = DefaultChannel
	}
	return c
}

func (c Config) client() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	})
}

// Publisher pushes snapshots onto the feed.
type Publisher struct {
	rdb     *redis.Client
	channel string
}

// NewPublisher connects a publisher to the feed. The connection is lazy;
// the first Publish surfaces connectivity errors.
func NewPublisher(cfg Config) *Publisher {
	cfg = cfg.withDefaults()
	return &Publisher{rdb: cfg.client(), channel: cfg.Channel}
}

// Publish encodes and publishes one snapshot.
func (p *Publisher) Publish(ctx context.Context, t behaviour.Tree) error {
	data, err := Encode(t)
	if err != nil {
		return err
	}
	if err := p.rdb.Publish(ctx, p.channel, data).Err(); err != nil {
		return err
	}
	observability.Feed().OnPublish(p.channel, len(data))
	return nil
}

// Close releases the underlying connection.
func (p *Publisher) Close() error {
	return p.rdb.Close()
}

// Subscriber receives snapshots from the feed.
type Subscriber struct {
	rdb     *redis.Client
	channel string
	logger  *log.Logger
}

// NewSubscriber connects a subscriber to the feed. A nil logger discards
// decode warnings.
func NewSubscriber(cfg Config, logger *log.Logger) *Subscriber {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Subscriber{rdb: cfg.client(), channel: cfg.Channel, logger: logger}
}

// Subscribe starts receiving snapshots. The returned channel delivers
// decoded snapshots until ctx is cancelled, then closes. Malformed
// payloads are logged and skipped; they never terminate the stream.
func (s *Subscriber) Subscribe(ctx context.Context) (<-chan behaviour.Tree, error) {
	pubsub := s.rdb.Subscribe(ctx, s.channel)

	// Confirm the subscription before handing back a channel so callers
	// see connection failures synchronously.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	out := make(chan behaviour.Tree)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				tree, err := Decode([]byte(msg.Payload))
				if err != nil {
					s.logger.Warn("skipping malformed snapshot", "err", err)
					observability.Feed().OnDecodeError(s.channel, err)
					continue
				}
				observability.Feed().OnSnapshot(s.channel, len(tree.Behaviours))
				select {
				case out <- tree:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// Close releases the underlying connection.
func (s *Subscriber) Close() error {
	return s.rdb.Close()
}
