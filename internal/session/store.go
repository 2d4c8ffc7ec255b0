// Package session keeps the per-session pizza order outside of the request
// handlers. Each browser session is identified by an opaque id carried in a
// cookie; the order itself lives in a Store.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel adjusts the package logger, e.g. from LOG_LEVEL
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// ErrInvalidSessionID is returned for empty session ids
var ErrInvalidSessionID = errors.New("invalid session id")

// Store holds the order accumulated by each session
type Store interface {
	// Order returns the current order of the session, empty if nothing was added yet
	Order(ctx context.Context, sessionID string) (*models.Order, error)
	// AddDesign atomically appends a completed design to the session order
	AddDesign(ctx context.Context, sessionID string, design models.Pizza) error
	// Clear discards the session order
	Clear(ctx context.Context, sessionID string) error
	// Close releases the backend once the server has stopped
	Close() error
}

// Options configures NewStore
type Options struct {
	// Driver selects the backend: "memory" or "redis"
	Driver string
	TTL    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// NewStore builds the Store selected by opts.Driver
func NewStore(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(opts.Driver) {
	case "memory", "":
		log.WithField("ttl", opts.TTL).Info("Using in-memory session store")
		return NewMemoryStore(opts.TTL), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connecting to redis at %s: %w", opts.RedisAddr, err)
		}
		log.WithFields(logrus.Fields{
			"redis_addr": opts.RedisAddr,
			"redis_db":   opts.RedisDB,
			"ttl":        opts.TTL,
		}).Info("Using redis session store")
		return NewRedisStore(client, opts.TTL), nil
	default:
		return nil, fmt.Errorf("unsupported session store: %s (supported: memory, redis)", opts.Driver)
	}
}
