package internal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

//go:generate mockgen -source=lock.go -destination=mock/lock.go

// Locker serializes validation attempts for one order across terminals.
type Locker interface {
	Lock(ctx context.Context, orderUID string) (unlock func(), err error)
}

// keyValidationLock: lock:order:validate:{order_uid} -> holder token
const keyValidationLock = "lock:order:validate:%s"

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

var extendScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)

// RedisLocker holds a per-order key for as long as the validation runs. The key is extended
// every ttl/3 under the holder token, so a crashed holder frees the order after one ttl.
type RedisLocker struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewRedisLocker(rdb *redis.Client, ttl time.Duration, logger *zap.SugaredLogger) *RedisLocker {
	return &RedisLocker{rdb: rdb, ttl: ttl, logger: logger}
}

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func (l *RedisLocker) Lock(ctx context.Context, orderUID string) (func(), error) {
	key := fmt.Sprintf(keyValidationLock, orderUID)
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOrderLocked
	}

	stop := make(chan struct{})
	stopped := make(chan struct{})
	go l.keepAlive(key, token, stop, stopped)

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-stopped
			// The validation context may be done by now.
			if err := releaseScript.Run(context.Background(), l.rdb, []string{key}, token).Err(); err != nil {
				l.logger.Errorf("Unlock error: %s", err.Error())
			}
		})
	}, nil
}

func (l *RedisLocker) keepAlive(key, token string, stop <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	t := time.NewTicker(l.ttl / 3)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C:
			n, err := extendScript.Run(context.Background(), l.rdb, []string{key}, token, l.ttl.Milliseconds()).Int()
			if err != nil {
				l.logger.Errorf("Lock extend error: %s", err.Error())
				continue
			}
			if n == 0 {
				l.logger.Warnf("Lock %s lost before validation finished", key)
				return
			}
		}
	}
}
