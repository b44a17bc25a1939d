// Package cache provides response stores for the miRNA client's caching transport.
package cache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const defaultTimeout = 2 * time.Second

// httpcache records the request value of every header named in Vary under
// this prefix. For Authorization that value is the bearer token.
const variedAuthorization = "X-Varied-Authorization"

// Redis stores cached responses in Redis. It satisfies httpcache.Cache.
// Credentials never reach Redis: stored responses drop the varied
// Authorization header, and Scope keys entries by a hash of the credential.
type Redis struct {
	client  redis.UniversalClient
	prefix  string
	ttl     time.Duration
	timeout time.Duration
	logger  zerolog.Logger
}

var _ httpcache.Cache = (*Redis)(nil)

// NewRedis creates a store that namespaces keys with prefix. Entries expire
// after ttl; a ttl of zero keeps them until Redis evicts them.
func NewRedis(client redis.UniversalClient, prefix string, ttl time.Duration, logger zerolog.Logger) *Redis {
	return &Redis{
		client:  client,
		prefix:  prefix,
		ttl:     ttl,
		timeout: defaultTimeout,
		logger:  logger,
	}
}

// Get returns the cached response for key. Any Redis failure is a miss.
func (r *Redis) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	b, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warn().Err(err).Str("key", key).Msg("Failed to read cached response")
		}
		return nil, false
	}
	return b, true
}

// Set stores a response
func (r *Redis) Set(key string, responseBytes []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	responseBytes = stripHeader(responseBytes, variedAuthorization)
	if err := r.client.Set(ctx, r.key(key), responseBytes, r.ttl).Err(); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("Failed to cache response")
	}
}

// Delete removes a response
func (r *Redis) Delete(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Warn().Err(err).Str("key", key).Msg("Failed to evict cached response")
	}
}

func (r *Redis) key(key string) string {
	return r.prefix + key
}

// Scope returns a view of the store for requests sent with the given
// Authorization header value. Views for different credentials share no
// entries.
func (r *Redis) Scope(authorization string) httpcache.Cache {
	if authorization == "" {
		return r
	}

	sum := sha256.Sum256([]byte(authorization))
	scoped := *r
	scoped.prefix = r.prefix + hex.EncodeToString(sum[:]) + ":"
	return &scopedRedis{Redis: &scoped, authorization: authorization}
}

// scopedRedis restores the varied Authorization header in memory so the
// caching transport still matches entries against the request.
type scopedRedis struct {
	*Redis
	authorization string
}

func (s *scopedRedis) Get(key string) ([]byte, bool) {
	b, ok := s.Redis.Get(key)
	if !ok {
		return nil, false
	}
	return addHeader(b, variedAuthorization, s.authorization), true
}

// stripHeader removes every line of header from the head of a dumped
// HTTP response.
func stripHeader(resp []byte, header string) []byte {
	end := bytes.Index(resp, []byte("\r\n\r\n"))
	if end < 0 {
		return resp
	}

	head, body := resp[:end+2], resp[end+2:]
	prefix := []byte(header + ":")
	out := make([]byte, 0, len(resp))
	for len(head) > 0 {
		i := bytes.Index(head, []byte("\r\n"))
		line := head[:i+2]
		head = head[i+2:]
		if bytes.HasPrefix(line, prefix) {
			continue
		}
		out = append(out, line...)
	}
	return append(out, body...)
}

// addHeader inserts header after the status line of a dumped HTTP response.
func addHeader(resp []byte, header, value string) []byte {
	i := bytes.Index(resp, []byte("\r\n"))
	if i < 0 {
		return resp
	}

	out := make([]byte, 0, len(resp)+len(header)+len(value)+4)
	out = append(out, resp[:i+2]...)
	out = append(out, header+": "+value+"\r\n"...)
	return append(out, resp[i+2:]...)
}
