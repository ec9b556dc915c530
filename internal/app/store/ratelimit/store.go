// Package ratelimit counts contact submissions per client in fixed windows
// and locks a client out once its allowance is used up.
package ratelimit

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/blake2b"
)

// Attempt is the rate_limits document of one client.
type Attempt struct {
	ClientKey    string     `bson:"client_key"`
	AttemptCount int        `bson:"attempt_count"`
	WindowStart  time.Time  `bson:"window_start"`
	LockedUntil  *time.Time `bson:"locked_until"`
	LastAttempt  time.Time  `bson:"last_attempt"` // TTL index
	CreatedAt    time.Time  `bson:"created_at"`
}

// Store limits how often one client may submit the contact form.
type Store struct {
	c           *mongo.Collection
	maxAttempts int
	window      time.Duration
	lockout     time.Duration
	now         func() time.Time
}

// New returns a Store allowing maxAttempts submissions per window, then
// refusing the client for lockout.
func New(db *mongo.Database, maxAttempts int, window, lockout time.Duration) *Store {
	return &Store{
		c:           db.Collection("rate_limits"),
		maxAttempts: maxAttempts,
		window:      window,
		lockout:     lockout,
		now:         time.Now,
	}
}

// ClientKey hashes a client address so raw IPs are never stored.
func ClientKey(client string) string {
	sum := blake2b.Sum256([]byte(strings.ToLower(strings.TrimSpace(client))))
	return hex.EncodeToString(sum[:16])
}

// CheckAllowed reports whether the client may submit now. remaining is -1
// while locked out. Lookup errors fail open.
func (s *Store) CheckAllowed(ctx context.Context, client string) (allowed bool, remaining int, lockedUntil *time.Time) {
	now := s.now()
	var a Attempt
	if err := s.c.FindOne(ctx, bson.M{"client_key": ClientKey(client)}).Decode(&a); err != nil {
		return true, s.maxAttempts, nil
	}
	if a.LockedUntil != nil && now.Before(*a.LockedUntil) {
		return false, -1, a.LockedUntil
	}
	if now.After(a.WindowStart.Add(s.window)) {
		return true, s.maxAttempts, nil
	}
	if remaining = s.maxAttempts - a.AttemptCount; remaining <= 0 {
		return false, 0, nil
	}
	return true, remaining, nil
}

// Record counts one submission. The count is incremented atomically; an
// expired window is restarted first. Reaching the allowance sets the lockout.
func (s *Store) Record(ctx context.Context, client string) (lockedOut bool, lockedUntil *time.Time) {
	key := ClientKey(client)
	now := s.now()

	_, _ = s.c.UpdateOne(ctx,
		bson.M{"client_key": key, "window_start": bson.M{"$lt": now.Add(-s.window)}},
		bson.M{"$set": bson.M{"attempt_count": 0, "window_start": now, "locked_until": nil}},
	)

	var a Attempt
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"client_key": key},
		bson.M{
			"$inc":         bson.M{"attempt_count": 1},
			"$set":         bson.M{"last_attempt": now},
			"$setOnInsert": bson.M{"window_start": now, "created_at": now, "locked_until": nil},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		return false, nil
	}

	if a.AttemptCount < s.maxAttempts {
		return false, nil
	}
	until := now.Add(s.lockout)
	_, _ = s.c.UpdateOne(ctx, bson.M{"client_key": key}, bson.M{"$set": bson.M{"locked_until": until}})
	return true, &until
}

// Clear forgets the client.
func (s *Store) Clear(ctx context.Context, client string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"client_key": ClientKey(client)})
	return err
}
