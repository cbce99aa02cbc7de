// Package notify hands match notifications off to the mailer via a Redis
// queue. Dispatch is best-effort; delivery is the consumer's problem.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const matchQueueKey = "notifications:roommate_match"

// MatchEvent is the payload pushed for every high-quality match.
type MatchEvent struct {
	TargetUserID  int       `json:"target_user_id"`
	InitiatorName string    `json:"initiator_name"`
	Score         float64   `json:"score"`
	QueuedAt      time.Time `json:"queued_at"`
}

type RedisNotifier struct {
	rdb *redis.Client
}

func NewRedisNotifier(rdb *redis.Client) *RedisNotifier {
	return &RedisNotifier{rdb: rdb}
}

// NotifyMatch enqueues a match notification for the target user.
func (n *RedisNotifier) NotifyMatch(ctx context.Context, targetUserID int, initiatorName string, score float64) error {
	payload, err := json.Marshal(MatchEvent{
		TargetUserID:  targetUserID,
		InitiatorName: initiatorName,
		Score:         score,
		QueuedAt:      time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("notify: marshal event: %w", err)
	}

	if err := n.rdb.RPush(ctx, matchQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("notify: enqueue event: %w", err)
	}
	return nil
}
