package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/statdle/statdle/internal/model"
)

// DateKey returns the daily puzzle key for a time: YYYY-MM-DD in UTC.
// Every session created on the same UTC calendar date shares one answer.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// PickForDate deterministically selects the answer for a date from the pool.
// The pick is a pure function of (date, salt, pool composition): the date key
// is hashed with HMAC-SHA256 and reduced modulo the pool size, so the same
// date yields the same player across calls, restarts, and replicas. The salt
// lets deployments shuffle the schedule without reordering the pool.
func PickForDate(date time.Time, salt string, pool []*model.PlayerRecord) (*model.PlayerRecord, error) {
	if len(pool) == 0 {
		return nil, model.ErrEmptyPool
	}

	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)

	n := binary.BigEndian.Uint64(sum[:8])
	return pool[n%uint64(len(pool))], nil
}
