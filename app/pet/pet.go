// Package pet tracks decorative per-wallet virtual cat state. It has no
// server authority and no bearing on post persistence; everything here is
// local cosmetic state, persisted to one JSON file per wallet.
package pet

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Mood is the cat's current disposition, derived from wallet activity.
type Mood string

const (
	MoodExcited Mood = "excited"
	MoodCurious Mood = "curious"
	MoodContent Mood = "content"
	MoodLonely  Mood = "lonely"
)

// Stats accumulates a wallet's posting and interaction history.
type Stats struct {
	TotalPosts      int        `json:"totalPosts"`
	DaysActive      int        `json:"daysActive"`
	CatInteractions int        `json:"catInteractions"`
	ConsecutiveDays int        `json:"consecutiveDays"`
	FirstPostDate   *time.Time `json:"firstPostDate"`
	LastPostDate    *time.Time `json:"lastPostDate"`
	LastInteraction *time.Time `json:"lastInteraction"`
}

// Tracker owns the stats for one wallet and persists them under stateDir.
type Tracker struct {
	address  string
	stateDir string
	stats    Stats
}

// NewTracker loads (or initializes) the tracker for address. A missing or
// unreadable state file starts from zero stats.
func NewTracker(stateDir, address string) *Tracker {
	t := &Tracker{address: address, stateDir: stateDir}
	data, err := os.ReadFile(t.statePath())
	if err == nil {
		if err := json.Unmarshal(data, &t.stats); err != nil {
			t.stats = Stats{}
		}
	}
	return t
}

// Stats returns a copy of the current stats.
func (t *Tracker) Stats() Stats {
	return t.stats
}

// RecordPost updates posting stats for a post made at now.
func (t *Tracker) RecordPost(now time.Time) {
	t.stats.TotalPosts++
	if t.stats.FirstPostDate == nil {
		first := now
		t.stats.FirstPostDate = &first
	}

	if t.stats.LastPostDate == nil {
		t.stats.ConsecutiveDays = 1
	} else {
		switch daysBetween(*t.stats.LastPostDate, now) {
		case 0:
			// Another post the same day; streak unchanged.
		case 1:
			t.stats.ConsecutiveDays++
		default:
			t.stats.ConsecutiveDays = 1
		}
	}

	last := now
	t.stats.LastPostDate = &last
	t.stats.DaysActive = daysBetween(*t.stats.FirstPostDate, now) + 1
	t.save()
}

// RecordInteraction counts one pet/play interaction at now.
func (t *Tracker) RecordInteraction(now time.Time) {
	t.stats.CatInteractions++
	last := now
	t.stats.LastInteraction = &last
	t.save()
}

// MoodFor derives the cat's mood from the wallet's current situation: lonely
// when no wallet is connected, content without any mfers, excited once
// today's post is made, curious until then.
func MoodFor(connected bool, ownedTokens int, postedToday bool) Mood {
	if !connected {
		return MoodLonely
	}
	if ownedTokens == 0 {
		return MoodContent
	}
	if postedToday {
		return MoodExcited
	}
	return MoodCurious
}

func (t *Tracker) statePath() string {
	// Wallet addresses are hex strings, safe as path components once
	// lowercased.
	name := strings.ToLower(t.address)
	return filepath.Join(t.stateDir, fmt.Sprintf("cat_%s.json", name))
}

func (t *Tracker) save() {
	data, err := json.Marshal(t.stats)
	if err != nil {
		logrus.WithError(err).Warn("failed to marshal cat stats")
		return
	}
	if err := os.MkdirAll(t.stateDir, 0o755); err != nil {
		logrus.WithError(err).Warn("failed to create pet state dir")
		return
	}
	if err := os.WriteFile(t.statePath(), data, 0o644); err != nil {
		logrus.WithError(err).Warn("failed to save cat stats")
	}
}

// daysBetween counts calendar-day boundaries crossed between a and b.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, a.Location())
	end := time.Date(by, bm, bd, 0, 0, 0, 0, b.Location())
	return int(end.Sub(start) / (24 * time.Hour))
}
