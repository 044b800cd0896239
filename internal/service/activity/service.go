// Package activity turns one reported user activity into its streak, XP and
// achievement effects.
package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/oggyb/gramps-gamification/internal/achievement"
	"github.com/oggyb/gramps-gamification/internal/app"
	"github.com/oggyb/gramps-gamification/internal/db"
	"github.com/oggyb/gramps-gamification/internal/level"
	"github.com/oggyb/gramps-gamification/internal/repository"
	"github.com/oggyb/gramps-gamification/internal/service/streak"
	"github.com/oggyb/gramps-gamification/internal/service/xp"
)

// Kind is a qualifying activity.
type Kind string

const (
	KindMessageText    Kind = "message_text"
	KindMessageVoice   Kind = "message_voice"
	KindBlogCreated    Kind = "blog_created"
	KindVoiceRecording Kind = "voice_recording"
	KindFamilyShare    Kind = "family_share"
)

// ErrUnknownKind is returned for an activity kind outside the list above.
var ErrUnknownKind = errors.New("unknown activity kind")

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindMessageText, KindMessageVoice, KindBlogCreated, KindVoiceRecording, KindFamilyShare:
		return true
	}
	return false
}

// Event is one activity reported by a client.
type Event struct {
	UserID string
	Kind   Kind
	// BlogPostID links blog_created awards to the post.
	BlogPostID string
	// DurationSeconds of a voice_recording; 0 means unknown.
	DurationSeconds float64
	// RecipientCount of a family_share.
	RecipientCount int
}

// Outcome collects every effect of one Event.
type Outcome struct {
	Streak          *db.UserStreak
	StreakAdvanced  bool
	StreakXP        int
	ActivityXP      int
	AchievementXP   int
	NewAchievements []achievement.Definition
	TotalXP         int
	LeveledUp       bool
	NewLevel        *level.Info
}

// XPAwarded is the sum of every award of the event.
func (o *Outcome) XPAwarded() int {
	return o.StreakXP + o.ActivityXP + o.AchievementXP
}

func (o *Outcome) absorb(res *xp.AwardResult) {
	if res == nil {
		return
	}
	if res.TotalXP > o.TotalXP {
		o.TotalXP = res.TotalXP
	}
	if res.LeveledUp {
		o.LeveledUp = true
		o.NewLevel = res.NewLevel
	}
}

// Service orchestrates the streak and XP engines.
type Service struct {
	appCtx       *app.AppContext
	xp           *xp.Service
	streak       *streak.Service
	achievements *repository.AchievementRepository
}

// NewService creates an orchestrator over the given engines.
func NewService(appCtx *app.AppContext, xpSvc *xp.Service, streakSvc *streak.Service) *Service {
	return &Service{
		appCtx:       appCtx,
		xp:           xpSvc,
		streak:       streakSvc,
		achievements: repository.NewAchievementRepository(appCtx.DB),
	}
}

// Record applies an activity.
//
// Order:
//  1. streak update for today
//  2. streak milestone XP, only when the streak moved today
//  3. the activity's own XP
//  4. newly met achievements are stored and paid once each
//
// A failed streak update skips steps 2 and 4 but the activity XP is still
// awarded. A failed activity award is returned as the error.
func (s *Service) Record(ctx context.Context, ev Event) (*Outcome, error) {
	if !ev.Kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, ev.Kind)
	}
	log := s.appCtx.Logger.With("user_id", ev.UserID, "kind", string(ev.Kind))
	log.Debug("Record called")

	out := &Outcome{}

	up, err := s.streak.UpdateStreak(ctx, ev.UserID)
	if err != nil {
		log.Warn("streak update failed, skipping streak rewards", "err", err)
	} else {
		out.Streak = up.Streak
		out.StreakAdvanced = up.Advanced
	}

	if out.StreakAdvanced {
		res, err := s.xp.AwardStreakXP(ctx, ev.UserID, out.Streak.CurrentStreak)
		if err != nil {
			log.Warn("streak XP award failed", "streak", out.Streak.CurrentStreak, "err", err)
		} else {
			out.StreakXP = res.XPAwarded
			out.absorb(res)
		}
	}

	res, err := s.awardActivity(ctx, ev)
	if err != nil {
		return nil, fmt.Errorf("record activity: %w", err)
	}
	out.ActivityXP = res.XPAwarded
	out.absorb(res)

	if out.Streak != nil {
		s.unlockAchievements(ctx, ev.UserID, out)
	}
	return out, nil
}

func (s *Service) awardActivity(ctx context.Context, ev Event) (*xp.AwardResult, error) {
	switch ev.Kind {
	case KindMessageText:
		return s.xp.AwardMessageXP(ctx, ev.UserID, xp.MessageText)
	case KindMessageVoice:
		return s.xp.AwardMessageXP(ctx, ev.UserID, xp.MessageVoice)
	case KindBlogCreated:
		return s.xp.AwardBlogXP(ctx, ev.UserID, ev.BlogPostID)
	case KindVoiceRecording:
		return s.xp.AwardVoiceXP(ctx, ev.UserID, ev.DurationSeconds)
	case KindFamilyShare:
		return s.xp.AwardFamilyShareXP(ctx, ev.UserID, ev.RecipientCount)
	}
	return nil, ErrUnknownKind
}

func (s *Service) unlockAchievements(ctx context.Context, userID string, out *Outcome) {
	for _, def := range achievement.Unlocked(out.Streak.CurrentStreak, out.Streak.TotalMemories) {
		created, err := s.achievements.Unlock(ctx, userID, def.ID)
		if err != nil {
			s.appCtx.Logger.Warn("failed to store achievement", "user_id", userID, "achievement", def.ID, "err", err)
			continue
		}
		if !created {
			continue
		}

		s.appCtx.Metrics.AchievementsNew.WithLabelValues(def.ID).Inc()
		s.appCtx.Logger.Info("achievement unlocked", "user_id", userID, "achievement", def.ID)
		out.NewAchievements = append(out.NewAchievements, def)

		res, err := s.xp.AwardAchievementXP(ctx, userID, def.Title)
		if err != nil {
			s.appCtx.Logger.Warn("achievement XP award failed", "user_id", userID, "achievement", def.ID, "err", err)
			continue
		}
		out.AchievementXP += res.XPAwarded
		out.absorb(res)
	}
}

// Achievements evaluates the catalogue for a user. Unlocked is true when the
// achievement was stored or the counters meet it now.
func (s *Service) Achievements(ctx context.Context, userID string) ([]achievement.Status, error) {
	st, err := s.streak.GetStreak(ctx, userID)
	if err != nil {
		return nil, err
	}
	current, total := 0, 0
	if st != nil {
		current, total = st.CurrentStreak, st.TotalMemories
	}

	stored, err := s.achievements.ListByUser(ctx, userID)
	if err != nil {
		s.appCtx.Logger.Error("failed to list achievements", "user_id", userID, "err", err)
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	unlocked := make(map[string]bool, len(stored))
	for _, a := range stored {
		if _, ok := achievement.Lookup(a.AchievementID); !ok {
			s.appCtx.Logger.Warn("ignoring unknown stored achievement", "user_id", userID, "achievement", a.AchievementID)
			continue
		}
		unlocked[a.AchievementID] = true
	}

	statuses := achievement.Evaluate(current, total)
	for i := range statuses {
		if unlocked[statuses[i].ID] {
			statuses[i].Unlocked = true
		}
	}
	return statuses, nil
}
