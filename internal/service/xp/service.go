package xp

import (
	"context"
	"errors"
	"fmt"

	"github.com/oggyb/gramps-gamification/internal/app"
	"github.com/oggyb/gramps-gamification/internal/db"
	"github.com/oggyb/gramps-gamification/internal/level"
	"github.com/oggyb/gramps-gamification/internal/repository"
)

// MessageKind distinguishes text and voice chat messages.
type MessageKind string

const (
	MessageText  MessageKind = "text"
	MessageVoice MessageKind = "voice"
)

const (
	DefaultTransactionLimit = 10
	MaxTransactionLimit     = 100
)

// ErrInvalidMessageKind is returned for message kinds other than text/voice.
var ErrInvalidMessageKind = errors.New("message kind must be text or voice")

// AwardResult is the outcome of one award.
type AwardResult struct {
	XPAwarded int
	TotalXP   int
	LeveledUp bool
	// NewLevel is set only when LeveledUp.
	NewLevel *level.Info
}

// Service is the only writer of cumulative XP.
// It owns the user_xp balance rows and appends to the xp_transactions ledger.
type Service struct {
	appCtx *app.AppContext
	xpRepo *repository.XPRepository
	txRepo *repository.TransactionRepository
}

// NewService creates the XP award engine with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		xpRepo: repository.NewXPRepository(appCtx.DB),
		txRepo: repository.NewTransactionRepository(appCtx.DB),
	}
}

func deriveLevel(totalXP int) (int, int) {
	info := level.Calculate(totalXP)
	return info.Level, level.CalculateProgress(totalXP, info).XPToNextLevel
}

// AwardXP adds xpAmount to a user's balance and records a ledger entry.
//
// Behavior:
//   - The balance row is created on first award; the increment is atomic.
//   - Level columns are recomputed from the new total.
//   - The ledger insert is best-effort: on failure the entry is queued in
//     redis for replay and the award still succeeds.
//   - Negative amounts are not rejected here; callers validate.
//
// Example:
//
//	res, err := svc.AwardXP(ctx, "u-1", 2, db.TxMessageSent, "Sent a text message", nil)
func (s *Service) AwardXP(
	ctx context.Context,
	userID string,
	xpAmount int,
	txType db.TransactionType,
	description string,
	memoryID *string,
) (*AwardResult, error) {
	log := s.appCtx.Logger.With("user_id", userID, "type", string(txType))
	log.Debug("AwardXP called", "amount", xpAmount)

	row, err := s.xpRepo.AddXP(ctx, userID, xpAmount, deriveLevel)
	if err != nil {
		log.Error("failed to update XP balance", "err", err)
		s.appCtx.Metrics.AwardFailures.WithLabelValues(string(txType)).Inc()
		return nil, fmt.Errorf("award xp: %w", err)
	}

	oldTotal := row.TotalXP - xpAmount
	up := level.CheckLevelUp(oldTotal, row.TotalXP)

	s.appCtx.Metrics.Awards.WithLabelValues(string(txType)).Inc()
	s.appCtx.Metrics.XPAwarded.WithLabelValues(string(txType)).Add(float64(max(0, xpAmount)))
	if up.LeveledUp {
		s.appCtx.Metrics.LevelUps.Inc()
		log.Info("user leveled up", "from", up.OldLevel.Level, "to", up.NewLevel.Level, "total_xp", row.TotalXP)
	}

	s.refreshCache(ctx, row, xpAmount)

	s.recordTransaction(ctx, &db.XPTransaction{
		UserID:          userID,
		XPAmount:        xpAmount,
		TransactionType: txType,
		Description:     description,
		MemoryID:        memoryID,
	})

	res := &AwardResult{
		XPAwarded: xpAmount,
		TotalXP:   row.TotalXP,
		LeveledUp: up.LeveledUp,
	}
	if up.LeveledUp {
		nl := up.NewLevel
		res.NewLevel = &nl
	}
	return res, nil
}

// refreshCache writes the post-award row through to redis. Cached rows with a
// higher total win, so a late write of an older row is dropped. A negative
// amount lowers the total and drops the key instead.
func (s *Service) refreshCache(ctx context.Context, row *db.UserXP, xpAmount int) {
	if xpAmount >= 0 {
		_, err := s.appCtx.RedisCache.SetUserXP(ctx, row, s.appCtx.XPCacheTTL)
		if err == nil {
			return
		}
		s.appCtx.Logger.Warn("XP cache write failed", "user_id", row.UserID, "err", err)
	}
	if err := s.appCtx.RedisCache.InvalidateUserXP(ctx, row.UserID); err != nil {
		s.appCtx.Logger.Warn("failed to invalidate XP cache", "user_id", row.UserID, "err", err)
	}
}

// recordTransaction appends the ledger entry; failures are queued, never returned.
func (s *Service) recordTransaction(ctx context.Context, tx *db.XPTransaction) {
	err := s.txRepo.Create(ctx, tx)
	if err == nil {
		return
	}

	s.appCtx.Metrics.LedgerFailures.Inc()
	s.appCtx.Logger.Warn("failed to record XP transaction, queueing for replay",
		"user_id", tx.UserID, "type", string(tx.TransactionType), "err", err)

	tx.ID = 0
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = s.appCtx.Now().UTC()
	}
	if qerr := s.appCtx.RedisCache.PushPendingLedger(ctx, tx); qerr != nil {
		s.appCtx.Logger.Error("failed to queue XP transaction, entry lost",
			"user_id", tx.UserID, "amount", tx.XPAmount, "err", qerr)
	}
}

// ReplayPendingLedger drains the retry queue into the ledger. It stops at the
// first insert failure and puts that entry back at the head of the queue.
// Returns the number of entries written.
func (s *Service) ReplayPendingLedger(ctx context.Context) (int, error) {
	written := 0
	defer func() {
		if n, err := s.appCtx.RedisCache.PendingLedgerLen(ctx); err == nil {
			s.appCtx.Metrics.LedgerPending.Set(float64(n))
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		tx, err := s.appCtx.RedisCache.PopPendingLedger(ctx)
		if err != nil {
			return written, fmt.Errorf("pop pending ledger: %w", err)
		}
		if tx == nil {
			return written, nil
		}

		if err := s.txRepo.Create(ctx, tx); err != nil {
			tx.ID = 0
			if qerr := s.appCtx.RedisCache.RequeuePendingLedger(ctx, tx); qerr != nil {
				s.appCtx.Logger.Error("failed to requeue XP transaction, entry lost",
					"user_id", tx.UserID, "amount", tx.XPAmount, "err", qerr)
			}
			return written, fmt.Errorf("replay ledger entry: %w", err)
		}
		written++
		s.appCtx.Metrics.LedgerReplayed.Inc()
	}
}

// AwardMessageXP rewards one sent chat message. An empty kind means text.
func (s *Service) AwardMessageXP(ctx context.Context, userID string, kind MessageKind) (*AwardResult, error) {
	if kind == "" {
		kind = MessageText
	}
	if kind != MessageText && kind != MessageVoice {
		return nil, ErrInvalidMessageKind
	}
	return s.AwardXP(ctx, userID, MessageXP(), db.TxMessageSent, fmt.Sprintf("Sent a %s message", kind), nil)
}

// AwardBlogXP rewards a created blog post and links the ledger entry to it.
func (s *Service) AwardBlogXP(ctx context.Context, userID, blogPostID string) (*AwardResult, error) {
	var memoryID *string
	if blogPostID != "" {
		memoryID = &blogPostID
	}
	return s.AwardXP(ctx, userID, BlogXP(), db.TxBlogCreated, "Created a blog post", memoryID)
}

// AwardStreakXP pays the milestone bonus for a streak length. Non-milestone
// lengths succeed with zero XP and write nothing.
func (s *Service) AwardStreakXP(ctx context.Context, userID string, streakCount int) (*AwardResult, error) {
	amount := StreakXP(streakCount)
	if amount == 0 {
		return s.noAward(ctx, userID)
	}
	return s.AwardXP(ctx, userID, amount, db.TxStreakBonus, fmt.Sprintf("%d day streak bonus", streakCount), nil)
}

// AwardAchievementXP pays the fixed achievement reward.
func (s *Service) AwardAchievementXP(ctx context.Context, userID, title string) (*AwardResult, error) {
	return s.AwardXP(ctx, userID, AchievementXP, db.TxAchievement, fmt.Sprintf("Achievement unlocked: %s", title), nil)
}

// AwardFamilyShareXP pays per family recipient. Zero recipients write nothing.
func (s *Service) AwardFamilyShareXP(ctx context.Context, userID string, recipientCount int) (*AwardResult, error) {
	amount := FamilyShareRewardXP(recipientCount)
	if amount == 0 {
		return s.noAward(ctx, userID)
	}
	return s.AwardXP(ctx, userID, amount, db.TxFamilyShare, fmt.Sprintf("Shared with %d family member(s)", recipientCount), nil)
}

// AwardVoiceXP rewards a voice recording. durationSeconds of 0 means unknown.
func (s *Service) AwardVoiceXP(ctx context.Context, userID string, durationSeconds float64) (*AwardResult, error) {
	desc := "Voice recording"
	if IsLongRecording(durationSeconds) {
		desc = "Voice recording (bonus for length)"
	}
	return s.AwardXP(ctx, userID, VoiceXP(durationSeconds), db.TxVoiceRecording, desc, nil)
}

// noAward reports the current total without writing anything.
func (s *Service) noAward(ctx context.Context, userID string) (*AwardResult, error) {
	res := &AwardResult{}
	row, err := s.GetUserXP(ctx, userID)
	if err != nil {
		return nil, err
	}
	if row != nil {
		res.TotalXP = row.TotalXP
	}
	return res, nil
}

// GetUserXP returns a user's balance, or nil when the user has none yet.
// Cache-first:
//  1. Attempts to read from Redis (xp:user:<id>).
//  2. On miss or cache error, falls back to the DB.
//  3. On DB hit, refreshes Redis with the configured TTL unless an award
//     already cached a higher total in the meantime.
func (s *Service) GetUserXP(ctx context.Context, userID string) (*db.UserXP, error) {
	if cached, err := s.appCtx.RedisCache.GetUserXP(ctx, userID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		s.appCtx.Logger.Warn("XP cache read failed", "user_id", userID, "err", err)
	}

	row, err := s.xpRepo.Get(ctx, userID)
	if err != nil {
		s.appCtx.Logger.Error("failed to fetch XP data", "user_id", userID, "err", err)
		return nil, fmt.Errorf("get user xp: %w", err)
	}
	if row == nil {
		return nil, nil
	}

	if _, err := s.appCtx.RedisCache.SetUserXP(ctx, row, s.appCtx.XPCacheTTL); err != nil {
		s.appCtx.Logger.Warn("XP cache write failed", "user_id", userID, "err", err)
	}
	return row, nil
}

// GetUserXPTransactions returns the most recent ledger entries, newest first.
// A non-positive limit means DefaultTransactionLimit.
func (s *Service) GetUserXPTransactions(ctx context.Context, userID string, limit int) ([]db.XPTransaction, error) {
	rows, _, err := s.ListTransactions(ctx, userID, "", limit)
	return rows, err
}

// ListTransactions is the paged form of GetUserXPTransactions.
func (s *Service) ListTransactions(ctx context.Context, userID, pageToken string, limit int) ([]db.XPTransaction, *string, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	limit = min(limit, MaxTransactionLimit)

	rows, next, err := s.txRepo.ListByUser(ctx, userID, pageToken, limit)
	if err != nil {
		s.appCtx.Logger.Error("failed to fetch XP transactions", "user_id", userID, "err", err)
		return nil, nil, fmt.Errorf("list xp transactions: %w", err)
	}
	if rows == nil {
		rows = []db.XPTransaction{}
	}
	return rows, next, nil
}

// InitializeUserXP eagerly creates the zero-state balance
// (total 0, level 1, 50 to next). Existing balances are left untouched.
func (s *Service) InitializeUserXP(ctx context.Context, userID string) error {
	created, err := s.xpRepo.Initialize(ctx, userID, level.InitialLevel, level.InitialXPToNextLevel)
	if err != nil {
		s.appCtx.Logger.Error("failed to initialize user XP", "user_id", userID, "err", err)
		return fmt.Errorf("initialize user xp: %w", err)
	}
	s.appCtx.Logger.Debug("InitializeUserXP", "user_id", userID, "created", created)
	return nil
}

// Progress is a balance with its level metadata resolved.
type Progress struct {
	TotalXP  int
	Level    level.Info
	Next     *level.Info
	Progress level.Progress
	Message  string
	Benefits []string
}

// GetProgress resolves a user's level view. Users without a balance are at zero.
func (s *Service) GetProgress(ctx context.Context, userID string) (*Progress, error) {
	row, err := s.GetUserXP(ctx, userID)
	if err != nil {
		return nil, err
	}
	total := 0
	if row != nil {
		total = row.TotalXP
	}
	return ProgressFor(total), nil
}

// ProgressFor builds the level view of a total.
func ProgressFor(totalXP int) *Progress {
	info := level.Calculate(totalXP)
	p := level.CalculateProgress(totalXP, info)
	out := &Progress{
		TotalXP:  totalXP,
		Level:    info,
		Progress: p,
		Message:  level.MotivationalMessage(totalXP, p.ProgressPercentage),
		Benefits: level.Benefits(info.Level),
	}
	if next, ok := level.Next(info.Level); ok {
		out.Next = &next
	}
	return out
}
