package gamification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/oggyb/gramps-gamification/internal/achievement"
	"github.com/oggyb/gramps-gamification/internal/app"
	"github.com/oggyb/gramps-gamification/internal/db"
	svcErr "github.com/oggyb/gramps-gamification/internal/errors"
	"github.com/oggyb/gramps-gamification/internal/level"
	pb "github.com/oggyb/gramps-gamification/internal/proto/gamification"
	"github.com/oggyb/gramps-gamification/internal/service/activity"
	"github.com/oggyb/gramps-gamification/internal/service/streak"
	"github.com/oggyb/gramps-gamification/internal/service/xp"
	"github.com/oggyb/gramps-gamification/internal/topics"
)

// defaultActivityWindow is the history returned when no from_date is given.
const defaultActivityWindow = 30

// Service implements the Gamification gRPC API on top of the XP, streak and
// activity engines.
//
// Input errors are returned as codes.InvalidArgument. Store failures are
// reported in the response body (success=false, error=<message>) so callers
// can carry on with their main flow.
type Service struct {
	appCtx   *app.AppContext
	xp       *xp.Service
	streak   *streak.Service
	activity *activity.Service

	pb.UnimplementedGamificationServer
}

// NewGamificationService creates the gRPC facade with dependencies from AppContext.
func NewGamificationService(appCtx *app.AppContext, xpSvc *xp.Service, streakSvc *streak.Service) *Service {
	return &Service{
		appCtx:   appCtx,
		xp:       xpSvc,
		streak:   streakSvc,
		activity: activity.NewService(appCtx, xpSvc, streakSvc),
	}
}

func validateUserID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return svcErr.InvalidArgument("user_id must be a valid UUID")
	}
	return nil
}

// failure splits an engine error into a status error (returned as is) or a
// body message.
func failure(err error) (string, error) {
	if svcErr.IsRequestError(err) {
		return "", svcErr.Map(err)
	}
	if errors.Is(err, xp.ErrInvalidMessageKind) || errors.Is(err, activity.ErrUnknownKind) {
		return "", svcErr.InvalidArgument(err.Error())
	}
	return err.Error(), nil
}

func (s *Service) award(method, userID string, res *xp.AwardResult, err error) (*pb.AwardResponse, error) {
	if err != nil {
		msg, stErr := failure(err)
		if stErr != nil {
			return nil, stErr
		}
		s.appCtx.Logger.Error(method+" failed", "user_id", userID, "err", err)
		return &pb.AwardResponse{Success: false, Error: msg}, nil
	}
	return toAwardResponse(res), nil
}

// AwardXP grants an arbitrary amount.
//
// Behavior:
//   - xp_amount must be >= 0 and transaction_type a known type.
//   - Level-up is reported with the new tier.
//
// Example:
//
//	svc.AwardXP(ctx, &pb.AwardXPRequest{UserId: id, XpAmount: 10, TransactionType: "blog_created"})
func (s *Service) AwardXP(ctx context.Context, req *pb.AwardXPRequest) (*pb.AwardResponse, error) {
	s.appCtx.Logger.Debug("AwardXP called", "user_id", req.GetUserId(), "amount", req.XpAmount, "type", req.TransactionType)

	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	if req.XpAmount < 0 {
		return nil, svcErr.InvalidArgument("xp_amount must not be negative")
	}
	txType := db.TransactionType(req.TransactionType)
	if !txType.Valid() {
		return nil, svcErr.InvalidArgument("transaction_type is not a known type")
	}

	res, err := s.xp.AwardXP(ctx, req.UserId, int(req.XpAmount), txType, req.Description, req.MemoryId)
	return s.award("AwardXP", req.UserId, res, err)
}

func (s *Service) AwardMessageXP(ctx context.Context, req *pb.AwardMessageXPRequest) (*pb.AwardResponse, error) {
	s.appCtx.Logger.Debug("AwardMessageXP called", "user_id", req.GetUserId(), "message_type", req.MessageType)
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	res, err := s.xp.AwardMessageXP(ctx, req.UserId, xp.MessageKind(req.MessageType))
	return s.award("AwardMessageXP", req.UserId, res, err)
}

func (s *Service) AwardBlogXP(ctx context.Context, req *pb.AwardBlogXPRequest) (*pb.AwardResponse, error) {
	s.appCtx.Logger.Debug("AwardBlogXP called", "user_id", req.GetUserId(), "blog_post_id", req.BlogPostId)
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	res, err := s.xp.AwardBlogXP(ctx, req.UserId, req.BlogPostId)
	return s.award("AwardBlogXP", req.UserId, res, err)
}

func (s *Service) AwardStreakXP(ctx context.Context, req *pb.AwardStreakXPRequest) (*pb.AwardResponse, error) {
	s.appCtx.Logger.Debug("AwardStreakXP called", "user_id", req.GetUserId(), "streak", req.StreakCount)
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	if req.StreakCount < 0 {
		return nil, svcErr.InvalidArgument("streak_count must not be negative")
	}
	res, err := s.xp.AwardStreakXP(ctx, req.UserId, int(req.StreakCount))
	return s.award("AwardStreakXP", req.UserId, res, err)
}

func (s *Service) AwardAchievementXP(ctx context.Context, req *pb.AwardAchievementXPRequest) (*pb.AwardResponse, error) {
	s.appCtx.Logger.Debug("AwardAchievementXP called", "user_id", req.GetUserId(), "title", req.AchievementTitle)
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	if req.AchievementTitle == "" {
		return nil, svcErr.InvalidArgument("achievement_title is required")
	}
	res, err := s.xp.AwardAchievementXP(ctx, req.UserId, req.AchievementTitle)
	return s.award("AwardAchievementXP", req.UserId, res, err)
}

func (s *Service) AwardFamilyShareXP(ctx context.Context, req *pb.AwardFamilyShareXPRequest) (*pb.AwardResponse, error) {
	s.appCtx.Logger.Debug("AwardFamilyShareXP called", "user_id", req.GetUserId(), "recipients", req.RecipientCount)
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	if req.RecipientCount < 0 {
		return nil, svcErr.InvalidArgument("recipient_count must not be negative")
	}
	res, err := s.xp.AwardFamilyShareXP(ctx, req.UserId, int(req.RecipientCount))
	return s.award("AwardFamilyShareXP", req.UserId, res, err)
}

func (s *Service) AwardVoiceXP(ctx context.Context, req *pb.AwardVoiceXPRequest) (*pb.AwardResponse, error) {
	s.appCtx.Logger.Debug("AwardVoiceXP called", "user_id", req.GetUserId(), "duration", req.GetDurationSeconds())
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	if req.GetDurationSeconds() < 0 {
		return nil, svcErr.InvalidArgument("duration_seconds must not be negative")
	}
	res, err := s.xp.AwardVoiceXP(ctx, req.UserId, req.GetDurationSeconds())
	return s.award("AwardVoiceXP", req.UserId, res, err)
}

// GetUserXP returns the balance; data is null for users that never earned XP.
func (s *Service) GetUserXP(ctx context.Context, req *pb.UserRequest) (*pb.GetUserXPResponse, error) {
	s.appCtx.Logger.Debug("GetUserXP called", "user_id", req.GetUserId())
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}

	row, err := s.xp.GetUserXP(ctx, req.UserId)
	if err != nil {
		msg, stErr := failure(err)
		if stErr != nil {
			return nil, stErr
		}
		return &pb.GetUserXPResponse{Success: false, Error: msg}, nil
	}
	return &pb.GetUserXPResponse{Success: true, Data: toUserXP(row)}, nil
}

// GetUserXPTransactions returns ledger entries newest first.
//
// Behavior:
//   - limit defaults to 10 and is capped at 100.
//   - Supports cursor-based pagination with pagination_token.
//
// Example:
//
//	svc.GetUserXPTransactions(ctx, &pb.GetUserXPTransactionsRequest{UserId: id, Limit: 5})
func (s *Service) GetUserXPTransactions(ctx context.Context, req *pb.GetUserXPTransactionsRequest) (*pb.GetUserXPTransactionsResponse, error) {
	s.appCtx.Logger.Debug("GetUserXPTransactions called", "user_id", req.GetUserId(), "limit", req.Limit, "token", req.GetPaginationToken())
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	if req.Limit < 0 {
		return nil, svcErr.InvalidArgument("limit must not be negative")
	}

	rows, next, err := s.xp.ListTransactions(ctx, req.UserId, req.GetPaginationToken(), int(req.Limit))
	if err != nil {
		msg, stErr := failure(err)
		if stErr != nil {
			return nil, stErr
		}
		return &pb.GetUserXPTransactionsResponse{Success: false, Data: []*pb.XPTransaction{}, Error: msg}, nil
	}

	resp := &pb.GetUserXPTransactionsResponse{
		Success:             true,
		Data:                make([]*pb.XPTransaction, 0, len(rows)),
		NextPaginationToken: next,
	}
	for _, tx := range rows {
		resp.Data = append(resp.Data, toTransaction(tx))
	}

	s.appCtx.Logger.Debug("GetUserXPTransactions result", "count", len(resp.Data), "next_token", resp.GetNextPaginationToken())
	return resp, nil
}

func (s *Service) InitializeUserXP(ctx context.Context, req *pb.UserRequest) (*pb.InitializeUserXPResponse, error) {
	s.appCtx.Logger.Debug("InitializeUserXP called", "user_id", req.GetUserId())
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	if err := s.xp.InitializeUserXP(ctx, req.UserId); err != nil {
		msg, stErr := failure(err)
		if stErr != nil {
			return nil, stErr
		}
		return &pb.InitializeUserXPResponse{Success: false, Error: msg}, nil
	}
	return &pb.InitializeUserXPResponse{Success: true}, nil
}

// GetLevelProgress resolves tier, progress, benefits and the motivational line.
func (s *Service) GetLevelProgress(ctx context.Context, req *pb.UserRequest) (*pb.LevelProgressResponse, error) {
	s.appCtx.Logger.Debug("GetLevelProgress called", "user_id", req.GetUserId())
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	p, err := s.xp.GetProgress(ctx, req.UserId)
	if err != nil {
		msg, stErr := failure(err)
		if stErr != nil {
			return nil, stErr
		}
		return &pb.LevelProgressResponse{Success: false, Error: msg}, nil
	}
	return toProgressResponse(p), nil
}

func (s *Service) ListLevels(_ context.Context, _ *pb.ListLevelsRequest) (*pb.ListLevelsResponse, error) {
	all := level.All()
	resp := &pb.ListLevelsResponse{Levels: make([]*pb.LevelInfo, 0, len(all))}
	for i := range all {
		resp.Levels = append(resp.Levels, toLevelInfo(&all[i]))
	}
	return resp, nil
}

func (s *Service) streakFailure(err error) (*pb.StreakResponse, error) {
	msg, stErr := failure(err)
	if stErr != nil {
		return nil, stErr
	}
	return &pb.StreakResponse{Success: false, Error: msg}, nil
}

// UpdateStreak records today's qualifying activity. Repeats on the same day
// return the unchanged streak with advanced=false.
func (s *Service) UpdateStreak(ctx context.Context, req *pb.UserRequest) (*pb.StreakResponse, error) {
	s.appCtx.Logger.Debug("UpdateStreak called", "user_id", req.GetUserId())
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	up, err := s.streak.UpdateStreak(ctx, req.UserId)
	if err != nil {
		return s.streakFailure(err)
	}
	return &pb.StreakResponse{Success: true, Data: toUserStreak(up.Streak), Advanced: up.Advanced}, nil
}

func (s *Service) GetStreak(ctx context.Context, req *pb.UserRequest) (*pb.StreakResponse, error) {
	s.appCtx.Logger.Debug("GetStreak called", "user_id", req.GetUserId())
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	st, err := s.streak.GetStreak(ctx, req.UserId)
	if err != nil {
		return s.streakFailure(err)
	}
	return &pb.StreakResponse{Success: true, Data: toUserStreak(st)}, nil
}

// CheckAndResetStreak zeroes a streak broken by a missed day.
func (s *Service) CheckAndResetStreak(ctx context.Context, req *pb.UserRequest) (*pb.StreakResponse, error) {
	s.appCtx.Logger.Debug("CheckAndResetStreak called", "user_id", req.GetUserId())
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	st, err := s.streak.CheckAndResetStreak(ctx, req.UserId)
	if err != nil {
		return s.streakFailure(err)
	}
	return &pb.StreakResponse{Success: true, Data: toUserStreak(st)}, nil
}

func (s *Service) parseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(db.DateLayout, value, s.appCtx.Location)
	if err != nil {
		return time.Time{}, svcErr.InvalidArgument(field + " must be YYYY-MM-DD")
	}
	return t, nil
}

// ListDailyActivity returns per-day memory counts, oldest first.
func (s *Service) ListDailyActivity(ctx context.Context, req *pb.ListDailyActivityRequest) (*pb.ListDailyActivityResponse, error) {
	s.appCtx.Logger.Debug("ListDailyActivity called", "user_id", req.GetUserId(), "from", req.FromDate, "to", req.ToDate)
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}

	to := s.streak.Today()
	if req.ToDate != "" {
		t, err := s.parseDate("to_date", req.ToDate)
		if err != nil {
			return nil, err
		}
		to = t
	}
	from := to.AddDate(0, 0, -defaultActivityWindow)
	if req.FromDate != "" {
		f, err := s.parseDate("from_date", req.FromDate)
		if err != nil {
			return nil, err
		}
		from = f
	}

	rows, err := s.streak.ListDailyActivity(ctx, req.UserId, from, to)
	if err != nil {
		msg, stErr := failure(err)
		if stErr != nil {
			return nil, stErr
		}
		return &pb.ListDailyActivityResponse{Success: false, Data: []*pb.DailyActivity{}, Error: msg}, nil
	}

	resp := &pb.ListDailyActivityResponse{Success: true, Data: make([]*pb.DailyActivity, 0, len(rows))}
	for _, r := range rows {
		resp.Data = append(resp.Data, &pb.DailyActivity{Date: r.ActivityDate, MemoriesRecorded: int32(r.MemoriesRecorded)})
	}
	return resp, nil
}

func (s *Service) ListAchievements(ctx context.Context, req *pb.UserRequest) (*pb.ListAchievementsResponse, error) {
	s.appCtx.Logger.Debug("ListAchievements called", "user_id", req.GetUserId())
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	statuses, err := s.activity.Achievements(ctx, req.UserId)
	if err != nil {
		msg, stErr := failure(err)
		if stErr != nil {
			return nil, stErr
		}
		return &pb.ListAchievementsResponse{Success: false, Data: []*pb.Achievement{}, Error: msg}, nil
	}

	resp := &pb.ListAchievementsResponse{Success: true, Data: make([]*pb.Achievement, 0, len(statuses))}
	for _, st := range statuses {
		resp.Data = append(resp.Data, toAchievement(st))
	}
	return resp, nil
}

// RecordActivity applies one activity: streak, streak XP, activity XP and
// achievements.
//
// Example:
//
//	svc.RecordActivity(ctx, &pb.RecordActivityRequest{UserId: id, Kind: "message_text"})
func (s *Service) RecordActivity(ctx context.Context, req *pb.RecordActivityRequest) (*pb.RecordActivityResponse, error) {
	s.appCtx.Logger.Debug("RecordActivity called", "user_id", req.GetUserId(), "kind", req.Kind)
	if err := validateUserID(req.GetUserId()); err != nil {
		return nil, err
	}
	if req.DurationSeconds < 0 || req.RecipientCount < 0 {
		return nil, svcErr.InvalidArgument("duration_seconds and recipient_count must not be negative")
	}

	out, err := s.activity.Record(ctx, activity.Event{
		UserID:          req.UserId,
		Kind:            activity.Kind(req.Kind),
		BlogPostID:      req.BlogPostId,
		DurationSeconds: req.DurationSeconds,
		RecipientCount:  int(req.RecipientCount),
	})
	if err != nil {
		msg, stErr := failure(err)
		if stErr != nil {
			return nil, stErr
		}
		s.appCtx.Logger.Error("RecordActivity failed", "user_id", req.UserId, "err", err)
		return &pb.RecordActivityResponse{Success: false, Error: msg}, nil
	}

	resp := &pb.RecordActivityResponse{
		Success:        true,
		Streak:         toUserStreak(out.Streak),
		StreakAdvanced: out.StreakAdvanced,
		StreakXp:       int32(out.StreakXP),
		ActivityXp:     int32(out.ActivityXP),
		AchievementXp:  int32(out.AchievementXP),
		XpAwarded:      int32(out.XPAwarded()),
		TotalXp:        int32(out.TotalXP),
		LeveledUp:      out.LeveledUp,
		NewLevel:       toLevelInfo(out.NewLevel),
	}
	for _, def := range out.NewAchievements {
		resp.NewAchievements = append(resp.NewAchievements, toAchievement(achievement.Status{
			Definition: def,
			Unlocked:   true,
			Progress:   def.Target,
		}))
	}
	return resp, nil
}

// GetDailyTopics returns the conversation topics of a day (default today).
func (s *Service) GetDailyTopics(_ context.Context, req *pb.GetDailyTopicsRequest) (*pb.GetDailyTopicsResponse, error) {
	day := s.streak.Today()
	if req.Date != "" {
		d, err := s.parseDate("date", req.Date)
		if err != nil {
			return nil, err
		}
		day = d
	}

	list := topics.ForDate(day)
	resp := &pb.GetDailyTopicsResponse{
		Date:      day.Format(db.DateLayout),
		SetNumber: int32(topics.SetNumber(day)),
		Topics:    make([]*pb.Topic, 0, len(list)),
	}
	for _, t := range list {
		resp.Topics = append(resp.Topics, toTopic(t))
	}
	return resp, nil
}
