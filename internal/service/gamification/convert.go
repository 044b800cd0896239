package gamification

import (
	"github.com/oggyb/gramps-gamification/internal/achievement"
	"github.com/oggyb/gramps-gamification/internal/db"
	"github.com/oggyb/gramps-gamification/internal/level"
	pb "github.com/oggyb/gramps-gamification/internal/proto/gamification"
	"github.com/oggyb/gramps-gamification/internal/service/streak"
	"github.com/oggyb/gramps-gamification/internal/service/xp"
	"github.com/oggyb/gramps-gamification/internal/topics"
)

func toLevelInfo(l *level.Info) *pb.LevelInfo {
	if l == nil {
		return nil
	}
	return &pb.LevelInfo{
		Level:       int32(l.Level),
		MinXp:       int32(l.MinXP),
		MaxXp:       int32(l.MaxXP),
		XpRequired:  int32(l.XPRequired),
		Title:       l.Title,
		Description: l.Description,
		Color:       string(l.Color),
		Icon:        l.Icon,
	}
}

func toAwardResponse(res *xp.AwardResult) *pb.AwardResponse {
	return &pb.AwardResponse{
		Success:   true,
		XpAwarded: int32(res.XPAwarded),
		TotalXp:   int32(res.TotalXP),
		LeveledUp: res.LeveledUp,
		NewLevel:  toLevelInfo(res.NewLevel),
	}
}

func toUserXP(row *db.UserXP) *pb.UserXP {
	if row == nil {
		return nil
	}
	return &pb.UserXP{
		UserId:        row.UserID,
		TotalXp:       int32(row.TotalXP),
		CurrentLevel:  int32(row.CurrentLevel),
		XpToNextLevel: int32(row.XPToNextLevel),
		CreatedAtUnix: row.CreatedAt.UnixMilli(),
		UpdatedAtUnix: row.UpdatedAt.UnixMilli(),
	}
}

func toTransaction(tx db.XPTransaction) *pb.XPTransaction {
	return &pb.XPTransaction{
		Id:              tx.ID,
		UserId:          tx.UserID,
		XpAmount:        int32(tx.XPAmount),
		TransactionType: string(tx.TransactionType),
		Description:     tx.Description,
		MemoryId:        tx.MemoryID,
		CreatedAtUnix:   tx.CreatedAt.UnixMilli(),
	}
}

func toUserStreak(st *db.UserStreak) *pb.UserStreak {
	if st == nil {
		return nil
	}
	out := &pb.UserStreak{
		UserId:        st.UserID,
		CurrentStreak: int32(st.CurrentStreak),
		LongestStreak: int32(st.LongestStreak),
		TotalMemories: int32(st.TotalMemories),
		Message:       streak.Message(st.CurrentStreak),
		Emoji:         streak.Emoji(st.CurrentStreak),
	}
	if st.LastActivityDate != nil {
		out.LastActivityDate = *st.LastActivityDate
	}
	return out
}

func toAchievement(s achievement.Status) *pb.Achievement {
	return &pb.Achievement{
		Id:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Icon:        s.Icon,
		Unlocked:    s.Unlocked,
		Progress:    int32(s.Progress),
		Target:      int32(s.Target),
	}
}

func toTopic(t topics.Topic) *pb.Topic {
	return &pb.Topic{
		Id:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
		Prompts:     t.Prompts,
	}
}

func toProgressResponse(p *xp.Progress) *pb.LevelProgressResponse {
	return &pb.LevelProgressResponse{
		Success:            true,
		TotalXp:            int32(p.TotalXP),
		FormattedXp:        level.FormatXP(p.TotalXP),
		Level:              toLevelInfo(&p.Level),
		NextLevel:          toLevelInfo(p.Next),
		CurrentLevelXp:     int32(p.Progress.CurrentLevelXP),
		XpToNextLevel:      int32(p.Progress.XPToNextLevel),
		ProgressPercentage: p.Progress.ProgressPercentage,
		Message:            p.Message,
		Benefits:           p.Benefits,
	}
}
