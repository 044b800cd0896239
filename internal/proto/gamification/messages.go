// Package gamification holds the wire messages, service descriptor and client
// of the gramps.gamification.v1.Gamification gRPC service. Messages travel as
// JSON through the codec registered in codec.go.
package gamification

// LevelInfo is one tier of the level table.
type LevelInfo struct {
	Level       int32  `json:"level"`
	MinXp       int32  `json:"min_xp"`
	MaxXp       int32  `json:"max_xp"`
	XpRequired  int32  `json:"xp_required"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

// UserXP is a user's cumulative balance.
type UserXP struct {
	UserId        string `json:"user_id"`
	TotalXp       int32  `json:"total_xp"`
	CurrentLevel  int32  `json:"current_level"`
	XpToNextLevel int32  `json:"xp_to_next_level"`
	CreatedAtUnix int64  `json:"created_at_unix"`
	UpdatedAtUnix int64  `json:"updated_at_unix"`
}

// XPTransaction is one ledger entry.
type XPTransaction struct {
	Id              uint64  `json:"id"`
	UserId          string  `json:"user_id"`
	XpAmount        int32   `json:"xp_amount"`
	TransactionType string  `json:"transaction_type"`
	Description     string  `json:"description"`
	MemoryId        *string `json:"memory_id,omitempty"`
	CreatedAtUnix   int64   `json:"created_at_unix"`
}

// UserStreak is a user's streak counters with display text.
type UserStreak struct {
	UserId           string `json:"user_id"`
	CurrentStreak    int32  `json:"current_streak"`
	LongestStreak    int32  `json:"longest_streak"`
	LastActivityDate string `json:"last_activity_date,omitempty"`
	TotalMemories    int32  `json:"total_memories"`
	Message          string `json:"message"`
	Emoji            string `json:"emoji"`
}

type DailyActivity struct {
	Date             string `json:"date"`
	MemoriesRecorded int32  `json:"memories_recorded"`
}

type Achievement struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
	Progress    int32  `json:"progress"`
	Target      int32  `json:"target"`
}

type Topic struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Prompts     []string `json:"prompts"`
}

// UserRequest addresses a single user.
type UserRequest struct {
	UserId string `json:"user_id"`
}

func (x *UserRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type AwardXPRequest struct {
	UserId          string  `json:"user_id"`
	XpAmount        int32   `json:"xp_amount"`
	TransactionType string  `json:"transaction_type"`
	Description     string  `json:"description"`
	MemoryId        *string `json:"memory_id,omitempty"`
}

func (x *AwardXPRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AwardXPRequest) GetMemoryId() string {
	if x != nil && x.MemoryId != nil {
		return *x.MemoryId
	}
	return ""
}

type AwardMessageXPRequest struct {
	UserId string `json:"user_id"`
	// MessageType is "text" or "voice".
	MessageType string `json:"message_type"`
}

func (x *AwardMessageXPRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type AwardBlogXPRequest struct {
	UserId     string `json:"user_id"`
	BlogPostId string `json:"blog_post_id"`
}

func (x *AwardBlogXPRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type AwardStreakXPRequest struct {
	UserId      string `json:"user_id"`
	StreakCount int32  `json:"streak_count"`
}

func (x *AwardStreakXPRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type AwardAchievementXPRequest struct {
	UserId           string `json:"user_id"`
	AchievementTitle string `json:"achievement_title"`
}

func (x *AwardAchievementXPRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type AwardFamilyShareXPRequest struct {
	UserId         string `json:"user_id"`
	RecipientCount int32  `json:"recipient_count"`
}

func (x *AwardFamilyShareXPRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type AwardVoiceXPRequest struct {
	UserId string `json:"user_id"`
	// DurationSeconds is optional; absent means unknown length.
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
}

func (x *AwardVoiceXPRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AwardVoiceXPRequest) GetDurationSeconds() float64 {
	if x != nil && x.DurationSeconds != nil {
		return *x.DurationSeconds
	}
	return 0
}

// AwardResponse is shared by every Award RPC. Persistence failures are
// reported with Success false and Error set, not as a gRPC status.
type AwardResponse struct {
	Success   bool       `json:"success"`
	XpAwarded int32      `json:"xp_awarded"`
	TotalXp   int32      `json:"total_xp"`
	LeveledUp bool       `json:"leveled_up"`
	NewLevel  *LevelInfo `json:"new_level,omitempty"`
	Error     string     `json:"error,omitempty"`
}

type GetUserXPResponse struct {
	Success bool `json:"success"`
	// Data is nil for users without a balance.
	Data  *UserXP `json:"data"`
	Error string  `json:"error,omitempty"`
}

type GetUserXPTransactionsRequest struct {
	UserId string `json:"user_id"`
	// Limit defaults to 10 when zero.
	Limit           int32   `json:"limit"`
	PaginationToken *string `json:"pagination_token,omitempty"`
}

func (x *GetUserXPTransactionsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetUserXPTransactionsRequest) GetPaginationToken() string {
	if x != nil && x.PaginationToken != nil {
		return *x.PaginationToken
	}
	return ""
}

type GetUserXPTransactionsResponse struct {
	Success             bool             `json:"success"`
	Data                []*XPTransaction `json:"data"`
	NextPaginationToken *string          `json:"next_pagination_token,omitempty"`
	Error               string           `json:"error,omitempty"`
}

func (x *GetUserXPTransactionsResponse) GetNextPaginationToken() string {
	if x != nil && x.NextPaginationToken != nil {
		return *x.NextPaginationToken
	}
	return ""
}

type InitializeUserXPResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type LevelProgressResponse struct {
	Success            bool       `json:"success"`
	TotalXp            int32      `json:"total_xp"`
	FormattedXp        string     `json:"formatted_xp"`
	Level              *LevelInfo `json:"level"`
	NextLevel          *LevelInfo `json:"next_level,omitempty"`
	CurrentLevelXp     int32      `json:"current_level_xp"`
	XpToNextLevel      int32      `json:"xp_to_next_level"`
	ProgressPercentage float64    `json:"progress_percentage"`
	Message            string     `json:"message"`
	Benefits           []string   `json:"benefits"`
	Error              string     `json:"error,omitempty"`
}

type ListLevelsRequest struct{}

type ListLevelsResponse struct {
	Levels []*LevelInfo `json:"levels"`
}

type StreakResponse struct {
	Success bool `json:"success"`
	// Data is nil when the user has no streak row or the update failed.
	Data *UserStreak `json:"data"`
	// Advanced is set by UpdateStreak when today's first activity moved the streak.
	Advanced bool   `json:"advanced,omitempty"`
	Error    string `json:"error,omitempty"`
}

type ListDailyActivityRequest struct {
	UserId string `json:"user_id"`
	// FromDate and ToDate are YYYY-MM-DD, inclusive. Empty ToDate means today,
	// empty FromDate means 30 days before ToDate.
	FromDate string `json:"from_date,omitempty"`
	ToDate   string `json:"to_date,omitempty"`
}

func (x *ListDailyActivityRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type ListDailyActivityResponse struct {
	Success bool             `json:"success"`
	Data    []*DailyActivity `json:"data"`
	Error   string           `json:"error,omitempty"`
}

type ListAchievementsResponse struct {
	Success bool           `json:"success"`
	Data    []*Achievement `json:"data"`
	Error   string         `json:"error,omitempty"`
}

type RecordActivityRequest struct {
	UserId string `json:"user_id"`
	// Kind is one of message_text, message_voice, blog_created,
	// voice_recording, family_share.
	Kind            string  `json:"kind"`
	BlogPostId      string  `json:"blog_post_id,omitempty"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	RecipientCount  int32   `json:"recipient_count,omitempty"`
}

func (x *RecordActivityRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type RecordActivityResponse struct {
	Success         bool           `json:"success"`
	Streak          *UserStreak    `json:"streak,omitempty"`
	StreakAdvanced  bool           `json:"streak_advanced"`
	StreakXp        int32          `json:"streak_xp"`
	ActivityXp      int32          `json:"activity_xp"`
	AchievementXp   int32          `json:"achievement_xp"`
	XpAwarded       int32          `json:"xp_awarded"`
	TotalXp         int32          `json:"total_xp"`
	LeveledUp       bool           `json:"leveled_up"`
	NewLevel        *LevelInfo     `json:"new_level,omitempty"`
	NewAchievements []*Achievement `json:"new_achievements,omitempty"`
	Error           string         `json:"error,omitempty"`
}

type GetDailyTopicsRequest struct {
	// Date is YYYY-MM-DD; empty means today.
	Date string `json:"date,omitempty"`
}

type GetDailyTopicsResponse struct {
	Date      string   `json:"date"`
	SetNumber int32    `json:"set_number"`
	Topics    []*Topic `json:"topics"`
}
