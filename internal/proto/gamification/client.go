package gamification

import (
	"context"

	"google.golang.org/grpc"
)

// Client calls the Gamification service over a client connection.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewGamificationClient wraps cc. Every call is sent with the JSON codec.
func NewGamificationClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AwardXP(ctx context.Context, in *AwardXPRequest, opts ...grpc.CallOption) (*AwardResponse, error) {
	return invoke[AwardXPRequest, AwardResponse](ctx, c.cc, "AwardXP", in, opts)
}

func (c *Client) AwardMessageXP(ctx context.Context, in *AwardMessageXPRequest, opts ...grpc.CallOption) (*AwardResponse, error) {
	return invoke[AwardMessageXPRequest, AwardResponse](ctx, c.cc, "AwardMessageXP", in, opts)
}

func (c *Client) AwardBlogXP(ctx context.Context, in *AwardBlogXPRequest, opts ...grpc.CallOption) (*AwardResponse, error) {
	return invoke[AwardBlogXPRequest, AwardResponse](ctx, c.cc, "AwardBlogXP", in, opts)
}

func (c *Client) AwardStreakXP(ctx context.Context, in *AwardStreakXPRequest, opts ...grpc.CallOption) (*AwardResponse, error) {
	return invoke[AwardStreakXPRequest, AwardResponse](ctx, c.cc, "AwardStreakXP", in, opts)
}

func (c *Client) AwardAchievementXP(ctx context.Context, in *AwardAchievementXPRequest, opts ...grpc.CallOption) (*AwardResponse, error) {
	return invoke[AwardAchievementXPRequest, AwardResponse](ctx, c.cc, "AwardAchievementXP", in, opts)
}

func (c *Client) AwardFamilyShareXP(ctx context.Context, in *AwardFamilyShareXPRequest, opts ...grpc.CallOption) (*AwardResponse, error) {
	return invoke[AwardFamilyShareXPRequest, AwardResponse](ctx, c.cc, "AwardFamilyShareXP", in, opts)
}

func (c *Client) AwardVoiceXP(ctx context.Context, in *AwardVoiceXPRequest, opts ...grpc.CallOption) (*AwardResponse, error) {
	return invoke[AwardVoiceXPRequest, AwardResponse](ctx, c.cc, "AwardVoiceXP", in, opts)
}

func (c *Client) GetUserXP(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*GetUserXPResponse, error) {
	return invoke[UserRequest, GetUserXPResponse](ctx, c.cc, "GetUserXP", in, opts)
}

func (c *Client) GetUserXPTransactions(ctx context.Context, in *GetUserXPTransactionsRequest, opts ...grpc.CallOption) (*GetUserXPTransactionsResponse, error) {
	return invoke[GetUserXPTransactionsRequest, GetUserXPTransactionsResponse](ctx, c.cc, "GetUserXPTransactions", in, opts)
}

func (c *Client) InitializeUserXP(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*InitializeUserXPResponse, error) {
	return invoke[UserRequest, InitializeUserXPResponse](ctx, c.cc, "InitializeUserXP", in, opts)
}

func (c *Client) GetLevelProgress(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*LevelProgressResponse, error) {
	return invoke[UserRequest, LevelProgressResponse](ctx, c.cc, "GetLevelProgress", in, opts)
}

func (c *Client) ListLevels(ctx context.Context, in *ListLevelsRequest, opts ...grpc.CallOption) (*ListLevelsResponse, error) {
	return invoke[ListLevelsRequest, ListLevelsResponse](ctx, c.cc, "ListLevels", in, opts)
}

func (c *Client) UpdateStreak(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*StreakResponse, error) {
	return invoke[UserRequest, StreakResponse](ctx, c.cc, "UpdateStreak", in, opts)
}

func (c *Client) GetStreak(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*StreakResponse, error) {
	return invoke[UserRequest, StreakResponse](ctx, c.cc, "GetStreak", in, opts)
}

func (c *Client) CheckAndResetStreak(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*StreakResponse, error) {
	return invoke[UserRequest, StreakResponse](ctx, c.cc, "CheckAndResetStreak", in, opts)
}

func (c *Client) ListDailyActivity(ctx context.Context, in *ListDailyActivityRequest, opts ...grpc.CallOption) (*ListDailyActivityResponse, error) {
	return invoke[ListDailyActivityRequest, ListDailyActivityResponse](ctx, c.cc, "ListDailyActivity", in, opts)
}

func (c *Client) ListAchievements(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*ListAchievementsResponse, error) {
	return invoke[UserRequest, ListAchievementsResponse](ctx, c.cc, "ListAchievements", in, opts)
}

func (c *Client) RecordActivity(ctx context.Context, in *RecordActivityRequest, opts ...grpc.CallOption) (*RecordActivityResponse, error) {
	return invoke[RecordActivityRequest, RecordActivityResponse](ctx, c.cc, "RecordActivity", in, opts)
}

func (c *Client) GetDailyTopics(ctx context.Context, in *GetDailyTopicsRequest, opts ...grpc.CallOption) (*GetDailyTopicsResponse, error) {
	return invoke[GetDailyTopicsRequest, GetDailyTopicsResponse](ctx, c.cc, "GetDailyTopics", in, opts)
}
