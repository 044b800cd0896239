package gamification

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "gramps.gamification.v1.Gamification"

// GamificationServer is the server API for the Gamification service.
type GamificationServer interface {
	AwardXP(context.Context, *AwardXPRequest) (*AwardResponse, error)
	AwardMessageXP(context.Context, *AwardMessageXPRequest) (*AwardResponse, error)
	AwardBlogXP(context.Context, *AwardBlogXPRequest) (*AwardResponse, error)
	AwardStreakXP(context.Context, *AwardStreakXPRequest) (*AwardResponse, error)
	AwardAchievementXP(context.Context, *AwardAchievementXPRequest) (*AwardResponse, error)
	AwardFamilyShareXP(context.Context, *AwardFamilyShareXPRequest) (*AwardResponse, error)
	AwardVoiceXP(context.Context, *AwardVoiceXPRequest) (*AwardResponse, error)
	GetUserXP(context.Context, *UserRequest) (*GetUserXPResponse, error)
	GetUserXPTransactions(context.Context, *GetUserXPTransactionsRequest) (*GetUserXPTransactionsResponse, error)
	InitializeUserXP(context.Context, *UserRequest) (*InitializeUserXPResponse, error)
	GetLevelProgress(context.Context, *UserRequest) (*LevelProgressResponse, error)
	ListLevels(context.Context, *ListLevelsRequest) (*ListLevelsResponse, error)
	UpdateStreak(context.Context, *UserRequest) (*StreakResponse, error)
	GetStreak(context.Context, *UserRequest) (*StreakResponse, error)
	CheckAndResetStreak(context.Context, *UserRequest) (*StreakResponse, error)
	ListDailyActivity(context.Context, *ListDailyActivityRequest) (*ListDailyActivityResponse, error)
	ListAchievements(context.Context, *UserRequest) (*ListAchievementsResponse, error)
	RecordActivity(context.Context, *RecordActivityRequest) (*RecordActivityResponse, error)
	GetDailyTopics(context.Context, *GetDailyTopicsRequest) (*GetDailyTopicsResponse, error)
}

// UnimplementedGamificationServer answers every RPC with codes.Unimplemented.
// Embed it to stay compatible when RPCs are added.
type UnimplementedGamificationServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedGamificationServer) AwardXP(context.Context, *AwardXPRequest) (*AwardResponse, error) {
	return nil, unimplemented("AwardXP")
}
func (UnimplementedGamificationServer) AwardMessageXP(context.Context, *AwardMessageXPRequest) (*AwardResponse, error) {
	return nil, unimplemented("AwardMessageXP")
}
func (UnimplementedGamificationServer) AwardBlogXP(context.Context, *AwardBlogXPRequest) (*AwardResponse, error) {
	return nil, unimplemented("AwardBlogXP")
}
func (UnimplementedGamificationServer) AwardStreakXP(context.Context, *AwardStreakXPRequest) (*AwardResponse, error) {
	return nil, unimplemented("AwardStreakXP")
}
func (UnimplementedGamificationServer) AwardAchievementXP(context.Context, *AwardAchievementXPRequest) (*AwardResponse, error) {
	return nil, unimplemented("AwardAchievementXP")
}
func (UnimplementedGamificationServer) AwardFamilyShareXP(context.Context, *AwardFamilyShareXPRequest) (*AwardResponse, error) {
	return nil, unimplemented("AwardFamilyShareXP")
}
func (UnimplementedGamificationServer) AwardVoiceXP(context.Context, *AwardVoiceXPRequest) (*AwardResponse, error) {
	return nil, unimplemented("AwardVoiceXP")
}
func (UnimplementedGamificationServer) GetUserXP(context.Context, *UserRequest) (*GetUserXPResponse, error) {
	return nil, unimplemented("GetUserXP")
}
func (UnimplementedGamificationServer) GetUserXPTransactions(context.Context, *GetUserXPTransactionsRequest) (*GetUserXPTransactionsResponse, error) {
	return nil, unimplemented("GetUserXPTransactions")
}
func (UnimplementedGamificationServer) InitializeUserXP(context.Context, *UserRequest) (*InitializeUserXPResponse, error) {
	return nil, unimplemented("InitializeUserXP")
}
func (UnimplementedGamificationServer) GetLevelProgress(context.Context, *UserRequest) (*LevelProgressResponse, error) {
	return nil, unimplemented("GetLevelProgress")
}
func (UnimplementedGamificationServer) ListLevels(context.Context, *ListLevelsRequest) (*ListLevelsResponse, error) {
	return nil, unimplemented("ListLevels")
}
func (UnimplementedGamificationServer) UpdateStreak(context.Context, *UserRequest) (*StreakResponse, error) {
	return nil, unimplemented("UpdateStreak")
}
func (UnimplementedGamificationServer) GetStreak(context.Context, *UserRequest) (*StreakResponse, error) {
	return nil, unimplemented("GetStreak")
}
func (UnimplementedGamificationServer) CheckAndResetStreak(context.Context, *UserRequest) (*StreakResponse, error) {
	return nil, unimplemented("CheckAndResetStreak")
}
func (UnimplementedGamificationServer) ListDailyActivity(context.Context, *ListDailyActivityRequest) (*ListDailyActivityResponse, error) {
	return nil, unimplemented("ListDailyActivity")
}
func (UnimplementedGamificationServer) ListAchievements(context.Context, *UserRequest) (*ListAchievementsResponse, error) {
	return nil, unimplemented("ListAchievements")
}
func (UnimplementedGamificationServer) RecordActivity(context.Context, *RecordActivityRequest) (*RecordActivityResponse, error) {
	return nil, unimplemented("RecordActivity")
}
func (UnimplementedGamificationServer) GetDailyTopics(context.Context, *GetDailyTopicsRequest) (*GetDailyTopicsResponse, error) {
	return nil, unimplemented("GetDailyTopics")
}

// unary builds the method descriptor of one RPC from an interface method expression.
func unary[Req, Resp any](method string, call func(GamificationServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(GamificationServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + method,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(GamificationServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes the Gamification service for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GamificationServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("AwardXP", GamificationServer.AwardXP),
		unary("AwardMessageXP", GamificationServer.AwardMessageXP),
		unary("AwardBlogXP", GamificationServer.AwardBlogXP),
		unary("AwardStreakXP", GamificationServer.AwardStreakXP),
		unary("AwardAchievementXP", GamificationServer.AwardAchievementXP),
		unary("AwardFamilyShareXP", GamificationServer.AwardFamilyShareXP),
		unary("AwardVoiceXP", GamificationServer.AwardVoiceXP),
		unary("GetUserXP", GamificationServer.GetUserXP),
		unary("GetUserXPTransactions", GamificationServer.GetUserXPTransactions),
		unary("InitializeUserXP", GamificationServer.InitializeUserXP),
		unary("GetLevelProgress", GamificationServer.GetLevelProgress),
		unary("ListLevels", GamificationServer.ListLevels),
		unary("UpdateStreak", GamificationServer.UpdateStreak),
		unary("GetStreak", GamificationServer.GetStreak),
		unary("CheckAndResetStreak", GamificationServer.CheckAndResetStreak),
		unary("ListDailyActivity", GamificationServer.ListDailyActivity),
		unary("ListAchievements", GamificationServer.ListAchievements),
		unary("RecordActivity", GamificationServer.RecordActivity),
		unary("GetDailyTopics", GamificationServer.GetDailyTopics),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gramps/gamification/v1/gamification.proto",
}

// RegisterGamificationServer attaches srv to s.
func RegisterGamificationServer(s grpc.ServiceRegistrar, srv GamificationServer) {
	s.RegisterService(&ServiceDesc, srv)
}
