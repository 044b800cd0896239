package gamification_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/oggyb/gramps-gamification/internal/app"
	pb "github.com/oggyb/gramps-gamification/internal/proto/gamification"
	"github.com/oggyb/gramps-gamification/internal/server"
	"github.com/oggyb/gramps-gamification/internal/service/gamification"
	"github.com/oggyb/gramps-gamification/internal/service/streak"
	"github.com/oggyb/gramps-gamification/internal/service/xp"
	"github.com/oggyb/gramps-gamification/internal/testutil"
)

type harness struct {
	client *pb.Client
	env    *testutil.Env
	clock  *testutil.Clock
}

// setupClient serves the Gamification service over bufconn and returns a
// client talking to it.
func setupClient(t *testing.T) *harness {
	t.Helper()

	clock := &testutil.Clock{}
	clock.Set("2024-01-06", time.UTC)
	env := testutil.NewEnv(t, app.WithClock(clock.Now))

	reg := gamification.NewRegistrar(env.App, xp.NewService(env.App), streak.NewService(env.App))
	grpcServer := server.NewGRPCServer(env.App.Logger, reg)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = grpcServer.Serve(lis) }()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &harness{client: pb.NewGamificationClient(conn), env: env, clock: clock}
}

func TestAwardMessageXP_RoundTrip(t *testing.T) {
	ctx := context.Background()
	h := setupClient(t)
	user := uuid.NewString()

	_, err := h.client.AwardXP(ctx, &pb.AwardXPRequest{UserId: user, XpAmount: 49, TransactionType: "achievement"})
	require.NoError(t, err)

	resp, err := h.client.AwardMessageXP(ctx, &pb.AwardMessageXPRequest{UserId: user, MessageType: "voice"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, int32(2), resp.XpAwarded)
	assert.Equal(t, int32(51), resp.TotalXp)
	assert.True(t, resp.LeveledUp)
	require.NotNil(t, resp.NewLevel)
	assert.Equal(t, "Story Teller", resp.NewLevel.Title)

	xpResp, err := h.client.GetUserXP(ctx, &pb.UserRequest{UserId: user})
	require.NoError(t, err)
	require.NotNil(t, xpResp.Data)
	assert.Equal(t, int32(51), xpResp.Data.TotalXp)
	assert.Equal(t, int32(2), xpResp.Data.CurrentLevel)
}

func TestInvalidArguments(t *testing.T) {
	ctx := context.Background()
	h := setupClient(t)
	user := uuid.NewString()

	_, err := h.client.GetUserXP(ctx, &pb.UserRequest{UserId: "not-a-uuid"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.client.AwardXP(ctx, &pb.AwardXPRequest{UserId: user, XpAmount: -5, TransactionType: "achievement"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.client.AwardXP(ctx, &pb.AwardXPRequest{UserId: user, XpAmount: 5, TransactionType: "bribe"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.client.AwardMessageXP(ctx, &pb.AwardMessageXPRequest{UserId: user, MessageType: "video"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	bad := "%%%"
	_, err = h.client.GetUserXPTransactions(ctx, &pb.GetUserXPTransactionsRequest{UserId: user, PaginationToken: &bad})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.client.RecordActivity(ctx, &pb.RecordActivityRequest{UserId: user, Kind: "juggling"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.client.ListDailyActivity(ctx, &pb.ListDailyActivityRequest{UserId: user, FromDate: "01/02/2024"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetUserXP_UnknownUser(t *testing.T) {
	h := setupClient(t)
	resp, err := h.client.GetUserXP(context.Background(), &pb.UserRequest{UserId: uuid.NewString()})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)
}

func TestAwardXP_StoreFailureInBody(t *testing.T) {
	ctx := context.Background()
	h := setupClient(t)

	// balance table gone: the primary write fails
	require.NoError(t, h.env.DB.Exec("DROP TABLE user_xp").Error)

	resp, err := h.client.AwardBlogXP(ctx, &pb.AwardBlogXPRequest{UserId: uuid.NewString(), BlogPostId: "p1"})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, int32(0), resp.XpAwarded)
	assert.NotEmpty(t, resp.Error)
}

func TestGetUserXPTransactions_DefaultLimitAndPaging(t *testing.T) {
	ctx := context.Background()
	h := setupClient(t)
	user := uuid.NewString()

	for i := 0; i < 12; i++ {
		_, err := h.client.AwardMessageXP(ctx, &pb.AwardMessageXPRequest{UserId: user, MessageType: "text"})
		require.NoError(t, err)
	}

	page, err := h.client.GetUserXPTransactions(ctx, &pb.GetUserXPTransactionsRequest{UserId: user})
	require.NoError(t, err)
	assert.True(t, page.Success)
	assert.Len(t, page.Data, 10)
	require.NotNil(t, page.NextPaginationToken)

	rest, err := h.client.GetUserXPTransactions(ctx, &pb.GetUserXPTransactionsRequest{
		UserId: user, Limit: 10, PaginationToken: page.NextPaginationToken,
	})
	require.NoError(t, err)
	assert.Len(t, rest.Data, 2)
	assert.Nil(t, rest.NextPaginationToken)

	for _, tx := range append(page.Data, rest.Data...) {
		assert.Equal(t, "message_sent", tx.TransactionType)
		assert.Equal(t, int32(2), tx.XpAmount)
	}
}

func TestInitializeAndProgress(t *testing.T) {
	ctx := context.Background()
	h := setupClient(t)
	user := uuid.NewString()

	initResp, err := h.client.InitializeUserXP(ctx, &pb.UserRequest{UserId: user})
	require.NoError(t, err)
	assert.True(t, initResp.Success)

	initResp, err = h.client.InitializeUserXP(ctx, &pb.UserRequest{UserId: user})
	require.NoError(t, err)
	assert.True(t, initResp.Success)

	_, err = h.client.AwardXP(ctx, &pb.AwardXPRequest{UserId: user, XpAmount: 1200, TransactionType: "achievement"})
	require.NoError(t, err)

	p, err := h.client.GetLevelProgress(ctx, &pb.UserRequest{UserId: user})
	require.NoError(t, err)
	assert.True(t, p.Success)
	assert.Equal(t, "1,200", p.FormattedXp)
	assert.Equal(t, int32(8), p.Level.Level)
	assert.Equal(t, int32(9), p.NextLevel.Level)
	assert.Equal(t, int32(180), p.CurrentLevelXp)
	assert.Equal(t, int32(120), p.XpToNextLevel)
	assert.NotEmpty(t, p.Message)
	assert.NotEmpty(t, p.Benefits)

	levels, err := h.client.ListLevels(ctx, &pb.ListLevelsRequest{})
	require.NoError(t, err)
	assert.Len(t, levels.Levels, 13)
}

func TestStreakRPCs(t *testing.T) {
	ctx := context.Background()
	h := setupClient(t)
	user := uuid.NewString()

	got, err := h.client.GetStreak(ctx, &pb.UserRequest{UserId: user})
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Nil(t, got.Data)

	up, err := h.client.UpdateStreak(ctx, &pb.UserRequest{UserId: user})
	require.NoError(t, err)
	assert.True(t, up.Advanced)
	assert.Equal(t, int32(1), up.Data.CurrentStreak)
	assert.Equal(t, "2024-01-06", up.Data.LastActivityDate)
	assert.Equal(t, "Great start! Keep it going!", up.Data.Message)

	again, err := h.client.UpdateStreak(ctx, &pb.UserRequest{UserId: user})
	require.NoError(t, err)
	assert.False(t, again.Advanced)
	assert.Equal(t, int32(1), again.Data.TotalMemories)

	h.clock.Set("2024-01-09", time.UTC)
	reset, err := h.client.CheckAndResetStreak(ctx, &pb.UserRequest{UserId: user})
	require.NoError(t, err)
	assert.Equal(t, int32(0), reset.Data.CurrentStreak)
	assert.Equal(t, int32(1), reset.Data.LongestStreak)
	assert.Equal(t, "🌱", reset.Data.Emoji)

	days, err := h.client.ListDailyActivity(ctx, &pb.ListDailyActivityRequest{UserId: user})
	require.NoError(t, err)
	require.Len(t, days.Data, 1)
	assert.Equal(t, "2024-01-06", days.Data[0].Date)
	assert.Equal(t, int32(2), days.Data[0].MemoriesRecorded)
}

func TestRecordActivityAndAchievements(t *testing.T) {
	ctx := context.Background()
	h := setupClient(t)
	user := uuid.NewString()

	resp, err := h.client.RecordActivity(ctx, &pb.RecordActivityRequest{UserId: user, Kind: "message_text"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.True(t, resp.StreakAdvanced)
	assert.Equal(t, int32(127), resp.XpAwarded)
	require.Len(t, resp.NewAchievements, 1)
	assert.Equal(t, "first_memory", resp.NewAchievements[0].Id)
	assert.True(t, resp.NewAchievements[0].Unlocked)

	list, err := h.client.ListAchievements(ctx, &pb.UserRequest{UserId: user})
	require.NoError(t, err)
	require.Len(t, list.Data, 6)
	assert.True(t, list.Data[0].Unlocked)
	assert.False(t, list.Data[1].Unlocked)
	assert.Equal(t, int32(1), list.Data[1].Progress)
	assert.Equal(t, int32(7), list.Data[1].Target)
}

func TestGetDailyTopics(t *testing.T) {
	ctx := context.Background()
	h := setupClient(t)

	today, err := h.client.GetDailyTopics(ctx, &pb.GetDailyTopicsRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-06", today.Date)
	// day 6 of the year → 6 % 4 + 1
	assert.Equal(t, int32(3), today.SetNumber)
	assert.Len(t, today.Topics, 8)

	jan1, err := h.client.GetDailyTopics(ctx, &pb.GetDailyTopicsRequest{Date: "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), jan1.SetNumber)
	assert.NotEmpty(t, jan1.Topics[0].Prompts)
}
