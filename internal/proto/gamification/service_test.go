package gamification_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/oggyb/gramps-gamification/internal/proto/gamification"
)

type levelsOnly struct {
	pb.UnimplementedGamificationServer
}

func (levelsOnly) ListLevels(context.Context, *pb.ListLevelsRequest) (*pb.ListLevelsResponse, error) {
	return &pb.ListLevelsResponse{Levels: []*pb.LevelInfo{{Level: 1, Title: "Memory Keeper"}}}, nil
}

func dial(t *testing.T, srv pb.GamificationServer) *pb.Client {
	t.Helper()
	s := grpc.NewServer()
	pb.RegisterGamificationServer(s, srv)

	lis := bufconn.Listen(1 << 16)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return pb.NewGamificationClient(conn)
}

func TestCodecRegistered(t *testing.T) {
	c := encoding.GetCodec(pb.CodecName)
	require.NotNil(t, c)

	b, err := c.Marshal(&pb.UserRequest{UserId: "abc"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_id":"abc"}`, string(b))

	var out pb.UserRequest
	require.NoError(t, c.Unmarshal(b, &out))
	assert.Equal(t, "abc", out.GetUserId())
}

func TestServiceDesc_RoutesAndUnimplemented(t *testing.T) {
	client := dial(t, levelsOnly{})

	resp, err := client.ListLevels(context.Background(), &pb.ListLevelsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Levels, 1)
	assert.Equal(t, "Memory Keeper", resp.Levels[0].Title)

	_, err = client.GetStreak(context.Background(), &pb.UserRequest{UserId: "x"})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestNilSafeGetters(t *testing.T) {
	var req *pb.AwardVoiceXPRequest
	assert.Equal(t, "", req.GetUserId())
	assert.Equal(t, 0.0, req.GetDurationSeconds())

	d := 61.0
	assert.Equal(t, 61.0, (&pb.AwardVoiceXPRequest{DurationSeconds: &d}).GetDurationSeconds())
}
