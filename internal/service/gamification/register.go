package gamification

import (
	"google.golang.org/grpc"

	"github.com/oggyb/gramps-gamification/internal/app"
	pb "github.com/oggyb/gramps-gamification/internal/proto/gamification"
	"github.com/oggyb/gramps-gamification/internal/service/streak"
	"github.com/oggyb/gramps-gamification/internal/service/xp"
)

// Registrar ties the Gamification service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
	xp     *xp.Service
	streak *streak.Service
}

// NewRegistrar creates a new Registrar for the Gamification service.
// The engines are shared with other components such as the ledger replayer.
func NewRegistrar(appCtx *app.AppContext, xpSvc *xp.Service, streakSvc *streak.Service) *Registrar {
	return &Registrar{appCtx: appCtx, xp: xpSvc, streak: streakSvc}
}

// Register attaches the Gamification service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	service := NewGamificationService(r.appCtx, r.xp, r.streak)
	pb.RegisterGamificationServer(s, service)
}
