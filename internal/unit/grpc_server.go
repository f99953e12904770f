package unit

import (
	"context"
	"strings"

	registrypb "github.com/PermitDrive/PermitDrive/internal/api/proto/registry"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

type GRPCServer struct {
	registrypb.UnimplementedUnitServiceServer
	repo *Repo
}

func NewGRPCServer(db *gorm.DB) *GRPCServer {
	return &GRPCServer{repo: NewRepo(db)}
}

func (s *GRPCServer) UpsertUnit(ctx context.Context, req *registrypb.UpsertUnitRequest) (*registrypb.UpsertUnitResponse, error) {
	if req == nil || req.GetUnit() == nil {
		return nil, status.Error(codes.InvalidArgument, "unit required")
	}
	in := req.GetUnit()

	assocID := strings.TrimSpace(in.GetAssociationId())
	number := strings.TrimSpace(in.GetNumber())
	if assocID == "" || number == "" {
		return nil, status.Error(codes.InvalidArgument, "association_id/number required")
	}

	id := strings.TrimSpace(in.GetId())
	if id == "" {
		id = uuid.NewString()
	}
	bedrooms := int(in.GetBedrooms())
	if bedrooms <= 0 {
		bedrooms = 1
	}

	u := &Unit{
		ID:            id,
		AssociationID: assocID,
		Number:        number,
		Bedrooms:      bedrooms,
	}
	if err := s.repo.Upsert(ctx, u); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	latest, err := s.repo.FindByID(ctx, u.ID)
	if err != nil {
		latest = u
	}
	return &registrypb.UpsertUnitResponse{Unit: toPB(latest)}, nil
}

func (s *GRPCServer) GetUnit(ctx context.Context, req *registrypb.GetUnitRequest) (*registrypb.GetUnitResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	u, err := s.repo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, status.Error(codes.NotFound, "unit not found")
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &registrypb.GetUnitResponse{Unit: toPB(u)}, nil
}

func (s *GRPCServer) ListUnits(ctx context.Context, req *registrypb.ListUnitsRequest) (*registrypb.ListUnitsResponse, error) {
	assocID := ""
	page := 1
	size := 20
	if req != nil {
		assocID = strings.TrimSpace(req.GetAssociationId())
		if req.GetPage() > 0 {
			page = int(req.GetPage())
		}
		if req.GetPageSize() > 0 && req.GetPageSize() <= 200 {
			size = int(req.GetPageSize())
		}
	}
	units, total, err := s.repo.List(ctx, assocID, (page-1)*size, size)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := make([]*registrypb.Unit, 0, len(units))
	for i := range units {
		u := units[i]
		out = append(out, toPB(&u))
	}
	return &registrypb.ListUnitsResponse{Units: out, Total: total}, nil
}

func toPB(u *Unit) *registrypb.Unit {
	if u == nil {
		return nil
	}
	return &registrypb.Unit{
		Id:            u.ID,
		AssociationId: u.AssociationID,
		Number:        u.Number,
		Bedrooms:      int32(u.Bedrooms),
		CreatedAt:     u.CreatedAt.Unix(),
		UpdatedAt:     u.UpdatedAt.Unix(),
	}
}
