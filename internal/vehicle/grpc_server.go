package vehicle

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
	registrypb.UnimplementedVehicleServiceServer
	repo *Repo
}

func NewGRPCServer(db *gorm.DB) *GRPCServer {
	return &GRPCServer{repo: NewRepo(db)}
}

func (s *GRPCServer) UpsertVehicle(ctx context.Context, req *registrypb.UpsertVehicleRequest) (*registrypb.UpsertVehicleResponse, error) {
	if req == nil || req.GetVehicle() == nil {
		return nil, status.Error(codes.InvalidArgument, "vehicle required")
	}
	in := req.GetVehicle()

	unitID := strings.TrimSpace(in.GetUnitId())
	plate := strings.TrimSpace(in.GetPlateNumber())
	if unitID == "" || plate == "" {
		return nil, status.Error(codes.InvalidArgument, "unit_id/plate_number required")
	}

	id := strings.TrimSpace(in.GetId())
	if id == "" {
		id = uuid.NewString()
	}
	st := strings.TrimSpace(in.GetStatus())
	if st == "" {
		st = StatusActive
	}

	v := &Vehicle{
		ID:          id,
		UnitID:      unitID,
		PlateNumber: plate,
		Make:        strings.TrimSpace(in.GetMake()),
		Model:       strings.TrimSpace(in.GetModel()),
		Status:      st,
	}
	if err := s.repo.Upsert(ctx, v); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	// read back to get timestamps if DB sets them
	latest, err := s.repo.FindByID(ctx, v.ID)
	if err != nil {
		latest = v
	}
	return &registrypb.UpsertVehicleResponse{Vehicle: toPB(latest)}, nil
}

func (s *GRPCServer) GetVehicle(ctx context.Context, req *registrypb.GetVehicleRequest) (*registrypb.GetVehicleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	v, err := s.repo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, status.Error(codes.NotFound, "vehicle not found")
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &registrypb.GetVehicleResponse{Vehicle: toPB(v)}, nil
}

func (s *GRPCServer) ListVehicles(ctx context.Context, req *registrypb.ListVehiclesRequest) (*registrypb.ListVehiclesResponse, error) {
	unitID := ""
	page := 1
	size := 20
	if req != nil {
		unitID = strings.TrimSpace(req.GetUnitId())
		if req.GetPage() > 0 {
			page = int(req.GetPage())
		}
		if req.GetPageSize() > 0 && req.GetPageSize() <= 200 {
			size = int(req.GetPageSize())
		}
	}
	vs, total, err := s.repo.List(ctx, unitID, (page-1)*size, size)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := make([]*registrypb.Vehicle, 0, len(vs))
	for i := range vs {
		v := vs[i]
		out = append(out, toPB(&v))
	}
	return &registrypb.ListVehiclesResponse{Vehicles: out, Total: total}, nil
}

func (s *GRPCServer) ArchiveVehicle(ctx context.Context, req *registrypb.ArchiveVehicleRequest) (*registrypb.ArchiveVehicleResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	if err := s.repo.Archive(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, status.Error(codes.NotFound, "vehicle not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &registrypb.ArchiveVehicleResponse{Vehicle: toPB(v)}, nil
}

func toPB(v *Vehicle) *registrypb.Vehicle {
	if v == nil {
		return nil
	}
	return &registrypb.Vehicle{
		Id:          v.ID,
		UnitId:      v.UnitID,
		PlateNumber: v.PlateNumber,
		Make:        v.Make,
		Model:       v.Model,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
}
