package association

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
	registrypb.UnimplementedAssociationServiceServer
	repo *Repo
}

func NewGRPCServer(db *gorm.DB) *GRPCServer {
	return &GRPCServer{repo: NewRepo(db)}
}

func (s *GRPCServer) UpsertAssociation(ctx context.Context, req *registrypb.UpsertAssociationRequest) (*registrypb.UpsertAssociationResponse, error) {
	if req == nil || req.GetAssociation() == nil {
		return nil, status.Error(codes.InvalidArgument, "association required")
	}
	in := req.GetAssociation()

	name := strings.TrimSpace(in.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name required")
	}

	id := strings.TrimSpace(in.GetId())
	if id == "" {
		id = uuid.NewString()
	}

	perCount := int(in.GetPermitsPerCount())
	if perCount <= 0 {
		perCount = 1
	}
	var maxPerUnit *int
	if in.GetMaxPermitsPerUnit() >= 0 {
		m := int(in.GetMaxPermitsPerUnit())
		maxPerUnit = &m
	}

	a := &Association{
		ID:                     id,
		Name:                   name,
		AllocationMethod:       ParseAllocationMethod(in.GetAllocationMethod()),
		PermitsPerCount:        perCount,
		MaxPermitsPerUnit:      maxPerUnit,
		VisitorPolicy:          ParseVisitorPolicy(in.GetVisitorPolicy()),
		MaxVisitorPermits:      int(in.GetMaxVisitorPermits()),
		AllowAdditionalPermits: in.GetAllowAdditionalPermits(),
	}
	if err := s.repo.Upsert(ctx, a); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	latest, err := s.repo.FindByID(ctx, a.ID)
	if err != nil {
		latest = a
	}
	return &registrypb.UpsertAssociationResponse{Association: toPB(latest)}, nil
}

func (s *GRPCServer) GetAssociation(ctx context.Context, req *registrypb.GetAssociationRequest) (*registrypb.GetAssociationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	a, err := s.repo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, status.Error(codes.NotFound, "association not found")
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &registrypb.GetAssociationResponse{Association: toPB(a)}, nil
}

func (s *GRPCServer) ListAssociations(ctx context.Context, req *registrypb.ListAssociationsRequest) (*registrypb.ListAssociationsResponse, error) {
	page := 1
	size := 20
	if req != nil {
		if req.GetPage() > 0 {
			page = int(req.GetPage())
		}
		if req.GetPageSize() > 0 && req.GetPageSize() <= 200 {
			size = int(req.GetPageSize())
		}
	}
	list, total, err := s.repo.List(ctx, (page-1)*size, size)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := make([]*registrypb.Association, 0, len(list))
	for i := range list {
		a := list[i]
		out = append(out, toPB(&a))
	}
	return &registrypb.ListAssociationsResponse{Associations: out, Total: total}, nil
}

func toPB(a *Association) *registrypb.Association {
	if a == nil {
		return nil
	}
	maxPerUnit := int32(-1)
	if a.MaxPermitsPerUnit != nil {
		maxPerUnit = int32(*a.MaxPermitsPerUnit)
	}
	return &registrypb.Association{
		Id:                     a.ID,
		Name:                   a.Name,
		AllocationMethod:       string(a.AllocationMethod),
		PermitsPerCount:        int32(a.PermitsPerCount),
		MaxPermitsPerUnit:      maxPerUnit,
		VisitorPolicy:          string(a.VisitorPolicy),
		MaxVisitorPermits:      int32(a.MaxVisitorPermits),
		AllowAdditionalPermits: a.AllowAdditionalPermits,
		CreatedAt:              a.CreatedAt.Unix(),
		UpdatedAt:              a.UpdatedAt.Unix(),
	}
}
