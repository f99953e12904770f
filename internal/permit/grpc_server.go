package permit

import (
	"context"
	"errors"
	"strings"
	"time"

	permitpb "github.com/PermitDrive/PermitDrive/internal/api/proto/permit"
	"github.com/PermitDrive/PermitDrive/internal/common/config"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

type GRPCServer struct {
	permitpb.UnimplementedPermitServiceServer

	svc *Service
}

func NewGRPCServer(db *gorm.DB, authCfg config.AuthConfig) *GRPCServer {
	return &GRPCServer{
		svc: NewService(db, NewOverrideVerifier(authCfg)),
	}
}

func (s *GRPCServer) IssuePermit(ctx context.Context, req *permitpb.IssuePermitRequest) (*permitpb.IssuePermitResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}

	typ, okType := ParseType(req.Type)
	if !okType {
		// 交给 service 统一出 VALIDATION 结果
		typ = Type(strings.TrimSpace(req.Type))
	}
	in := IssueInput{
		UnitID:         strings.TrimSpace(req.UnitId),
		Type:           typ,
		PermitNumber:   strings.TrimSpace(req.PermitNumber),
		VehicleID:      strings.TrimSpace(req.VehicleId),
		IssuedAt:       fromUnix(req.IssuedAt),
		ExpiresAt:      fromUnix(req.ExpiresAt),
		Notes:          strings.TrimSpace(req.Notes),
		CreatedBy:      strings.TrimSpace(req.CreatedBy),
		OverrideLimits: req.OverrideLimits,
		OverrideToken:  req.OverrideToken,
	}

	now := time.Now()
	res, err := s.svc.Issue(ctx, in, now)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	out := &permitpb.IssuePermitResponse{
		Success: res.Success,
		Code:    string(res.Code),
		Message: res.Message,
		Permit:  toPBPermit(res.Permit, now),
	}
	if res.Caps != nil {
		out.Caps = toPBCaps(*res.Caps)
	}
	if res.Details != nil {
		out.Details = &permitpb.CapacityDetails{
			Active:     int32(res.Details.Active),
			Max:        int32(res.Details.Max),
			PermitType: res.Details.PermitType,
		}
	}
	return out, nil
}

func (s *GRPCServer) RevokePermit(ctx context.Context, req *permitpb.RevokePermitRequest) (*permitpb.RevokePermitResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	now := time.Now()
	res, err := s.svc.Revoke(ctx, req.PermitId, req.Reason, now)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &permitpb.RevokePermitResponse{
		Success: res.Success,
		Code:    string(res.Code),
		Message: res.Message,
		Permit:  toPBPermit(res.Permit, now),
	}, nil
}

func (s *GRPCServer) MarkPermitExpired(ctx context.Context, req *permitpb.MarkPermitExpiredRequest) (*permitpb.MarkPermitExpiredResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	now := time.Now()
	res, err := s.svc.MarkExpired(ctx, req.PermitId, now)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &permitpb.MarkPermitExpiredResponse{
		Success: res.Success,
		Code:    string(res.Code),
		Message: res.Message,
		Permit:  toPBPermit(res.Permit, now),
	}, nil
}

func (s *GRPCServer) SetPermitExpiration(ctx context.Context, req *permitpb.SetPermitExpirationRequest) (*permitpb.SetPermitExpirationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	now := time.Now()
	res, err := s.svc.SetExpiration(ctx, req.PermitId, fromUnix(req.ExpiresAt))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &permitpb.SetPermitExpirationResponse{
		Success: res.Success,
		Code:    string(res.Code),
		Message: res.Message,
		Permit:  toPBPermit(res.Permit, now),
	}, nil
}

func (s *GRPCServer) ReplacePermit(ctx context.Context, req *permitpb.ReplacePermitRequest) (*permitpb.ReplacePermitResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	now := time.Now()
	res, err := s.svc.Replace(ctx, ReplaceInput{
		PermitID:     strings.TrimSpace(req.PermitId),
		NewVehicleID: strings.TrimSpace(req.NewVehicleId),
		Notes:        strings.TrimSpace(req.Notes),
		CreatedBy:    strings.TrimSpace(req.CreatedBy),
	}, now)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &permitpb.ReplacePermitResponse{
		Success: res.Success,
		Code:    string(res.Code),
		Message: res.Message,
		Permit:  toPBPermit(res.Permit, now),
	}, nil
}

func (s *GRPCServer) GetAvailability(ctx context.Context, req *permitpb.GetAvailabilityRequest) (*permitpb.GetAvailabilityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	snap, err := s.svc.Availability(ctx, req.UnitId, time.Now())
	if err != nil {
		if errors.Is(err, ErrUnitIDRequired) {
			return &permitpb.GetAvailabilityResponse{
				Success: false,
				Code:    string(CodeValidation),
				Message: "unit_id required",
			}, nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &permitpb.GetAvailabilityResponse{
				Success: false,
				Code:    string(CodeNotFound),
				Message: "unit not found",
			}, nil
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &permitpb.GetAvailabilityResponse{
		Success: true,
		Current: &permitpb.Counts{
			Resident: int32(snap.Current.Resident),
			Visitor:  int32(snap.Current.Visitor),
		},
		Caps: toPBCaps(snap.Caps),
		Availability: &permitpb.AvailabilityFlags{
			CanIssueResident: snap.Availability.CanIssueResident,
			CanIssueVisitor:  snap.Availability.CanIssueVisitor,
		},
		UnitId:        snap.Unit.ID,
		AssociationId: snap.Association.ID,
	}, nil
}

func (s *GRPCServer) GetPermit(ctx context.Context, req *permitpb.GetPermitRequest) (*permitpb.GetPermitResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is nil")
	}
	id := strings.TrimSpace(req.Id)
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	p, err := s.svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Error(codes.NotFound, "permit not found")
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &permitpb.GetPermitResponse{Permit: toPBPermit(p, time.Now())}, nil
}

func (s *GRPCServer) ListPermits(ctx context.Context, req *permitpb.ListPermitsRequest) (*permitpb.ListPermitsResponse, error) {
	f := ListFilter{}
	if req != nil {
		f.UnitID = strings.TrimSpace(req.UnitId)
		if st, okSt := ParseStatus(req.Status); okSt {
			f.Status = st
		}
		if ty, okTy := ParseType(req.Type); okTy {
			f.Type = ty
		}
		page := int(req.Page)
		size := int(req.PageSize)
		if page <= 0 {
			page = 1
		}
		if size <= 0 || size > 200 {
			size = 20
		}
		f.Offset = (page - 1) * size
		f.Limit = size
	}

	permits, total, err := s.svc.List(ctx, f)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	now := time.Now()
	out := make([]*permitpb.Permit, 0, len(permits))
	for i := range permits {
		p := permits[i]
		out = append(out, toPBPermit(&p, now))
	}
	return &permitpb.ListPermitsResponse{Permits: out, Total: total}, nil
}

func toPBCaps(c Caps) *permitpb.Caps {
	return &permitpb.Caps{
		MaxResident:      capOrUnbounded(c.MaxResident),
		MaxVisitor:       capOrUnbounded(c.MaxVisitor),
		BaselineResident: int32(c.Baseline),
	}
}

func capOrUnbounded(v *int) int32 {
	if v == nil {
		return -1
	}
	return int32(*v)
}

func toPBPermit(p *Permit, now time.Time) *permitpb.Permit {
	if p == nil {
		return nil
	}
	var expiresAt, revokedAt int64
	if p.ExpiresAt != nil {
		expiresAt = p.ExpiresAt.Unix()
	}
	if p.RevokedAt != nil {
		revokedAt = p.RevokedAt.Unix()
	}
	return &permitpb.Permit{
		Id:            p.ID,
		AssociationId: p.AssociationID,
		UnitId:        p.UnitID,
		VehicleId:     p.VehicleID,
		Type:          string(p.Type),
		PermitNumber:  p.PermitNumber,
		Status:        string(p.Status),
		DisplayStatus: string(DisplayStatus(p, now)),
		IssuedAt:      p.IssuedAt.Unix(),
		ExpiresAt:     expiresAt,
		RevokedAt:     revokedAt,
		RevokedReason: p.RevokedReason,
		Notes:         p.Notes,
		CreatedBy:     p.CreatedBy,
		CreatedAt:     p.CreatedAt.Unix(),
		UpdatedAt:     p.UpdatedAt.Unix(),
	}
}

func fromUnix(sec int64) *time.Time {
	if sec <= 0 {
		return nil
	}
	t := time.Unix(sec, 0)
	return &t
}
