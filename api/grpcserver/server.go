package grpcserver

import (
	"context"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "agora/api/pb"
	"agora/domain/market"
	"agora/service"
)

// Server adapts MarketService to gRPC.
type Server struct {
	pb.UnimplementedMarketServiceServer
	svc *service.MarketService
}

func NewServer(svc *service.MarketService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) ListItem(
	ctx context.Context,
	req *pb.ListItemRequest,
) (*pb.ListItemResponse, error) {
	asset := market.AssetRef{
		Registry: req.Registry,
		TokenID:  req.TokenId,
	}

	lst, err := s.svc.ListItem(ctx, asset, req.Price, market.Identity(req.Seller))
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[gRPC] ListItem registry=%s token=%d price=%d id=%d",
		req.Registry, req.TokenId, req.Price, lst.ID,
	)

	return &pb.ListItemResponse{
		ListingId: lst.ID,
		Status:    "ok",
	}, nil
}

func (s *Server) PurchaseItem(
	ctx context.Context,
	req *pb.PurchaseItemRequest,
) (*pb.PurchaseItemResponse, error) {
	rcpt, err := s.svc.PurchaseItem(ctx, req.ListingId, req.Remitted, market.Identity(req.Buyer))
	if err != nil {
		return nil, toStatus(err)
	}

	log.Printf(
		"[gRPC] PurchaseItem id=%d buyer=%s receipt=%s",
		req.ListingId, req.Buyer, rcpt.ID,
	)

	return &pb.PurchaseItemResponse{
		ReceiptId: rcpt.ID,
		ListingId: rcpt.ListingID,
		Price:     rcpt.Price,
		Seller:    string(rcpt.Seller),
		Buyer:     string(rcpt.Buyer),
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetListing(
	ctx context.Context,
	req *pb.GetListingRequest,
) (*pb.ListingEntry, error) {
	lst, err := s.svc.GetListing(req.ListingId)
	if err != nil {
		return nil, toStatus(err)
	}
	return fromListing(lst), nil
}

func (s *Server) GetTotalPrice(
	ctx context.Context,
	req *pb.TotalPriceRequest,
) (*pb.TotalPriceResponse, error) {
	total, err := s.svc.TotalPrice(req.ListingId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.TotalPriceResponse{Total: total}, nil
}

func (s *Server) GetSnapshot(
	ctx context.Context,
	req *pb.SnapshotRequest,
) (*pb.SnapshotResponse, error) {
	listings := s.svc.Listings()

	resp := &pb.SnapshotResponse{
		Listings: make([]*pb.ListingEntry, 0, len(listings)),
	}
	for _, lst := range listings {
		resp.Listings = append(resp.Listings, fromListing(lst))
	}
	return resp, nil
}

func (s *Server) GetFeePolicy(
	ctx context.Context,
	req *pb.FeePolicyRequest,
) (*pb.FeePolicyResponse, error) {
	p := s.svc.FeePolicy()
	return &pb.FeePolicyResponse{
		Recipient:  string(p.Recipient),
		FeePercent: p.Percent,
	}, nil
}

// -------------------- Converters --------------------

func fromListing(lst market.Listing) *pb.ListingEntry {
	return &pb.ListingEntry{
		ListingId: lst.ID,
		Registry:  lst.Asset.Registry,
		TokenId:   lst.Asset.TokenID,
		Price:     lst.Price,
		Seller:    string(lst.Seller),
		Sold:      lst.Sold,
	}
}

// toStatus maps domain errors to gRPC codes. Unknown errors come back
// as Internal so the client never sees raw infra details.
func toStatus(err error) error {
	switch {
	case errors.Is(err, market.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, market.ErrInvalidPrice),
		errors.Is(err, market.ErrInsufficientPayment),
		errors.Is(err, market.ErrOverpayment):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, market.ErrAlreadySold):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, market.ErrTransferNotAuthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, market.ErrInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
