package handler

import (
	"context"

	promoapp "game-store/internal/application/promo"
	sessionapp "game-store/internal/application/session"
	"game-store/internal/presentation/grpc/pb"
)

// AdminHandler gRPC管理サービスハンドラー
type AdminHandler struct {
	promoService   *promoapp.PromoApplicationService
	sessionService *sessionapp.SessionApplicationService
}

var _ pb.AdminServiceServer = (*AdminHandler)(nil)

// NewAdminHandler 新しいAdminHandlerを作成
func NewAdminHandler(promoService *promoapp.PromoApplicationService, sessionService *sessionapp.SessionApplicationService) *AdminHandler {
	return &AdminHandler{
		promoService:   promoService,
		sessionService: sessionService,
	}
}

// ListPromoCodes 登録済みプロモコード一覧
func (h *AdminHandler) ListPromoCodes(ctx context.Context, _ *pb.Empty) (*pb.PromoCodesResponse, error) {
	resp := h.promoService.ListCodes(ctx)
	codes := make([]*pb.Promo, 0, len(resp.Codes))
	for _, view := range resp.Codes {
		codes = append(codes, toPBPromo(view))
	}
	return &pb.PromoCodesResponse{Codes: codes}, nil
}

// CountSessions アクティブなセッション数
func (h *AdminHandler) CountSessions(ctx context.Context, _ *pb.Empty) (*pb.SessionCountResponse, error) {
	n, err := h.sessionService.CountSessions(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SessionCountResponse{Sessions: int32(n)}, nil
}
