package handler

import (
	"context"

	catalogapp "game-store/internal/application/catalog"
	historyapp "game-store/internal/application/history"
	promoapp "game-store/internal/application/promo"
	purchaseapp "game-store/internal/application/purchase"
	sessionapp "game-store/internal/application/session"
	supportapp "game-store/internal/application/support"
	walletapp "game-store/internal/application/wallet"
	"game-store/internal/presentation/grpc/pb"
)

// Services ハンドラーが利用するアプリケーションサービス
type Services struct {
	Session  *sessionapp.SessionApplicationService
	Catalog  *catalogapp.CatalogApplicationService
	Wallet   *walletapp.WalletApplicationService
	Promo    *promoapp.PromoApplicationService
	Purchase *purchaseapp.PurchaseApplicationService
	History  *historyapp.HistoryApplicationService
	Support  *supportapp.SupportApplicationService
}

// StorefrontHandler gRPCストアフロントサービスハンドラー
type StorefrontHandler struct {
	services Services
}

var _ pb.StorefrontServiceServer = (*StorefrontHandler)(nil)

// NewStorefrontHandler 新しいStorefrontHandlerを作成
func NewStorefrontHandler(services Services) *StorefrontHandler {
	return &StorefrontHandler{services: services}
}

// StartSession セッション開始
func (h *StorefrontHandler) StartSession(ctx context.Context, _ *pb.Empty) (*pb.StartSessionResponse, error) {
	resp, err := h.services.Session.StartSession(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.StartSessionResponse{
		SessionID: resp.SessionID,
		Token:     resp.Token,
		ExpiresIn: resp.ExpiresIn,
		Balance:   resp.Balance,
	}, nil
}

// GetSession セッション概要取得
func (h *StorefrontHandler) GetSession(ctx context.Context, _ *pb.Empty) (*pb.SessionResponse, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.Session.GetSession(ctx, &sessionapp.GetSessionRequest{SessionID: id})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SessionResponse{
		SessionID:    resp.SessionID,
		Balance:      resp.Balance,
		ActivePromo:  resp.ActivePromo,
		LibraryCount: int32(resp.LibraryCount),
		MessageCount: int32(resp.MessageCount),
		CreatedAt:    resp.CreatedAt.Unix(),
	}, nil
}

// EndSession セッション終了
func (h *StorefrontHandler) EndSession(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.services.Session.EndSession(ctx, &sessionapp.EndSessionRequest{SessionID: id}); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

// ListGenres ジャンル・価格帯一覧
func (h *StorefrontHandler) ListGenres(ctx context.Context, _ *pb.Empty) (*pb.GenresResponse, error) {
	resp := h.services.Catalog.ListGenres(ctx)
	return &pb.GenresResponse{
		Genres:       resp.Genres,
		PriceBuckets: resp.PriceBuckets,
	}, nil
}

// ListItems カタログ検索
func (h *StorefrontHandler) ListItems(ctx context.Context, req *pb.ListItemsRequest) (*pb.ListItemsResponse, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.Catalog.ListItems(ctx, &catalogapp.ListItemsRequest{
		Genre:       req.Genre,
		PriceBucket: req.PriceBucket,
		Search:      req.Search,
		SessionID:   id,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	items := make([]*pb.Item, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, toPBItem(item))
	}
	return &pb.ListItemsResponse{
		Items:       items,
		ActivePromo: resp.ActivePromo,
	}, nil
}

// GetItem アイテム詳細
func (h *StorefrontHandler) GetItem(ctx context.Context, req *pb.ItemRequest) (*pb.Item, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	item, err := h.services.Catalog.GetItem(ctx, &catalogapp.GetItemRequest{ItemID: req.ItemID, SessionID: id})
	if err != nil {
		return nil, toStatus(err)
	}
	return toPBItem(*item), nil
}

// GetBalance 残高取得
func (h *StorefrontHandler) GetBalance(ctx context.Context, _ *pb.Empty) (*pb.BalanceResponse, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.Wallet.GetBalance(ctx, &walletapp.GetBalanceRequest{SessionID: id})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.BalanceResponse{Balance: resp.Balance}, nil
}

// TopUp 入金
func (h *StorefrontHandler) TopUp(ctx context.Context, req *pb.TopUpRequest) (*pb.TopUpResponse, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.Wallet.TopUp(ctx, &walletapp.TopUpRequest{SessionID: id, Amount: req.Amount})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.TopUpResponse{
		TransactionID: resp.TransactionID,
		Bonus:         resp.Bonus,
		Credited:      resp.Credited,
		BalanceAfter:  resp.BalanceAfter,
	}, nil
}

// ResolvePromo プロモコード照会（認証不要）
func (h *StorefrontHandler) ResolvePromo(ctx context.Context, req *pb.PromoRequest) (*pb.Promo, error) {
	view, err := h.services.Promo.ResolveCode(ctx, &promoapp.ResolveCodeRequest{Code: req.Code})
	if err != nil {
		return nil, toStatus(err)
	}
	return toPBPromo(*view), nil
}

// ApplyPromo プロモコード適用
func (h *StorefrontHandler) ApplyPromo(ctx context.Context, req *pb.PromoRequest) (*pb.ApplyPromoResponse, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.Promo.ApplyCode(ctx, &promoapp.ApplyCodeRequest{SessionID: id, Code: req.Code})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ApplyPromoResponse{
		Promo:    toPBPromo(resp.Promo),
		Replaced: resp.Replaced,
	}, nil
}

// ClearPromo プロモコード解除
func (h *StorefrontHandler) ClearPromo(ctx context.Context, _ *pb.Empty) (*pb.Empty, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.services.Promo.ClearCode(ctx, &promoapp.ClearCodeRequest{SessionID: id}); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

// Quote 価格見積もり
func (h *StorefrontHandler) Quote(ctx context.Context, req *pb.ItemRequest) (*pb.QuoteResponse, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.Purchase.Quote(ctx, &purchaseapp.QuoteRequest{SessionID: id, ItemID: req.ItemID})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.QuoteResponse{
		ItemID:            resp.ItemID,
		BasePrice:         resp.BasePrice,
		AfterItemDiscount: resp.AfterItemDiscount,
		PromoCode:         resp.PromoCode,
		FinalPrice:        resp.FinalPrice,
		Affordable:        resp.Affordable,
		Owned:             resp.Owned,
	}, nil
}

// Purchase 購入
func (h *StorefrontHandler) Purchase(ctx context.Context, req *pb.ItemRequest) (*pb.PurchaseResponse, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.Purchase.Purchase(ctx, &purchaseapp.PurchaseRequest{SessionID: id, ItemID: req.ItemID})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PurchaseResponse{
		TransactionID: resp.TransactionID,
		ItemID:        resp.ItemID,
		Title:         resp.Title,
		PricePaid:     resp.PricePaid,
		BalanceAfter:  resp.BalanceAfter,
	}, nil
}

// GetTransactionHistory トランザクション履歴
func (h *StorefrontHandler) GetTransactionHistory(ctx context.Context, req *pb.HistoryRequest) (*pb.HistoryResponse, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.History.GetTransactionHistory(ctx, &historyapp.GetTransactionHistoryRequest{
		SessionID:       id,
		Limit:           int(req.Limit),
		Offset:          int(req.Offset),
		TransactionType: req.TransactionType,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	transactions := make([]*pb.Transaction, 0, len(resp.Transactions))
	for _, txn := range resp.Transactions {
		transactions = append(transactions, &pb.Transaction{
			TransactionID:   txn.TransactionID(),
			TransactionType: txn.TransactionType().String(),
			Amount:          txn.Amount(),
			BalanceBefore:   txn.BalanceBefore(),
			BalanceAfter:    txn.BalanceAfter(),
			Status:          txn.Status().String(),
			CreatedAt:       txn.CreatedAt().Unix(),
		})
	}
	return &pb.HistoryResponse{
		Transactions: transactions,
		Total:        int32(resp.Total),
	}, nil
}

// GetLibrary 購入済みアイテム
func (h *StorefrontHandler) GetLibrary(ctx context.Context, _ *pb.Empty) (*pb.LibraryResponse, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.History.GetLibrary(ctx, &historyapp.GetLibraryRequest{SessionID: id})
	if err != nil {
		return nil, toStatus(err)
	}

	items := make([]*pb.LibraryItem, 0, len(resp.Items))
	for _, entry := range resp.Items {
		items = append(items, &pb.LibraryItem{
			ItemID:    entry.ItemID,
			Title:     entry.Title,
			PricePaid: entry.PricePaid,
		})
	}
	return &pb.LibraryResponse{Items: items}, nil
}

// SendMessage サポートへメッセージ送信
func (h *StorefrontHandler) SendMessage(ctx context.Context, req *pb.MessageRequest) (*pb.SendMessageResponse, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.Support.SendMessage(ctx, &supportapp.SendMessageRequest{SessionID: id, Text: req.Text})
	if err != nil {
		return nil, toStatus(err)
	}

	out := &pb.SendMessageResponse{ReplyExpected: resp.ReplyExpected}
	if resp.Message != nil {
		out.Message = toPBMessage(*resp.Message)
	}
	return out, nil
}

// GetTranscript 会話履歴
func (h *StorefrontHandler) GetTranscript(ctx context.Context, _ *pb.Empty) (*pb.TranscriptResponse, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := h.services.Support.GetTranscript(ctx, &supportapp.GetTranscriptRequest{SessionID: id})
	if err != nil {
		return nil, toStatus(err)
	}

	messages := make([]*pb.Message, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		messages = append(messages, toPBMessage(m))
	}
	return &pb.TranscriptResponse{Messages: messages}, nil
}

func toPBItem(item catalogapp.ItemView) *pb.Item {
	return &pb.Item{
		ID:              item.ID,
		Title:           item.Title,
		Genre:           item.Genre,
		Description:     item.Description,
		Rating:          item.Rating,
		BasePrice:       item.BasePrice,
		DiscountPercent: int32(item.DiscountPercent),
		PriceBucket:     item.PriceBucket,
		EffectivePrice:  item.EffectivePrice,
		Owned:           item.Owned,
	}
}

func toPBPromo(view promoapp.PromoView) *pb.Promo {
	return &pb.Promo{
		Code:            view.Code,
		DiscountPercent: int32(view.DiscountPercent),
		Description:     view.Description,
	}
}

func toPBMessage(m supportapp.MessageView) *pb.Message {
	return &pb.Message{
		Text:   m.Text,
		Sender: m.Sender,
		SentAt: m.SentAt.UnixMilli(),
	}
}
