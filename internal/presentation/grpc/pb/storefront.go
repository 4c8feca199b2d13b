package pb

import (
	"context"

	"google.golang.org/grpc"
)

// StorefrontServiceName ストアフロントのgRPCサービス名
const StorefrontServiceName = "gamestore.v1.StorefrontService"

// フルメソッド名
const (
	Storefront_StartSession_FullMethodName          = "/gamestore.v1.StorefrontService/StartSession"
	Storefront_GetSession_FullMethodName            = "/gamestore.v1.StorefrontService/GetSession"
	Storefront_EndSession_FullMethodName            = "/gamestore.v1.StorefrontService/EndSession"
	Storefront_ListGenres_FullMethodName            = "/gamestore.v1.StorefrontService/ListGenres"
	Storefront_ListItems_FullMethodName             = "/gamestore.v1.StorefrontService/ListItems"
	Storefront_GetItem_FullMethodName               = "/gamestore.v1.StorefrontService/GetItem"
	Storefront_GetBalance_FullMethodName            = "/gamestore.v1.StorefrontService/GetBalance"
	Storefront_TopUp_FullMethodName                 = "/gamestore.v1.StorefrontService/TopUp"
	Storefront_ResolvePromo_FullMethodName          = "/gamestore.v1.StorefrontService/ResolvePromo"
	Storefront_ApplyPromo_FullMethodName            = "/gamestore.v1.StorefrontService/ApplyPromo"
	Storefront_ClearPromo_FullMethodName            = "/gamestore.v1.StorefrontService/ClearPromo"
	Storefront_Quote_FullMethodName                 = "/gamestore.v1.StorefrontService/Quote"
	Storefront_Purchase_FullMethodName              = "/gamestore.v1.StorefrontService/Purchase"
	Storefront_GetTransactionHistory_FullMethodName = "/gamestore.v1.StorefrontService/GetTransactionHistory"
	Storefront_GetLibrary_FullMethodName            = "/gamestore.v1.StorefrontService/GetLibrary"
	Storefront_SendMessage_FullMethodName           = "/gamestore.v1.StorefrontService/SendMessage"
	Storefront_GetTranscript_FullMethodName         = "/gamestore.v1.StorefrontService/GetTranscript"
)

// StorefrontServiceServer StorefrontServiceのサーバー実装
type StorefrontServiceServer interface {
	StartSession(context.Context, *Empty) (*StartSessionResponse, error)
	GetSession(context.Context, *Empty) (*SessionResponse, error)
	EndSession(context.Context, *Empty) (*Empty, error)
	ListGenres(context.Context, *Empty) (*GenresResponse, error)
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	GetItem(context.Context, *ItemRequest) (*Item, error)
	GetBalance(context.Context, *Empty) (*BalanceResponse, error)
	TopUp(context.Context, *TopUpRequest) (*TopUpResponse, error)
	ResolvePromo(context.Context, *PromoRequest) (*Promo, error)
	ApplyPromo(context.Context, *PromoRequest) (*ApplyPromoResponse, error)
	ClearPromo(context.Context, *Empty) (*Empty, error)
	Quote(context.Context, *ItemRequest) (*QuoteResponse, error)
	Purchase(context.Context, *ItemRequest) (*PurchaseResponse, error)
	GetTransactionHistory(context.Context, *HistoryRequest) (*HistoryResponse, error)
	GetLibrary(context.Context, *Empty) (*LibraryResponse, error)
	SendMessage(context.Context, *MessageRequest) (*SendMessageResponse, error)
	GetTranscript(context.Context, *Empty) (*TranscriptResponse, error)
}

// StorefrontService_ServiceDesc StorefrontServiceのサービス定義
var StorefrontService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: StorefrontServiceName,
	HandlerType: (*StorefrontServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartSession", Handler: unaryHandler(Storefront_StartSession_FullMethodName, StorefrontServiceServer.StartSession)},
		{MethodName: "GetSession", Handler: unaryHandler(Storefront_GetSession_FullMethodName, StorefrontServiceServer.GetSession)},
		{MethodName: "EndSession", Handler: unaryHandler(Storefront_EndSession_FullMethodName, StorefrontServiceServer.EndSession)},
		{MethodName: "ListGenres", Handler: unaryHandler(Storefront_ListGenres_FullMethodName, StorefrontServiceServer.ListGenres)},
		{MethodName: "ListItems", Handler: unaryHandler(Storefront_ListItems_FullMethodName, StorefrontServiceServer.ListItems)},
		{MethodName: "GetItem", Handler: unaryHandler(Storefront_GetItem_FullMethodName, StorefrontServiceServer.GetItem)},
		{MethodName: "GetBalance", Handler: unaryHandler(Storefront_GetBalance_FullMethodName, StorefrontServiceServer.GetBalance)},
		{MethodName: "TopUp", Handler: unaryHandler(Storefront_TopUp_FullMethodName, StorefrontServiceServer.TopUp)},
		{MethodName: "ResolvePromo", Handler: unaryHandler(Storefront_ResolvePromo_FullMethodName, StorefrontServiceServer.ResolvePromo)},
		{MethodName: "ApplyPromo", Handler: unaryHandler(Storefront_ApplyPromo_FullMethodName, StorefrontServiceServer.ApplyPromo)},
		{MethodName: "ClearPromo", Handler: unaryHandler(Storefront_ClearPromo_FullMethodName, StorefrontServiceServer.ClearPromo)},
		{MethodName: "Quote", Handler: unaryHandler(Storefront_Quote_FullMethodName, StorefrontServiceServer.Quote)},
		{MethodName: "Purchase", Handler: unaryHandler(Storefront_Purchase_FullMethodName, StorefrontServiceServer.Purchase)},
		{MethodName: "GetTransactionHistory", Handler: unaryHandler(Storefront_GetTransactionHistory_FullMethodName, StorefrontServiceServer.GetTransactionHistory)},
		{MethodName: "GetLibrary", Handler: unaryHandler(Storefront_GetLibrary_FullMethodName, StorefrontServiceServer.GetLibrary)},
		{MethodName: "SendMessage", Handler: unaryHandler(Storefront_SendMessage_FullMethodName, StorefrontServiceServer.SendMessage)},
		{MethodName: "GetTranscript", Handler: unaryHandler(Storefront_GetTranscript_FullMethodName, StorefrontServiceServer.GetTranscript)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterStorefrontServiceServer サーバーを登録
func RegisterStorefrontServiceServer(s grpc.ServiceRegistrar, srv StorefrontServiceServer) {
	s.RegisterService(&StorefrontService_ServiceDesc, srv)
}

// StorefrontServiceClient StorefrontServiceのクライアント
type StorefrontServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewStorefrontServiceClient 新しいStorefrontServiceClientを作成
func NewStorefrontServiceClient(cc grpc.ClientConnInterface) *StorefrontServiceClient {
	return &StorefrontServiceClient{cc: cc}
}

// StartSession gamestore.v1.StorefrontService/StartSessionを呼び出す
func (c *StorefrontServiceClient) StartSession(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*StartSessionResponse, error) {
	return invoke[StartSessionResponse](ctx, c.cc, Storefront_StartSession_FullMethodName, in, opts)
}

// GetSession gamestore.v1.StorefrontService/GetSessionを呼び出す
func (c *StorefrontServiceClient) GetSession(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, Storefront_GetSession_FullMethodName, in, opts)
}

// EndSession gamestore.v1.StorefrontService/EndSessionを呼び出す
func (c *StorefrontServiceClient) EndSession(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, Storefront_EndSession_FullMethodName, in, opts)
}

// ListGenres gamestore.v1.StorefrontService/ListGenresを呼び出す
func (c *StorefrontServiceClient) ListGenres(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GenresResponse, error) {
	return invoke[GenresResponse](ctx, c.cc, Storefront_ListGenres_FullMethodName, in, opts)
}

// ListItems gamestore.v1.StorefrontService/ListItemsを呼び出す
func (c *StorefrontServiceClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	return invoke[ListItemsResponse](ctx, c.cc, Storefront_ListItems_FullMethodName, in, opts)
}

// GetItem gamestore.v1.StorefrontService/GetItemを呼び出す
func (c *StorefrontServiceClient) GetItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*Item, error) {
	return invoke[Item](ctx, c.cc, Storefront_GetItem_FullMethodName, in, opts)
}

// GetBalance gamestore.v1.StorefrontService/GetBalanceを呼び出す
func (c *StorefrontServiceClient) GetBalance(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*BalanceResponse, error) {
	return invoke[BalanceResponse](ctx, c.cc, Storefront_GetBalance_FullMethodName, in, opts)
}

// TopUp gamestore.v1.StorefrontService/TopUpを呼び出す
func (c *StorefrontServiceClient) TopUp(ctx context.Context, in *TopUpRequest, opts ...grpc.CallOption) (*TopUpResponse, error) {
	return invoke[TopUpResponse](ctx, c.cc, Storefront_TopUp_FullMethodName, in, opts)
}

// ResolvePromo gamestore.v1.StorefrontService/ResolvePromoを呼び出す
func (c *StorefrontServiceClient) ResolvePromo(ctx context.Context, in *PromoRequest, opts ...grpc.CallOption) (*Promo, error) {
	return invoke[Promo](ctx, c.cc, Storefront_ResolvePromo_FullMethodName, in, opts)
}

// ApplyPromo gamestore.v1.StorefrontService/ApplyPromoを呼び出す
func (c *StorefrontServiceClient) ApplyPromo(ctx context.Context, in *PromoRequest, opts ...grpc.CallOption) (*ApplyPromoResponse, error) {
	return invoke[ApplyPromoResponse](ctx, c.cc, Storefront_ApplyPromo_FullMethodName, in, opts)
}

// ClearPromo gamestore.v1.StorefrontService/ClearPromoを呼び出す
func (c *StorefrontServiceClient) ClearPromo(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, Storefront_ClearPromo_FullMethodName, in, opts)
}

// Quote gamestore.v1.StorefrontService/Quoteを呼び出す
func (c *StorefrontServiceClient) Quote(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*QuoteResponse, error) {
	return invoke[QuoteResponse](ctx, c.cc, Storefront_Quote_FullMethodName, in, opts)
}

// Purchase gamestore.v1.StorefrontService/Purchaseを呼び出す
func (c *StorefrontServiceClient) Purchase(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*PurchaseResponse, error) {
	return invoke[PurchaseResponse](ctx, c.cc, Storefront_Purchase_FullMethodName, in, opts)
}

// GetTransactionHistory gamestore.v1.StorefrontService/GetTransactionHistoryを呼び出す
func (c *StorefrontServiceClient) GetTransactionHistory(ctx context.Context, in *HistoryRequest, opts ...grpc.CallOption) (*HistoryResponse, error) {
	return invoke[HistoryResponse](ctx, c.cc, Storefront_GetTransactionHistory_FullMethodName, in, opts)
}

// GetLibrary gamestore.v1.StorefrontService/GetLibraryを呼び出す
func (c *StorefrontServiceClient) GetLibrary(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*LibraryResponse, error) {
	return invoke[LibraryResponse](ctx, c.cc, Storefront_GetLibrary_FullMethodName, in, opts)
}

// SendMessage gamestore.v1.StorefrontService/SendMessageを呼び出す
func (c *StorefrontServiceClient) SendMessage(ctx context.Context, in *MessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	return invoke[SendMessageResponse](ctx, c.cc, Storefront_SendMessage_FullMethodName, in, opts)
}

// GetTranscript gamestore.v1.StorefrontService/GetTranscriptを呼び出す
func (c *StorefrontServiceClient) GetTranscript(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*TranscriptResponse, error) {
	return invoke[TranscriptResponse](ctx, c.cc, Storefront_GetTranscript_FullMethodName, in, opts)
}
