package pb

import (
	"context"

	"google.golang.org/grpc"
)

// AdminServiceName 管理用gRPCサービス名
const AdminServiceName = "gamestore.v1.AdminService"

// フルメソッド名
const (
	Admin_ListPromoCodes_FullMethodName = "/gamestore.v1.AdminService/ListPromoCodes"
	Admin_CountSessions_FullMethodName  = "/gamestore.v1.AdminService/CountSessions"
)

// AdminServiceServer AdminServiceのサーバー実装
type AdminServiceServer interface {
	ListPromoCodes(context.Context, *Empty) (*PromoCodesResponse, error)
	CountSessions(context.Context, *Empty) (*SessionCountResponse, error)
}

// AdminService_ServiceDesc AdminServiceのサービス定義
var AdminService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AdminServiceName,
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListPromoCodes", Handler: unaryHandler(Admin_ListPromoCodes_FullMethodName, AdminServiceServer.ListPromoCodes)},
		{MethodName: "CountSessions", Handler: unaryHandler(Admin_CountSessions_FullMethodName, AdminServiceServer.CountSessions)},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterAdminServiceServer サーバーを登録
func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	s.RegisterService(&AdminService_ServiceDesc, srv)
}

// AdminServiceClient AdminServiceのクライアント
type AdminServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAdminServiceClient 新しいAdminServiceClientを作成
func NewAdminServiceClient(cc grpc.ClientConnInterface) *AdminServiceClient {
	return &AdminServiceClient{cc: cc}
}

// ListPromoCodes gamestore.v1.AdminService/ListPromoCodesを呼び出す
func (c *AdminServiceClient) ListPromoCodes(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PromoCodesResponse, error) {
	return invoke[PromoCodesResponse](ctx, c.cc, Admin_ListPromoCodes_FullMethodName, in, opts)
}

// CountSessions gamestore.v1.AdminService/CountSessionsを呼び出す
func (c *AdminServiceClient) CountSessions(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*SessionCountResponse, error) {
	return invoke[SessionCountResponse](ctx, c.cc, Admin_CountSessions_FullMethodName, in, opts)
}
