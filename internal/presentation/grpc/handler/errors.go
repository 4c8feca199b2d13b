package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"game-store/internal/domain/catalog"
	"game-store/internal/domain/promo"
	"game-store/internal/domain/session"
	"game-store/internal/domain/transaction"
	"game-store/internal/domain/wallet"
	"game-store/internal/presentation/grpc/interceptor"
)

// 判定は上から順に行う
var domainCodes = []struct {
	err  error
	code codes.Code
}{
	{wallet.ErrInsufficientFunds, codes.FailedPrecondition},
	{wallet.ErrInvalidAmount, codes.InvalidArgument},
	{wallet.ErrAmountTooLarge, codes.InvalidArgument},
	{wallet.ErrBalanceOutOfRange, codes.OutOfRange},
	{session.ErrAlreadyOwned, codes.AlreadyExists},
	{session.ErrSessionNotFound, codes.Unauthenticated},
	{session.ErrInvalidSessionID, codes.InvalidArgument},
	{promo.ErrPromoNotFound, codes.NotFound},
	{promo.ErrInvalidCode, codes.InvalidArgument},
	{catalog.ErrItemNotFound, codes.NotFound},
	{catalog.ErrInvalidGenre, codes.InvalidArgument},
	{catalog.ErrInvalidPriceBucket, codes.InvalidArgument},
	{transaction.ErrTransactionNotFound, codes.NotFound},
	{transaction.ErrInvalidTransaction, codes.InvalidArgument},
}

// toStatus エラーをgRPCステータスに変換
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	for _, d := range domainCodes {
		if errors.Is(err, d.err) {
			return status.Error(d.code, err.Error())
		}
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Internal, "internal server error")
}

// sessionID 認証済みセッションIDを取得
func sessionID(ctx context.Context) (string, error) {
	id, ok := interceptor.SessionIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing session")
	}
	return id, nil
}
