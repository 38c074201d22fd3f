package auth

import "context"

type ctxKey int

const clientCtxKey ctxKey = iota

func NewContextWithClient(baseCtx context.Context, clientID string) context.Context {
	return context.WithValue(baseCtx, clientCtxKey, clientID)
}

func ClientFromContext(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(clientCtxKey).(string)
	return clientID, ok
}
