package apirecordv1

import (
	"context"

	"github.com/fulldump/recorddb/service"
)

const ContextServicerKey = "a2c4f9a8-7c2b-11ee-b8a4-cb7d0a5b1f3e"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer)
}
