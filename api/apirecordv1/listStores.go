package apirecordv1

import (
	"context"

	"github.com/fulldump/recorddb/service"
)

func listStores(ctx context.Context) ([]*service.StoreInfo, error) {

	s := GetServicer(ctx)

	return s.ListStores(), nil
}
