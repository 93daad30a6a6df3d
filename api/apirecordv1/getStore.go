package apirecordv1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/recorddb/service"
)

func getStore(ctx context.Context) (*service.StoreInfo, error) {

	s := GetServicer(ctx)

	storeName := box.GetUrlParameter(ctx, "storeName")

	result, err := s.GetStore(storeName)
	if err == service.ErrorStoreNotFound {
		box.GetResponse(ctx).WriteHeader(http.StatusNotFound)
		return nil, err
	}

	return service.NewStoreInfo(storeName, result), nil
}
