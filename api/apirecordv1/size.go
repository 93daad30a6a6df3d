package apirecordv1

import (
	"context"

	"github.com/fulldump/box"
)

func size(ctx context.Context) (interface{}, error) {

	s := GetServicer(ctx)
	storeName := box.GetUrlParameter(ctx, "storeName")
	st, err := s.GetStore(storeName)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"total": st.Len(),
	}, nil
}
