package apirecordv1

import (
	"context"
	"net/http"

	"github.com/fulldump/recorddb/service"
	"github.com/fulldump/recorddb/store"
)

type createStoreRequest struct {
	Name     string         `json:"name"`
	IDField  string         `json:"id_field"`
	Defaults map[string]any `json:"defaults"`
}

func createStore(ctx context.Context, w http.ResponseWriter, input *createStoreRequest) (*service.StoreInfo, error) {

	s := GetServicer(ctx)

	result, err := s.CreateStore(input.Name, &store.Options{
		Kind:     input.Name,
		IDField:  input.IDField,
		Defaults: input.Defaults,
	})
	if err == service.ErrorStoreAlreadyExists {
		w.WriteHeader(http.StatusConflict)
		return nil, err
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return service.NewStoreInfo(input.Name, result), nil
}
