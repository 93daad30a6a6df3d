package apirecordv1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	json2 "github.com/go-json-experiment/json"

	"github.com/fulldump/recorddb/service"
	"github.com/fulldump/recorddb/store"
)

type recordIDRequest struct {
	ID any `json:"id"`
}

func getRecord(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	s := GetServicer(ctx)
	storeName := box.GetUrlParameter(ctx, "storeName")
	st, err := s.GetStore(storeName)
	if err == service.ErrorStoreNotFound {
		w.WriteHeader(http.StatusNotFound)
		return err
	}
	if err != nil {
		return err
	}

	input := &recordIDRequest{}
	err = json2.UnmarshalRead(r.Body, input)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}

	record, err := st.Get(input.ID)
	if err == store.ErrRecordNotFound {
		w.WriteHeader(http.StatusNotFound)
		return err
	}

	return json2.MarshalWrite(w, record)
}
