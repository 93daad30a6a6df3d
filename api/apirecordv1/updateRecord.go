package apirecordv1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	json2 "github.com/go-json-experiment/json"

	"github.com/fulldump/recorddb/service"
	"github.com/fulldump/recorddb/store"
)

type updateRecordRequest struct {
	ID     any          `json:"id"`
	Fields store.Record `json:"fields"`
}

// updateRecord merges fields into the record matching id, field by field.
// The identifier field is not protected: patching it changes which id the
// record answers to from now on.
func updateRecord(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

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

	input := &updateRecordRequest{}
	err = json2.UnmarshalRead(r.Body, input)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}

	record, err := st.Update(input.ID, input.Fields)
	if err == store.ErrRecordNotFound {
		w.WriteHeader(http.StatusNotFound)
		return err
	}

	return json2.MarshalWrite(w, record)
}
