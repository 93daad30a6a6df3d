package apirecordv1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"
	json2 "github.com/go-json-experiment/json"

	"github.com/fulldump/recorddb/service"
	"github.com/fulldump/recorddb/store"
)

// findRecords streams matching records as newline-delimited JSON. Limit
// defaults to 1, like a lookup; pass a negative limit to stream everything.
func findRecords(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

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

	options := &store.FindOptions{
		Limit: 1,
	}
	err = json2.UnmarshalRead(r.Body, options)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}

	return st.Find(options, func(record store.Record) {
		json2.MarshalWrite(w, record)
		w.Write([]byte("\n"))
	})
}
