package apirecordv1

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/recorddb/service"
	"github.com/fulldump/recorddb/store"
)

// createRecord accepts a stream of JSON objects and creates one record per
// object. Creation never fails: missing known fields take their defaults
// and the identifier is generated when absent.
func createRecord(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

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

	jsonReader := json.NewDecoder(r.Body)
	jsonWriter := json.NewEncoder(w)

	for i := 0; true; i++ {
		fields := store.Record{}
		err := jsonReader.Decode(&fields)
		if err == io.EOF {
			if i == 0 {
				w.WriteHeader(http.StatusNoContent)
			}
			return nil
		}
		if err != nil {
			if i == 0 {
				w.WriteHeader(http.StatusBadRequest)
			}
			return err
		}

		record := st.Create(fields)

		if i == 0 {
			w.WriteHeader(http.StatusCreated)
		}
		jsonWriter.Encode(record)
	}

	return nil
}
