package apirecordv1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/recorddb/service"
	"github.com/fulldump/recorddb/utils"
)

// setDefaults merges the request body into the store's default-field table.
// A null value removes the default for that field.
func setDefaults(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

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

	// work on a copy to avoid mutating the table on a malformed body
	defaults := map[string]any{}
	err = utils.Remarshal(st.Defaults, &defaults)
	if err != nil {
		return err
	}

	err = json.NewDecoder(r.Body).Decode(&defaults)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}

	for k, v := range defaults {
		if v == nil {
			delete(defaults, k)
		}
	}

	if len(defaults) == 0 {
		defaults = nil
	}

	st.SetDefaults(defaults)

	return json.NewEncoder(w).Encode(st.Defaults)
}
