package apirecordv1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/recorddb/service"
)

func BuildV1Record(v1 *box.R, s service.Servicer) *box.R {

	stores := v1.Resource("/stores").
		WithActions(
			box.Get(listStores),
			box.Post(createStore),
		)

	v1.Resource("/stores/{storeName}").
		WithActions(
			box.Get(getStore),
			box.ActionPost(createRecord),
			box.ActionPost(getRecord),
			box.ActionPost(fetchRecord),
			box.ActionPost(updateRecord),
			box.ActionPost(findRecords),
			box.ActionPost(setDefaults),
			box.ActionPost(dropStore),
			box.ActionPost(size),
		)

	return stores
}
