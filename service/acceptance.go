package service

import (
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance exercises the whole record API through HTTP. It is shared by
// the api acceptance test and by any alternative transport build.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Create store", func(a *biff.A) {
		resp := apiRequest("POST", "/stores").
			WithBodyJson(JSON{
				"name": "users",
				"defaults": JSON{
					"name":  "Unknown",
					"email": "",
				},
			}).Do()
		Save(resp, "Create store", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		expectedBody := JSON{
			"name":     "users",
			"kind":     "users",
			"id_field": "id",
			"total":    0,
			"defaults": JSON{
				"name":  "Unknown",
				"email": "",
			},
		}
		biff.AssertEqualJson(resp.BodyJson(), expectedBody)

		a.Alternative("Retrieve store", func(a *biff.A) {
			resp := apiRequest("GET", "/stores/users").Do()
			Save(resp, "Retrieve store", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), expectedBody)
		})

		a.Alternative("List stores", func(a *biff.A) {
			resp := apiRequest("GET", "/stores").Do()
			Save(resp, "List stores", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{expectedBody})
		})

		a.Alternative("Create store again", func(a *biff.A) {
			resp := apiRequest("POST", "/stores").
				WithBodyJson(JSON{
					"name": "users",
				}).Do()
			Save(resp, "Create store - conflict", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusConflict)
		})

		a.Alternative("Create record with defaults", func(a *biff.A) {
			resp := apiRequest("POST", "/stores/users:createRecord").
				WithBodyJson(JSON{}).Do()
			Save(resp, "Create record", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)

			record := resp.BodyJsonMap()
			biff.AssertEqual(record["name"], "Unknown")
			biff.AssertEqual(record["email"], "")

			id, isString := record["id"].(string)
			biff.AssertTrue(isString)
			biff.AssertEqual(len(id), 9)

			a.Alternative("Get record", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/users:getRecord").
					WithBodyJson(JSON{"id": id}).Do()
				Save(resp, "Get record", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), record)
			})

			a.Alternative("Fetch record behaves like get", func(a *biff.A) {
				getResp := apiRequest("POST", "/stores/users:getRecord").
					WithBodyJson(JSON{"id": id}).Do()
				fetchResp := apiRequest("POST", "/stores/users:fetchRecord").
					WithBodyJson(JSON{"id": id}).Do()
				Save(fetchResp, "Fetch record", ``)

				biff.AssertEqual(fetchResp.StatusCode, getResp.StatusCode)
				biff.AssertEqualJson(fetchResp.BodyJson(), getResp.BodyJson())
			})

			a.Alternative("Update record", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/users:updateRecord").
					WithBodyJson(JSON{
						"id":     id,
						"fields": JSON{"name": "Bob"},
					}).Do()
				Save(resp, "Update record", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)

				updated := resp.BodyJsonMap()
				biff.AssertEqual(updated["name"], "Bob")
				biff.AssertEqual(updated["email"], "")
				biff.AssertEqual(updated["id"], id)

				a.Alternative("Get reflects the update", func(a *biff.A) {
					resp := apiRequest("POST", "/stores/users:getRecord").
						WithBodyJson(JSON{"id": id}).Do()

					biff.AssertEqualJson(resp.BodyJson(), updated)
				})
			})

			a.Alternative("Update record identifier", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/users:updateRecord").
					WithBodyJson(JSON{
						"id":     id,
						"fields": JSON{"id": "changed-id"},
					}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)

				a.Alternative("Old identifier stops matching", func(a *biff.A) {
					resp := apiRequest("POST", "/stores/users:getRecord").
						WithBodyJson(JSON{"id": id}).Do()

					biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
				})

				a.Alternative("New identifier matches", func(a *biff.A) {
					resp := apiRequest("POST", "/stores/users:getRecord").
						WithBodyJson(JSON{"id": "changed-id"}).Do()

					biff.AssertEqual(resp.StatusCode, http.StatusOK)
				})
			})

			a.Alternative("Update missing record", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/users:updateRecord").
					WithBodyJson(JSON{
						"id":     "does-not-exist",
						"fields": JSON{"name": "Bob"},
					}).Do()
				Save(resp, "Update record - not found", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)

				a.Alternative("Store is untouched", func(a *biff.A) {
					resp := apiRequest("POST", "/stores/users:size").
						WithBodyJson(JSON{}).Do()

					biff.AssertEqualJson(resp.BodyJson(), JSON{"total": 1})
				})
			})
		})

		a.Alternative("Create record with explicit fields", func(a *biff.A) {
			resp := apiRequest("POST", "/stores/users:createRecord").
				WithBodyJson(JSON{
					"name":    "Alice",
					"company": "ACME", // arbitrary extra field
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)

			record := resp.BodyJsonMap()
			biff.AssertEqual(record["name"], "Alice")
			biff.AssertEqual(record["email"], "")
			biff.AssertEqual(record["company"], "ACME")
		})

		a.Alternative("Create records with duplicated identifier", func(a *biff.A) {
			apiRequest("POST", "/stores/users:createRecord").
				WithBodyJson(JSON{"id": "dup", "name": "First"}).Do()
			apiRequest("POST", "/stores/users:createRecord").
				WithBodyJson(JSON{"id": "dup", "name": "Second"}).Do()

			resp := apiRequest("POST", "/stores/users:getRecord").
				WithBodyJson(JSON{"id": "dup"}).Do()

			// First match (insertion order) wins
			record := resp.BodyJsonMap()
			biff.AssertEqual(record["name"], "First")

			sizeResp := apiRequest("POST", "/stores/users:size").
				WithBodyJson(JSON{}).Do()
			biff.AssertEqualJson(sizeResp.BodyJson(), JSON{"total": 2})
		})

		a.Alternative("Get missing record", func(a *biff.A) {
			resp := apiRequest("POST", "/stores/users:getRecord").
				WithBodyJson(JSON{"id": "nope"}).Do()
			Save(resp, "Get record - not found", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Find records", func(a *biff.A) {
			apiRequest("POST", "/stores/users:createRecord").
				WithBodyJson(JSON{"name": "Alice"}).Do()
			apiRequest("POST", "/stores/users:createRecord").
				WithBodyJson(JSON{"name": "Bob"}).Do()
			apiRequest("POST", "/stores/users:createRecord").
				WithBodyJson(JSON{"name": "Alice"}).Do()

			resp := apiRequest("POST", "/stores/users:findRecords").
				WithBodyJson(JSON{
					"filter": JSON{"name": "Alice"},
					"limit":  -1,
				}).Do()
			Save(resp, "Find records", ``)

			lines := strings.Split(strings.TrimSpace(resp.BodyString()), "\n")
			biff.AssertEqual(len(lines), 2)
		})

		a.Alternative("Set defaults", func(a *biff.A) {
			resp := apiRequest("POST", "/stores/users:setDefaults").
				WithBodyJson(JSON{
					"country": "ES",
					"email":   nil,
				}).Do()
			Save(resp, "Set defaults", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			record := apiRequest("POST", "/stores/users:createRecord").
				WithBodyJson(JSON{}).Do().BodyJsonMap()

			biff.AssertEqual(record["country"], "ES")
			biff.AssertEqual(record["name"], "Unknown")
			_, hasEmail := record["email"]
			biff.AssertFalse(hasEmail)
		})

		a.Alternative("Drop store", func(a *biff.A) {
			resp := apiRequest("POST", "/stores/users:dropStore").Do()
			Save(resp, "Drop store", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			a.Alternative("Get dropped store", func(a *biff.A) {
				resp := apiRequest("GET", "/stores/users").Do()
				Save(resp, "Get store - not found", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})
		})
	})

	a.Alternative("Get missing store", func(a *biff.A) {
		resp := apiRequest("GET", "/stores/missing").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})
}
