package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/fulldump/apitest"
)

// Save generates a markdown request/response example from an acceptance
// response. It only writes when API_EXAMPLES_PATH is set, so normal test
// runs are unaffected.
func Save(response *apitest.Response, title, description string) {

	examplesPath := os.Getenv("API_EXAMPLES_PATH")
	if examplesPath == "" {
		return
	}

	request := response.Request

	s := "# " + title + "\n"
	if description != "" {
		s += description + "\n"
	}

	query := request.URL.RawQuery
	if query != "" {
		query = "?" + query
	}

	s += "\n```http\n"

	// Request
	s += request.Method + " " + request.URL.Path + query + " " + request.Proto + "\n"
	s += "Host: example.com\n\n"
	requestBody := formatJSON(response.BodyRequestString())
	if requestBody != "" {
		s += requestBody + "\n\n"
	}

	// Response
	s += response.Proto + " " + response.Status + "\n"

	headerKeys := []string{}
	for k := range response.Header {
		headerKeys = append(headerKeys, k)
	}
	sort.Strings(headerKeys)
	for _, k := range headerKeys {
		if k == "Date" {
			continue // not reproducible
		}
		for _, v := range response.Header[k] {
			s += k + ": " + v + "\n"
		}
	}
	s += "\n"

	s += formatJSON(response.BodyString()) + "\n"

	s += "```\n"

	filename := strings.Replace(strings.ToLower(title), " ", "_", -1) + ".md"
	p := path.Join(examplesPath, path.Clean(filename))
	err := os.WriteFile(p, []byte(s), 0666)
	if err != nil {
		fmt.Println("Saving err:", err)
	}
}

func formatJSON(body string) string {

	var i interface{}

	err := json.Unmarshal([]byte(body), &i)
	if err != nil {
		return body
	}

	b, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		return body
	}

	return string(b)
}
