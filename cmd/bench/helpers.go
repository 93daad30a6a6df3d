package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"
)

func Parallel(workers int, f func()) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}

func CreateStore(base string) string {

	name := "bench-" + strconv.FormatInt(time.Now().UnixNano(), 10)

	payload, _ := json.Marshal(JSON{"name": name})

	resp, err := http.Post(base+"/v1/stores", "application/json", bytes.NewReader(payload))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	return name
}

func CreateRecord(base, name string, fields JSON) string {

	payload, _ := json.Marshal(fields)

	resp, err := http.Post(base+"/v1/stores/"+name+":createRecord", "application/json", bytes.NewReader(payload))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	record := JSON{}
	json.NewDecoder(resp.Body).Decode(&record)

	id, _ := record["id"].(string)
	return id
}

func GetRecord(base, name, id string) bool {

	payload, _ := json.Marshal(JSON{"id": id})

	resp, err := http.Post(base+"/v1/stores/"+name+":getRecord", "application/json", bytes.NewReader(payload))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
