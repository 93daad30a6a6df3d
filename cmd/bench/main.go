package main

import (
	"fmt"
	"time"

	"github.com/fulldump/goconfig"
)

type JSON = map[string]any

type config struct {
	Base    string `usage:"base url of a running recorddb"`
	N       int    `usage:"number of records to create"`
	Workers int    `usage:"number of concurrent workers"`
}

func main() {

	c := config{
		Base:    "http://localhost:8080",
		N:       10000,
		Workers: 8,
	}
	goconfig.Read(&c)

	name := CreateStore(c.Base)
	fmt.Println("store:", name)

	ids := make(chan string, c.N)

	t0 := time.Now()
	queue := make(chan int, c.N)
	for i := 0; i < c.N; i++ {
		queue <- i
	}
	close(queue)

	Parallel(c.Workers, func() {
		for i := range queue {
			ids <- CreateRecord(c.Base, name, JSON{
				"name": fmt.Sprintf("record-%d", i),
			})
		}
	})
	createElapsed := time.Since(t0)
	close(ids)

	fmt.Printf("create: %d records in %s (%.0f/s)\n",
		c.N, createElapsed, float64(c.N)/createElapsed.Seconds())

	t0 = time.Now()
	hits := 0
	for id := range ids {
		if GetRecord(c.Base, name, id) {
			hits++
		}
	}
	getElapsed := time.Since(t0)

	fmt.Printf("get: %d hits in %s (%.0f/s)\n",
		hits, getElapsed, float64(c.N)/getElapsed.Seconds())
}
