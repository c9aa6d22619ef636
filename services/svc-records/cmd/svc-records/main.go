package main

import "github.com/architeacher/filtersort/services/svc-records/internal/runtime"

func main() {
	runtime.New().Run()
}
