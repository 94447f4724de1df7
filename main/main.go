package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/asbytes"
)

func main() {
	addr := flag.String("pprof", "localhost:6060", "pprof listen address")
	wait := flag.Duration("wait", 0, "keep the pprof server up after profiling")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe(*addr, nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	type NewStruct struct {
		Mod      int8
		Integers [4]int16
		Float3   float32
		Float6   float64
	}
	z := NewStruct{Mod: 12, Integers: [4]int16{100, 250, 300, 1}, Float3: 12.13, Float6: 100.5}
	floats := make([]float64, 4096)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	var n int
	for i := 0; i < 10000; i++ {
		n += asbytes.Of(&z).Len()
		b := asbytes.MutOf(&floats)
		b[i%len(b)]++
	}
	runtime.ReadMemStats(&after)
	log.Printf("viewed %d bytes, %d mallocs", n, after.Mallocs-before.Mallocs)

	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal(err)
	}
	time.Sleep(*wait)
}
