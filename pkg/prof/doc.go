// Package prof writes CPU and heap profiles of a comi run.
//
// Profiling is compiled in only with the "profile" build tag:
//
//	go build -tags profile ./cmd/comi
//	comi -c -cpuprofile cpu.prof -memprofile heap.prof
//
// Without the tag, Start returns a session that does nothing and logs that
// the requested profiles were not written.
package prof
