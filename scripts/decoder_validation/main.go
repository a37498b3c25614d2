// Validate decoder throughput - measures decode rate and allocations per decode
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/sarchlab/a64dis/insts"
)

// mix covers every encoding group so the measurement is not dominated by
// one leaf decoder.
var mix = []uint32{
	0x9100A820, // add x0, x1, #0x2a
	0xB1002862, // adds x2, x3, #0xa
	0x8B020020, // add x0, x1, x2
	0xF1001549, // subs x9, x10, #0x5
	0xA9BF7BFD, // stp x29, x30, [sp, #-16]!
	0xF9400420, // ldr x0, [x1, #8]
	0x94000003, // bl
	0x1E222820, // fadd s0, s1, s2
	0x4EA28420, // add v0.4s, v1.4s, v2.4s
	0x4E284820, // aese v0.16b, v1.16b
}

func main() {
	decoder := insts.NewDecoder(insts.WithFields(false))

	// Warm up
	for i := 0; i < 1000; i++ {
		inst, _ := decoder.Decode(mix[i%len(mix)], 0x1000)
		insts.Release(inst)
	}

	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	iterations := 100000
	undecodable := 0

	for i := 0; i < iterations; i++ {
		pc := uint64(0x1000)
		for _, word := range mix {
			inst, err := decoder.Decode(word, pc)
			if err != nil {
				undecodable++
			}
			insts.Release(inst)
			pc += 4
		}
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	totalDecodes := iterations * len(mix)
	allocations := m2.Mallocs - m1.Mallocs
	allocatedBytes := m2.TotalAlloc - m1.TotalAlloc

	fmt.Printf("Decoder Validation Results:\n")
	fmt.Printf("===========================\n")
	fmt.Printf("Total decode operations: %d\n", totalDecodes)
	fmt.Printf("Undecodable words: %d\n", undecodable)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Decodes per second: %.0f\n", float64(totalDecodes)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)
	fmt.Printf("Allocated bytes: %d\n", allocatedBytes)
	fmt.Printf("Allocations per decode: %.3f\n", float64(allocations)/float64(totalDecodes))
	fmt.Printf("Bytes per decode: %.1f\n", float64(allocatedBytes)/float64(totalDecodes))

	if undecodable != 0 {
		fmt.Printf("\nFAIL: %d words of the mix did not decode\n", undecodable/iterations)
	}
}
