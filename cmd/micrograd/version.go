package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "micrograd %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)

	cpu := cpuid.CPU
	fmt.Fprintf(w, "cpu: %s (%d physical, %d logical cores)\n", cpu.BrandName, cpu.PhysicalCores, cpu.LogicalCores)

	var simd []string
	for _, f := range []cpuid.FeatureID{cpuid.SSE4, cpuid.AVX, cpuid.AVX2, cpuid.FMA3, cpuid.AVX512F, cpuid.ASIMD} {
		if cpu.Supports(f) {
			simd = append(simd, f.String())
		}
	}
	if len(simd) == 0 {
		simd = []string{"none"}
	}
	fmt.Fprintf(w, "simd: %s\n", strings.Join(simd, " "))
}
