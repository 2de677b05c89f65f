// File: wave/example_test.go
package wave_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/gridset/wave"
)

// ExampleWave_Interpolate blinks a value between two bounds with a square
// wave: low through the first half second, high through the second.
func ExampleWave_Interpolate() {
	blink := wave.NewWave(wave.Square, time.Second, 0)

	for _, elapsed := range []time.Duration{
		0, 250 * time.Millisecond, 500 * time.Millisecond, 750 * time.Millisecond,
	} {
		fmt.Printf("%v -> %.0f\n", elapsed, blink.Interpolate(elapsed, 10, 20))
	}

	// Output:
	// 0s -> 10
	// 250ms -> 10
	// 500ms -> 20
	// 750ms -> 20
}

// ExampleNewPolynomial evaluates 1 + 2t + 3t^2 at t = 2.
func ExampleNewPolynomial() {
	p := wave.NewPolynomial(0, 1, 2, 3)
	fmt.Println(p.Sample(2))

	// Output:
	// 17
}
