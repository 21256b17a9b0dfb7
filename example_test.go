package primego_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/primego"
)

// Example demonstrates the package-level lookup. Ranks are zero-based.
func Example() {
	p, err := primego.NthPrime(0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(p)
	// Output: 2
}

// Example_finder demonstrates a configured Finder.
func Example_finder() {
	ctx := context.Background()

	f := primego.New(
		primego.WithSegmentSize(1 << 16), // smaller sieve passes
	)

	p, err := f.NthPrime(ctx, 9999)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(p)
	// Output: 104729
}

// ExampleFinder_Count demonstrates counting primes below a limit.
func ExampleFinder_Count() {
	ctx := context.Background()
	f := primego.New()

	n, err := f.Count(ctx, 1000)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(n)
	// Output: 168
}

// ExampleFinder_Primes demonstrates materializing a prime set.
func ExampleFinder_Primes() {
	ctx := context.Background()
	f := primego.New()

	primes, err := f.Primes(ctx, 12)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(primes.ToArray())
	// Output: [2 3 5 7 11]
}
