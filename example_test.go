package proptest_test

import (
	"errors"
	"fmt"

	"github.com/toejough/proptest"
)

// ExampleForAll shows a falsified property shrinking to the minimal
// counterexample: the failing value closest to zero.
func ExampleForAll() {
	outcome := proptest.ForAll(proptest.Config{Seed: 1},
		proptest.IntRange(-100, 100),
		func(x int) error {
			if x < 0 {
				return errors.New("negative")
			}

			return nil
		})

	fmt.Println(outcome.Status)
	fmt.Println(outcome.Shrunk[0])
	// Output:
	// falsified
	// -1
}

// ExampleForAll2 shows a passing two-argument property.
func ExampleForAll2() {
	outcome := proptest.ForAll2(proptest.Config{Seed: 1},
		proptest.IntRange(1, 100),
		proptest.IntRange(1, 100),
		func(a, b int) error {
			if a+b < 2 {
				return fmt.Errorf("%d + %d < 2", a, b)
			}

			return nil
		})

	fmt.Println(outcome.Status)
	fmt.Println(outcome.Trials)
	// Output:
	// passed
	// 100
}
