// SPDX-License-Identifier: MIT
package sorts

import (
	"strconv"
	"strings"
)

// ID identifies an algorithm. Zero is the no-op sort.
type ID int

const (
	Null ID = iota
	Bubble
	OddEven
	Insertion
	Stooge
	Quick
	Radix8LSD

	idCount
)

// Algorithm is a named, instrumented sort.
type Algorithm struct {
	ID   ID
	Name string
	Run  func(*Context) error
}

var registry = [idCount]Algorithm{
	Null:      {Null, "", func(*Context) error { return nil }},
	Bubble:    {Bubble, "Bubble", BubbleSort},
	OddEven:   {OddEven, "Odd-even", OddEvenSort},
	Insertion: {Insertion, "Insertion", InsertionSort},
	Stooge:    {Stooge, "Stoogesort", StoogeSort},
	Quick:     {Quick, "Quicksort", QuickSort},
	Radix8LSD: {Radix8LSD, "Radix LSD (base 8)", RadixLSD(8)},
}

// Lookup returns the algorithm for id. Unknown ids map to the no-op sort and
// ok is false.
func Lookup(id ID) (alg Algorithm, ok bool) {
	if id <= Null || id >= idCount {
		return registry[Null], false
	}
	return registry[id], true
}

// All returns every real algorithm in id order.
func All() []Algorithm {
	algs := make([]Algorithm, 0, idCount-1)
	for id := Null + 1; id < idCount; id++ {
		algs = append(algs, registry[id])
	}
	return algs
}

// Parse resolves a numeric id or a case-insensitive name ("bubble",
// "radix lsd (base 8)", or the short aliases "stooge", "quick", "radix").
func Parse(s string) (ID, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		_, ok := Lookup(ID(n))
		return ID(n), ok
	}
	key := strings.ToLower(s)
	switch key {
	case "stooge":
		return Stooge, true
	case "quick":
		return Quick, true
	case "radix", "radix8":
		return Radix8LSD, true
	case "oddeven", "odd_even":
		return OddEven, true
	}
	for _, alg := range All() {
		if strings.ToLower(alg.Name) == key {
			return alg.ID, true
		}
	}
	return Null, false
}

// Run sets the overlay message, runs the algorithm and renders one closing
// frame. The no-op sort clears the message.
func Run(c *Context, alg Algorithm) error {
	c.Message = alg.Name
	if err := alg.Run(c); err != nil {
		return err
	}
	return c.Frame()
}
