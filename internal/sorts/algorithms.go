// SPDX-License-Identifier: MIT
package sorts

// quickFrameMin is the partition size above which every partitioning swap
// is rendered.
const quickFrameMin = 12

// stoogeCadence is the number of stoogesort exchanges per frame.
const stoogeCadence = 32

// BubbleSort makes adjacent left-to-right passes until a pass makes no
// exchange, rendering one frame per pass.
func BubbleSort(c *Context) error {
	n := c.Len()
	for {
		swapped := false
		for i := 1; i < n; i++ {
			if c.Array[i-1] > c.Array[i] {
				c.Exchange(i-1, i)
				swapped = true
			}
		}
		if err := c.Frame(); err != nil {
			return err
		}
		if !swapped {
			return nil
		}
	}
}

// OddEvenSort alternates odd and even indexed pair passes until a full cycle
// makes no exchange, rendering one frame per cycle.
func OddEvenSort(c *Context) error {
	for {
		swapped := oddEvenCycle(c, func(v int) int { return v })
		if err := c.Frame(); err != nil {
			return err
		}
		if !swapped {
			return nil
		}
	}
}

// oddEvenCycle runs one odd pass and one even pass comparing key(value).
func oddEvenCycle(c *Context, key func(int) int) bool {
	n := c.Len()
	swapped := false
	for i := 1; i < n-1; i += 2 {
		if key(c.Array[i]) > key(c.Array[i+1]) {
			c.Exchange(i, i+1)
			swapped = true
		}
	}
	for i := 0; i < n-1; i += 2 {
		if key(c.Array[i]) > key(c.Array[i+1]) {
			c.Exchange(i, i+1)
			swapped = true
		}
	}
	return swapped
}

// InsertionSort shifts each element left past greater predecessors,
// rendering one frame per outer position.
func InsertionSort(c *Context) error {
	for i := 1; i < c.Len(); i++ {
		for j := i; j > 0 && c.Array[j-1] > c.Array[j]; j-- {
			c.Exchange(j, j-1)
		}
		if err := c.Frame(); err != nil {
			return err
		}
	}
	return nil
}

// StoogeSort sorts the whole array with stoogesort, rendering one frame
// every 32nd exchange.
func StoogeSort(c *Context) error {
	if c.Len() < 2 {
		return nil
	}
	return stooge(c, 0, c.Len()-1)
}

func stooge(c *Context, i, j int) error {
	if c.Array[i] > c.Array[j] {
		c.Exchange(i, j)
		c.stoogeSwaps++
		if (c.stoogeSwaps-1)%stoogeCadence == 0 {
			if err := c.Frame(); err != nil {
				return err
			}
		}
	}
	if j-i+1 > 2 {
		t := (j - i + 1) / 3
		if err := stooge(c, i, j-t); err != nil {
			return err
		}
		if err := stooge(c, i+t, j); err != nil {
			return err
		}
		return stooge(c, i, j-t)
	}
	return nil
}

// QuickSort partitions around the first element, scanning from the left and
// moving greater elements to the high end. It renders a frame each time a
// pivot is placed, plus one per partitioning swap in partitions larger than
// 12 elements.
func QuickSort(c *Context) error {
	return quick(c, 0, c.Len())
}

// quick sorts the n elements starting at lo.
func quick(c *Context, lo, n int) error {
	if n <= 1 {
		return nil
	}
	high := n
	for i := 1; i < high; {
		if c.Array[lo] < c.Array[lo+i] {
			high--
			c.Exchange(lo+i, lo+high)
			if n > quickFrameMin {
				if err := c.Frame(); err != nil {
					return err
				}
			}
		} else {
			i++
		}
	}
	high--
	c.Exchange(lo, lo+high)
	if err := c.Frame(); err != nil {
		return err
	}
	if err := quick(c, lo, high+1); err != nil {
		return err
	}
	return quick(c, lo+high+1, n-high-1)
}

// RadixLSD returns a least significant digit radix sort in the given base.
// Each digit is ordered with odd-even transposition passes, one frame per
// cycle. It stops at the first digit needing no exchange once every digit of
// the largest value has been processed.
func RadixLSD(base int) func(*Context) error {
	base = max(base, 2)
	return func(c *Context) error {
		divisor := 1
		for {
			div := divisor
			key := func(v int) int { return v / div % base }
			cycles := 0
			for {
				swapped := oddEvenCycle(c, key)
				if err := c.Frame(); err != nil {
					return err
				}
				if !swapped {
					break
				}
				cycles++
			}
			if cycles == 0 && divisor > c.Len()-1 {
				return nil
			}
			divisor *= base
		}
	}
}
