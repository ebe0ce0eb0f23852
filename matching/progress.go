package matching

import "fmt"

// progressBar renders a simple textual progress bar to stdout, the way
// flow.FlowOptions.Verbose logs each augmentation step via fmt.Printf
// rather than a logging library. prev is the previously printed bar count
// (pass -1 before the first call); it is returned so the caller can thread
// it through the loop without redundant writes.
func progressBar(label string, processed, total, prev int) int {
	const bars = 50
	var filled int
	if total != 0 {
		filled = processed * bars / total
	} else {
		filled = bars
	}
	if filled == prev {
		return prev
	}
	bar := make([]byte, bars)
	for i := 0; i < bars; i++ {
		switch {
		case i < filled:
			bar[i] = '='
		case i == filled:
			bar[i] = '>'
		default:
			bar[i] = ' '
		}
	}
	fmt.Printf("\r%s [%s] %d%%", label, string(bar), (100*filled)/bars)
	if filled == bars {
		fmt.Println()
	}
	return filled
}
