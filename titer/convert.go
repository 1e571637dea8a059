package titer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Convert turns a raw titer string into an integer. A paired value "t1/t2"
// becomes the integer geometric mean of the converted halves; "<x" becomes
// x/2 and ">x" becomes 2x, so a thresholded measurement is pushed one
// dilution step past its threshold. A thresholded or paired value that
// converts to zero is an error; a plain "0" is left to the caller to
// reject.
func Convert(titer string) (int, error) {
	if strings.Contains(titer, "/") {
		parts := strings.Split(titer, "/")

		v1, err := Convert(parts[0])
		if err != nil {
			return 0, err
		}
		v2, err := Convert(parts[1])
		if err != nil {
			return 0, err
		}
		if v1 == 0 || v2 == 0 {
			return 0, fmt.Errorf("%w: %q", ErrZeroTiter, titer)
		}
		return int(math.Sqrt(float64(v1) * float64(v2))), nil
	}

	if strings.Contains(titer, "<") {
		f, err := strconv.ParseFloat(titer[1:], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, titer)
		}
		v := int(f / 2)
		if v == 0 {
			return 0, fmt.Errorf("%w: %q", ErrZeroTiter, titer)
		}
		return v, nil
	}

	if strings.Contains(titer, ">") {
		f, err := strconv.ParseFloat(titer[1:], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, titer)
		}
		v := int(f * 2)
		if v == 0 {
			return 0, fmt.Errorf("%w: %q", ErrZeroTiter, titer)
		}
		return v, nil
	}

	f, err := strconv.ParseFloat(titer, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, titer)
	}
	return int(f), nil
}
