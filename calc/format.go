package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kbukum/streamcalc/errors"
)

// SummaryHeader is the first line printed by the summary command.
const SummaryHeader = "size\tmin\tmean\tmedian\tmax\tvar\tstd_dev"

// FormatNumber renders x. With precision <= 0 it prints the shortest
// representation that parses back to x, in plain notation for
// 1e-4 <= |x| < 1e16 and exponent notation otherwise. A positive precision
// prints that many significant digits.
func FormatNumber(x float64, precision int) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	if precision > 0 {
		return strconv.FormatFloat(x, 'g', precision, 64)
	}
	if abs := math.Abs(x); x == 0 || (abs >= 1e-4 && abs < 1e16) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// NumberFormatter renders Scalar and MeanVar results.
func NumberFormatter(precision int) Formatter {
	return func(r Result) (string, error) {
		switch v := r.(type) {
		case Scalar:
			return FormatNumber(float64(v), precision), nil
		case MeanVar:
			return "(" + FormatNumber(v.Mean, precision) + ", " + FormatNumber(v.Var, precision) + ")", nil
		default:
			return "", unexpected("number", r)
		}
	}
}

// HistogramFormatter draws one bar per bin, scaled down so that the widest
// row fits in maxWidth columns.
func HistogramFormatter(maxWidth int, tick string) Formatter {
	return func(r Result) (string, error) {
		h, ok := r.(Histogram)
		if !ok {
			return "", unexpected("histogram", r)
		}
		if err := h.Validate(); err != nil {
			return "", err
		}
		return renderHistogram(h, maxWidth, tick), nil
	}
}

func renderHistogram(h Histogram, maxWidth int, tick string) string {
	labels := make([]string, len(h.Edges))
	width := 0
	for i, e := range h.Edges {
		labels[i] = fmt.Sprintf("%.2g", e)
		width = max(width, len(labels[i]))
	}
	for i, l := range labels {
		labels[i] = strings.Repeat(" ", width-len(l)) + l
	}

	bars := append([]int(nil), h.Counts...)
	top := 0
	for _, c := range bars {
		top = max(top, c)
	}
	if top+5+2*width > maxWidth {
		avail := max(maxWidth-5-2*width, 0)
		for i, c := range bars {
			if top > 0 {
				bars[i] = avail * c / top
			}
		}
	}

	var b strings.Builder
	last := len(bars) - 1
	for i, n := range bars {
		closing := ")"
		if i == last {
			closing = "]"
		}
		fmt.Fprintf(&b, "[%s,%s%s: %s", labels[i], labels[i+1], closing, strings.Repeat(tick, n))
		if i != last {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// SummaryFormatter prints the header line followed by the tab-separated
// row. Everything but size is rounded to two decimals.
func SummaryFormatter() Formatter {
	return func(r Result) (string, error) {
		s, ok := r.(Summary)
		if !ok {
			return "", unexpected("summary", r)
		}
		fields := []string{
			strconv.Itoa(s.Size),
			round2(s.Min),
			round2(s.Mean),
			round2(s.Median),
			round2(s.Max),
			round2(s.Var),
			round2(s.StdDev),
		}
		return SummaryHeader + "\n" + strings.Join(fields, "\t"), nil
	}
}

func round2(x float64) string {
	return FormatNumber(math.Round(x*100)/100, 0)
}

func unexpected(formatter string, r Result) error {
	return errors.Internal(fmt.Errorf("%s formatter cannot render %T", formatter, r))
}
