package autofill

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Kind names the pattern inferred for a group of suffixes.
type Kind uint8

const (
	// Cyclic repeats the literal suffixes.
	Cyclic Kind = iota
	// Arithmetic adds a constant step.
	Arithmetic
	// Geometric multiplies by a constant ratio.
	Geometric
	// Alphabetic steps through single letters modulo 26.
	Alphabetic
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Arithmetic:
		return "arithmetic"
	case Geometric:
		return "geometric"
	case Alphabetic:
		return "alphabetic"
	default:
		return "cyclic"
	}
}

// series extrapolates one group. at(i) is the suffix at group index i,
// where 0..len(literals)-1 are the samples themselves.
type series struct {
	kind     Kind
	literals []string

	last     float64
	step     float64 // arithmetic step, geometric ratio or letter step
	decimals int

	base rune // 'A' or 'a' for alphabetic series
}

// tolerance is the variance under which a step or ratio counts as constant.
func tolerance(mean float64) float64 {
	return math.Max(math.Abs(mean), 1e-4) * 1e-4
}

// infer picks the pattern for a group of suffixes.
func infer(suffixes []string) series {
	s := series{kind: Cyclic, literals: suffixes}
	if len(suffixes) == 0 {
		return s
	}

	if nums, decimals, ok := parseNumbers(suffixes); ok {
		s.decimals = decimals
		s.last = nums[len(nums)-1]
		if len(nums) == 1 {
			s.kind, s.step = Arithmetic, 1
			return s
		}
		return inferNumeric(s, nums)
	}

	if letters, base, ok := parseLetters(suffixes); ok {
		s.base = base
		s.last = float64(letters[len(letters)-1])
		if len(letters) == 1 {
			s.kind, s.step = Alphabetic, 1
			return s
		}
		step := mod26(letters[1] - letters[0])
		for i := 2; i < len(letters); i++ {
			if mod26(letters[i]-letters[i-1]) != step {
				return s
			}
		}
		s.kind, s.step = Alphabetic, float64(step)
		return s
	}

	return s
}

func inferNumeric(s series, nums []float64) series {
	diffs := make([]float64, 0, len(nums)-1)
	ratios := make([]float64, 0, len(nums)-1)
	zero := false
	for _, v := range nums {
		if v == 0 {
			zero = true
		}
	}
	for i := 1; i < len(nums); i++ {
		diffs = append(diffs, nums[i]-nums[i-1])
		if !zero {
			ratios = append(ratios, nums[i]/nums[i-1])
		}
	}

	meanD, varD := stat.PopMeanVariance(diffs, nil)
	if zero {
		if varD < tolerance(meanD) {
			s.kind, s.step = Arithmetic, meanD
		}
		return s
	}

	meanR, varR := stat.PopMeanVariance(ratios, nil)
	switch {
	case varD <= varR:
		if varD < tolerance(meanD) {
			s.kind, s.step = Arithmetic, meanD
		}
	default:
		if varR < tolerance(meanR) {
			s.kind, s.step = Geometric, meanR
		}
	}
	return s
}

// at returns the suffix at group index i.
func (s series) at(i int) string {
	n := len(s.literals)
	ahead := float64(i - (n - 1))

	switch s.kind {
	case Arithmetic:
		return formatFixed(s.last+ahead*s.step, s.decimals)
	case Geometric:
		return formatTrimmed(s.last * math.Pow(s.step, ahead))
	case Alphabetic:
		v := mod26(int(s.last) + int(ahead)*int(s.step))
		return string(s.base + rune(v))
	default:
		return s.literals[((i%n)+n)%n]
	}
}

func parseNumbers(suffixes []string) ([]float64, int, bool) {
	nums := make([]float64, 0, len(suffixes))
	decimals := 0
	for _, sfx := range suffixes {
		if !decimalPattern.MatchString(sfx) {
			return nil, 0, false
		}
		v, err := strconv.ParseFloat(sfx, 64)
		if err != nil {
			return nil, 0, false
		}
		if dot := strings.IndexByte(sfx, '.'); dot >= 0 {
			decimals = max(decimals, len(sfx)-dot-1)
		}
		nums = append(nums, v)
	}
	return nums, decimals, true
}

// parseLetters accepts single ASCII letters of one case and returns their
// 0-25 values.
func parseLetters(suffixes []string) ([]int, rune, bool) {
	var base rune
	out := make([]int, 0, len(suffixes))
	for _, sfx := range suffixes {
		if len(sfx) != 1 {
			return nil, 0, false
		}
		c := rune(sfx[0])
		var b rune
		switch {
		case c >= 'A' && c <= 'Z':
			b = 'A'
		case c >= 'a' && c <= 'z':
			b = 'a'
		default:
			return nil, 0, false
		}
		if base != 0 && b != base {
			return nil, 0, false
		}
		base = b
		out = append(out, int(c-b))
	}
	return out, base, true
}

func mod26(v int) int {
	return ((v % 26) + 26) % 26
}

func formatFixed(v float64, decimals int) string {
	p := math.Pow(10, float64(decimals))
	v = math.Round(v*p) / p
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func formatTrimmed(v float64) string {
	v = math.Round(v*1e10) / 1e10
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
