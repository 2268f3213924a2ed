package numfmt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"outlet_margin/pkg/numfmt"
)

func TestDisplay(t *testing.T) {
	testCases := []struct {
		name  string
		value *float64
		want  string
	}{
		{name: "missing value", value: nil, want: "-"},
		{name: "zero is a value", value: fptr(0), want: "0"},
		{name: "groups thousands", value: fptr(1_290_000), want: "1,290,000"},
		{name: "rounds to integer", value: fptr(135_000.9), want: "135,001"},
		{name: "negative margin", value: fptr(-15_360), want: "-15,360"},
		{name: "NaN renders as missing", value: fptr(math.NaN()), want: "-"},
		{name: "Inf renders as missing", value: fptr(math.Inf(1)), want: "-"},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, numfmt.Display(tc.value))
		})
	}
}

func TestDisplayWon(t *testing.T) {
	rq := require.New(t)

	rq.Equal("72,000원", numfmt.DisplayWon(fptr(72_000)))
	rq.Equal("-", numfmt.DisplayWon(nil))
}

func TestGroupDigits(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain digits", raw: "1290000", want: "1,290,000"},
		{name: "already grouped", raw: "1,290,000", want: "1,290,000"},
		{name: "mixed with currency text", raw: "1,290,000원", want: "1,290,000"},
		{name: "no digits", raw: "abc", want: ""},
		{name: "empty stays empty", raw: "", want: ""},
		{name: "single digit", raw: "7", want: "7"},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got := numfmt.GroupDigits(tc.raw)
			rq.Equal(tc.want, got)

			// Повторная группировка уже сгруппированного текста стабильна.
			rq.Equal(got, numfmt.GroupDigits(got))
		})
	}
}

func TestParseAmount(t *testing.T) {
	rq := require.New(t)

	got := numfmt.ParseAmount("1,290,000원")
	rq.NotNil(got)
	rq.EqualValues(1_290_000, *got)

	// Ноль — это значение, отсутствие цифр — отсутствие значения.
	got = numfmt.ParseAmount("0")
	rq.NotNil(got)
	rq.EqualValues(0, *got)

	rq.Nil(numfmt.ParseAmount(""))
	rq.Nil(numfmt.ParseAmount("free shipping"))
	rq.Nil(numfmt.ParseAmount("99999999999999999999"))
}

func TestParseAmountGroupDigitsRoundtrip(t *testing.T) {
	rq := require.New(t)

	for _, raw := range []string{"100000", "1,290,000", "65,000원", "7"} {
		direct := numfmt.ParseAmount(raw)
		viaGroup := numfmt.ParseAmount(numfmt.GroupDigits(raw))

		rq.NotNil(direct)
		rq.NotNil(viaGroup)
		rq.Equal(*direct, *viaGroup)
	}
}

func fptr(v float64) *float64 {
	return &v
}
