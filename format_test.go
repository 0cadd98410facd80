package exactnum

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestComplexString(t *testing.T) {
	tests := []struct {
		z    Complex
		want string
	}{
		{ComplexFromRationals(q(1, 2), q(-3, 4)), "(1/2) - (3/4)i"},
		{ComplexFromRationals(q(1, 2), q(3, 4)), "(1/2) + (3/4)i"},
		{ci(5, 0), "5"},
		{ComplexFromRationals(q(-5, 3), q(0, 1)), "-5/3"},
		{ComplexFromRationals(q(0, 1), q(-3, 4)), "-3/4i"},
		{ci(0, 1), "1i"},
		{ci(1, 2), "1 + 2i"},
		{ci(1, -2), "1 - 2i"},
		{ComplexFromRationals(q(3, 2), q(2, 1)), "(3/2) + 2i"},
		{ComplexFromRationals(q(-3, 1), q(-1, 7)), "-3 - (1/7)i"},
		{Complex{}, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.z.String())
		assert.Equal(t, tt.want, fmt.Sprint(tt.z))
	}
}

var formCases = []struct {
	z      Complex
	digits int
}{
	{ci(1, 1), 3},
	{ci(1, 2), 4},
	{ci(3, 0), 2},
	{ci(0, -5), 2},
	{ci(-1, 0), 2},
	{ComplexFromRationals(q(1, 2), q(1, 2)), 5},
	{ci(-3, -4), 3},
	// moduli exactly on a rounding tie: 2.5 and 0.25
	{ComplexFromRationals(q(3, 2), q(2, 1)), 0},
	{ComplexFromRationals(q(3, 20), q(1, 5)), 1},
}

func renderForms(form func(Complex, int) string) []byte {
	var b strings.Builder
	for _, c := range formCases {
		fmt.Fprintf(&b, "%s | %d | %s\n", c.z, c.digits, form(c.z, c.digits))
	}
	return []byte(b.String())
}

func TestTrigFormGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "trig_form", renderForms(Complex.TrigForm))
}

func TestExpFormGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "exp_form", renderForms(Complex.ExpForm))
}

func TestForms(t *testing.T) {
	assert.Equal(t, "1.414*(cos(0.785) + isin(0.785))", ci(1, 1).TrigForm(3))
	assert.Equal(t, "2.2361*(cos(1.1071) + isin(1.1071))", ci(1, 2).TrigForm(4))
	assert.Equal(t, "3*(cos(0.0) + isin(0.0))", ci(3, 0).TrigForm(2))
	assert.Equal(t, "1.414*exp(0.785i)", ci(1, 1).ExpForm(3))
	assert.Equal(t, "2.2361*exp(1.1071i)", ci(1, 2).ExpForm(4))
	assert.Equal(t, "5*exp(-1.57i)", ci(0, -5).ExpForm(2))
}

func TestFormsRoundTiesToEven(t *testing.T) {
	assert.Equal(t, "2.0*(cos(1.0) + isin(1.0))", ComplexFromRationals(q(3, 2), q(2, 1)).TrigForm(0))
	assert.Equal(t, "0.2*exp(0.9i)", ComplexFromRationals(q(3, 20), q(1, 5)).ExpForm(1))
	assert.Equal(t, "0.8*exp(0.0i)", ComplexFromRationals(q(3, 4), q(0, 1)).ExpForm(1))
}

func TestAbsArgString(t *testing.T) {
	assert.Equal(t, "5", ci(3, 4).AbsString(4))
	assert.Equal(t, "0.9273", ci(3, 4).ArgString(4))
	assert.Equal(t, "1.41", ci(1, 1).AbsString(2))
	assert.Equal(t, "0.0", Complex{}.ArgString(3))
	assert.Equal(t, "0", Complex{}.AbsString(3))
}
