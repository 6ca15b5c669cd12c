package testcase

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaih/go-polyroots/primitives/lagrange"
)

func TestLoad(t *testing.T) {
	doc, err := Load("testdata/testcase1.json")
	require.NoError(t, err)
	assert.Equal(t, Keys{N: 4, K: 3}, doc.Keys)
	require.Len(t, doc.Points, 4)
	assert.Equal(t, Point{X: 6, Base: "4", Value: "213"}, doc.Points[3])

	samples, err := doc.Samples()
	require.NoError(t, err)
	assert.Equal(t, []lagrange.Sample{{X: 1, Y: 4}, {X: 2, Y: 7}, {X: 3, Y: 12}}, samples)

	_, err = Load("testdata/missing.json")
	assert.Error(t, err)
}

func TestDecodeNumericOrder(t *testing.T) {
	// "10" sorts before "9" as a string but not as a number
	doc, err := Decode(strings.NewReader(`{
		"keys": {"n": 3, "k": 2},
		"10": {"base": "16", "value": "ff"},
		"9": {"base": "36", "value": "Z"},
		"11": {"base": "10", "value": "1"}
	}`))
	require.NoError(t, err)

	samples, err := doc.Samples()
	require.NoError(t, err)
	assert.Equal(t, []lagrange.Sample{{X: 9, Y: 35}, {X: 10, Y: 255}}, samples)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"1": {"base": "10", "value": "4"}}`))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`{"keys": {"n": 1, "k": 1}, "one": {"base": "10", "value": "4"}}`))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`not json`))
	assert.Error(t, err)

	doc, err := Decode(strings.NewReader(`{"keys": {"n": 1, "k": 2}, "1": {"base": "10", "value": "4"}}`))
	require.NoError(t, err)
	_, err = doc.Samples()
	assert.Error(t, err)

	doc.Keys.K = 0
	_, err = doc.Samples()
	assert.Error(t, err)
}

func TestPointDecode(t *testing.T) {
	y, err := Point{X: 1, Base: "2", Value: "111"}.Decode()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(7), y)

	y, err = Point{X: 1, Base: "36", Value: "Zz"}.Decode()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(35*36+35), y)

	want, _ := new(big.Int).SetString("21394886326566393", 10)
	y, err = Point{X: 1, Base: "15", Value: "aed7015a346d63"}.Decode()
	require.NoError(t, err)
	assert.Equal(t, 0, want.Cmp(y), "got %v", y)

	var baseErr *InvalidBaseError
	for _, base := range []string{"1", "37", "ten", ""} {
		_, err = Point{X: 3, Base: base, Value: "1"}.Decode()
		assert.ErrorAs(t, err, &baseErr, "base %q", base)
	}

	var decErr *DecodeError
	_, err = Point{X: 3, Base: "8", Value: "178"}.Decode()
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, 2, decErr.Pos)
	assert.Contains(t, decErr.Error(), "'8'")

	_, err = Point{X: 3, Base: "10", Value: "-5"}.Decode()
	assert.ErrorAs(t, err, &decErr)

	_, err = Point{X: 3, Base: "10", Value: ""}.Decode()
	assert.ErrorAs(t, err, &decErr)
}
