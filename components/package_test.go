package components

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageSetPos_AcceptsPlayfieldCoordinates(t *testing.T) {
	var pkg PackageData
	assert.NotPanics(t, func() { pkg.SetPos(230, 152) })
	assert.Equal(t, 230.0, pkg.Pos.X)
	assert.Equal(t, 152.0, pkg.Pos.Y)

	assert.NotPanics(t, func() { pkg.SetPos(0, 0) })
}

func TestPackageSetPos_RejectsCorruptCoordinates(t *testing.T) {
	var pkg PackageData
	pkg.SetPos(100, 100)

	assert.Panics(t, func() { pkg.SetPos(-1, 50) })
	assert.Panics(t, func() { pkg.SetPos(50, -0.5) })
	assert.Panics(t, func() { pkg.SetPos(math.NaN(), 50) })
	assert.Panics(t, func() { pkg.SetPos(50, math.Inf(1)) })

	// The failed calls left the position alone
	assert.Equal(t, 100.0, pkg.Pos.X)
	assert.Equal(t, 100.0, pkg.Pos.Y)
}
