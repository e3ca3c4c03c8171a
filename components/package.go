package components

import (
	"fmt"
	"math"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"

	cfg "github.com/100584680-cell/Final-project-Mario-game-and-watch/config"
)

// PackageData is one parcel riding the belts.
type PackageData struct {
	Pos    dmath.Vec2
	State  cfg.PackageStateID
	Dir    cfg.DirectionID
	Caught bool           // a character is positioned to receive it this frame
	Holder *donburi.Entry // the catching character, nil when uncaught
	Aux    int            // frame counter driving the movement cadence
}

// SetPos moves the package. Coordinates are never negative while a package
// is alive; a negative or non-finite value means the simulation corrupted
// its state, so fail loudly instead of carrying it.
func (p *PackageData) SetPos(x, y float64) {
	if x < 0 || y < 0 || math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		panic(fmt.Sprintf("package position out of range: (%v, %v)", x, y))
	}
	p.Pos.X = x
	p.Pos.Y = y
}

var Package = donburi.NewComponentType[PackageData]()
