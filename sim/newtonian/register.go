package newtonian

import (
	"github.com/dynamd/dynamd/sim"
	"github.com/dynamd/dynamd/sim/vecmath"
)

func init() {
	sim.NewLiouvilleanFunc = func(gravity [3]float64) sim.Liouvillean {
		return New(vecmath.Vec3{X: gravity[0], Y: gravity[1], Z: gravity[2]})
	}
}
