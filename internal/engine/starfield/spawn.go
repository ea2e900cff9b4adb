package starfield

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// NewPointCloud scatters StarCount stars uniformly in a cube of edge Spread
// centred on the origin. A nil rng uses a time-independent default seed.
func NewPointCloud(rng *rand.Rand) *PointCloud {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	cloud := &PointCloud{
		Points:   make([]mgl64.Vec3, StarCount),
		Material: DefaultMaterial(),
	}
	for i := range cloud.Points {
		cloud.Points[i] = spawnPoint(rng)
	}
	return cloud
}

// spawnPoint samples each axis independently, like a box-random emitter.
func spawnPoint(rng *rand.Rand) mgl64.Vec3 {
	return mgl64.Vec3{
		(rng.Float64() - 0.5) * Spread,
		(rng.Float64() - 0.5) * Spread,
		(rng.Float64() - 0.5) * Spread,
	}
}
