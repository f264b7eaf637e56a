package hero

import (
	"math/rand"

	perlin "github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Distort pushes vertices along their normal by a slowly moving noise field.
type Distort struct {
	Amount    float32
	Speed     float32
	Frequency float32
	noise     *perlin.Perlin
}

func NewDistort(amount, speed float32, rng *rand.Rand) *Distort {
	return &Distort{
		Amount:    amount,
		Speed:     speed,
		Frequency: 1.5,
		noise:     perlin.NewPerlin(2, 2, 3, rng.Int63()),
	}
}

func (d *Distort) Deform(pos, normal mgl32.Vec3, t float32) mgl32.Vec3 {
	n := d.noise.Noise3D(
		float64(pos.X()*d.Frequency),
		float64(pos.Y()*d.Frequency),
		float64(t*d.Speed),
	)
	return pos.Add(normal.Mul(float32(n) * d.Amount))
}

// Wobble twists vertices about Y by an angle that varies with height.
type Wobble struct {
	Factor float32
	Speed  float32
}

func (w Wobble) Deform(pos, _ mgl32.Vec3, t float32) mgl32.Vec3 {
	theta := math32.Sin(t*w.Speed+pos.Y()) / 2 * w.Factor
	c, s := math32.Cos(theta), math32.Sin(theta)
	return mgl32.Vec3{c*pos.X() + s*pos.Z(), pos.Y(), -s*pos.X() + c*pos.Z()}
}
