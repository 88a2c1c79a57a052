package sim

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dotsim/internal/physics"
)

var _ = Describe("World", func() {
	var (
		world *World
		s     *Simulator
	)

	BeforeEach(func() {
		world = NewWorld(physics.DefaultBounds(), rand.New(rand.NewSource(99)), 0)
		s = New(world)
	})

	step := func(dt float64) Frame {
		frame, err := s.Step(dt)
		Expect(err).NotTo(HaveOccurred())
		return frame
	}

	Describe("gravity", func() {
		It("pulls two stationary bodies toward each other by force/mass", func() {
			world.AddBody(physics.NewBody(100, 300, 0, 0))
			world.AddBody(physics.NewBody(200, 300, 0, 0))

			frame := step(17)

			Expect(frame.Bodies).To(HaveLen(2))
			Expect(frame.Bodies[0].DX).To(BeNumerically("~", 5, 1e-9))
			Expect(frame.Bodies[1].DX).To(BeNumerically("~", -5, 1e-9))
			Expect(frame.Bodies[0].DY).To(BeNumerically("~", 0, 1e-12))
			Expect(frame.Bodies[0].X).To(Equal(100.0))
			Expect(frame.Bodies[1].X).To(Equal(200.0))
		})

		It("moves bodies on the tick after their velocity changed", func() {
			world.AddBody(physics.NewBody(100, 300, 0, 0))
			world.AddBody(physics.NewBody(200, 300, 0, 0))

			step(17)
			frame := step(17)

			Expect(frame.Bodies[0].X).To(BeNumerically("~", 100+5*0.017, 1e-9))
			Expect(frame.Bodies[1].X).To(BeNumerically("~", 200-5*0.017, 1e-9))
		})

		It("reports the centroid of massive bodies only", func() {
			world.AddBody(physics.NewBody(100, 100, 0, 0))
			world.AddBody(physics.NewBody(300, 500, 0, 0))
			world.AddBody(physics.NewBodyWithMass(800, 0, 0, 0, 0))

			frame := step(17)

			Expect(frame.Centroid.OK).To(BeTrue())
			Expect(frame.Centroid.X).To(BeNumerically("~", 200, 1e-9))
			Expect(frame.Centroid.Y).To(BeNumerically("~", 300, 1e-9))
		})

		It("skips the centroid when there are no bodies", func() {
			frame := step(17)
			Expect(frame.Centroid.OK).To(BeFalse())
		})
	})

	Describe("explosions", func() {
		It("destroys bodies strictly inside its reach", func() {
			world.AddExplosion(physics.Explosion{X: 400, Y: 300, Age: 250, Duration: physics.ExplosionDuration})
			world.AddBody(physics.NewBodyWithMass(460, 300, 0, 0, 0))
			world.AddBody(physics.NewBodyWithMass(480, 300, 0, 0, 0))

			frame := step(17)

			Expect(frame.Destroyed).To(Equal(1))
			Expect(frame.Spawned).To(Equal(1))
			Expect(frame.Bodies).To(HaveLen(1))
			Expect(frame.Bodies[0].X).To(Equal(480.0))
			Expect(frame.Explosions).To(HaveLen(2))
			Expect(frame.Explosions[1].X).To(Equal(460.0))
		})

		It("expires once its age reaches the duration", func() {
			world.SpawnExplosion(50, 50)

			for i := 0; i < 29; i++ {
				Expect(step(17).Explosions).To(HaveLen(1))
			}
			frame := step(17)
			Expect(frame.Explosions).To(BeEmpty())
			Expect(frame.Expired).To(Equal(1))
		})

		It("chains through a line of bodies", func() {
			for x := 100.0; x <= 180; x += 20 {
				world.AddBody(physics.NewBodyWithMass(x, 300, 0, 0, 0))
			}
			world.SpawnExplosion(100, 300)

			destroyed := 0
			var frame Frame
			for i := 0; i < 60; i++ {
				frame = step(17)
				destroyed += frame.Destroyed
			}

			Expect(destroyed).To(Equal(5))
			Expect(frame.Bodies).To(BeEmpty())
			Expect(frame.Explosions).To(BeEmpty())
		})

		It("does not test freshly spawned explosions in the same pass", func() {
			world.AddBody(physics.NewBodyWithMass(100, 100, 0, 0, 0))
			world.AddBody(physics.NewBodyWithMass(104, 100, 0, 0, 0))
			world.AddExplosion(physics.Explosion{X: 96, Y: 100, Duration: physics.ExplosionDuration})

			frame := step(17)

			Expect(frame.Destroyed).To(Equal(1))
			Expect(frame.Bodies).To(HaveLen(1))
			Expect(frame.Bodies[0].X).To(Equal(104.0))
		})
	})

	Describe("input", func() {
		It("queues spawns until the next tick", func() {
			world.SpawnBody(10, 10)
			world.SpawnExplosion(700, 500)

			Expect(world.Bodies()).To(BeEmpty())
			Expect(world.Pending()).To(Equal(2))

			frame := step(17)
			Expect(frame.Bodies).To(HaveLen(1))
			Expect(frame.Explosions).To(HaveLen(1))
			Expect(world.Pending()).To(BeZero())
		})

		It("clamps spawn positions into the world", func() {
			world.SpawnBody(-50, 9000)
			world.flush()

			b := world.Bodies()[0]
			Expect(b.X).To(Equal(0.0))
			Expect(b.Y).To(Equal(600.0))
			Expect(math.Abs(b.DX)).To(BeNumerically("<=", physics.MaxSpeed))
		})

		It("sanitizes non-finite bodies", func() {
			nan, inf := math.NaN(), math.Inf(1)
			world.AddBody(physics.Body{X: nan, Y: inf, DX: nan, DY: -inf, Mass: nan, Radius: physics.BodyRadius})
			world.AddBody(physics.Body{X: 400, Y: 300, DX: inf, DY: nan, Mass: inf, Radius: physics.BodyRadius})

			for i := 0; i < 5; i++ {
				frame := step(17)
				Expect(frame.Bodies).To(HaveLen(2))
				for _, b := range frame.Bodies {
					Expect(b.X).To(BeNumerically(">=", 0))
					Expect(b.X).To(BeNumerically("<=", 800))
					Expect(b.Y).To(BeNumerically(">=", 0))
					Expect(b.Y).To(BeNumerically("<=", 600))
					Expect(math.IsNaN(b.DX) || math.IsNaN(b.DY)).To(BeFalse())
				}
				Expect(math.IsNaN(frame.Centroid.X)).To(BeFalse())
			}
		})

		It("keeps every body inside the walls", func() {
			for i := 0; i < 40; i++ {
				world.SpawnRandomBody()
			}
			for i := 0; i < 300; i++ {
				frame := step(float64(1 + i%200))
				for _, b := range frame.Bodies {
					Expect(b.X).To(BeNumerically(">=", 0))
					Expect(b.X).To(BeNumerically("<=", 800))
					Expect(b.Y).To(BeNumerically(">=", 0))
					Expect(b.Y).To(BeNumerically("<=", 600))
				}
			}
		})
	})

	Describe("snapshot", func() {
		It("does not share storage with the world", func() {
			world.SpawnBody(10, 10)
			world.flush()

			frame := world.Snapshot()
			world.Clear()
			world.SpawnBody(500, 500)
			world.flush()

			Expect(frame.Bodies).To(HaveLen(1))
			Expect(frame.Bodies[0].X).To(Equal(10.0))
		})
	})

	Describe("reset", func() {
		It("reseeds the initial bodies and drops everything else", func() {
			seeded := NewWorld(physics.DefaultBounds(), rand.New(rand.NewSource(1)), DefaultInitialBodies)
			seeded.SpawnExplosion(1, 1)
			seeded.SpawnBody(2, 2)

			seeded.Reset()

			Expect(seeded.Bodies()).To(HaveLen(DefaultInitialBodies))
			Expect(seeded.Explosions()).To(BeEmpty())
			Expect(seeded.Pending()).To(BeZero())
		})

		It("is reproducible for a given seed", func() {
			a := New(NewWorld(physics.DefaultBounds(), rand.New(rand.NewSource(8)), DefaultInitialBodies))
			b := New(NewWorld(physics.DefaultBounds(), rand.New(rand.NewSource(8)), DefaultInitialBodies))

			var fa, fb Frame
			for i := 0; i < 50; i++ {
				fa, _ = a.Step(17)
				fb, _ = b.Step(17)
			}
			Expect(fa.Bodies).To(Equal(fb.Bodies))
		})
	})
})
