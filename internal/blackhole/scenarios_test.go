package blackhole_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Clayten/blackholes/internal/blackhole"
	"github.com/Clayten/blackholes/internal/constants"
	"github.com/Clayten/blackholes/internal/units"
)

const ageOfUniverseYr = 1.38e10

var _ = Describe("BlackHole", func() {
	var b *blackhole.BlackHole

	Describe("a solar-mass hole", func() {
		BeforeEach(func() {
			var err error
			b, err = blackhole.NewWithMass(units.MustNew(2e30, "kg"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("has a radius of about three kilometres", func() {
			km, err := b.Radius().In("km")
			Expect(err).NotTo(HaveOccurred())
			Expect(km).To(BeNumerically("~", 2.95, 0.05))
		})

		It("outlives the universe by many orders of magnitude", func() {
			yr, err := b.Lifetime().In("yr")
			Expect(err).NotTo(HaveOccurred())
			Expect(yr).To(BeNumerically(">", ageOfUniverseYr*1e50))
		})

		It("is almost perfectly dark", func() {
			w := b.Luminosity().SI()
			Expect(w).To(BeNumerically(">", 1e-29))
			Expect(w).To(BeNumerically("<", 1e-28))
		})

		It("reports radius in whichever unit was last chosen", func() {
			m := b.Radius().Value()
			Expect(b.SetDisplayUnit(blackhole.FieldRadius, "km")).To(Succeed())
			Expect(b.Radius().Value() * 1000).To(BeNumerically("~", m, m*1e-12))
		})

		It("rejects a time assigned to the radius and keeps its mass", func() {
			err := b.SetRadius(blackhole.Dimensioned(units.MustNew(3, "s")))
			Expect(err).To(MatchError(blackhole.ErrInvalidDimension))
			Expect(b.Mass().SI()).To(Equal(2e30))
		})
	})

	Describe("aging", func() {
		BeforeEach(func() {
			var err error
			b, err = blackhole.NewWithMass(units.MustNew(1e6, "kg"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("halves the remaining lifetime and radiates a finite positive energy", func() {
			tau := b.Lifetime().SI()
			radiated, err := b.AgeBy(units.MustNew(tau/2, "s"))
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Lifetime().SI()).To(BeNumerically("~", tau/2, tau*1e-9))
			Expect(radiated.SI()).To(BeNumerically(">", 0))
			Expect(math.IsInf(radiated.SI(), 0)).To(BeFalse())
		})

		It("evaporates completely once the lifetime is used up", func() {
			tau := b.Lifetime().SI()
			_, err := b.AgeBy(units.MustNew(tau*1.5, "s"))
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Mass().SI()).To(BeZero())
			Expect(b.Gravity().SI()).To(BeZero())
			Expect(b.Luminosity().SI()).To(BeZero())
		})

		It("refuses a bare number", func() {
			_, err := b.AgeBy(units.Scalar(10))
			Expect(err).To(MatchError(blackhole.ErrInvalidDimension))
		})
	})

	Describe("construction from an observable", func() {
		It("derives the mass from energy", func() {
			e := units.MustNew(9e16, "J")
			b, err := blackhole.New(blackhole.Dimensioned(e), blackhole.FieldEnergy)
			Expect(err).NotTo(HaveOccurred())

			c := constants.SpeedOfLight().SI()
			Expect(b.Mass().SI()).To(BeNumerically("~", 9e16/(c*c), 1e-12))
			Expect(b.Energy().SI()).To(BeNumerically("~", 9e16, 9e16*1e-9))
			Expect(b.DisplayUnit(blackhole.FieldEnergy)).To(Equal("J"))
		})

		It("interprets a raw value in the field's base unit", func() {
			b, err := blackhole.New(blackhole.Raw(1), blackhole.FieldLifetime)
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Lifetime().SI()).To(BeNumerically("~", 1, 1e-9))
			Expect(b.Mass().SI()).To(BeNumerically(">", 0))
		})

		DescribeTable("round-trips every observable",
			func(f blackhole.Field, kg float64) {
				src, err := blackhole.NewWithMass(units.MustNew(kg, "kg"))
				Expect(err).NotTo(HaveOccurred())
				v, err := src.Get(f)
				Expect(err).NotTo(HaveOccurred())

				dst, err := blackhole.New(blackhole.Dimensioned(v), f)
				Expect(err).NotTo(HaveOccurred())
				Expect(dst.Mass().SI()).To(BeNumerically("~", kg, kg*1e-9))
			},
			Entry("radius", blackhole.FieldRadius, 7.3e22),
			Entry("area", blackhole.FieldArea, 7.3e22),
			Entry("gravity", blackhole.FieldGravity, 1e12),
			Entry("energy", blackhole.FieldEnergy, 1e12),
			Entry("luminosity", blackhole.FieldLuminosity, 1e40),
			Entry("lifetime", blackhole.FieldLifetime, 1e40),
			Entry("entropy", blackhole.FieldEntropy, 1e-3),
		)

		It("rejects an unknown field", func() {
			_, err := blackhole.New(blackhole.Raw(1), blackhole.Field(-3))
			Expect(err).To(MatchError(blackhole.ErrUnknownField))
		})
	})

	Describe("a zero-mass hole", func() {
		BeforeEach(func() {
			var err error
			b, err = blackhole.New(blackhole.Raw(0), blackhole.FieldMass)
			Expect(err).NotTo(HaveOccurred())
		})

		It("reads zero gravity and luminosity rather than dividing by zero", func() {
			Expect(b.Gravity().SI()).To(Equal(0.0))
			Expect(b.Luminosity().SI()).To(Equal(0.0))
		})
	})
})
