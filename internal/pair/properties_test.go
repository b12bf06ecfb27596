package pair_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ljeopp/internal/pair"
)

func randomCoeff(rng *rand.Rand) pair.Coeff {
	return pair.Coeff{
		Epsilon: 1,
		Sigma:   1,
		C1:      1 + 999*rng.Float64(),
		N1:      8 + 6*rng.Float64(),
		C2:      -(1 + 49*rng.Float64()),
		N2:      2 + 4*rng.Float64(),
		KStar:   3 * rng.Float64(),
		PhiStar: 2 * math.Pi * (rng.Float64() - 0.5),
	}
}

func initTable(ntypes int, s pair.Settings, coeffs map[[2]int]pair.Coeff) *pair.Table {
	tbl, err := pair.NewTable(ntypes, s)
	Expect(err).NotTo(HaveOccurred())
	for ij, c := range coeffs {
		Expect(tbl.SetCoeff(ij[0], ij[1], c)).To(Succeed())
	}
	_, err = tbl.Init()
	Expect(err).NotTo(HaveOccurred())
	return tbl
}

var _ = Describe("LJ-EOPP kernel", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	Describe("force", func() {
		It("is the negative radial derivative of the energy", func() {
			for trial := 0; trial < 50; trial++ {
				c := randomCoeff(rng)
				tbl := initTable(1, pair.Settings{Cutoff: 12, Shift: true}, map[[2]int]pair.Coeff{{1, 1}: c})
				d, err := tbl.Derived(1, 1)
				Expect(err).NotTo(HaveOccurred())

				r := 1.0 + 9.0*rng.Float64()
				h := 1e-6 * r
				numeric := -(d.Energy(r+h) - d.Energy(r-h)) / (2 * h)
				fpair, _ := pair.Evaluate(r*r, &d, 1.0, false)

				scale := math.Abs(d.ForceCoeffA)/math.Pow(r, d.N1+1) +
					math.Abs(d.ForceCoeffB)/math.Pow(r, d.N2+1) +
					math.Abs(d.EnergyCoeffB*d.KStar)/math.Pow(r, d.N2)
				Expect(fpair*r).To(BeNumerically("~", numeric, 1e-6*scale+1e-12),
					"c=%+v r=%g", c, r)
			}
		})

		It("reduces to a double power law when k* is zero", func() {
			c := pair.Coeff{C1: 1000, N1: 12, C2: -50, N2: 6}
			tbl := initTable(1, pair.Settings{Cutoff: 10}, map[[2]int]pair.Coeff{{1, 1}: c})
			d, _ := tbl.Derived(1, 1)

			for _, r := range []float64{1.1, 2, 3.7} {
				want := 12*1000/math.Pow(r, 13) - 6*50/math.Pow(r, 7)
				fpair, e := pair.Evaluate(r*r, &d, 1, true)
				Expect(fpair * r).To(BeNumerically("~", want, 1e-12*math.Abs(want)))
				Expect(e).To(BeNumerically("~", 1000/math.Pow(r, 12)-50/math.Pow(r, 6), 1e-12))
			}
		})
	})

	Describe("scaling factor", func() {
		It("is linear in both force and energy", func() {
			tbl := initTable(1, pair.Settings{Cutoff: 10, Shift: true}, map[[2]int]pair.Coeff{{1, 1}: randomCoeff(rng)})
			d, _ := tbl.Derived(1, 1)
			rsq := 4.0 + 20*rng.Float64()

			f1, e1 := pair.Evaluate(rsq, &d, 1, true)
			f0, e0 := pair.Evaluate(rsq, &d, 0, true)
			Expect(f0).To(BeZero())
			Expect(e0).To(BeZero())

			factor := rng.Float64()
			f, e := pair.Evaluate(rsq, &d, factor, true)
			Expect(f).To(Equal(f1 * factor))
			Expect(e).To(Equal(e1 * factor))
		})
	})

	Describe("energy shift", func() {
		It("makes the energy vanish at the cutoff", func() {
			for trial := 0; trial < 20; trial++ {
				cut := 4 + 8*rng.Float64()
				tbl := initTable(1, pair.Settings{Cutoff: cut, Shift: true}, map[[2]int]pair.Coeff{{1, 1}: randomCoeff(rng)})
				d, _ := tbl.Derived(1, 1)
				Expect(d.Energy(cut)).To(BeZero())
			}
		})

		It("keeps the legacy zero offset when asked to", func() {
			c := randomCoeff(rng)
			tbl := initTable(1, pair.Settings{Cutoff: 7, Shift: true, LegacyZeroOffset: true}, map[[2]int]pair.Coeff{{1, 1}: c})
			d, _ := tbl.Derived(1, 1)
			Expect(d.EnergyOffset).To(BeZero())
		})
	})

	Describe("cutoff boundary", func() {
		It("contributes nothing at or beyond the cutoff", func() {
			tbl := initTable(1, pair.Settings{Cutoff: 5}, map[[2]int]pair.Coeff{{1, 1}: randomCoeff(rng)})
			d, _ := tbl.Derived(1, 1)
			for _, rsq := range []float64{25, 25 + 1e-9, 30, 1e9} {
				f, e := pair.Evaluate(rsq, &d, 1, true)
				Expect(f).To(BeZero())
				Expect(e).To(BeZero())
			}
		})
	})

	Describe("derived coefficients", func() {
		It("are symmetric in the type pair", func() {
			coeffs := map[[2]int]pair.Coeff{}
			for i := 1; i <= 4; i++ {
				coeffs[[2]int{i, i}] = randomCoeff(rng)
			}
			coeffs[[2]int{3, 1}] = randomCoeff(rng)
			tbl := initTable(4, pair.Settings{Cutoff: 9, Shift: true, Mix: pair.MixArithmetic}, coeffs)

			for i := 1; i <= 4; i++ {
				for j := 1; j <= 4; j++ {
					a, err := tbl.Derived(i, j)
					Expect(err).NotTo(HaveOccurred())
					b, _ := tbl.Derived(j, i)
					Expect(a).To(Equal(b))
				}
			}
		})
	})
})
