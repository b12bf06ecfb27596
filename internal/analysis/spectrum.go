package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/ljeopp/internal/pair"
)

// PowerSpectrum returns |X(k)| for the non-negative wave numbers of the
// real samples taken at spacing dr, with a Hann window applied.
func PowerSpectrum(samples []float64, dr float64) (wavenumbers, power []float64) {
	n := len(samples)
	x := make([]float64, n)
	copy(x, samples)
	mean := floats.Sum(x) / float64(n)
	floats.AddConst(-mean, x)
	window.Apply(x, window.Hann)

	spec := fft.FFTReal(x)
	half := n / 2
	wavenumbers = make([]float64, half)
	power = make([]float64, half)
	for i := 0; i < half; i++ {
		wavenumbers[i] = 2 * math.Pi * float64(i) / (float64(n) * dr)
		power[i] = cmplx.Abs(spec[i])
	}
	return wavenumbers, power
}

// Oscillation returns c2*cos(k*r+phi) recovered from the energy at r.
func Oscillation(d *pair.Derived, r float64) float64 {
	v := d.Energy(r) + d.EnergyOffset - d.EnergyCoeffA/math.Pow(r, d.N1)
	return v * math.Pow(r, d.N2)
}

// DominantWaveNumber estimates k* from n samples of the cosine term on
// [rmin, rmin+length), refining the spectral peak by parabolic
// interpolation.
func DominantWaveNumber(d *pair.Derived, rmin, length float64, n int) (float64, error) {
	if n < 8 {
		return 0, fmt.Errorf("need at least 8 samples, got %d", n)
	}
	if !(rmin > 0) || !(length > 0) {
		return 0, fmt.Errorf("invalid sampling window r=%g length=%g", rmin, length)
	}
	if d.EnergyCoeffB == 0 {
		return 0, fmt.Errorf("potential has no oscillatory term")
	}

	dr := length / float64(n)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = Oscillation(d, rmin+float64(i)*dr)
	}
	ks, power := PowerSpectrum(samples, dr)

	peak := floats.MaxIdx(power[1:]) + 1
	if power[peak] <= 1e-9*math.Abs(d.EnergyCoeffB)*float64(n) {
		return 0, nil
	}
	offset := 0.0
	if peak+1 < len(power) {
		a, b, c := power[peak-1], power[peak], power[peak+1]
		if den := a - 2*b + c; den != 0 {
			offset = 0.5 * (a - c) / den
		}
	}
	return ks[peak] + offset*(ks[1]-ks[0]), nil
}
