// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"
)

// note: the binomial and poisson samplers follow
// gonum.org/v1/gonum/stat/distuv, adapted to the [Rand] interface.

// directTrials is the number of trials below which binomial
// variates are drawn by direct Bernoulli counting.
const directTrials = 25

// BinomialGen returns the number of successes in n trials
// each with success probability p.
// A NaN p gives no successes.
func BinomialGen(n int, p float64, rnd Rand) int {
	switch {
	case n <= 0 || p <= 0 || math.IsNaN(p):
		return 0
	case p >= 1:
		return n
	}
	// sample the smaller tail and reflect
	q := p
	if q > 0.5 {
		q = 1 - q
	}
	var k float64
	nf := float64(n)
	switch {
	case n < directTrials:
		k = binomialDirect(n, q, rnd)
	case nf*q < 1:
		k = binomialPoissonReject(nf, q, rnd)
	default:
		k = binomialCauchyReject(nf, q, rnd)
	}
	if q != p {
		k = nf - k
	}
	return int(k)
}

// BinomialSum returns the total successes over units independent
// binomial(n, p) draws, e.g. the conversions of a whole team
// of agents each placing n calls.
func BinomialSum(units, n int, p float64, rnd Rand) int {
	total := 0
	for range units {
		total += BinomialGen(n, p, rnd)
	}
	return total
}

func binomialDirect(n int, p float64, rnd Rand) float64 {
	k := 0.0
	for range n {
		if rnd.Float64() < p {
			k++
		}
	}
	return k
}

// binomialPoissonReject is the rejection method with a Poisson proposal,
// used when the expected count n*p is below one.
// NUMERICAL RECIPES IN C (ISBN 0-521-43108-5) p. 295-6.
func binomialPoissonReject(n, p float64, rnd Rand) float64 {
	const logM = 2.6e-2
	am := n * p
	z := -p
	pclog := (1 + 0.5*z) * z / (1 + (1+1.0/6*z)*z) // Padé approximant of log(1 + x)
	for {
		k := 0.0
		t := 0.0
		for i := 0; i < int(n); i++ {
			t += rnd.ExpFloat64()
			if t >= am {
				break
			}
			k++
		}
		kc := n - k
		z = -k / n
		log1p := (1 + 0.5*z) * z / (1 + (1+1.0/6*z)*z)
		t = (kc+0.5)*log1p + k - kc*pclog + 1/(12*kc) - am + logM // Stirling's expansion of log(n!)
		if rnd.ExpFloat64() >= t {
			return k
		}
	}
}

// binomialCauchyReject is the rejection method with a Cauchy proposal,
// exact with under 3% rejections.
func binomialCauchyReject(n, p float64, rnd Rand) float64 {
	am := n * p
	g, _ := math.Lgamma(n + 1)
	plog := math.Log(p)
	pclog := math.Log1p(-p)
	sq := math.Sqrt(2 * am * (1 - p))
	for {
		var em, y float64
		for {
			y = math.Tan(math.Pi * rnd.Float64())
			em = sq*y + am
			if em >= 0 && em < n+1 {
				break
			}
		}
		em = math.Floor(em)
		lg1, _ := math.Lgamma(em + 1)
		lg2, _ := math.Lgamma(n - em + 1)
		t := 1.2 * sq * (1 + y*y) * math.Exp(g-lg1-lg2+em*plog+(n-em)*pclog)
		if rnd.Float64() <= t {
			return em
		}
	}
}

// PoissonGen returns a poisson variate: the number of events in
// an interval with event rate lambda.
func PoissonGen(lambda float64, rnd Rand) int {
	if lambda <= 0 {
		return 0
	}
	if lambda < 10 {
		// direct method, NUMERICAL RECIPES IN C p. 294
		k := 0
		t := 0.0
		for {
			t += rnd.ExpFloat64()
			if t >= lambda {
				return k
			}
			k++
		}
	}
	// W. Hörmann. "The transformed rejection method for generating Poisson
	// random variables." Insurance: Mathematics and Economics 12.1 (1993): 39-45.
	b := 0.931 + 2.53*math.Sqrt(lambda)
	a := -0.059 + 0.02483*b
	invalpha := 1.1239 + 1.1328/(b-3.4)
	vr := 0.9277 - 3.6224/(b-2)
	for {
		u := rnd.Float64() - 0.5
		v := rnd.Float64()
		us := 0.5 - math.Abs(u)
		k := math.Floor((2*a/us+b)*u + lambda + 0.43)
		if us >= 0.07 && v <= vr {
			return int(k)
		}
		if k <= 0 || (us < 0.013 && v > us) {
			continue
		}
		lg, _ := math.Lgamma(k + 1)
		if math.Log(v*invalpha/(a/(us*us)+b)) <= k*math.Log(lambda)-lambda-lg {
			return int(k)
		}
	}
}

// GaussianGen returns gaussian (normal) random number with given
// mean and sigma standard deviation.
func GaussianGen(mean, sigma float64, rnd Rand) float64 {
	return mean + sigma*rnd.NormFloat64()
}

// GaussianFill fills dst with independent gaussian draws.
func GaussianFill(dst []float64, mean, sigma float64, rnd Rand) {
	for i := range dst {
		dst[i] = GaussianGen(mean, sigma, rnd)
	}
}
