// Package predicates implements the two signed geometric tests the CDT
// kernel is built on: Orient2D and InCircle. Both are exact in sign for
// every finite IEEE-754 double input, using Jonathan Shewchuk's
// adaptive-precision expansion technique: a fast floating-point estimate
// with a computed error bound, refined with non-overlapping expansions of
// floating-point components only when the estimate's sign is uncertain.
//
// See J.R. Shewchuk, "Adaptive Precision Floating-Point Arithmetic and
// Fast Robust Geometric Predicates", Discrete & Computational Geometry,
// 18(3):305-363, October 1997.
package predicates

import "math"

// Point is a 2D double-precision point. It is deliberately independent of
// any other package's point type so this package has no dependencies.
type Point struct {
	X, Y float64
}

// Error bounds and the splitter constant, derived once from the running
// machine's floating-point precision, exactly as section 4.1 requires.
var (
	splitter       float64
	epsilon        float64
	resulterrbound float64
	ccwerrboundA   float64
	ccwerrboundB   float64
	ccwerrboundC   float64
	iccerrboundA   float64
	iccerrboundB   float64
	iccerrboundC   float64
)

func init() {
	exactInit()
}

// exactInit reproduces Shewchuk's exactinit(): it does not assume IEEE-754
// double precision, deriving epsilon and the splitter by repeated halving
// until the machine's rounding behavior is observed directly.
func exactInit() {
	half := 0.5
	epsilon = 1.0
	splitter = 1.0
	everyOther := true
	for {
		epsilon *= half
		if everyOther {
			splitter *= 2.0
		}
		everyOther = !everyOther
		if (1.0 + epsilon) == 1.0 {
			break
		}
	}
	splitter += 1.0

	resulterrbound = (3.0 + 8.0*epsilon) * epsilon
	ccwerrboundA = (3.0 + 16.0*epsilon) * epsilon
	ccwerrboundB = (2.0 + 12.0*epsilon) * epsilon
	ccwerrboundC = (9.0 + 64.0*epsilon) * epsilon * epsilon
	iccerrboundA = (10.0 + 96.0*epsilon) * epsilon
	iccerrboundB = (4.0 + 48.0*epsilon) * epsilon
	iccerrboundC = (44.0 + 576.0*epsilon) * epsilon * epsilon
}

func absolute(a float64) float64 {
	if a < 0 {
		return -a
	}
	return a
}

// --- Exact arithmetic primitives (Shewchuk section 2) ---

func fastTwoSum(a, b float64) (x, y float64) {
	x = a + b
	bvirt := x - a
	y = b - bvirt
	return
}

func twoSum(a, b float64) (x, y float64) {
	x = a + b
	bvirt := x - a
	avirt := x - bvirt
	bround := b - bvirt
	around := a - avirt
	y = around + bround
	return
}

func twoDiff(a, b float64) (x, y float64) {
	x = a - b
	bvirt := a - x
	avirt := x + bvirt
	bround := bvirt - b
	around := a - avirt
	y = around + bround
	return
}

// twoDiffTail computes the roundoff of a precomputed x = a - b.
func twoDiffTail(a, b, x float64) float64 {
	bvirt := a - x
	avirt := x + bvirt
	bround := bvirt - b
	around := a - avirt
	return around + bround
}

func split(a float64) (ahi, alo float64) {
	c := splitter * a
	abig := c - a
	ahi = c - abig
	alo = a - ahi
	return
}

func twoProduct(a, b float64) (x, y float64) {
	x = a * b
	ahi, alo := split(a)
	bhi, blo := split(b)
	err1 := x - ahi*bhi
	err2 := err1 - alo*bhi
	err3 := err2 - ahi*blo
	y = alo*blo - err3
	return
}

func square(a float64) (x, y float64) {
	x = a * a
	ahi, alo := split(a)
	err1 := x - ahi*ahi
	err2 := err1 - (ahi+ahi)*alo
	y = alo*alo - err2
	return
}

func twoOneSum(a1, a0, b float64) (x2, x1, x0 float64) {
	i, x0v := twoSum(a0, b)
	x2v, x1v := twoSum(a1, i)
	return x2v, x1v, x0v
}

func twoOneDiff(a1, a0, b float64) (x2, x1, x0 float64) {
	i, x0v := twoDiff(a0, b)
	x2v, x1v := twoSum(a1, i)
	return x2v, x1v, x0v
}

func twoTwoSum(a1, a0, b1, b0 float64) (x3, x2, x1, x0 float64) {
	j, k, x0v := twoOneSum(a1, a0, b0)
	x3v, x2v, x1v := twoOneSum(j, k, b1)
	return x3v, x2v, x1v, x0v
}

func twoTwoDiff(a1, a0, b1, b0 float64) (x3, x2, x1, x0 float64) {
	j, k, x0v := twoOneDiff(a1, a0, b0)
	x3v, x2v, x1v := twoOneDiff(j, k, b1)
	return x3v, x2v, x1v, x0v
}

// estimate sums an expansion's components into a single approximate double.
func estimate(e []float64) float64 {
	q := 0.0
	for _, v := range e {
		q += v
	}
	return q
}

// fastExpansionSumZeroelim sums two nonoverlapping expansions e and f into
// h (which must have capacity at least len(e)+len(f)), eliding zero
// components, and returns the number of components written.
func fastExpansionSumZeroelim(e, f, h []float64) int {
	elen, flen := len(e), len(f)
	eindex, findex := 0, 0
	var enow, fnow float64
	if elen > 0 {
		enow = e[0]
	}
	if flen > 0 {
		fnow = f[0]
	}
	var q float64
	switch {
	case elen == 0:
		q = fnow
		findex++
	case flen == 0:
		q = enow
		eindex++
	case (fnow > enow) == (fnow > -enow):
		q = enow
		eindex++
	default:
		q = fnow
		findex++
	}
	if eindex < elen {
		enow = e[eindex]
	}
	if findex < flen {
		fnow = f[findex]
	}
	hindex := 0
	for eindex < elen && findex < flen {
		var qnew, hh float64
		if (fnow > enow) == (fnow > -enow) {
			qnew, hh = twoSum(q, enow)
			eindex++
			if eindex < elen {
				enow = e[eindex]
			}
		} else {
			qnew, hh = twoSum(q, fnow)
			findex++
			if findex < flen {
				fnow = f[findex]
			}
		}
		q = qnew
		if hh != 0.0 {
			h[hindex] = hh
			hindex++
		}
	}
	for eindex < elen {
		qnew, hh := twoSum(q, enow)
		eindex++
		if eindex < elen {
			enow = e[eindex]
		}
		q = qnew
		if hh != 0.0 {
			h[hindex] = hh
			hindex++
		}
	}
	for findex < flen {
		qnew, hh := twoSum(q, fnow)
		findex++
		if findex < flen {
			fnow = f[findex]
		}
		q = qnew
		if hh != 0.0 {
			h[hindex] = hh
			hindex++
		}
	}
	if q != 0.0 || hindex == 0 {
		h[hindex] = q
		hindex++
	}
	return hindex
}

// twoProductPresplit is twoProduct for a b operand whose split (bhi, blo)
// the caller has already computed, so scaleExpansionZeroelim pays for
// Split(b) once per call instead of once per component.
func twoProductPresplit(a, b, bhi, blo float64) (x, y float64) {
	x = a * b
	ahi, alo := split(a)
	err1 := x - ahi*bhi
	err2 := err1 - alo*bhi
	err3 := err2 - ahi*blo
	y = alo*blo - err3
	return
}

// scaleExpansionZeroelim multiplies expansion e by scalar b, eliding zero
// components, and returns the number of components written into h (which
// must have capacity at least 2*len(e)).
func scaleExpansionZeroelim(e []float64, b float64, h []float64) int {
	if len(e) == 0 {
		return 0
	}
	bhi, blo := split(b)
	q, hh := twoProduct(e[0], b)
	hindex := 0
	if hh != 0.0 {
		h[hindex] = hh
		hindex++
	}
	for i := 1; i < len(e); i++ {
		product1, product0 := twoProductPresplit(e[i], b, bhi, blo)
		sum, hh := twoSum(q, product0)
		if hh != 0.0 {
			h[hindex] = hh
			hindex++
		}
		q, hh = fastTwoSum(product1, sum)
		if hh != 0.0 {
			h[hindex] = hh
			hindex++
		}
	}
	if q != 0.0 || hindex == 0 {
		h[hindex] = q
		hindex++
	}
	return hindex
}

// --- Orient2D: fully adaptive, exact expansion path ---

// Orient2D returns a value with the sign of the signed area of triangle
// abc; zero iff the three points are exactly collinear. Counter-clockwise
// is positive.
func Orient2D(a, b, c Point) float64 {
	detleft := (a.X - c.X) * (b.Y - c.Y)
	detright := (a.Y - c.Y) * (b.X - c.X)
	det := detleft - detright

	var detsum float64
	switch {
	case detleft > 0:
		if detright <= 0 {
			return det
		}
		detsum = detleft + detright
	case detleft < 0:
		if detright >= 0 {
			return det
		}
		detsum = -detleft - detright
	default:
		return det
	}

	errbound := ccwerrboundA * detsum
	if det >= errbound || -det >= errbound {
		return det
	}
	return orient2DAdapt(a, b, c, detsum)
}

func orient2DAdapt(pa, pb, pc Point, detsum float64) float64 {
	acx := pa.X - pc.X
	bcx := pb.X - pc.X
	acy := pa.Y - pc.Y
	bcy := pb.Y - pc.Y

	detleft, detlefttail := twoProduct(acx, bcy)
	detright, detrighttail := twoProduct(acy, bcx)

	b3, b2, b1, b0 := twoTwoDiff(detleft, detlefttail, detright, detrighttail)
	bexp := [4]float64{b0, b1, b2, b3}

	det := estimate(bexp[:])
	errbound := ccwerrboundB * detsum
	if det >= errbound || -det >= errbound {
		return det
	}

	acxtail := twoDiffTail(pa.X, pc.X, acx)
	bcxtail := twoDiffTail(pb.X, pc.X, bcx)
	acytail := twoDiffTail(pa.Y, pc.Y, acy)
	bcytail := twoDiffTail(pb.Y, pc.Y, bcy)

	if acxtail == 0.0 && acytail == 0.0 && bcxtail == 0.0 && bcytail == 0.0 {
		return det
	}

	errbound = ccwerrboundC*detsum + resulterrbound*absolute(det)
	det += (acx*bcytail + bcy*acxtail) - (acy*bcxtail + bcx*acytail)
	if det >= errbound || -det >= errbound {
		return det
	}

	s1, s0 := twoProduct(acxtail, bcy)
	t1, t0 := twoProduct(acytail, bcx)
	u3, u2, u1, u0 := twoTwoDiff(s1, s0, t1, t0)
	u := [4]float64{u0, u1, u2, u3}
	var c1 [8]float64
	c1len := fastExpansionSumZeroelim(bexp[:], u[:], c1[:])

	s1, s0 = twoProduct(acx, bcytail)
	t1, t0 = twoProduct(acy, bcxtail)
	u3, u2, u1, u0 = twoTwoDiff(s1, s0, t1, t0)
	u = [4]float64{u0, u1, u2, u3}
	var c2 [12]float64
	c2len := fastExpansionSumZeroelim(c1[:c1len], u[:], c2[:])

	s1, s0 = twoProduct(acxtail, bcytail)
	t1, t0 = twoProduct(acytail, bcxtail)
	u3, u2, u1, u0 = twoTwoDiff(s1, s0, t1, t0)
	u = [4]float64{u0, u1, u2, u3}
	var d [16]float64
	dlen := fastExpansionSumZeroelim(c2[:c2len], u[:], d[:])

	return d[dlen-1]
}

// --- InCircle: fast estimate, tail-corrected adaptive refinement, and a
// fully exact expansion cascade for the residual degenerate tier. ---

// InCircle assumes a, b, c are listed counter-clockwise and returns a
// value whose positive sign means d lies strictly inside the circumcircle
// of a, b, c.
func InCircle(a, b, c, d Point) float64 {
	adx := a.X - d.X
	bdx := b.X - d.X
	cdx := c.X - d.X
	ady := a.Y - d.Y
	bdy := b.Y - d.Y
	cdy := c.Y - d.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	alift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)

	permanent := (absolute(bdxcdy)+absolute(cdxbdy))*alift +
		(absolute(cdxady)+absolute(adxcdy))*blift +
		(absolute(adxbdy)+absolute(bdxady))*clift
	errbound := iccerrboundA * permanent
	if det > errbound || -det > errbound {
		return det
	}

	return inCircleAdapt(a, b, c, d, permanent)
}

func inCircleAdapt(pa, pb, pc, pd Point, permanent float64) float64 {
	adx := pa.X - pd.X
	bdx := pb.X - pd.X
	cdx := pc.X - pd.X
	ady := pa.Y - pd.Y
	bdy := pb.Y - pd.Y
	cdy := pc.Y - pd.Y

	// Exact expansion of the determinant over the rounded differences
	// adx..cdy; its leading component carries that determinant's sign.
	det := inCircleExactTail(adx, ady, bdx, bdy, cdx, cdy, 0, 0, 0, 0, 0, 0)

	errbound := iccerrboundB * permanent
	if det >= errbound || -det >= errbound {
		return det
	}

	adxtail := twoDiffTail(pa.X, pd.X, adx)
	adytail := twoDiffTail(pa.Y, pd.Y, ady)
	bdxtail := twoDiffTail(pb.X, pd.X, bdx)
	bdytail := twoDiffTail(pb.Y, pd.Y, bdy)
	cdxtail := twoDiffTail(pc.X, pd.X, cdx)
	cdytail := twoDiffTail(pc.Y, pd.Y, cdy)

	if adxtail == 0.0 && bdxtail == 0.0 && cdxtail == 0.0 &&
		adytail == 0.0 && bdytail == 0.0 && cdytail == 0.0 {
		return det
	}

	errbound = iccerrboundC*permanent + resulterrbound*absolute(det)
	det += ((adx*adx+ady*ady)*((bdx*cdytail+cdy*bdxtail)-(bdy*cdxtail+cdx*bdytail))+
		2.0*(adx*adxtail+ady*adytail)*(bdx*cdy-bdy*cdx))+
		((bdx*bdx+bdy*bdy)*((cdx*adytail+ady*cdxtail)-(cdy*adxtail+adx*cdytail))+
			2.0*(bdx*bdxtail+bdy*bdytail)*(cdx*ady-cdy*adx))+
		((cdx*cdx+cdy*cdy)*((adx*bdytail+bdy*adxtail)-(ady*bdxtail+bdx*adytail))+
			2.0*(cdx*cdxtail+cdy*cdytail)*(adx*bdy-ady*bdx))
	if det >= errbound || -det >= errbound {
		return det
	}

	return inCircleExactTail(adx, ady, bdx, bdy, cdx, cdy, adxtail, adytail, bdxtail, bdytail, cdxtail, cdytail)
}

// inCircleExactTail is the literal Shewchuk exact fallback: every quantity
// below is carried as a non-overlapping expansion of float64 components
// rather than a single rounded double, so the final sum's leading
// component carries the true sign of the incircle determinant with no
// rounding at all. fin1 and fin2 are the ping-pong accumulation buffers;
// 1152 components is the largest this specific cascade of products can
// ever produce, per Shewchuk's published bound for the incircle
// predicate's exact expansion.
func inCircleExactTail(adx, ady, bdx, bdy, cdx, cdy, adxtail, adytail, bdxtail, bdytail, cdxtail, cdytail float64) float64 {
	bdxcdy1, bdxcdy0 := twoProduct(bdx, cdy)
	cdxbdy1, cdxbdy0 := twoProduct(cdx, bdy)
	bc3, bc2, bc1, bc0 := twoTwoDiff(bdxcdy1, bdxcdy0, cdxbdy1, cdxbdy0)
	bc := [4]float64{bc0, bc1, bc2, bc3}

	cdxady1, cdxady0 := twoProduct(cdx, ady)
	adxcdy1, adxcdy0 := twoProduct(adx, cdy)
	ca3, ca2, ca1, ca0 := twoTwoDiff(cdxady1, cdxady0, adxcdy1, adxcdy0)
	ca := [4]float64{ca0, ca1, ca2, ca3}

	adxbdy1, adxbdy0 := twoProduct(adx, bdy)
	bdxady1, bdxady0 := twoProduct(bdx, ady)
	ab3, ab2, ab1, ab0 := twoTwoDiff(adxbdy1, adxbdy0, bdxady1, bdxady0)
	ab := [4]float64{ab0, ab1, ab2, ab3}

	var axbc, aybc [8]float64
	var axxbc, ayybc [16]float64
	axbcLen := scaleExpansionZeroelim(bc[:], adx, axbc[:])
	axxbcLen := scaleExpansionZeroelim(axbc[:axbcLen], adx, axxbc[:])
	aybcLen := scaleExpansionZeroelim(bc[:], ady, aybc[:])
	ayybcLen := scaleExpansionZeroelim(aybc[:aybcLen], ady, ayybc[:])
	var adet [32]float64
	aLen := fastExpansionSumZeroelim(axxbc[:axxbcLen], ayybc[:ayybcLen], adet[:])

	var bxca, byca [8]float64
	var bxxca, byyca [16]float64
	bxcaLen := scaleExpansionZeroelim(ca[:], bdx, bxca[:])
	bxxcaLen := scaleExpansionZeroelim(bxca[:bxcaLen], bdx, bxxca[:])
	bycaLen := scaleExpansionZeroelim(ca[:], bdy, byca[:])
	byycaLen := scaleExpansionZeroelim(byca[:bycaLen], bdy, byyca[:])
	var bdet [32]float64
	bLen := fastExpansionSumZeroelim(bxxca[:bxxcaLen], byyca[:byycaLen], bdet[:])

	var cxab, cyab [8]float64
	var cxxab, cyyab [16]float64
	cxabLen := scaleExpansionZeroelim(ab[:], cdx, cxab[:])
	cxxabLen := scaleExpansionZeroelim(cxab[:cxabLen], cdx, cxxab[:])
	cyabLen := scaleExpansionZeroelim(ab[:], cdy, cyab[:])
	cyyabLen := scaleExpansionZeroelim(cyab[:cyabLen], cdy, cyyab[:])
	var cdet [32]float64
	cLen := fastExpansionSumZeroelim(cxxab[:cxxabLen], cyyab[:cyyabLen], cdet[:])

	var abdet [64]float64
	abLen := fastExpansionSumZeroelim(adet[:aLen], bdet[:bLen], abdet[:])

	var fin1, fin2 [1152]float64
	finnow, finother := fin1[:], fin2[:]
	finLength := fastExpansionSumZeroelim(abdet[:abLen], cdet[:cLen], finnow)

	absorb := func(addLen int, add []float64) {
		finLength = fastExpansionSumZeroelim(finnow[:finLength], add[:addLen], finother)
		finnow, finother = finother, finnow
	}

	var aa, bb, cc [4]float64
	if bdxtail != 0.0 || bdytail != 0.0 || cdxtail != 0.0 || cdytail != 0.0 {
		adxadx1, adxadx0 := square(adx)
		adyady1, adyady0 := square(ady)
		aa3, aa2, aa1, aa0 := twoTwoSum(adxadx1, adxadx0, adyady1, adyady0)
		aa = [4]float64{aa0, aa1, aa2, aa3}
	}
	if cdxtail != 0.0 || cdytail != 0.0 || adxtail != 0.0 || adytail != 0.0 {
		bdxbdx1, bdxbdx0 := square(bdx)
		bdybdy1, bdybdy0 := square(bdy)
		bb3, bb2, bb1, bb0 := twoTwoSum(bdxbdx1, bdxbdx0, bdybdy1, bdybdy0)
		bb = [4]float64{bb0, bb1, bb2, bb3}
	}
	if adxtail != 0.0 || adytail != 0.0 || bdxtail != 0.0 || bdytail != 0.0 {
		cdxcdx1, cdxcdx0 := square(cdx)
		cdycdy1, cdycdy0 := square(cdy)
		cc3, cc2, cc1, cc0 := twoTwoSum(cdxcdx1, cdxcdx0, cdycdy1, cdycdy0)
		cc = [4]float64{cc0, cc1, cc2, cc3}
	}

	var axtbc, aytbc, bxtca, bytca, cxtab, cytab [8]float64
	var axtbcLen, aytbcLen, bxtcaLen, bytcaLen, cxtabLen, cytabLen int
	var temp8 [8]float64
	var temp16a, temp16b, temp16c [16]float64
	var temp32a, temp32b [32]float64
	var temp48 [48]float64
	var temp64 [64]float64

	if adxtail != 0.0 {
		axtbcLen = scaleExpansionZeroelim(bc[:], adxtail, axtbc[:])
		temp16aLen := scaleExpansionZeroelim(axtbc[:axtbcLen], 2.0*adx, temp16a[:])

		var axtcc [8]float64
		axtccLen := scaleExpansionZeroelim(cc[:], adxtail, axtcc[:])
		temp16bLen := scaleExpansionZeroelim(axtcc[:axtccLen], bdy, temp16b[:])

		var axtbb [8]float64
		axtbbLen := scaleExpansionZeroelim(bb[:], adxtail, axtbb[:])
		temp16cLen := scaleExpansionZeroelim(axtbb[:axtbbLen], -cdy, temp16c[:])

		temp32aLen := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp16b[:temp16bLen], temp32a[:])
		temp48Len := fastExpansionSumZeroelim(temp16c[:temp16cLen], temp32a[:temp32aLen], temp48[:])
		absorb(temp48Len, temp48[:])
	}
	if adytail != 0.0 {
		aytbcLen = scaleExpansionZeroelim(bc[:], adytail, aytbc[:])
		temp16aLen := scaleExpansionZeroelim(aytbc[:aytbcLen], 2.0*ady, temp16a[:])

		var aytbb [8]float64
		aytbbLen := scaleExpansionZeroelim(bb[:], adytail, aytbb[:])
		temp16bLen := scaleExpansionZeroelim(aytbb[:aytbbLen], cdx, temp16b[:])

		var aytcc [8]float64
		aytccLen := scaleExpansionZeroelim(cc[:], adytail, aytcc[:])
		temp16cLen := scaleExpansionZeroelim(aytcc[:aytccLen], -bdx, temp16c[:])

		temp32aLen := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp16b[:temp16bLen], temp32a[:])
		temp48Len := fastExpansionSumZeroelim(temp16c[:temp16cLen], temp32a[:temp32aLen], temp48[:])
		absorb(temp48Len, temp48[:])
	}
	if bdxtail != 0.0 {
		bxtcaLen = scaleExpansionZeroelim(ca[:], bdxtail, bxtca[:])
		temp16aLen := scaleExpansionZeroelim(bxtca[:bxtcaLen], 2.0*bdx, temp16a[:])

		var bxtaa [8]float64
		bxtaaLen := scaleExpansionZeroelim(aa[:], bdxtail, bxtaa[:])
		temp16bLen := scaleExpansionZeroelim(bxtaa[:bxtaaLen], cdy, temp16b[:])

		var bxtcc [8]float64
		bxtccLen := scaleExpansionZeroelim(cc[:], bdxtail, bxtcc[:])
		temp16cLen := scaleExpansionZeroelim(bxtcc[:bxtccLen], -ady, temp16c[:])

		temp32aLen := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp16b[:temp16bLen], temp32a[:])
		temp48Len := fastExpansionSumZeroelim(temp16c[:temp16cLen], temp32a[:temp32aLen], temp48[:])
		absorb(temp48Len, temp48[:])
	}
	if bdytail != 0.0 {
		bytcaLen = scaleExpansionZeroelim(ca[:], bdytail, bytca[:])
		temp16aLen := scaleExpansionZeroelim(bytca[:bytcaLen], 2.0*bdy, temp16a[:])

		var bytcc [8]float64
		bytccLen := scaleExpansionZeroelim(cc[:], bdytail, bytcc[:])
		temp16bLen := scaleExpansionZeroelim(bytcc[:bytccLen], adx, temp16b[:])

		var bytaa [8]float64
		bytaaLen := scaleExpansionZeroelim(aa[:], bdytail, bytaa[:])
		temp16cLen := scaleExpansionZeroelim(bytaa[:bytaaLen], -cdx, temp16c[:])

		temp32aLen := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp16b[:temp16bLen], temp32a[:])
		temp48Len := fastExpansionSumZeroelim(temp16c[:temp16cLen], temp32a[:temp32aLen], temp48[:])
		absorb(temp48Len, temp48[:])
	}
	if cdxtail != 0.0 {
		cxtabLen = scaleExpansionZeroelim(ab[:], cdxtail, cxtab[:])
		temp16aLen := scaleExpansionZeroelim(cxtab[:cxtabLen], 2.0*cdx, temp16a[:])

		var cxtbb [8]float64
		cxtbbLen := scaleExpansionZeroelim(bb[:], cdxtail, cxtbb[:])
		temp16bLen := scaleExpansionZeroelim(cxtbb[:cxtbbLen], ady, temp16b[:])

		var cxtaa [8]float64
		cxtaaLen := scaleExpansionZeroelim(aa[:], cdxtail, cxtaa[:])
		temp16cLen := scaleExpansionZeroelim(cxtaa[:cxtaaLen], -bdy, temp16c[:])

		temp32aLen := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp16b[:temp16bLen], temp32a[:])
		temp48Len := fastExpansionSumZeroelim(temp16c[:temp16cLen], temp32a[:temp32aLen], temp48[:])
		absorb(temp48Len, temp48[:])
	}
	if cdytail != 0.0 {
		cytabLen = scaleExpansionZeroelim(ab[:], cdytail, cytab[:])
		temp16aLen := scaleExpansionZeroelim(cytab[:cytabLen], 2.0*cdy, temp16a[:])

		var cytaa [8]float64
		cytaaLen := scaleExpansionZeroelim(aa[:], cdytail, cytaa[:])
		temp16bLen := scaleExpansionZeroelim(cytaa[:cytaaLen], bdx, temp16b[:])

		var cytbb [8]float64
		cytbbLen := scaleExpansionZeroelim(bb[:], cdytail, cytbb[:])
		temp16cLen := scaleExpansionZeroelim(cytbb[:cytbbLen], -adx, temp16c[:])

		temp32aLen := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp16b[:temp16bLen], temp32a[:])
		temp48Len := fastExpansionSumZeroelim(temp16c[:temp16cLen], temp32a[:temp32aLen], temp48[:])
		absorb(temp48Len, temp48[:])
	}

	var u, v [4]float64
	if adxtail != 0.0 || adytail != 0.0 {
		var bct, bctt [8]float64
		var bctLen, bcttLen int
		if bdxtail != 0.0 || bdytail != 0.0 || cdxtail != 0.0 || cdytail != 0.0 {
			ti1, ti0 := twoProduct(bdxtail, cdy)
			tj1, tj0 := twoProduct(bdx, cdytail)
			u3, u2, u1, u0 := twoTwoSum(ti1, ti0, tj1, tj0)
			u = [4]float64{u0, u1, u2, u3}
			ti1, ti0 = twoProduct(cdxtail, -bdy)
			tj1, tj0 = twoProduct(cdx, -bdytail)
			v3, v2, v1, v0 := twoTwoSum(ti1, ti0, tj1, tj0)
			v = [4]float64{v0, v1, v2, v3}
			bctLen = fastExpansionSumZeroelim(u[:], v[:], bct[:])

			ti1, ti0 = twoProduct(bdxtail, cdytail)
			tj1, tj0 = twoProduct(cdxtail, bdytail)
			bctt3, bctt2, bctt1, bctt0 := twoTwoDiff(ti1, ti0, tj1, tj0)
			bctt = [8]float64{bctt0, bctt1, bctt2, bctt3}
			bcttLen = 4
		} else {
			bct[0] = 0.0
			bctLen = 1
			bctt[0] = 0.0
			bcttLen = 1
		}

		if adxtail != 0.0 {
			temp16aLen := scaleExpansionZeroelim(axtbc[:axtbcLen], adxtail, temp16a[:])
			var axtbct [16]float64
			axtbctLen := scaleExpansionZeroelim(bct[:bctLen], adxtail, axtbct[:])
			temp32aLen := scaleExpansionZeroelim(axtbct[:axtbctLen], 2.0*adx, temp32a[:])
			temp48Len := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp32a[:temp32aLen], temp48[:])
			absorb(temp48Len, temp48[:])

			if bdytail != 0.0 {
				temp8Len := scaleExpansionZeroelim(cc[:], adxtail, temp8[:])
				temp16aLen := scaleExpansionZeroelim(temp8[:temp8Len], bdytail, temp16a[:])
				absorb(temp16aLen, temp16a[:])
			}
			if cdytail != 0.0 {
				temp8Len := scaleExpansionZeroelim(bb[:], -adxtail, temp8[:])
				temp16aLen := scaleExpansionZeroelim(temp8[:temp8Len], cdytail, temp16a[:])
				absorb(temp16aLen, temp16a[:])
			}

			temp32aLen = scaleExpansionZeroelim(axtbct[:axtbctLen], adxtail, temp32a[:])
			var axtbctt [8]float64
			axtbcttLen := scaleExpansionZeroelim(bctt[:bcttLen], adxtail, axtbctt[:])
			temp16aLen = scaleExpansionZeroelim(axtbctt[:axtbcttLen], 2.0*adx, temp16a[:])
			temp16bLen := scaleExpansionZeroelim(axtbctt[:axtbcttLen], adxtail, temp16b[:])
			temp32bLen := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp16b[:temp16bLen], temp32b[:])
			temp64Len := fastExpansionSumZeroelim(temp32a[:temp32aLen], temp32b[:temp32bLen], temp64[:])
			absorb(temp64Len, temp64[:])
		}
		if adytail != 0.0 {
			temp16aLen := scaleExpansionZeroelim(aytbc[:aytbcLen], adytail, temp16a[:])
			var aytbct [16]float64
			aytbctLen := scaleExpansionZeroelim(bct[:bctLen], adytail, aytbct[:])
			temp32aLen := scaleExpansionZeroelim(aytbct[:aytbctLen], 2.0*ady, temp32a[:])
			temp48Len := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp32a[:temp32aLen], temp48[:])
			absorb(temp48Len, temp48[:])

			temp32aLen = scaleExpansionZeroelim(aytbct[:aytbctLen], adytail, temp32a[:])
			var aytbctt [8]float64
			aytbcttLen := scaleExpansionZeroelim(bctt[:bcttLen], adytail, aytbctt[:])
			temp16aLen = scaleExpansionZeroelim(aytbctt[:aytbcttLen], 2.0*ady, temp16a[:])
			temp16bLen := scaleExpansionZeroelim(aytbctt[:aytbcttLen], adytail, temp16b[:])
			temp32bLen := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp16b[:temp16bLen], temp32b[:])
			temp64Len := fastExpansionSumZeroelim(temp32a[:temp32aLen], temp32b[:temp32bLen], temp64[:])
			absorb(temp64Len, temp64[:])
		}
	}
	if bdxtail != 0.0 || bdytail != 0.0 {
		var cat, catt [8]float64
		var catLen, cattLen int
		if cdxtail != 0.0 || cdytail != 0.0 || adxtail != 0.0 || adytail != 0.0 {
			ti1, ti0 := twoProduct(cdxtail, ady)
			tj1, tj0 := twoProduct(cdx, adytail)
			u3, u2, u1, u0 := twoTwoSum(ti1, ti0, tj1, tj0)
			u = [4]float64{u0, u1, u2, u3}
			ti1, ti0 = twoProduct(adxtail, -cdy)
			tj1, tj0 = twoProduct(adx, -cdytail)
			v3, v2, v1, v0 := twoTwoSum(ti1, ti0, tj1, tj0)
			v = [4]float64{v0, v1, v2, v3}
			catLen = fastExpansionSumZeroelim(u[:], v[:], cat[:])

			ti1, ti0 = twoProduct(cdxtail, adytail)
			tj1, tj0 = twoProduct(adxtail, cdytail)
			catt3, catt2, catt1, catt0 := twoTwoDiff(ti1, ti0, tj1, tj0)
			catt = [8]float64{catt0, catt1, catt2, catt3}
			cattLen = 4
		} else {
			cat[0] = 0.0
			catLen = 1
			catt[0] = 0.0
			cattLen = 1
		}

		if bdxtail != 0.0 {
			temp16aLen := scaleExpansionZeroelim(bxtca[:bxtcaLen], bdxtail, temp16a[:])
			var bxtcat [16]float64
			bxtcatLen := scaleExpansionZeroelim(cat[:catLen], bdxtail, bxtcat[:])
			temp32aLen := scaleExpansionZeroelim(bxtcat[:bxtcatLen], 2.0*bdx, temp32a[:])
			temp48Len := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp32a[:temp32aLen], temp48[:])
			absorb(temp48Len, temp48[:])

			if cdytail != 0.0 {
				temp8Len := scaleExpansionZeroelim(aa[:], bdxtail, temp8[:])
				temp16aLen := scaleExpansionZeroelim(temp8[:temp8Len], cdytail, temp16a[:])
				absorb(temp16aLen, temp16a[:])
			}
			if adytail != 0.0 {
				temp8Len := scaleExpansionZeroelim(cc[:], -bdxtail, temp8[:])
				temp16aLen := scaleExpansionZeroelim(temp8[:temp8Len], adytail, temp16a[:])
				absorb(temp16aLen, temp16a[:])
			}

			temp32aLen = scaleExpansionZeroelim(bxtcat[:bxtcatLen], bdxtail, temp32a[:])
			var bxtcatt [8]float64
			bxtcattLen := scaleExpansionZeroelim(catt[:cattLen], bdxtail, bxtcatt[:])
			temp16aLen = scaleExpansionZeroelim(bxtcatt[:bxtcattLen], 2.0*bdx, temp16a[:])
			temp16bLen := scaleExpansionZeroelim(bxtcatt[:bxtcattLen], bdxtail, temp16b[:])
			temp32bLen := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp16b[:temp16bLen], temp32b[:])
			temp64Len := fastExpansionSumZeroelim(temp32a[:temp32aLen], temp32b[:temp32bLen], temp64[:])
			absorb(temp64Len, temp64[:])
		}
		if bdytail != 0.0 {
			temp16aLen := scaleExpansionZeroelim(bytca[:bytcaLen], bdytail, temp16a[:])
			var bytcat [16]float64
			bytcatLen := scaleExpansionZeroelim(cat[:catLen], bdytail, bytcat[:])
			temp32aLen := scaleExpansionZeroelim(bytcat[:bytcatLen], 2.0*bdy, temp32a[:])
			temp48Len := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp32a[:temp32aLen], temp48[:])
			absorb(temp48Len, temp48[:])

			temp32aLen = scaleExpansionZeroelim(bytcat[:bytcatLen], bdytail, temp32a[:])
			var bytcatt [8]float64
			bytcattLen := scaleExpansionZeroelim(catt[:cattLen], bdytail, bytcatt[:])
			temp16aLen = scaleExpansionZeroelim(bytcatt[:bytcattLen], 2.0*bdy, temp16a[:])
			temp16bLen := scaleExpansionZeroelim(bytcatt[:bytcattLen], bdytail, temp16b[:])
			temp32bLen := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp16b[:temp16bLen], temp32b[:])
			temp64Len := fastExpansionSumZeroelim(temp32a[:temp32aLen], temp32b[:temp32bLen], temp64[:])
			absorb(temp64Len, temp64[:])
		}
	}
	if cdxtail != 0.0 || cdytail != 0.0 {
		var abt, abtt [8]float64
		var abtLen, abttLen int
		if adxtail != 0.0 || adytail != 0.0 || bdxtail != 0.0 || bdytail != 0.0 {
			ti1, ti0 := twoProduct(adxtail, bdy)
			tj1, tj0 := twoProduct(adx, bdytail)
			u3, u2, u1, u0 := twoTwoSum(ti1, ti0, tj1, tj0)
			u = [4]float64{u0, u1, u2, u3}
			ti1, ti0 = twoProduct(bdxtail, -ady)
			tj1, tj0 = twoProduct(bdx, -adytail)
			v3, v2, v1, v0 := twoTwoSum(ti1, ti0, tj1, tj0)
			v = [4]float64{v0, v1, v2, v3}
			abtLen = fastExpansionSumZeroelim(u[:], v[:], abt[:])

			ti1, ti0 = twoProduct(adxtail, bdytail)
			tj1, tj0 = twoProduct(bdxtail, adytail)
			abtt3, abtt2, abtt1, abtt0 := twoTwoDiff(ti1, ti0, tj1, tj0)
			abtt = [8]float64{abtt0, abtt1, abtt2, abtt3}
			abttLen = 4
		} else {
			abt[0] = 0.0
			abtLen = 1
			abtt[0] = 0.0
			abttLen = 1
		}

		if cdxtail != 0.0 {
			temp16aLen := scaleExpansionZeroelim(cxtab[:cxtabLen], cdxtail, temp16a[:])
			var cxtabt [16]float64
			cxtabtLen := scaleExpansionZeroelim(abt[:abtLen], cdxtail, cxtabt[:])
			temp32aLen := scaleExpansionZeroelim(cxtabt[:cxtabtLen], 2.0*cdx, temp32a[:])
			temp48Len := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp32a[:temp32aLen], temp48[:])
			absorb(temp48Len, temp48[:])

			if adytail != 0.0 {
				temp8Len := scaleExpansionZeroelim(bb[:], cdxtail, temp8[:])
				temp16aLen := scaleExpansionZeroelim(temp8[:temp8Len], adytail, temp16a[:])
				absorb(temp16aLen, temp16a[:])
			}
			if bdytail != 0.0 {
				temp8Len := scaleExpansionZeroelim(aa[:], -cdxtail, temp8[:])
				temp16aLen := scaleExpansionZeroelim(temp8[:temp8Len], bdytail, temp16a[:])
				absorb(temp16aLen, temp16a[:])
			}

			temp32aLen = scaleExpansionZeroelim(cxtabt[:cxtabtLen], cdxtail, temp32a[:])
			var cxtabtt [8]float64
			cxtabttLen := scaleExpansionZeroelim(abtt[:abttLen], cdxtail, cxtabtt[:])
			temp16aLen = scaleExpansionZeroelim(cxtabtt[:cxtabttLen], 2.0*cdx, temp16a[:])
			temp16bLen := scaleExpansionZeroelim(cxtabtt[:cxtabttLen], cdxtail, temp16b[:])
			temp32bLen := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp16b[:temp16bLen], temp32b[:])
			temp64Len := fastExpansionSumZeroelim(temp32a[:temp32aLen], temp32b[:temp32bLen], temp64[:])
			absorb(temp64Len, temp64[:])
		}
		if cdytail != 0.0 {
			temp16aLen := scaleExpansionZeroelim(cytab[:cytabLen], cdytail, temp16a[:])
			var cytabt [16]float64
			cytabtLen := scaleExpansionZeroelim(abt[:abtLen], cdytail, cytabt[:])
			temp32aLen := scaleExpansionZeroelim(cytabt[:cytabtLen], 2.0*cdy, temp32a[:])
			temp48Len := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp32a[:temp32aLen], temp48[:])
			absorb(temp48Len, temp48[:])

			temp32aLen = scaleExpansionZeroelim(cytabt[:cytabtLen], cdytail, temp32a[:])
			var cytabtt [8]float64
			cytabttLen := scaleExpansionZeroelim(abtt[:abttLen], cdytail, cytabtt[:])
			temp16aLen = scaleExpansionZeroelim(cytabtt[:cytabttLen], 2.0*cdy, temp16a[:])
			temp16bLen := scaleExpansionZeroelim(cytabtt[:cytabttLen], cdytail, temp16b[:])
			temp32bLen := fastExpansionSumZeroelim(temp16a[:temp16aLen], temp16b[:temp16bLen], temp32b[:])
			temp64Len := fastExpansionSumZeroelim(temp32a[:temp32aLen], temp32b[:temp32bLen], temp64[:])
			absorb(temp64Len, temp64[:])
		}
	}

	return finnow[finLength-1]
}

// --- Derived predicates (section 4.1) ---

// Left reports whether c is strictly counter-clockwise of the directed
// segment a->b.
func Left(a, b, c Point) bool {
	return Orient2D(a, b, c) > 0
}

// LeftOn reports whether c is on or counter-clockwise of the directed
// segment a->b.
func LeftOn(a, b, c Point) bool {
	return Orient2D(a, b, c) >= 0
}

// Collinear reports whether a, b, c lie on a common line.
func Collinear(a, b, c Point) bool {
	return Orient2D(a, b, c) == 0
}

// Classification describes where a point lies relative to a directed
// segment's supporting line.
type Classification int

const (
	ClassLeft Classification = iota
	ClassRight
	ClassOrigin
	ClassDestination
	ClassBetween
	ClassBehind
	ClassBeyond
)

func (c Classification) String() string {
	switch c {
	case ClassLeft:
		return "Left"
	case ClassRight:
		return "Right"
	case ClassOrigin:
		return "Origin"
	case ClassDestination:
		return "Destination"
	case ClassBetween:
		return "Between"
	case ClassBehind:
		return "Behind"
	case ClassBeyond:
		return "Beyond"
	default:
		return "Unknown"
	}
}

// Classify returns c's position relative to the oriented segment a->b.
func Classify(a, b, c Point) Classification {
	sign := Orient2D(a, b, c)
	switch {
	case sign > 0:
		return ClassLeft
	case sign < 0:
		return ClassRight
	}
	// c is on the line through a and b.
	if c == a {
		return ClassOrigin
	}
	if c == b {
		return ClassDestination
	}
	// Use the dominant axis to order a, b, c along the shared line.
	var ta, tc float64
	if math.Abs(b.X-a.X) > math.Abs(b.Y-a.Y) {
		ta = b.X - a.X
		tc = c.X - a.X
	} else {
		ta = b.Y - a.Y
		tc = c.Y - a.Y
	}
	if ta < 0 {
		ta, tc = -ta, -tc
	}
	switch {
	case tc < 0:
		return ClassBehind
	case tc > ta:
		return ClassBeyond
	default:
		return ClassBetween
	}
}
