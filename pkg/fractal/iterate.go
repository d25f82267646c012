package fractal

// MaxIter caps the escape-time loop. Iterate returning MaxIter means the
// point never escaped and is treated as inside the set. Lower it for faster
// frames, raise it for finer gradients near the boundary.
const MaxIter = 200

// Iterate runs z' = z*z + c from z = 0 and counts iterations until |z| > 2,
// checked against the squared magnitude to skip the square root.
func Iterate(cre, cim float64) int {
	var zre, zim float64 = 0, 0
	it := 0
	for zre*zre+zim*zim <= 4.0 {
		// z = z ^ 2 + c
		// the imaginary part must use the pre-update real part
		copyZre := zre
		zre = zre*zre - zim*zim + cre
		zim = 2*zim*copyZre + cim

		if it >= MaxIter {
			return MaxIter
		}
		it++
	}
	return it
}
