package geom

// CatmullRom samples a uniform Catmull-Rom spline through pts and returns
// exactly samples points, endpoints included. The first and last control
// points are duplicated so the curve passes through them. With fewer than
// two control points or fewer than two samples the input is returned as a
// copy unchanged.
func CatmullRom(pts []Vec3, samples int) []Vec3 {
	if len(pts) < 2 || samples < 2 {
		out := make([]Vec3, len(pts))
		copy(out, pts)
		return out
	}

	segments := len(pts) - 1
	out := make([]Vec3, 0, samples)
	for i := 0; i < samples; i++ {
		u := float64(i) / float64(samples-1) * float64(segments)
		seg := int(u)
		if seg >= segments {
			seg = segments - 1
		}
		t := u - float64(seg)

		p1 := pts[seg]
		p2 := pts[seg+1]
		p0 := p1
		if seg > 0 {
			p0 = pts[seg-1]
		}
		p3 := p2
		if seg+2 < len(pts) {
			p3 = pts[seg+2]
		}
		out = append(out, catmullPoint(p0, p1, p2, p3, t))
	}
	return out
}

// catmullPoint evaluates the uniform Catmull-Rom basis for one segment at t.
func catmullPoint(p0, p1, p2, p3 Vec3, t float64) Vec3 {
	t2 := t * t
	t3 := t2 * t
	return Vec3{
		X: catmull1(p0.X, p1.X, p2.X, p3.X, t, t2, t3),
		Y: catmull1(p0.Y, p1.Y, p2.Y, p3.Y, t, t2, t3),
		Z: catmull1(p0.Z, p1.Z, p2.Z, p3.Z, t, t2, t3),
	}
}

func catmull1(p0, p1, p2, p3, t, t2, t3 float64) float64 {
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}
