package blend

// SourceOver composites a premultiplied source pixel over a premultiplied
// destination pixel.
// Formula: S + D * (1 - Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	switch sa {
	case 255:
		return sr, sg, sb, sa
	case 0:
		if sr|sg|sb == 0 {
			return dr, dg, db, da
		}
	}
	invSa := 255 - sa
	return addClamp(sr, MulDiv255(dr, invSa)),
		addClamp(sg, MulDiv255(dg, invSa)),
		addClamp(sb, MulDiv255(db, invSa)),
		addClamp(sa, MulDiv255(da, invSa))
}

// SourceOverSpan composites a span of RGBA8 pixels from src over dst in
// place. Both slices hold 4 bytes per pixel; the shorter one bounds the
// span.
func SourceOverSpan(dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		sa := src[i+3]
		if sa == 0 && src[i]|src[i+1]|src[i+2] == 0 {
			continue
		}
		dst[i], dst[i+1], dst[i+2], dst[i+3] = SourceOver(
			src[i], src[i+1], src[i+2], sa,
			dst[i], dst[i+1], dst[i+2], dst[i+3],
		)
	}
}
