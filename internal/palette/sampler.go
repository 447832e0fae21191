package palette

import (
	"image"
	"math"
)

// GridSide is the fixed sampling resolution. Every source image is
// area-resampled onto a GridSide×GridSide grid before quantization, so
// extraction cost never depends on source resolution.
const GridSide = 50

// ─── YCbCr → RGB lookup tables ───────────────────────────────
// Pre-computed at init. Avoids per-pixel floating-point for JPEG sources.
var (
	ycbcrCrR [256]int32 // R = Y + ycbcrCrR[Cr]
	ycbcrCbG [256]int32 // G = Y - ycbcrCbG[Cb] - ycbcrCrG[Cr]
	ycbcrCrG [256]int32
	ycbcrCbB [256]int32 // B = Y + ycbcrCbB[Cb]
)

func init() {
	for i := 0; i < 256; i++ {
		v := float64(i) - 128.0
		ycbcrCrR[i] = int32(math.Round(1.40200 * v))
		ycbcrCbG[i] = int32(math.Round(0.34414 * v))
		ycbcrCrG[i] = int32(math.Round(0.71414 * v))
		ycbcrCbB[i] = int32(math.Round(1.77200 * v))
	}
}

// ─── grid sampling ───────────────────────────────────────────

// Sample resamples img onto the fixed grid and returns tightly packed
// non-premultiplied RGBA bytes, GridSide*GridSide*4 long. The grid ignores
// aspect ratio on purpose: quantization only cares about color frequency,
// not geometry.
//
// A nil image or empty bounds fails closed with an empty buffer so callers
// fall through to the fallback palette.
func Sample(img image.Image) []byte {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return nil
	}

	rgba := make([]byte, GridSide*GridSide*4)
	switch src := img.(type) {
	case *image.NRGBA:
		gridNRGBA(src, bounds, srcW, srcH, rgba)
	case *image.RGBA:
		gridRGBA(src, bounds, srcW, srcH, rgba)
	case *image.YCbCr:
		gridYCbCr(src, bounds, srcW, srcH, rgba)
	case *image.Gray:
		gridGray(src, bounds, srcW, srcH, rgba)
	default:
		gridGeneric(img, bounds, srcW, srcH, rgba)
	}
	return rgba
}

// gridNRGBA — non-premultiplied RGBA (PNG). uint32 accumulation.
func gridNRGBA(src *image.NRGBA, bounds image.Rectangle, srcW, srcH int, rgba []byte) {
	pix := src.Pix
	stride := src.Stride
	bY := bounds.Min.Y - src.Rect.Min.Y
	bX4 := (bounds.Min.X - src.Rect.Min.X) * 4

	for dy := 0; dy < GridSide; dy++ {
		sy0, sy1 := srcSpan(dy, GridSide, srcH)
		for dx := 0; dx < GridSide; dx++ {
			sx0, sx1 := srcSpan(dx, GridSide, srcW)

			var rS, gS, bS, aS uint32
			for sy := sy0; sy < sy1; sy++ {
				off := (bY+sy)*stride + bX4 + sx0*4
				for n := sx1 - sx0; n > 0; n-- {
					rS += uint32(pix[off])
					gS += uint32(pix[off+1])
					bS += uint32(pix[off+2])
					aS += uint32(pix[off+3])
					off += 4
				}
			}

			cnt := uint32((sy1 - sy0) * (sx1 - sx0))
			di := (dy*GridSide + dx) * 4
			rgba[di] = byte(rS / cnt)
			rgba[di+1] = byte(gS / cnt)
			rgba[di+2] = byte(bS / cnt)
			rgba[di+3] = byte(aS / cnt)
		}
	}
}

// gridRGBA — premultiplied RGBA. Accumulate premultiplied, divide by the
// alpha sum to recover straight color.
func gridRGBA(src *image.RGBA, bounds image.Rectangle, srcW, srcH int, rgba []byte) {
	pix := src.Pix
	stride := src.Stride
	bY := bounds.Min.Y - src.Rect.Min.Y
	bX4 := (bounds.Min.X - src.Rect.Min.X) * 4

	for dy := 0; dy < GridSide; dy++ {
		sy0, sy1 := srcSpan(dy, GridSide, srcH)
		for dx := 0; dx < GridSide; dx++ {
			sx0, sx1 := srcSpan(dx, GridSide, srcW)

			var rS, gS, bS, aS uint32
			for sy := sy0; sy < sy1; sy++ {
				off := (bY+sy)*stride + bX4 + sx0*4
				for n := sx1 - sx0; n > 0; n-- {
					rS += uint32(pix[off])
					gS += uint32(pix[off+1])
					bS += uint32(pix[off+2])
					aS += uint32(pix[off+3])
					off += 4
				}
			}

			di := (dy*GridSide + dx) * 4
			if aS > 0 {
				rgba[di] = unmul(rS, aS)
				rgba[di+1] = unmul(gS, aS)
				rgba[di+2] = unmul(bS, aS)
			}
			cnt := uint32((sy1 - sy0) * (sx1 - sx0))
			rgba[di+3] = byte(aS / cnt)
		}
	}
}

// gridYCbCr — JPEG sources. LUT conversion with direct subsample
// addressing; one implementation covers every subsample ratio.
func gridYCbCr(src *image.YCbCr, bounds image.Rectangle, srcW, srcH int, rgba []byte) {
	yData, cbData, crData := src.Y, src.Cb, src.Cr
	yStride := src.YStride
	minX, minY := bounds.Min.X, bounds.Min.Y
	ryBase := minY - src.Rect.Min.Y
	rxBase := minX - src.Rect.Min.X

	for dy := 0; dy < GridSide; dy++ {
		sy0, sy1 := srcSpan(dy, GridSide, srcH)
		for dx := 0; dx < GridSide; dx++ {
			sx0, sx1 := srcSpan(dx, GridSide, srcW)

			var rS, gS, bS int32
			for sy := sy0; sy < sy1; sy++ {
				yOff := (ryBase+sy)*yStride + rxBase
				for sx := sx0; sx < sx1; sx++ {
					y := int32(yData[yOff+sx])
					ci := src.COffset(minX+sx, minY+sy)
					cr, cb := crData[ci], cbData[ci]

					rS += clampByte(y + ycbcrCrR[cr])
					gS += clampByte(y - ycbcrCbG[cb] - ycbcrCrG[cr])
					bS += clampByte(y + ycbcrCbB[cb])
				}
			}

			cnt := int32((sy1 - sy0) * (sx1 - sx0))
			di := (dy*GridSide + dx) * 4
			rgba[di] = byte(rS / cnt)
			rgba[di+1] = byte(gS / cnt)
			rgba[di+2] = byte(bS / cnt)
			rgba[di+3] = 255
		}
	}
}

// gridGray — grayscale. uint32 accumulation.
func gridGray(src *image.Gray, bounds image.Rectangle, srcW, srcH int, rgba []byte) {
	pix := src.Pix
	stride := src.Stride
	bY := bounds.Min.Y - src.Rect.Min.Y
	bX := bounds.Min.X - src.Rect.Min.X

	for dy := 0; dy < GridSide; dy++ {
		sy0, sy1 := srcSpan(dy, GridSide, srcH)
		for dx := 0; dx < GridSide; dx++ {
			sx0, sx1 := srcSpan(dx, GridSide, srcW)

			var vS uint32
			for sy := sy0; sy < sy1; sy++ {
				off := (bY+sy)*stride + bX + sx0
				for n := sx1 - sx0; n > 0; n-- {
					vS += uint32(pix[off])
					off++
				}
			}

			v := byte(vS / uint32((sy1-sy0)*(sx1-sx0)))
			di := (dy*GridSide + dx) * 4
			rgba[di] = v
			rgba[di+1] = v
			rgba[di+2] = v
			rgba[di+3] = 255
		}
	}
}

// gridGeneric — fallback using image.At (interface dispatch per pixel).
func gridGeneric(img image.Image, bounds image.Rectangle, srcW, srcH int, rgba []byte) {
	minX, minY := bounds.Min.X, bounds.Min.Y
	for dy := 0; dy < GridSide; dy++ {
		sy0, sy1 := srcSpan(dy, GridSide, srcH)
		for dx := 0; dx < GridSide; dx++ {
			sx0, sx1 := srcSpan(dx, GridSide, srcW)

			var rS, gS, bS, aS uint32
			for sy := sy0; sy < sy1; sy++ {
				for sx := sx0; sx < sx1; sx++ {
					cr, cg, cb, ca := img.At(minX+sx, minY+sy).RGBA()
					rS += cr >> 8
					gS += cg >> 8
					bS += cb >> 8
					aS += ca >> 8
				}
			}

			di := (dy*GridSide + dx) * 4
			if aS > 0 {
				// RGBA() is premultiplied; recover straight color.
				rgba[di] = unmul(rS, aS)
				rgba[di+1] = unmul(gS, aS)
				rgba[di+2] = unmul(bS, aS)
			}
			cnt := uint32((sy1 - sy0) * (sx1 - sx0))
			rgba[di+3] = byte(aS / cnt)
		}
	}
}

// ─── helpers ──────────────────────────────────────────────────

// srcSpan maps destination cell d to its half-open source range. Sources
// smaller than the grid replicate pixels (every cell still covers at least
// one source pixel).
func srcSpan(d, dstSize, srcSize int) (int, int) {
	s0 := d * srcSize / dstSize
	s1 := (d + 1) * srcSize / dstSize
	if s1 <= s0 {
		s1 = s0 + 1
	}
	if s1 > srcSize {
		s1 = srcSize
	}
	return s0, s1
}

// clampByte clamps an int32 to [0, 255].
func clampByte(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// unmul recovers a straight color byte from premultiplied channel and
// alpha sums. 64-bit so huge per-cell spans cannot overflow.
func unmul(sum, alphaSum uint32) byte {
	v := uint64(sum) * 255 / uint64(alphaSum)
	if v > 255 {
		v = 255
	}
	return byte(v)
}
