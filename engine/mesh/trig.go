package mesh

import gomath "math"

func ksin(x float32) float32 {
	return float32(gomath.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(gomath.Cos(float64(x)))
}
