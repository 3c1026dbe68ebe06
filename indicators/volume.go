package indicators

// VolumeProfile relates the latest volume to recent activity.
type VolumeProfile struct {
	Ratio float64
}

// VolumeRatio divides the latest volume by the mean volume of the
// VolumeLookback bars before it. The ratio is 1.0 when there is not enough
// history or the prior mean is zero.
func (e *Engine) VolumeRatio() VolumeProfile {
	n := len(e.vols)
	lb := e.params.VolumeLookback
	if lb <= 0 || n < lb+1 {
		return VolumeProfile{Ratio: 1.0}
	}

	sum := 0.0
	for _, v := range e.vols[n-1-lb : n-1] {
		sum += v
	}
	mean := sum / float64(lb)
	if mean <= 0 {
		return VolumeProfile{Ratio: 1.0}
	}
	return VolumeProfile{Ratio: e.vols[n-1] / mean}
}
