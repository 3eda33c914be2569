package quant

// chartTail bounds the velocity/acceleration series exposed for charting.
const chartTail = 20

// VelocityResult carries the first and second derivatives of a position
// series and their sign-based classification.
type VelocityResult struct {
	Velocity           float64   `json:"velocity"`
	Acceleration       float64   `json:"acceleration"`
	Trend              string    `json:"trend"`
	MomentumSignal     string    `json:"momentum_signal"`
	VelocitySeries     []float64 `json:"velocity_series"`
	AccelerationSeries []float64 `json:"acceleration_series"`
}

// Velocity computes the positioning velocity (week-over-week change) and
// acceleration (change of velocity) of a series, smoothed with a centered
// moving average of width smoothing when the series is long enough.
// smoothing <= 0 selects DefaultSmoothingWindow. Fewer than 3 points yield
// the zero-valued insufficient-data result.
func Velocity(positions []float64, smoothing int) VelocityResult {
	if smoothing <= 0 {
		smoothing = DefaultSmoothingWindow
	}

	if len(positions) < 3 {
		return VelocityResult{
			Trend:              InterpInsufficient,
			MomentumSignal:     "Neutral",
			VelocitySeries:     []float64{},
			AccelerationSeries: []float64{},
		}
	}

	smoothed := positions
	if len(positions) >= smoothing {
		smoothed = smooth(positions, smoothing)
	}

	velocity := diff(smoothed)
	acceleration := diff(velocity)
	if len(acceleration) == 0 {
		acceleration = []float64{0}
	}

	var curVel, curAcc float64
	if len(velocity) > 0 {
		curVel = velocity[len(velocity)-1]
	}
	if len(acceleration) > 0 {
		curAcc = acceleration[len(acceleration)-1]
	}

	trend, signal := classifyMomentum(curVel, curAcc)

	return VelocityResult{
		Velocity:           round(curVel, 0),
		Acceleration:       round(curAcc, 0),
		Trend:              trend,
		MomentumSignal:     signal,
		VelocitySeries:     tail(velocity, chartTail),
		AccelerationSeries: tail(acceleration, chartTail),
	}
}

func classifyMomentum(velocity, acceleration float64) (trend, signal string) {
	switch {
	case velocity > 0:
		switch {
		case acceleration > 0:
			return "Accelerating Buildup", "Strong Bullish"
		case acceleration < 0:
			return "Decelerating Buildup", "Weakening Bullish"
		default:
			return "Steady Buildup", "Bullish"
		}
	case velocity < 0:
		switch {
		case acceleration < 0:
			return "Accelerating Selloff", "Strong Bearish"
		case acceleration > 0:
			return "Decelerating Selloff", "Potential Reversal"
		default:
			return "Steady Selloff", "Bearish"
		}
	default:
		return "Stable", "Neutral"
	}
}

// smooth applies a centered moving average of the given width, clamping the
// window at the series edges.
func smooth(values []float64, width int) []float64 {
	half := width / 2
	out := make([]float64, len(values))
	for i := range values {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half + 1
		if hi > len(values) {
			hi = len(values)
		}
		out[i] = mean(values[lo:hi])
	}
	return out
}

// diff is the first difference; one element shorter than its input.
func diff(values []float64) []float64 {
	if len(values) < 2 {
		return []float64{}
	}
	out := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		out[i-1] = values[i] - values[i-1]
	}
	return out
}
