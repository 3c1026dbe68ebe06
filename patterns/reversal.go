package patterns

// MorningStar matches a three bar bullish reversal ending at idx: a long
// bearish bar, a small star that opens below its close, then a bullish bar
// closing beyond the midpoint of the first body.
func (r *Recognizer) MorningStar(idx int) (Result, bool) {
	pos, ok := r.window(idx, 3)
	if !ok {
		return Result{}, false
	}
	d1, d2, d3 := r.s.At(pos-2), r.s.At(pos-1), r.s.At(pos)
	avg := r.AvgBody(pos, DefaultAvgLookback)

	if !d1.Bearish() || d1.Body() < avg*0.8 {
		return Result{}, false
	}
	if d2.Body() > avg*0.3 || d2.High > d1.Close {
		return Result{}, false
	}
	if !d3.Bullish() || d3.Close <= (d1.Open+d1.Close)/2 {
		return Result{}, false
	}

	return Result{
		Name:        "早晨之星",
		NameEn:      "Morning Star",
		Type:        Bullish,
		Confidence:  0.75,
		Description: "Bottom reversal: selling exhausts and buyers take back the first bar's body",
		Position:    pos,
	}, true
}

// EveningStar is the bearish mirror of MorningStar.
func (r *Recognizer) EveningStar(idx int) (Result, bool) {
	pos, ok := r.window(idx, 3)
	if !ok {
		return Result{}, false
	}
	d1, d2, d3 := r.s.At(pos-2), r.s.At(pos-1), r.s.At(pos)
	avg := r.AvgBody(pos, DefaultAvgLookback)

	if !d1.Bullish() || d1.Body() < avg*0.8 {
		return Result{}, false
	}
	if d2.Body() > avg*0.3 || d2.Low < d1.Close {
		return Result{}, false
	}
	if !d3.Bearish() || d3.Close >= (d1.Open+d1.Close)/2 {
		return Result{}, false
	}

	return Result{
		Name:        "黄昏之星",
		NameEn:      "Evening Star",
		Type:        Bearish,
		Confidence:  0.75,
		Description: "Top reversal: buying exhausts and sellers push back into the first bar's body",
		Position:    pos,
	}, true
}

// BullishEngulfing matches a bullish bar whose body strictly contains the
// previous bearish body.
func (r *Recognizer) BullishEngulfing(idx int) (Result, bool) {
	pos, ok := r.window(idx, 2)
	if !ok {
		return Result{}, false
	}
	d1, d2 := r.s.At(pos-1), r.s.At(pos)

	if !d1.Bearish() || !d2.Bullish() {
		return Result{}, false
	}
	if d2.Open >= d1.Close || d2.Close <= d1.Open {
		return Result{}, false
	}

	return Result{
		Name:        "看涨吞没",
		NameEn:      "Bullish Engulfing",
		Type:        Bullish,
		Confidence:  0.7,
		Description: "A bullish body swallows the prior bearish body",
		Position:    pos,
	}, true
}

// BearishEngulfing matches a bearish bar whose body strictly contains the
// previous bullish body.
func (r *Recognizer) BearishEngulfing(idx int) (Result, bool) {
	pos, ok := r.window(idx, 2)
	if !ok {
		return Result{}, false
	}
	d1, d2 := r.s.At(pos-1), r.s.At(pos)

	if !d1.Bullish() || !d2.Bearish() {
		return Result{}, false
	}
	if d2.Open <= d1.Close || d2.Close >= d1.Open {
		return Result{}, false
	}

	return Result{
		Name:        "看跌吞没",
		NameEn:      "Bearish Engulfing",
		Type:        Bearish,
		Confidence:  0.7,
		Description: "A bearish body swallows the prior bullish body",
		Position:    pos,
	}, true
}

// BullishHarami matches a small bullish body strictly inside the previous
// bearish body.
func (r *Recognizer) BullishHarami(idx int) (Result, bool) {
	pos, ok := r.window(idx, 2)
	if !ok {
		return Result{}, false
	}
	d1, d2 := r.s.At(pos-1), r.s.At(pos)

	if !d1.Bearish() || !d2.Bullish() {
		return Result{}, false
	}
	if d2.Close >= d1.Open || d2.Open <= d1.Close {
		return Result{}, false
	}

	return Result{
		Name:        "看涨孕线",
		NameEn:      "Bullish Harami",
		Type:        Bullish,
		Confidence:  0.6,
		Description: "A small bullish bar held inside a large bearish bar; the decline is losing steam",
		Position:    pos,
	}, true
}
