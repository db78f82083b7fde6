package review

// StepResult is the outcome of applying one review to a card's position
// in its interval schedule.
type StepResult struct {
	Step         int
	IntervalDays int
	Completed    bool
}

// NextStep applies a review outcome to a card's current step.
//
// The step is first clamped into [0, len(intervals)-1]. A success
// advances it by one, saturating at the last index; a failure leaves it
// unchanged in either direction. Completed is set only when a success
// lands the step on the last index.
func NextStep(intervals []int, step int, success bool) StepResult {
	last := len(intervals) - 1

	s := step
	if s < 0 {
		s = 0
	}
	if last >= 0 && s > last {
		s = last
	}

	if success && s < last {
		s++
	}

	return StepResult{
		Step:         s,
		IntervalDays: intervalAt(intervals, s),
		Completed:    success && last >= 0 && s == last,
	}
}

// intervalAt returns intervals[step], falling back to the first interval
// and finally to one day when the index or the table is unusable.
func intervalAt(intervals []int, step int) int {
	if step >= 0 && step < len(intervals) {
		return intervals[step]
	}
	if len(intervals) > 0 {
		return intervals[0]
	}
	return 1
}
