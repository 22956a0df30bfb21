package client

// AdvanceValue moves *val toward target by at most speed*dt without passing it.
func AdvanceValue(val *float32, target, speed, dt float32) {
	step := speed * dt
	switch {
	case *val < target:
		*val += step
		if *val > target {
			*val = target
		}
	case *val > target:
		*val -= step
		if *val < target {
			*val = target
		}
	}
}
