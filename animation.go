package expandable

import "time"

// Animation selects how body rows appear and disappear during a section
// transition.
type Animation int

const (
	// AnimationFade ramps row visibility with a background-colored
	// overlay. The default for both directions.
	AnimationFade Animation = iota

	// AnimationSlide ramps row height between zero and its natural size.
	AnimationSlide

	// AnimationNone applies the change immediately; the transition
	// completes synchronously.
	AnimationNone
)

// String returns the animation name, e.g. "fade".
func (a Animation) String() string {
	switch a {
	case AnimationFade:
		return "fade"
	case AnimationSlide:
		return "slide"
	case AnimationNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseAnimation maps an animation name back to its kind. Unknown names
// report false and leave the caller on the default.
func ParseAnimation(name string) (Animation, bool) {
	switch name {
	case "fade":
		return AnimationFade, true
	case "slide":
		return AnimationSlide, true
	case "none":
		return AnimationNone, true
	default:
		return AnimationFade, false
	}
}

// transitionDuration is the length of one animated row batch.
const transitionDuration = 220 * time.Millisecond
