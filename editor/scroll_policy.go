package editor

import "fmt"

// ScrollPolicy decides who may move the viewport.
type ScrollPolicy int

const (
	// ScrollAllowManual lets the mouse wheel scroll away from the caret. The
	// next caret move scrolls back.
	ScrollAllowManual ScrollPolicy = iota
	// ScrollFollowCaretOnly ignores the wheel; only caret moves scroll.
	ScrollFollowCaretOnly
)

var scrollPolicyNames = map[ScrollPolicy]string{
	ScrollAllowManual:     "manual",
	ScrollFollowCaretOnly: "follow",
}

func (p ScrollPolicy) String() string {
	if name, ok := scrollPolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("ScrollPolicy(%d)", int(p))
}

// ParseScrollPolicy accepts the names printed by String.
func ParseScrollPolicy(name string) (ScrollPolicy, error) {
	for p, n := range scrollPolicyNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown scroll policy %q", name)
}

func (p ScrollPolicy) allowsWheel() bool { return p == ScrollAllowManual }
