package cascade

// Trigger decides, per node, whether an upstream notification recomputes the
// node and whether its own recompute propagates further.
type Trigger interface {
	// gate runs before the recompute; returning false drops the
	// notification entirely.
	gate(n *node, upstreamChanged bool) bool
	// propagate runs after the recompute with the node's own change flag.
	propagate(selfChanged bool) bool
}

// Always recomputes and propagates on every notification, regardless of
// whether anything changed. The default.
var Always Trigger = alwaysTrigger{}

type alwaysTrigger struct{}

func (alwaysTrigger) gate(*node, bool) bool { return true }
func (alwaysTrigger) propagate(bool) bool   { return true }

// OnChange recomputes on every notification but propagates only when the
// node's own value actually changed. Cells without an equality relation
// (non-comparable types) count every recompute as a change.
var OnChange Trigger = onChangeTrigger{}

type onChangeTrigger struct{}

func (onChangeTrigger) gate(*node, bool) bool       { return true }
func (onChangeTrigger) propagate(changed bool) bool { return changed }

// thresholdTrigger consults a per-node predicate before recomputing. While
// the predicate reports false the node neither recomputes nor propagates;
// once it reports true again the node resumes normally.
type thresholdTrigger struct{}

// Threshold returns a trigger gated by the predicate installed with
// Handle.SetThreshold. Until a predicate is set it behaves like Always.
func Threshold() Trigger { return thresholdTrigger{} }

func (thresholdTrigger) gate(n *node, _ bool) bool {
	if n.threshold == nil {
		return true
	}
	return n.threshold()
}

func (thresholdTrigger) propagate(bool) bool { return true }
