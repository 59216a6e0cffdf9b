package orchard

// Action is a single Orchard action description. The frontier consumes
// only the x-coordinate of the action's note commitment output.
type Action struct {
	cmx [32]byte
}

func NewAction(cmx [32]byte) Action {
	return Action{cmx: cmx}
}

// Cmx returns the x-coordinate of the action's note commitment.
func (a Action) Cmx() [32]byte { return a.cmx }

// Bundle is the ordered list of Orchard actions from a single transaction.
// It is read-only once constructed.
type Bundle struct {
	actions []Action
}

func NewBundle(actions []Action) *Bundle {
	return &Bundle{actions: append([]Action(nil), actions...)}
}

// Actions returns the bundle's actions in order.
func (b *Bundle) Actions() []Action { return b.actions }
