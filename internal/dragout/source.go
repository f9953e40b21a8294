package dragout

// Action is the decision returned while a drag is in flight.
type Action int

const (
	ActionContinue Action = iota
	ActionDrop
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionContinue:
		return "continue"
	case ActionDrop:
		return "drop"
	case ActionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Feedback selects the cursor shown during the drag.
type Feedback int

const (
	FeedbackDefaultCursors Feedback = iota
)

// Effect is a set of DROPEFFECT flags.
type Effect uint32

const (
	EffectNone Effect = 0
	EffectCopy Effect = 1
	EffectMove Effect = 2
	EffectLink Effect = 4
)

// KeyState mirrors the MK_* flags reported while dragging.
type KeyState uint32

const (
	KeyPrimaryButton   KeyState = 0x0001
	KeySecondaryButton KeyState = 0x0002
	KeyShift           KeyState = 0x0004
	KeyControl         KeyState = 0x0008
	KeyMiddleButton    KeyState = 0x0010
	KeyAlt             KeyState = 0x0020
)

// Source decides whether a running drag continues, drops or cancels.
type Source interface {
	QueryContinue(escapePressed bool, keys KeyState) Action
	GiveFeedback(effect Effect) Feedback
}

// ButtonSource drops when the primary button is released and cancels as soon
// as escape is reported.
type ButtonSource struct{}

// QueryContinue implements Source.
func (ButtonSource) QueryContinue(escapePressed bool, keys KeyState) Action {
	if escapePressed {
		return ActionCancel
	}
	if keys&KeyPrimaryButton == 0 {
		return ActionDrop
	}
	return ActionContinue
}

// GiveFeedback implements Source.
func (ButtonSource) GiveFeedback(Effect) Feedback {
	return FeedbackDefaultCursors
}
