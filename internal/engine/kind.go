package engine

import "fmt"

// Kind tags what a component is for. GetComponent looks components up by
// Kind, so each component type reports a fixed Kind.
type Kind uint16

// Engine-defined kinds. Gameplay packages declare their own starting at
// KindUser.
const (
	KindNone Kind = iota
	KindInput
	KindSprite
	KindShape
	KindText
	KindBody
	KindCollider
	KindBehavior
	KindAudio

	KindUser Kind = 64
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindInput:
		return "Input"
	case KindSprite:
		return "Sprite"
	case KindShape:
		return "Shape"
	case KindText:
		return "Text"
	case KindBody:
		return "Body"
	case KindCollider:
		return "Collider"
	case KindBehavior:
		return "Behavior"
	case KindAudio:
		return "Audio"
	}
	if k >= KindUser {
		return fmt.Sprintf("User(%d)", k-KindUser)
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}
