package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"scenegrip/internal/ui/input/types"
)

// FilterMode narrows the entity panel to matching entries while typing
type FilterMode struct {
	TextInputMode
}

func NewFilterMode(ti *textinput.Model) *FilterMode {
	return &FilterMode{
		TextInputMode: NewTextInputMode(types.ModeFilter, "filter", "Filter: ", ti),
	}
}
