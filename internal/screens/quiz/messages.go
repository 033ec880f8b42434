package quiz

import "github.com/abhisek/opusquiz/internal/catalog"

// clipPlayedMsg reports the outcome of opening a clip.
type clipPlayedMsg struct {
	Item catalog.Item
	Err  error
}
