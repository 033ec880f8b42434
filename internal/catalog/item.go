package catalog

// Item is a single quiz piece: a clip the learner must identify by
// composer and title.
type Item struct {
	Composer string `toml:"composer"`
	Title    string `toml:"title"`

	// MediaRef is the YouTube video ID of the clip.
	MediaRef string `toml:"youtube_id"`

	// StartOffset is where playback should begin, in seconds. Zero means
	// from the beginning.
	StartOffset int `toml:"start,omitempty"`

	// Note is a supplementary fact shown only after the answer is revealed.
	Note string `toml:"note,omitempty"`

	// Group is the selectable unit the item belongs to (a course week).
	Group string `toml:"group"`
}

// Key identifies an item within a group.
type Key struct {
	Composer string
	Title    string
}

// Key returns the identity of the item.
func (it Item) Key() Key {
	return Key{Composer: it.Composer, Title: it.Title}
}

// String renders the item the way answers are displayed: Composer - "Title".
func (it Item) String() string {
	return it.Composer + ` - "` + it.Title + `"`
}

// HasNote reports whether the item carries a key point for the reveal.
func (it Item) HasNote() bool {
	return it.Note != ""
}
