package domain

// Configuration is the set of transformation parameters, keyed by kind.
// Composite kinds carry a sub-struct; flag kinds carry a scalar. Every leaf
// is a pointer: nil means "absent", which is distinct from a zero value.
type Configuration struct {
	Fill             *FillConfig    `json:"fill,omitempty"`
	Recolor          *RecolorConfig `json:"recolor,omitempty"`
	Remove           *RemoveConfig  `json:"remove,omitempty"`
	Restore          *bool          `json:"restore,omitempty"`
	RemoveBackground *bool          `json:"removeBackground,omitempty"`
}

// FillConfig resizes/outpaints the image to a target aspect ratio.
type FillConfig struct {
	AspectRatio *string `json:"aspectRatio,omitempty"`
	Width       *int    `json:"width,omitempty"`
	Height      *int    `json:"height,omitempty"`
}

// RecolorConfig replaces the color of the object matched by Prompt.
type RecolorConfig struct {
	Prompt   *string `json:"prompt,omitempty"`
	To       *string `json:"to,omitempty"`
	Multiple *bool   `json:"multiple,omitempty"`
}

// RemoveConfig erases the object matched by Prompt.
type RemoveConfig struct {
	Prompt       *string `json:"prompt,omitempty"`
	RemoveShadow *bool   `json:"removeShadow,omitempty"`
	Multiple     *bool   `json:"multiple,omitempty"`
}

// IsEmpty reports whether c carries no keys at all. A nil receiver is empty.
func (c *Configuration) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Fill.isEmpty() && c.Recolor.isEmpty() && c.Remove.isEmpty() &&
		c.Restore == nil && c.RemoveBackground == nil
}

// Clone returns a deep copy of c. Cloning nil yields nil.
func (c *Configuration) Clone() *Configuration {
	if c == nil {
		return nil
	}
	return &Configuration{
		Fill:             c.Fill.clone(),
		Recolor:          c.Recolor.clone(),
		Remove:           c.Remove.clone(),
		Restore:          clonePtr(c.Restore),
		RemoveBackground: clonePtr(c.RemoveBackground),
	}
}

// Merge returns a new configuration with draft patched over c.
// See MergeConfiguration.
func (c *Configuration) Merge(draft *Configuration) *Configuration {
	return MergeConfiguration(draft, c)
}

// MergeConfiguration patches draft over committed and returns a freshly
// allocated result; neither input is modified.
//
// A kind present in both inputs as a sub-struct is merged field by field.
// Anything else present in draft (a scalar kind, or a kind the committed
// side lacks) replaces the committed value. Keys absent from draft are kept.
// A nil draft yields a copy of committed; a nil committed is treated as empty.
func MergeConfiguration(draft, committed *Configuration) *Configuration {
	out := committed.Clone()
	if out == nil {
		out = &Configuration{}
	}
	if draft == nil {
		return out
	}

	out.Fill = mergeFill(draft.Fill, out.Fill)
	out.Recolor = mergeRecolor(draft.Recolor, out.Recolor)
	out.Remove = mergeRemove(draft.Remove, out.Remove)
	out.Restore = pick(draft.Restore, out.Restore)
	out.RemoveBackground = pick(draft.RemoveBackground, out.RemoveBackground)

	return out
}

// ---------------------------------------------------------------------------
// Per-kind helpers
// ---------------------------------------------------------------------------

// committed arguments below are already private clones owned by the caller.

func mergeFill(d, c *FillConfig) *FillConfig {
	if d == nil {
		return c
	}
	if c == nil {
		return d.clone()
	}
	return &FillConfig{
		AspectRatio: pick(d.AspectRatio, c.AspectRatio),
		Width:       pick(d.Width, c.Width),
		Height:      pick(d.Height, c.Height),
	}
}

func mergeRecolor(d, c *RecolorConfig) *RecolorConfig {
	if d == nil {
		return c
	}
	if c == nil {
		return d.clone()
	}
	return &RecolorConfig{
		Prompt:   pick(d.Prompt, c.Prompt),
		To:       pick(d.To, c.To),
		Multiple: pick(d.Multiple, c.Multiple),
	}
}

func mergeRemove(d, c *RemoveConfig) *RemoveConfig {
	if d == nil {
		return c
	}
	if c == nil {
		return d.clone()
	}
	return &RemoveConfig{
		Prompt:       pick(d.Prompt, c.Prompt),
		RemoveShadow: pick(d.RemoveShadow, c.RemoveShadow),
		Multiple:     pick(d.Multiple, c.Multiple),
	}
}

func (f *FillConfig) clone() *FillConfig {
	if f == nil {
		return nil
	}
	return &FillConfig{
		AspectRatio: clonePtr(f.AspectRatio),
		Width:       clonePtr(f.Width),
		Height:      clonePtr(f.Height),
	}
}

func (f *FillConfig) isEmpty() bool {
	return f == nil || (f.AspectRatio == nil && f.Width == nil && f.Height == nil)
}

func (r *RecolorConfig) clone() *RecolorConfig {
	if r == nil {
		return nil
	}
	return &RecolorConfig{
		Prompt:   clonePtr(r.Prompt),
		To:       clonePtr(r.To),
		Multiple: clonePtr(r.Multiple),
	}
}

func (r *RecolorConfig) isEmpty() bool {
	return r == nil || (r.Prompt == nil && r.To == nil && r.Multiple == nil)
}

func (r *RemoveConfig) clone() *RemoveConfig {
	if r == nil {
		return nil
	}
	return &RemoveConfig{
		Prompt:       clonePtr(r.Prompt),
		RemoveShadow: clonePtr(r.RemoveShadow),
		Multiple:     clonePtr(r.Multiple),
	}
}

func (r *RemoveConfig) isEmpty() bool {
	return r == nil || (r.Prompt == nil && r.RemoveShadow == nil && r.Multiple == nil)
}

// pick returns a copy of draft when set, otherwise committed as-is.
func pick[T any](draft, committed *T) *T {
	if draft != nil {
		return clonePtr(draft)
	}
	return committed
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
