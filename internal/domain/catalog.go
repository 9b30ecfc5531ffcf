package domain

// TransformationType describes a transformation kind for display and form setup.
type TransformationType struct {
	Kind     TransformationKind
	Title    string
	Subtitle string
	Icon     string
	// Fields lists the kind-specific form fields (title and publicId are always present).
	Fields []FormField
}

var transformationTypes = map[TransformationKind]TransformationType{
	KindRestore: {
		Kind:     KindRestore,
		Title:    "Restore Image",
		Subtitle: "Refine images by removing noise and imperfections",
		Icon:     "image.svg",
	},
	KindRemoveBackground: {
		Kind:     KindRemoveBackground,
		Title:    "Background Remove",
		Subtitle: "Removes the background of the image using AI",
		Icon:     "camera.svg",
	},
	KindFill: {
		Kind:     KindFill,
		Title:    "Generative Fill",
		Subtitle: "Enhance an image's dimensions using AI outpainting",
		Icon:     "stars.svg",
		Fields:   []FormField{FieldAspectRatio},
	},
	KindRemove: {
		Kind:     KindRemove,
		Title:    "Object Remove",
		Subtitle: "Identify and eliminate objects from images",
		Icon:     "scan.svg",
		Fields:   []FormField{FieldPrompt},
	},
	KindRecolor: {
		Kind:     KindRecolor,
		Title:    "Object Recolor",
		Subtitle: "Identify and recolor objects from the image",
		Icon:     "filter.svg",
		Fields:   []FormField{FieldPrompt, FieldColor},
	},
}

// LookupTransformationType returns the catalogue entry for kind.
func LookupTransformationType(kind TransformationKind) (TransformationType, bool) {
	t, ok := transformationTypes[kind]
	return t, ok
}

// HasField reports whether the kind exposes the given form field.
func (t TransformationType) HasField(f FormField) bool {
	for _, field := range t.Fields {
		if field == f {
			return true
		}
	}
	return false
}

// DefaultConfiguration returns the configuration a kind contributes before
// any field is edited. Each call returns a new value.
func (t TransformationType) DefaultConfiguration() *Configuration {
	on := func() *bool { v := true; return &v }

	switch t.Kind {
	case KindRestore:
		return &Configuration{Restore: on()}
	case KindRemoveBackground:
		return &Configuration{RemoveBackground: on()}
	case KindFill:
		return &Configuration{Fill: &FillConfig{}}
	case KindRemove:
		return &Configuration{Remove: &RemoveConfig{RemoveShadow: on(), Multiple: on()}}
	case KindRecolor:
		return &Configuration{Recolor: &RecolorConfig{Multiple: on()}}
	}
	return &Configuration{}
}
