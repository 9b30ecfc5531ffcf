package domain

// AspectRatioOption is a selectable target size for the fill kind.
type AspectRatioOption struct {
	Key         string
	Label       string
	AspectRatio string
	Width       int
	Height      int
}

var aspectRatioOptions = map[string]AspectRatioOption{
	"1:1": {
		Key:         "1:1",
		Label:       "Square (1:1)",
		AspectRatio: "1:1",
		Width:       1000,
		Height:      1000,
	},
	"3:4": {
		Key:         "3:4",
		Label:       "Standard Portrait (3:4)",
		AspectRatio: "3:4",
		Width:       1000,
		Height:      1334,
	},
	"9:16": {
		Key:         "9:16",
		Label:       "Phone Portrait (9:16)",
		AspectRatio: "9:16",
		Width:       1000,
		Height:      1778,
	},
}

// LookupAspectRatio returns the option registered under key.
func LookupAspectRatio(key string) (AspectRatioOption, bool) {
	o, ok := aspectRatioOptions[key]
	return o, ok
}

// AspectRatioKeys returns the option keys in display order.
func AspectRatioKeys() []string {
	return []string{"1:1", "3:4", "9:16"}
}
