// Package fonts descreve as fontes usadas pelo dashboard
package fonts

type Source string

const (
	SourceGoogle Source = "google"
	SourceLocal  Source = "local"
)

type Font struct {
	Name    string   `json:"name"`
	Source  Source   `json:"source"`
	Subsets []string `json:"subsets,omitempty"`
	Weights []string `json:"weights,omitempty"`
	Src     string   `json:"src,omitempty"`
	Display string   `json:"display,omitempty"`
}

func Inter() Font {
	return Font{
		Name:    "Inter",
		Source:  SourceGoogle,
		Subsets: []string{"latin"},
	}
}

func Lusitana() Font {
	return Font{
		Name:    "Lusitana",
		Source:  SourceGoogle,
		Subsets: []string{"latin"},
		Weights: []string{"400", "700"},
	}
}

// FontAwesome é servida a partir de public/
func FontAwesome() Font {
	return Font{
		Name:    "FontAwesome",
		Source:  SourceLocal,
		Src:     "public/fontawesome-webfont.ttf",
		Display: "swap",
	}
}

func All() []Font {
	return []Font{Inter(), Lusitana(), FontAwesome()}
}
