package recipe

// Defaults applied by Assemble for fields the parser never populated.
const (
	DefaultTitle       = "Delicious Recipe"
	DefaultDescription = "A tasty recipe made with your ingredients"
	DefaultPrepTime    = "15 minutes"
	DefaultCookTime    = "30 minutes"
	DefaultServings    = 2
)

// Draft collects extraction results before defaults are applied. Zero values
// mean "not found"; Assemble substitutes the documented default for each.
type Draft struct {
	Title       string
	Description string
	PrepTime    string
	CookTime    string
	Servings    int
	Ingredients []string
	Steps       []Step
}

// Assemble builds the final Recipe from a draft, substituting defaults for
// any field left empty. It never fails: the output always satisfies the
// invariant that every scalar field is non-empty and Servings >= 1.
func Assemble(d Draft) Recipe {
	r := Recipe{
		Title:       d.Title,
		Description: d.Description,
		PrepTime:    d.PrepTime,
		CookTime:    d.CookTime,
		Servings:    d.Servings,
		Ingredients: d.Ingredients,
		Steps:       d.Steps,
	}
	if r.Title == "" {
		r.Title = DefaultTitle
	}
	if r.Description == "" {
		r.Description = DefaultDescription
	}
	if r.PrepTime == "" {
		r.PrepTime = DefaultPrepTime
	}
	if r.CookTime == "" {
		r.CookTime = DefaultCookTime
	}
	if r.Servings < 1 {
		r.Servings = DefaultServings
	}
	if r.Ingredients == nil {
		r.Ingredients = []string{}
	}
	if r.Steps == nil {
		r.Steps = []Step{}
	}
	return r
}
