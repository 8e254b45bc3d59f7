package domain

const (
	DefaultTargetAudience = "General consumers"
	DefaultBrandTone      = "Professional"
)

// ListingInput carries the product details a listing is generated from.
// ProductName and Features are required; the rest default server-side.
type ListingInput struct {
	ProductName    string `json:"productName"`
	Category       string `json:"category"`
	Features       string `json:"features"`
	TargetAudience string `json:"targetAudience"`
	BrandTone      string `json:"brandTone"`
}

// WithDefaults fills the optional audience and tone fields the way the
// backend's request schema would.
func (in ListingInput) WithDefaults() ListingInput {
	if in.TargetAudience == "" {
		in.TargetAudience = DefaultTargetAudience
	}
	if in.BrandTone == "" {
		in.BrandTone = DefaultBrandTone
	}
	return in
}

// ListingGenerationResult holds A/B listing variants. The three variant
// sequences are index-aligned: the i-th title, bullet list, and description
// together form one variant.
type ListingGenerationResult struct {
	ProductTitleVariants    []string   `json:"product_title_variants"`
	BulletPointVariants     [][]string `json:"bullet_point_variants"`
	FullDescriptionVariants []string   `json:"full_description_variants"`
	PrimaryKeywords         []string   `json:"primary_keywords"`
	SecondaryKeywords       []string   `json:"secondary_keywords"`
}

// VariantCount returns the number of index-aligned variants.
func (r ListingGenerationResult) VariantCount() int {
	return len(r.ProductTitleVariants)
}
