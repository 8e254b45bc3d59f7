package normalize

import (
	"fmt"
	"strings"

	"marketpulse-client/internal/domain"
)

// Listing normalizes a raw listing-generation payload. Any variant field
// the backend omits is synthesized deterministically from the submitted
// input, then the three variant sequences are trimmed to the shortest so
// index alignment always holds.
func Listing(raw map[string]interface{}, input domain.ListingInput) domain.ListingGenerationResult {
	input = input.WithDefaults()

	titles := stringSeq(raw, "product_title_variants")
	if len(titles) == 0 {
		titles = fallbackTitles(input)
	}

	descriptions := stringSeq(raw, "full_description_variants")
	if len(descriptions) == 0 {
		descriptions = fallbackDescriptions(input)
	}

	bullets := bulletSeq(raw, "bullet_point_variants")
	if len(bullets) == 0 {
		bullets = fallbackBullets(input)
	}

	// Defensive alignment: a backend returning mismatched variant counts
	// gets trimmed to the shortest sequence rather than padded.
	n := len(titles)
	if len(descriptions) < n {
		n = len(descriptions)
	}
	if len(bullets) < n {
		n = len(bullets)
	}

	result := domain.ListingGenerationResult{
		ProductTitleVariants:    titles[:n],
		FullDescriptionVariants: descriptions[:n],
		BulletPointVariants:     bullets[:n],
	}

	if keywords := stringSeq(raw, "primary_keywords"); len(keywords) > 0 {
		result.PrimaryKeywords = keywords
	} else {
		result.PrimaryKeywords = fallbackPrimaryKeywords(input)
	}

	if keywords := stringSeq(raw, "secondary_keywords"); len(keywords) > 0 {
		result.SecondaryKeywords = keywords
	} else {
		result.SecondaryKeywords = fallbackSecondaryKeywords()
	}

	return result
}

// FallbackListing builds the complete deterministic listing served when the
// backend call fails.
func FallbackListing(input domain.ListingInput) domain.ListingGenerationResult {
	input = input.WithDefaults()
	return domain.ListingGenerationResult{
		ProductTitleVariants:    fallbackTitles(input),
		BulletPointVariants:     fallbackBullets(input),
		FullDescriptionVariants: fallbackDescriptions(input),
		PrimaryKeywords:         fallbackPrimaryKeywords(input),
		SecondaryKeywords:       fallbackSecondaryKeywords(),
	}
}

// bulletSeq extracts a sequence of string sequences. Returns nil when the
// field is absent or not a sequence.
func bulletSeq(raw map[string]interface{}, key string) [][]string {
	src, ok := raw[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([][]string, 0, len(src))
	for _, item := range src {
		inner, ok := item.([]interface{})
		if !ok {
			continue
		}
		bullets := make([]string, 0, len(inner))
		for _, b := range inner {
			if s, ok := b.(string); ok {
				bullets = append(bullets, s)
			}
		}
		out = append(out, bullets)
	}
	return out
}

func fallbackTitles(input domain.ListingInput) []string {
	name := productNameOrDefault(input)
	return []string{
		fmt.Sprintf("%s - Professional Grade | Highest Quality", name),
		fmt.Sprintf("Premium %s | Advanced Performance & Durability", name),
		fmt.Sprintf("%s Pro - Industry Leading Technology", name),
	}
}

func fallbackDescriptions(input domain.ListingInput) []string {
	name := productNameOrDefault(input)
	category := valueOrDefault(input.Category, "product")
	features := valueOrDefault(input.Features, "advanced functionality")
	audience := valueOrDefault(input.TargetAudience, "demanding users")
	return []string{
		fmt.Sprintf("Introducing our premium %s, designed for professionals who demand excellence. This %s combines breakthrough technology with robust construction to deliver unmatched performance. Perfect for %s, it features %s. Experience the difference that quality makes.", name, category, audience, features),
		fmt.Sprintf("Elevate your experience with our %s, engineered to exceed expectations. This exceptional %s offers %s in a package designed for %s. Built with precision and tested for reliability, it represents the pinnacle of innovation in its category.", name, category, features, audience),
		fmt.Sprintf("Discover the %s - where advanced technology meets practical design. This professional-grade %s provides %s for %s. Crafted from premium materials and backed by comprehensive support, it's the smart choice for those who value quality and results.", name, category, features, audience),
	}
}

func fallbackBullets(input domain.ListingInput) [][]string {
	name := strings.ToLower(productNameOrDefault(input))
	return [][]string{
		{
			fmt.Sprintf("Premium quality %s built to last", name),
			"Engineered for maximum performance and reliability",
			"Easy to use with intuitive controls and setup",
			"Backed by 2-year manufacturer warranty",
			"Trusted by professionals worldwide",
		},
		{
			"Advanced technology for superior results",
			"Durable construction withstands heavy use",
			"Versatile design suitable for multiple applications",
			"Energy efficient operation saves costs",
			"Excellent customer support and service",
		},
		{
			"Cutting-edge innovation at an affordable price",
			"Ergonomic design for comfortable extended use",
			"Low maintenance requirements",
			"Compatible with industry-standard accessories",
			"Fast shipping and reliable delivery",
		},
	}
}

func fallbackPrimaryKeywords(input domain.ListingInput) []string {
	return []string{
		strings.ToLower(productNameOrDefault(input)),
		strings.ToLower(valueOrDefault(input.Category, "general")),
		"premium",
		"professional",
		"quality",
		"2024",
	}
}

func fallbackSecondaryKeywords() []string {
	return []string{"buy", "best", "review", "sale", "discount", "price", "deal"}
}

func productNameOrDefault(input domain.ListingInput) string {
	return valueOrDefault(input.ProductName, "Premium Product")
}

func valueOrDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
