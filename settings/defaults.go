package settings

// DefaultSettings returns the built-in site configuration. Every consumer of
// the settings store merges database rows on top of this tree, so a key listed
// here is always present in the loaded result even when the database has no
// row for it.
//
// The tree is rebuilt on every call so callers can mutate their copy freely.
func DefaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"site": map[string]interface{}{
			"name":        "Vaahan",
			"tagline":     "Your ride, your way",
			"description": "Vaahan is a ride-sharing platform connecting riders with trusted driver partners across India.",
			"logo_url":    "/images/logo.svg",
		},
		"contact": map[string]interface{}{
			"email":   "hello@vaahan.in",
			"phone":   "+91 98765 43210",
			"address": "Vaahan Mobility Pvt. Ltd., Koramangala, Bengaluru 560034",
		},
		"social": map[string]interface{}{
			"instagram": "https://instagram.com/vaahan.in",
			"twitter":   "https://twitter.com/vaahan_in",
			"linkedin":  "https://linkedin.com/company/vaahan",
			"youtube":   "",
		},
		"apps": map[string]interface{}{
			"rider_android":  "https://play.google.com/store/apps/details?id=in.vaahan.rider",
			"rider_ios":      "https://apps.apple.com/in/app/vaahan/id000000000",
			"driver_android": "https://play.google.com/store/apps/details?id=in.vaahan.driver",
		},
		"theme": map[string]interface{}{
			"primary_color":   "#0EA5E9",
			"secondary_color": "#0F172A",
			"dark_mode":       false,
		},
		"hero": map[string]interface{}{
			"heading":    "Move through your city, effortlessly",
			"subheading": "Affordable rides in under 3 minutes. Available in 12 cities.",
			"cta_label":  "Book a ride",
		},
		// Top-level (non-category) values land in the "general" category when
		// flattened to rows.
		"maintenance_mode": false,
		"announcement":     "",
	}
}
