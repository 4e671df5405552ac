package service

import "strings"

// rateBucket binds one GST rate to the keyword substrings that imply it.
type rateBucket struct {
	rate     int
	keywords []string
}

// Buckets are evaluated in this order; the first match wins. New keywords
// extend the tables, never the control flow.
var gstBuckets = []rateBucket{
	{5, []string{"food", "restaurant", "swiggy", "zomato", "meal"}},
	{12, []string{"electronics", "printer", "ink", "office", "chair"}},
	{18, []string{"software", "subscription", "google", "workspace", "canva", "internet", "wifi"}},
}

// DetectGSTRate returns the GST percentage implied by a cleaned description,
// or 0 when no keyword bucket matches. Pure and total; independent of the
// statistical classifier.
func DetectGSTRate(cleanText string) int {
	for _, bucket := range gstBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(cleanText, kw) {
				return bucket.rate
			}
		}
	}
	return 0
}
