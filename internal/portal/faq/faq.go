// Package faq answers chat questions from fixed, ordered trigger tables.
// There is no ranking and no fuzzy matching: input is lower-cased and the
// first rule with a trigger substring present wins.
package faq

import (
	"fmt"
	"strings"
)

// UseLLM stays off; the configured API key is read but never used.
const UseLLM = false

const (
	// Greeting opens every conversation and survives transcript pruning.
	Greeting = "Hi! I'm IRIS, your Impact Resource & Investment Specialist. I can help with questions about our services, pricing, and more. How can I assist you today?"

	Fallback = "I don't have specific information about that yet. Please try one of the suggested questions or contact us directly for more assistance."

	// ContactPrompt is appended to an unanswered question.
	ContactPrompt = " Would you like to send us a message directly?"

	// ContactUs is the example button that opens the contact form instead of
	// asking a question.
	ContactUs = "Contact Us"

	defaultTopicGreeting = "Let me know what questions you have about this topic."
)

// Category scopes matching to one topic. The zero value is the general scope.
type Category string

const (
	CategoryNone           Category = ""
	CategoryCDFI           Category = "cdfi"
	CategoryNMTC           Category = "nmtc"
	CategoryCharterSchools Category = "charterSchools"
)

// Categories lists the topics in display order.
var Categories = []Category{CategoryCDFI, CategoryNMTC, CategoryCharterSchools}

// ParseCategory accepts only the known topic identifiers.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := topics[c]; !ok {
		return CategoryNone, fmt.Errorf("faq: unknown category %q", s)
	}
	return c, nil
}

// Label is the topic's button text.
func (c Category) Label() string {
	if t, ok := topics[c]; ok {
		return t.Label
	}
	return string(c)
}

// CategoryGreeting is appended when a topic is picked.
func CategoryGreeting(c Category) string {
	if t, ok := topics[c]; ok {
		return t.Greeting
	}
	return defaultTopicGreeting
}

// ExampleQuestions are the popular questions offered before any input.
var ExampleQuestions = []string{
	"What services do you provide?",
	"What is your pricing?",
	"Where are you located?",
}

// Response is a matched answer.
type Response struct {
	RuleID string `json:"ruleId"`
	Text   string `json:"text"`
}

// Match answers text within category. Inside a known topic the topic's rules
// are consulted and its overview answers anything else, so ok is always true
// there. Without a topic the FAQ intents are tried, then small talk; ok is
// false when nothing matched and the caller should use Fallback.
func Match(text string, category Category) (Response, bool) {
	lower := strings.ToLower(text)

	if t, ok := topics[category]; ok {
		if r, ok := t.Rules.First(lower); ok {
			return Response{RuleID: r.ID, Text: r.Response}, true
		}
		return Response{RuleID: t.Overview.ID, Text: t.Overview.Response}, true
	}

	if r, ok := generalRules.First(lower); ok {
		return Response{RuleID: r.ID, Text: r.Response}, true
	}
	return Response{}, false
}

// MatchFAQ only consults the four canned intents. Example question clicks use
// it regardless of the selected topic.
func MatchFAQ(text string) (Response, bool) {
	if r, ok := faqRules.First(strings.ToLower(text)); ok {
		return Response{RuleID: r.ID, Text: r.Response}, true
	}
	return Response{}, false
}

// StillLearning answers an example question that missed inside a topic.
func StillLearning(c Category) string {
	return fmt.Sprintf("I'm still learning about %s. Please try another question or check our website for more information.", c)
}

// IsUnanswered reports whether a reply is one of the "don't know" answers
// that should be followed by the contact prompt.
func IsUnanswered(reply string) bool {
	return strings.Contains(reply, "I don't have specific information") ||
		strings.Contains(reply, "I'm still learning about") ||
		strings.Contains(reply, "try one of the suggested questions")
}
