package sentiment

import (
	"regexp"
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\(https?:\/\/[^\s\)]+\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	hashtagPattern      = regexp.MustCompile(`#(\w+)`)
	mentionPattern      = regexp.MustCompile(`@(\w+)`)
	nonWordPattern      = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
)

// RemoveLinks strips markdown links (keeping the anchor text) and bare URLs.
func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// ConvertMarkdownToText renders markdown to plain text so formatting noise
// never reaches the scorers.
func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := strings.Join(strings.Fields(string(output)), " ")
	return RemoveLinks(plain)
}

// CleanText removes URLs, mentions, hashtag markers (keeping the word),
// punctuation and surplus whitespace, then lowercases.
func CleanText(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = mentionPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "#", "")
	text = nonWordPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}

// ExtractHashtags returns all hashtag words (without the # marker).
func ExtractHashtags(text string) []string {
	return captureGroups(hashtagPattern, text)
}

// ExtractMentions returns all @mention names.
func ExtractMentions(text string) []string {
	return captureGroups(mentionPattern, text)
}

// ExtractURLs returns all URLs found in the text.
func ExtractURLs(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

func captureGroups(re *regexp.Regexp, text string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}

// KeywordCount is one keyword with its occurrence count.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ExtractKeywords returns the topN most frequent meaningful words: cleaned,
// stopwords removed, short tokens dropped. Ties are broken alphabetically so
// the ordering is stable.
func ExtractKeywords(text string, topN int) []KeywordCount {
	cleaned := stopwords.CleanString(CleanText(text), "en", false)

	counts := make(map[string]int)
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 {
			continue
		}
		counts[word]++
	}

	keywords := make([]KeywordCount, 0, len(counts))
	for word, count := range counts {
		keywords = append(keywords, KeywordCount{Word: word, Count: count})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})

	if topN > 0 && len(keywords) > topN {
		keywords = keywords[:topN]
	}
	return keywords
}
