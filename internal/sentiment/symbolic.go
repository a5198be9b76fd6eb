package sentiment

import (
	"strings"

	"github.com/forPelevin/gomoji"

	"github.com/sentimeter/sentimeter/internal/models"
)

// Static emoji polarity sets. Built once at startup, never mutated. A glyph
// absent from both sets classifies as neutral.
var positiveEmojis = glyphSet(
	"😀", "😃", "😄", "😁", "😆", "😅", "🤣", "😂",
	"🙂", "🙃", "😉", "😊", "😇", "🥰", "😍", "🤩",
	"😘", "😗", "😚", "😙", "🥲", "😋", "😛", "😜",
	"🤪", "😝", "👍", "👏", "🎉", "🎊", "❤️", "💕",
	"💖", "💗", "💓", "💝", "💘", "🌟", "⭐", "✨",
	"🔥", "💪", "🤗", "🥳", "😎", "🤟", "🙌", "👌",
)

var negativeEmojis = glyphSet(
	"😞", "😔", "😟", "😕", "🙁", "☹️", "😣", "😖",
	"😫", "😩", "🥺", "😢", "😭", "😤", "😠", "😡",
	"🤬", "😈", "👿", "💀", "☠️", "💔", "😰", "😥",
	"😓", "🤮", "🤢", "😱", "😨", "👎", "😒", "😑",
	"😬", "🤥", "😪", "🥱", "😵", "🤕", "🤒", "💩",
)

func glyphSet(glyphs ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(glyphs))
	for _, g := range glyphs {
		set[g] = struct{}{}
	}
	return set
}

type emoticonEntry struct {
	glyph     string
	sentiment string
}

// ASCII emoticon table. Matching is substring presence, not frequency:
// repeated occurrences of the same emoticon count once. Kept in a slice so
// extraction order is deterministic.
var emoticonTable = []emoticonEntry{
	{":)", models.CategoryPositive}, {":-)", models.CategoryPositive},
	{":D", models.CategoryPositive}, {":-D", models.CategoryPositive},
	{";)", models.CategoryPositive}, {";-)", models.CategoryPositive},
	{":P", models.CategoryPositive}, {":-P", models.CategoryPositive},
	{"XD", models.CategoryPositive}, {"<3", models.CategoryPositive},
	{":*", models.CategoryPositive}, {"^^", models.CategoryPositive},
	{"=)", models.CategoryPositive}, {"=D", models.CategoryPositive},
	{"B)", models.CategoryPositive},

	{":(", models.CategoryNegative}, {":-(", models.CategoryNegative},
	{":'(", models.CategoryNegative}, {"D:", models.CategoryNegative},
	{">:(", models.CategoryNegative}, {":/", models.CategoryNegative},
	{":-/", models.CategoryNegative}, {":|", models.CategoryNegative},
	{":-|", models.CategoryNegative}, {">.<", models.CategoryNegative},
	{"T_T", models.CategoryNegative}, {"TT", models.CategoryNegative},

	{":-O", models.CategoryNeutral}, {":O", models.CategoryNeutral},
	{"O_o", models.CategoryNeutral}, {"o_O", models.CategoryNeutral},
	{"._.", models.CategoryNeutral},
}

// EmojiSentiment classifies a single glyph against the static polarity sets.
func EmojiSentiment(glyph string) string {
	if _, ok := positiveEmojis[glyph]; ok {
		return models.CategoryPositive
	}
	if _, ok := negativeEmojis[glyph]; ok {
		return models.CategoryNegative
	}
	return models.CategoryNeutral
}

// ExtractEmojis scans text rune-by-rune for emoji code points and classifies
// each occurrence. The canonical name comes from the emoji code-point
// resolver; glyphs it does not know are skipped.
func ExtractEmojis(text string) []models.SymbolicMatch {
	var matches []models.SymbolicMatch
	for _, r := range text {
		glyph := string(r)
		info, err := gomoji.GetInfo(glyph)
		if err != nil {
			continue
		}
		matches = append(matches, models.SymbolicMatch{
			Glyph:     glyph,
			Name:      info.Slug,
			Sentiment: EmojiSentiment(glyph),
		})
	}
	return matches
}

// ExtractEmoticons scans text for presence of each table entry. Overlapping
// emoticons that share characters (":)" inside ":-)") each register:
// matching is presence-based, not frequency-based.
func ExtractEmoticons(text string) []models.SymbolicMatch {
	var matches []models.SymbolicMatch
	for _, entry := range emoticonTable {
		if strings.Contains(text, entry.glyph) {
			matches = append(matches, models.SymbolicMatch{
				Glyph:     entry.glyph,
				Sentiment: entry.sentiment,
			})
		}
	}
	return matches
}

// ExtractSymbols returns every symbolic signal in the text, emojis first
// then emoticons, in deterministic order.
func ExtractSymbols(text string) []models.SymbolicMatch {
	return append(ExtractEmojis(text), ExtractEmoticons(text)...)
}
