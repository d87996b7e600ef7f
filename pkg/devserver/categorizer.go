package devserver

import (
	"strings"

	"github.com/promptdeck/promptdeck/pkg/prompt"
)

// defaultCategories is offered when no keyword matches.
var defaultCategories = []string{"一般", "テキスト生成", "その他"}

// keywordCategories maps a content keyword to the categories it implies.
// First match wins, checked in order.
var keywordCategories = []struct {
	keyword    string
	categories []string
}{
	{"コード", []string{"プログラミング", "コード生成", "開発"}},
	{"python", []string{"プログラミング", "Python", "開発"}},
	{"翻訳", []string{"翻訳", "言語", "ローカライゼーション"}},
	{"要約", []string{"要約", "テキスト処理", "分析"}},
	{"メール", []string{"ビジネス", "メール作成", "コミュニケーション"}},
	{"ブログ", []string{"ライティング", "ブログ", "コンテンツ作成"}},
	{"マーケティング", []string{"マーケティング", "広告", "ビジネス"}},
	{"教育", []string{"教育", "学習", "チュートリアル"}},
}

const (
	summaryLimit = 50
	maxCandidates = 5
)

/*
Suggest builds a suggestion without an AI model: the summary is the head of
the content, and the candidate categories come from a keyword table, with the
store's existing categories folded in behind them as confirmation shortcuts.
*/
func Suggest(content string, existing []string) prompt.Suggestion {
	categories := defaultCategories
	lower := strings.ToLower(content)

	for _, kc := range keywordCategories {
		if strings.Contains(lower, strings.ToLower(kc.keyword)) {
			categories = kc.categories
			break
		}
	}

	seen := make(map[string]bool, len(categories))
	merged := make([]string, 0, maxCandidates)

	for _, cat := range append(append([]string{}, categories...), existing...) {
		if cat == "" || seen[cat] || len(merged) == maxCandidates {
			continue
		}
		seen[cat] = true
		merged = append(merged, cat)
	}

	return prompt.Suggestion{
		Summary:             truncate(content, summaryLimit),
		SuggestedCategories: merged,
	}
}

// truncate shortens s to at most limit runes, appending an ellipsis when
// anything was cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
