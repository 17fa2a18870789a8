package llm

import (
	"fmt"
	"strings"
)

const answerSystemPrompt = `You are a news analyst. Answer the user's question using only the numbered articles provided.

Rules:
1. Base every claim on the articles; do not invent facts
2. If the articles do not answer the question, say so plainly
3. Keep the answer to one short paragraph
4. Mention publishers or dates when they matter to the answer
5. Plain text only, no markdown or lists`

// contextBudget caps the article context sent to the hosted model, which
// imposes its own hard input ceiling.
const contextBudget = 6000

// buildContext concatenates articles into a numbered context block, stopping
// before the entry that would push the block past the budget. Articles are
// dropped whole rather than cut mid-article, so no entry ends in a broken
// sentence. The first article is always included, rune-truncated to the
// budget if it alone exceeds it.
func buildContext(articles []ArticleInput, budget int) string {
	var sb strings.Builder

	for i, a := range articles {
		entry := fmt.Sprintf("%d. Headline: %s\nSummary: %s\n\n", i+1, a.Headline, a.Detail)

		if sb.Len()+len(entry) > budget {
			if i == 0 {
				runes := []rune(entry)
				if len(runes) > budget {
					runes = runes[:budget]
				}
				sb.WriteString(string(runes))
			}
			break
		}

		sb.WriteString(entry)
	}

	return sb.String()
}

func buildUserPrompt(question string, articles []ArticleInput) string {
	return fmt.Sprintf("Question: %s\n\nArticles:\n%s", question, buildContext(articles, contextBudget))
}

func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
