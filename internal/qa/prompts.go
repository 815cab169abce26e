package qa

import (
	"fmt"
	"strings"
)

const questionPromptHeader = `Answer the following question based on the document content. Don't deviate from the document content, but if there are some small questions you can try to answer them, If the question cannot be answered from the document, state that you cannot find the answer in the document. If you are appreciated then show some gratitude. (you can try to keep a record of the questions and answers and try to improve your answer based on the feedback) (you can also try to keep a record for word count and line count) (remeber not to deviate from the document content but can answer simple basic questions, and you should know about yourself what are you). `

const summaryPromptHeader = `Provide a brief summary of the following document content according to the size of the document in text format (dont give options just one simple summary should cover all the major points (according to the size and content of the document)):`

var appreciationPhrases = []string{"nice work", "noice work", "good job", "thanks"}

// normalizeQuestion lowercases and trims the question; both the appreciation
// check and the prompt use the normalized form.
func normalizeQuestion(question string) string {
	return strings.ToLower(strings.TrimSpace(question))
}

// isAppreciation reports whether a normalized question contains one of the
// appreciation phrases.
func isAppreciation(normalized string) bool {
	for _, phrase := range appreciationPhrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}
	return false
}

func buildQuestionPrompt(documentText, normalizedQuestion string) string {
	return fmt.Sprintf("%s\n\nDocument content:\n%s\n\nQuestion:\n%s", questionPromptHeader, documentText, normalizedQuestion)
}

func buildSummaryPrompt(documentText string) string {
	return fmt.Sprintf("%s\n\nDocument content:\n%s\n", summaryPromptHeader, documentText)
}
