//go:build testutils

package testutils

import "github.com/readerhub/libchat/pkg/models"

// TestQuestion pairs an administrator question with the intent it should be
// classified as.
type TestQuestion struct {
	Question string
	Intent   models.Intent
}

var TestQuestions = []TestQuestion{
	{Question: "How many new members signed up today?", Intent: models.IntentNewUsersToday},
	{Question: "Hôm nay có bao nhiêu thành viên mới?", Intent: models.IntentNewUsersToday},
	{Question: "How many members does the library have?", Intent: models.IntentTotalUsers},
	{Question: "Tổng số người dùng là bao nhiêu?", Intent: models.IntentTotalUsers},
	{Question: "How many books are in the system?", Intent: models.IntentTotalBooks},
	{Question: "How many people registered in the last week?", Intent: models.IntentNewUsersThisWeek},
	{Question: "How many different book titles do we have?", Intent: models.IntentBookTitleVariety},
	{Question: "How many books has each author written?", Intent: models.IntentBooksPerAuthor},
	{Question: "Which books are viewed the most?", Intent: models.IntentTopBooksByViews},
	{Question: "What's the weather like in Hanoi?", Intent: models.IntentUnknown},
}
