package models

// Intent is the analytics category a question was classified into.
type Intent string

const (
	IntentNewUsersToday    Intent = "NEW_USERS_TODAY"
	IntentTotalUsers       Intent = "TOTAL_USERS"
	IntentTotalBooks       Intent = "TOTAL_BOOKS"
	IntentNewUsersThisWeek Intent = "NEW_USERS_THIS_WEEK"
	IntentBookTitleVariety Intent = "BOOK_TITLE_VARIETY"
	IntentBooksPerAuthor   Intent = "BOOKS_PER_AUTHOR"
	IntentTopBooksByViews  Intent = "TOP_BOOKS_BY_VIEWS"
	IntentUnknown          Intent = "UNKNOWN"
)

// AllIntents is the closed set of intents, in prompt order.
var AllIntents = []Intent{
	IntentNewUsersToday,
	IntentTotalUsers,
	IntentTotalBooks,
	IntentNewUsersThisWeek,
	IntentBookTitleVariety,
	IntentBooksPerAuthor,
	IntentTopBooksByViews,
	IntentUnknown,
}

var intentsByName = func() map[string]Intent {
	m := make(map[string]Intent, len(AllIntents))
	for _, i := range AllIntents {
		m[string(i)] = i
	}
	return m
}()

// ParseIntentName returns the Intent named by s. ok is false when s is not
// a member of the closed set.
func ParseIntentName(s string) (Intent, bool) {
	i, ok := intentsByName[s]
	return i, ok
}

func (i Intent) String() string {
	return string(i)
}

// ClassifiedIntent is the result of classifying one question. Date is the
// optional ISO-8601 date the model extracted; nil when absent.
type ClassifiedIntent struct {
	Intent Intent  `json:"intent"`
	Date   *string `json:"date"`
}

// UnknownIntent is the degraded classification used for unusable model output.
func UnknownIntent() ClassifiedIntent {
	return ClassifiedIntent{Intent: IntentUnknown}
}
