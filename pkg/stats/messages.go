package stats

// Messages holds the answer sentences of one language. Count sentences take
// one %d verb; list sentences take one %s verb for the joined items.
type Messages struct {
	NewUsersToday    string
	TotalUsers       string
	TotalBooks       string
	NewUsersThisWeek string
	BookTitleVariety string

	BooksPerAuthor      string
	BooksPerAuthorItem  string
	BooksPerAuthorSep   string
	BooksPerAuthorEmpty string

	TopBooksByViews      string
	TopBooksByViewsItem  string
	TopBooksByViewsSep   string
	TopBooksByViewsEmpty string

	Fallback string
}

var catalogs = map[string]Messages{
	"vi": {
		NewUsersToday:    "Hôm nay có %d thành viên đăng ký mới.",
		TotalUsers:       "Hiện hệ thống có tổng cộng %d thành viên.",
		TotalBooks:       "Hiện hệ thống đang có %d sách (tính theo số bản ghi trong bảng book).",
		NewUsersThisWeek: "Trong 7 ngày gần đây có %d thành viên đăng ký mới.",
		BookTitleVariety: "Hiện có %d loại/tựa sách khác nhau (tính theo title).",

		BooksPerAuthor:      "Top tác giả theo số lượng sách (tối đa 15): %s.",
		BooksPerAuthorItem:  "author_id %d: %d sách",
		BooksPerAuthorSep:   "; ",
		BooksPerAuthorEmpty: "Chưa có dữ liệu sách để thống kê theo tác giả.",

		TopBooksByViews:      "Top 10 sách theo lượt xem: %s.",
		TopBooksByViewsItem:  "%s (%d lượt xem)",
		TopBooksByViewsSep:   ", ",
		TopBooksByViewsEmpty: "Chưa có dữ liệu lượt xem (page_views) để thống kê.",

		Fallback: "Mình chưa hiểu câu hỏi này. Bạn thử hỏi lại ngắn gọn hơn nhé.",
	},
	"en": {
		NewUsersToday:    "%d new members registered today.",
		TotalUsers:       "The system has %d members in total.",
		TotalBooks:       "The system currently holds %d books (counted as records in the book table).",
		NewUsersThisWeek: "%d new members registered in the last 7 days.",
		BookTitleVariety: "There are %d distinct book titles (counted by title).",

		BooksPerAuthor:      "Top authors by number of books (up to 15): %s.",
		BooksPerAuthorItem:  "author_id %d: %d books",
		BooksPerAuthorSep:   "; ",
		BooksPerAuthorEmpty: "There is no book data available for this statistic yet.",

		TopBooksByViews:      "Top 10 books by views: %s.",
		TopBooksByViewsItem:  "%s (%d views)",
		TopBooksByViewsSep:   ", ",
		TopBooksByViewsEmpty: "There is no page view data available for this statistic yet.",

		Fallback: "I didn't understand this question. Please try rephrasing it more concisely.",
	},
}

// MessagesFor returns the catalog for language.
func MessagesFor(language string) (Messages, bool) {
	m, ok := catalogs[language]
	return m, ok
}
