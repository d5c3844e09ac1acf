package classifier

import "github.com/readerhub/libchat/pkg/models"

const intentPromptTemplate = `
{{.Role}}
{{.Format}}
{ "intent": "...", "date": "YYYY-MM-DD | null" }

Intent:
{{range .Intents}}- {{.Name}}: {{.Description}}
{{end}}
{{.Closing}}
`

type intentPromptTemplateData struct {
	Role    string
	Format  string
	Intents []intentPromptLine
	Closing string
}

type intentPromptLine struct {
	Name        models.Intent
	Description string
}

type promptCatalog struct {
	Role         string
	Format       string
	Closing      string
	Descriptions map[models.Intent]string
}

var promptCatalogs = map[string]promptCatalog{
	"vi": {
		Role:    "Bạn là bộ phân loại intent cho chatbot quản trị thư viện đọc sách.",
		Format:  "Chỉ trả về một đối tượng JSON đúng format, gồm đúng hai trường intent và date:",
		Closing: "Chỉ trả JSON.",
		Descriptions: map[models.Intent]string{
			models.IntentNewUsersToday:    "hỏi hôm nay có bao nhiêu người dùng/thành viên đăng ký mới",
			models.IntentTotalUsers:       "hỏi tổng số người dùng/thành viên",
			models.IntentTotalBooks:       "hỏi tổng số sách hiện có (tổng bản ghi trong bảng book)",
			models.IntentNewUsersThisWeek: "hỏi số người dùng đăng ký trong 7 ngày gần đây / tuần này",
			models.IntentBookTitleVariety: "hỏi có bao nhiêu loại/tựa sách khác nhau (distinct book.title)",
			models.IntentBooksPerAuthor:   "hỏi thống kê số sách theo tác giả (theo book.author_id)",
			models.IntentTopBooksByViews:  "hỏi sách nào được xem nhiều / top view (dựa page_views.book_id)",
			models.IntentUnknown:          "còn lại",
		},
	},
	"en": {
		Role:    "You are the intent classifier of an administration chatbot for a reading library.",
		Format:  "Reply with a single JSON object in exactly this format, with exactly two fields, intent and date:",
		Closing: "Return only the JSON object.",
		Descriptions: map[models.Intent]string{
			models.IntentNewUsersToday:    "how many users/members registered today",
			models.IntentTotalUsers:       "the total number of users/members",
			models.IntentTotalBooks:       "the total number of books (records in the book table)",
			models.IntentNewUsersThisWeek: "how many users registered in the last 7 days / this week",
			models.IntentBookTitleVariety: "how many different book titles there are (distinct book.title)",
			models.IntentBooksPerAuthor:   "book counts per author (by book.author_id)",
			models.IntentTopBooksByViews:  "which books are viewed the most / top views (from page_views.book_id)",
			models.IntentUnknown:          "anything else",
		},
	},
}

func newPromptData(language string) (intentPromptTemplateData, bool) {
	catalog, ok := promptCatalogs[language]
	if !ok {
		return intentPromptTemplateData{}, false
	}

	lines := make([]intentPromptLine, 0, len(models.AllIntents))
	for _, intent := range models.AllIntents {
		lines = append(lines, intentPromptLine{
			Name:        intent,
			Description: catalog.Descriptions[intent],
		})
	}

	return intentPromptTemplateData{
		Role:    catalog.Role,
		Format:  catalog.Format,
		Intents: lines,
		Closing: catalog.Closing,
	}, true
}
