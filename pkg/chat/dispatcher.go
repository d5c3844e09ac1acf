package chat

import (
	"context"

	"github.com/readerhub/libchat/pkg/models"
	"github.com/readerhub/libchat/pkg/stats"
)

// Dispatcher routes a ClassifiedIntent to the statistic that answers it.
type Dispatcher struct {
	handlers *stats.Handlers
}

func NewDispatcher(handlers *stats.Handlers) *Dispatcher {
	return &Dispatcher{handlers: handlers}
}

// Dispatch returns the answer for intent. UNKNOWN and unrecognized intents get
// the fallback sentence. The date is not used by any statistic.
func (d *Dispatcher) Dispatch(ctx context.Context, intent models.ClassifiedIntent) (string, error) {
	switch intent.Intent {
	case models.IntentNewUsersToday:
		return d.handlers.NewUsersToday(ctx)
	case models.IntentTotalUsers:
		return d.handlers.TotalUsers(ctx)
	case models.IntentTotalBooks:
		return d.handlers.TotalBooks(ctx)
	case models.IntentNewUsersThisWeek:
		return d.handlers.NewUsersThisWeek(ctx)
	case models.IntentBookTitleVariety:
		return d.handlers.BookTitleVariety(ctx)
	case models.IntentBooksPerAuthor:
		return d.handlers.BooksPerAuthor(ctx)
	case models.IntentTopBooksByViews:
		return d.handlers.TopBooksByViews(ctx)
	default:
		return d.handlers.Fallback(), nil
	}
}
