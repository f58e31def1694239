package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/sentimeter/internal/client/services"
)

// showRecent prints the newest analyses from the history and stops.
func (a *App) showRecent(ctx context.Context, n int) error {
	list, err := a.sentiment.Recent(ctx, n)
	if err != nil {
		if errors.Is(err, services.ErrHistoryDisabled) {
			return Fatal("History is disabled; pass -H with a database path", err)
		}
		return Fatal("Could not read the analysis history", err)
	}

	a.console.History(list)
	return nil
}
