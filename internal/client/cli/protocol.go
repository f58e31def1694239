package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sentimeter/internal/client/models"
	"github.com/dmitrijs2005/sentimeter/internal/client/prompt"
	"github.com/dmitrijs2005/sentimeter/internal/common"
)

const protocolQuestion = "From where will the data to analyze be coming?"

func (a *App) selectProtocol(ctx context.Context) (models.Protocol, error) {
	idx, err := a.prompter.Select(ctx, protocolQuestion, models.ProtocolNames())
	if err != nil {
		if prompt.IsCancellation(err) {
			return 0, Graceful("Operation was interrupted or escaped. Terminating.", err)
		}
		return 0, Fatal("An error occurred as we were waiting for protocol selection", err)
	}
	if idx < 0 || idx >= len(models.Protocols) {
		return 0, Fatal("An error occurred as we were waiting for protocol selection", fmt.Errorf("option %d out of range", idx))
	}
	return models.Protocols[idx], nil
}

// dispatch runs the protocol the operator picked. It only returns when the
// program should stop.
func (a *App) dispatch(ctx context.Context, cred models.Credential) error {
	p, err := a.selectProtocol(ctx)
	if err != nil {
		return err
	}
	a.log.Debug(ctx, "protocol selected", "protocol", p.String())

	switch p {
	case models.ProtocolOnline:
		return a.onlineFeed(ctx)
	case models.ProtocolUser:
		return a.runSession(ctx, cred)
	default:
		return Graceful("Bye!", nil)
	}
}

// TODO: consume an RSS or social feed here once a source is chosen.
func (a *App) onlineFeed(_ context.Context) error {
	return Graceful("Online feed protocol is "+common.ErrNotImplemented.Error()+".", common.ErrNotImplemented)
}
